package evaluator

import (
	"strconv"
	"strings"
)

// Format renders a value to its canonical external text form.
func Format(v Value) string {
	switch val := v.(type) {
	case Int:
		return strconv.FormatInt(val.N, 10)
	case Dec:
		return formatDec(val.F)
	case Bool:
		if val.B {
			return "#t"
		}
		return "#f"
	case Str:
		return quoteStr(val.S)
	case Sym:
		return val.Name
	case Err:
		return "Error: " + val.Msg
	case *SExpr:
		return formatCells(val.Cells, "(", ")")
	case *QExpr:
		return formatCells(val.Cells, "{", "}")
	case Builtin:
		return "<builtin '" + val.Name + "'>"
	case *Lambda:
		return "(\\ " + Format(val.Formals) + " " + Format(val.Body) + ")"
	default:
		return "<unknown>"
	}
}

// formatDec keeps decimal output distinguishable from integer output:
// integral decimals render with a trailing ".0".
func formatDec(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatCells(cells []Value, open, close string) string {
	var b strings.Builder
	b.WriteString(open)
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Format(c))
	}
	b.WriteString(close)
	return b.String()
}

// quoteStr renders a string in double-quoted literal form with
// control characters escaped.
func quoteStr(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
