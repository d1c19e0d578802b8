package token

import (
	"bytes"
	"fmt"
)

// String returns the CSS source form of the token.
func (t Token) String() string {
	switch t.Kind {
	case Ident, Delim, Whitespace, Number, Percentage, Dimension:
		return t.Value
	case Function:
		var buf bytes.Buffer
		buf.WriteString(t.Value)
		buf.WriteString("(")
		for _, arg := range t.Args {
			buf.WriteString(arg.String())
		}
		buf.WriteString(")")
		return buf.String()
	case AtKeyword:
		return "@" + t.Value
	case Hash:
		return "#" + t.Value
	case String:
		ending := t.Ending
		if ending == 0 {
			ending = '"'
		}
		return string(ending) + t.Value + string(ending)
	case URL:
		return fmt.Sprintf("url(%q)", t.Value)
	case URLPrefix:
		return fmt.Sprintf("url-prefix(%q)", t.Value)
	case Domain:
		return fmt.Sprintf("domain(%q)", t.Value)
	case UnicodeRange:
		if t.Start == t.End {
			return fmt.Sprintf("U+%X", t.Start)
		}
		return fmt.Sprintf("U+%X-%X", t.Start, t.End)
	case IncludeMatch:
		return "~="
	case DashMatch:
		return "|="
	case PrefixMatch:
		return "^="
	case SubstringMatch:
		return "*="
	case SuffixMatch:
		return "$="
	case NotMatch:
		return "!="
	case Column:
		return "||"
	case CDO:
		return "<!--"
	case CDC:
		return "-->"
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case LBrack:
		return "["
	case RBrack:
		return "]"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	}
	return ""
}
