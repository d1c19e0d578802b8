package token

// Kind identifies the lexical class of a token.
type Kind int

const (
	// Special kinds
	Illegal Kind = iota
	EOF
	Whitespace

	// Name-bearing kinds
	Ident
	Function
	AtKeyword
	Hash

	// Literal kinds
	String
	BadString
	URL
	URLPrefix
	Domain
	BadURL
	Delim
	Number
	Percentage
	Dimension
	UnicodeRange

	// Attribute match operators
	IncludeMatch
	DashMatch
	PrefixMatch
	SubstringMatch
	SuffixMatch
	NotMatch

	// Structural kinds
	Column
	CDO
	CDC
	Colon
	Semicolon
	Comma
	LBrack
	RBrack
	LParen
	RParen
	LBrace
	RBrace
)

var kinds = [...]string{
	Illegal:        "ILLEGAL",
	EOF:            "EOF",
	Whitespace:     "WHITESPACE",
	Ident:          "IDENT",
	Function:       "FUNCTION",
	AtKeyword:      "ATKEYWORD",
	Hash:           "HASH",
	String:         "STRING",
	BadString:      "BADSTRING",
	URL:            "URL",
	URLPrefix:      "URLPREFIX",
	Domain:         "DOMAIN",
	BadURL:         "BADURL",
	Delim:          "DELIM",
	Number:         "NUMBER",
	Percentage:     "PERCENTAGE",
	Dimension:      "DIMENSION",
	UnicodeRange:   "UNICODERANGE",
	IncludeMatch:   "INCLUDEMATCH",
	DashMatch:      "DASHMATCH",
	PrefixMatch:    "PREFIXMATCH",
	SubstringMatch: "SUBSTRINGMATCH",
	SuffixMatch:    "SUFFIXMATCH",
	NotMatch:       "NOTMATCH",
	Column:         "COLUMN",
	CDO:            "CDO",
	CDC:            "CDC",
	Colon:          "COLON",
	Semicolon:      "SEMICOLON",
	Comma:          "COMMA",
	LBrack:         "LBRACK",
	RBrack:         "RBRACK",
	LParen:         "LPAREN",
	RParen:         "RPAREN",
	LBrace:         "LBRACE",
	RBrace:         "RBRACE",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && k < Kind(len(kinds)) {
		return kinds[k]
	}
	return ""
}

// Token represents a lexical token. A token is a value and is never mutated
// after the scanner produces it.
type Token struct {
	Kind Kind

	// Value is the literal payload of the token: the name of an ident,
	// function, at-keyword, or hash token, the decoded contents of a string
	// token, or the address of a url-style token.
	Value string

	// Type is the flag of a hash token ("id" or "unrestricted") or of a
	// numeric token ("integer" or "number").
	Type string

	// Number and Unit are set for number, percentage, and dimension tokens.
	Number float64
	Unit   string

	// Ending is the quote code point that closed a string token.
	Ending rune

	// Start and End are set for unicode-range tokens.
	Start int
	End   int

	// Args holds the argument tokens of a function token. The scanner leaves
	// arguments in the stream; the grammar attaches them before asking this
	// layer to interpret the function.
	Args []Token

	Pos Pos
}

// StringArgument extracts the single quoted string argument of a function
// token. Whitespace around the argument is ignored. It reports false for
// non-function tokens and for any argument shape other than exactly one
// string literal; an unquoted argument is never coerced into a string.
func (t Token) StringArgument() (string, bool) {
	if t.Kind != Function {
		return "", false
	}
	var lit *Token
	for i := range t.Args {
		arg := &t.Args[i]
		if arg.Kind == Whitespace {
			continue
		} else if arg.Kind != String || lit != nil {
			return "", false
		}
		lit = arg
	}
	if lit == nil {
		return "", false
	}
	return lit.Value, true
}

// Pos specifies the line and character position of a token.
// The Char and Line are both zero-based indexes.
type Pos struct {
	Char int
	Line int
}
