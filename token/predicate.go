package token

// Is reports whether the token's kind equals any of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsNot reports whether the token's kind equals none of the given kinds.
func (t Token) IsNot(kinds ...Kind) bool {
	return !t.Is(kinds...)
}

// IsMatchOperator reports whether the token is one of the six attribute
// match operators (~=, |=, ^=, *=, $=, !=).
func (t Token) IsMatchOperator() bool {
	return t.Is(IncludeMatch, DashMatch, PrefixMatch, SubstringMatch, SuffixMatch, NotMatch)
}
