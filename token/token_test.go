package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpath/css/token"
)

func TestFunctionKind(t *testing.T) {
	t.Run("recognized names in any casing", func(t *testing.T) {
		tests := map[string]token.Kind{
			"url":        token.URL,
			"URL":        token.URL,
			"Url":        token.URL,
			"uRl":        token.URL,
			"domain":     token.Domain,
			"DOMAIN":     token.Domain,
			"Domain":     token.Domain,
			"url-prefix": token.URLPrefix,
			"URL-PREFIX": token.URLPrefix,
			"Url-Prefix": token.URLPrefix,
		}
		for name, kind := range tests {
			assert.Equal(t, kind, token.FunctionKind(name), name)
		}
	})

	t.Run("unrecognized names fall through to Function", func(t *testing.T) {
		for _, name := range []string{"", "calc", "regexp", "urls", "url-", "url ", "prefix", "-moz-url"} {
			assert.Equal(t, token.Function, token.FunctionKind(name), "%q", name)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, token.FunctionKind("url"), token.FunctionKind("url"))
		assert.Equal(t, token.FunctionKind("nope"), token.FunctionKind("nope"))
	})
}

func TestTokenIs(t *testing.T) {
	tok := token.Token{Kind: token.Ident, Value: "screen"}

	assert.True(t, tok.Is(token.Ident))
	assert.True(t, tok.Is(token.Function, token.Ident))
	assert.True(t, tok.Is(token.Comma, token.Colon, token.Ident))
	assert.False(t, tok.Is(token.Function))
	assert.False(t, tok.Is(token.Function, token.AtKeyword))
	assert.False(t, tok.Is())

	t.Run("IsNot is the negation over the same set", func(t *testing.T) {
		assert.False(t, tok.IsNot(token.Function, token.Ident))
		assert.True(t, tok.IsNot(token.Function, token.AtKeyword))
		assert.True(t, tok.IsNot(token.Function, token.AtKeyword, token.Hash))
	})
}

func TestTokenIsMatchOperator(t *testing.T) {
	operators := []token.Kind{
		token.IncludeMatch,
		token.DashMatch,
		token.PrefixMatch,
		token.SubstringMatch,
		token.SuffixMatch,
		token.NotMatch,
	}
	for _, kind := range operators {
		assert.True(t, token.Token{Kind: kind}.IsMatchOperator(), kind.String())
	}

	others := []token.Kind{
		token.Illegal, token.EOF, token.Whitespace, token.Ident, token.Function,
		token.AtKeyword, token.Hash, token.String, token.URL, token.URLPrefix,
		token.Domain, token.Delim, token.Number, token.Column, token.Colon,
		token.Comma, token.LParen, token.RParen,
	}
	for _, kind := range others {
		assert.False(t, token.Token{Kind: kind}.IsMatchOperator(), kind.String())
	}
}

func TestTokenStringArgument(t *testing.T) {
	t.Run("single string literal", func(t *testing.T) {
		tok := token.Token{Kind: token.Function, Value: "regexp", Args: []token.Token{
			{Kind: token.String, Value: "^foo$", Ending: '"'},
		}}
		v, ok := tok.StringArgument()
		require.True(t, ok)
		assert.Equal(t, "^foo$", v)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		tok := token.Token{Kind: token.Function, Value: "regexp", Args: []token.Token{
			{Kind: token.Whitespace, Value: " "},
			{Kind: token.String, Value: "bar", Ending: '\''},
			{Kind: token.Whitespace, Value: "  "},
		}}
		v, ok := tok.StringArgument()
		require.True(t, ok)
		assert.Equal(t, "bar", v)
	})

	t.Run("absence cases", func(t *testing.T) {
		tests := []token.Token{
			// Not a function token.
			{Kind: token.URL, Value: "http://x"},
			{Kind: token.Ident, Value: "regexp"},
			// No arguments.
			{Kind: token.Function, Value: "regexp"},
			// Unquoted argument.
			{Kind: token.Function, Value: "regexp", Args: []token.Token{
				{Kind: token.Ident, Value: "foo"},
			}},
			// More than one argument.
			{Kind: token.Function, Value: "regexp", Args: []token.Token{
				{Kind: token.String, Value: "a"},
				{Kind: token.Comma},
				{Kind: token.String, Value: "b"},
			}},
			{Kind: token.Function, Value: "regexp", Args: []token.Token{
				{Kind: token.String, Value: "a"},
				{Kind: token.String, Value: "b"},
			}},
		}
		for i, tok := range tests {
			_, ok := tok.StringArgument()
			assert.False(t, ok, "%d. %s", i, tok.String())
		}
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "URL", token.URL.String())
	assert.Equal(t, "URLPREFIX", token.URLPrefix.String())
	assert.Equal(t, "DOMAIN", token.Domain.String())
	assert.Equal(t, "FUNCTION", token.Function.String())
	assert.Equal(t, "", token.Kind(-1).String())
	assert.Equal(t, "", token.Kind(1000).String())
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok token.Token
		s   string
	}{
		{token.Token{Kind: token.Ident, Value: "screen"}, "screen"},
		{token.Token{Kind: token.AtKeyword, Value: "media"}, "@media"},
		{token.Token{Kind: token.Hash, Value: "id"}, "#id"},
		{token.Token{Kind: token.String, Value: "foo", Ending: '\''}, "'foo'"},
		{token.Token{Kind: token.String, Value: "foo"}, `"foo"`},
		{token.Token{Kind: token.URL, Value: "http://x"}, `url("http://x")`},
		{token.Token{Kind: token.URLPrefix, Value: "http://x/"}, `url-prefix("http://x/")`},
		{token.Token{Kind: token.Domain, Value: "x.org"}, `domain("x.org")`},
		{token.Token{Kind: token.Function, Value: "calc", Args: []token.Token{
			{Kind: token.Number, Value: "1"},
		}}, "calc(1)"},
		{token.Token{Kind: token.IncludeMatch}, "~="},
		{token.Token{Kind: token.NotMatch}, "!="},
		{token.Token{Kind: token.Column}, "||"},
		{token.Token{Kind: token.UnicodeRange, Start: 0, End: 0x7F}, "U+0-7F"},
		{token.Token{Kind: token.UnicodeRange, Start: 0x2603, End: 0x2603}, "U+2603"},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.s, tt.tok.String(), "%d", i)
	}
}
