package ast

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/inkpath/css/token"
)

// DocumentFunction represents a URL matching predicate from a @document
// rule prelude. A function is constructed once from a single token and is
// never mutated.
type DocumentFunction interface {
	documentFunction()
	Match(rawurl string) bool
	String() string
}

func (_ *URLMatch) documentFunction()       {}
func (_ *URLPrefixMatch) documentFunction() {}
func (_ *DomainMatch) documentFunction()    {}
func (_ *RegexpMatch) documentFunction()    {}

// URLMatch represents url(): an exact URL match.
type URLMatch struct {
	URL string
}

func (m *URLMatch) Match(rawurl string) bool {
	return rawurl == m.URL
}

func (m *URLMatch) String() string {
	return fmt.Sprintf("url(%q)", m.URL)
}

// URLPrefixMatch represents url-prefix(): a textual URL prefix match.
type URLPrefixMatch struct {
	Prefix string
}

func (m *URLPrefixMatch) Match(rawurl string) bool {
	return strings.HasPrefix(rawurl, m.Prefix)
}

func (m *URLPrefixMatch) String() string {
	return fmt.Sprintf("url-prefix(%q)", m.Prefix)
}

// DomainMatch represents domain(): a match on the URL host or any of its
// subdomains.
type DomainMatch struct {
	Domain string
}

func (m *DomainMatch) Match(rawurl string) bool {
	u, err := url.Parse(rawurl)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == m.Domain || strings.HasSuffix(host, "."+m.Domain)
}

func (m *DomainMatch) String() string {
	return fmt.Sprintf("domain(%q)", m.Domain)
}

// RegexpMatch represents regexp(): an anchored regular expression match
// against the entire URL.
type RegexpMatch struct {
	Pattern string
}

func (m *RegexpMatch) Match(rawurl string) bool {
	re, err := regexp.Compile("^(?:" + m.Pattern + ")$")
	if err != nil {
		return false
	}
	return re.MatchString(rawurl)
}

func (m *RegexpMatch) String() string {
	return fmt.Sprintf("regexp(%q)", m.Pattern)
}

// DocumentFunctionOf constructs the document function a token represents.
// Dispatch is on the token's kind: url-style kinds carry their address as the
// token value, and a generic function token qualifies only when it is named
// "regexp" (case-insensitive) and its argument is a single string literal.
// It reports false for every other token; that is an expected outcome while
// the grammar probes alternative productions, not an error.
func DocumentFunctionOf(tok token.Token) (DocumentFunction, bool) {
	switch tok.Kind {
	case token.URL:
		return &URLMatch{URL: tok.Value}, true
	case token.URLPrefix:
		return &URLPrefixMatch{Prefix: tok.Value}, true
	case token.Domain:
		return &DomainMatch{Domain: tok.Value}, true
	case token.Function:
		if !strings.EqualFold(tok.Value, "regexp") {
			return nil, false
		}
		pattern, ok := tok.StringArgument()
		if !ok {
			return nil, false
		}
		return &RegexpMatch{Pattern: pattern}, true
	}
	return nil, false
}
