package parser_test

import (
	"strings"
	"testing"

	"github.com/inkpath/css/parser"
	"github.com/inkpath/css/scanner"
)

// Ensure that condition preludes can be parsed into the correct tree.
func TestParseCondition(t *testing.T) {
	var tests = []struct {
		s   string
		v   string
		err string
	}{
		{s: `(color)`, v: `(color)`},
		{s: `(min-width: 600px)`, v: `(min-width: 600px)`},
		{s: `(min-width: 600px) and (color)`, v: `(min-width: 600px) and (color)`},
		{s: `(a) and (b) and (c)`, v: `(a) and (b) and (c)`},
		{s: `(a) or (b)`, v: `(a) or (b)`},
		{s: `(A) AND (b)`, v: `(A) and (b)`},
		{s: `not (color)`, v: `not (color)`},
		{s: `screen`, v: `screen`},
		{s: `screen and (color)`, v: `screen and (color)`},
		{s: `not screen and (color)`, v: `not screen and (color)`},
		{s: `((a) and (b)) or (c)`, v: `((a) and (b)) or (c)`},
		{s: `(not (color))`, v: `(not (color))`},
		{s: `(min-width: calc(100px + 2em))`, v: `(min-width: calc(100px + 2em))`},
		{s: `(display: grid)`, v: `(display: grid)`},

		{s: ``, err: `unexpected EOF`},
		{s: `(a`, err: `unexpected EOF`},
		{s: `(a:`, err: `unexpected EOF`},
		{s: `not`, err: `unexpected EOF`},
		{s: `(a) and (b) or (c)`, err: `cannot mix "or" with "and" without parentheses`},
		{s: `(a) or (b) and (c)`, err: `cannot mix "and" with "or" without parentheses`},
		{s: `and (a)`, err: `expected condition, got "and"`},
		{s: `(a) and`, err: `unexpected EOF`},
		{s: `(5px)`, err: `expected feature, got "5px"`},
		{s: `(a) foo`, err: `expected EOF, got "foo"`},
	}

	for i, tt := range tests {
		v, err := parser.ParseCondition(scanner.New(strings.NewReader(tt.s)))
		if tt.err != "" || errstring(err) != "" {
			if tt.err != errstring(err) {
				t.Errorf("%d. <%q> error: exp=%q, got=%q", i, tt.s, tt.err, errstring(err))
			}
		} else if v == nil {
			t.Errorf("%d. <%q> expected condition", i, tt.s)
		} else if v.String() != tt.v {
			t.Errorf("%d. <%q>\n\nexp: %s\n\ngot: %s", i, tt.s, tt.v, v.String())
		}
	}
}

// Ensure that @document preludes can be parsed into document functions.
func TestParseDocumentFunctions(t *testing.T) {
	var tests = []struct {
		s   string
		v   []string
		err string
	}{
		{s: `url("http://x")`, v: []string{`url("http://x")`}},
		{s: `url(http://x)`, v: []string{`url("http://x")`}},
		{s: `url-prefix("https://e/")`, v: []string{`url-prefix("https://e/")`}},
		{s: `domain(example.com)`, v: []string{`domain("example.com")`}},
		{s: `regexp("^https:.*")`, v: []string{`regexp("^https:.*")`}},
		{s: `REGEXP("a")`, v: []string{`regexp("a")`}},
		{
			s: `url-prefix("https://e/"), domain(example.com), regexp("^https:.*")`,
			v: []string{`url-prefix("https://e/")`, `domain("example.com")`, `regexp("^https:.*")`},
		},

		{s: ``, err: `expected document function, got EOF`},
		{s: `regexp(foo)`, err: `expected document function, got "regexp(foo)"`},
		{s: `calc("x")`, err: `expected document function, got "calc(\"x\")"`},
		{s: `foo`, err: `expected document function, got "foo"`},
		{s: `url("a") url("b")`, err: `expected ",", got "url(\"b\")"`},
		{s: `url("a"),`, err: `expected document function, got EOF`},
	}

	for i, tt := range tests {
		a, err := parser.ParseDocumentFunctions(scanner.New(strings.NewReader(tt.s)))
		if tt.err != "" || errstring(err) != "" {
			if tt.err != errstring(err) {
				t.Errorf("%d. <%q> error: exp=%q, got=%q", i, tt.s, tt.err, errstring(err))
			}
			continue
		}
		if len(a) != len(tt.v) {
			t.Errorf("%d. <%q> count: exp=%d, got=%d", i, tt.s, len(tt.v), len(a))
			continue
		}
		for j, fn := range a {
			if fn.String() != tt.v[j] {
				t.Errorf("%d. <%q> %d: exp=%s, got=%s", i, tt.s, j, tt.v[j], fn.String())
			}
		}
	}
}

// Ensure that conditional rules can be extracted from a stylesheet.
func TestParseRules(t *testing.T) {
	input := `
body { color: red; }

@media screen and (min-width: 600px) {
  .sidebar { display: none; }
}

@supports (display: grid) and (gap: 1em) {
  .grid { display: grid; }
}

@document url-prefix("https://example.com/docs/"), domain(example.org) {
  body { background: white; }
}
`
	rules, err := parser.ParseRules(scanner.New(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rules) != 3 {
		t.Fatalf("unexpected rule count: %d", len(rules))
	}

	if s := rules[0].String(); s != `@media screen and (min-width: 600px)` {
		t.Errorf("unexpected rule: %s", s)
	}
	if s := rules[1].String(); s != `@supports (display: grid) and (gap: 1em)` {
		t.Errorf("unexpected rule: %s", s)
	}
	if s := rules[2].String(); s != `@document url-prefix("https://example.com/docs/"), domain("example.org")` {
		t.Errorf("unexpected rule: %s", s)
	}

	// The @document prelude should match URLs under either function.
	for _, url := range []string{
		"https://example.com/docs/intro",
		"https://wiki.example.org/page",
	} {
		matched := false
		for _, fn := range rules[2].Functions {
			if fn.Match(url) {
				matched = true
			}
		}
		if !matched {
			t.Errorf("expected %q to match", url)
		}
	}
}

// Ensure that a media query list folds disjunctively.
func TestParseRules_QueryList(t *testing.T) {
	rules, err := parser.ParseRules(scanner.New(strings.NewReader(`@media screen, print { }`)))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rules) != 1 {
		t.Fatalf("unexpected rule count: %d", len(rules))
	}
	if s := rules[0].String(); s != `@media screen or print` {
		t.Errorf("unexpected rule: %s", s)
	}
}

// Ensure that rule bodies are skipped with balanced braces, so an at-rule
// nested inside another rule's body is not reported on its own.
func TestParseRules_SkipsRuleBodies(t *testing.T) {
	input := `@supports (display: grid) { @media print { a { b: c } } } .x { @media screen { } }`
	rules, err := parser.ParseRules(scanner.New(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rules) != 1 {
		t.Fatalf("unexpected rule count: %d", len(rules))
	}
	if s := rules[0].String(); s != `@supports (display: grid)` {
		t.Errorf("unexpected rule: %s", s)
	}
}

// Ensure that a malformed prelude is reported but does not stop the walk.
func TestParseRules_ContinuesAfterError(t *testing.T) {
	input := `@media and { } @media (color) { }`
	rules, err := parser.ParseRules(scanner.New(strings.NewReader(input)))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rules) != 1 {
		t.Fatalf("unexpected rule count: %d", len(rules))
	}
	if s := rules[0].String(); s != `@media (color)` {
		t.Errorf("unexpected rule: %s", s)
	}
}

// Ensure that error kinds project onto stable numeric codes.
func TestErrorKindCode(t *testing.T) {
	kinds := []parser.ErrorKind{
		parser.UnexpectedEOF,
		parser.UnexpectedToken,
		parser.ExpectedCondition,
		parser.ExpectedFeature,
		parser.MixedConjunction,
		parser.ExpectedDocumentFunction,
		parser.ExpectedCloseParen,
	}
	for i, kind := range kinds {
		if kind.Code() != i {
			t.Errorf("unexpected code for %s: %d", kind, kind.Code())
		}
	}

	// Errors carry their kind through the error list.
	_, err := parser.ParseCondition(scanner.New(strings.NewReader(`(5px)`)))
	list, ok := err.(parser.ErrorList)
	if !ok || len(list) != 1 {
		t.Fatalf("unexpected error: %v", err)
	}
	perr, ok := list[0].(*parser.Error)
	if !ok {
		t.Fatalf("unexpected error type: %T", list[0])
	}
	if perr.Kind != parser.ExpectedFeature {
		t.Errorf("unexpected kind: %s", perr.Kind)
	}
	if perr.Kind.Code() != parser.ExpectedFeature.Code() {
		t.Errorf("unexpected code: %d", perr.Kind.Code())
	}
}

// errstring returns the string representation of the error.
func errstring(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
