package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/inkpath/css/ast"
	"github.com/inkpath/css/token"
)

// parser represents a conditional-rule prelude parser.
type parser struct {
	errors ErrorList
}

// conditionalRules holds the names of the at-rules whose preludes this
// parser understands.
var conditionalRules = map[string]bool{
	"media":         true,
	"supports":      true,
	"document":      true,
	"-moz-document": true,
}

// Rule represents a conditional at-rule extracted from a stylesheet.
// Condition is set for @media and @supports rules, Functions for
// @document rules.
type Rule struct {
	Name      string
	Condition ast.Condition
	Functions []ast.DocumentFunction
	Pos       token.Pos
}

// String returns the at-rule's prelude in CSS form.
func (r *Rule) String() string {
	var buf bytes.Buffer
	buf.WriteString("@" + r.Name + " ")
	if r.Condition != nil {
		buf.WriteString(r.Condition.String())
	}
	for i, f := range r.Functions {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(f.String())
	}
	return buf.String()
}

// ParseCondition parses a @media/@supports-style condition.
func ParseCondition(s Scanner) (ast.Condition, error) {
	var p parser
	cond := p.consumeCondition(s)

	// Skip over any trailing whitespace.
	p.skipWhitespace(s)

	// If we're not at EOF then return a syntax error.
	if cond != nil {
		if tok := s.Scan(); tok.Kind != token.EOF {
			p.errors = append(p.errors, &Error{Kind: UnexpectedToken, Message: fmt.Sprintf("expected EOF, got %q", tok.String()), Pos: tok.Pos})
		}
	}

	if err := p.error(); err != nil {
		return nil, err
	}
	return cond, nil
}

// ParseDocumentFunctions parses a comma-separated @document prelude.
func ParseDocumentFunctions(s Scanner) ([]ast.DocumentFunction, error) {
	var p parser
	a := p.consumeDocumentFunctions(s)
	if err := p.error(); err != nil {
		return nil, err
	}
	return a, nil
}

// ParseRules extracts the conditional at-rules from a stylesheet token
// stream. Rule bodies and everything that is not a conditional at-rule are
// skipped over with balanced braces, so an at-rule nested inside another
// rule's body is not reported. A malformed prelude is reported but does not
// stop the walk.
func ParseRules(s Scanner) ([]*Rule, error) {
	var p parser
	var a []*Rule
	for {
		tok := s.Scan()
		switch tok.Kind {
		case token.EOF:
			return a, p.error()
		case token.Whitespace, token.Semicolon, token.CDO, token.CDC:
			// nop
		case token.AtKeyword:
			if conditionalRules[strings.ToLower(tok.Value)] {
				if r := p.consumeConditionalRule(s, tok); r != nil {
					a = append(a, r)
				}
			} else {
				p.skipRule(s)
			}
		default:
			s.Unscan()
			p.skipRule(s)
		}
	}
}

// Errors returns the error on the parser.
// Returns nil if there are no errors.
func (p *parser) error() error {
	if len(p.errors) == 0 {
		return nil
	}
	return p.errors
}

// consumeConditionalRule consumes the prelude of a conditional at-rule and
// parses it with the grammar matching the rule's name.
func (p *parser) consumeConditionalRule(s Scanner, at token.Token) *Rule {
	toks, terminator := p.consumePreludeTokens(s)
	if terminator == token.LBrace {
		p.skipBlock(s)
	}
	ts := NewTokenScanner(toks)

	r := &Rule{Name: strings.ToLower(at.Value), Pos: at.Pos}
	if r.Name == "document" || r.Name == "-moz-document" {
		r.Functions = p.consumeDocumentFunctions(ts)
		if r.Functions == nil {
			return nil
		}
	} else {
		r.Condition = p.consumeConditionList(ts)
		if r.Condition == nil {
			return nil
		}
	}
	return r
}

// consumeConditionList consumes comma-separated conditions. A list of
// queries combines disjunctively, so multiple entries fold into an Or node.
func (p *parser) consumeConditionList(s Scanner) ast.Condition {
	var a []ast.Condition
	for {
		cond := p.consumeCondition(s)
		if cond == nil {
			return nil
		}
		a = append(a, cond)

		p.skipWhitespace(s)
		tok := s.Scan()
		if tok.Kind == token.EOF {
			break
		} else if tok.Kind != token.Comma {
			p.errors = append(p.errors, &Error{Kind: UnexpectedToken, Message: fmt.Sprintf("expected %q, got %q", ",", tok.String()), Pos: tok.Pos})
			return nil
		}
	}
	if len(a) == 1 {
		return a[0]
	}
	return &ast.Or{Conditions: a}
}

// consumePreludeTokens collects the prelude tokens of an at-rule, up to the
// opening brace or semicolon. The terminating kind is returned so the caller
// can tell whether a block follows.
func (p *parser) consumePreludeTokens(s Scanner) ([]token.Token, token.Kind) {
	var a []token.Token
	for {
		tok := s.Scan()
		switch tok.Kind {
		case token.LBrace, token.Semicolon, token.EOF:
			return a, tok.Kind
		}
		a = append(a, tok)
	}
}

// skipRule scans past a rule that is not a conditional at-rule, including
// its brace block if it has one.
func (p *parser) skipRule(s Scanner) {
	for {
		switch s.Scan().Kind {
		case token.Semicolon, token.EOF:
			return
		case token.LBrace:
			p.skipBlock(s)
			return
		}
	}
}

// skipBlock scans past a brace block. The opening brace has just been
// consumed. Nested blocks are balanced and an EOF closes the block.
func (p *parser) skipBlock(s Scanner) {
	for depth := 1; depth > 0; {
		switch s.Scan().Kind {
		case token.EOF:
			return
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
	}
}

// consumeCondition consumes a condition: a leading "not" negating the rest,
// or one or more primaries folded with a single conjunction keyword.
func (p *parser) consumeCondition(s Scanner) ast.Condition {
	p.skipWhitespace(s)

	// A leading "not" negates the remainder of the condition.
	if tok := s.Scan(); tok.Kind == token.Ident && strings.EqualFold(tok.Value, "not") {
		cond := p.consumeCondition(s)
		if cond == nil {
			return nil
		}
		return &ast.Not{Condition: cond}
	}
	s.Unscan()

	first := p.consumePrimary(s)
	if first == nil {
		return nil
	}

	// Fold further primaries with the conjunction keyword. The keyword is
	// resolved through the registry; an ident that is not a conjunction ends
	// the condition rather than failing it.
	children := []ast.Condition{first}
	var ctor ast.Constructor
	var keyword string
	for {
		p.skipWhitespace(s)
		tok := s.Scan()
		if tok.Kind != token.Ident {
			s.Unscan()
			break
		}
		c, ok := ast.Conjunction(tok.Value)
		if !ok {
			s.Unscan()
			break
		}

		// Conjunctions cannot be mixed at one level without parentheses.
		if ctor == nil {
			ctor, keyword = c, strings.ToLower(tok.Value)
		} else if !strings.EqualFold(tok.Value, keyword) {
			p.errors = append(p.errors, &Error{Kind: MixedConjunction, Message: fmt.Sprintf("cannot mix %q with %q without parentheses", strings.ToLower(tok.Value), keyword), Pos: tok.Pos})
			return nil
		}

		child := p.consumePrimary(s)
		if child == nil {
			return nil
		}
		children = append(children, child)
	}

	if ctor == nil {
		return first
	}
	return ctor(children)
}

// consumePrimary consumes a single operand of a condition: a negation, a
// parenthesized feature test or nested condition, or a bare ident such as a
// media type.
func (p *parser) consumePrimary(s Scanner) ast.Condition {
	p.skipWhitespace(s)

	tok := s.Scan()
	if tok.Kind == token.Ident {
		if strings.EqualFold(tok.Value, "not") {
			cond := p.consumePrimary(s)
			if cond == nil {
				return nil
			}
			return &ast.Not{Condition: cond}
		}

		// A conjunction keyword cannot stand in for an operand.
		if _, ok := ast.Conjunction(tok.Value); ok {
			p.errors = append(p.errors, &Error{Kind: ExpectedCondition, Message: fmt.Sprintf("expected condition, got %q", tok.String()), Pos: tok.Pos})
			return nil
		}
		return &ast.MediaType{Name: tok.Value}
	} else if tok.Kind == token.EOF {
		p.errors = append(p.errors, &Error{Kind: UnexpectedEOF, Message: "unexpected EOF", Pos: tok.Pos})
		return nil
	} else if tok.Kind != token.LParen {
		p.errors = append(p.errors, &Error{Kind: ExpectedCondition, Message: fmt.Sprintf("expected condition, got %q", tok.String()), Pos: tok.Pos})
		return nil
	}

	return p.consumeParenContents(s)
}

// consumeParenContents consumes the contents of a parenthesized primary:
// either a nested condition or a feature test. The opening paren has just
// been consumed.
func (p *parser) consumeParenContents(s Scanner) ast.Condition {
	p.skipWhitespace(s)

	tok := s.Scan()
	if tok.Kind == token.LParen || (tok.Kind == token.Ident && strings.EqualFold(tok.Value, "not")) {
		// A nested condition.
		s.Unscan()
		cond := p.consumeCondition(s)
		if cond == nil {
			return nil
		}

		p.skipWhitespace(s)
		if next := s.Scan(); next.Kind != token.RParen {
			p.errors = append(p.errors, &Error{Kind: ExpectedCloseParen, Message: fmt.Sprintf("expected %q, got %q", ")", next.String()), Pos: next.Pos})
			return nil
		}
		return &ast.Group{Condition: cond}
	} else if tok.Kind == token.EOF {
		p.errors = append(p.errors, &Error{Kind: UnexpectedEOF, Message: "unexpected EOF", Pos: tok.Pos})
		return nil
	} else if tok.Kind != token.Ident {
		p.errors = append(p.errors, &Error{Kind: ExpectedFeature, Message: fmt.Sprintf("expected feature, got %q", tok.String()), Pos: tok.Pos})
		return nil
	}

	name := tok.Value
	p.skipWhitespace(s)

	next := s.Scan()
	if next.Kind == token.RParen {
		return &ast.Feature{Name: name}
	} else if next.Kind == token.EOF {
		p.errors = append(p.errors, &Error{Kind: UnexpectedEOF, Message: "unexpected EOF", Pos: next.Pos})
		return nil
	} else if next.Kind != token.Colon {
		p.errors = append(p.errors, &Error{Kind: ExpectedFeature, Message: fmt.Sprintf("expected %q, got %q", ":", next.String()), Pos: next.Pos})
		return nil
	}

	value, ok := p.consumeFeatureValue(s)
	if !ok {
		return nil
	}
	return &ast.Feature{Name: name, Value: value}
}

// consumeFeatureValue collects the raw text of a feature value up to the
// closing paren of the feature test. Nested function calls and parens are
// balanced into the value.
func (p *parser) consumeFeatureValue(s Scanner) (string, bool) {
	var buf bytes.Buffer
	depth := 1
	for {
		tok := s.Scan()
		if tok.Kind == token.EOF {
			p.errors = append(p.errors, &Error{Kind: UnexpectedEOF, Message: "unexpected EOF", Pos: tok.Pos})
			return "", false
		} else if tok.Kind == token.Function {
			// The function's arguments are still in the stream.
			depth++
			buf.WriteString(tok.Value + "(")
			continue
		} else if tok.Kind == token.LParen {
			depth++
		} else if tok.Kind == token.RParen {
			depth--
			if depth == 0 {
				return strings.TrimSpace(buf.String()), true
			}
		}
		buf.WriteString(tok.String())
	}
}

// consumeDocumentFunctions consumes a comma-separated list of document
// functions. Generic function tokens get their argument tokens attached
// before the document-function builder interprets them.
func (p *parser) consumeDocumentFunctions(s Scanner) []ast.DocumentFunction {
	var a []ast.DocumentFunction
	for {
		p.skipWhitespace(s)

		tok := s.Scan()
		if tok.Kind == token.EOF {
			p.errors = append(p.errors, &Error{Kind: UnexpectedEOF, Message: "expected document function, got EOF", Pos: tok.Pos})
			return nil
		}
		if tok.Kind == token.Function {
			tok.Args = p.consumeFunctionArgs(s)
		}

		fn, ok := ast.DocumentFunctionOf(tok)
		if !ok {
			p.errors = append(p.errors, &Error{Kind: ExpectedDocumentFunction, Message: fmt.Sprintf("expected document function, got %q", tok.String()), Pos: tok.Pos})
			return nil
		}
		a = append(a, fn)

		p.skipWhitespace(s)
		if next := s.Scan(); next.Kind == token.EOF {
			return a
		} else if next.Kind != token.Comma {
			p.errors = append(p.errors, &Error{Kind: UnexpectedToken, Message: fmt.Sprintf("expected %q, got %q", ",", next.String()), Pos: next.Pos})
			return nil
		}
	}
}

// consumeFunctionArgs collects the argument tokens of a function up to its
// matching close paren. An EOF closes the argument list like it closes a
// string or url token.
func (p *parser) consumeFunctionArgs(s Scanner) []token.Token {
	var a []token.Token
	depth := 1
	for {
		tok := s.Scan()
		if tok.Kind == token.EOF {
			return a
		} else if tok.Kind == token.LParen || tok.Kind == token.Function {
			depth++
		} else if tok.Kind == token.RParen {
			depth--
			if depth == 0 {
				return a
			}
		}
		a = append(a, tok)
	}
}

// skipWhitespace skips over all contiguous whitespace tokens.
func (p *parser) skipWhitespace(s Scanner) {
	for {
		if tok := s.Scan(); tok.Kind != token.Whitespace {
			s.Unscan()
			return
		}
	}
}

// Scanner represents a type that can retrieve the next token.
type Scanner interface {
	Current() token.Token
	Scan() token.Token
	Unscan()
}

// TokenScanner represents a scanner for a fixed list of tokens.
type TokenScanner struct {
	i      int
	tokens []token.Token
}

// NewTokenScanner returns a new instance of TokenScanner.
func NewTokenScanner(tokens []token.Token) *TokenScanner {
	return &TokenScanner{i: -1, tokens: tokens}
}

// Current returns the current token.
func (s *TokenScanner) Current() token.Token {
	if s.i < 0 || s.i >= len(s.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return s.tokens[s.i]
}

// Scan returns the next token.
func (s *TokenScanner) Scan() token.Token {
	if s.i < len(s.tokens) {
		s.i++
	}
	return s.Current()
}

// Unscan moves back one token.
func (s *TokenScanner) Unscan() {
	if s.i > -1 {
		s.i--
	}
}
