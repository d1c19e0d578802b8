package ast

import (
	"bytes"
	"strings"
)

// Condition represents a node in the boolean expression tree of a
// conditional rule prelude (@media, @supports, @document).
type Condition interface {
	condition()
	String() string
}

func (_ *Feature) condition()   {}
func (_ *MediaType) condition() {}
func (_ *Not) condition()       {}
func (_ *Group) condition()     {}
func (_ *And) condition()       {}
func (_ *Or) condition()        {}

// Feature represents a leaf test such as a media feature or a supports
// declaration. The boolean layer does not interpret it.
type Feature struct {
	Name  string
	Value string
}

func (f *Feature) String() string {
	if f.Value == "" {
		return "(" + f.Name + ")"
	}
	return "(" + f.Name + ": " + f.Value + ")"
}

// MediaType represents a bare media type such as "screen" or "print".
type MediaType struct {
	Name string
}

func (m *MediaType) String() string {
	return m.Name
}

// Not represents a negated condition.
type Not struct {
	Condition Condition
}

func (n *Not) String() string {
	return "not " + n.Condition.String()
}

// Group represents a parenthesized nested condition.
type Group struct {
	Condition Condition
}

func (g *Group) String() string {
	return "(" + g.Condition.String() + ")"
}

// And represents a conjunction of conditions. All children must hold.
// The node is not mutated after construction; child order is preserved.
type And struct {
	Conditions []Condition
}

func (a *And) String() string {
	return joinConditions(a.Conditions, " and ")
}

// Or represents a disjunction of conditions. Any child may hold.
// The node is not mutated after construction; child order is preserved.
type Or struct {
	Conditions []Condition
}

func (o *Or) String() string {
	return joinConditions(o.Conditions, " or ")
}

func joinConditions(a []Condition, sep string) string {
	var buf bytes.Buffer
	for i, c := range a {
		if i > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(c.String())
	}
	return buf.String()
}

// Constructor builds a composite condition from an already-parsed list of
// child conditions.
type Constructor func(conditions []Condition) Condition

// conjunctions maps the boolean keywords to their composite constructors.
// Built once; read-only afterwards.
var conjunctions = map[string]Constructor{
	"and": func(a []Condition) Condition { return &And{Conditions: a} },
	"or":  func(a []Condition) Condition { return &Or{Conditions: a} },
}

// Conjunction returns the constructor for a boolean keyword. The lookup is
// case-insensitive. It reports false for any keyword other than "and" and
// "or"; there is no default conjunction and the caller decides how to treat
// the condition then.
func Conjunction(keyword string) (Constructor, bool) {
	ctor, ok := conjunctions[strings.ToLower(keyword)]
	return ctor, ok
}
