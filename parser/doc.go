/*
Package parser extracts and parses the preludes of conditional at-rules.
This is meant to be a low-level library for deciding which parts of a style
sheet apply, not for building a full CSS3 abstract syntax tree.

This package can be used for building tools that evaluate @media, @supports
and @document rules against an environment or a document URL.

# Basics

Parsing occurs in two steps. First the scanner breaks up a stream of code
points (runes) into tokens. These tokens represent the most basic units of
the CSS syntax such as identifiers, whitespace, and strings. The second step
is to feed these tokens into the parser, which walks the style sheet, picks
out the conditional at-rules, and parses each rule's prelude with the grammar
matching the rule's name. Rule bodies are skipped over with balanced braces;
this package does not parse declarations or qualified rules.

# Conditions

A @media or @supports prelude parses into an ast.Condition. A condition is a
tree of feature tests such as (min-width: 600px), bare media types such as
screen, negations, parenthesized groups, and "and"/"or" conjunctions. The
conjunction keywords resolve through a registry on the ast package; mixing
"and" with "or" at one level without parentheses is a parse error.

A @document (or @-moz-document) prelude parses into a list of
ast.DocumentFunction values, one per comma-separated url(), url-prefix(),
domain() or regexp() entry. Each function knows how to match a raw URL
string.

Parse errors carry an ErrorKind whose Code method projects onto a stable
numeric code, and collect into an ErrorList so one malformed prelude does not
stop the walk.
*/
package parser
