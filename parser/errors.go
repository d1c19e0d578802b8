package parser

import (
	"fmt"

	"github.com/inkpath/css/token"
)

// ErrorKind identifies a class of syntax error.
type ErrorKind int

const (
	UnexpectedEOF ErrorKind = iota
	UnexpectedToken
	ExpectedCondition
	ExpectedFeature
	MixedConjunction
	ExpectedDocumentFunction
	ExpectedCloseParen
)

var errorKinds = [...]string{
	UnexpectedEOF:            "unexpected EOF",
	UnexpectedToken:          "unexpected token",
	ExpectedCondition:        "expected condition",
	ExpectedFeature:          "expected feature",
	MixedConjunction:         "mixed conjunction",
	ExpectedDocumentFunction: "expected document function",
	ExpectedCloseParen:       "expected closing parenthesis",
}

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	if k >= 0 && k < ErrorKind(len(errorKinds)) {
		return errorKinds[k]
	}
	return ""
}

// Code returns the stable numeric code of the error kind, intended for
// inclusion in diagnostic messages.
func (k ErrorKind) Code() int {
	return int(k)
}

// Error represents a syntax error.
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     token.Pos
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return e.Message
}

// ErrorList represents a list of syntax errors.
type ErrorList []error

// Error returns the formatted string error message.
func (a ErrorList) Error() string {
	switch len(a) {
	case 0:
		return "no errors"
	case 1:
		return a[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", a[0], len(a)-1)
}
