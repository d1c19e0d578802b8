package token

import "strings"

// functionKinds maps the function names with url-style argument syntax to
// their specialized kinds. Built once; read-only afterwards.
var functionKinds = map[string]Kind{
	"url":        URL,
	"url-prefix": URLPrefix,
	"domain":     Domain,
}

// FunctionKind returns the specialized kind for a function name, or Function
// for any unrecognized name. The lookup is case-insensitive. Unknown names
// are valid CSS so there is no error form.
func FunctionKind(name string) Kind {
	if k, ok := functionKinds[strings.ToLower(name)]; ok {
		return k
	}
	return Function
}
