package kvgen

import (
	"strings"
	"unicode"
)

// separators recognized inside schema argument names and wire tokens.
const separators = " _-|:/."

// Camel converts a schema name or wire token to an exported Go identifier.
func Camel(s string) string {
	var b strings.Builder
	up := true
	for _, r := range s {
		switch {
		case strings.ContainsRune(separators, r):
			up = true
		case up:
			b.WriteRune(unicode.ToUpper(r))
			up = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// LowerCamel converts a schema name to an unexported Go identifier.
func LowerCamel(s string) string {
	c := Camel(s)
	if c == "" {
		return c
	}
	return strings.ToLower(c[:1]) + c[1:]
}

// Ident converts a schema name to a parameter safe Go identifier,
// escaping language keywords and leading digits.
func Ident(s string) string {
	id := LowerCamel(s)
	if id == "" {
		return id
	}
	if keywords[id] {
		id += "_"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}

var keywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}
