package arith

import "unicode"

// IsWellFormed reports whether every character of expr is a decimal digit,
// whitespace, a parenthesis, a decimal point or one of + - * / %.
// It says nothing about syntax: "1++" and "((" both pass.
func IsWellFormed(expr string) bool {
	if expr == "" {
		return false
	}
	for _, r := range expr {
		if !allowed(r) {
			return false
		}
	}
	return true
}

func allowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	}
	switch r {
	case '(', ')', '.', '+', '-', '*', '/', '%':
		return true
	}
	return false
}
