// Package arith implements the calculator's expression pipeline: normalize
// alternate operator glyphs, gate the character set, parse and evaluate the
// arithmetic, and format the result for the display.
//
// # Grammar
//
//	expr    := term (("+" | "-") term)*
//	term    := unary (("*" | "/" | "%") unary)*
//	unary   := ("+" | "-") unary | primary
//	primary := number | "(" expr ")"
//	number  := digits ["." [digits]] | "." digits
//
// Only numbers and the five operators exist. There are no identifiers,
// function calls or exponent notation. "%" is the floating-point remainder and
// takes the sign of the dividend.
//
// Two adjacent "+" or two adjacent "-" (no whitespace between) lex as an
// increment or decrement token and are rejected, so "2--3" fails while
// "2- -3" is 5. A literal with a leading zero followed by a digit ("07") is
// rejected as well.
//
// # Errors
//
// Evaluate returns a *domain.EvalError whose Kind is InvalidCharacters when the
// gate fails, EvaluationFailed on any syntax error and NonFinite when the final
// value is infinite or NaN. Intermediate infinities are allowed: "1/(1/0)" is 0.
//
// # Formatting
//
// Results are rounded to 12 fractional digits and printed in the shortest
// decimal form, switching to exponent notation below 1e-6 and from 1e21 up.
package arith
