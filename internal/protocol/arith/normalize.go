package arith

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// operatorGlyphs maps alternate operator glyphs, as printed on keypad buttons
// or pasted from documents, to their ASCII forms.
var operatorGlyphs = strings.NewReplacer(
	"×", "*", "✕", "*", "∗", "*", "⋅", "*",
	"÷", "/", "∕", "/",
	"−", "-", "‒", "-", "–", "-", "﹣", "-",
)

const foldable = "+-*/%()"

// Normalize replaces alternate operator glyphs with their canonical ASCII
// equivalents. Full-width operator forms (＋, －, ＊ ...) are folded too.
// Nothing else is touched.
func Normalize(raw string) string {
	return strings.Map(narrowOperator, operatorGlyphs.Replace(raw))
}

func narrowOperator(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	p := width.LookupRune(r)
	if p.Kind() != width.EastAsianFullwidth {
		return r
	}
	if n := p.Narrow(); n != 0 && strings.ContainsRune(foldable, n) {
		return n
	}
	return r
}
