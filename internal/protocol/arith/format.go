package arith

import (
	"math"
	"strconv"
	"strings"
)

const (
	// precisionScale rounds results to 12 fractional digits, absorbing
	// binary representation noise such as 0.1+0.2.
	precisionScale = 1e12
	// epsilon is added before scaling so values a hair below a .5 boundary
	// round up, matching the display behavior users expect.
	epsilon = 0x1p-52
)

// Format rounds v to 12 fractional digits and renders it in canonical form:
// no trailing zeros, no trailing decimal point, "0" for negative zero.
// Values too large to scale are printed unrounded.
func Format(v float64) string {
	scaled := (v + epsilon) * precisionScale
	if !math.IsInf(scaled, 0) {
		v = roundHalfUp(scaled) / precisionScale
	}
	if v == 0 {
		return "0"
	}
	return formatShortest(v)
}

// roundHalfUp rounds to the nearest integer, with halves going toward
// positive infinity (-2.5 becomes -2).
func roundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// formatShortest prints the shortest decimal that round-trips to v, using a
// plain decimal for magnitudes in [1e-6, 1e21) and d.ddde±x otherwise.
func formatShortest(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	mant, expPart, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expPart)
	digits := strings.Replace(mant, ".", "", 1)
	k := len(digits)
	n := exp + 1 // position of the decimal point relative to digits

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteString(digits[:1])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 < 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(absInt(n - 1)))
	}
	return b.String()
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
