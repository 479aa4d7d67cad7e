package keypad

import "calcpad/internal/domain"

// Layout returns the standard on-screen button grid, row by row.
func Layout() [][]domain.Button {
	d := func(s string) domain.Button { return domain.Button{Action: domain.ButtonDigit, Text: s} }
	op := func(s string) domain.Button { return domain.Button{Action: domain.ButtonOperator, Text: s} }
	return [][]domain.Button{
		{{Action: domain.ButtonClear, Text: "C"}, {Action: domain.ButtonBackspace, Text: "⌫"}, op("("), op(")")},
		{d("7"), d("8"), d("9"), op("÷")},
		{d("4"), d("5"), d("6"), op("×")},
		{d("1"), d("2"), d("3"), op("−")},
		{d("0"), {Action: domain.ButtonDecimal, Text: "."}, op("%"), op("+")},
		{{Action: domain.ButtonEquals, Text: "="}},
	}
}
