package arith_test

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/domain"
	"calcpad/internal/protocol/arith"
)

func TestEvaluate_Results(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"2+2", "4"},
		{"2 * (3 + 4)", "14"},
		{"1/3", "0.333333333333"},
		{"2/3", "0.666666666667"},
		{"0.1+0.2", "0.3"},
		{"10 + 5 * 2", "20"},
		{"18 / 3 + 2", "8"},
		{"(8 - 2) * (5 - 3)", "12"},
		{"10 % 3", "1"},
		{"-7 % 3", "-1"},
		{"7.5 % 2", "1.5"},
		{"2 * 10 % 6", "2"},
		{"-(2+3)", "-5"},
		{"2- -3", "5"},
		{"2 - - 3", "5"},
		{"+5", "5"},
		{"-+-4", "4"},
		{".5+5.", "5.5"},
		{"0.5 * 4", "2"},
		{"0-0", "0"},
		{"-0", "0"},
		{"1/(1/0)", "0"},
		{"  12  ", "12"},
		{"1\t+\n2", "3"},
		{"((((1))))", "1"},
		{"1000000 * 1000000", "1000000000000"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := arith.Evaluate(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluate_AlternateGlyphs(t *testing.T) {
	cases := map[string]string{
		"6×7":       "42",
		"8÷2−1":     "3",
		"3 ✕ 3":     "9",
		"10 – 4":    "6",
		"（1＋2）＊3":   "9",
		"９ － 1":     "", // full-width digits are not folded
		"100 ％ 7":   "2",
		"1 ∕ 4":     "0.25",
		"2⋅(3﹣1)": "4",
	}
	for expr, want := range cases {
		t.Run(expr, func(t *testing.T) {
			got, err := arith.Evaluate(expr)
			if want == "" {
				require.ErrorIs(t, err, domain.ErrInvalidCharacters)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEvaluate_ErrorKinds(t *testing.T) {
	cases := []struct {
		expr string
		want error
	}{
		{"abc", domain.ErrInvalidCharacters},
		{"2+a", domain.ErrInvalidCharacters},
		{"1e5", domain.ErrInvalidCharacters},
		{"2^3", domain.ErrInvalidCharacters},
		{"1,5", domain.ErrInvalidCharacters},
		{"Infinity", domain.ErrInvalidCharacters},
		{"alert(1)", domain.ErrInvalidCharacters},
		{"1\x00+2", domain.ErrInvalidCharacters},
		{"1\a", domain.ErrInvalidCharacters},
		{"Error", domain.ErrInvalidCharacters},

		{"2+", domain.ErrEvaluationFailed},
		{"((", domain.ErrEvaluationFailed},
		{"(1+2", domain.ErrEvaluationFailed},
		{"1+2)", domain.ErrEvaluationFailed},
		{"1++", domain.ErrEvaluationFailed},
		{"1++2", domain.ErrEvaluationFailed},
		{"2--3", domain.ErrEvaluationFailed},
		{"--3", domain.ErrEvaluationFailed},
		{"()", domain.ErrEvaluationFailed},
		{"2(3)", domain.ErrEvaluationFailed},
		{"(1)(2)", domain.ErrEvaluationFailed},
		{"1.2.3", domain.ErrEvaluationFailed},
		{".", domain.ErrEvaluationFailed},
		{"07", domain.ErrEvaluationFailed},
		{"1 2", domain.ErrEvaluationFailed},
		{"*2", domain.ErrEvaluationFailed},
		{"2**3", domain.ErrEvaluationFailed},
		{"2//3", domain.ErrEvaluationFailed},
		{"%", domain.ErrEvaluationFailed},
		{"   ", domain.ErrEvaluationFailed},

		{"5/0", domain.ErrNonFinite},
		{"-5/0", domain.ErrNonFinite},
		{"0/0", domain.ErrNonFinite},
		{"5%0", domain.ErrNonFinite},
		{"1/0*0", domain.ErrNonFinite},
		{"1" + strings.Repeat("0", 400), domain.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.expr), func(t *testing.T) {
			got, err := arith.Evaluate(tc.expr)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tc.want)

			var ee *domain.EvalError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, tc.expr, ee.Expr)
		})
	}
}

func TestEvaluate_SyntaxErrorPosition(t *testing.T) {
	_, err := arith.Evaluate("1 + (2 * 3")
	var se *arith.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 4, se.Pos)
	assert.Contains(t, se.Msg, "closing parenthesis")
}

func TestEvaluate_NestingLimit(t *testing.T) {
	ok := strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100)
	got, err := arith.Evaluate(ok)
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	deep := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)
	_, err = arith.Evaluate(deep)
	assert.ErrorIs(t, err, domain.ErrEvaluationFailed)

	unary := strings.Repeat("- ", 300) + "1"
	_, err = arith.Evaluate(unary)
	assert.ErrorIs(t, err, domain.ErrEvaluationFailed)
}

func TestEvaluate_IntegerResultIsStable(t *testing.T) {
	for _, expr := range []string{"2+2", "6*7", "-(2+3)", "10-10", "1000*1000", "9%4"} {
		first, err := arith.Evaluate(expr)
		require.NoError(t, err)
		second, err := arith.Evaluate(first)
		require.NoError(t, err)
		assert.Equal(t, first, second, expr)
	}
}

// node is a randomly generated expression tree with its expected value.
type node struct {
	text  string
	value float64
}

func genExpr(r *rand.Rand, depth int) node {
	if depth == 0 || r.Intn(3) == 0 {
		n := float64(r.Intn(99) + 1)
		return node{text: fmt.Sprintf("%d", int(n)), value: n}
	}
	lhs := genExpr(r, depth-1)
	switch r.Intn(5) {
	case 0:
		rhs := genExpr(r, depth-1)
		return node{text: "(" + lhs.text + " + " + rhs.text + ")", value: lhs.value + rhs.value}
	case 1:
		rhs := genExpr(r, depth-1)
		return node{text: "(" + lhs.text + " - " + rhs.text + ")", value: lhs.value - rhs.value}
	case 2:
		rhs := genExpr(r, depth-1)
		return node{text: "(" + lhs.text + " * " + rhs.text + ")", value: lhs.value * rhs.value}
	case 3:
		d := float64(r.Intn(9) + 1)
		return node{text: fmt.Sprintf("(%s / %d)", lhs.text, int(d)), value: lhs.value / d}
	default:
		return node{text: "-(" + lhs.text + ")", value: -lhs.value}
	}
}

func TestEval_MatchesGeneratedTrees(t *testing.T) {
	r := rand.New(rand.NewSource(6841))
	for i := 0; i < 500; i++ {
		n := genExpr(r, 4)
		got, err := arith.Eval(n.text)
		require.NoError(t, err, n.text)
		assert.InDelta(t, n.value, got, 1e-12, n.text)

		formatted, err := arith.Evaluate(n.text)
		require.NoError(t, err, n.text)
		assert.Equal(t, arith.Format(n.value), formatted, n.text)
	}
}

func TestEvaluator_ImplementsDomain(t *testing.T) {
	var ev domain.Evaluator = arith.Evaluator{}
	got, err := ev.Evaluate("3*3")
	require.NoError(t, err)
	assert.Equal(t, "9", got)
}
