package catalog

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vipcxj/rangeconst/constrained"
)

func TestNames_Sorted(t *testing.T) {
	require.Equal(t, []string{
		"grade", "hour", "month", "octet", "percent", "score", "small", "void", "wide", "workday",
	}, Names())
	require.Len(t, All(), len(Names()))
	require.Equal(t, "grade", All()[0].Name)
}

func TestLookup(t *testing.T) {
	e, err := Lookup("Month")
	require.NoError(t, err)
	require.Equal(t, "month", e.Name)

	_, err = Lookup("fortnight")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown type "fortnight"`)
}

func TestEntry_Describe(t *testing.T) {
	cases := []struct {
		name     string
		kind     string
		first    string
		last     string
		size     string
		integral bool
	}{
		{"month", "int", "1", "12", "12", true},
		{"small", "int16", "0", "100", "101", true},
		{"hour", "uint8", "0", "23", "24", true},
		{"grade", "Grade", "A", "F", "6", false},
		{"workday", "Weekday", "Monday", "Friday", "5", false},
		{"octet", "uint8", "0", "255", "256", true},
		{"wide", "int64", "-9223372036854775808", "9223372036854775807", "18446744073709551616", true},
		{"void", "int", "1", "0", "0", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := Lookup(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.kind, e.Kind)
			require.Equal(t, tc.first, e.First)
			require.Equal(t, tc.last, e.Last)
			require.Equal(t, tc.size, e.Size.String())
			require.Equal(t, tc.integral, e.Integral)
			require.Equal(t, tc.size == "0", e.Empty())
		})
	}
}

func TestEntry_Check(t *testing.T) {
	cases := []struct {
		typ    string
		in     string
		out    string
		errSub string
	}{
		{"month", "3", "3", ""},
		{"month", "0x0c", "12", ""},
		{"month", "13", "", "value 13 is out of range [1, 12]"},
		{"month", "x", "", "invalid int"},
		{"grade", "B", "B", ""},
		{"grade", "G", "", "value G is out of range [A, F]"},
		{"workday", "tuesday", "Tuesday", ""},
		{"workday", "Sunday", "", "value Sunday is out of range [Monday, Friday]"},
		{"workday", "Someday", "", "does not belong to Weekday values"},
		{"hour", "24", "", "value 24 is out of range [0, 23]"},
		{"hour", "-1", "", "invalid uint8"},
		{"octet", "255", "255", ""},
		{"wide", "-9223372036854775808", "-9223372036854775808", ""},
		{"void", "1", "", "value 1 is out of range [1, 0]"},
		{"void", "0", "", "value 0 is out of range [1, 0]"},
	}
	for _, tc := range cases {
		t.Run(tc.typ+"_"+tc.in, func(t *testing.T) {
			e, err := Lookup(tc.typ)
			require.NoError(t, err)
			out, err := e.Check(tc.in)
			if tc.errSub != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errSub)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, out)
		})
	}
}

func TestEntry_Convert(t *testing.T) {
	cases := []struct {
		from, to string
		in       string
		out      string
		errSub   string
	}{
		{"percent", "small", "50", "50", ""},
		{"small", "percent", "25", "25", ""},
		{"month", "percent", "7", "7", ""},
		{"percent", "month", "70", "", "value 70 is out of range [1, 12]"},
		{"score", "month", "20", "", "value 20 is out of range [1, 12]"},
		{"percent", "hour", "23", "23", ""},
		{"percent", "hour", "99", "", "value 99 is out of range [0, 23]"},
		{"octet", "hour", "200", "", "value 200 is out of range [0, 23]"},
		{"wide", "small", "70000", "", "value 70000 is out of range [0, 100]"},
		{"wide", "small", "65586", "", "value 65586 is out of range [0, 100]"},
		{"wide", "small", "-1", "", "value -1 is out of range [0, 100]"},
		{"wide", "hour", "-1", "", "value -1 is out of range [0, 23]"},
		{"wide", "octet", "255", "255", ""},
		{"small", "wide", "100", "100", ""},
		{"month", "month", "13", "", "value 13 is out of range [1, 12]"},
		{"month", "workday", "3", "", "cannot convert month (int) to workday (Weekday)"},
		{"grade", "percent", "A", "", "cannot convert grade (Grade) to percent (int)"},
	}
	for _, tc := range cases {
		t.Run(tc.from+"_"+tc.to+"_"+tc.in, func(t *testing.T) {
			src, err := Lookup(tc.from)
			require.NoError(t, err)
			dst, err := Lookup(tc.to)
			require.NoError(t, err)
			out, err := src.Convert(dst, tc.in)
			if tc.errSub != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errSub)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, out)
		})
	}
}

func TestCalculator_Sequence(t *testing.T) {
	e, err := Lookup("month")
	require.NoError(t, err)
	c, err := e.NewCalculator("10")
	require.NoError(t, err)

	ops, err := ParseOps([]string{"inc", "postinc", "postdec", "dec", "div:2", "mul:2", "mod:4", "add:9", "sub:2"})
	require.NoError(t, err)
	yields := []string{"11", "11", "12", "10", "5", "10", "2", "11", "9"}
	values := []string{"11", "12", "11", "10", "5", "10", "2", "11", "9"}

	for i, op := range ops {
		y, err := c.Apply(op)
		require.NoError(t, err, "op %s", op)
		require.Equal(t, yields[i], y, "yield of %s", op)
		require.Equal(t, values[i], c.Value(), "value after %s", op)
	}
}

func TestCalculator_FailureKeepsValue(t *testing.T) {
	e, err := Lookup("score")
	require.NoError(t, err)
	c, err := e.NewCalculator("50")
	require.NoError(t, err)

	op, err := ParseOp("add:100")
	require.NoError(t, err)
	_, err = c.Apply(op)
	require.EqualError(t, err, "value 150 is out of range [15, 130]")
	require.Equal(t, "50", c.Value())

	op, err = ParseOp("div:0")
	require.NoError(t, err)
	_, err = c.Apply(op)
	require.ErrorIs(t, err, constrained.ErrDivideByZero)
	require.Equal(t, "50", c.Value())

	op, err = ParseOp("add:x")
	require.NoError(t, err)
	_, err = c.Apply(op)
	require.Error(t, err)
	require.Equal(t, "50", c.Value())

	_, err = e.NewCalculator("5")
	require.Error(t, err)
}

func TestCalculator_Enum(t *testing.T) {
	e, err := Lookup("workday")
	require.NoError(t, err)
	c, err := e.NewCalculator("Thursday")
	require.NoError(t, err)

	y, err := c.Apply(Op{Kind: OpInc, Text: "inc"})
	require.NoError(t, err)
	require.Equal(t, "Friday", y)

	y, err = c.Apply(Op{Kind: OpPostInc, Text: "postinc"})
	require.ErrorIs(t, err, constrained.ErrOutOfRange)
	require.EqualError(t, err, "value Saturday is out of range [Monday, Friday]")
	require.Equal(t, "Friday", y)
	require.Equal(t, "Friday", c.Value())

	_, err = c.Apply(Op{Kind: OpSub, Arg: "4", Text: "sub:4"})
	require.NoError(t, err)
	require.Equal(t, "Monday", c.Value())
}

func TestParseOp(t *testing.T) {
	op, err := ParseOp(" ADD:5 ")
	require.NoError(t, err)
	require.Equal(t, Op{Kind: OpAdd, Arg: "5", Text: "ADD:5"}, op)

	op, err = ParseOp("postdec")
	require.NoError(t, err)
	require.Equal(t, OpPostDec, op.Kind)
	require.False(t, op.Kind.HasOperand())

	errCases := []struct {
		in  string
		sub string
	}{
		{"pow:2", "unknown operation"},
		{"add", "needs an operand"},
		{"add:", "needs an operand"},
		{"inc:1", "takes no operand"},
		{"", "unknown operation"},
	}
	for _, tc := range errCases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseOp(tc.in)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.sub)
		})
	}

	_, err = ParseOps([]string{"inc", "bogus"})
	require.Error(t, err)
}

func TestEntry_Values(t *testing.T) {
	e, err := Lookup("workday")
	require.NoError(t, err)
	first, last := e.Bounds()
	values, more := e.Values(first, last, 10)
	require.False(t, more)
	require.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, values)

	values, more = e.Values(first, last, 2)
	require.True(t, more)
	require.Equal(t, []string{"Monday", "Tuesday"}, values)

	e, err = Lookup("wide")
	require.NoError(t, err)
	_, last = e.Bounds()
	lo := new(big.Int).Sub(last, big.NewInt(1))
	values, more = e.Values(lo, last, 5)
	require.False(t, more)
	require.Equal(t, []string{"9223372036854775806", "9223372036854775807"}, values)

	e, err = Lookup("void")
	require.NoError(t, err)
	first, last = e.Bounds()
	values, _ = e.Values(first, last, 5)
	require.Empty(t, values)
}

func TestGrade_String(t *testing.T) {
	require.Equal(t, "B", Grade('B').String())
	require.Equal(t, `'\x00'`, Grade(0).String())
	require.Equal(t, `'\n'`, Grade('\n').String())

	e, err := Lookup("grade")
	require.NoError(t, err)
	c, err := e.NewCalculator("C")
	require.NoError(t, err)
	_, err = c.Apply(Op{Kind: OpMul, Arg: "0", Text: "mul:0"})
	require.EqualError(t, err, `value '\x00' is out of range [A, F]`)
	require.Equal(t, "C", c.Value())
}
