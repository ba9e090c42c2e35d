package interval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in  string
		exp string
	}{
		{"", "(,)"},
		{"5", "[5,5]"},
		{" =-5 ", "[-5,-5]"},
		{">3", "(3,)"},
		{">=3", "[3,)"},
		{"<0x10", "(,16)"},
		{"<=7", "(,7]"},
		{"[1, 12]", "[1,12]"},
		{"(1,12)", "(1,12)"},
		{"( ,12]", "(,12]"},
		{"[-3,)", "[-3,)"},
		{"[0,18446744073709551615]", "[0,18446744073709551615]"},
		{"(4,5]", "(4,5]"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			r, err := Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.exp, r.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		in  string
		sub string
	}{
		{"[,5]", "infinite side must be open on left"},
		{"(5,]", "infinite side must be open on right"},
		{"[5]", "invalid interval syntax"},
		{"[9,1]", "empty interval"},
		{"(4,5)", "empty interval"},
		{"[5,5)", "empty interval"},
		{">=x", "invalid >=N"},
		{"=", "invalid =N"},
		{"[a,1]", "invalid left integer"},
		{"[1,b]", "invalid right integer"},
		{"five", "unrecognized interval format"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := Parse(tc.in)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.sub)
		})
	}
}

func TestIsEmpty_Malformed(t *testing.T) {
	require.True(t, Interval{MinUnbounded: true, MinInclude: true, MaxUnbounded: true}.IsEmpty())
	require.True(t, Interval{Min: big.NewInt(2), Max: big.NewInt(3)}.IsEmpty())
	require.False(t, Interval{Min: big.NewInt(2), Max: big.NewInt(4)}.IsEmpty())
	require.False(t, Unbounded().IsEmpty())
}

func TestClamp(t *testing.T) {
	cases := []struct {
		in     string
		first  int64
		last   int64
		lo, hi int64
		ok     bool
	}{
		{"", 1, 12, 1, 12, true},
		{"[3,6]", 1, 12, 3, 6, true},
		{"(3,)", 1, 12, 4, 12, true},
		{"<0", 1, 12, 1, 0, false},
		{"[10,20)", 1, 12, 10, 12, true},
		{"12", 1, 12, 12, 12, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			r, err := Parse(tc.in)
			require.NoError(t, err)
			lo, hi, ok := r.Clamp(big.NewInt(tc.first), big.NewInt(tc.last))
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.lo, lo.Int64())
				require.Equal(t, tc.hi, hi.Int64())
			}
		})
	}
}
