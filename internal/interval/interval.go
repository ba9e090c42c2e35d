// Package interval parses integer interval expressions such as "[3,9)" or ">=5"
// used to select part of a ranged type's domain.
package interval

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

type Interval struct {
	Min          *big.Int
	MinInclude   bool
	Max          *big.Int
	MaxInclude   bool
	MinUnbounded bool // true means the left end is -inf
	MaxUnbounded bool // true means the right end is +inf
}

// Unbounded returns (,), which contains every integer.
func Unbounded() Interval {
	return Interval{MinUnbounded: true, MaxUnbounded: true}
}

// Closed returns [min, max].
func Closed(min, max *big.Int) Interval {
	return Interval{Min: min, MinInclude: true, Max: max, MaxInclude: true}
}

// Parse parses value and returns an Interval.
//
// Supported formats:
//   - N
//   - =N
//   - >N, >=N, <N, <=N
//   - (min,max), (min,max], [min,max), [min,max]
//   - (,max), (min,), (,max] etc.
//
// Spaces are ignored and integers may carry a 0x, 0o or 0b prefix. An empty
// value is the unbounded interval. An unbounded side must be open.
func Parse(value string) (Interval, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return Unbounded(), nil
	}

	r := Unbounded()
	for _, op := range []string{">=", "<=", "=", ">", "<"} {
		rest, ok := strings.CutPrefix(s, op)
		if !ok {
			continue
		}
		n, err := parseInt(rest)
		if err != nil {
			return Interval{}, errors.Wrapf(err, "invalid %sN", op)
		}
		switch op {
		case "=":
			return Closed(n, n), nil
		case ">=", ">":
			r.Min, r.MinInclude, r.MinUnbounded = n, op == ">=", false
		case "<=", "<":
			r.Max, r.MaxInclude, r.MaxUnbounded = n, op == "<=", false
		}

		return r, nil
	}

	if len(s) >= 2 && strings.ContainsRune("([", rune(s[0])) && strings.ContainsRune(")]", rune(s[len(s)-1])) {
		return parseBrackets(value, s)
	}

	n, err := parseInt(s)
	if err != nil {
		return Interval{}, errors.Errorf("unrecognized interval format: %s", value)
	}

	return Closed(n, n), nil
}

func parseBrackets(value, s string) (Interval, error) {
	leftInclusive := s[0] == '['
	rightInclusive := s[len(s)-1] == ']'
	left, right, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok {
		return Interval{}, errors.Errorf("invalid interval syntax: %s", value)
	}

	r := Unbounded()
	if left = strings.TrimSpace(left); left != "" {
		n, err := parseInt(left)
		if err != nil {
			return Interval{}, errors.Wrap(err, "invalid left integer")
		}
		r.Min, r.MinInclude, r.MinUnbounded = n, leftInclusive, false
	} else if leftInclusive {
		return Interval{}, errors.Errorf("infinite side must be open on left: %s", value)
	}
	if right = strings.TrimSpace(right); right != "" {
		n, err := parseInt(right)
		if err != nil {
			return Interval{}, errors.Wrap(err, "invalid right integer")
		}
		r.Max, r.MaxInclude, r.MaxUnbounded = n, rightInclusive, false
	} else if rightInclusive {
		return Interval{}, errors.Errorf("infinite side must be open on right: %s", value)
	}

	if r.IsEmpty() {
		return Interval{}, errors.Errorf("empty interval: %s", value)
	}

	return r, nil
}

func parseInt(tok string) (*big.Int, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, errors.New("empty integer")
	}
	n, ok := new(big.Int).SetString(tok, 0)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", tok)
	}

	return n, nil
}

// Lowest returns the lowest integer in the interval, or false when the left side is unbounded.
func (r Interval) Lowest() (*big.Int, bool) {
	if r.MinUnbounded {
		return nil, false
	}
	if r.MinInclude {
		return new(big.Int).Set(r.Min), true
	}

	return new(big.Int).Add(r.Min, big.NewInt(1)), true
}

// Highest returns the highest integer in the interval, or false when the right side is unbounded.
func (r Interval) Highest() (*big.Int, bool) {
	if r.MaxUnbounded {
		return nil, false
	}
	if r.MaxInclude {
		return new(big.Int).Set(r.Max), true
	}

	return new(big.Int).Sub(r.Max, big.NewInt(1)), true
}

// IsEmpty reports whether no integer lies in the interval. An unbounded side
// marked inclusive is malformed and also reported as empty.
func (r Interval) IsEmpty() bool {
	if (r.MinUnbounded && r.MinInclude) || (r.MaxUnbounded && r.MaxInclude) {
		return true
	}
	lo, okLo := r.Lowest()
	hi, okHi := r.Highest()

	return okLo && okHi && lo.Cmp(hi) > 0
}

// Clamp intersects the interval with [first, last] and returns the closed
// bounds of the result. ok is false when the intersection is empty.
func (r Interval) Clamp(first, last *big.Int) (lo, hi *big.Int, ok bool) {
	lo, hi = new(big.Int).Set(first), new(big.Int).Set(last)
	if r.IsEmpty() {
		return lo, hi, false
	}
	if l, bounded := r.Lowest(); bounded && l.Cmp(lo) > 0 {
		lo = l
	}
	if h, bounded := r.Highest(); bounded && h.Cmp(hi) < 0 {
		hi = h
	}

	return lo, hi, lo.Cmp(hi) <= 0
}

func (r Interval) String() string {
	var b strings.Builder
	if r.MinUnbounded {
		b.WriteString("(")
	} else {
		if r.MinInclude {
			b.WriteString("[")
		} else {
			b.WriteString("(")
		}
		b.WriteString(r.Min.String())
	}
	b.WriteString(",")
	if r.MaxUnbounded {
		b.WriteString(")")
	} else {
		b.WriteString(r.Max.String())
		if r.MaxInclude {
			b.WriteString("]")
		} else {
			b.WriteString(")")
		}
	}

	return b.String()
}
