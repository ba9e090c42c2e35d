// Package constrained implements range-constrained integer values.
//
// A Value[T, B] wraps one T and guarantees, after every successful construction
// or mutation, that First <= v <= Last where the bounds come from the type
// argument B. Bounds are part of the type and are never stored, so a Value
// occupies exactly the memory of one T.
//
// Arithmetic is carried out in T's own domain, wrapping exactly as T wraps, and
// only the final result is range checked. A failed mutation leaves the value
// untouched.
package constrained

import (
	"cmp"
	"fmt"
	"math/big"
)

// Getter is implemented by every ranged value and exposes the underlying value.
type Getter[T Ordinal] interface {
	Get() T
}

// Value is an integer constrained to the inclusive range [B.First(), B.Last()].
//
// The zero value holds First. This includes empty ranges, where the zero value
// is the only reachable state and every explicit assignment fails.
type Value[T Ordinal, B Bounds[T]] struct {
	// offset from First, so that the zero value reads as First
	off T
}

// New returns a Value holding v, or an *OutOfRangeError if v is outside [First, Last].
func New[T Ordinal, B Bounds[T]](v T) (Value[T, B], error) {
	var x Value[T, B]
	if err := x.Set(v); err != nil {
		return Value[T, B]{}, err
	}
	return x, nil
}

// Must is like New but panics with the *OutOfRangeError.
func Must[T Ordinal, B Bounds[T]](v T) Value[T, B] {
	x, err := New[T, B](v)
	if err != nil {
		panic(err)
	}
	return x
}

// Convert returns src re-checked against the bounds of B. Both types share the
// underlying T; a failure reports the bounds of B.
//
//	m, _ := constrained.New[int, monthBounds](7)
//	p, err := constrained.Convert[percentBounds](m)
func Convert[B Bounds[T], T Ordinal, S Bounds[T]](src Value[T, S]) (Value[T, B], error) {
	return New[T, B](src.Get())
}

// ConvertFrom returns v, a value of any integer kind, as a Value[T, B].
// Values that T cannot represent are rejected with a *ConversionError instead
// of being truncated; representable values go through New.
//
//	s, err := constrained.ConvertFrom[smallBounds, int16](p.Get())
func ConvertFrom[B Bounds[T], T Ordinal, S Ordinal](v S) (Value[T, B], error) {
	t := T(v)
	// a sign flip or a lossy round trip means v does not fit in T
	if (v < 0) != (t < 0) || S(t) != v {
		return Value[T, B]{}, &ConversionError{
			Value: bigOf(v),
			First: bigOf(First[T, B]()),
			Last:  bigOf(Last[T, B]()),
		}
	}
	return New[T, B](t)
}

func check[T Ordinal, B Bounds[T]](v T) error {
	if !Contains[T, B](v) {
		return &OutOfRangeError[T]{Value: v, First: First[T, B](), Last: Last[T, B]()}
	}
	return nil
}

// Get returns the underlying value. It never fails.
func (x Value[T, B]) Get() T {
	return First[T, B]() + x.off
}

// First returns the lower bound of the type of x.
func (x Value[T, B]) First() T {
	return First[T, B]()
}

// Last returns the upper bound of the type of x.
func (x Value[T, B]) Last() T {
	return Last[T, B]()
}

// RangeSize returns the number of values admitted by the type of x.
func (x Value[T, B]) RangeSize() *big.Int {
	return RangeSize[T, B]()
}

// Set assigns v after the range check. On failure x is unchanged.
func (x *Value[T, B]) Set(v T) error {
	if err := check[T, B](v); err != nil {
		return err
	}
	x.off = v - First[T, B]()
	return nil
}

// Assign copies the value of src, which may be a ranged value with other bounds.
// The check uses the bounds of x.
func (x *Value[T, B]) Assign(src Getter[T]) error {
	return x.Set(src.Get())
}

// Apply evaluates f on the current value and assigns the result. Only the
// result is checked, so f may pass through values outside the range:
//
//	x.Apply(func(v int) int { return v + y - y })
func (x *Value[T, B]) Apply(f func(T) T) error {
	return x.Set(f(x.Get()))
}

// Add is the compound x += d.
func (x *Value[T, B]) Add(d T) error {
	return x.Set(x.Get() + d)
}

// Sub is the compound x -= d.
func (x *Value[T, B]) Sub(d T) error {
	return x.Set(x.Get() - d)
}

// Mul is the compound x *= d.
func (x *Value[T, B]) Mul(d T) error {
	return x.Set(x.Get() * d)
}

// Div is the compound x /= d. A zero d returns ErrDivideByZero.
func (x *Value[T, B]) Div(d T) error {
	if d == 0 {
		return ErrDivideByZero
	}
	return x.Set(x.Get() / d)
}

// Mod is the compound x %= d. A zero d returns ErrDivideByZero.
func (x *Value[T, B]) Mod(d T) error {
	if d == 0 {
		return ErrDivideByZero
	}
	return x.Set(x.Get() % d)
}

// Inc is the prefix increment. It returns x itself so calls can be chained.
func (x *Value[T, B]) Inc() (*Value[T, B], error) {
	return x, x.Set(x.Get() + 1)
}

// Dec is the prefix decrement. It returns x itself so calls can be chained.
func (x *Value[T, B]) Dec() (*Value[T, B], error) {
	return x, x.Set(x.Get() - 1)
}

// PostInc is the postfix increment: it returns a copy of x taken before the
// increment.
func (x *Value[T, B]) PostInc() (Value[T, B], error) {
	old := *x
	return old, x.Set(old.Get() + 1)
}

// PostDec is the postfix decrement: it returns a copy of x taken before the
// decrement.
func (x *Value[T, B]) PostDec() (Value[T, B], error) {
	old := *x
	return old, x.Set(old.Get() - 1)
}

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than v.
func (x Value[T, B]) Compare(v T) int {
	return cmp.Compare(x.Get(), v)
}

func (x Value[T, B]) Eq(v T) bool { return x.Get() == v }
func (x Value[T, B]) Ne(v T) bool { return x.Get() != v }
func (x Value[T, B]) Lt(v T) bool { return x.Get() < v }
func (x Value[T, B]) Le(v T) bool { return x.Get() <= v }
func (x Value[T, B]) Gt(v T) bool { return x.Get() > v }
func (x Value[T, B]) Ge(v T) bool { return x.Get() >= v }

// Compare orders two ranged values over the same T, whatever their bounds.
func Compare[T Ordinal](a, b Getter[T]) int {
	return cmp.Compare(a.Get(), b.Get())
}

// String renders the underlying value exactly as fmt.Sprint would.
func (x Value[T, B]) String() string {
	return fmt.Sprint(x.Get())
}

// Format passes the verb and flags through to the underlying value, except
// %s which renders String so plain integers print as numbers. %q keeps the
// underlying meaning: a quoted character for plain integers, a quoted name
// for types with a String method.
func (x Value[T, B]) Format(f fmt.State, verb rune) {
	if verb == 's' {
		fmt.Fprintf(f, fmt.FormatString(f, verb), x.String())
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), x.Get())
}
