package constrained

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Ordinal limits the underlying type of a ranged value to the integer kinds:
// signed and unsigned integers of any width, characters (byte, rune) and
// enumerations declared on top of an integer type.
type Ordinal interface {
	constraints.Integer
}

// Bounds fixes the inclusive interval [First, Last] of a ranged type.
//
// Implementations are empty structs whose methods return constants, e.g.
//
//	type monthBounds struct{}
//
//	func (monthBounds) First() int { return 1 }
//	func (monthBounds) Last() int  { return 12 }
//
//	type Month = constrained.Value[int, monthBounds]
//
// The zero value of the implementing type must be usable, since the bounds are
// read from it and never stored in a ranged value. Last may be less than First,
// which describes a type with no valid value.
type Bounds[T Ordinal] interface {
	First() T
	Last() T
}

// First returns the lower bound of the range described by B.
func First[T Ordinal, B Bounds[T]]() T {
	var b B
	return b.First()
}

// Last returns the upper bound of the range described by B.
func Last[T Ordinal, B Bounds[T]]() T {
	var b B
	return b.Last()
}

// IsEmpty reports whether the range described by B admits no value (First > Last).
func IsEmpty[T Ordinal, B Bounds[T]]() bool {
	return First[T, B]() > Last[T, B]()
}

// Contains reports whether v lies within [First, Last] of B.
// It is false for every v when the range is empty.
func Contains[T Ordinal, B Bounds[T]](v T) bool {
	return First[T, B]() <= v && v <= Last[T, B]()
}

// RangeSize returns the number of values in [First, Last] of B, or zero for an
// empty range.
//
// The count is computed with big integers so the full domain of the widest
// types is reported exactly: a full-range uint64 or int64 holds 1<<64 values.
func RangeSize[T Ordinal, B Bounds[T]]() *big.Int {
	first, last := First[T, B](), Last[T, B]()
	if first > last {
		return new(big.Int)
	}
	n := new(big.Int).Sub(bigOf(last), bigOf(first))
	return n.Add(n, big.NewInt(1))
}

// Signed reports whether T is a signed integer kind.
func Signed[T Ordinal]() bool {
	var zero T
	return ^zero < zero
}

func bigOf[T Ordinal](v T) *big.Int {
	if Signed[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}
