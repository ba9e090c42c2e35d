package constrained

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange matches every *OutOfRangeError regardless of its type argument.
	ErrOutOfRange = errors.New("value is out of range")

	// ErrDivideByZero is returned by Div and Mod for a zero divisor.
	ErrDivideByZero = errors.New("integer divide by zero")
)

// OutOfRangeError reports a value rejected by the range check of a ranged type.
// First and Last are the bounds of the type that rejected the value.
type OutOfRangeError[T Ordinal] struct {
	Value T
	First T
	Last  T
}

func (e *OutOfRangeError[T]) Error() string {
	return fmt.Sprintf("value %v is out of range [%v, %v]", e.Value, e.First, e.Last)
}

// Is makes errors.Is(err, ErrOutOfRange) hold for any instantiation.
func (e *OutOfRangeError[T]) Is(target error) bool {
	return target == ErrOutOfRange
}

// ConversionError reports a value of another integer kind that ConvertFrom
// rejected because it cannot be represented in the target kind at all. Any
// such value lies outside the target's range, so it matches ErrOutOfRange too.
type ConversionError struct {
	Value *big.Int
	First *big.Int
	Last  *big.Int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("value %v is out of range [%v, %v]", e.Value, e.First, e.Last)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrOutOfRange
}
