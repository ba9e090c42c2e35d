// Package pflagvalue binds ranged values to command line flags.
//
//	var repeat constrained.Value[int, repeatBounds]
//	cmd.Flags().Var(pflagvalue.New(&repeat), "repeat", "number of passes")
package pflagvalue

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/vipcxj/rangeconst/constrained"
)

// Parser turns flag text into the underlying value of a ranged type.
type Parser[T constrained.Ordinal] func(s string) (T, error)

// Value adapts a *constrained.Value to pflag.Value.
type Value[T constrained.Ordinal, B constrained.Bounds[T]] struct {
	target *constrained.Value[T, B]
	parse  Parser[T]
}

var _ pflag.Value = (*Value[int, nopBounds])(nil)

type nopBounds struct{}

func (nopBounds) First() int { return 0 }
func (nopBounds) Last() int  { return 0 }

// New binds target using ParseInt.
func New[T constrained.Ordinal, B constrained.Bounds[T]](target *constrained.Value[T, B]) *Value[T, B] {
	return NewWithParser(target, ParseInt[T])
}

// NewWithParser binds target using parse, e.g. an enumer generated XxxString function.
func NewWithParser[T constrained.Ordinal, B constrained.Bounds[T]](target *constrained.Value[T, B], parse Parser[T]) *Value[T, B] {
	return &Value[T, B]{target: target, parse: parse}
}

func (v *Value[T, B]) String() string {
	if v == nil || v.target == nil {
		return ""
	}
	return v.target.String()
}

// Set parses s and assigns it to the bound value. Both parse and range failures
// leave the bound value unchanged.
func (v *Value[T, B]) Set(s string) error {
	n, err := v.parse(s)
	if err != nil {
		return err
	}
	return v.target.Set(n)
}

// Type describes the accepted values, e.g. "int[1..12]".
func (v *Value[T, B]) Type() string {
	return TypeName[T, B]()
}

// TypeName returns "<kind>[first..last]" for the ranged type.
func TypeName[T constrained.Ordinal, B constrained.Bounds[T]]() string {
	var zero T
	return fmt.Sprintf("%T[%v..%v]", zero, constrained.First[T, B](), constrained.Last[T, B]())
}

// ParseInt parses s with strconv using the bit size and signedness of T.
// The base is derived from the prefix, so "0x1f", "0o17" and "0b101" are accepted.
func ParseInt[T constrained.Ordinal](s string) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	s = strings.TrimSpace(s)
	if constrained.Signed[T]() {
		n, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return zero, errors.Wrapf(err, "invalid %T", zero)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return zero, errors.Wrapf(err, "invalid %T", zero)
	}
	return T(n), nil
}

// ParseChar accepts exactly one character and returns its code point.
func ParseChar[T constrained.Ordinal](s string) (T, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, errors.Errorf("invalid character %q: want exactly one character", s)
	}
	c := T(r[0])
	if rune(c) != r[0] {
		return 0, errors.Errorf("invalid character %q: does not fit %T", s, c)
	}
	return c, nil
}
