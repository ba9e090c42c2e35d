//go:generate go run github.com/dmarkham/enumer -type=Weekday
package catalog

import (
	"math"
	"strconv"
	"unicode"
)

type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Grade is a letter grade. It prints as the letter itself, or as a quoted
// escape such as '\x00' when the code point is not printable.
type Grade rune

func (g Grade) String() string {
	if !unicode.IsPrint(rune(g)) {
		return strconv.QuoteRune(rune(g))
	}
	return string(rune(g))
}

type monthBounds struct{}

func (monthBounds) First() int { return 1 }
func (monthBounds) Last() int  { return 12 }

type percentBounds struct{}

func (percentBounds) First() int { return 0 }
func (percentBounds) Last() int  { return 100 }

type scoreBounds struct{}

func (scoreBounds) First() int { return 15 }
func (scoreBounds) Last() int  { return 130 }

type smallBounds struct{}

func (smallBounds) First() int16 { return 0 }
func (smallBounds) Last() int16  { return 100 }

type hourBounds struct{}

func (hourBounds) First() uint8 { return 0 }
func (hourBounds) Last() uint8  { return 23 }

type gradeBounds struct{}

func (gradeBounds) First() Grade { return 'A' }
func (gradeBounds) Last() Grade  { return 'F' }

type workdayBounds struct{}

func (workdayBounds) First() Weekday { return Monday }
func (workdayBounds) Last() Weekday  { return Friday }

type octetBounds struct{}

func (octetBounds) First() uint8 { return 0 }
func (octetBounds) Last() uint8  { return math.MaxUint8 }

type wideBounds struct{}

func (wideBounds) First() int64 { return math.MinInt64 }
func (wideBounds) Last() int64  { return math.MaxInt64 }

// voidBounds describes a range with no member.
type voidBounds struct{}

func (voidBounds) First() int { return 1 }
func (voidBounds) Last() int  { return 0 }
