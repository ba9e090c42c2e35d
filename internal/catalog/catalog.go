// Package catalog holds the named ranged types exposed by the command line.
package catalog

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/vipcxj/rangeconst/constrained"
	"github.com/vipcxj/rangeconst/constrained/pflagvalue"
)

var errKindMismatch = errors.New("underlying kinds differ")

// Entry describes one ranged type. The functions close over a concrete
// constrained.Value instantiation.
type Entry struct {
	Name        string
	Kind        string
	Description string
	First       string
	Last        string
	Size        *big.Int
	// Integral entries accept and render plain integers.
	Integral bool

	low, high *big.Int

	check      func(text string) (any, error)
	assign     func(src any) (string, error)
	widen      func(src any, dst *Entry) (string, error)
	fromInt64  func(n int64) (string, error)
	fromUint64 func(n uint64) (string, error)
	newCalc    func(start string) (Calculator, error)
	render     func(n *big.Int) string
}

// Calculator carries a ranged value through a sequence of operations.
type Calculator interface {
	// Value renders the current value.
	Value() string
	// Apply performs op and returns what the expression yields: the new value,
	// or the old one for postinc and postdec. A failed op leaves Value unchanged.
	Apply(op Op) (string, error)
}

var registry = map[string]*Entry{}

func init() {
	register[int, monthBounds]("month", "month of the year", pflagvalue.ParseInt[int])
	register[int, percentBounds]("percent", "percentage", pflagvalue.ParseInt[int])
	register[int, scoreBounds]("score", "test score", pflagvalue.ParseInt[int])
	register[int16, smallBounds]("small", "percentage stored in 16 bits", pflagvalue.ParseInt[int16])
	register[uint8, hourBounds]("hour", "hour of the day", pflagvalue.ParseInt[uint8])
	register[Grade, gradeBounds]("grade", "letter grade", pflagvalue.ParseChar[Grade])
	register[Weekday, workdayBounds]("workday", "working day of the week", WeekdayString)
	register[uint8, octetBounds]("octet", "every uint8", pflagvalue.ParseInt[uint8])
	register[int64, wideBounds]("wide", "every int64", pflagvalue.ParseInt[int64])
	register[int, voidBounds]("void", "empty range, rejects everything", pflagvalue.ParseInt[int])
}

func register[T constrained.Ordinal, B constrained.Bounds[T]](name, desc string, parse pflagvalue.Parser[T]) {
	var zero T
	_, named := any(zero).(fmt.Stringer)
	kind := fmt.Sprintf("%T", zero)
	if i := strings.LastIndex(kind, "."); i >= 0 {
		kind = kind[i+1:]
	}
	e := &Entry{
		Name:        name,
		Kind:        kind,
		Description: desc,
		First:       fmt.Sprint(constrained.First[T, B]()),
		Last:        fmt.Sprint(constrained.Last[T, B]()),
		Size:        constrained.RangeSize[T, B](),
		Integral:    !named,
		low:         bigOf(constrained.First[T, B]()),
		high:        bigOf(constrained.Last[T, B]()),
	}
	e.check = func(text string) (any, error) {
		var x constrained.Value[T, B]
		if err := pflagvalue.NewWithParser(&x, parse).Set(text); err != nil {
			return nil, err
		}
		return x, nil
	}
	e.assign = func(src any) (string, error) {
		g, ok := src.(constrained.Getter[T])
		if !ok {
			return "", errKindMismatch
		}
		var x constrained.Value[T, B]
		if err := x.Assign(g); err != nil {
			return "", err
		}
		return x.String(), nil
	}
	// widen hands a value of this entry to dst through the widest integer of
	// its signedness; dst checks it with ConvertFrom.
	e.widen = func(src any, dst *Entry) (string, error) {
		v := src.(constrained.Value[T, B]).Get()
		if constrained.Signed[T]() {
			return dst.fromInt64(int64(v))
		}
		return dst.fromUint64(uint64(v))
	}
	e.fromInt64 = func(n int64) (string, error) {
		x, err := constrained.ConvertFrom[B, T](n)
		if err != nil {
			return "", err
		}
		return x.String(), nil
	}
	e.fromUint64 = func(n uint64) (string, error) {
		x, err := constrained.ConvertFrom[B, T](n)
		if err != nil {
			return "", err
		}
		return x.String(), nil
	}
	e.newCalc = func(start string) (Calculator, error) {
		c := &calculator[T, B]{operand: pflagvalue.ParseInt[T]}
		if err := pflagvalue.NewWithParser(&c.x, parse).Set(start); err != nil {
			return nil, err
		}
		return c, nil
	}
	e.render = func(n *big.Int) string {
		return constrained.Must[T, B](fromBig[T](n)).String()
	}
	registry[name] = e
}

func bigOf[T constrained.Ordinal](v T) *big.Int {
	if constrained.Signed[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func fromBig[T constrained.Ordinal](n *big.Int) T {
	if n.IsInt64() {
		return T(n.Int64())
	}
	return T(n.Uint64())
}

// Lookup returns the entry registered under name.
func Lookup(name string) (*Entry, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown type %q, known types: %s", name, strings.Join(Names(), ", "))
	}
	return e, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// All returns the registered entries sorted by name.
func All() []*Entry {
	return lo.Map(Names(), func(name string, _ int) *Entry {
		return registry[name]
	})
}

// Empty reports whether the type admits no value.
func (e *Entry) Empty() bool {
	return e.Size.Sign() == 0
}

// Check validates text and returns the canonical rendering of the value.
func (e *Entry) Check(text string) (string, error) {
	v, err := e.check(text)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

// Convert validates text against e and then converts the value into dst.
// Values move directly between entries sharing an underlying kind; integral
// entries of different widths are converted by value, and a value the target
// cannot hold is reported against the target's bounds.
func (e *Entry) Convert(dst *Entry, text string) (string, error) {
	v, err := e.check(text)
	if err != nil {
		return "", err
	}
	out, err := dst.assign(v)
	if !errors.Is(err, errKindMismatch) {
		return out, err
	}
	if !e.Integral || !dst.Integral {
		return "", errors.Errorf("cannot convert %s (%s) to %s (%s)", e.Name, e.Kind, dst.Name, dst.Kind)
	}
	return e.widen(v, dst)
}

// Bounds returns First and Last as integers.
func (e *Entry) Bounds() (first, last *big.Int) {
	return new(big.Int).Set(e.low), new(big.Int).Set(e.high)
}

// Values renders the values from lo to hi inclusive, stopping after limit
// values. lo and hi must lie within the entry's range. more reports whether
// values were left out.
func (e *Entry) Values(lo, hi *big.Int, limit int) (values []string, more bool) {
	n := new(big.Int).Set(lo)
	for ; n.Cmp(hi) <= 0; n.Add(n, big.NewInt(1)) {
		if len(values) == limit {
			return values, true
		}
		values = append(values, e.render(n))
	}
	return values, false
}

// NewCalculator starts a calculation at start, which must be valid for e.
func (e *Entry) NewCalculator(start string) (Calculator, error) {
	return e.newCalc(start)
}

type calculator[T constrained.Ordinal, B constrained.Bounds[T]] struct {
	x       constrained.Value[T, B]
	operand pflagvalue.Parser[T]
}

func (c *calculator[T, B]) Value() string {
	return c.x.String()
}

func (c *calculator[T, B]) Apply(op Op) (string, error) {
	switch op.Kind {
	case OpInc:
		p, err := c.x.Inc()
		return p.String(), err
	case OpDec:
		p, err := c.x.Dec()
		return p.String(), err
	case OpPostInc:
		old, err := c.x.PostInc()
		return old.String(), err
	case OpPostDec:
		old, err := c.x.PostDec()
		return old.String(), err
	}

	n, err := c.operand(op.Arg)
	if err != nil {
		return "", err
	}
	switch op.Kind {
	case OpAdd:
		err = c.x.Add(n)
	case OpSub:
		err = c.x.Sub(n)
	case OpMul:
		err = c.x.Mul(n)
	case OpDiv:
		err = c.x.Div(n)
	case OpMod:
		err = c.x.Mod(n)
	default:
		return "", errors.Errorf("unsupported operation %q", op.Text)
	}
	return c.x.String(), err
}
