package catalog

import (
	"strings"

	"github.com/pkg/errors"
)

type OpKind int

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpInc
	OpDec
	OpPostInc
	OpPostDec
)

var opNames = map[string]OpKind{
	"add":     OpAdd,
	"sub":     OpSub,
	"mul":     OpMul,
	"div":     OpDiv,
	"mod":     OpMod,
	"inc":     OpInc,
	"dec":     OpDec,
	"postinc": OpPostInc,
	"postdec": OpPostDec,
}

// HasOperand reports whether the operation takes an operand (the compound
// arithmetic ones) or not (increments and decrements).
func (k OpKind) HasOperand() bool {
	return k <= OpMod
}

// Op is one step of a calculation.
type Op struct {
	Kind OpKind
	Arg  string
	Text string
}

func (o Op) String() string {
	return o.Text
}

// ParseOp parses "add:N", "sub:N", "mul:N", "div:N", "mod:N", "inc", "dec",
// "postinc" or "postdec".
func ParseOp(s string) (Op, error) {
	text := strings.TrimSpace(s)
	name, arg, hasArg := strings.Cut(text, ":")
	kind, ok := opNames[strings.ToLower(name)]
	if !ok {
		return Op{}, errors.Errorf("unknown operation %q", s)
	}
	if kind.HasOperand() && (!hasArg || strings.TrimSpace(arg) == "") {
		return Op{}, errors.Errorf("operation %q needs an operand, e.g. %s:1", s, name)
	}
	if !kind.HasOperand() && hasArg {
		return Op{}, errors.Errorf("operation %q takes no operand", s)
	}
	return Op{Kind: kind, Arg: strings.TrimSpace(arg), Text: text}, nil
}

// ParseOps parses every token with ParseOp.
func ParseOps(tokens []string) ([]Op, error) {
	ops := make([]Op, 0, len(tokens))
	for _, tok := range tokens {
		op, err := ParseOp(tok)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
