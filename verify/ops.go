package verify

import (
	"fmt"

	"github.com/hupe1980/checkedint"
)

// Op names a checked operator.
type Op string

// Supported operators.
const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpQuo Op = "quo"
	OpRem Op = "rem"
	OpNeg Op = "neg"
	OpInc Op = "inc"
	OpDec Op = "dec"
)

// AllOps lists every supported operator.
var AllOps = []Op{OpAdd, OpSub, OpMul, OpQuo, OpRem, OpNeg, OpInc, OpDec}

// ParseOp parses an operator name. Arithmetic symbols are accepted as well.
func ParseOp(s string) (Op, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*":
		return OpMul, nil
	case "/":
		return OpQuo, nil
	case "%":
		return OpRem, nil
	case "++":
		return OpInc, nil
	case "--":
		return OpDec, nil
	}
	for _, op := range AllOps {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("verify: unknown operator %q", s)
}

// Unary reports whether op takes a single operand.
func (o Op) Unary() bool {
	switch o {
	case OpNeg, OpInc, OpDec:
		return true
	default:
		return false
	}
}

// Outcome is the result class of one evaluation.
type Outcome uint8

// Outcomes.
const (
	OK Outcome = iota
	Overflow
	Underflow
	DivideByZero
	numOutcomes
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case DivideByZero:
		return "divide by zero"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// outcomeOf classifies the error returned by a checked operation. known is
// false for errors outside the checkedint taxonomy.
func outcomeOf(err error) (o Outcome, known bool) {
	if err == nil {
		return OK, true
	}
	kind, ok := checkedint.KindOf(err)
	if !ok {
		return 0, false
	}
	switch kind {
	case checkedint.Overflow:
		return Overflow, true
	case checkedint.Underflow:
		return Underflow, true
	case checkedint.DivideByZero:
		return DivideByZero, true
	}
	return 0, false
}
