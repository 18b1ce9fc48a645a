package verify

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/hupe1980/checkedint"
	"github.com/hupe1980/checkedint/internal/conv"
	"golang.org/x/exp/constraints"
)

var (
	bigOne      = big.NewInt(1)
	bigMinusOne = big.NewInt(-1)
)

// expect is the oracle's verdict for one case.
type expect struct {
	outcome Outcome
	value   *big.Int
}

func (e expect) String() string {
	if e.outcome == OK {
		return e.value.String()
	}
	return e.outcome.String()
}

// oracle computes op over unbounded integers and classifies the exact result
// against rep.
func oracle(op Op, a, b *big.Int, rep conv.Rep) expect {
	lo := big.NewInt(rep.MinInt64())
	hi := new(big.Int).SetUint64(rep.MaxUint64())

	r := new(big.Int)
	switch op {
	case OpAdd:
		r.Add(a, b)
	case OpSub:
		r.Sub(a, b)
	case OpMul:
		r.Mul(a, b)
	case OpQuo, OpRem:
		if b.Sign() == 0 {
			return expect{outcome: DivideByZero}
		}
		// min / -1 and min % -1 share the same failure, although the
		// remainder alone would fit.
		if rep.Signed && a.Cmp(lo) == 0 && b.Cmp(bigMinusOne) == 0 {
			return expect{outcome: Overflow}
		}
		if op == OpQuo {
			r.Quo(a, b)
		} else {
			r.Rem(a, b)
		}
	case OpNeg:
		r.Neg(a)
	case OpInc:
		r.Add(a, bigOne)
	case OpDec:
		r.Sub(a, bigOne)
	default:
		panic(fmt.Sprintf("verify: unknown operator %q", op))
	}

	switch {
	case r.Cmp(hi) > 0:
		return expect{outcome: Overflow}
	case r.Cmp(lo) < 0:
		return expect{outcome: Underflow}
	}
	return expect{outcome: OK, value: r}
}

// errInconsistent reports a checked operation whose side effects disagree
// with its return value.
var errInconsistent = errors.New("inconsistent mutation")

// evaluate runs op through checkedint. Increment and decrement are run in
// both prefix and postfix form and cross-checked.
func evaluate[T constraints.Integer](op Op, a, b T) (checkedint.Int[T], error) {
	x, y := checkedint.Of(a), checkedint.Of(b)
	switch op {
	case OpAdd:
		return x.Add(y)
	case OpSub:
		return x.Sub(y)
	case OpMul:
		return x.Mul(y)
	case OpQuo:
		return x.Quo(y)
	case OpRem:
		return x.Rem(y)
	case OpNeg:
		return x.Neg()
	case OpInc:
		return stepped(x, (*checkedint.Int[T]).Inc, (*checkedint.Int[T]).PostInc)
	case OpDec:
		return stepped(x, (*checkedint.Int[T]).Dec, (*checkedint.Int[T]).PostDec)
	default:
		panic(fmt.Sprintf("verify: unknown operator %q", op))
	}
}

func stepped[T constraints.Integer](x checkedint.Int[T], prefix, postfix func(*checkedint.Int[T]) (checkedint.Int[T], error)) (checkedint.Int[T], error) {
	pre, post := x, x

	r, err := prefix(&pre)
	prev, postErr := postfix(&post)

	if (err == nil) != (postErr == nil) {
		return checkedint.Int[T]{}, fmt.Errorf("%w: prefix error %v, postfix error %v", errInconsistent, err, postErr)
	}
	if err != nil {
		if pre.Ne(x) || post.Ne(x) {
			return checkedint.Int[T]{}, fmt.Errorf("%w: receiver changed on failure", errInconsistent)
		}
		return checkedint.Int[T]{}, err
	}
	if r.Ne(pre) || post.Ne(pre) || prev.Ne(x) {
		return checkedint.Int[T]{}, fmt.Errorf("%w: prefix %v, postfix %v returned %v", errInconsistent, r, post, prev)
	}
	return r, nil
}

// check evaluates one case and compares it with the oracle. It returns the
// expected outcome and, on disagreement, a Mismatch.
func check[T constraints.Integer](op Op, a, b T) (Outcome, *Mismatch) {
	want := oracle(op, checkedint.Of(a).Big(), checkedint.Of(b).Big(), conv.RepOf[T]())
	got, err := evaluate(op, a, b)

	outcome, known := outcomeOf(err)
	var gotStr string
	switch {
	case !known:
		gotStr = err.Error()
	case outcome != want.outcome:
		gotStr = expect{outcome: outcome, value: got.Big()}.String()
	case outcome == OK && got.Big().Cmp(want.value) != 0:
		gotStr = got.String()
	default:
		return want.outcome, nil
	}

	m := &Mismatch{Op: op, A: fmt.Sprint(a), Want: want.String(), Got: gotStr}
	if !op.Unary() {
		m.B = fmt.Sprint(b)
	}
	return want.outcome, m
}
