package dpe

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Float is an extended-range floating point number representing
// m × 2^exp. The zero value is a usable 0.
type Float struct {
	m   float64
	exp int64
}

var (
	ErrDivisionByZero = errors.New("dpe: division by zero")
	ErrLogNonPositive = errors.New("dpe: log of non-positive number")
	ErrSqrtNegative   = errors.New("dpe: sqrt of negative number")
)

// FloatFromMantExp creates a Float from a raw mantissa/exponent pair; it is
// the complement to Float.MantExp(). The pair is normalized, so the fields of
// the result are not necessarily the values passed in.
func FloatFromMantExp(m float64, exp int64) Float {
	if m == 0 {
		return Float{}
	}
	checkRep(m)
	frac, e := math.Frexp(m)
	return Float{m: frac, exp: addExp(exp, int64(e))}
}

func FloatFromInt64(v int64) Float { return FloatFromFloat64(float64(v)) }
func FloatFromUint64(v uint64) Float { return FloatFromFloat64(float64(v)) }

// FloatFromBigFloat creates a Float from a big.Float. The mantissa is rounded
// to the nearest float64; exact is false if rounding occurred. Inf inputs
// panic, as Float has no representation for them.
func FloatFromBigFloat(b *big.Float) (out Float, exact bool) {
	if b.Sign() == 0 {
		return out, true
	}
	if b.IsInf() {
		panic("dpe: no representation for Inf")
	}

	var mant big.Float
	exp := b.MantExp(&mant)

	m, acc := mant.Float64()

	// Rounding a high-precision mantissa can spill to exactly ±1.0; the
	// re-normalization folds that back into the exponent.
	frac, e := math.Frexp(m)
	return Float{m: frac, exp: addExp(int64(exp), int64(e))}, acc == big.Exact
}

// FloatFromString creates a Float from a string. Decimal strings are parsed
// through big.Float; strings of the form "<mantissa>p<exponent>" (the output
// of String() for values with large exponents) are parsed directly. Inf has
// no Float representation, so its spellings are invalid rather than a panic.
// exact is false if the mantissa had to be rounded to fit 53 bits.
func FloatFromString(s string) (out Float, exact bool, err error) {
	if i := strings.IndexByte(s, 'p'); i >= 0 && !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "-0x") {
		mb, _, merr := big.ParseFloat(s[:i], 10, 53, big.ToNearestEven)
		if merr != nil || mb.IsInf() {
			return out, false, fmt.Errorf("dpe: float string %q invalid", s)
		}
		exp, eerr := strconv.ParseInt(s[i+1:], 10, 64)
		if eerr != nil {
			return out, false, fmt.Errorf("dpe: float string %q invalid", s)
		}
		m, mexact := FloatFromBigFloat(mb)
		return m.Ldexp(exp), mexact && mb.Acc() == big.Exact, nil
	}

	b, _, err := big.ParseFloat(s, 10, 53, big.ToNearestEven)
	if err != nil || b.IsInf() {
		return out, false, fmt.Errorf("dpe: float string %q invalid", s)
	}
	out, exact = FloatFromBigFloat(b)
	return out, exact && b.Acc() == big.Exact, nil
}

func (f Float) IsZero() bool { return f == zeroFloat }

// MantExp returns access to the Float as a raw mantissa/exponent pair. See
// FloatFromMantExp() for the counterpart. For nonzero values the mantissa
// satisfies 0.5 <= |m| < 1.
func (f Float) MantExp() (m float64, exp int64) { return f.m, f.exp }

func (f Float) Sign() int {
	if f.m == 0 {
		return 0
	} else if f.m < 0 {
		return -1
	}
	return 1
}

func (f Float) String() string {
	if f.m == 0 {
		return "0"
	}
	if f.exp <= stringExpLimit && f.exp >= -stringExpLimit {
		return f.AsBigFloat().Text('g', 17)
	}
	return strconv.FormatFloat(f.m, 'g', 17, 64) + "p" + strconv.FormatInt(f.exp, 10)
}

func (f Float) Format(s fmt.State, c rune) {
	// big.Float has no 's' verb, so that one goes through String().
	//
	// FIXME: Verbs and flags are ignored once the exponent is too large for
	// decimal formatting. Good enough for now, but not forever.
	if c == 's' || f.exp > stringExpLimit || f.exp < -stringExpLimit {
		fmt.Fprint(s, f.String())
		return
	}
	f.AsBigFloat().Format(s, c)
}

// AsBigFloat allocates a new big.Float and copies this Float into it. The
// conversion is exact unless the exponent is outside big.Float's range, in
// which case the result saturates to ±Inf or ±0.
func (f Float) AsBigFloat() (b *big.Float) {
	b = new(big.Float).SetPrec(53).SetFloat64(f.m)
	if f.m == 0 {
		return b
	}
	if f.exp > bigFloatExpLimit {
		return b.SetInf(f.m < 0)
	} else if f.exp < -bigFloatExpLimit {
		return b.SetFloat64(math.Copysign(0, f.m))
	}
	return b.SetMantExp(b, int(f.exp))
}

func (f Float) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Float) UnmarshalText(bts []byte) (err error) {
	v, _, err := FloatFromString(string(bts))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Float) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Float) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("dpe: float invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := FloatFromString(string(bts))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// checkRep rejects mantissa values Float cannot represent. NaN and Inf have
// no mantissa/exponent split, and admitting them would leave an
// unnormalizable value circulating through arithmetic unnoticed.
func checkRep(m float64) {
	if math.IsNaN(m) {
		panic("dpe: no representation for NaN")
	}
	if math.IsInf(m, 0) {
		panic("dpe: no representation for Inf")
	}
}

// addExp adds two exponents, treating int64 wraparound as fatal. The whole
// point of the wide exponent is that overflowing it means the surrounding
// computation has diverged.
func addExp(a, b int64) int64 {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		panic(fmt.Sprintf("dpe: exponent overflow (%d + %d)", a, b))
	}
	return c
}

// subExp is addExp for subtraction; -minInt64 is not representable, so this
// cannot be written in terms of addExp.
func subExp(a, b int64) int64 {
	c := a - b
	if (b < 0 && c < a) || (b > 0 && c > a) {
		panic(fmt.Sprintf("dpe: exponent overflow (%d - %d)", a, b))
	}
	return c
}

// mulExp multiplies an exponent by an integer power, treating overflow as
// fatal. Computed in integer arithmetic; going through float64 would silently
// lose the low bits for large factors.
func mulExp(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a == minInt64 || b == minInt64 {
		panic(fmt.Sprintf("dpe: exponent overflow (%d * %d)", a, b))
	}
	c := a * b
	if c/b != a {
		panic(fmt.Sprintf("dpe: exponent overflow (%d * %d)", a, b))
	}
	return c
}
