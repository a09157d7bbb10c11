package dpe

import (
	"fmt"
	"math"
)

// powMantUnderflow is the point at which math.Pow on the mantissa has sunk
// far enough toward the subnormal range that PowInt switches to its log2
// fallback. 2^-512 leaves plenty of margin above 2^-1022.
const powMantUnderflow = 1.3407807929942597e-154 // 2^-512

// PowInt returns f^k for k >= 0. Negative k panics.
//
// The mantissa power goes through math.Pow with k explicitly converted to
// float64 — a power function must always receive a floating point typed
// exponent argument, as generic overload sets on some platforms resolve an
// integer literal to an integer-only power with the wrong semantics. The
// exponent multiplication stays in checked integer arithmetic so large k
// cannot silently lose exponent bits.
//
// PowInt(f, 0) is One for every f, including zero. PowInt(zero, k) is zero
// for every k > 0.
func (f Float) PowInt(k int64) Float {
	if k < 0 {
		panic(fmt.Sprintf("dpe: pow with negative power %d", k))
	}
	if k == 0 {
		return One
	}
	if f.m == 0 {
		return Float{}
	}

	exp := mulExp(f.exp, k)

	m := math.Pow(f.m, float64(k))
	if am := math.Abs(m); am < powMantUnderflow {
		// |f.m|^k has left the range where float64 keeps full precision.
		// Rebuild it as 2^(k·log2|m|) split into integer and fractional
		// parts; the fractional power stays comfortably in [1, 2).
		l2 := float64(k) * math.Log2(math.Abs(f.m))
		fl := math.Floor(l2)
		m = math.Exp2(l2 - fl)
		if f.m < 0 && k&1 == 1 {
			m = -m
		}
		exp = addExp(exp, int64(fl))
	}

	frac, e := math.Frexp(m)
	return Float{m: frac, exp: addExp(exp, int64(e))}
}

// Exp returns e^f.
//
// The input is collapsed to a native float64 first, so this is inherently
// approximate and loses the extended input range; the result is reassembled
// as a mantissa/exponent pair, so representable results are not clipped to
// the native range (Exp of 1000 works even though math.Exp(1000) overflows).
// Results whose exponent cannot fit are fatal on the overflow side and
// flush to zero on the underflow side.
func (f Float) Exp() Float {
	t := f.AsFloat64()
	if t == 0 {
		return One
	}

	// e^t = 2^(t/ln2); split the binary exponent off and evaluate only the
	// remainder natively.
	e := math.Floor(t / math.Ln2)
	if e >= maxInt64Float {
		panic(fmt.Sprintf("dpe: exponent overflow in exp of %s", f))
	} else if e <= minInt64Float {
		return Float{}
	}

	// The remainder is in [0, ln2), so the native exponential lands in [1, 2).
	m := math.Exp(t - e*math.Ln2)
	frac, e2 := math.Frexp(m)
	return Float{m: frac, exp: addExp(int64(e), int64(e2))}
}

// Log returns the natural logarithm of f, yielding ErrLogNonPositive for
// zero or negative input. The full extended range folds down exactly:
// log(m × 2^exp) = log(m) + exp·ln2, and exp·ln2 cannot overflow a float64.
func (f Float) Log() (Float, error) {
	if f.m <= 0 {
		return Float{}, ErrLogNonPositive
	}
	return FloatFromFloat64(math.Log(f.m) + float64(f.exp)*math.Ln2), nil
}

// Sqrt returns the square root of f, yielding ErrSqrtNegative for negative
// input. An odd exponent is folded into the mantissa first so the exponent
// halves without remainder.
func (f Float) Sqrt() (Float, error) {
	if f.m < 0 {
		return Float{}, ErrSqrtNegative
	}
	if f.m == 0 {
		return Float{}, nil
	}

	m, exp := f.m, f.exp
	if exp&1 != 0 {
		m *= 2
		exp--
	}
	frac, e := math.Frexp(math.Sqrt(m))
	return Float{m: frac, exp: addExp(exp/2, int64(e))}, nil
}
