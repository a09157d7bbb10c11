package dpe

import (
	"math"
)

func (f Float) Neg() Float {
	f.m = -f.m
	return f
}

func (f Float) Abs() Float {
	if f.m < 0 {
		f.m = -f.m
	}
	return f
}

// Add returns the sum of two Floats. The operand with the smaller exponent
// has its mantissa shifted right to align exponents before the mantissas are
// combined; if the gap exceeds the 53-bit significand the smaller operand
// cannot influence the result and the larger is returned unchanged. This is
// what keeps dpe.FloatFromFloat64(1e300).Add(dpe.FloatFromFloat64(1e-300))
// from losing the big term.
func (f Float) Add(n Float) Float {
	if f.m == 0 {
		return n
	} else if n.m == 0 {
		return f
	}

	hi, lo := f, n
	if lo.exp > hi.exp {
		hi, lo = lo, hi
	}

	// A negative diff here means the subtraction wrapped, which only happens
	// when the exponents are astronomically far apart.
	diff := hi.exp - lo.exp
	if diff < 0 || diff > alignBits {
		return hi
	}

	// Both terms are exact float64s (the shift is a power of two and cannot
	// go subnormal for diff <= alignBits), so the sum rounds once.
	m := hi.m + math.Ldexp(lo.m, -int(diff))
	if m == 0 {
		return Float{}
	}
	frac, e := math.Frexp(m)
	return Float{m: frac, exp: addExp(hi.exp, int64(e))}
}

func (f Float) Sub(n Float) Float {
	return f.Add(n.Neg())
}

// Mul returns the product of two Floats. Mantissas multiply, exponents add;
// exponent overflow is fatal.
func (f Float) Mul(n Float) Float {
	if f.m == 0 || n.m == 0 {
		return Float{}
	}

	// |m| lands in [0.25, 1); normalization moves at most one bit back into
	// the exponent.
	m := f.m * n.m
	frac, e := math.Frexp(m)
	return Float{m: frac, exp: addExp(addExp(f.exp, n.exp), int64(e))}
}

// Quo returns the quotient f/n. A zero divisor yields ErrDivisionByZero
// rather than a NaN or a runtime panic; extended-range arithmetic exists to
// keep numerical failures visible.
func (f Float) Quo(n Float) (Float, error) {
	if n.m == 0 {
		return Float{}, ErrDivisionByZero
	}
	if f.m == 0 {
		return Float{}, nil
	}

	// |m| lands in (0.5, 2).
	m := f.m / n.m
	frac, e := math.Frexp(m)
	return Float{m: frac, exp: addExp(subExp(f.exp, n.exp), int64(e))}, nil
}

// Ldexp returns f × 2^n. Only the exponent moves, so the result is exact
// unless the exponent overflows, which is fatal.
func (f Float) Ldexp(n int64) Float {
	if f.m == 0 {
		return f
	}
	f.exp = addExp(f.exp, n)
	return f
}

// Cmp compares f to n and returns:
//
//	< 0 if f <  n
//	  0 if f == n
//	> 0 if f >  n
//
// Normalization makes the comparison exact: for operands of the same sign
// the exponent orders magnitudes and the mantissa breaks ties. No conversion
// to a wider type is needed.
func (f Float) Cmp(n Float) int {
	if f == n {
		return 0
	}

	fs, ns := f.Sign(), n.Sign()
	if fs != ns {
		if fs < ns {
			return -1
		}
		return 1
	}

	if f.exp != n.exp {
		// For negative operands a larger exponent means a larger magnitude,
		// which orders the other way.
		if (f.exp < n.exp) == (fs > 0) {
			return -1
		}
		return 1
	}
	if f.m < n.m {
		return -1
	}
	return 1
}

func (f Float) Equal(n Float) bool {
	return f == n
}

func (f Float) LessThan(n Float) bool         { return f.Cmp(n) < 0 }
func (f Float) LessOrEqualTo(n Float) bool    { return f.Cmp(n) <= 0 }
func (f Float) GreaterThan(n Float) bool      { return f.Cmp(n) > 0 }
func (f Float) GreaterOrEqualTo(n Float) bool { return f.Cmp(n) >= 0 }
