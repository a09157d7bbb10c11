package dpe

import (
	"math"
)

// FloatFromFloat64 creates a normalized Float with the same value as f.
// Every finite float64 (including subnormals) converts exactly, so
// FloatFromFloat64(d).AsFloat64() == d.
//
// NaN and Inf panic: Float has no representation for either.
func FloatFromFloat64(f float64) Float {
	if f == 0 {
		return Float{}
	}
	checkRep(f)
	frac, e := math.Frexp(f)
	return Float{m: frac, exp: int64(e)}
}

func FloatFromFloat32(f float32) Float {
	return FloatFromFloat64(float64(f))
}

// AsFloat64 converts back to a native float64, saturating to ±Inf when the
// exponent is above the native range and to ±0 when it is below. This is a
// deliberately lossy escape hatch; precision-critical paths should stay in
// Float arithmetic.
func (f Float) AsFloat64() float64 {
	if f.m == 0 {
		return 0
	}
	e := f.exp
	if e > asFloatClamp {
		e = asFloatClamp
	} else if e < -asFloatClamp {
		e = -asFloatClamp
	}
	// Ldexp saturates to ±Inf/±0 itself once the clamped exponent is out of
	// the native band.
	return math.Ldexp(f.m, int(e))
}

func (f Float) AsFloat32() float32 {
	return float32(f.AsFloat64())
}
