package dpe

import (
	"math/big"
)

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63

	maxInt64Float = float64(maxInt64) // (1<<63) - 1
	minInt64Float = float64(minInt64) // -(1<<63)

	// alignBits is the widest exponent gap that can still influence a 53-bit
	// significand during Add/Sub alignment. Anything wider and the smaller
	// operand vanishes entirely.
	alignBits = 55

	// asFloatClamp bounds the exponent passed to math.Ldexp in AsFloat64.
	// Ldexp saturates to ±Inf/±0 well inside this band, so clamping first
	// only avoids the int64-to-int conversion biting on 32-bit platforms.
	asFloatClamp = 1 << 12

	// bigFloatExpLimit is a safe margin inside big.Float's int32 exponent
	// range; Floats beyond it cannot be converted to a big.Float at all.
	bigFloatExpLimit = 1<<31 - 64

	// stringExpLimit bounds the exponents String() formats as decimal.
	// big.Float's decimal conversion materialises every digit of the
	// integer part internally, which gets out of hand long before the
	// exponent leaves big.Float's range, so larger values use the exact
	// "<mantissa>p<exponent>" form instead.
	stringExpLimit = 1 << 14
)

var (
	// One is the normalized representation of 1 (0.5 × 2^1).
	One = Float{m: 0.5, exp: 1}

	zeroFloat Float

	// This specifies the maximum relative error allowed between a Float
	// operation and the same operation performed by big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")

	// powDiffLimit is the looser bound used for PowInt, which accumulates a
	// rounding error per squaring step inside math.Pow.
	powDiffLimit, _ = new(big.Float).SetString("1e-13")
)
