package dpe

import (
	"math"
)

// RandSource is the subset of rand.Source64 needed to generate random Floats.
type RandSource interface {
	Uint64() uint64
}

// RandFloat generates a normalized random Float from an external source. The
// mantissa is drawn uniformly from [0.5, 1) with a random sign; the exponent
// spans [-2^29, 2^29), far beyond the native float64 range but small enough
// that big.Float can still mirror sums and products of two of them.
func RandFloat(source RandSource) Float {
	bits := source.Uint64()

	// 52 random fraction bits under a fixed [1,2) exponent, halved into the
	// normalization band.
	m := fracFromBits(bits) / 2
	if bits&(1<<63) != 0 {
		m = -m
	}
	exp := int64(source.Uint64()%(1<<30)) - (1 << 29)
	return Float{m: m, exp: exp}
}

// fracFromBits assembles a float64 in [1, 2) from the low 52 bits.
func fracFromBits(bits uint64) float64 {
	return math.Float64frombits(bits&((1<<52)-1) | (1023 << 52))
}

// DifferenceFloat returns the absolute difference between a and b.
func DifferenceFloat(a, b Float) Float {
	if a.Cmp(b) >= 0 {
		return a.Sub(b).Abs()
	}
	return b.Sub(a).Abs()
}

func LargerFloat(a, b Float) Float {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func SmallerFloat(a, b Float) Float {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
