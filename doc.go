/*
Package dpe provides an extended-range floating point type (Float), pairing
a float64 mantissa with a 64-bit binary exponent.

A Float represents mantissa × 2^exponent, with the mantissa kept in the band
0.5 <= |mantissa| < 1 (or exactly 0). The explicit exponent pushes the usable
dynamic range far beyond float64's ±1023, which is what numerical routines
like Gram-Schmidt orthogonalisation in lattice basis reduction need when
intermediate magnitudes blow past the native range.

Float is a value type; all operations return new values.

Simple example:

	f := dpe.FloatFromFloat64(1e300)
	fmt.Println(f.Mul(f))
	// Output: 1.0000000000000001e+600

Float can be created from a variety of sources:

	FloatFromFloat64(f float64) Float
	FloatFromFloat32(f float32) Float
	FloatFromInt64(v int64) Float
	FloatFromUint64(v uint64) Float
	FloatFromMantExp(m float64, exp int64) Float
	FloatFromBigFloat(b *big.Float) (out Float, exact bool)
	FloatFromString(s string) (out Float, exact bool, err error)

Float supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Precision is exactly float64's 53 significand bits; only the range is
extended. Converting back with AsFloat64() saturates to ±Inf or ±0 when the
exponent is outside the native range.
*/
package dpe
