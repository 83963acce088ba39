package softfloat16

import (
	"math"
	"math/bits"
	"strconv"
)

// FromF32 converts a float32 to the nearest Float16, rounding to nearest,
// ties to even. Values outside the finite f16 range saturate to signed
// infinity; f32 subnormals, which are all smaller in magnitude than the
// smallest f16 subnormal, round to a signed zero.
func FromF32(f32 float32) Float16 {
	bits32 := math.Float32bits(f32)
	s := uint16(bits32>>31) & 1
	exp32 := (bits32 >> 23) & 0xFF
	mant32 := bits32 & 0x7FFFFF

	if exp32 == 0 {
		return signedZero(s)
	}
	if exp32 == 0xFF {
		if mant32 == 0 {
			return signedInf(s)
		}
		return NaN
	}

	unbiasedExp := int32(exp32) - 127

	switch {
	case unbiasedExp > 15:
		return signedInf(s)
	case unbiasedExp >= -14:
		// Normal-to-normal: the 23-bit f32 mantissa always narrows by the
		// same fixed 10-bit shift, regardless of magnitude, because the
		// exponent is tracked separately.
		sig24 := mant32 | (1 << 23)
		const shiftAmt = 10
		window := sig24 >> shiftAmt
		dropped := sig24 & ((1 << shiftAmt) - 1)
		sig14 := uint16(window)
		if dropped != 0 {
			sig14 |= 1
		}
		exp16 := unbiasedExp + exponentBias
		return roundPack(s, exp16, sig14)
	case unbiasedExp >= -25:
		// Normal-to-subnormal: shift further (11 to 21 places) so the
		// implicit bit lands inside the stored field or, at the lowest
		// exponents, in the guard/round bits (contributing only to
		// rounding), per the working convention shared with
		// add/mul/div of representing a subnormal as exponent 1 with a
		// significand that may be less than the implicit-bit threshold.
		sig24 := mant32 | (1 << 23)
		shiftAmt := uint32(-unbiasedExp - 4)
		var window, dropped uint32
		if shiftAmt >= 24 {
			dropped = sig24
		} else {
			window = sig24 >> shiftAmt
			dropped = sig24 & ((1 << shiftAmt) - 1)
		}
		sig14 := uint16(window)
		if dropped != 0 {
			sig14 |= 1
		}
		return roundPack(s, 1, sig14)
	default:
		return signedZero(s)
	}
}

// ToF32 widens f to an exact float32. Every Float16 value has an exact
// float32 representation, so this conversion never rounds.
func ToF32(f Float16) float32 {
	s := sign(f)
	sign32 := uint32(s) << 31

	switch {
	case f.IsNaN():
		return math.Float32frombits(0x7FC00000)
	case f == PosInf:
		return float32(math.Inf(1))
	case f == NegInf:
		return float32(math.Inf(-1))
	case f.IsZero():
		return math.Float32frombits(sign32)
	}

	e, t := exponent(f), significand(f)
	if e != 0 {
		exp32 := uint32(int32(e) - exponentBias + 127)
		mant32 := uint32(t) << 13
		return math.Float32frombits(sign32 | exp32<<23 | mant32)
	}

	// Subnormal: left-normalize the stored field until its leading bit
	// would sit at the implicit-bit position, decrementing the effective
	// exponent by one for every shift.
	lz := clz16(t)
	p := 15 - lz
	frac := t &^ (uint16(1) << uint(p))
	mant32 := uint32(frac) << uint(23-p)
	exp32 := uint32(p + 103)
	return math.Float32frombits(sign32 | exp32<<23 | mant32)
}

// FromInt32 converts a 32-bit signed integer to the nearest Float16,
// rounding to nearest, ties to even. Magnitudes too large to represent
// saturate to signed infinity. math.MinInt32 has no positive counterpart
// representable in int32, so it is detected directly and saturates to
// negative infinity.
func FromInt32(i int32) Float16 {
	if i == 0 {
		return PosZero
	}
	if i == math.MinInt32 {
		return NegInf
	}

	var s uint16
	var mag uint32
	if i < 0 {
		s = 1
		mag = uint32(-i)
	} else {
		mag = uint32(i)
	}

	msb := 31 - uint32(bits.LeadingZeros32(mag))
	unbiasedExp := int32(msb)
	if unbiasedExp > 15 {
		return signedInf(s)
	}
	exp16 := unbiasedExp + exponentBias

	var sig14 uint16
	if msb >= 13 {
		shiftAmt := msb - 13
		window := mag >> shiftAmt
		dropped := mag & ((1 << shiftAmt) - 1)
		sig14 = uint16(window)
		if dropped != 0 {
			sig14 |= 1
		}
	} else {
		shiftAmt := 13 - msb
		sig14 = uint16(mag << shiftAmt)
	}
	return roundPack(s, exp16, sig14)
}

// ToInt32 rounds f to the nearest integer, ties to even, and returns it as
// an int32. NaN and infinities map to math.MinInt32, the TestFloat
// convention for an invalid integer conversion. Magnitudes that don't fit
// in int32 are not reachable from a finite Float16, whose largest magnitude
// is 65504.
func ToInt32(f Float16) int32 {
	if f.IsNaN() || !f.IsFinite() {
		return math.MinInt32
	}

	rounded := RoundTiesEven(f)
	if rounded.IsZero() {
		return 0
	}

	e, t := exponent(rounded), significand(rounded)
	unbiasedExp := int32(e) - exponentBias
	sigWithImplicit := uint32(t) | 0x400
	shift := unbiasedExp - 10

	var mag uint32
	if shift >= 0 {
		mag = sigWithImplicit << uint(shift)
	} else {
		mag = sigWithImplicit >> uint(-shift)
	}

	result := int32(mag)
	if sign(rounded) == 1 {
		result = -result
	}
	return result
}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
