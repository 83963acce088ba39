package softfloat16

// roundPack takes a result sign, a working exponent (which may be 1 while
// representing a subnormal, or any value above that for a normal number),
// and an 11-bit significand with a 3-bit guard/round/sticky tail appended
// (14 bits total, implicit leading bit included), and produces the final
// rounded Float16. This is the shared tail of add, sub, mul, div, and FMA:
// every one of those pipelines funnels into the same round-to-nearest-even
// decision and the same carry-into-exponent handling once it has reduced
// its intermediate result to this common shape.
//
// The caller is responsible for exponent-range special casing it needs
// before calling (overflow to infinity, underflow to zero); roundPack only
// handles the carry that rounding itself can produce, including a carry
// that pushes a subnormal up into the smallest normal, or a normal up into
// infinity.
func roundPack(resultSign uint16, exp int32, sig uint16) Float16 {
	grs := sig & 0x7
	sig >>= 3
	lsb := sig & 1

	var rnd uint16
	if grs < 0x4 || (grs == 0x4 && lsb == 0) {
		rnd = 0
	} else {
		rnd = 1
	}

	if exp == 1 && sig < 0x400 {
		// Subnormal: no implicit bit, exponent field is 0. A carry here can
		// still ripple the significand into the smallest normal encoding
		// because 0x3FF+1 == 0x400, which is exactly the smallest-normal
		// significand with an exponent field that reads as 1.
		return Float16(resultSign<<15 | sig + rnd)
	}

	if exp >= exponentMax {
		return signedInf(resultSign)
	}
	packed := uint16(exp)<<exponentShift | sig&significandMask
	result := Float16(resultSign<<15 | packed+rnd)
	// A rounding carry can ripple the significand out through the exponent
	// field, including all the way into the infinity encoding; both are
	// correct IEEE 754 behavior and require no extra check here.
	return result
}

func signedInf(s uint16) Float16 {
	if s == 0 {
		return PosInf
	}
	return NegInf
}

func signedZero(s uint16) Float16 {
	if s == 0 {
		return PosZero
	}
	return NegZero
}

// RoundTiesEven rounds f to the nearest representable integer value,
// breaking ties toward the even integer, and returns the result as a
// Float16 (not as an integer type — the magnitude may exceed what f16 can
// hold exactly only if rounding pushes a value like 0x7BFF upward, which it
// cannot, since round-to-integer never increases magnitude past the input's
// own exponent range other than the carry described below).
func RoundTiesEven(f Float16) Float16 {
	// Infinities and NaN have unbiased exponent 16, which always falls into
	// the "already integral" branch below, so no explicit special case is
	// needed for them.
	s, e, t := sign(f), exponent(f), significand(f)
	unbiasedExp := int32(e) - exponentBias

	if unbiasedExp < -1 {
		return signedZero(s)
	}
	if unbiasedExp >= 10 {
		return f
	}

	shift := uint(10 - unbiasedExp)
	exp := uint16(unbiasedExp + exponentBias)
	sig := t | (1 << exponentShift)

	integer := sig >> shift
	fraction := sig & ((1 << shift) - 1)
	half := uint16(1) << (shift - 1)

	var rnd uint16
	if fraction < half || (fraction == half && integer&1 == 0) {
		rnd = 0
	} else {
		rnd = 1 << shift
	}

	sigShifted := integer << shift
	if sigShifted == 0 && rnd == 0 {
		return signedZero(s)
	}
	if rnd == 1<<11 {
		return Float16(s<<15 | (exp+1)<<exponentShift)
	}
	return Float16(s<<15 | (exp<<exponentShift|sigShifted&significandMask)+rnd)
}
