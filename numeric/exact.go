package numeric

import "math"

// CanRepresentExactly reports whether converting v to target is lossless,
// without performing the conversion. It is a pure query: unsupported
// values and invalid targets report false rather than failing.
func CanRepresentExactly(v any, target Kind) bool {
	src, val, err := normalize(v)
	if err != nil || !target.valid() {
		return false
	}
	if src == target {
		return true
	}
	ok, _, _ := exactness(src, val, target)
	return ok
}

// FitsAll probes whether every value converts losslessly to target. Useful
// as a fast validity check over a collection before committing to a batch
// of conversions.
func FitsAll(target Kind, values ...any) bool {
	for _, v := range values {
		if !CanRepresentExactly(v, target) {
			return false
		}
	}
	return true
}

// exactness is the predicate behind CanRepresentExactly and Convert. val
// must already be normalized and of a kind other than target. When the
// conversion would lose information, the returned cause distinguishes a
// fractional-part or round-trip violation (PRECISION_LOSS) from a
// magnitude violation (TARGET_TOO_NARROW).
func exactness(src Kind, val any, target Kind) (bool, Cause, string) {
	switch {
	case target.IsFloat():
		return floatExactness(src, val, target)
	case target.IsInteger():
		return intExactness(src, val, target)
	case target == KindBigInt:
		return bigIntExactness(src, val)
	case target == KindDecimal:
		return decimalExactness(src, val)
	}
	return false, CauseUnsupportedTarget, "target kind is outside the supported kind set"
}

// floatExactness implements the floating-target policy: any finite value
// is acceptable, infinities arising from overflow are not, and a NaN or
// infinity source is only acceptable under same-kind identity (which the
// converter handles before dispatching here).
func floatExactness(src Kind, val any, target Kind) (bool, Cause, string) {
	switch src {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		// Every int64 magnitude is far below both float overflow
		// thresholds, so widening an exact integer never overflows.
		return true, causeNone, ""
	case KindFloat32:
		// Identity is handled upstream, so the target here is float64.
		f := float64(val.(float32))
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false, CausePrecisionLoss, "non-finite values do not cross floating kinds"
		}
		return true, causeNone, ""
	case KindFloat64:
		// Narrowing to float32. Exactness is judged by bit round-trip:
		// narrow, widen back and compare to the original.
		f := val.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false, CausePrecisionLoss, "non-finite values do not cross floating kinds"
		}
		n := float64(float32(f))
		if math.IsInf(n, 0) {
			return false, CauseTargetTooNarrow, ""
		}
		if n != f {
			return false, CausePrecisionLoss, "narrowing to float32 does not round-trip"
		}
		return true, causeNone, ""
	case KindBigInt, KindDecimal:
		d, _ := decFromValue(val)
		bits := 64
		if target == KindFloat32 {
			bits = 32
		}
		if _, ok := decToFloat(d, bits); !ok {
			return false, CauseTargetTooNarrow, ""
		}
		return true, causeNone, ""
	}
	return false, CauseUnsupportedSource, "source type is outside the supported kind set"
}

// intExactness answers whether val is integral and fits the inclusive
// range of an exact-integer target.
func intExactness(src Kind, val any, target Kind) (bool, Cause, string) {
	min, max, _ := target.Range()
	switch src {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		i := asInt64(val)
		if i < min || i > max {
			return false, CauseTargetTooNarrow, ""
		}
		return true, causeNone, ""
	case KindFloat32, KindFloat64, KindBigInt, KindDecimal:
		d, ok := decFromValue(val)
		if !ok {
			// Only floating sources reach here without a pivot.
			if math.IsInf(asFloat64(val), 0) {
				return false, CauseTargetTooNarrow, ""
			}
			return false, CausePrecisionLoss, "NaN has no integral value"
		}
		i, cause := decToInt64(d)
		switch cause {
		case CausePrecisionLoss:
			return false, cause, "value has a non-zero fractional part"
		case CauseTargetTooNarrow:
			return false, cause, ""
		}
		if i < min || i > max {
			return false, CauseTargetTooNarrow, ""
		}
		return true, causeNone, ""
	}
	return false, CauseUnsupportedSource, "source type is outside the supported kind set"
}

// bigIntExactness answers whether val is exactly integral. The big-integer
// target has no range bound, so magnitude never disqualifies a value.
func bigIntExactness(src Kind, val any) (bool, Cause, string) {
	switch src {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true, causeNone, ""
	case KindFloat32, KindFloat64, KindDecimal:
		d, ok := decFromValue(val)
		if !ok {
			return false, CausePrecisionLoss, "non-finite value has no integral form"
		}
		if !decIsIntegral(d) {
			return false, CausePrecisionLoss, "value has a non-zero fractional part"
		}
		return true, causeNone, ""
	}
	return false, CauseUnsupportedSource, "source type is outside the supported kind set"
}

// decimalExactness answers injection into the decimal kind, which accepts
// every finite value of every other kind.
func decimalExactness(src Kind, val any) (bool, Cause, string) {
	switch src {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindBigInt:
		return true, causeNone, ""
	case KindFloat32, KindFloat64:
		if f := asFloat64(val); math.IsNaN(f) || math.IsInf(f, 0) {
			return false, CausePrecisionLoss, "non-finite value has no decimal expansion"
		}
		return true, causeNone, ""
	}
	return false, CauseUnsupportedSource, "source type is outside the supported kind set"
}

// asInt64 widens a normalized exact-integer value. Widening within the
// signed family is always lossless.
func asInt64(val any) int64 {
	switch i := val.(type) {
	case int8:
		return int64(i)
	case int16:
		return int64(i)
	case int32:
		return int64(i)
	case int64:
		return i
	}
	panic("numeric: asInt64 on non-integer value")
}

// asFloat64 widens a normalized floating value.
func asFloat64(val any) float64 {
	switch f := val.(type) {
	case float32:
		return float64(f)
	case float64:
		return f
	}
	panic("numeric: asFloat64 on non-float value")
}
