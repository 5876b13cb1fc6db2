package numeric

import "github.com/cockroachdb/apd/v3"

// Convert converts v to the target kind, returning the converted value or
// a ConversionError. The conversion is pure and stateless: same inputs
// always produce the same outcome, and nothing is retried internally.
//
// Identity conversions return the value unchanged. Same-family widenings
// and the round-trip-checked float narrowing convert directly; every
// cross-family conversion goes through the canonical decimal pivot.
func Convert(v any, target Kind) (any, error) {
	src, val, err := normalize(v)
	if err != nil {
		return nil, err
	}
	if !target.valid() {
		return nil, newUnsupportedTarget(renderValue(val), target)
	}
	if src == target {
		return val, nil
	}
	return convertFrom(src, val, target, renderValue(val))
}

// convertFrom runs the exactness predicate and then performs the
// conversion. input is the rendering used in diagnostics: the original
// text for parsed input, the value rendering for typed input.
func convertFrom(src Kind, val any, target Kind, input string) (any, error) {
	ok, cause, msg := exactness(src, val, target)
	if !ok {
		switch cause {
		case CausePrecisionLoss:
			return nil, newPrecisionLoss(input, target, msg)
		case CauseTargetTooNarrow:
			return nil, newTargetTooNarrow(input, target)
		case CauseUnsupportedTarget:
			return nil, newUnsupportedTarget(input, target)
		default:
			return nil, newUnsupportedSource(val)
		}
	}

	switch {
	case src.IsInteger() && target.IsInteger():
		return sizeInt(asInt64(val), target), nil
	case src == KindFloat32 && target == KindFloat64:
		return float64(val.(float32)), nil
	case src == KindFloat64 && target == KindFloat32:
		// The predicate has already proven the narrowing round-trips.
		return float32(val.(float64)), nil
	}

	d, dok := decFromValue(val)
	if !dok {
		// Non-finite floats past the predicate only under identity,
		// which never reaches the pivot.
		return nil, newPrecisionLoss(input, target, "non-finite value has no decimal expansion")
	}
	return convertDecimal(d, target, input)
}

// convertDecimal converts the canonical decimal pivot to the target kind.
// Shared by the cross-family conversion path and the parser, so a parsed
// "3.5" against an integer target fails with the same cause a direct
// float-to-integer conversion would.
func convertDecimal(d *apd.Decimal, target Kind, input string) (any, error) {
	switch target {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		i, cause := decToInt64(d)
		switch cause {
		case CausePrecisionLoss:
			return nil, newPrecisionLoss(input, target, "value has a non-zero fractional part")
		case CauseTargetTooNarrow:
			return nil, newTargetTooNarrow(input, target)
		}
		min, max, _ := target.Range()
		if i < min || i > max {
			return nil, newTargetTooNarrow(input, target)
		}
		return sizeInt(i, target), nil
	case KindFloat32:
		f, ok := decToFloat(d, 32)
		if !ok {
			return nil, newTargetTooNarrow(input, target)
		}
		return float32(f), nil
	case KindFloat64:
		f, ok := decToFloat(d, 64)
		if !ok {
			return nil, newTargetTooNarrow(input, target)
		}
		return f, nil
	case KindBigInt:
		bi, ok := decToBigInt(d)
		if !ok {
			return nil, newPrecisionLoss(input, target, "value has a non-zero fractional part")
		}
		return bi, nil
	case KindDecimal:
		return d, nil
	}
	return nil, newUnsupportedTarget(input, target)
}

// sizeInt produces the typed integer value for an exact-integer target.
// The caller has already proven i fits the target's range.
func sizeInt(i int64, target Kind) any {
	switch target {
	case KindInt8:
		return int8(i)
	case KindInt16:
		return int16(i)
	case KindInt32:
		return int32(i)
	}
	return i
}
