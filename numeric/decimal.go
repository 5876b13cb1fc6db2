package numeric

import (
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// The canonical decimal pivot. Every supported source kind maps into an
// exact *apd.Decimal (integer significand + power-of-ten exponent), and
// every target kind's exactness can be checked against it. Pivot values
// are transient: created per conversion call, discarded after use.

// decFromValue builds the exact decimal pivot for a normalized value.
// ok is false only for floating sources with no finite decimal expansion
// (NaN or an infinity).
func decFromValue(v any) (*apd.Decimal, bool) {
	switch val := v.(type) {
	case int8:
		return apd.New(int64(val), 0), true
	case int16:
		return apd.New(int64(val), 0), true
	case int32:
		return apd.New(int64(val), 0), true
	case int64:
		return apd.New(val, 0), true
	case float32:
		// Widening float32 to float64 is exact, so the float64 expansion
		// below is also the exact expansion of the float32.
		return decFromFloat(float64(val))
	case float64:
		return decFromFloat(val)
	case *big.Int:
		return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(val), 0), true
	case *apd.Decimal:
		return new(apd.Decimal).Set(val), true
	}
	// normalize rejects everything else before the pivot is reached.
	return nil, false
}

// decFromFloat expands a finite float to its exact decimal form. A binary
// fraction m/2^k expands exactly as (m*5^k)/10^k, so the significand is
// m*5^k at exponent -k. Shortest-string formatting would lose the tail of
// the expansion and is never used here.
func decFromFloat(f float64) (*apd.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	if f == 0 {
		// Negative zero collapses to plain zero for all range and
		// integrality checks.
		return apd.New(0, 0), true
	}
	rat := new(big.Rat).SetFloat64(f)
	coeff := new(big.Int).Set(rat.Num())
	k := rat.Denom().BitLen() - 1 // denominator is always 2^k
	if k > 0 {
		coeff.Mul(coeff, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil))
	}
	return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coeff), int32(-k)), true
}

// decIsIntegral reports whether d has an exactly-zero fractional part.
func decIsIntegral(d *apd.Decimal) bool {
	if d.Exponent >= 0 || d.IsZero() {
		return true
	}
	var r apd.Decimal
	r.Reduce(d)
	return r.Exponent >= 0
}

// decToInt64 extracts an exact int64 from the pivot, distinguishing a
// fractional-part failure from a range failure.
func decToInt64(d *apd.Decimal) (int64, Cause) {
	if !decIsIntegral(d) {
		return 0, CausePrecisionLoss
	}
	i, err := d.Int64()
	if err != nil {
		return 0, CauseTargetTooNarrow
	}
	return i, causeNone
}

// decToBigInt extracts an exact *big.Int from the pivot. ok is false when
// d has a non-zero fractional part.
func decToBigInt(d *apd.Decimal) (*big.Int, bool) {
	var r apd.Decimal
	r.Reduce(d)
	if r.Exponent < 0 {
		if r.IsZero() {
			return new(big.Int), true
		}
		return nil, false
	}
	bi := new(big.Int).Set(r.Coeff.MathBigInt())
	if r.Exponent > 0 {
		bi.Mul(bi, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(r.Exponent)), nil))
	}
	if r.Negative {
		bi.Neg(bi)
	}
	return bi, true
}

// decToFloat rounds the pivot to the nearest float of the given bit width
// (32 or 64). ok is false only on overflow to an infinity: the floating
// kinds accept any finite value, so underflow toward zero is not an error.
func decToFloat(d *apd.Decimal, bits int) (float64, bool) {
	f, err := strconv.ParseFloat(d.Text('e'), bits)
	if math.IsInf(f, 0) {
		return 0, false
	}
	// ParseFloat reports ErrRange for underflow as well; the rounded
	// value (zero or subnormal) is still an acceptable finite target.
	_ = err
	return f, true
}
