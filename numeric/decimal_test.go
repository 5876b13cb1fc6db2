package numeric

import (
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestDecFromFloatExactExpansion(t *testing.T) {
	// The pivot holds the exact binary-to-decimal expansion of a float,
	// not its shortest string form. float64(0.1) is exactly
	// 0.1000000000000000055511151231257827021181583404541015625.
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"half", 0.5, "0.5"},
		{"one and a half", 1.5, "1.5"},
		{"integral", 42, "42"},
		{"negative", -2.25, "-2.25"},
		{
			"one tenth",
			0.1,
			"0.1000000000000000055511151231257827021181583404541015625",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := decFromFloat(tt.in)
			require.True(t, ok)
			assert.Zero(t, d.Cmp(mustDecimal(t, tt.want)))
		})
	}
}

func TestDecFromFloatNegativeZero(t *testing.T) {
	// Negative zero is treated as zero for all range and integrality
	// checks.
	d, ok := decFromFloat(math.Copysign(0, -1))
	require.True(t, ok)
	assert.True(t, d.IsZero())
	assert.False(t, d.Negative)
}

func TestDecFromFloatNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, ok := decFromFloat(f)
		assert.False(t, ok)
	}
}

func TestDecFromValueLargeBigInt(t *testing.T) {
	// A value far beyond int64 still maps exactly.
	huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil)
	d, ok := decFromValue(huge)
	require.True(t, ok)
	assert.Zero(t, d.Cmp(mustDecimal(t, "1e40")))
}

func TestDecIsIntegral(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"0.00", true},
		{"3", true},
		{"3.0", true},
		{"3.000", true},
		{"-3.0", true},
		{"1e3", true},
		{"12300e-2", true},
		{"3.5", false},
		{"-0.001", false},
		{"1e-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, decIsIntegral(mustDecimal(t, tt.in)))
		})
	}
}

func TestDecToInt64(t *testing.T) {
	i, cause := decToInt64(mustDecimal(t, "3.00"))
	assert.Equal(t, causeNone, cause)
	assert.Equal(t, int64(3), i)

	i, cause = decToInt64(mustDecimal(t, "-9223372036854775808"))
	assert.Equal(t, causeNone, cause)
	assert.Equal(t, int64(math.MinInt64), i)

	_, cause = decToInt64(mustDecimal(t, "3.5"))
	assert.Equal(t, CausePrecisionLoss, cause)

	_, cause = decToInt64(mustDecimal(t, "9223372036854775808"))
	assert.Equal(t, CauseTargetTooNarrow, cause)

	_, cause = decToInt64(mustDecimal(t, "1e40"))
	assert.Equal(t, CauseTargetTooNarrow, cause)
}

func TestDecToBigInt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"0.000", "0"},
		{"42", "42"},
		{"-42.00", "-42"},
		{"1e3", "1000"},
		{"1e40", "10000000000000000000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			bi, ok := decToBigInt(mustDecimal(t, tt.in))
			require.True(t, ok)
			assert.Equal(t, tt.want, bi.String())
		})
	}

	_, ok := decToBigInt(mustDecimal(t, "3.5"))
	assert.False(t, ok)
}

func TestDecToFloat(t *testing.T) {
	f, ok := decToFloat(mustDecimal(t, "1.5"), 64)
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	f, ok = decToFloat(mustDecimal(t, "1.5"), 32)
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	// float32 overflows at ~3.4e38; float64 holds the same value.
	_, ok = decToFloat(mustDecimal(t, "1e39"), 32)
	assert.False(t, ok)
	f, ok = decToFloat(mustDecimal(t, "1e39"), 64)
	require.True(t, ok)
	assert.Equal(t, 1e39, f)

	_, ok = decToFloat(mustDecimal(t, "1e309"), 64)
	assert.False(t, ok)

	// Underflow rounds toward zero and stays acceptable: the floating
	// kinds take any finite value.
	f, ok = decToFloat(mustDecimal(t, "1e-400"), 64)
	require.True(t, ok)
	assert.Equal(t, 0.0, f)
}
