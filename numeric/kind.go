package numeric

import (
	"math"
	"math/big"
	"sync/atomic"

	"github.com/cockroachdb/apd/v3"
)

// Kind identifies one of the closed set of supported numeric
// representations. The zero value is KindInvalid.
type Kind int

const (
	// KindInvalid is the zero Kind. It is never produced for a supported
	// value and is rejected as both source and target.
	KindInvalid Kind = iota

	// KindInt8 is the 8-bit two's-complement signed integer kind.
	KindInt8
	// KindInt16 is the 16-bit two's-complement signed integer kind.
	KindInt16
	// KindInt32 is the 32-bit two's-complement signed integer kind.
	KindInt32
	// KindInt64 is the 64-bit two's-complement signed integer kind.
	KindInt64

	// KindFloat32 is the 32-bit binary floating-point kind.
	KindFloat32
	// KindFloat64 is the 64-bit binary floating-point kind.
	KindFloat64

	// KindBigInt is the arbitrary-precision integer kind (*big.Int).
	KindBigInt
	// KindDecimal is the arbitrary-precision decimal kind (*apd.Decimal).
	// It is the most expressive kind in the set: every other kind injects
	// into it without loss.
	KindDecimal
)

// kindNames maps each kind to its canonical name. Indexed by Kind, so the
// order must match the constant block above.
var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindBigInt:  "bigint",
	KindDecimal: "decimal",
}

// String returns the canonical kind name, e.g. "int32" or "decimal".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// valid reports whether k is a member of the closed kind set.
func (k Kind) valid() bool {
	return k > KindInvalid && int(k) < len(kindNames)
}

// IsInteger reports whether k is a fixed-width exact-integer kind.
func (k Kind) IsInteger() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

// IsFloat reports whether k is a binary floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Range returns the inclusive representable range for an exact-integer
// kind. ok is false for floating and arbitrary-precision kinds: floats
// accept any finite value (infinities and NaN are rejected as targets) and
// the arbitrary-precision kinds are unbounded.
//
// Signed ranges are asymmetric: the minimum of each kind is itself a valid
// exact target (e.g. int8 covers -128..127).
func (k Kind) Range() (min, max int64, ok bool) {
	switch k {
	case KindInt8:
		return math.MinInt8, math.MaxInt8, true
	case KindInt16:
		return math.MinInt16, math.MaxInt16, true
	case KindInt32:
		return math.MinInt32, math.MaxInt32, true
	case KindInt64:
		return math.MinInt64, math.MaxInt64, true
	}
	return 0, 0, false
}

// Kinds returns the closed set of supported kinds in widening order within
// each family.
func Kinds() []Kind {
	return []Kind{
		KindInt8, KindInt16, KindInt32, KindInt64,
		KindFloat32, KindFloat64,
		KindBigInt, KindDecimal,
	}
}

// ParseKind resolves a canonical kind name to its Kind. Unknown names fail
// with an UnsupportedTarget cause.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindInvalid, &ConversionError{
		Cause:   CauseUnsupportedTarget,
		Input:   truncate(name),
		Message: "unknown kind name",
	}
}

// KindOf returns the kind of an already-typed numeric value. Atomic integer
// wrappers and the platform int normalize to their plain integer kind: they
// carry no extra precision, only a different storage discipline.
//
// Values outside the closed set fail with an UnsupportedSource cause. That
// never happens for values produced by this package and signals a
// programming error if triggered externally.
func KindOf(v any) (Kind, error) {
	k, _, err := normalize(v)
	return k, err
}

// normalize maps a runtime value onto its conversion kind and plain
// representation, unwrapping the representations that carry no extra
// precision (atomic wrappers, platform int).
func normalize(v any) (Kind, any, error) {
	switch val := v.(type) {
	case int8:
		return KindInt8, val, nil
	case int16:
		return KindInt16, val, nil
	case int32:
		return KindInt32, val, nil
	case int64:
		return KindInt64, val, nil
	case int:
		// int is at most 64 bits on every supported platform, so this
		// widening is always lossless.
		return KindInt64, int64(val), nil
	case *atomic.Int32:
		if val == nil {
			return KindInvalid, nil, newUnsupportedSource(v)
		}
		return KindInt32, val.Load(), nil
	case *atomic.Int64:
		if val == nil {
			return KindInvalid, nil, newUnsupportedSource(v)
		}
		return KindInt64, val.Load(), nil
	case float32:
		return KindFloat32, val, nil
	case float64:
		return KindFloat64, val, nil
	case *big.Int:
		if val == nil {
			return KindInvalid, nil, newUnsupportedSource(v)
		}
		return KindBigInt, val, nil
	case *apd.Decimal:
		// The decimal kind is an exact significand+scale pair. apd's
		// non-finite forms are not members of it.
		if val == nil || val.Form != apd.Finite {
			return KindInvalid, nil, newUnsupportedSource(v)
		}
		return KindDecimal, val, nil
	}
	return KindInvalid, nil, newUnsupportedSource(v)
}
