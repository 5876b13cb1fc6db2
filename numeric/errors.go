package numeric

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Cause categorizes conversion failures. Consumers branch on the cause
// code, not on message text.
type Cause string

const (
	// CauseMalformedInput indicates text that does not match the strict
	// decimal-literal grammar. Recovered only by the caller.
	CauseMalformedInput Cause = "MALFORMED_INPUT"

	// CausePrecisionLoss indicates a value with a non-zero fractional part
	// relative to an exact-integer target, or a floating narrowing that
	// would not round-trip.
	CausePrecisionLoss Cause = "PRECISION_LOSS"

	// CauseTargetTooNarrow indicates an integral, finite value whose
	// magnitude exceeds the target kind's representable range.
	CauseTargetTooNarrow Cause = "TARGET_TOO_NARROW"

	// CauseUnsupportedSource indicates a source value outside the closed
	// kind set. A programming error in the calling code path.
	CauseUnsupportedSource Cause = "UNSUPPORTED_SOURCE"

	// CauseUnsupportedTarget indicates a target kind outside the closed
	// kind set. A programming error in the calling code path.
	CauseUnsupportedTarget Cause = "UNSUPPORTED_TARGET"
)

// causeNone is the internal zero cause, used by helpers that report
// success alongside a possible cause.
const causeNone Cause = ""

// ConversionError is the single error type returned by the engine. It is
// created at the point of failure and never mutated afterwards.
type ConversionError struct {
	// Cause identifies the failure category.
	Cause Cause

	// Input is a bounded-length rendering of the offending value or text.
	Input string

	// Target is the attempted target kind. KindInvalid when the failure
	// precedes target dispatch (e.g. an unsupported source).
	Target Kind

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Target != KindInvalid {
		return fmt.Sprintf("%s: %s (input=%s, target=%s)", e.Cause, e.Message, e.Input, e.Target)
	}
	return fmt.Sprintf("%s: %s (input=%s)", e.Cause, e.Message, e.Input)
}

// IsMalformedInput reports whether err carries CauseMalformedInput.
// Uses errors.As to handle wrapped errors.
func IsMalformedInput(err error) bool { return hasCause(err, CauseMalformedInput) }

// IsPrecisionLoss reports whether err carries CausePrecisionLoss.
func IsPrecisionLoss(err error) bool { return hasCause(err, CausePrecisionLoss) }

// IsTargetTooNarrow reports whether err carries CauseTargetTooNarrow.
func IsTargetTooNarrow(err error) bool { return hasCause(err, CauseTargetTooNarrow) }

// IsUnsupported reports whether err carries either of the unsupported-kind
// causes. Both signal programming errors rather than domain failures.
func IsUnsupported(err error) bool {
	return hasCause(err, CauseUnsupportedSource) || hasCause(err, CauseUnsupportedTarget)
}

func hasCause(err error, cause Cause) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Cause == cause
	}
	return false
}

func newMalformedInput(text string, target Kind) *ConversionError {
	return &ConversionError{
		Cause:   CauseMalformedInput,
		Input:   truncate(text),
		Target:  target,
		Message: "text does not match decimal-literal syntax",
	}
}

func newPrecisionLoss(input string, target Kind, msg string) *ConversionError {
	return &ConversionError{
		Cause:   CausePrecisionLoss,
		Input:   input,
		Target:  target,
		Message: msg,
	}
}

func newTargetTooNarrow(input string, target Kind) *ConversionError {
	return &ConversionError{
		Cause:   CauseTargetTooNarrow,
		Input:   input,
		Target:  target,
		Message: "value exceeds the target kind's representable range",
	}
}

func newUnsupportedSource(v any) *ConversionError {
	return &ConversionError{
		Cause:   CauseUnsupportedSource,
		Input:   truncate(fmt.Sprintf("%T", v)),
		Message: "source type is outside the supported kind set",
	}
}

func newUnsupportedTarget(input string, target Kind) *ConversionError {
	return &ConversionError{
		Cause:   CauseUnsupportedTarget,
		Input:   input,
		Target:  target,
		Message: "target kind is outside the supported kind set",
	}
}

// maxRender bounds the rendering of input values in error messages.
// Arbitrary-precision sources can be arbitrarily long.
const maxRender = 48

// renderValue produces a bounded textual representation of a value for
// diagnostics. Used only to build error text, never for conversion logic.
func renderValue(v any) string {
	switch val := v.(type) {
	case *big.Int:
		return truncate(val.String())
	case *apd.Decimal:
		return truncate(val.String())
	}
	return truncate(fmt.Sprintf("%v", v))
}

func truncate(s string) string {
	if len(s) <= maxRender {
		return s
	}
	return s[:maxRender] + "..."
}
