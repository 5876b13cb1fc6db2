package numeric

import "github.com/cockroachdb/apd/v3"

// Parse converts a text token to the target kind. The text must match the
// strict decimal-literal grammar; malformed text fails with a
// MalformedInput cause before any exactness check runs.
//
// On a successful parse the text becomes a canonical decimal and follows
// the same conversion path as a typed decimal source, so "3.5" against an
// integer target fails with the same PrecisionLoss cause a direct
// float-to-integer conversion would.
func Parse(text string, target Kind) (any, error) {
	if !target.valid() {
		return nil, newUnsupportedTarget(truncate(text), target)
	}
	if !scanDecimal(text) {
		return nil, newMalformedInput(text, target)
	}
	d, _, err := apd.NewFromString(text)
	if err != nil {
		// The grammar matched but the literal exceeds the pivot's limits
		// (an exponent beyond its representable range).
		return nil, newMalformedInput(text, target)
	}
	if target == KindDecimal {
		return d, nil
	}
	return convertFrom(KindDecimal, d, target, truncate(text))
}

// scanDecimal validates the strict decimal-literal grammar:
//
//	numeric-string ::= [sign] significand [exponent]
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//
// No locale separators, no hex forms, no inf/nan words. The sign is
// optional in both the significand and the exponent.
func scanDecimal(s string) bool {
	pos, width := 0, len(s)

	if pos < width && (s[pos] == '+' || s[pos] == '-') {
		pos++
	}

	hasDigits := false
	for pos < width && isDigit(s[pos]) {
		hasDigits = true
		pos++
	}
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && isDigit(s[pos]) {
			hasDigits = true
			pos++
		}
	}
	if !hasDigits {
		return false
	}

	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		if pos < width && (s[pos] == '+' || s[pos] == '-') {
			pos++
		}
		expDigits := false
		for pos < width && isDigit(s[pos]) {
			expDigits = true
			pos++
		}
		if !expDigits {
			return false
		}
	}

	return pos == width
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
