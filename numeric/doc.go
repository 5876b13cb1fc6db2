// Package numeric implements the lossless numeric conversion engine.
//
// The engine converts a value held as one numeric representation into
// another, guaranteeing that the conversion either preserves magnitude and
// precision exactly or fails with a diagnosable error. It never silently
// truncates or rounds.
//
// Key design constraints:
//   - The set of supported kinds is closed and total. Every predicate and
//     converter handles all kinds via exhaustive switches; unsupported
//     runtime types are rejected with a distinguishable cause, never
//     silently defaulted.
//   - All cross-family conversions pivot through an exact arbitrary-precision
//     decimal. Floats enter the pivot via their exact binary-to-decimal
//     expansion, not their shortest string form.
//   - Failures are returned as values (ConversionError with a Cause code),
//     never used for ordinary control flow, and never retried internally.
//   - Every call is pure, CPU-bound and synchronous. The package holds no
//     mutable state, so all entry points are safe for concurrent use.
package numeric
