// Package harness provides a conformance harness for the conversion
// engine.
//
// Scenarios are YAML files listing conversion cases: an input token, a
// target kind and an expected outcome (a rendered result or an error
// cause code, optionally with an exactness-probe expectation). The
// harness runs each case through the engine's parse path and compares
// outcomes, producing a deterministic result suitable for golden-file
// comparison.
//
// Scenario results contain no wall-clock data and no generated IDs, so
// identical inputs always produce byte-identical golden traces.
package harness
