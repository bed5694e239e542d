// Package measure implements the batch round-trip harness for the aapc
// codecs.
//
// The harness compresses an input, decompresses the result, verifies the
// output is byte-identical to the original (both directly and via xxHash64
// digests) and records size, timing and throughput figures. It runs on
// synthetic generated data, a single file, or every file in a folder; the
// CLI's test commands are thin wrappers around it.
//
// Verification failures are reported as errors wrapping ErrMismatch. A
// correct codec never produces one; the check exists to catch codec
// regressions, not bad input.
package measure
