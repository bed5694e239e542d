package format

// AAPC frame layout constants.
//
// A compressed buffer is a 4-byte big-endian block count followed by, for each
// block, a 4-byte big-endian payload length and that many payload bytes. The
// block size is not recorded in the frame; decoders only ever follow the
// length prefixes, so encoders may use any block size without breaking
// compatibility.
const (
	// BlockSize is the default maximum number of raw bytes encoded per block.
	BlockSize = 256 * 1024

	// BlockCountSize is the width of the leading block count field in bytes.
	BlockCountSize = 4

	// BlockLengthSize is the width of each per-block payload length prefix in bytes.
	BlockLengthSize = 4
)

// Token constants for the per-block RLE payload.
//
// Byte values below FlagRun represent themselves. FlagRun introduces a
// 3-byte run token [FlagRun, run_len, value]; FlagEscape introduces a 2-byte
// escaped literal [FlagEscape, value] used when the literal value collides
// with one of the two flags.
const (
	// FlagRun marks a run token: the following two bytes are the run length
	// (MinRunLength..MaxRunLength) and the repeated value.
	FlagRun = 0xFE

	// FlagEscape marks an escaped literal: the following byte is the actual
	// value (always 0xFE or 0xFF).
	FlagEscape = 0xFF

	// MinRunLength is the shortest run emitted as a run token. A 2-byte run
	// costs 2 bytes as literals but 3 bytes as a run token, so runs below
	// this length are emitted as individual literals.
	MinRunLength = 3

	// MaxRunLength is the longest run a single run token can represent; the
	// run length field is one byte. Longer runs split into multiple tokens.
	MaxRunLength = 255
)
