// Package rle implements the per-block token transform of the AAPC format.
//
// A block payload is a flat token stream with three token kinds:
//
//	literal         := byte_value                  (value not in {0xFE, 0xFF})
//	escaped_literal := 0xFF byte_value             (byte_value in {0xFE, 0xFF})
//	run             := 0xFE run_len(3..=255) byte_value
//
// A run token represents run_len repetitions of the value byte. Runs shorter
// than format.MinRunLength are emitted as individual literals because a run
// token would expand them. Runs longer than format.MaxRunLength split into
// multiple run tokens.
//
// Encoding is total: every byte sequence has a valid token stream. Decoding
// validates that every flag byte carries its operands and fails with an
// errs sentinel otherwise; it never reads past the payload.
//
// The functions in this package operate on a single block. Block splitting
// and framing live in the frame package.
package rle

import (
	"fmt"

	"github.com/arloliu/aapc/errs"
	"github.com/arloliu/aapc/format"
)

// MaxEncodedLen returns the worst-case encoded size for n raw bytes.
//
// The pathological input is a sequence of isolated 0xFE/0xFF bytes, each of
// which encodes as a 2-byte escaped literal.
func MaxEncodedLen(n int) int {
	return 2 * n
}

// AppendEncoded appends the token stream for src to dst and returns the
// extended slice.
//
// The caller is responsible for capping src at the block size; this function
// encodes whatever it is given as one payload. It never fails.
func AppendEncoded(dst, src []byte) []byte {
	srcLen := len(src)

	for i := 0; i < srcLen; {
		value := src[i]

		// Count the maximal run starting at i, capped so the run length
		// field fits in one byte. The remainder of a longer run is picked
		// up as a fresh run on the next iteration.
		runLen := 1
		for i+runLen < srcLen && src[i+runLen] == value && runLen < format.MaxRunLength {
			runLen++
		}

		if runLen >= format.MinRunLength {
			dst = append(dst, format.FlagRun, byte(runLen), value)
			i += runLen

			continue
		}

		// Short run: emit one literal and rescan from the next byte, so a
		// 2-run becomes two 1-byte tokens instead of a 3-byte run token.
		if value >= format.FlagRun {
			dst = append(dst, format.FlagEscape, value)
		} else {
			dst = append(dst, value)
		}
		i++
	}

	return dst
}

// AppendDecoded appends the bytes represented by the token stream in payload
// to dst and returns the extended slice.
//
// The payload must be a complete token stream: a flag byte whose operands
// would extend past the end of the payload yields errs.ErrTruncatedPayload,
// and a run token with a length below format.MinRunLength yields
// errs.ErrInvalidRunLength. On error the returned slice contains the bytes
// decoded before the malformed token.
func AppendDecoded(dst, payload []byte) ([]byte, error) {
	payloadLen := len(payload)

	for i := 0; i < payloadLen; {
		switch flag := payload[i]; flag {
		case format.FlagEscape:
			if payloadLen-i < 2 {
				return dst, fmt.Errorf("%w: escape flag at end of payload", errs.ErrTruncatedPayload)
			}

			dst = append(dst, payload[i+1])
			i += 2

		case format.FlagRun:
			if payloadLen-i < 3 {
				return dst, fmt.Errorf("%w: run token needs 2 operand bytes, %d remain",
					errs.ErrTruncatedPayload, payloadLen-i-1)
			}

			runLen := int(payload[i+1])
			value := payload[i+2]
			if runLen < format.MinRunLength {
				return dst, fmt.Errorf("%w: run length %d below minimum %d",
					errs.ErrInvalidRunLength, runLen, format.MinRunLength)
			}

			for n := 0; n < runLen; n++ {
				dst = append(dst, value)
			}
			i += 3

		default:
			dst = append(dst, flag)
			i++
		}
	}

	return dst, nil
}
