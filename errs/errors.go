// Package errs defines the sentinel errors shared across the aapc packages.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is even when call sites wrap them with additional context.
package errs

import "errors"

var (
	// ErrTruncatedBuffer indicates that a compressed buffer ended before the
	// bytes its block count or a block length prefix declared.
	ErrTruncatedBuffer = errors.New("truncated compressed buffer")

	// ErrTruncatedPayload indicates that a block payload ended in the middle
	// of a token, leaving a flag byte without its operands.
	ErrTruncatedPayload = errors.New("truncated block payload")

	// ErrInvalidBlockSize indicates an encoder block size outside the
	// supported range.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidRunLength indicates a run token whose length field is below
	// the minimum run length; well-formed encoders never produce one.
	ErrInvalidRunLength = errors.New("invalid run length")
)
