// Package errs defines the sentinel errors shared by the montepi packages.
//
// Call sites wrap these values with additional context using fmt.Errorf and the
// %w verb, so callers should always test with errors.Is rather than comparing
// error values directly.
package errs

import "errors"

// Argument validation errors.
var (
	// ErrInvalidArgument is returned when a sample size, attempt count, radius
	// or bound is outside its accepted range. No trial is run when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Handoff archive errors.
var (
	// ErrInvalidHeaderSize is returned when the data is too short to hold an archive header.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidMagic is returned when the archive does not start with the expected magic bytes.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrUnsupportedVersion is returned for archive versions this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported archive version")
	// ErrChecksumMismatch is returned when the payload checksum does not match the header.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrMalformedPayload is returned when the payload cannot be parsed.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrPayloadTooLarge is returned when a payload would decompress past
	// compress.MaxPayloadSize.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrInsufficientData is returned when a column holds fewer values than declared.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidEncoding is returned for an unknown value encoding type.
	ErrInvalidEncoding = errors.New("invalid encoding type")
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
