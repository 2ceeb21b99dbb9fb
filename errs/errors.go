// Package errs defines the error kinds returned by the cydec codec and container packages.
//
// Every error an encode or decode call of this module returns wraps one of the
// sentinel values declared here, so callers can classify failures with errors.Is
// regardless of the exact message text. Messages are kept stable so that they can
// be asserted on.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, one per category in the container validation pipeline.
var (
	// ErrBadMagic is returned when a non-empty blob does not begin with the
	// five-byte magic sequence "CYDEC".
	ErrBadMagic = errors.New("cydec: bad magic")

	// ErrBadVersion is returned when the header's version byte is not recognized
	// by this build of the codec.
	ErrBadVersion = errors.New("cydec: bad version")

	// ErrBadCodecID is returned when the header's codec id byte does not match a
	// backing compressor known to this build.
	ErrBadCodecID = errors.New("cydec: bad codec id")

	// ErrWrongType is returned when a blob is decoded with a method whose element
	// type does not match the type tag stored in the header.
	ErrWrongType = errors.New("cydec: wrong type")

	// ErrTruncatedBlob is returned when a non-empty blob is shorter than its
	// declared header, or the payload cannot be read in full.
	ErrTruncatedBlob = errors.New("cydec: truncated blob")

	// ErrDecompressionFailure is returned when the backing compressor rejects the
	// payload frame.
	ErrDecompressionFailure = errors.New("cydec: decompression failure")

	// ErrQuantizationOverflow is returned when a floating-point sample, scaled by
	// the configured scale factor, does not fit in the target integer range.
	ErrQuantizationOverflow = errors.New("cydec: quantization overflow")

	// ErrMalformedPayload is returned when a decompressed payload's length is not
	// the header's element count times the expected element size.
	ErrMalformedPayload = errors.New("cydec: malformed payload")
)

// WrongTypeError reports a type-tag mismatch on decode, naming both the type the
// caller asked for and the type actually stored in the blob.
type WrongTypeError struct {
	Expected string
	Found    string
}

// Error implements the error interface.
func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("cydec: wrong type: expected %s, found %s", e.Expected, e.Found)
}

// Unwrap makes WrongTypeError classifiable as ErrWrongType via errors.Is.
func (e *WrongTypeError) Unwrap() error {
	return ErrWrongType
}

// NewWrongType builds a WrongTypeError for the given expected/found type names.
func NewWrongType(expected, found string) error {
	return &WrongTypeError{Expected: expected, Found: found}
}

// Truncated wraps ErrTruncatedBlob with the byte counts that failed validation.
func Truncated(need, got int) error {
	return fmt.Errorf("%w: need at least %d bytes, got %d", ErrTruncatedBlob, need, got)
}

// Malformed wraps ErrMalformedPayload with the byte count and element size of a
// payload that does not hold exactly the header's element count.
func Malformed(payloadLen, elemSize int) error {
	return fmt.Errorf("%w: payload of %d bytes does not match the element count at element size %d", ErrMalformedPayload, payloadLen, elemSize)
}

// Overflow wraps ErrQuantizationOverflow with the offending value and scale.
func Overflow(value, scale float64) error {
	return fmt.Errorf("%w: round(%g * %g) exceeds the target integer range", ErrQuantizationOverflow, value, scale)
}

// NonFinite wraps ErrQuantizationOverflow for NaN/Inf inputs, which are outside the
// supported domain of the fixed-point quantizer.
func NonFinite(value float64) error {
	return fmt.Errorf("%w: %g is not finite and cannot be quantized", ErrQuantizationOverflow, value)
}

// DecompressFailed wraps ErrDecompressionFailure with the backing compressor's
// underlying error.
func DecompressFailed(cause error) error {
	return fmt.Errorf("%w: %v", ErrDecompressionFailure, cause)
}
