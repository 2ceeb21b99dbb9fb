package compress

import "fmt"

// Algorithm identifies a backing compressor implementation.
//
// cydec's wire format pins a single backing compressor per blob version (codec id
// 0x01, see package section), but the codec package exposes a choice of algorithm
// at construction time so callers can trade ratio for speed. Selecting a
// non-default algorithm does not change the codec id on the wire; it only changes
// which bytes end up framed behind it. The header does not record the algorithm,
// so a blob decodes only with a codec constructed with the same Algorithm that
// encoded it.
type Algorithm uint8

const (
	// AlgorithmNone bypasses compression entirely.
	AlgorithmNone Algorithm = iota
	// AlgorithmZstd selects Zstandard: the default, best ratio, moderate speed.
	AlgorithmZstd
	// AlgorithmS2 selects S2, a Snappy-family codec tuned for speed.
	AlgorithmS2
	// AlgorithmLZ4 selects LZ4, optimized for fast decompression.
	AlgorithmLZ4
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "None"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmS2:
		return "S2"
	case AlgorithmLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a packed byte payload produced by the pipeline kernel.
//
// Implementations are stateless with respect to the caller: the input slice is
// never modified and the returned slice is newly allocated and owned by the
// caller, except for NoOpCompressor, which returns data itself. The compressed
// frame must be self-delimiting, since the container
// header stores only the element count and (for floats) the scale factor, never
// the compressed payload's length.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's frame.
//
// Decompress must reject a frame it did not produce with a non-nil error rather
// than panicking or returning garbage bytes; the codec package wraps that error
// as errs.ErrDecompressionFailure.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
//
// A Codec value is immutable and carries no buffers of its own, only algorithm
// parameters, so a single instance safely backs every call an IntegerCodec or
// FloatCodec makes, including concurrent batch calls.
type Codec interface {
	Compressor
	Decompressor
}

// New constructs the Codec for the given algorithm.
//
// level is the compressor's speed/ratio knob where applicable. It is ignored by
// AlgorithmNone, AlgorithmS2 and AlgorithmLZ4, which expose no level in this
// build; 0 selects
// each algorithm's own default level.
func New(algo Algorithm, level int) (Codec, error) {
	switch algo {
	case AlgorithmNone:
		return NewNoOpCompressor(), nil
	case AlgorithmZstd:
		return NewZstdCompressor(level), nil
	case AlgorithmS2:
		return NewS2Compressor(), nil
	case AlgorithmLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("compress: unknown algorithm %d", algo)
	}
}
