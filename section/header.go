package section

import (
	"math"

	"github.com/cydec/cydec/endian"
	"github.com/cydec/cydec/errs"
)

// Header is the fixed-layout prefix of a non-empty blob. It is the only part
// of a blob a decoder needs to inspect before handing the remaining bytes to
// a backing compressor.
type Header struct {
	CodecID CodecID
	Type    TypeTag
	Count   uint64
	// Scale is the fixed-point quantization scale factor. It is only present
	// on the wire, and only meaningful, when Type.IsFloat() is true.
	Scale float64
}

// Size returns the number of header bytes this Header occupies on the wire,
// which depends on whether its type tag is a float type.
func (h Header) Size() int {
	if h.Type.IsFloat() {
		return FloatHeaderSize
	}
	return FixedHeaderSize
}

// Bytes serializes the header, appending to dst. The scale field is omitted
// entirely for non-float type tags, matching the wire layout in which a
// non-float blob's payload begins immediately after the element count.
func (h Header) Bytes(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = append(dst, Magic...)
	dst = append(dst, Version)
	dst = append(dst, byte(h.CodecID))
	dst = append(dst, byte(h.Type))
	dst = engine.AppendUint64(dst, h.Count)

	if h.Type.IsFloat() {
		dst = engine.AppendUint64(dst, math.Float64bits(h.Scale))
	}

	return dst
}

// ParseHeader validates and decodes a blob's header, returning the header and
// the number of bytes it occupied so the caller can slice off the payload.
//
// Validation proceeds in order: magic, version, codec id, type tag, then
// length (the count/scale fields always round out the declared header
// size). Each failing check returns a distinct error kind from errs.
func ParseHeader(data []byte) (Header, int, error) {
	if len(data) < len(Magic)+1+1+1 {
		return Header{}, 0, errs.Truncated(FixedHeaderSize, len(data))
	}

	if string(data[:len(Magic)]) != Magic {
		return Header{}, 0, errs.ErrBadMagic
	}
	off := len(Magic)

	version := data[off]
	off++
	if version != Version {
		return Header{}, 0, errs.ErrBadVersion
	}

	codecID := CodecID(data[off])
	off++
	if codecID != CodecZstd {
		return Header{}, 0, errs.ErrBadCodecID
	}

	tag := TypeTag(data[off])
	off++
	switch tag {
	case TypeInt64, TypeUint64, TypeInt32, TypeUint32, TypeFloat64, TypeFloat32, TypeBytes:
	default:
		return Header{}, 0, errs.NewWrongType("known type tag", tag.String())
	}

	h := Header{CodecID: codecID, Type: tag}

	need := h.Size()
	if len(data) < need {
		return Header{}, 0, errs.Truncated(need, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	h.Count = engine.Uint64(data[off : off+8])
	off += 8

	if tag.IsFloat() {
		h.Scale = math.Float64frombits(engine.Uint64(data[off : off+8]))
		off += 8
	}

	return h, off, nil
}
