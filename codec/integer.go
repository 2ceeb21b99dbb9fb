package codec

import (
	"github.com/cydec/cydec/compress"
	"github.com/cydec/cydec/errs"
	"github.com/cydec/cydec/internal/pool"
	"github.com/cydec/cydec/internal/xform"
	"github.com/cydec/cydec/section"
)

// IntegerCodec encodes and decodes homogeneous integer (and raw byte) sample
// arrays to cydec's self-describing blob format. A zero-value IntegerCodec
// is not usable; construct one with NewIntegerCodec.
//
// An IntegerCodec is immutable after construction and safe for concurrent
// use, including concurrent calls from EncodeManyI64 and friends.
type IntegerCodec struct {
	cfg   Config
	codec compress.Codec
}

// NewIntegerCodec builds an IntegerCodec from the given options.
func NewIntegerCodec(opts ...Option) (*IntegerCodec, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	backing, err := compress.New(cfg.algorithm, cfg.level)
	if err != nil {
		return nil, err
	}

	return &IntegerCodec{cfg: cfg, codec: backing}, nil
}

// EncodeI64 encodes a signed 64-bit sample array to a blob. An empty input
// returns an empty (zero-length) blob without allocating a header.
func (c *IntegerCodec) EncodeI64(samples []int64) ([]byte, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	u := make([]uint64, len(samples))
	for i, v := range samples {
		u[i] = xform.ZigZagEncode64(v)
	}

	return c.encodeUnsigned64(u, section.TypeInt64, 0)
}

// DecodeI64 decodes a blob produced by EncodeI64 (or an empty blob) back to
// a signed 64-bit sample array.
func (c *IntegerCodec) DecodeI64(blob []byte) ([]int64, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	u, _, err := c.decodeUnsigned64(blob, section.TypeInt64)
	if err != nil {
		return nil, err
	}

	out := make([]int64, len(u))
	for i, v := range u {
		out[i] = xform.ZigZagDecode64(v)
	}

	return out, nil
}

// EncodeU64 encodes an unsigned 64-bit sample array to a blob.
func (c *IntegerCodec) EncodeU64(samples []uint64) ([]byte, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	return c.encodeUnsigned64(samples, section.TypeUint64, 0)
}

// DecodeU64 decodes a blob produced by EncodeU64 (or an empty blob).
func (c *IntegerCodec) DecodeU64(blob []byte) ([]uint64, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	u, _, err := c.decodeUnsigned64(blob, section.TypeUint64)
	return u, err
}

// EncodeI32 encodes a signed 32-bit sample array to a blob.
func (c *IntegerCodec) EncodeI32(samples []int32) ([]byte, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	u := make([]uint32, len(samples))
	for i, v := range samples {
		u[i] = xform.ZigZagEncode32(v)
	}

	return c.encodeUnsigned32(u, section.TypeInt32, 0)
}

// DecodeI32 decodes a blob produced by EncodeI32 (or an empty blob).
func (c *IntegerCodec) DecodeI32(blob []byte) ([]int32, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	u, _, err := c.decodeUnsigned32(blob, section.TypeInt32)
	if err != nil {
		return nil, err
	}

	out := make([]int32, len(u))
	for i, v := range u {
		out[i] = xform.ZigZagDecode32(v)
	}

	return out, nil
}

// EncodeU32 encodes an unsigned 32-bit sample array to a blob.
func (c *IntegerCodec) EncodeU32(samples []uint32) ([]byte, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	return c.encodeUnsigned32(samples, section.TypeUint32, 0)
}

// DecodeU32 decodes a blob produced by EncodeU32 (or an empty blob).
func (c *IntegerCodec) DecodeU32(blob []byte) ([]uint32, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	u, _, err := c.decodeUnsigned32(blob, section.TypeUint32)
	return u, err
}

// EncodeBytes encodes a raw byte array. Byte arrays skip the zigzag/delta/
// pack stages entirely: the payload is the input bytes passed straight to
// the backing compressor.
func (c *IntegerCodec) EncodeBytes(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	payload, err := c.codec.Compress(data)
	if err != nil {
		return nil, err
	}

	h := section.Header{CodecID: section.CodecZstd, Type: section.TypeBytes, Count: uint64(len(data))}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.B = h.Bytes(buf.B)
	buf.B = append(buf.B, payload...)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeBytes decodes a blob produced by EncodeBytes.
func (c *IntegerCodec) DecodeBytes(blob []byte) ([]byte, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	h, off, err := section.ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	if h.Type != section.TypeBytes {
		return nil, errs.NewWrongType(section.TypeBytes.String(), h.Type.String())
	}

	payload, err := c.codec.Decompress(blob[off:])
	if err != nil {
		return nil, errs.DecompressFailed(err)
	}

	if uint64(len(payload)) != h.Count {
		return nil, errs.Malformed(len(payload), 1)
	}

	return payload, nil
}

// encodeUnsigned64 runs the shared delta -> zigzag -> pack -> compress chain
// (step 1, the signed fold, has already happened in the caller for signed
// types) and assembles the final blob.
func (c *IntegerCodec) encodeUnsigned64(x []uint64, tag section.TypeTag, scale float64) ([]byte, error) {
	d, cleanup := pool.GetUint64Slice(len(x))
	defer cleanup()

	xform.DeltaEncode64(d, x)
	for i, v := range d {
		d[i] = xform.ZigZagU64(v)
	}

	packed := xform.PackLE64(make([]byte, 0, len(x)*8), d)

	payload, err := c.codec.Compress(packed)
	if err != nil {
		return nil, err
	}

	h := section.Header{CodecID: section.CodecZstd, Type: tag, Count: uint64(len(x)), Scale: scale}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.B = h.Bytes(buf.B)
	buf.B = append(buf.B, payload...)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// decodeUnsigned64 reverses encodeUnsigned64, returning the un-zigzagged,
// inverse-delta'd unsigned word sequence and the header's scale factor.
func (c *IntegerCodec) decodeUnsigned64(blob []byte, want section.TypeTag) ([]uint64, float64, error) {
	h, off, err := section.ParseHeader(blob)
	if err != nil {
		return nil, 0, err
	}

	if h.Type != want {
		return nil, 0, errs.NewWrongType(want.String(), h.Type.String())
	}

	packed, err := c.codec.Decompress(blob[off:])
	if err != nil {
		return nil, 0, errs.DecompressFailed(err)
	}

	const elemSize = 8
	if len(packed)%elemSize != 0 || uint64(len(packed)/elemSize) != h.Count {
		return nil, 0, errs.Malformed(len(packed), elemSize)
	}

	d, cleanup := pool.GetUint64Slice(int(h.Count))
	defer cleanup()
	xform.UnpackLE64(d, packed)

	for i, v := range d {
		d[i] = xform.UnZigZagU64(v)
	}

	x := make([]uint64, len(d))
	xform.DeltaDecode64(x, d)

	return x, h.Scale, nil
}

// encodeUnsigned32 is the 32-bit-domain counterpart of encodeUnsigned64.
func (c *IntegerCodec) encodeUnsigned32(x []uint32, tag section.TypeTag, scale float64) ([]byte, error) {
	d, cleanup := pool.GetUint32Slice(len(x))
	defer cleanup()

	xform.DeltaEncode32(d, x)
	for i, v := range d {
		d[i] = xform.ZigZagU32(v)
	}

	packed := xform.PackLE32(make([]byte, 0, len(x)*4), d)

	payload, err := c.codec.Compress(packed)
	if err != nil {
		return nil, err
	}

	h := section.Header{CodecID: section.CodecZstd, Type: tag, Count: uint64(len(x)), Scale: scale}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.B = h.Bytes(buf.B)
	buf.B = append(buf.B, payload...)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// decodeUnsigned32 is the 32-bit-domain counterpart of decodeUnsigned64.
func (c *IntegerCodec) decodeUnsigned32(blob []byte, want section.TypeTag) ([]uint32, float64, error) {
	h, off, err := section.ParseHeader(blob)
	if err != nil {
		return nil, 0, err
	}

	if h.Type != want {
		return nil, 0, errs.NewWrongType(want.String(), h.Type.String())
	}

	packed, err := c.codec.Decompress(blob[off:])
	if err != nil {
		return nil, 0, errs.DecompressFailed(err)
	}

	const elemSize = 4
	if len(packed)%elemSize != 0 || uint64(len(packed)/elemSize) != h.Count {
		return nil, 0, errs.Malformed(len(packed), elemSize)
	}

	d, cleanup := pool.GetUint32Slice(int(h.Count))
	defer cleanup()
	xform.UnpackLE32(d, packed)

	for i, v := range d {
		d[i] = xform.UnZigZagU32(v)
	}

	x := make([]uint32, len(d))
	xform.DeltaDecode32(x, d)

	return x, h.Scale, nil
}
