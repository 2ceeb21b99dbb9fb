package codec

import (
	"github.com/cydec/cydec/encoding"
	"github.com/cydec/cydec/internal/pool"
	"github.com/cydec/cydec/internal/xform"
	"github.com/cydec/cydec/section"
)

// FloatCodec encodes and decodes homogeneous floating-point sample arrays by
// quantizing to a fixed-point integer and delegating to the same transform
// chain as IntegerCodec. A zero-value FloatCodec is not usable; construct
// one with NewFloatCodec.
type FloatCodec struct {
	cfg     Config
	integer *IntegerCodec
}

// NewFloatCodec builds a FloatCodec from the given options. The backing
// compressor is shared with (owned by) the embedded IntegerCodec, since the
// float path quantizes and then runs the exact same delta/zigzag/pack/
// compress chain.
func NewFloatCodec(opts ...Option) (*FloatCodec, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	integer, err := NewIntegerCodec(opts...)
	if err != nil {
		return nil, err
	}

	return &FloatCodec{cfg: cfg, integer: integer}, nil
}

// EncodeF64 quantizes samples at the given scale (DefaultF64Scale if scale
// is 0) and encodes the result as an i64-shaped blob tagged TypeFloat64,
// with the scale recorded in the header. An empty input returns an empty
// blob.
func (c *FloatCodec) EncodeF64(samples []float64, scale float64) ([]byte, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	if scale == 0 {
		scale = c.cfg.f64Scale
	}

	q, cleanup := pool.GetInt64Slice(len(samples))
	defer cleanup()

	if err := encoding.QuantizeF64(q, samples, scale); err != nil {
		return nil, err
	}

	u := make([]uint64, len(q))
	for i, v := range q {
		u[i] = xform.ZigZagEncode64(v)
	}

	return c.integer.encodeUnsigned64(u, section.TypeFloat64, scale)
}

// DecodeF64 decodes a blob produced by EncodeF64. If scale is 0, the scale
// recorded in the blob's header is used; otherwise the caller's scale
// overrides it.
func (c *FloatCodec) DecodeF64(blob []byte, scale float64) ([]float64, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	u, headerScale, err := c.integer.decodeUnsigned64(blob, section.TypeFloat64)
	if err != nil {
		return nil, err
	}

	effective := headerScale
	if scale != 0 {
		effective = scale
	}

	q, cleanupQ := pool.GetInt64Slice(len(u))
	defer cleanupQ()
	for i, v := range u {
		q[i] = xform.ZigZagDecode64(v)
	}

	buf, cleanupBuf := pool.GetFloat64Slice(len(q))
	defer cleanupBuf()
	encoding.DequantizeF64(buf, q, effective)

	out := make([]float64, len(buf))
	copy(out, buf)

	return out, nil
}

// EncodeF32 is the float32 counterpart of EncodeF64, using DefaultF32Scale
// when scale is 0.
func (c *FloatCodec) EncodeF32(samples []float32, scale float64) ([]byte, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	if scale == 0 {
		scale = c.cfg.f32Scale
	}

	q, cleanup := pool.GetInt32Slice(len(samples))
	defer cleanup()

	if err := encoding.QuantizeF32(q, samples, scale); err != nil {
		return nil, err
	}

	u := make([]uint32, len(q))
	for i, v := range q {
		u[i] = xform.ZigZagEncode32(v)
	}

	return c.integer.encodeUnsigned32(u, section.TypeFloat32, scale)
}

// DecodeF32 is the float32 counterpart of DecodeF64.
func (c *FloatCodec) DecodeF32(blob []byte, scale float64) ([]float32, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	u, headerScale, err := c.integer.decodeUnsigned32(blob, section.TypeFloat32)
	if err != nil {
		return nil, err
	}

	effective := headerScale
	if scale != 0 {
		effective = scale
	}

	q, cleanupQ := pool.GetInt32Slice(len(u))
	defer cleanupQ()
	for i, v := range u {
		q[i] = xform.ZigZagDecode32(v)
	}

	buf, cleanupBuf := pool.GetFloat32Slice(len(q))
	defer cleanupBuf()
	encoding.DequantizeF32(buf, q, effective)

	out := make([]float32, len(buf))
	copy(out, buf)

	return out, nil
}
