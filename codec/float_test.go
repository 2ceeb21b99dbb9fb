package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestFloatCodec(t *testing.T) *FloatCodec {
	t.Helper()
	c, err := NewFloatCodec()
	require.NoError(t, err)
	return c
}

// S2: float round-trip with default scale, header scale bytes asserted.
func TestS2FloatRoundTripDefaultScale(t *testing.T) {
	c := newTestFloatCodec(t)
	samples := []float64{1.0, 2.0, 3.0, 4.0, 5.0}

	blob, err := c.EncodeF64(samples, 0)
	require.NoError(t, err)
	require.Equal(t, byte(4), blob[7])
	require.Equal(t, math.Float64bits(DefaultF64Scale), engineUint64(blob[16:24]))

	got, err := c.DecodeF64(blob, 0)
	require.NoError(t, err)
	for i, v := range samples {
		require.InDelta(t, v, got[i], 1e-9)
	}
}

// S3: custom scale embedded in the header, recovered on decode without the
// caller repeating it.
func TestS3FloatCustomScale(t *testing.T) {
	c := newTestFloatCodec(t)
	samples := []float64{1.1, 2.2, 3.3}
	scale := 12345.6789

	blob, err := c.EncodeF64(samples, scale)
	require.NoError(t, err)

	got, err := c.DecodeF64(blob, 0)
	require.NoError(t, err)
	for i, v := range samples {
		require.InDelta(t, v, got[i], 1/scale+1e-9)
	}
}

func TestFloatDecodeScaleOverride(t *testing.T) {
	c := newTestFloatCodec(t)

	blob, err := c.EncodeF64([]float64{10}, 1000)
	require.NoError(t, err)

	got, err := c.DecodeF64(blob, 1000)
	require.NoError(t, err)
	require.InDelta(t, 10.0, got[0], 1e-6)
}

func TestFloatNegativeZeroDecodesPositive(t *testing.T) {
	c := newTestFloatCodec(t)

	blob, err := c.EncodeF64([]float64{math.Copysign(0, -1)}, 0)
	require.NoError(t, err)

	got, err := c.DecodeF64(blob, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, got[0])
	require.False(t, math.Signbit(got[0]))
}

func TestFloatEmptyArray(t *testing.T) {
	c := newTestFloatCodec(t)

	blob, err := c.EncodeF64(nil, 0)
	require.NoError(t, err)
	require.Empty(t, blob)

	got, err := c.DecodeF64(blob, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFloat32RoundTrip(t *testing.T) {
	c := newTestFloatCodec(t)
	samples := []float32{1.5, -2.5, 0, 100.25}

	blob, err := c.EncodeF32(samples, 0)
	require.NoError(t, err)
	require.Equal(t, byte(5), blob[7])

	got, err := c.DecodeF32(blob, 0)
	require.NoError(t, err)
	for i, v := range samples {
		require.InDelta(t, v, got[i], 1e-5)
	}
}

func TestFloatQuantizationOverflowRejected(t *testing.T) {
	c := newTestFloatCodec(t)

	_, err := c.EncodeF64([]float64{1e300}, 1e9)
	require.Error(t, err)
}

func TestFloatNaNRejected(t *testing.T) {
	c := newTestFloatCodec(t)

	_, err := c.EncodeF64([]float64{math.NaN()}, 0)
	require.Error(t, err)
}

// engineUint64 reads a little-endian uint64, matching the header's wire format.
func engineUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
