package codec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cydec/cydec/errs"
	"github.com/cydec/cydec/section"
	"github.com/stretchr/testify/require"
)

func newTestIntegerCodec(t *testing.T) *IntegerCodec {
	t.Helper()
	c, err := NewIntegerCodec()
	require.NoError(t, err)
	return c
}

// S1: tiny integer round-trip, with header byte layout asserted exactly.
func TestS1TinyIntegerRoundTrip(t *testing.T) {
	c := newTestIntegerCodec(t)
	samples := []int64{100, 101, 102, 103, 104}

	blob, err := c.EncodeI64(samples)
	require.NoError(t, err)

	require.Equal(t, "CYDEC", string(blob[0:5]))
	require.Equal(t, byte(1), blob[5])
	require.Equal(t, byte(1), blob[6])
	require.Equal(t, byte(0), blob[7])
	require.Equal(t, []byte{0x05, 0, 0, 0, 0, 0, 0, 0}, blob[8:16])

	got, err := c.DecodeI64(blob)
	require.NoError(t, err)
	require.Equal(t, samples, got)

	_, err = c.DecodeU64(blob)
	require.ErrorIs(t, err, errs.ErrWrongType)
}

// S4: integer extremes round-trip bit-exactly despite wrapping arithmetic.
func TestS4IntegerExtremes(t *testing.T) {
	c := newTestIntegerCodec(t)
	samples := []int64{math.MinInt64, math.MinInt64 + 1, -1, 0, 1, math.MaxInt64 - 1, math.MaxInt64}

	blob, err := c.EncodeI64(samples)
	require.NoError(t, err)

	got, err := c.DecodeI64(blob)
	require.NoError(t, err)
	require.Equal(t, samples, got)
}

// S5: empty array encodes to a zero-length blob and decodes back to empty.
func TestS5EmptyArray(t *testing.T) {
	c := newTestIntegerCodec(t)

	blob, err := c.EncodeI64(nil)
	require.NoError(t, err)
	require.Empty(t, blob)

	got, err := c.DecodeI64(blob)
	require.NoError(t, err)
	require.Empty(t, got)

	gotU, err := c.DecodeU64(blob)
	require.NoError(t, err)
	require.Empty(t, gotU)
}

// S6: corrupting the magic bytes of a valid blob fails with BadMagic.
func TestS6CorruptedMagic(t *testing.T) {
	c := newTestIntegerCodec(t)

	blob, err := c.EncodeI64([]int64{1, 2, 3})
	require.NoError(t, err)

	blob[0] = 'X'

	_, err = c.DecodeI64(blob)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

// S7: byte round-trip over the full 0..255 range, tag byte 6.
func TestS7ByteRoundTrip(t *testing.T) {
	c := newTestIntegerCodec(t)

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	blob, err := c.EncodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, byte(section.TypeBytes), blob[7])

	got, err := c.DecodeBytes(blob)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestIntegerRoundTripU64(t *testing.T) {
	c := newTestIntegerCodec(t)
	samples := []uint64{0, 1, math.MaxUint64, 12345, 999999999999}

	blob, err := c.EncodeU64(samples)
	require.NoError(t, err)

	got, err := c.DecodeU64(blob)
	require.NoError(t, err)
	require.Equal(t, samples, got)
}

func TestIntegerRoundTripI32U32(t *testing.T) {
	c := newTestIntegerCodec(t)

	i32s := []int32{math.MinInt32, -1, 0, 1, math.MaxInt32}
	blob, err := c.EncodeI32(i32s)
	require.NoError(t, err)
	got, err := c.DecodeI32(blob)
	require.NoError(t, err)
	require.Equal(t, i32s, got)

	u32s := []uint32{0, 1, math.MaxUint32}
	blob, err = c.EncodeU32(u32s)
	require.NoError(t, err)
	gotU, err := c.DecodeU32(blob)
	require.NoError(t, err)
	require.Equal(t, u32s, gotU)
}

func TestIntegerSingleElement(t *testing.T) {
	c := newTestIntegerCodec(t)

	blob, err := c.EncodeI64([]int64{42})
	require.NoError(t, err)

	got, err := c.DecodeI64(blob)
	require.NoError(t, err)
	require.Equal(t, []int64{42}, got)
}

func TestIntegerTruncatedBlobRejected(t *testing.T) {
	c := newTestIntegerCodec(t)

	blob, err := c.EncodeI64([]int64{1, 2, 3})
	require.NoError(t, err)

	_, err = c.DecodeI64(blob[:3])
	require.ErrorIs(t, err, errs.ErrTruncatedBlob)
}

func TestIntegerDeterminism(t *testing.T) {
	c := newTestIntegerCodec(t)
	samples := []int64{5, 5, 5, 10, -3, 1000, -1000}

	a, err := c.EncodeI64(samples)
	require.NoError(t, err)
	b, err := c.EncodeI64(samples)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCompressionRatioConstantArray(t *testing.T) {
	c := newTestIntegerCodec(t)

	samples := make([]int64, 10000)
	for i := range samples {
		samples[i] = 42
	}

	blob, err := c.EncodeI64(samples)
	require.NoError(t, err)

	ratio := float64(len(samples)*8) / float64(len(blob))
	require.Greater(t, ratio, 50.0)
}

func TestCompressionRatioSequentialArray(t *testing.T) {
	c := newTestIntegerCodec(t)

	samples := make([]int64, 10000)
	for i := range samples {
		samples[i] = int64(i)
	}

	blob, err := c.EncodeI64(samples)
	require.NoError(t, err)

	ratio := float64(len(samples)*8) / float64(len(blob))
	require.Greater(t, ratio, 10.0)
}

// Sorted data should compress no worse than the same elements shuffled: a
// sorted sequence has small, consistent deltas while a shuffled permutation
// has large, erratic ones.
func TestSortedCompressesNoWorseThanShuffled(t *testing.T) {
	c := newTestIntegerCodec(t)

	sorted := make([]int64, 2000)
	for i := range sorted {
		sorted[i] = int64(i)
	}

	shuffled := append([]int64(nil), sorted...)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	sortedBlob, err := c.EncodeI64(sorted)
	require.NoError(t, err)

	shuffledBlob, err := c.EncodeI64(shuffled)
	require.NoError(t, err)

	require.LessOrEqual(t, len(sortedBlob), len(shuffledBlob))
}
