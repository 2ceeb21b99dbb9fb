package xform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigZag64RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, math.MaxInt64, math.MinInt64, 1000, -1000}
	for _, v := range values {
		z := ZigZagEncode64(v)
		require.Equal(t, v, ZigZagDecode64(z))
	}
}

func TestZigZag64SmallMagnitudeSmallEncoding(t *testing.T) {
	require.Equal(t, uint64(0), ZigZagEncode64(0))
	require.Equal(t, uint64(1), ZigZagEncode64(-1))
	require.Equal(t, uint64(2), ZigZagEncode64(1))
	require.Equal(t, uint64(3), ZigZagEncode64(-2))
}

func TestZigZag32RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 2, -2, math.MaxInt32, math.MinInt32}
	for _, v := range values {
		z := ZigZagEncode32(v)
		require.Equal(t, v, ZigZagDecode32(z))
	}
}

func TestZigZagU64RoundTrip(t *testing.T) {
	values := []uint64{0, 1, math.MaxUint64, 1 << 63, 12345}
	for _, v := range values {
		z := ZigZagU64(v)
		require.Equal(t, v, UnZigZagU64(z))
	}
}

func TestZigZagU32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, math.MaxUint32, 1 << 31, 12345}
	for _, v := range values {
		z := ZigZagU32(v)
		require.Equal(t, v, UnZigZagU32(z))
	}
}
