// Package xform implements the bit-exact integer transform chain that sits
// between a typed sample array and the backing compressor: zigzag folding,
// wrapping delta, and little-endian packing. Every function here is a pure,
// allocation-free (given a caller-provided destination) bijection on its
// input width; encode and decode are each other's exact inverse.
package xform

// ZigZagEncode64 maps a signed 64-bit integer to its unsigned zigzag
// representation: small-magnitude values, positive or negative, map to
// small unsigned values. w = 64.
func ZigZagEncode64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

// ZigZagDecode64 inverts ZigZagEncode64.
func ZigZagDecode64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// ZigZagEncode32 maps a signed 32-bit integer to its unsigned zigzag
// representation. w = 32.
func ZigZagEncode32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

// ZigZagDecode32 inverts ZigZagEncode32.
func ZigZagDecode32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// ZigZagU64 folds an already-unsigned 64-bit word through zigzag. Used for
// the second zigzag pass over deltas, which are unsigned bit patterns that
// represent signed quantities.
func ZigZagU64(u uint64) uint64 {
	n := int64(u)
	return uint64((n << 1) ^ (n >> 63))
}

// UnZigZagU64 inverts ZigZagU64, returning the original unsigned bit pattern.
func UnZigZagU64(z uint64) uint64 {
	return uint64(int64(z>>1) ^ -int64(z&1))
}

// ZigZagU32 folds an already-unsigned 32-bit word through zigzag.
func ZigZagU32(u uint32) uint32 {
	n := int32(u)
	return uint32((n << 1) ^ (n >> 31))
}

// UnZigZagU32 inverts ZigZagU32.
func UnZigZagU32(z uint32) uint32 {
	return uint32(int32(z>>1) ^ -int32(z&1))
}
