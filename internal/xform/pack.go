package xform

import "github.com/cydec/cydec/endian"

// PackLE64 serializes u as n*8 little-endian bytes, appending to dst.
func PackLE64(dst []byte, u []uint64) []byte {
	engine := endian.GetLittleEndianEngine()
	for _, v := range u {
		dst = engine.AppendUint64(dst, v)
	}
	return dst
}

// UnpackLE64 parses a little-endian-packed byte slice into n uint64 values.
// len(b) must be an exact multiple of 8; callers validate this before calling.
func UnpackLE64(dst []uint64, b []byte) {
	engine := endian.GetLittleEndianEngine()
	for i := range dst {
		dst[i] = engine.Uint64(b[i*8 : i*8+8])
	}
}

// PackLE32 serializes u as n*4 little-endian bytes, appending to dst.
func PackLE32(dst []byte, u []uint32) []byte {
	engine := endian.GetLittleEndianEngine()
	for _, v := range u {
		dst = engine.AppendUint32(dst, v)
	}
	return dst
}

// UnpackLE32 parses a little-endian-packed byte slice into n uint32 values.
// len(b) must be an exact multiple of 4; callers validate this before calling.
func UnpackLE32(dst []uint32, b []byte) {
	engine := endian.GetLittleEndianEngine()
	for i := range dst {
		dst[i] = engine.Uint32(b[i*4 : i*4+4])
	}
}
