//go:build nobuild

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// Compress compresses the input data using cgo-backed Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	level := c.level
	if level <= 0 {
		level = 3
	}

	return gozstd.CompressLevel(nil, data, level), nil
}

// Decompress decompresses cgo-backed Zstandard compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd (cgo) decompression failed: %w", err)
	}

	return out, nil
}
