//go:build !nobuild

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// "The decoder has been designed to operate without allocations after a warmup.
// This means that you should store the decoder for best performance." Decode
// never needs to know the level an encoder used, so one pool serves every
// ZstdCompressor regardless of its configured level.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options.
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPools holds one sync.Pool of encoders per distinct level in use, so
// that callers configuring several ZstdCompressor instances at different levels
// (e.g. one per codec.Config) don't contend on a single pool.
var (
	zstdEncoderPoolsMu sync.Mutex
	zstdEncoderPools   = map[zstd.EncoderLevel]*sync.Pool{}
)

func zstdLevel(level int) zstd.EncoderLevel {
	if level <= 0 {
		return zstd.SpeedDefault
	}

	switch {
	case level <= 1:
		return zstd.SpeedFastest
	case level <= 3:
		return zstd.SpeedDefault
	case level <= 7:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

func zstdEncoderPoolFor(level zstd.EncoderLevel) *sync.Pool {
	zstdEncoderPoolsMu.Lock()
	pool, ok := zstdEncoderPools[level]
	if !ok {
		lvl := level
		pool = &sync.Pool{
			New: func() any {
				encoder, err := zstd.NewWriter(nil,
					zstd.WithEncoderLevel(lvl),
					zstd.WithEncoderCRC(false), // disable CRC for performance
				)
				if err != nil {
					// This should never happen with valid options.
					panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
				}
				return encoder
			},
		}
		zstdEncoderPools[level] = pool
	}
	zstdEncoderPoolsMu.Unlock()

	return pool
}

// Compress compresses the input data using Zstandard compression.
// Uses a pooled encoder for better performance (eliminates allocation overhead).
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	pool := zstdEncoderPoolFor(zstdLevel(c.level))

	encoder, _ := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	// EncodeAll is stateless - safe to use with a pooled encoder.
	compressed := encoder.EncodeAll(data, nil)

	return compressed, nil
}

// Decompress decompresses Zstd-compressed data.
// Uses a pooled decoder for better performance (eliminates allocation overhead).
//
// This method validates the input data format and returns an error if the data
// is corrupted or was not compressed with Zstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with a pooled decoder. Even if this
	// call fails, the decoder can be reused for the next call.
	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
