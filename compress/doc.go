// Package compress provides the backing compressors used at the tail of cydec's
// encode pipeline and the head of its decode pipeline.
//
// cydec treats the backing compressor as a stateless, replaceable collaborator:
// it is invoked as a black box over the bytes the pipeline kernel has already
// packed (see the section and internal/xform packages), and its frame is never
// inspected or extended by the codec. Four algorithms are available:
//
//   - AlgorithmNone: no compression, useful for benchmarking pipeline overhead
//     in isolation or for payloads too small to benefit
//   - AlgorithmZstd: the default. Best ratio, moderate speed; ideal once the
//     zigzag/delta transform has turned slowly-varying samples into long runs
//     of near-zero bytes
//   - AlgorithmS2: a Snappy-family codec, faster than Zstd at a worse ratio
//   - AlgorithmLZ4: optimized for fast decompression, useful for read-heavy
//     workloads
//
// # Architecture
//
// The package defines three small interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Construct one with New, selecting an Algorithm and an optional level:
//
//	codec, err := compress.New(compress.AlgorithmZstd, 0) // 0 = algorithm default
//
// # Wire compatibility
//
// The blob header's codec id byte (see package section) is 0x01 on every blob
// this build writes, whichever Algorithm the codec was constructed with. It
// does not record which algorithm produced the payload, and a blob decodes
// only with a codec constructed with the same Algorithm that encoded it.
// Because every algorithm's frame is self-delimiting, the header
// never needs to record the compressed payload's length; decode reads the
// frame and trusts the algorithm to know where it ends. Changing the default
// algorithm for new writes requires bumping the codec id and keeping decode
// support for the old one, never reusing an id for a different algorithm.
//
// # Thread safety
//
// All Codec implementations are safe for concurrent use: construction carries
// only algorithm parameters, and Compress/Decompress hold no state across
// calls beyond pooled scratch buffers internal to each implementation.
package compress
