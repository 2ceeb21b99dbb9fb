// Package section defines cydec's container header: the type tags, codec
// ids, and fixed-layout byte fields that make a blob self-describing.
//
// # Overview
//
// Every non-empty blob cydec produces is a header immediately followed by
// one backing-compressor frame. There is no index, no multi-section layout,
// and no checksum: one blob holds exactly one encoded sample array, and the
// frame itself is self-delimiting, so the header never needs to record the
// payload's length.
//
// # Blob layout
//
//	┌──────────────────────────────────────────────┐
//	│ Magic       "CYDEC"              5 bytes      │
//	├──────────────────────────────────────────────┤
//	│ Version     0x01                 1 byte       │
//	├──────────────────────────────────────────────┤
//	│ Codec id    0x01 (Zstd, v1 wire) 1 byte       │
//	├──────────────────────────────────────────────┤
//	│ Type tag    see table below       1 byte       │
//	├──────────────────────────────────────────────┤
//	│ Element count, little-endian      8 bytes      │
//	├──────────────────────────────────────────────┤
//	│ Scale factor (float tags only)    8 bytes      │
//	│ IEEE-754 double, little-endian                 │
//	├──────────────────────────────────────────────┤
//	│ Payload: one backing-compressor frame          │
//	│ (variable length, self-delimiting)             │
//	└──────────────────────────────────────────────┘
//
// The fixed portion is 16 bytes for integer/byte type tags and 24 bytes for
// float type tags (FixedHeaderSize and FloatHeaderSize, respectively). An
// empty input array is the one exception to all of the above: it produces a
// zero-length blob with no header at all, and decoding a zero-length blob
// returns an empty array of the requested type without this package ever
// being consulted.
//
// # Type tags
//
//	tag   meaning
//	0x00  i64
//	0x01  u64
//	0x02  i32
//	0x03  u32
//	0x04  f64 (header carries a scale factor)
//	0x05  f32 (header carries a scale factor)
//	0x06  bytes
//
// # Codec id
//
// The codec id byte is not a free choice among the backing compressors the
// codec package can construct (Zstd, S2, LZ4, None) — it is pinned to 0x01
// for every blob this version of the format produces, regardless of which
// Algorithm was actually configured on the encoding side. It identifies the
// wire format's version, not the literal compressor: since each backing
// compressor's frame is self-delimiting, decode can process any frame
// without inspecting this byte, as long as the decoder was constructed with
// the same Algorithm the encoder used. A future incompatible header layout
// would get a new codec id and a decoder that still understands the old one.
//
// # Validation order
//
// ParseHeader validates fields strictly in this order, returning the first
// failure: magic, version, codec id, type tag, then the length/scale
// fields implied by the tag. Each failure maps to a distinct sentinel in
// package errs, so a caller can tell a truncated blob from a type mismatch
// from a future-version blob without string-matching an error message.
package section
