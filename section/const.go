package section

// TypeTag identifies the element type a blob's payload decodes to. It is the
// eighth byte of every non-empty blob's header.
type TypeTag byte

// Type tags, stable on the wire.
const (
	TypeInt64   TypeTag = 0x00
	TypeUint64  TypeTag = 0x01
	TypeInt32   TypeTag = 0x02
	TypeUint32  TypeTag = 0x03
	TypeFloat64 TypeTag = 0x04
	TypeFloat32 TypeTag = 0x05
	TypeBytes   TypeTag = 0x06
)

// String returns the type tag's name, matching the public operation suffix
// in the codec package (e.g. "i64" for EncodeI64/DecodeI64).
func (t TypeTag) String() string {
	switch t {
	case TypeInt64:
		return "i64"
	case TypeUint64:
		return "u64"
	case TypeInt32:
		return "i32"
	case TypeUint32:
		return "u32"
	case TypeFloat64:
		return "f64"
	case TypeFloat32:
		return "f32"
	case TypeBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// IsFloat reports whether t is one of the two floating-point type tags,
// which carry an extra 8-byte scale factor field in the header.
func (t TypeTag) IsFloat() bool {
	return t == TypeFloat64 || t == TypeFloat32
}

// CodecID is the backing-compressor id byte of a blob's header. It is the
// seventh byte of every non-empty blob's header.
type CodecID byte

// Codec ids, stable on the wire. Only one is defined for this build; the
// byte exists so a future change of default backing compressor can be
// introduced as a new id while decode keeps supporting the old one.
//
// A blob's codec id does not name a specific algorithm the way a type tag
// names a specific element type: it names a backing-compressor version. The
// caller-selected Algorithm (package compress) is a process-local
// configuration choice, not part of the wire contract, so a decoder must be
// configured with the same algorithm the encoder used; the codec id only
// guards against decoding a blob written by an incompatible future version
// of this codec.
const (
	CodecZstd CodecID = 0x01
)

const (
	// Magic is the five-byte ASCII sequence every non-empty blob begins with.
	Magic = "CYDEC"

	// Version is the only header version this build understands.
	Version byte = 0x01

	// FixedHeaderSize is the header length for non-float type tags: magic (5)
	// + version (1) + codec id (1) + type tag (1) + element count (8).
	FixedHeaderSize = 16

	// FloatHeaderSize is the header length for float type tags, which adds an
	// 8-byte IEEE-754 scale factor after the fixed fields.
	FloatHeaderSize = FixedHeaderSize + 8
)
