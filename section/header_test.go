package section

import (
	"testing"

	"github.com/cydec/cydec/errs"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTripInteger(t *testing.T) {
	h := Header{CodecID: CodecZstd, Type: TypeInt64, Count: 42}

	b := h.Bytes(nil)
	require.Len(t, b, FixedHeaderSize)

	got, n, err := ParseHeader(b)
	require.NoError(t, err)
	require.Equal(t, FixedHeaderSize, n)
	require.Equal(t, h, got)
}

func TestHeaderRoundTripFloat(t *testing.T) {
	h := Header{CodecID: CodecZstd, Type: TypeFloat64, Count: 7, Scale: 1e9}

	b := h.Bytes(nil)
	require.Len(t, b, FloatHeaderSize)

	got, n, err := ParseHeader(b)
	require.NoError(t, err)
	require.Equal(t, FloatHeaderSize, n)
	require.Equal(t, h, got)
}

func TestParseHeaderBadMagic(t *testing.T) {
	b := Header{CodecID: CodecZstd, Type: TypeInt64, Count: 1}.Bytes(nil)
	b[0] = 'X'

	_, _, err := ParseHeader(b)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestParseHeaderBadVersion(t *testing.T) {
	b := Header{CodecID: CodecZstd, Type: TypeInt64, Count: 1}.Bytes(nil)
	b[5] = 0xFF

	_, _, err := ParseHeader(b)
	require.ErrorIs(t, err, errs.ErrBadVersion)
}

func TestParseHeaderBadCodecID(t *testing.T) {
	b := Header{CodecID: CodecZstd, Type: TypeInt64, Count: 1}.Bytes(nil)
	b[6] = 0xFF

	_, _, err := ParseHeader(b)
	require.ErrorIs(t, err, errs.ErrBadCodecID)
}

func TestParseHeaderUnknownTypeTag(t *testing.T) {
	b := Header{CodecID: CodecZstd, Type: TypeInt64, Count: 1}.Bytes(nil)
	b[7] = 0xFF

	_, _, err := ParseHeader(b)
	require.ErrorIs(t, err, errs.ErrWrongType)
}

func TestParseHeaderTruncated(t *testing.T) {
	b := Header{CodecID: CodecZstd, Type: TypeFloat64, Count: 1, Scale: 1}.Bytes(nil)

	_, _, err := ParseHeader(b[:FixedHeaderSize])
	require.ErrorIs(t, err, errs.ErrTruncatedBlob)

	_, _, err = ParseHeader(b[:2])
	require.ErrorIs(t, err, errs.ErrTruncatedBlob)
}

func TestTypeTagString(t *testing.T) {
	require.Equal(t, "i64", TypeInt64.String())
	require.Equal(t, "u64", TypeUint64.String())
	require.Equal(t, "i32", TypeInt32.String())
	require.Equal(t, "u32", TypeUint32.String())
	require.Equal(t, "f64", TypeFloat64.String())
	require.Equal(t, "f32", TypeFloat32.String())
	require.Equal(t, "bytes", TypeBytes.String())
	require.Equal(t, "unknown", TypeTag(0xFF).String())
}

func TestTypeTagIsFloat(t *testing.T) {
	require.True(t, TypeFloat64.IsFloat())
	require.True(t, TypeFloat32.IsFloat())
	require.False(t, TypeInt64.IsFloat())
	require.False(t, TypeBytes.IsFloat())
}
