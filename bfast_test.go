package bfast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vimaec/bfast-go/blob"
	"github.com/vimaec/bfast-go/errs"
	"github.com/vimaec/bfast-go/section"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	original := []Buffer{
		{Name: "positions", Data: bytes.Repeat([]byte{0xCA, 0xFE}, 1000)},
		{Name: "indices", Data: []byte{0, 1, 2, 2, 3, 0}},
		{Name: "uv", Data: make([]byte, 512)},
	}

	stream, err := Pack(original)
	require.NoError(t, err)

	decoded, err := Unpack(stream)
	require.NoError(t, err)

	require.Len(t, decoded, len(original))
	for i := range original {
		require.Equal(t, original[i].Name, decoded[i].Name)
		require.Equal(t, original[i].Data, decoded[i].Data)
	}
}

func TestPackEmpty(t *testing.T) {
	stream, err := Pack(nil)

	require.NoError(t, err)
	require.Len(t, stream, section.ArrayOffsetsStart)

	decoded, err := Unpack(stream)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestPackInvalidName(t *testing.T) {
	_, err := Pack([]Buffer{{Name: "nul\x00here", Data: []byte{1}}})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidBufferName)
}

func TestUnpackGarbage(t *testing.T) {
	_, err := Unpack([]byte("definitely not a bfast stream, not even close"))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestBufferID(t *testing.T) {
	stream, err := Pack([]Buffer{{Name: "positions", Data: []byte{1, 2, 3}}})
	require.NoError(t, err)

	decoder, err := blob.NewDecoder(stream)
	require.NoError(t, err)
	decoded, err := decoder.Decode()
	require.NoError(t, err)

	buf, ok := decoded.BufferByID(BufferID("positions"))
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, buf.Data)
}

func TestFormatVersion(t *testing.T) {
	require.NotEmpty(t, FormatVersion)
}
