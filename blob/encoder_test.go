package blob

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vimaec/bfast-go/endian"
	"github.com/vimaec/bfast-go/errs"
	"github.com/vimaec/bfast-go/section"
)

func TestNewEncoder(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		encoder, err := NewEncoder()

		require.NoError(t, err)
		require.NotNil(t, encoder)
		require.Equal(t, 0, encoder.Count())
	})

	t.Run("With buffer count hint", func(t *testing.T) {
		encoder, err := NewEncoder(WithBufferCountHint(16))

		require.NoError(t, err)
		require.Equal(t, 0, encoder.Count())
	})

	t.Run("Negative hint rejected", func(t *testing.T) {
		_, err := NewEncoder(WithBufferCountHint(-1))

		require.Error(t, err)
	})
}

func TestEncoder_Add(t *testing.T) {
	t.Run("Accumulates in order", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)

		require.NoError(t, encoder.Add("a", []byte{1}))
		require.NoError(t, encoder.AddBuffer(Buffer{Name: "b", Data: []byte{2}}))
		require.Equal(t, 2, encoder.Count())
	})

	t.Run("Embedded null rejected", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)

		err = encoder.Add("bad\x00name", []byte{1})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidBufferName)
		require.Equal(t, 0, encoder.Count())
	})

	t.Run("Add after Finish rejected", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)

		_, err = encoder.Finish()
		require.NoError(t, err)

		err = encoder.Add("late", []byte{1})
		require.ErrorIs(t, err, errs.ErrEncoderFinished)
	})
}

func TestEncoder_Finish_Empty(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	stream, err := encoder.Finish()

	require.NoError(t, err)
	require.Len(t, stream, int(section.ComputeDataStart(0)))

	engine := endian.GetLittleEndianEngine()
	require.Equal(t, section.Magic, engine.Uint64(stream[0:8]))
	require.Equal(t, uint64(0), engine.Uint64(stream[8:16]))  // DataStart
	require.Equal(t, uint64(0), engine.Uint64(stream[16:24])) // DataEnd
	require.Equal(t, uint64(0), engine.Uint64(stream[24:32])) // NumArrays
}

func TestEncoder_Finish_Layout(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	require.NoError(t, encoder.Add("a", []byte{1, 2, 3}))
	require.NoError(t, encoder.Add("bb", []byte{9, 9}))

	stream, err := encoder.Finish()
	require.NoError(t, err)

	engine := endian.GetLittleEndianEngine()

	// Header: name table + 2 data buffers.
	require.Equal(t, section.Magic, engine.Uint64(stream[0:8]))
	require.Equal(t, uint64(128), engine.Uint64(stream[8:16]))
	require.Equal(t, uint64(258), engine.Uint64(stream[16:24]))
	require.Equal(t, uint64(3), engine.Uint64(stream[24:32]))
	require.Len(t, stream, 258)

	// Offset table at byte 64: [128,133) [192,195) [256,258).
	offsets, err := section.ParseArrayOffsets(stream, 3, engine)
	require.NoError(t, err)
	require.Equal(t, []section.ArrayOffset{
		{Begin: 128, End: 133},
		{Begin: 192, End: 195},
		{Begin: 256, End: 258},
	}, offsets)

	// Name table is logical buffer 0.
	require.Equal(t, []byte("a\x00bb\x00"), stream[128:133])

	// Data buffers at their aligned ranges.
	require.Equal(t, []byte{1, 2, 3}, stream[192:195])
	require.Equal(t, []byte{9, 9}, stream[256:258])
}

func TestEncoder_Finish_PaddingIsZero(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	// Non-aligned lengths force padding gaps between every range.
	require.NoError(t, encoder.Add("x", bytes.Repeat([]byte{0xFF}, 7)))
	require.NoError(t, encoder.Add("y", bytes.Repeat([]byte{0xEE}, 65)))
	require.NoError(t, encoder.Add("z", []byte{0xDD}))

	stream, err := encoder.Finish()
	require.NoError(t, err)

	engine := endian.GetLittleEndianEngine()
	offsets, err := section.ParseArrayOffsets(stream, 4, engine)
	require.NoError(t, err)

	for i := 0; i < len(offsets)-1; i++ {
		gap := stream[offsets[i].End:offsets[i+1].Begin]
		for j, b := range gap {
			require.Zero(t, b, "padding byte %d after buffer %d", j, i)
		}
	}
}

func TestEncoder_Finish_NotReusable(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Add("a", []byte{1}))

	_, err = encoder.Finish()
	require.NoError(t, err)

	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestEncoder_DoesNotAliasInput(t *testing.T) {
	input := []byte{1, 2, 3, 4}
	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Add("a", input))

	stream, err := encoder.Finish()
	require.NoError(t, err)

	// Mutating the caller's buffer after Finish must not change the stream.
	snapshot := bytes.Clone(stream)
	input[0] = 0xFF
	require.Equal(t, snapshot, stream)
}

func TestPack(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		buffers := []Buffer{
			{Name: "positions", Data: bytes.Repeat([]byte{1, 2, 3, 4}, 100)},
			{Name: "indices", Data: bytes.Repeat([]byte{5, 6}, 33)},
		}

		first, err := Pack(buffers)
		require.NoError(t, err)
		second, err := Pack(buffers)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("Order sensitive", func(t *testing.T) {
		a := Buffer{Name: "a", Data: []byte{1}}
		b := Buffer{Name: "b", Data: []byte{2}}

		ab, err := Pack([]Buffer{a, b})
		require.NoError(t, err)
		ba, err := Pack([]Buffer{b, a})
		require.NoError(t, err)

		require.NotEqual(t, ab, ba)
	})

	t.Run("Nil input packs empty container", func(t *testing.T) {
		stream, err := Pack(nil)

		require.NoError(t, err)
		require.Len(t, stream, int(section.ComputeDataStart(0)))
	})

	t.Run("Invalid name fails before output", func(t *testing.T) {
		_, err := Pack([]Buffer{{Name: "a\x00b", Data: []byte{1}}})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidBufferName)
	})

	t.Run("All begins aligned", func(t *testing.T) {
		stream, err := Pack([]Buffer{
			{Name: "a", Data: make([]byte, 1)},
			{Name: "b", Data: make([]byte, 63)},
			{Name: "c", Data: make([]byte, 64)},
			{Name: "d", Data: make([]byte, 65)},
		})
		require.NoError(t, err)

		engine := endian.GetLittleEndianEngine()
		require.True(t, section.IsAligned(engine.Uint64(stream[8:16])))

		offsets, err := section.ParseArrayOffsets(stream, 5, engine)
		require.NoError(t, err)
		for i, off := range offsets {
			require.True(t, section.IsAligned(off.Begin), "entry %d begin %d", i, off.Begin)
		}
	})
}

func BenchmarkPack(b *testing.B) {
	buffers := []Buffer{
		{Name: "positions", Data: make([]byte, 64*1024)},
		{Name: "indices", Data: make([]byte, 16*1024)},
		{Name: "uv", Data: make([]byte, 32*1024)},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Pack(buffers); err != nil {
			b.Fatal(err)
		}
	}
}
