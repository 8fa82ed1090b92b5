package asm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/asimd/asm"
)

func TestCodeSegmentZeroValue(t *testing.T) {
	code := asm.NewCodeSegment(nil)
	require.Equal(t, 0, code.Size())
	require.Equal(t, 0, len(code.Bytes()))

	buf := code.Next()
	require.Equal(t, 0, buf.Cap())
	require.Equal(t, 0, buf.Len())
	require.Equal(t, 0, len(buf.Bytes()))
}

func TestBufferWriteUint32(t *testing.T) {
	withBuffer(t, func(buf asm.Buffer) {
		buf.WriteUint32(0x4e218441)
		buf.WriteUint32(0x0e205841)
		require.Equal(t, 8, buf.Len())
		require.Equal(t, []byte{0x41, 0x84, 0x21, 0x4e, 0x41, 0x58, 0x20, 0x0e}, buf.Bytes())
	})
}

func TestBufferGrow(t *testing.T) {
	code := asm.NewCodeSegment(make([]byte, 0, 8))
	buf := code.Next()
	for i := 0; i < 10000; i++ {
		buf.WriteUint32(uint32(i))
	}
	require.Equal(t, 40000, buf.Len())
	require.True(t, buf.Cap() >= 40000)
	b := buf.Bytes()
	require.Equal(t, []byte{0x0f, 0x27, 0, 0}, b[len(b)-4:])
}

func TestCodeSegmentNextAligns(t *testing.T) {
	code := asm.NewCodeSegment(nil)
	first := code.Next()
	first.WriteUint32(1)
	first.WriteUint32(2)
	first.WriteUint32(3)
	require.Equal(t, 12, code.Size())

	second := code.Next()
	require.Equal(t, 16, code.Size())
	require.Equal(t, 0, second.Len())
	second.WriteUint32(4)
	require.Equal(t, []byte{4, 0, 0, 0}, second.Bytes())
	require.Equal(t, 20, code.Size())

	// Already aligned: no padding.
	code = asm.NewCodeSegment(nil)
	b := code.Next()
	for i := 0; i < 4; i++ {
		b.WriteUint32(0)
	}
	code.Next()
	require.Equal(t, 16, code.Size())
}

func TestBufferReset(t *testing.T) {
	withBuffer(t, func(buf asm.Buffer) {
		buf.WriteUint32(0xdeadbeef)
		require.NotEqual(t, 0, buf.Cap())
		require.Equal(t, 4, buf.Len())

		buf.Reset()
		require.Equal(t, 0, buf.Len())
		require.Equal(t, []byte{}, buf.Bytes())
	})
}

func TestBufferTruncate(t *testing.T) {
	withBuffer(t, func(buf asm.Buffer) {
		buf.WriteUint32(0x11111111)
		buf.WriteUint32(0x22222222)
		require.Equal(t, 8, buf.Len())

		buf.Truncate(4)
		require.Equal(t, 4, buf.Len())
		require.Equal(t, []byte{0x11, 0x11, 0x11, 0x11}, buf.Bytes())
	})
}

func withBuffer(t *testing.T, f func(asm.Buffer)) {
	code := asm.NewCodeSegment(nil)
	// Repeat the test multiple times to ensure that Next works as expected.
	for i := 0; i < 10; i++ {
		f(code.Next())
	}
}
