package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	bb.Reset()
	require.Zero(t, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.B = append(bb.B, 1, 2, 3)

	bb.Grow(1024)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1024)
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	// Growing within existing capacity is a no-op.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte("frame bytes"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(11), n)
	require.Equal(t, "frame bytes", out.String())
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte{1, 2, 3})
	p.Put(bb)

	// Buffers come back reset.
	bb = p.Get()
	require.Zero(t, bb.Len())
	p.Put(bb)
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	bb.Grow(1024)
	// Must not panic; oversized buffers are dropped instead of pooled.
	p.Put(bb)
	p.Put(nil)
}

func TestFrameBufferHelpers(t *testing.T) {
	bb := GetFrameBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())

	_, _ = bb.Write([]byte{9, 9})
	PutFrameBuffer(bb)
}
