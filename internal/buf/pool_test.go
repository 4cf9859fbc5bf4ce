package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool_GetPut(t *testing.T) {
	p := NewPool(1024)

	b := p.Get(16)
	require.Len(t, b, 0)
	require.GreaterOrEqual(t, cap(b), 16)

	b = append(b, "data"...)
	p.Put(b)

	stats := p.Stats()
	require.Equal(t, int64(1), stats.Gets)
	require.Equal(t, int64(1), stats.Puts)
}

func TestPool_DropsOversized(t *testing.T) {
	p := NewPool(8)
	p.Put(make([]byte, 0, 32))
	p.Put(nil)

	stats := p.Stats()
	require.Equal(t, int64(1), stats.Dropped)
	require.Equal(t, int64(0), stats.Puts)
}

func TestPool_DefaultCap(t *testing.T) {
	p := NewPool(0)
	require.Equal(t, DefaultMaxPooledCap, p.maxCap)
}

func TestPool_ReleaseHookReturnsSlice(t *testing.T) {
	p := NewPool(0)
	data := append(p.Get(8), "pooled"...)
	b := WrapFunc(data, p.Put)
	b.Release()
	require.Equal(t, int64(1), p.Stats().Puts)
}
