package bytestext_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/rson9/bytestext"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	t.Run("slice ascii", func(t *testing.T) {
		txt, err := bytestext.FromBytes([]byte("Hello, world!"))
		require.NoError(t, err)
		s, err := txt.Slice(0, 5)
		require.NoError(t, err)
		require.True(t, s.EqualString("Hello"))
	})

	t.Run("standalone 0xFF", func(t *testing.T) {
		_, err := bytestext.FromBytes([]byte{0xFF})
		var ve *bytestext.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, 0, ve.Offset)
	})

	t.Run("mid sequence offset", func(t *testing.T) {
		txt, err := bytestext.FromBytes([]byte("héllo"))
		require.NoError(t, err)
		_, err = txt.Slice(0, 2)
		var be *bytestext.BoundaryError
		require.ErrorAs(t, err, &be)
		s, err := txt.Slice(0, 3)
		require.NoError(t, err)
		require.True(t, s.EqualString("hé"))
	})

	t.Run("bounds", func(t *testing.T) {
		txt := bytestext.MustFromString("sixsix")
		s, err := txt.Slice(6, 6)
		require.NoError(t, err)
		require.True(t, s.IsEmpty())
		_, err = txt.Slice(7, 7)
		var be *bytestext.BoundsError
		require.ErrorAs(t, err, &be)
	})

	t.Run("separate allocations", func(t *testing.T) {
		a, err := bytestext.FromBytes([]byte(strings.Repeat("ab", 3)))
		require.NoError(t, err)
		b, err := bytestext.FromBytes([]byte("ababab"))
		require.NoError(t, err)
		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash())
	})
}

func TestConcurrentCloneRelease(t *testing.T) {
	pool := bytestext.NewPool(0)
	b := bytestext.NewBuilder(bytestext.WithPool(pool))
	_, err := b.WriteString(strings.Repeat("ü", 64))
	require.NoError(t, err)
	root, err := b.Freeze()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		c := root.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer c.Release()
			for j := 0; j < 500; j++ {
				s, err := c.Slice(2*(j%32), 2*(j%32)+4)
				if err != nil {
					t.Errorf("slice: %v", err)
					return
				}
				if s.RuneCount() != 2 {
					t.Errorf("rune count = %d", s.RuneCount())
				}
				s.Release()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), root.Refs())
	require.Equal(t, int64(0), pool.Stats().Puts)
	root.Release()
	require.Equal(t, int64(1), pool.Stats().Puts)
}
