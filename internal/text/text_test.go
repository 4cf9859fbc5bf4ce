package text

import (
	"encoding/json"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestFromBytes_ValidText(t *testing.T) {
	txt, err := FromBytes([]byte("Hello, world!"))
	require.NoError(t, err)
	require.Equal(t, 13, txt.Len())

	hello, err := txt.Slice(0, 5)
	require.NoError(t, err)
	require.True(t, hello.EqualString("Hello"))
	require.Equal(t, "Hello", hello.String())
}

func TestFromBytes_StandaloneInvalidByte(t *testing.T) {
	_, err := FromBytes([]byte{0xFF, 'a', 'b'})
	require.ErrorIs(t, err, ErrInvalidUTF8)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, 0, ve.Offset)
	require.Equal(t, KindInvalidByte, ve.Kind)
}

func TestFromBytes_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		offset int
		kind   Kind
	}{
		{"lone continuation", []byte("ab\x80"), 2, KindUnexpectedContinuation},
		{"overlong slash", []byte("a\xC0\xAF"), 1, KindOverlong},
		{"overlong three byte", []byte("\xE0\x80\xAF"), 0, KindOverlong},
		{"surrogate", []byte("x\xED\xA0\x80"), 1, KindSurrogate},
		{"above max", []byte("\xF4\x90\x80\x80"), 0, KindOutOfRange},
		{"truncated", []byte("h\xC3llo"), 1, KindTruncated},
		{"incomplete", []byte("ok\xE2\x82"), 2, KindIncomplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes(tt.in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.offset, ve.Offset)
			require.Equal(t, tt.kind, ve.Kind)
			require.True(t, utf8.Valid(tt.in[:ve.Offset]))
		})
	}
}

func TestSlice_CharBoundary(t *testing.T) {
	txt := MustFromString("héllo")

	_, err := txt.Slice(0, 2)
	var be *BoundaryError
	require.ErrorAs(t, err, &be)
	require.Equal(t, 2, be.Offset)
	require.ErrorIs(t, err, ErrNotCharBoundary)

	he, err := txt.Slice(0, 3)
	require.NoError(t, err)
	require.True(t, he.EqualString("hé"))
}

func TestSlice_Bounds(t *testing.T) {
	txt := MustFromString("abcdef")

	empty, err := txt.Slice(6, 6)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = txt.Slice(7, 7)
	var be *BoundsError
	require.ErrorAs(t, err, &be)
	require.Equal(t, BoundsError{Start: 7, End: 7, Len: 6}, *be)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = txt.Slice(4, 2)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = txt.Slice(-1, 2)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestEqualAndHash_SeparateAllocations(t *testing.T) {
	a, err := FromBytes([]byte("same content ✓"))
	require.NoError(t, err)
	b, err := FromBytes([]byte("same content ✓"))
	require.NoError(t, err)

	require.False(t, a.SharesStorage(b))
	require.True(t, a.Equal(b))
	require.Equal(t, 0, a.Compare(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, a.HashSeed(7), b.HashSeed(7))
	require.Equal(t, a.Hash(), a.View().Hash())
}

// 在码点边界处切出来的子串不经过任何校验，这里逐一确认它们仍然是合法的 UTF-8
func TestSlice_BoundaryAlignedIsValidWithoutRevalidation(t *testing.T) {
	txt := MustFromString("aé€😀źñ")
	raw := txt.UnsafeBytes()

	var bounds []int
	for i := 0; i <= len(raw); i++ {
		if txt.IsCharBoundary(i) {
			bounds = append(bounds, i)
		}
	}
	require.Equal(t, utf8.RuneCount(raw)+1, len(bounds))

	for _, i := range bounds {
		for _, j := range bounds {
			if j < i {
				continue
			}
			s, err := txt.Slice(i, j)
			require.NoError(t, err)
			require.Equal(t, raw[i:j], s.UnsafeBytes())
			require.True(t, utf8.Valid(s.UnsafeBytes()), "slice [%d:%d]", i, j)
			require.True(t, s.SharesStorage(txt))
		}
	}
}

func TestSlice_MidSequenceOffsetsFail(t *testing.T) {
	txt := MustFromString("é€😀")
	for i := 0; i <= txt.Len(); i++ {
		if txt.IsCharBoundary(i) {
			continue
		}
		_, err := txt.Slice(i, i)
		require.ErrorIs(t, err, ErrNotCharBoundary, "offset %d", i)
		_, err = txt.Slice(0, i)
		require.ErrorIs(t, err, ErrNotCharBoundary, "offset %d", i)
		_, err = txt.SliceFrom(i)
		require.ErrorIs(t, err, ErrNotCharBoundary, "offset %d", i)
		_, _, err = txt.SplitAt(i)
		require.ErrorIs(t, err, ErrNotCharBoundary, "offset %d", i)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"", "ascii", "héllo", "日本語", "😀 emoji"} {
		txt := MustFromString(s)
		again, err := FromBytes(txt.Bytes())
		require.NoError(t, err)
		require.True(t, again.Equal(txt))
		require.Equal(t, s, again.CopyString())
	}
}

func TestClone_SurvivesReleaseOfOriginal(t *testing.T) {
	orig, err := FromBytesCopy([]byte("shared storage"))
	require.NoError(t, err)
	c := orig.Clone()
	require.Equal(t, int64(2), orig.Refs())

	orig.Release()
	orig.Release()
	require.True(t, orig.Released())
	require.Equal(t, "shared storage", c.String())
	require.Equal(t, int64(1), c.Refs())

	require.PanicsWithValue(t, ErrReleased, func() { _ = orig.String() })
	_, ok := orig.TryClone()
	require.False(t, ok)
}

func TestSplitAt(t *testing.T) {
	txt := MustFromString("key=välue")
	k, v, err := txt.SplitAt(3)
	require.NoError(t, err)
	require.Equal(t, "key", k.String())
	require.Equal(t, "=välue", v.String())
	require.Equal(t, int64(3), txt.Refs())
}

func TestFromBytes_TakesOwnershipWithoutCopy(t *testing.T) {
	b := []byte("no copy")
	txt, err := FromBytes(b)
	require.NoError(t, err)
	require.Same(t, &b[0], &txt.UnsafeBytes()[0])

	c, err := FromBytesCopy(b)
	require.NoError(t, err)
	require.NotSame(t, &b[0], &c.UnsafeBytes()[0])
}

func TestFromString(t *testing.T) {
	_, err := FromString("bad \xff")
	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.Panics(t, func() { MustFromString("\xC0\x80") })

	txt, err := FromString("good")
	require.NoError(t, err)
	require.Equal(t, `"good"`, txt.GoString())
}

func TestZeroValue(t *testing.T) {
	var txt Text
	require.True(t, txt.IsEmpty())
	require.Equal(t, "", txt.String())
	require.True(t, txt.Equal(New()))
	require.Equal(t, 0, txt.RuneCount())
	txt.Release()
	require.Equal(t, "", txt.String())
}

func TestMarshalJSON(t *testing.T) {
	type doc struct {
		Name Text `json:"name"`
	}
	in := doc{Name: MustFromString("grüße")}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"grüße"}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, out.Name.Equal(in.Name))

	var txt Text
	err = txt.UnmarshalText([]byte{0xED, 0xBF, 0xBF})
	require.True(t, errors.Is(err, ErrInvalidUTF8))
}

func TestRuneCount(t *testing.T) {
	require.Equal(t, 5, MustFromString("héllo").RuneCount())
	require.Equal(t, 3, MustFromString("日本語").RuneCount())
}

func FuzzFromBytes(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte("h\xC3\xA9llo"))
	f.Add([]byte{0xF0, 0x9F, 0x98})
	f.Fuzz(func(t *testing.T, b []byte) {
		txt, err := FromBytesCopy(b)
		if !utf8.Valid(b) {
			require.Error(t, err)
			return
		}
		require.NoError(t, err)
		for i := 0; i <= len(b); i++ {
			s, err := txt.SliceFrom(i)
			if i == len(b) || utf8.RuneStart(b[i]) {
				require.NoError(t, err)
				require.Equal(t, string(b[i:]), s.String())
			} else {
				require.ErrorIs(t, err, ErrNotCharBoundary)
			}
		}
	})
}
