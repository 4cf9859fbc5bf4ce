package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphemes(t *testing.T) {
	// e + 组合重音符，国旗由两个区域指示符组成
	txt := MustFromString("ne\u0301e 🇩🇪!")
	require.Equal(t, 8, txt.RuneCount())
	require.Equal(t, 6, txt.GraphemeCount())

	var got []string
	for g := range txt.Graphemes() {
		require.True(t, g.Alive())
		got = append(got, g.String())
	}
	require.Equal(t, []string{"n", "e\u0301", "e", " ", "🇩🇪", "!"}, got)
	require.Equal(t, 6, txt.View().GraphemeCount())
}

func TestGraphemes_StopEarly(t *testing.T) {
	txt := MustFromString("abc")
	n := 0
	for range txt.Graphemes() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestGraphemes_ViewsFollowOwner(t *testing.T) {
	txt := MustFromString("xy")
	var gs []View
	for g := range txt.Graphemes() {
		gs = append(gs, g)
	}
	txt.Release()
	for _, g := range gs {
		require.False(t, g.Alive())
	}
}
