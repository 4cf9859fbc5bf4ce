package text

import (
	"iter"

	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of extended grapheme clusters in t.
func (t Text) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(t.String())
}

// GraphemeCount returns the number of extended grapheme clusters in v.
func (v View) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(v.String())
}

// Graphemes yields the extended grapheme clusters of v as sub-views. Cluster
// boundaries are always char boundaries, so no cluster is copied or checked.
func (v View) Graphemes() iter.Seq[View] {
	return func(yield func(View) bool) {
		rest := v.bytes()
		state := -1
		for len(rest) > 0 {
			var cluster []byte
			cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
			if !yield(View{b: cluster[:len(cluster):len(cluster)], a: v.a}) {
				return
			}
		}
	}
}

// Graphemes yields the grapheme clusters of t as views anchored to t.
func (t Text) Graphemes() iter.Seq[View] {
	return t.View().Graphemes()
}
