package text

import "github.com/spaolacci/murmur3"

// Hash returns a 64-bit murmur3 hash of the bytes of t. Equal texts hash
// identically, whatever storage they live in, and t.Hash() == t.View().Hash().
func (t Text) Hash() uint64 {
	return murmur3.Sum64(t.bytes())
}

// HashSeed is like Hash with an explicit seed.
func (t Text) HashSeed(seed uint32) uint64 {
	return murmur3.Sum64WithSeed(t.bytes(), seed)
}

// Hash returns the same value as Text.Hash for the same bytes.
func (v View) Hash() uint64 {
	return murmur3.Sum64(v.bytes())
}

// HashSeed is like Hash with an explicit seed.
func (v View) HashSeed(seed uint32) uint64 {
	return murmur3.Sum64WithSeed(v.bytes(), seed)
}
