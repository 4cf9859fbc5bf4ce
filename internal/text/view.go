package text

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/rson9/bytestext/internal/buf"
	"github.com/rson9/bytestext/internal/utf8x"
)

// View is a borrowed, read-only window over valid UTF-8 bytes. It takes no
// reference and never extends the lifetime of what it points into.
//
// A view obtained from Text.View is anchored to that reference: once it is
// released, every access to the view's bytes panics with ErrReleased. Views
// over caller-owned bytes (ViewOf, ViewOfString) are never invalidated; the
// caller must keep those bytes unchanged while the view is in use.
type View struct {
	b []byte
	a buf.Anchor
}

// ViewOf validates b and borrows it without copying.
func ViewOf(b []byte) (View, error) {
	if err := validate(b); err != nil {
		return View{}, err
	}
	return View{b: b}, nil
}

// ViewOfString validates s and borrows its memory without copying.
func ViewOfString(s string) (View, error) {
	return ViewOf(s2b(s))
}

// bytes 每次访问都检查锚点，所有者释放后继续使用视图会 panic
func (v View) bytes() []byte {
	if !v.a.Alive() {
		panic(ErrReleased)
	}
	return v.b
}

// Alive reports whether the view may still be used.
func (v View) Alive() bool {
	return v.a.Alive()
}

// Len returns the length of v in bytes.
func (v View) Len() int {
	return len(v.b)
}

// IsEmpty reports whether v has no bytes.
func (v View) IsEmpty() bool {
	return len(v.b) == 0
}

// String returns v as a string without copying.
func (v View) String() string {
	return b2s(v.bytes())
}

// CopyString returns v as a newly allocated string.
func (v View) CopyString() string {
	return string(v.bytes())
}

// GoString returns v quoted.
func (v View) GoString() string {
	return strconv.Quote(v.String())
}

// Bytes returns a copy of the bytes of v.
func (v View) Bytes() []byte {
	return bytes.Clone(v.bytes())
}

// UnsafeBytes returns the borrowed bytes. The caller must not modify them.
func (v View) UnsafeBytes() []byte {
	return v.bytes()
}

// ToText copies v into a new Text. No validation is needed.
func (v View) ToText() Text {
	return FromBytesUnchecked(bytes.Clone(v.bytes()))
}

// Slice narrows v to [start, end) with the same checks as Text.Slice.
func (v View) Slice(start, end int) (View, error) {
	b := v.bytes()
	if err := checkRange(b, start, end); err != nil {
		return View{}, err
	}
	return View{b: b[start:end:end], a: v.a}, nil
}

// SliceFrom returns v[start:].
func (v View) SliceFrom(start int) (View, error) {
	return v.Slice(start, len(v.b))
}

// SliceTo returns v[:end].
func (v View) SliceTo(end int) (View, error) {
	return v.Slice(0, end)
}

// SplitAt splits v at byte offset i.
func (v View) SplitAt(i int) (View, View, error) {
	b := v.bytes()
	if err := checkRange(b, i, i); err != nil {
		return View{}, View{}, err
	}
	return View{b: b[:i:i], a: v.a}, View{b: b[i:], a: v.a}, nil
}

// IsCharBoundary reports whether i is a valid slicing offset for v.
func (v View) IsCharBoundary(i int) bool {
	return utf8x.IsBoundary(v.bytes(), i)
}

// Equal reports whether v and other hold the same bytes.
func (v View) Equal(other View) bool {
	return bytes.Equal(v.bytes(), other.bytes())
}

// EqualText reports whether v and t hold the same bytes.
func (v View) EqualText(t Text) bool {
	return bytes.Equal(v.bytes(), t.bytes())
}

// EqualString reports whether v holds exactly the bytes of s.
func (v View) EqualString(s string) bool {
	return v.String() == s
}

// Compare compares v and other byte-wise.
func (v View) Compare(other View) int {
	return bytes.Compare(v.bytes(), other.bytes())
}

// RuneCount returns the number of code points in v.
func (v View) RuneCount() int {
	return utf8.RuneCount(v.bytes())
}
