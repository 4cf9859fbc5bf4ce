// Package text 实现不可变、引用计数的 UTF-8 文本 Text 以及不持有所有权的视图 View。
// 字节只在构造时校验一次，之后的克隆、切片、借用都不再校验。
package text

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/rson9/bytestext/internal/buf"
	"github.com/rson9/bytestext/internal/utf8x"
)

// Text is an immutable, reference counted UTF-8 string backed by shared
// storage. Cloning and slicing are O(1) and never copy or re-validate bytes.
//
// A Text value is one reference on its storage. Copying the struct does not
// add a reference: copies alias the same reference and Release on any of them
// releases it. Use Clone to obtain an independent reference. Releasing is only
// required for storage that has a release hook (for example, texts frozen from
// a pooled Builder); otherwise unreleased texts are garbage collected.
//
// The zero value is an empty Text.
type Text struct {
	b buf.Bytes
}

// New returns an empty Text.
func New() Text {
	return Text{}
}

// FromBytes validates b and wraps it without copying. On success the Text
// owns b; the caller must not modify it afterwards.
func FromBytes(b []byte) (Text, error) {
	if err := validate(b); err != nil {
		return Text{}, err
	}
	return FromBytesUnchecked(b), nil
}

// FromBytesUnchecked wraps b without validating it.
//
// The caller must guarantee that b is valid UTF-8; every later operation
// relies on it and none of them checks.
func FromBytesUnchecked(b []byte) Text {
	if len(b) == 0 {
		return Text{}
	}
	return Text{b: buf.Wrap(b)}
}

// FromBytesCopy validates b and copies it into new storage. The caller keeps
// ownership of b.
func FromBytesCopy(b []byte) (Text, error) {
	if err := validate(b); err != nil {
		return Text{}, err
	}
	return FromBytesUnchecked(bytes.Clone(b)), nil
}

// FromString validates s and wraps its memory without copying. Go strings may
// hold arbitrary bytes, so this path validates too.
func FromString(s string) (Text, error) {
	if err := validate(s2b(s)); err != nil {
		return Text{}, err
	}
	return FromStringUnchecked(s), nil
}

// FromStringUnchecked wraps s without validating it. The caller must
// guarantee that s is valid UTF-8.
func FromStringUnchecked(s string) Text {
	return FromBytesUnchecked(s2b(s))
}

// MustFromString is like FromString but panics on invalid input. It is meant
// for string literals.
func MustFromString(s string) Text {
	t, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return t
}

// fromPool 包装从 Pool 取出的缓冲区，最后一个引用释放时归还
func fromPool(data []byte, pool *buf.Pool) Text {
	if len(data) == 0 {
		pool.Put(data)
		return Text{}
	}
	return Text{b: buf.WrapFunc(data, pool.Put)}
}

// bytes 返回内部字节，释放后访问会 panic
func (t Text) bytes() []byte {
	return t.b.Data()
}

// Len returns the length of t in bytes.
func (t Text) Len() int {
	return t.b.Len()
}

// IsEmpty reports whether t has no bytes.
func (t Text) IsEmpty() bool {
	return t.b.Len() == 0
}

// String returns t as a string without copying. The string shares t's
// storage; if the storage is pooled, use CopyString for strings that outlive
// the last Release.
func (t Text) String() string {
	return b2s(t.bytes())
}

// CopyString returns t as a newly allocated string.
func (t Text) CopyString() string {
	return string(t.bytes())
}

// GoString returns t quoted, so %#v prints it like a string literal.
func (t Text) GoString() string {
	return strconv.Quote(t.String())
}

// Bytes returns a copy of the bytes of t.
func (t Text) Bytes() []byte {
	return bytes.Clone(t.bytes())
}

// UnsafeBytes returns the bytes of t without copying. The caller must not
// modify them.
func (t Text) UnsafeBytes() []byte {
	return t.bytes()
}

// Clone returns a new reference to the same storage.
func (t Text) Clone() Text {
	return Text{b: t.b.Clone()}
}

// TryClone is like Clone but reports false instead of panicking when t, or
// its storage, has already been released.
func (t Text) TryClone() (Text, bool) {
	b, ok := t.b.TryClone()
	return Text{b: b}, ok
}

// Release drops this reference. The storage is released when its last
// reference is dropped. Releasing twice is a no-op; any other use of t after
// Release panics with ErrReleased.
func (t Text) Release() {
	t.b.Release()
}

// Released reports whether Release has been called on this reference.
func (t Text) Released() bool {
	return t.b.Released()
}

// Refs returns the number of live references on t's storage.
func (t Text) Refs() int64 {
	return t.b.Refs()
}

// SharesStorage reports whether t and other are backed by the same storage.
func (t Text) SharesStorage(other Text) bool {
	return t.b.SameStorage(other.b)
}

// View borrows t without taking a reference. The view becomes unusable once
// this reference of t is released.
func (t Text) View() View {
	return View{b: t.bytes(), a: t.b.Anchor()}
}

// Slice returns the sub-text [start, end) as a new reference sharing t's
// storage. It fails with *BoundsError unless 0 <= start <= end <= t.Len(),
// and with *BoundaryError if either offset is inside a multi-byte sequence.
func (t Text) Slice(start, end int) (Text, error) {
	if err := checkRange(t.bytes(), start, end); err != nil {
		return Text{}, err
	}
	return Text{b: t.b.Slice(start, end)}, nil
}

// SliceFrom returns t[start:].
func (t Text) SliceFrom(start int) (Text, error) {
	return t.Slice(start, t.Len())
}

// SliceTo returns t[:end].
func (t Text) SliceTo(end int) (Text, error) {
	return t.Slice(0, end)
}

// SplitAt splits t at byte offset i into t[:i] and t[i:], both new references.
func (t Text) SplitAt(i int) (Text, Text, error) {
	if err := checkRange(t.bytes(), i, i); err != nil {
		return Text{}, Text{}, err
	}
	return Text{b: t.b.Slice(0, i)}, Text{b: t.b.Slice(i, t.Len())}, nil
}

// IsCharBoundary reports whether i is a valid slicing offset for t.
func (t Text) IsCharBoundary(i int) bool {
	return utf8x.IsBoundary(t.bytes(), i)
}

// Equal reports whether t and other hold the same bytes.
func (t Text) Equal(other Text) bool {
	return bytes.Equal(t.bytes(), other.bytes())
}

// EqualView reports whether t and v hold the same bytes.
func (t Text) EqualView(v View) bool {
	return bytes.Equal(t.bytes(), v.bytes())
}

// EqualString reports whether t holds exactly the bytes of s.
func (t Text) EqualString(s string) bool {
	return t.String() == s
}

// Compare compares t and other byte-wise; for valid UTF-8 this is the same as
// comparing code point by code point.
func (t Text) Compare(other Text) int {
	return bytes.Compare(t.bytes(), other.bytes())
}

// RuneCount returns the number of code points in t.
func (t Text) RuneCount() int {
	return utf8.RuneCount(t.bytes())
}

// MarshalText implements encoding.TextMarshaler.
func (t Text) MarshalText() ([]byte, error) {
	return t.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is validated
// and copied.
func (t *Text) UnmarshalText(data []byte) error {
	nt, err := FromBytesCopy(data)
	if err != nil {
		return err
	}
	*t = nt
	return nil
}
