// Package bytestext provides Text, an immutable reference counted UTF-8
// string over shared byte storage, and View, a borrowed window into valid
// UTF-8.
//
// Bytes are validated once, when a Text or View is constructed. Cloning,
// slicing, splitting and borrowing never copy and never validate again: a
// slice is only checked for bounds and for falling on char boundaries, and a
// valid UTF-8 string cut at char boundaries is still valid UTF-8.
package bytestext

import (
	"github.com/rson9/bytestext/internal/buf"
	"github.com/rson9/bytestext/internal/text"
)

// Text 引用计数的不可变 UTF-8 文本
type Text = text.Text

// View 不持有所有权的视图
type View = text.View

// Builder 增量构造 Text
type Builder = text.Builder

// Pool 复用 Builder 缓冲区的字节池
type Pool = buf.Pool

// PoolStats 字节池统计信息
type PoolStats = buf.PoolStats

// Kind 非法 UTF-8 序列的分类
type Kind = text.Kind

type (
	ValidationError = text.ValidationError
	BoundsError     = text.BoundsError
	BoundaryError   = text.BoundaryError
)

const (
	KindUnexpectedContinuation = text.KindUnexpectedContinuation
	KindOverlong               = text.KindOverlong
	KindSurrogate              = text.KindSurrogate
	KindOutOfRange             = text.KindOutOfRange
	KindInvalidByte            = text.KindInvalidByte
	KindTruncated              = text.KindTruncated
	KindIncomplete             = text.KindIncomplete
)

var (
	ErrInvalidUTF8     = text.ErrInvalidUTF8
	ErrOutOfBounds     = text.ErrOutOfBounds
	ErrNotCharBoundary = text.ErrNotCharBoundary
	ErrReleased        = text.ErrReleased
)

// New returns an empty Text.
func New() Text {
	return text.New()
}

// FromBytes validates b and takes ownership of it without copying.
func FromBytes(b []byte) (Text, error) {
	return text.FromBytes(b)
}

// FromBytesCopy validates b and copies it; the caller keeps b.
func FromBytesCopy(b []byte) (Text, error) {
	return text.FromBytesCopy(b)
}

// FromBytesUnchecked wraps b without validation. b must be valid UTF-8.
func FromBytesUnchecked(b []byte) Text {
	return text.FromBytesUnchecked(b)
}

// FromString validates s and wraps it without copying.
func FromString(s string) (Text, error) {
	return text.FromString(s)
}

// FromStringUnchecked wraps s without validation. s must be valid UTF-8.
func FromStringUnchecked(s string) Text {
	return text.FromStringUnchecked(s)
}

// MustFromString is like FromString but panics on invalid input.
func MustFromString(s string) Text {
	return text.MustFromString(s)
}

// ViewOf validates b and borrows it.
func ViewOf(b []byte) (View, error) {
	return text.ViewOf(b)
}

// ViewOfString validates s and borrows it.
func ViewOfString(s string) (View, error) {
	return text.ViewOfString(s)
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	return text.NewBuilder(opts...)
}

// NewPool creates a byte pool for builders. Slices larger than maxCap are not
// kept; maxCap <= 0 selects DefaultMaxPooledCap.
func NewPool(maxCap int) *Pool {
	return buf.NewPool(maxCap)
}

// Join concatenates elems with sep between them.
func Join(elems []Text, sep Text) Text {
	return text.Join(elems, sep)
}

// Concat concatenates elems.
func Concat(elems ...Text) Text {
	return text.Concat(elems...)
}
