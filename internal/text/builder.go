package text

import (
	"unicode/utf8"

	"github.com/rson9/bytestext/internal/buf"
	"github.com/rson9/bytestext/internal/utf8x"
)

// Builder accumulates UTF-8 text and freezes it into a Text without copying.
//
// Writes are validated as they arrive. A multi-byte sequence may be split
// across writes; its leading bytes are held as pending until the rest
// arrives. A write that would make the content invalid is rejected as a
// whole and leaves the builder unchanged.
//
// The zero value is ready to use. A Builder must not be used concurrently.
type Builder struct {
	buf     []byte
	pending int // 末尾尚未完整的多字节序列的字节数
	pool    *buf.Pool
	capHint int
}

// NewBuilder creates a Builder configured by opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	o := defaultBuilderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{pool: o.Pool, capHint: o.Capacity}
}

// Len returns the number of bytes written, including pending bytes.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Cap returns the capacity of the underlying buffer.
func (b *Builder) Cap() int {
	return cap(b.buf)
}

// Grow makes room for at least n more bytes.
func (b *Builder) Grow(n int) {
	if n < 0 {
		panic("bytestext: Builder.Grow with negative count")
	}
	b.grow(n)
}

func (b *Builder) grow(n int) {
	if cap(b.buf)-len(b.buf) >= n {
		return
	}
	size := max(2*cap(b.buf)+n, b.capHint, DefaultBuilderCapacity)
	nb := b.alloc(size)
	nb = append(nb, b.buf...)
	if b.pool != nil && b.buf != nil {
		b.pool.Put(b.buf)
	}
	b.buf = nb
}

func (b *Builder) alloc(size int) []byte {
	if b.pool != nil {
		return b.pool.Get(size)
	}
	return make([]byte, 0, size)
}

// Write appends p. It implements io.Writer. On invalid input nothing is
// appended and the *ValidationError offset is relative to the builder's
// content.
func (b *Builder) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b.grow(len(p))
	start := len(b.buf) - b.pending
	b.buf = append(b.buf, p...)

	off, kind := utf8x.Validate(b.buf[start:])
	switch {
	case off < 0:
		b.pending = 0
	case kind == utf8x.KindIncomplete:
		// 只有输入在序列中途结束才会得到 KindIncomplete，所以 off 之后全是未完成的尾巴
		b.pending = len(b.buf) - (start + off)
	default:
		b.buf = b.buf[:len(b.buf)-len(p)]
		return 0, &ValidationError{Offset: start + off, Kind: kind}
	}
	return len(p), nil
}

// WriteString appends s.
func (b *Builder) WriteString(s string) (int, error) {
	return b.Write(s2b(s))
}

// WriteRune appends the UTF-8 encoding of r. Surrogate halves and values
// above U+10FFFF are rejected.
func (b *Builder) WriteRune(r rune) (int, error) {
	if !utf8.ValidRune(r) {
		kind := KindOutOfRange
		if r >= 0xD800 && r <= 0xDFFF {
			kind = KindSurrogate
		}
		return 0, &ValidationError{Offset: len(b.buf), Kind: kind}
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return b.Write(tmp[:n])
}

// WriteText appends t. Text is already valid, so nothing is scanned unless a
// split sequence is pending.
func (b *Builder) WriteText(t Text) (int, error) {
	return b.writeValid(t.bytes())
}

// WriteView appends v.
func (b *Builder) WriteView(v View) (int, error) {
	return b.writeValid(v.bytes())
}

func (b *Builder) writeValid(p []byte) (int, error) {
	if b.pending > 0 {
		return b.Write(p)
	}
	b.grow(len(p))
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// String returns a copy of the content written so far.
func (b *Builder) String() string {
	return string(b.buf)
}

// Reset empties the builder and keeps its buffer.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
	b.pending = 0
}

// Freeze hands the buffer over to a new Text without copying and leaves the
// builder empty. It fails with KindIncomplete if a split sequence is still
// pending; the builder is unchanged in that case.
func (b *Builder) Freeze() (Text, error) {
	if b.pending > 0 {
		return Text{}, &ValidationError{Offset: len(b.buf) - b.pending, Kind: KindIncomplete}
	}
	data := b.buf
	b.buf = nil
	if b.pool != nil {
		return fromPool(data, b.pool), nil
	}
	return FromBytesUnchecked(data), nil
}

// Concat returns a new Text holding the elements one after another.
func Concat(elems ...Text) Text {
	return Join(elems, Text{})
}

// Join concatenates elems with sep between them into new storage.
func Join(elems []Text, sep Text) Text {
	if len(elems) == 0 {
		return Text{}
	}
	s := sep.bytes()
	n := len(s) * (len(elems) - 1)
	for _, e := range elems {
		n += e.Len()
	}
	out := make([]byte, 0, n)
	for i, e := range elems {
		if i > 0 {
			out = append(out, s...)
		}
		out = append(out, e.bytes()...)
	}
	return FromBytesUnchecked(out)
}
