package text

import (
	"errors"
	"fmt"

	"github.com/rson9/bytestext/internal/buf"
	"github.com/rson9/bytestext/internal/utf8x"
)

var (
	ErrInvalidUTF8     = errors.New("bytestext: invalid UTF-8")
	ErrOutOfBounds     = errors.New("bytestext: range out of bounds")
	ErrNotCharBoundary = errors.New("bytestext: offset is not on a char boundary")
	// ErrReleased 是读取已释放文本或失效视图时 panic 的值
	ErrReleased = buf.ErrReleased
)

// Kind classifies a malformed UTF-8 sequence.
type Kind = utf8x.Kind

const (
	KindUnexpectedContinuation = utf8x.KindUnexpectedContinuation
	KindOverlong               = utf8x.KindOverlong
	KindSurrogate              = utf8x.KindSurrogate
	KindOutOfRange             = utf8x.KindOutOfRange
	KindInvalidByte            = utf8x.KindInvalidByte
	KindTruncated              = utf8x.KindTruncated
	KindIncomplete             = utf8x.KindIncomplete
)

// ValidationError reports input that is not well-formed UTF-8. Offset is the
// position of the first byte of the malformed sequence; every byte before it
// is valid.
type ValidationError struct {
	Offset int
	Kind   Kind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bytestext: invalid UTF-8 at byte %d: %s", e.Offset, e.Kind)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidUTF8 }

// BoundsError reports a range that does not satisfy start <= end <= Len.
type BoundsError struct {
	Start, End, Len int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bytestext: range [%d:%d] out of bounds for length %d", e.Start, e.End, e.Len)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// BoundaryError reports an offset that falls inside a multi-byte sequence.
type BoundaryError struct {
	Offset int
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("bytestext: byte %d is not a char boundary", e.Offset)
}

func (e *BoundaryError) Unwrap() error { return ErrNotCharBoundary }

// validate 把 utf8x 的结果转换成 ValidationError
func validate(b []byte) error {
	if off, kind := utf8x.Validate(b); off >= 0 {
		return &ValidationError{Offset: off, Kind: kind}
	}
	return nil
}

// checkRange 是 Text 和 View 共用的切片检查。
// 合法 UTF-8 在码点边界处截取出来的子串仍然是合法 UTF-8，
// 所以这里只检查两个偏移量，不需要重新校验内容。
func checkRange(b []byte, start, end int) error {
	if start < 0 || end < start || end > len(b) {
		return &BoundsError{Start: start, End: end, Len: len(b)}
	}
	if !utf8x.IsBoundary(b, start) {
		return &BoundaryError{Offset: start}
	}
	if !utf8x.IsBoundary(b, end) {
		return &BoundaryError{Offset: end}
	}
	return nil
}
