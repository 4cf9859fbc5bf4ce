// Package buf 提供引用计数的共享字节存储。
// 克隆和取子区间都是 O(1) 的，不复制数据。
package buf

import (
	"errors"
	"sync/atomic"
)

// ErrReleased 在已释放的引用上继续读取或克隆时触发 panic
var ErrReleased = errors.New("buf: use of released reference")

// storage 是多个引用共享的底层数据，构造完成后不再修改
type storage struct {
	data    []byte
	refs    atomic.Int64
	release func([]byte) // 引用计数归零时调用，可以为 nil
}

// handle 代表对 storage 的一次引用。
// 同一个 handle 的多个值拷贝共享 released 标记，所以 Release 只生效一次。
type handle struct {
	s        *storage
	released atomic.Bool
}

// Bytes 是对共享存储中 [off, off+n) 区间的一个引用。
// 零值是空引用，所有操作都可以安全调用。
type Bytes struct {
	h   *handle
	off int
	n   int
}

// Wrap 接管 data 的所有权，不复制。调用方之后不能再修改 data。
func Wrap(data []byte) Bytes {
	return WrapFunc(data, nil)
}

// WrapFunc 与 Wrap 相同，并在最后一个引用释放时调用 release(data)
func WrapFunc(data []byte, release func([]byte)) Bytes {
	s := &storage{data: data, release: release}
	s.refs.Store(1)
	return Bytes{h: &handle{s: s}, n: len(data)}
}

// Len 返回引用区间的长度
func (b Bytes) Len() int {
	return b.n
}

// Data 返回引用区间的原始字节，调用方不能修改
func (b Bytes) Data() []byte {
	if b.h == nil {
		return nil
	}
	if b.h.released.Load() {
		panic(ErrReleased)
	}
	return b.h.s.data[b.off : b.off+b.n : b.off+b.n]
}

// Clone 增加一次引用计数，返回一个独立的引用
func (b Bytes) Clone() Bytes {
	c, ok := b.TryClone()
	if !ok {
		panic(ErrReleased)
	}
	return c
}

// TryClone 在引用或存储已经释放时返回 false，而不是 panic。
// 只要存储的计数还大于 0 就能拿到新的引用，计数一旦归零就不会再复活。
func (b Bytes) TryClone() (Bytes, bool) {
	if b.h == nil {
		return Bytes{}, true
	}
	if b.h.released.Load() {
		return Bytes{}, false
	}
	s := b.h.s
	for {
		r := s.refs.Load()
		if r <= 0 {
			return Bytes{}, false
		}
		if s.refs.CompareAndSwap(r, r+1) {
			break
		}
	}
	return Bytes{h: &handle{s: s}, off: b.off, n: b.n}, true
}

// Slice 返回 [i, j) 子区间的新引用 (引用计数 +1)。
// 越界时 panic，边界检查由上层负责。
func (b Bytes) Slice(i, j int) Bytes {
	if i < 0 || j < i || j > b.n {
		panic("buf: slice bounds out of range")
	}
	c := b.Clone()
	c.off += i
	c.n = j - i
	return c
}

// Release 释放这个引用。重复调用无效果。
// 最后一个引用释放时调用 release 回调。
func (b Bytes) Release() {
	if b.h == nil || !b.h.released.CompareAndSwap(false, true) {
		return
	}
	s := b.h.s
	if s.refs.Add(-1) == 0 && s.release != nil {
		s.release(s.data)
	}
}

// Released 报告这个引用是否已经释放
func (b Bytes) Released() bool {
	return b.h != nil && b.h.released.Load()
}

// Refs 返回底层存储当前的引用计数，主要用于测试和诊断
func (b Bytes) Refs() int64 {
	if b.h == nil {
		return 0
	}
	return b.h.s.refs.Load()
}

// SameStorage 报告两个引用是否共享同一块底层存储
func (b Bytes) SameStorage(other Bytes) bool {
	if b.h == nil || other.h == nil {
		return b.h == other.h
	}
	return b.h.s == other.h.s
}

// Anchor 把借用视图绑定到某个引用上，用于检测引用释放后的访问
type Anchor struct {
	h *handle
}

// Anchor 返回当前引用的锚点
func (b Bytes) Anchor() Anchor {
	return Anchor{h: b.h}
}

// Alive 报告锚定的引用是否仍然有效。零值锚点 (借用外部字节) 永远有效。
func (a Anchor) Alive() bool {
	return a.h == nil || !a.h.released.Load()
}
