package buf

import (
	"sync"
	"sync/atomic"
)

// DefaultMaxPooledCap 超过这个容量的切片不放回池中
const DefaultMaxPooledCap = 64 * 1024

// Pool 复用字节切片，底层是 sync.Pool。
// Builder 从这里取缓冲区，冻结后的存储在引用计数归零时把切片放回来。
type Pool struct {
	p      sync.Pool
	maxCap int
	stats  poolStats
}

// poolStats 保存池的统计信息
type poolStats struct {
	gets    int64 // Get 调用次数
	misses  int64 // 需要新分配的次数
	puts    int64 // 成功放回的次数
	dropped int64 // 因为太大而丢弃的次数
}

// PoolStats 是统计信息的快照
type PoolStats struct {
	Gets    int64
	Misses  int64
	Puts    int64
	Dropped int64
}

// NewPool 创建一个池，maxCap <= 0 时使用 DefaultMaxPooledCap
func NewPool(maxCap int) *Pool {
	if maxCap <= 0 {
		maxCap = DefaultMaxPooledCap
	}
	return &Pool{maxCap: maxCap}
}

// Get 返回一个长度为 0、容量至少为 n 的切片
func (p *Pool) Get(n int) []byte {
	atomic.AddInt64(&p.stats.gets, 1)
	if v, ok := p.p.Get().(*[]byte); ok && cap(*v) >= n {
		return (*v)[:0]
	}
	// 池里的切片太小就直接丢掉，让 GC 回收
	atomic.AddInt64(&p.stats.misses, 1)
	return make([]byte, 0, n)
}

// Put 把切片放回池中。调用之后不能再使用 b。
func (p *Pool) Put(b []byte) {
	if b == nil {
		return
	}
	if cap(b) > p.maxCap {
		atomic.AddInt64(&p.stats.dropped, 1)
		return
	}
	b = b[:0]
	atomic.AddInt64(&p.stats.puts, 1)
	p.p.Put(&b)
}

// Stats 返回统计信息快照
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Gets:    atomic.LoadInt64(&p.stats.gets),
		Misses:  atomic.LoadInt64(&p.stats.misses),
		Puts:    atomic.LoadInt64(&p.stats.puts),
		Dropped: atomic.LoadInt64(&p.stats.dropped),
	}
}
