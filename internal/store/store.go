// Package store 是带容量上限和过期时间的 LRU 存储，interning 表的条目保存在这里。
package store

import "time"

// Value 存储值接口
type Value interface {
	Len() int // 返回数据大小
}

// Reason 说明条目为什么离开存储
type Reason uint8

const (
	ReasonExpired  Reason = iota // 过期
	ReasonCapacity               // 超出容量被淘汰
	ReasonDeleted                // 调用 Delete
	ReasonReplaced               // 被同一个键的新值覆盖
	ReasonCleared                // 调用 Clear
)

var reasonNames = [...]string{"expired", "capacity", "deleted", "replaced", "cleared"}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Evicted 报告这次移除是否是存储自己做出的决定 (过期或容量)
func (r Reason) Evicted() bool {
	return r == ReasonExpired || r == ReasonCapacity
}

// Store 存储接口
type Store interface {
	Get(key string) (Value, bool)
	Set(key string, value Value) error
	SetWithExpiration(key string, value Value, expiration time.Duration) error
	Delete(key string) bool
	Clear()
	Len() int
	UsedBytes() int64
	SetMaxBytes(maxBytes int64)
	Close()
}

// Options 存储配置选项
type Options struct {
	// MaxBytes 最大字节数，<= 0 表示不限制
	MaxBytes int64
	// CleanupInterval 后台清理过期条目的间隔
	CleanupInterval time.Duration
	// OnRemoved 在条目离开存储后调用，调用时不持有锁。
	// 每个条目只会回调一次，调用方可以在这里释放值持有的资源。
	OnRemoved func(key string, value Value, reason Reason)
}

func NewOptions() Options {
	return Options{
		MaxBytes:        0,
		CleanupInterval: time.Minute,
	}
}

// NewStore 创建存储实例
func NewStore(opts Options) Store {
	return newLRUCache(opts)
}
