package store

import (
	"container/heap"
	"container/list"
	"sync"
	"time"
)

// lruCache 是基于标准库 list 的 LRU 存储实现
type lruCache struct {
	mu        sync.Mutex
	list      *list.List               // 双向链表，用于维护 LRU 顺序
	items     map[string]*list.Element // 键到链表节点的映射
	maxBytes  int64                    // 最大允许字节数
	usedBytes int64                    // 当前使用的字节数
	onRemoved func(key string, value Value, reason Reason)
	// 用于高效过期处理的结构
	expireHeap expirationHeap // 最小堆，按过期时间排序
	heapIndex  map[string]*expireItem

	cleanupInterval time.Duration
	cleanupTicker   *time.Ticker
	closeCh         chan struct{} // 用于优雅关闭清理协程
	closeOnce       sync.Once
}

// lruEntry 表示存储中的一个条目
type lruEntry struct {
	key   string
	value Value
}

// removed 是一条待回调的移除记录
type removed struct {
	entry  *lruEntry
	reason Reason
}

// newLRUCache 创建一个新的 LRU 存储实例
func newLRUCache(opts Options) *lruCache {
	cleanupInterval := opts.CleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	c := &lruCache{
		list:            list.New(),
		items:           make(map[string]*list.Element),
		maxBytes:        opts.MaxBytes,
		onRemoved:       opts.OnRemoved,
		expireHeap:      make(expirationHeap, 0),
		heapIndex:       make(map[string]*expireItem),
		cleanupInterval: cleanupInterval,
		closeCh:         make(chan struct{}),
	}

	heap.Init(&c.expireHeap)

	// 启动定期清理协程
	c.cleanupTicker = time.NewTicker(c.cleanupInterval)
	go c.cleanupLoop()

	return c
}

// Get 获取条目，如果存在且未过期则返回
func (c *lruCache) Get(key string) (Value, bool) {
	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return nil, false
	}

	// 检查是否过期
	if item, hasExp := c.heapIndex[key]; hasExp && !item.expiresAt.After(time.Now()) {
		entry := c.removeElement(elem)
		c.mu.Unlock()
		c.notify([]removed{{entry, ReasonExpired}})
		return nil, false
	}

	// 命中，移动到队尾
	c.list.MoveToBack(elem)
	value := elem.Value.(*lruEntry).value
	c.mu.Unlock()
	return value, true
}

// Set 添加或更新条目
func (c *lruCache) Set(key string, value Value) error {
	return c.SetWithExpiration(key, value, -1)
}

// SetWithExpiration 添加或更新条目，并设置过期时间，expiration <= 0 表示永不过期
func (c *lruCache) SetWithExpiration(key string, value Value, expiration time.Duration) error {
	if value == nil {
		c.Delete(key)
		return nil
	}

	c.mu.Lock()
	var out []removed
	if elem, ok := c.items[key]; ok {
		// 键已存在，替换旧值
		c.list.MoveToBack(elem)
		entry := elem.Value.(*lruEntry)
		c.usedBytes += int64(value.Len() - entry.value.Len())
		out = append(out, removed{&lruEntry{key: key, value: entry.value}, ReasonReplaced})
		entry.value = value
	} else {
		elem := c.list.PushBack(&lruEntry{key: key, value: value})
		c.items[key] = elem
		c.usedBytes += int64(value.Len())
	}
	c.updateExpiration(key, expiration)

	out = c.evict(out)
	c.mu.Unlock()

	c.notify(out)
	return nil
}

// Delete 删除指定键的条目
func (c *lruCache) Delete(key string) bool {
	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return false
	}
	entry := c.removeElement(elem)
	c.mu.Unlock()

	c.notify([]removed{{entry, ReasonDeleted}})
	return true
}

// Clear 清空存储
func (c *lruCache) Clear() {
	c.mu.Lock()
	out := make([]removed, 0, c.list.Len())
	for e := c.list.Front(); e != nil; e = e.Next() {
		out = append(out, removed{e.Value.(*lruEntry), ReasonCleared})
	}

	c.list.Init()
	c.items = make(map[string]*list.Element)
	c.expireHeap = make(expirationHeap, 0)
	c.heapIndex = make(map[string]*expireItem)
	c.usedBytes = 0
	c.mu.Unlock()

	c.notify(out)
}

// Len 返回条目数
func (c *lruCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Len()
}

// removeElement 从存储中删除元素，调用此方法前必须持有锁。
// 它不执行回调，而是返回被删除的条目。
func (c *lruCache) removeElement(elem *list.Element) *lruEntry {
	entry := c.list.Remove(elem).(*lruEntry)
	delete(c.items, entry.key)
	// 键和值通常共享同一块内存，只按值计算大小
	c.usedBytes -= int64(entry.value.Len())
	if item, ok := c.heapIndex[entry.key]; ok {
		heap.Remove(&c.expireHeap, item.index)
		delete(c.heapIndex, entry.key)
	}
	return entry
}

// evict 清理过期和超出容量的条目，调用此方法前必须持有锁。
// 被移除的条目追加到 out 中返回，由调用方在解锁后回调。
func (c *lruCache) evict(out []removed) []removed {
	// 1. 清理过期项
	now := time.Now()
	for c.expireHeap.Len() > 0 && !c.expireHeap[0].expiresAt.After(now) {
		key := c.expireHeap[0].key
		if elem, ok := c.items[key]; ok {
			out = append(out, removed{c.removeElement(elem), ReasonExpired})
		} else {
			heap.Pop(&c.expireHeap)
			delete(c.heapIndex, key)
		}
	}

	// 2. 根据容量限制清理最久未使用的项
	for c.maxBytes > 0 && c.usedBytes > c.maxBytes && c.list.Len() > 0 {
		out = append(out, removed{c.removeElement(c.list.Front()), ReasonCapacity})
	}
	return out
}

// notify 在锁外执行回调
func (c *lruCache) notify(out []removed) {
	if c.onRemoved == nil {
		return
	}
	for _, r := range out {
		c.onRemoved(r.entry.key, r.entry.value, r.reason)
	}
}

// cleanupLoop 定期清理过期条目的协程
func (c *lruCache) cleanupLoop() {
	for {
		select {
		case <-c.cleanupTicker.C:
			c.mu.Lock()
			out := c.evict(nil)
			c.mu.Unlock()
			c.notify(out)
		case <-c.closeCh:
			return
		}
	}
}

// Close 停止清理协程，可以重复调用。已有的条目保留，需要时先调用 Clear。
func (c *lruCache) Close() {
	c.closeOnce.Do(func() {
		c.cleanupTicker.Stop()
		close(c.closeCh)
	})
}

// updateExpiration 更新一个键的过期时间，调用前需持有锁
func (c *lruCache) updateExpiration(key string, expiration time.Duration) {
	item, ok := c.heapIndex[key]
	if expiration <= 0 {
		if ok {
			heap.Remove(&c.expireHeap, item.index)
			delete(c.heapIndex, key)
		}
		return
	}

	expTime := time.Now().Add(expiration)
	if ok {
		item.expiresAt = expTime
		heap.Fix(&c.expireHeap, item.index)
		return
	}
	item = &expireItem{key: key, expiresAt: expTime}
	heap.Push(&c.expireHeap, item)
	c.heapIndex[key] = item
}

// UsedBytes 返回当前使用的字节数
func (c *lruCache) UsedBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usedBytes
}

// SetMaxBytes 设置最大字节数并触发淘汰
func (c *lruCache) SetMaxBytes(maxBytes int64) {
	c.mu.Lock()
	c.maxBytes = maxBytes
	out := c.evict(nil)
	c.mu.Unlock()

	c.notify(out)
}
