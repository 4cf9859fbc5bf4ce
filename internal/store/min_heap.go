package store

import (
	"container/heap"
	"time"
)

// expireItem 是过期堆中的一项，index 随堆调整而更新
type expireItem struct {
	key       string
	expiresAt time.Time
	index     int
}

// expirationHeap 按过期时间排序的最小堆，堆顶是最早过期的键
type expirationHeap []*expireItem

var _ heap.Interface = (*expirationHeap)(nil)

func (h expirationHeap) Len() int { return len(h) }

func (h expirationHeap) Less(i, j int) bool {
	return h[i].expiresAt.Before(h[j].expiresAt)
}

func (h expirationHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *expirationHeap) Push(x any) {
	item := x.(*expireItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *expirationHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // 避免内存泄露
	item.index = -1 // 已不在堆中
	*h = old[:n-1]
	return item
}
