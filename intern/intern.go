// Package intern deduplicates texts: interning equal content twice yields two
// references to one shared storage.
//
// A Table keeps one reference per entry and hands out clones of it, so the
// texts it returns are independent references that callers may Release.
// Entries leave the table when they exceed the size budget, expire, or are
// deleted; the table's own reference is released at that point while texts
// already handed out stay valid.
package intern

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rson9/bytestext/internal/store"
	"github.com/rson9/bytestext/internal/text"
	"github.com/sirupsen/logrus"
)

// ErrClosed is returned when interning into a closed Table.
var ErrClosed = errors.New("intern: table is closed")

// Table is a concurrency-safe interning table.
type Table struct {
	mu        sync.Mutex // 保证同一内容只创建一份存储
	store     store.Store
	ttl       time.Duration
	closed    int32
	stats     tableStats
	logger    *logrus.Entry
	onEvicted func(text.Text)
}

// New creates a Table configured by opts. Close stops its background sweeper.
func New(opts ...Option) *Table {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = logrus.WithField("component", "intern")
	}

	t := &Table{
		ttl:       options.TTL,
		logger:    options.Logger,
		onEvicted: options.OnEvicted,
	}
	t.store = store.NewStore(store.Options{
		MaxBytes:        options.MaxBytes,
		CleanupInterval: options.CleanupInterval,
		OnRemoved:       t.onRemoved,
	})

	t.logger.WithFields(logrus.Fields{
		"max_bytes": options.MaxBytes,
		"ttl":       options.TTL,
	}).Info("intern table created")
	return t
}

// onRemoved 释放表持有的引用。存储在调用前已经删除了键，
// 所以键 (与值共享内存) 不会在释放后再被查到。
func (t *Table) onRemoved(key string, value store.Value, reason store.Reason) {
	txt := value.(text.Text)
	if !reason.Evicted() {
		txt.Release()
		return
	}
	t.logger.WithFields(logrus.Fields{
		"bytes":  txt.Len(),
		"reason": reason.String(),
	}).Debug("evicted interned text")
	if t.onEvicted != nil {
		t.onEvicted(txt)
	}
	txt.Release()
	atomic.AddInt64(&t.stats.evictions, 1)
}

func (t *Table) isClosed() bool {
	return atomic.LoadInt32(&t.closed) == 1
}

// Intern returns the shared Text for the content of b. b is validated and
// only borrowed; it is copied when the content is not interned yet.
func (t *Table) Intern(b []byte) (text.Text, error) {
	if t.isClosed() {
		return text.Text{}, ErrClosed
	}
	v, err := text.ViewOf(b)
	if err != nil {
		atomic.AddInt64(&t.stats.rejected, 1)
		return text.Text{}, err
	}
	return t.intern(v), nil
}

// InternString is Intern for a string.
func (t *Table) InternString(s string) (text.Text, error) {
	if t.isClosed() {
		return text.Text{}, ErrClosed
	}
	v, err := text.ViewOfString(s)
	if err != nil {
		atomic.AddInt64(&t.stats.rejected, 1)
		return text.Text{}, err
	}
	return t.intern(v), nil
}

// InternText interns already valid text. A closed table returns a clone of
// src unchanged.
func (t *Table) InternText(src text.Text) text.Text {
	if t.isClosed() {
		return src.Clone()
	}
	return t.intern(src.View())
}

// intern 在表锁内完成查找和创建。缓存的引用可能正在被后台清理释放，
// TryClone 失败时按未命中处理，此时存储里已经没有这个键了。
func (t *Table) intern(v text.View) text.Text {
	if v.IsEmpty() {
		return text.Text{}
	}
	key := v.String() // 零拷贝，只用于查找

	t.mu.Lock()
	defer t.mu.Unlock()

	if c, ok := t.lookup(key); ok {
		atomic.AddInt64(&t.stats.hits, 1)
		return c
	}

	atomic.AddInt64(&t.stats.misses, 1)
	owned := v.ToText()
	cached := owned.Clone()
	// 键引用新存储的内存，而不是调用方的字节
	_ = t.store.SetWithExpiration(cached.String(), cached, t.ttl)
	return owned
}

func (t *Table) lookup(key string) (text.Text, bool) {
	v, ok := t.store.Get(key)
	if !ok {
		return text.Text{}, false
	}
	return v.(text.Text).TryClone()
}

// Lookup returns the interned Text equal to s without adding it.
func (t *Table) Lookup(s string) (text.Text, bool) {
	if t.isClosed() || s == "" {
		return text.Text{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.lookup(s)
	if ok {
		atomic.AddInt64(&t.stats.hits, 1)
	} else {
		atomic.AddInt64(&t.stats.misses, 1)
	}
	return c, ok
}

// Delete drops the entry for s. Texts already returned stay valid.
func (t *Table) Delete(s string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Delete(s)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.store.Len()
}

// UsedBytes returns the total size of interned texts.
func (t *Table) UsedBytes() int64 {
	return t.store.UsedBytes()
}

// SetMaxBytes changes the size budget, evicting entries if needed.
func (t *Table) SetMaxBytes(n int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.store.SetMaxBytes(n)
}

// Stats returns a snapshot of the table's counters.
func (t *Table) Stats() Stats {
	s := t.stats.snapshot()
	s.Entries = t.store.Len()
	s.UsedBytes = t.store.UsedBytes()
	return s
}

// Close releases every entry and stops the background sweeper. Texts handed
// out earlier stay valid. Closing twice is a no-op.
func (t *Table) Close() error {
	if !atomic.CompareAndSwapInt32(&t.closed, 0, 1) {
		return nil
	}

	t.mu.Lock()
	n := t.store.Len()
	t.store.Clear()
	t.mu.Unlock()
	t.store.Close()

	t.logger.WithField("released", n).Info("intern table closed")
	return nil
}
