package intern

import "sync/atomic"

// tableStats 保存表的统计信息
type tableStats struct {
	hits      int64 // 命中已有条目
	misses    int64 // 新建条目
	evictions int64 // 因容量或过期被淘汰
	rejected  int64 // 输入不是合法 UTF-8
}

// Stats is a snapshot of a Table's counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Rejected  int64
	Entries   int
	UsedBytes int64
}

// HitRate returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (s *tableStats) snapshot() Stats {
	return Stats{
		Hits:      atomic.LoadInt64(&s.hits),
		Misses:    atomic.LoadInt64(&s.misses),
		Evictions: atomic.LoadInt64(&s.evictions),
		Rejected:  atomic.LoadInt64(&s.rejected),
	}
}
