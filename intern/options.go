package intern

import (
	"time"

	"github.com/rson9/bytestext/internal/text"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxBytes 默认容量 8MB
	DefaultMaxBytes int64 = 8 << 20
	// DefaultCleanupInterval 默认每分钟清理一次过期条目
	DefaultCleanupInterval = time.Minute
)

// Options holds the configuration of a Table.
type Options struct {
	// MaxBytes bounds the total size of interned texts. Least recently used
	// entries are evicted beyond it; <= 0 means unbounded.
	MaxBytes int64
	// TTL expires entries this long after they were interned; 0 keeps them
	// until evicted or deleted.
	TTL time.Duration
	// CleanupInterval is how often expired entries are swept in the background.
	CleanupInterval time.Duration
	// Logger defaults to logrus.WithField("component", "intern").
	Logger *logrus.Entry
	// OnEvicted is called when an entry is evicted for size or age. The text
	// is only valid during the call; Clone it to keep it. The callback must not
	// call back into the Table.
	OnEvicted func(t text.Text)
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		MaxBytes:        DefaultMaxBytes,
		CleanupInterval: DefaultCleanupInterval,
		Logger:          logrus.WithField("component", "intern"),
	}
}

// WithMaxBytes sets the size budget of the table.
func WithMaxBytes(n int64) Option {
	return func(o *Options) {
		o.MaxBytes = n
	}
}

// WithTTL makes entries expire d after they were interned.
func WithTTL(d time.Duration) Option {
	return func(o *Options) {
		o.TTL = d
	}
}

// WithCleanupInterval sets how often expired entries are swept.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *Options) {
		o.CleanupInterval = d
	}
}

// WithLogger sets the logger of the table.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithOnEvicted registers a callback for evicted entries.
func WithOnEvicted(fn func(t text.Text)) Option {
	return func(o *Options) {
		o.OnEvicted = fn
	}
}
