package text

import "github.com/rson9/bytestext/internal/buf"

// DefaultBuilderCapacity 是 Builder 第一次分配缓冲区时的最小容量
const DefaultBuilderCapacity = 64

// BuilderOptions holds the configuration of a Builder.
type BuilderOptions struct {
	// Capacity is the initial buffer capacity. Defaults to DefaultBuilderCapacity.
	Capacity int
	// Pool, when set, supplies the buffer; texts frozen from the builder give
	// it back when their last reference is released.
	Pool *buf.Pool
}

type BuilderOption func(*BuilderOptions)

func defaultBuilderOptions() BuilderOptions {
	return BuilderOptions{
		Capacity: DefaultBuilderCapacity,
	}
}

// WithCapacity sets the initial buffer capacity.
func WithCapacity(n int) BuilderOption {
	return func(o *BuilderOptions) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithPool makes the builder draw its buffers from p.
func WithPool(p *buf.Pool) BuilderOption {
	return func(o *BuilderOptions) {
		o.Pool = p
	}
}
