package bytestext

import "github.com/rson9/bytestext/internal/text"

// BuilderOptions holds the configuration of a Builder.
type BuilderOptions = text.BuilderOptions

// BuilderOption configures a Builder.
type BuilderOption = text.BuilderOption

// WithCapacity sets the initial buffer capacity of a Builder.
func WithCapacity(n int) BuilderOption {
	return text.WithCapacity(n)
}

// WithPool makes a Builder draw its buffers from p. Texts frozen from it
// return the buffer to p when their last reference is released, after which
// their views panic on access.
func WithPool(p *Pool) BuilderOption {
	return text.WithPool(p)
}
