package bytestext

import (
	"github.com/rson9/bytestext/internal/buf"
	"github.com/rson9/bytestext/internal/text"
)

// Default values for builders and pools.
const (
	// DefaultBuilderCapacity is the smallest buffer a Builder allocates.
	DefaultBuilderCapacity = text.DefaultBuilderCapacity

	// DefaultMaxPooledCap is the largest slice a Pool keeps for reuse.
	DefaultMaxPooledCap = buf.DefaultMaxPooledCap
)
