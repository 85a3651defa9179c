package vexlcrypto

import (
	"io"
	"log/slog"
)

// cipherConfig holds configuration for a HybridCipher.
type cipherConfig struct {
	slot       *ProviderSlot
	randReader io.Reader
	logger     *slog.Logger
}

// Option configures a HybridCipher.
type Option func(*cipherConfig)

// WithProvider binds the cipher to p. The cipher gets its own slot, so
// SetECDHProvider no longer affects it.
func WithProvider(p ECDHProvider) Option {
	return func(c *cipherConfig) {
		c.slot = NewProviderSlot(p)
	}
}

// WithProviderSlot reads the provider from slot on every call. The default
// is DefaultProviderSlot().
func WithProviderSlot(slot *ProviderSlot) Option {
	return func(c *cipherConfig) {
		if slot != nil {
			c.slot = slot
		}
	}
}

// WithRandReader sets the source of ephemeral scalars. The default is
// crypto/rand.
func WithRandReader(r io.Reader) Option {
	return func(c *cipherConfig) {
		c.randReader = r
	}
}

// WithLogger sets the logger for debug output. The default discards
// everything. Key material is never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *cipherConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
