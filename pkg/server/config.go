package server

import (
	"time"

	"github.com/matzehuels/menulayout/pkg/store"
)

// Config configures the HTTP service.
type Config struct {
	// Addr is the listen address.
	Addr string

	// TTL is how long a scene lives after its last write.
	TTL time.Duration

	// MaxSceneBytes caps uploaded scene sources.
	MaxSceneBytes int64

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the configuration used by `menulayout serve`.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		TTL:             store.DefaultTTL,
		MaxSceneBytes:   1 << 20,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.TTL == 0 {
		c.TTL = d.TTL
	}
	if c.MaxSceneBytes <= 0 {
		c.MaxSceneBytes = d.MaxSceneBytes
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}
