// Package store provides the key-value record store that persists serialized history.
//
// A Store holds opaque byte values under string keys. Backends differ only in where the
// bytes live: process memory, a directory on disk, Redis or a PostgreSQL table.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by Get when no value is stored under the key
	ErrNotFound = errors.New("store: key not found")
	// ErrQuotaExceeded is returned by Set when the backend refuses the value for lack of space
	ErrQuotaExceeded = errors.New("store: quota exceeded")
)

// Store is an opaque get/set/remove record store
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Options selects and configures a backend
type Options struct {
	Backend     string
	Path        string // directory for the file backend
	RedisAddr   string
	DatabaseURL string
}

// Open constructs the backend named by opts.Backend
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		return NewFile(opts.Path)
	case BackendRedis:
		return NewRedis(ctx, opts.RedisAddr)
	case BackendPostgres:
		return NewPostgres(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", opts.Backend)
	}
}
