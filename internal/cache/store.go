// Package cache stores the raw and decoded lexicon artifacts.
// Artifacts are trusted indefinitely once written, and writes replace whole artifacts.
package cache

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=store.go -destination=../mocks/cache/mock_store.go -package=mock_cache

// Store is a key/value repository of cache artifacts. Keys are relative paths such as "folkets_en_sv_public.json".
type Store interface {
	Exists(ctx context.Context, key string) (bool, error)
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, contents []byte) error
}

type Driver string

const (
	DriverFile  Driver = "file"
	DriverMySQL Driver = "mysql"
)

// NotFoundError is returned by Read when the key has never been written.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cache artifact %s does not exist", e.Key)
}
