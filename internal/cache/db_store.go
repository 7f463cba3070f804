package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/sven/internal/lexicon"
)

// Artifact is one row of the lexicon_artifacts table.
type Artifact struct {
	Name      string    `db:"name"`
	Contents  []byte    `db:"contents"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DBStore implements Store using MySQL.
//
//	CREATE TABLE lexicon_artifacts (
//	  name VARCHAR(255) NOT NULL PRIMARY KEY,
//	  contents LONGBLOB NOT NULL,
//	  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//	);
type DBStore struct {
	db *sqlx.DB
}

var _ Store = (*DBStore)(nil)

func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Exists(ctx context.Context, key string) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM lexicon_artifacts WHERE name = ?", key); err != nil {
		return false, fmt.Errorf("%w: db.GetContext(count lexicon_artifacts) > %w", lexicon.ErrFileSystem, err)
	}
	return count > 0, nil
}

func (s *DBStore) Read(ctx context.Context, key string) ([]byte, error) {
	var artifact Artifact
	err := s.db.GetContext(ctx, &artifact, "SELECT * FROM lexicon_artifacts WHERE name = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %w", lexicon.ErrFileSystem, &NotFoundError{Key: key})
	}
	if err != nil {
		return nil, fmt.Errorf("%w: db.GetContext(lexicon_artifact) > %w", lexicon.ErrFileSystem, err)
	}
	return artifact.Contents, nil
}

// Write inserts or replaces an artifact.
func (s *DBStore) Write(ctx context.Context, key string, contents []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lexicon_artifacts (name, contents)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE contents = VALUES(contents)`,
		key, contents)
	if err != nil {
		return fmt.Errorf("%w: db.ExecContext(upsert lexicon_artifact) > %w", lexicon.ErrFileSystem, err)
	}
	return nil
}
