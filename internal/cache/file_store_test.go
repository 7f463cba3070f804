package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/sven/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_filePath(t *testing.T) {
	tests := []struct {
		name     string
		rootDir  string
		key      string
		expected string
	}{
		{
			name:     "raw document",
			rootDir:  "lexicons",
			key:      "folkets_en_sv_public.xml",
			expected: filepath.Join("lexicons", "folkets_en_sv_public.xml"),
		},
		{
			name:     "nested key",
			rootDir:  "lexicons",
			key:      "mirror/folkets_sv_en_public.json",
			expected: filepath.Join("lexicons", "mirror", "folkets_sv_en_public.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFileStore(tt.rootDir)
			assert.Equal(t, tt.expected, store.filePath(tt.key))
		})
	}
}

func TestFileStore_Exists(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "present.json"), []byte("{}"), 0644))

	tests := []struct {
		name    string
		rootDir string
		key     string
		want    bool
	}{
		{name: "existing file", rootDir: tempDir, key: "present.json", want: true},
		{name: "missing file", rootDir: tempDir, key: "missing.json", want: false},
		{name: "missing directory", rootDir: filepath.Join(tempDir, "nope"), key: "present.json", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFileStore(tt.rootDir).Exists(context.Background(), tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileStore_Read(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name           string
		key            string
		setupFile      bool
		fileContent    string
		expectedResult string
		expectError    bool
	}{
		{
			name:           "existing file",
			key:            "test.json",
			setupFile:      true,
			fileContent:    `{"words":[{"value":"hund"}]}`,
			expectedResult: `{"words":[{"value":"hund"}]}`,
		},
		{
			name:        "non-existent file",
			key:         "missing.json",
			expectError: true,
		},
		{
			name:           "empty file",
			key:            "empty.json",
			setupFile:      true,
			fileContent:    "",
			expectedResult: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFileStore(tempDir)
			if tt.setupFile {
				require.NoError(t, os.WriteFile(store.filePath(tt.key), []byte(tt.fileContent), 0644))
			}

			result, err := store.Read(context.Background(), tt.key)
			if tt.expectError {
				assert.ErrorIs(t, err, lexicon.ErrFileSystem)
				var notFound *NotFoundError
				assert.True(t, errors.As(err, &notFound))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, string(result))
		})
	}
}

func TestFileStore_Write(t *testing.T) {
	t.Run("creates the cache directory", func(t *testing.T) {
		rootDir := filepath.Join(t.TempDir(), "share", "sven")
		store := NewFileStore(rootDir)
		ctx := context.Background()

		require.NoError(t, store.Write(ctx, "folkets_en_sv_public.xml", []byte("<dictionary/>")))

		got, err := store.Read(ctx, "folkets_en_sv_public.xml")
		require.NoError(t, err)
		assert.Equal(t, "<dictionary/>", string(got))

		entries, err := os.ReadDir(rootDir)
		require.NoError(t, err)
		require.Len(t, entries, 1, "temporary files must not be left behind")
	})

	t.Run("replaces existing contents", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		ctx := context.Background()

		require.NoError(t, store.Write(ctx, "a.json", []byte("first, and longer")))
		require.NoError(t, store.Write(ctx, "a.json", []byte("second")))

		got, err := store.Read(ctx, "a.json")
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("root is a file", func(t *testing.T) {
		rootFile := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(rootFile, nil, 0644))

		err := NewFileStore(rootFile).Write(context.Background(), "a.json", []byte("{}"))
		assert.ErrorIs(t, err, lexicon.ErrFileSystem)
	})
}
