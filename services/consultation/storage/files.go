package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/gen"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

// FileStore keeps uploaded audio on disk. The stored name is UUID-based; the
// client-declared filename only lives in recording metadata.
type FileStore interface {
	Save(ctx context.Context, r io.Reader, filename string) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type fileStore struct {
	dir      string
	maxBytes int64
	uuid     gen.UUIDGenerator
}

func NewFileStore(dir string, maxBytes int64) (FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir %s: %w", dir, err)
	}

	return &fileStore{
		dir:      dir,
		maxBytes: maxBytes,
		uuid:     gen.UUID(),
	}, nil
}

func (f *fileStore) Save(ctx context.Context, r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(f.dir, f.uuid.NextString()+ext)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}

	src := r
	if f.maxBytes > 0 {
		src = io.LimitReader(r, f.maxBytes+1)
	}

	written, err := io.Copy(out, src)
	if err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	if f.maxBytes > 0 && written > f.maxBytes {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("%w: audio file exceeds %d bytes", entity.ErrValidation, f.maxBytes)
	}

	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close audio file: %w", err)
	}

	return path, nil
}

func (f *fileStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("audio file %s: %w", path, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}

	return file, nil
}
