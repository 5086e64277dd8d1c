package storage

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

func TestFileStoreSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFileStore(dir, 1<<20)
	require.NoError(t, err)

	path, err := files.Save(t.Context(), bytes.NewReader([]byte("audio bytes")), "visit.mp3")
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))
	require.Equal(t, ".mp3", filepath.Ext(path))
	// stored name is generated, never the client-declared one
	require.NotContains(t, filepath.Base(path), "visit")

	r, err := files.Open(t.Context(), path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("audio bytes"), data)
}

func TestFileStoreSaveRejectsOversizedUpload(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFileStore(dir, 10)
	require.NoError(t, err)

	_, err = files.Save(t.Context(), strings.NewReader("this payload is longer than ten bytes"), "big.wav")
	require.ErrorIs(t, err, entity.ErrValidation)

	// nothing left behind on rejection
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFileStoreOpenMissingFile(t *testing.T) {
	files, err := NewFileStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	_, err = files.Open(t.Context(), filepath.Join(t.TempDir(), "missing.mp3"))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestNewFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "recordings")

	_, err := NewFileStore(dir, 1<<20)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
