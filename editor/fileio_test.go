package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenStripsLineEndings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\r\nsecond\n"), 0644))

	e := &Editor{}
	require.NoError(t, e.open(path))

	require.Len(t, e.rows, 2)
	require.Equal(t, "first", string(e.rows[0].chars))
	require.Equal(t, "second", string(e.rows[1].chars))
	require.Zero(t, e.dirty)
}

func TestOpenMissingFileReturnsError(t *testing.T) {
	e := &Editor{}
	err := e.open(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestSaveRoundTripIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	e := &Editor{filename: path}
	e.insertRow(0, []byte("alpha"))
	e.insertRow(1, []byte("beta"))
	e.dirty = 1

	e.save()
	require.Zero(t, e.dirty)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	e.dirty = 1
	e.save()
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, "alpha\nbeta\n", string(first))
}

func TestSaveTruncatesShorterContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shrink.txt")

	e := &Editor{filename: path}
	e.insertRow(0, []byte("a very long first line"))
	e.save()

	e.rows[0].chars = []byte("x")
	e.rows[0].update(e)
	e.save()

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "x\n", string(got))
}
