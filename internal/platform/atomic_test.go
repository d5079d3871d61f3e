package platform

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noStaging asserts no hidden staging file was left next to the target.
func noStaging(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".notegen-"), "staging file left behind: %s", e.Name())
	}
}

func TestWriteArtifact(t *testing.T) {
	t.Run("New file gets the default mode", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "notes_gen.go")

		require.NoError(t, WriteArtifact(target, strings.NewReader("package notes\n")))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "package notes\n", string(data))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, DefaultArtifactPerm, info.Mode().Perm())
		noStaging(t, dir)
	})

	t.Run("Regeneration keeps the previous mode", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "notes_gen.go")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0600))
		require.NoError(t, os.Chmod(target, 0600))

		require.NoError(t, WriteArtifact(target, strings.NewReader("package notes\n")))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
		noStaging(t, dir)
	})

	t.Run("Empty or failing source leaves the target alone", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "notes_gen.go")
		require.NoError(t, os.WriteFile(target, []byte("previous"), 0644))

		err := WriteArtifact(target, strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyArtifact)

		boom := errors.New("boom")
		err = WriteArtifact(target, io.MultiReader(strings.NewReader("package"), &failingReader{err: boom}))
		assert.ErrorIs(t, err, boom)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "previous", string(data))
		noStaging(t, dir)
	})

	t.Run("Bad targets", func(t *testing.T) {
		dir := t.TempDir()
		assert.Error(t, WriteArtifact(filepath.Join(dir, "missing", "notes_gen.go"), strings.NewReader("x")))
		assert.Error(t, WriteArtifact(dir, strings.NewReader("x")))
	})
}

type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}
