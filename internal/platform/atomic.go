package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultArtifactPerm is the mode of a newly generated file.
const DefaultArtifactPerm fs.FileMode = 0644

// ErrEmptyArtifact means the rendered source had no content; the target is left alone.
var ErrEmptyArtifact = errors.New("generated artifact is empty")

// artifactTempPattern names the hidden staging file next to the target,
// e.g. ".notes_gen.go.notegen-123".
func artifactTempPattern(filename string) string {
	return "." + filepath.Base(filename) + ".notegen-*"
}

// WriteArtifact replaces filename with the generated source read from src.
//
// The source is staged in a hidden file next to the target and renamed over
// it, so readers see either the previous artifact or the complete new one. A
// regenerated file keeps the mode of the file it replaces; a new one gets
// DefaultArtifactPerm.
func WriteArtifact(filename string, src io.Reader) error {
	perm := DefaultArtifactPerm
	if info, err := os.Stat(filename); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", filename)
		}
		perm = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(filename), artifactTempPattern(filename))
	if err != nil {
		return fmt.Errorf("failed to stage artifact: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	n, err := io.Copy(tmpFile, src)
	if err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to stage artifact: %w", err)
	}
	if n == 0 {
		tmpFile.Close()
		return ErrEmptyArtifact
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync artifact: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close artifact: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod artifact: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
