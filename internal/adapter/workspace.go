package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	m "github.com/pale-fox/exline/internal/model"
)

// Workspace abstracts the file operations the engine performs on a unit and
// its emitted resources.
type Workspace interface {
	ReadFile(path m.Path) (string, error)

	// WriteFile replaces the content of an existing unit.
	WriteFile(path m.Path, content string) error

	// Create writes a new file, or reports created=false without touching
	// anything when the path already exists. Existing content is never
	// verified or overwritten.
	Create(path m.Path, content string) (created bool, err error)
}

// LocalWorkspace is the Workspace backed by the real filesystem.
type LocalWorkspace struct{}

// NewLocalWorkspace constructs a LocalWorkspace.
func NewLocalWorkspace() *LocalWorkspace {
	return &LocalWorkspace{}
}

// ReadFile loads the file at path.
func (ws *LocalWorkspace) ReadFile(path m.Path) (string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// WriteFile replaces the file's content, preserving its mode when the file
// already exists.
func (ws *LocalWorkspace) WriteFile(path m.Path, content string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		mode = info.Mode()
	}

	return os.WriteFile(string(path), []byte(content), mode)
}

// Create writes the file only when the path does not exist yet.
func (ws *LocalWorkspace) Create(path m.Path, content string) (bool, error) {
	f, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}

		return false, fmt.Errorf("creating %s: %w", path, err)
	}

	_, werr := f.WriteString(content)

	if cerr := f.Close(); werr == nil {
		werr = cerr
	}

	if werr != nil {
		return false, fmt.Errorf("writing %s: %w", path, werr)
	}

	return true, nil
}
