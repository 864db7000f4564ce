// Package adapter contains the filesystem and output adapters the migration
// engine depends on through interfaces, so the domain logic can be tested
// without touching the disk.
package adapter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/pale-fox/exline/internal/model"
)

// componentFileSuffix is the candidate naming convention; everything else
// under the root is opaque and untouched.
const componentFileSuffix = ".component.ts"

// Discovery supplies every regular candidate file under a root exactly once.
// Order is not significant to the engine; the implementation sorts for
// stable output.
type Discovery interface {
	Candidates(root m.Path) ([]m.Path, error)
}

// LocalDiscovery walks the real filesystem.
type LocalDiscovery struct{}

// NewLocalDiscovery constructs a LocalDiscovery.
func NewLocalDiscovery() *LocalDiscovery {
	return &LocalDiscovery{}
}

// Candidates returns every *.component.ts file under root. A root that is
// itself a matching file yields a single candidate. Any walk error is an
// enumeration fault and aborts the whole run.
func (d *LocalDiscovery) Candidates(root m.Path) ([]m.Path, error) {
	info, err := os.Stat(string(root))
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(string(root), componentFileSuffix) {
			return nil, nil
		}

		return []m.Path{root}, nil
	}

	var paths []m.Path

	err = filepath.WalkDir(string(root), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			name := entry.Name()
			if path != string(root) && (name == "node_modules" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}

			return nil
		}

		if !entry.Type().IsRegular() || !strings.HasSuffix(path, componentFileSuffix) {
			return nil
		}

		paths = append(paths, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths, nil
}
