package domain

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"

	m "github.com/pale-fox/exline/internal/model"
)

// unifiedPreview renders a user-facing unified diff for a dry run.
func unifiedPreview(path m.Path, before, after string) string {
	return strings.TrimSpace(udiff.Unified(string(path), string(path)+" (migrated)", before, after))
}
