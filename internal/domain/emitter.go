package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/pale-fox/exline/internal/model"
)

// ResourcePlan pairs the external files to emit for one entry with the
// relative references the rewritten entry will carry, in matching order.
type ResourcePlan struct {
	Files []m.ExternalFileSpec
	Refs  []string
}

// PlanResources decides the target filename for every literal value of an
// entry. The first file is named after the unit's base name (source suffix
// stripped) plus ext; further list elements get an index suffix starting at
// 2, preserving the original list order in both filenames and references.
func PlanResources(unitPath m.Path, values []string, ext string) ResourcePlan {
	dir := filepath.Dir(string(unitPath))
	base := strings.TrimSuffix(filepath.Base(string(unitPath)), ".ts")

	plan := ResourcePlan{
		Files: make([]m.ExternalFileSpec, 0, len(values)),
		Refs:  make([]string, 0, len(values)),
	}

	for i, value := range values {
		name := base + ext
		if i > 0 {
			name = fmt.Sprintf("%s-%d%s", base, i+1, ext)
		}

		plan.Files = append(plan.Files, m.ExternalFileSpec{
			Path:    m.Path(filepath.Join(dir, name)),
			Content: value,
		})
		plan.Refs = append(plan.Refs, "./"+name)
	}

	return plan
}

// templateRefText renders the reference-form replacement for a markup entry.
func templateRefText(plan ResourcePlan) string {
	return fmt.Sprintf("templateUrl: '%s'", plan.Refs[0])
}

// styleRefText renders the reference-form replacement for a stylesheet
// entry. The reference form is always a list, even for a scalar source
// entry.
func styleRefText(plan ResourcePlan) string {
	quoted := make([]string, 0, len(plan.Refs))
	for _, ref := range plan.Refs {
		quoted = append(quoted, "'"+ref+"'")
	}

	return fmt.Sprintf("styleUrls: [%s]", strings.Join(quoted, ", "))
}
