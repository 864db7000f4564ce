// Package domain contains the locate-extract-splice engine that moves inline
// component resources into external files.
package domain

import m "github.com/pale-fox/exline/internal/model"

// Names recognized inside the component configuration block.
const (
	// ComponentMarker is the decorator identifier that marks a candidate class.
	ComponentMarker = "Component"

	templateEntry    = "template"
	templateURLEntry = "templateUrl"
	stylesEntry      = "styles"
	styleURLsEntry   = "styleUrls"
)

// Defaults for the emitted file extensions.
const (
	DefaultTemplateExt = ".html"
	DefaultStyleExt    = ".scss"
)

// componentFileSuffix is the naming convention a file must match to be
// inspected at all.
const componentFileSuffix = ".component.ts"

// Options configures one migration run.
type Options struct {
	Root        m.Path
	TemplateExt string
	StyleExt    string
	DryRun      bool
}

func (o Options) withDefaults() Options {
	if o.TemplateExt == "" {
		o.TemplateExt = DefaultTemplateExt
	}

	if o.StyleExt == "" {
		o.StyleExt = DefaultStyleExt
	}

	return o
}
