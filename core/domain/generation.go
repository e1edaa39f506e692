// ABOUTME: Generation options, result, and metadata domain models
// ABOUTME: Provides validation logic so bad options are rejected before any tree walk

package domain

import (
	"fmt"
)

// Framework is the output target of a generation run.
type Framework string

const (
	FrameworkHTMLTailwind Framework = "html_tailwind"
	FrameworkReactJSX     Framework = "react_jsx"
	FrameworkVueSFC       Framework = "vue_sfc"
)

// Valid reports whether the framework is one of the supported targets.
func (f Framework) Valid() bool {
	switch f {
	case FrameworkHTMLTailwind, FrameworkReactJSX, FrameworkVueSFC:
		return true
	}
	return false
}

// Breakpoints maps the four named responsive breakpoints to pixel widths.
// Zero values fall back to the defaults at emission time.
type Breakpoints struct {
	Mobile  int `json:"mobile,omitempty" yaml:"mobile"`
	Tablet  int `json:"tablet,omitempty" yaml:"tablet"`
	Desktop int `json:"desktop,omitempty" yaml:"desktop"`
	Wide    int `json:"wide,omitempty" yaml:"wide"`
}

// Default breakpoint widths, applied per field when a Breakpoints value
// leaves them unset.
const (
	DefaultMobileBreakpoint  = 640
	DefaultTabletBreakpoint  = 768
	DefaultDesktopBreakpoint = 1024
	DefaultWideBreakpoint    = 1280
)

// WithDefaults returns a copy with unset fields replaced by the defaults.
func (b Breakpoints) WithDefaults() Breakpoints {
	if b.Mobile <= 0 {
		b.Mobile = DefaultMobileBreakpoint
	}
	if b.Tablet <= 0 {
		b.Tablet = DefaultTabletBreakpoint
	}
	if b.Desktop <= 0 {
		b.Desktop = DefaultDesktopBreakpoint
	}
	if b.Wide <= 0 {
		b.Wide = DefaultWideBreakpoint
	}
	return b
}

// GenerationOptions carries caller-supplied knobs for one generation run.
type GenerationOptions struct {
	Framework         Framework    `json:"framework"`
	IncludeResponsive bool         `json:"includeResponsive"`
	IncludeGrid       bool         `json:"includeGrid"`
	Breakpoints       *Breakpoints `json:"breakpoints,omitempty"`
	MinifyOutput      bool         `json:"minifyOutput"`
	IncludeComments   bool         `json:"includeComments"`

	// UseGrid is computed by the caller's analysis pass, not user input.
	// Grid emission requires both IncludeGrid and UseGrid.
	UseGrid bool `json:"useGrid"`
}

// DefaultOptions returns the options used when a caller supplies none.
func DefaultOptions() GenerationOptions {
	return GenerationOptions{
		Framework:         FrameworkHTMLTailwind,
		IncludeResponsive: true,
		IncludeGrid:       true,
		UseGrid:           true,
	}
}

// Validate checks that the options are usable for a generation run.
func (o GenerationOptions) Validate() error {
	if !o.Framework.Valid() {
		return fmt.Errorf("unsupported framework %q", o.Framework)
	}
	return nil
}

// GenerationStatus is the terminal state of a generation run.
type GenerationStatus string

const (
	StatusCompleted GenerationStatus = "completed"
	StatusFailed    GenerationStatus = "failed"
)

// Metadata describes the generated output.
type Metadata struct {
	// TotalLines is the number of lines in the emitted document
	TotalLines int `json:"totalLines"`

	// TailwindClasses is the total count of class tokens across all
	// class attributes (a count, not the token list)
	TailwindClasses int `json:"tailwindClasses"`

	// ComponentCount is the number of emitted elements
	ComponentCount int `json:"componentCount"`

	// ReproductionRate estimates how much design intent survived, in [0,1]
	ReproductionRate float64 `json:"reproductionRate"`

	// CodeQualityScore rates the emitted markup, in [0,100]
	CodeQualityScore int `json:"codeQualityScore"`
}

// GenerationResult is the outcome of one generation run. Expected failures
// (bad framework, low score, depth guard) are carried here rather than
// returned as errors; generation failure is a displayable outcome.
type GenerationResult struct {
	ID               string           `json:"id"`
	HTMLCode         string           `json:"htmlCode"`
	Metadata         Metadata         `json:"metadata"`
	Status           GenerationStatus `json:"status"`
	ErrorMessage     string           `json:"errorMessage,omitempty"`
	GenerationTimeMS int64            `json:"generationTimeMs"`
}

// NewFailedResult builds a failed result with empty code and zeroed
// metadata, which is an invariant of the failed status.
func NewFailedResult(id, message string, elapsedMS int64) *GenerationResult {
	return &GenerationResult{
		ID:               id,
		Status:           StatusFailed,
		ErrorMessage:     message,
		GenerationTimeMS: elapsedMS,
	}
}
