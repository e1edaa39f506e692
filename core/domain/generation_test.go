package domain

import "testing"

func TestFramework_Valid(t *testing.T) {
	tests := []struct {
		framework Framework
		want      bool
	}{
		{FrameworkHTMLTailwind, true},
		{FrameworkReactJSX, true},
		{FrameworkVueSFC, true},
		{"svelte", false},
		{"HTML_TAILWIND", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.framework.Valid(); got != tt.want {
			t.Errorf("Framework(%q).Valid() = %v, want %v", tt.framework, got, tt.want)
		}
	}
}

func TestGenerationOptions_Validate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("Validate(defaults) = %v, want nil", err)
	}

	bad := GenerationOptions{Framework: "angular"}
	if err := bad.Validate(); err == nil {
		t.Error("Validate(unsupported framework) = nil, want error")
	}
}

func TestBreakpoints_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Breakpoints
		want Breakpoints
	}{
		{
			"all unset",
			Breakpoints{},
			Breakpoints{Mobile: 640, Tablet: 768, Desktop: 1024, Wide: 1280},
		},
		{
			"partial override",
			Breakpoints{Tablet: 800},
			Breakpoints{Mobile: 640, Tablet: 800, Desktop: 1024, Wide: 1280},
		},
		{
			"fully set",
			Breakpoints{Mobile: 360, Tablet: 720, Desktop: 1080, Wide: 1440},
			Breakpoints{Mobile: 360, Tablet: 720, Desktop: 1080, Wide: 1440},
		},
		{
			"negative treated as unset",
			Breakpoints{Mobile: -1},
			Breakpoints{Mobile: 640, Tablet: 768, Desktop: 1024, Wide: 1280},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.WithDefaults(); got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewFailedResult(t *testing.T) {
	result := NewFailedResult("abc", "low score", 12)

	if result.Status != StatusFailed {
		t.Errorf("Status = %q, want %q", result.Status, StatusFailed)
	}
	if result.HTMLCode != "" {
		t.Errorf("HTMLCode = %q, want empty", result.HTMLCode)
	}
	if result.Metadata != (Metadata{}) {
		t.Errorf("Metadata = %+v, want zero value", result.Metadata)
	}
	if result.ErrorMessage != "low score" {
		t.Errorf("ErrorMessage = %q, want %q", result.ErrorMessage, "low score")
	}
	if result.GenerationTimeMS != 12 {
		t.Errorf("GenerationTimeMS = %d, want 12", result.GenerationTimeMS)
	}
}
