package tailwind

import (
	"testing"

	"codegen-app-api/core/domain"
)

func TestColorQuantizer_Extremes(t *testing.T) {
	q := ColorQuantizer{}

	if got := q.Quantize(domain.Color{R: 1, G: 1, B: 1, A: 1}); got != "white" {
		t.Errorf("Quantize(white) = %q, want white", got)
	}
	if got := q.Quantize(domain.Color{A: 1}); got != "black" {
		t.Errorf("Quantize(black) = %q, want black", got)
	}
}

func TestColorQuantizer_GrayBuckets(t *testing.T) {
	q := ColorQuantizer{}

	tests := []struct {
		name      string
		intensity float64
		want      string
	}{
		{"near white", 0.97, "gray-50"},
		{"light gray", 0.80, "gray-200"},
		{"mid gray", 0.50, "gray-500"},
		{"dark gray", 0.20, "gray-700"},
		{"near black", 0.05, "gray-900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.Color{R: tt.intensity, G: tt.intensity, B: tt.intensity, A: 1}
			if got := q.Quantize(c); got != tt.want {
				t.Errorf("Quantize(gray %v) = %q, want %q", tt.intensity, got, tt.want)
			}
		})
	}
}

func TestColorQuantizer_ChromaticFallsBackToHex(t *testing.T) {
	q := ColorQuantizer{}

	blue := domain.Color{R: 0.231, G: 0.51, B: 0.965, A: 1}
	got := q.Quantize(blue)
	if len(got) < 2 || got[0] != '[' {
		t.Fatalf("Quantize(blue) = %q, want a hex arbitrary value", got)
	}
	if got[1] != '#' {
		t.Errorf("Quantize(blue) = %q, want hex literal inside brackets", got)
	}
}

func TestColorQuantizer_HueNames(t *testing.T) {
	q := ColorQuantizer{HueNames: true}

	tests := []struct {
		name string
		c    domain.Color
		want string
	}{
		{"red", domain.Color{R: 1, G: 0.05, B: 0.05, A: 1}, "red-500"},
		{"green", domain.Color{R: 0.1, G: 0.9, B: 0.2, A: 1}, "green-500"},
		{"blue", domain.Color{R: 0.1, G: 0.2, B: 0.95, A: 1}, "blue-500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.Quantize(tt.c); got != tt.want {
				t.Errorf("Quantize(%s) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestColorQuantizer_GraysIgnoreHueFlag(t *testing.T) {
	q := ColorQuantizer{HueNames: true}
	c := domain.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if got := q.Quantize(c); got != "gray-500" {
		t.Errorf("Quantize(gray) with hue names = %q, want gray-500", got)
	}
}
