package tailwind

import (
	"testing"
)

func TestQuantizePx_ExactHits(t *testing.T) {
	tests := []struct {
		px   int
		want string
	}{
		{0, "0"},
		{4, "1"},
		{16, "4"},
		{32, "8"},
		{48, "12"},
		{64, "16"},
		{384, "96"},
	}

	for _, tt := range tests {
		if got := QuantizePx(tt.px); got != tt.want {
			t.Errorf("QuantizePx(%d) = %q, want %q", tt.px, got, tt.want)
		}
	}
}

func TestQuantizePx_SnapsWithinTolerance(t *testing.T) {
	tests := []struct {
		px   int
		want string
	}{
		// 34 is 2px from both 32 and 36; ties prefer the smaller step
		{34, "8"},
		{30, "7"}, // tie between 28 and 32 resolves down
		{18, "4"},
		{50, "12"}, // 2px from 48
		{60, "14"}, // 4px from 56, exactly at tolerance
		{3, "1"},
	}

	for _, tt := range tests {
		if got := QuantizePx(tt.px); got != tt.want {
			t.Errorf("QuantizePx(%d) = %q, want %q", tt.px, got, tt.want)
		}
	}
}

func TestQuantizePx_ArbitraryBeyondTolerance(t *testing.T) {
	tests := []struct {
		px   int
		want string
	}{
		{70, "[70px]"},   // 6 from 64, 10 from 80
		{216, "[216px]"}, // 8 from both 208 and 224
		{500, "[500px]"}, // beyond the scale
		{330, "[330px]"},
	}

	for _, tt := range tests {
		got := QuantizePx(tt.px)
		if got != tt.want {
			t.Errorf("QuantizePx(%d) = %q, want %q", tt.px, got, tt.want)
		}
		if !IsArbitrary(got) {
			t.Errorf("IsArbitrary(%q) = false, want true", got)
		}
	}
}

func TestQuantizePx_NegativeClampsToZero(t *testing.T) {
	if got := QuantizePx(-5); got != "0" {
		t.Errorf("QuantizePx(-5) = %q, want 0", got)
	}
}

func TestIsArbitrary(t *testing.T) {
	if IsArbitrary("8") {
		t.Error("IsArbitrary(8) = true, want false")
	}
	if !IsArbitrary("[50px]") {
		t.Error("IsArbitrary([50px]) = false, want true")
	}
}
