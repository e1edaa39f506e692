// ABOUTME: Color quantizer mapping design paint colors to Tailwind color names
// ABOUTME: Grayscale-only by default; hue-bucketed naming sits behind a feature flag

package tailwind

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"codegen-app-api/core/domain"
)

// grayScale is the 10-step grayscale ladder, darkest last. A pure gray paint
// buckets into one of these by intensity.
var grayScale = []string{
	"gray-50", "gray-100", "gray-200", "gray-300", "gray-400",
	"gray-500", "gray-600", "gray-700", "gray-800", "gray-900",
}

// hueBuckets is the experimental hue-bucketed naming table, ordered by hue
// degree. Only consulted when hue naming is enabled; the authoritative path
// emits hex arbitrary values for chromatic colors.
var hueBuckets = []struct {
	maxHue float64
	name   string
}{
	{15, "red-500"},
	{45, "orange-500"},
	{70, "yellow-500"},
	{150, "green-500"},
	{200, "cyan-500"},
	{260, "blue-500"},
	{290, "purple-500"},
	{330, "pink-500"},
	{360, "red-500"},
}

// ColorQuantizer converts paint colors to Tailwind color tokens.
type ColorQuantizer struct {
	// HueNames switches chromatic colors from hex arbitrary values to the
	// nearest named hue bucket. Off in the authoritative path.
	HueNames bool
}

// Quantize maps a paint color to a Tailwind color token: pure white and
// black map to the named extremes, pure grays bucket into the gray ladder,
// and anything chromatic becomes a hex arbitrary value.
func (q ColorQuantizer) Quantize(c domain.Color) string {
	r := channel255(c.R)
	g := channel255(c.G)
	b := channel255(c.B)

	if r == 255 && g == 255 && b == 255 {
		return "white"
	}
	if r == 0 && g == 0 && b == 0 {
		return "black"
	}

	if r == g && g == b {
		return grayBucket(c.R)
	}

	if q.HueNames {
		return hueBucket(c)
	}
	return fmt.Sprintf("[%s]", hexString(c))
}

// grayBucket picks a gray ladder entry by intensity: brighter grays land on
// the low end of the ladder.
func grayBucket(intensity float64) string {
	idx := int(math.Round((1 - intensity) * float64(len(grayScale)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(grayScale) {
		idx = len(grayScale) - 1
	}
	return grayScale[idx]
}

// hueBucket maps a chromatic color to the nearest named hue.
func hueBucket(c domain.Color) string {
	h, _, _ := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	for _, bucket := range hueBuckets {
		if h <= bucket.maxHue {
			return bucket.name
		}
	}
	return hueBuckets[len(hueBuckets)-1].name
}

// hexString formats a color as a lowercase hex triplet.
func hexString(c domain.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}

// channel255 converts a 0..1 channel to the 0..255 integer range.
func channel255(v float64) int {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return int(math.Round(v * 255))
}
