// ABOUTME: Pixel-to-token quantizer for the Tailwind spacing and sizing scales
// ABOUTME: Snaps within a fixed tolerance, otherwise emits an arbitrary-value token

package tailwind

import (
	"fmt"
	"strconv"
)

// SnapTolerance is the maximum distance in px at which a value snaps to the
// nearest scale step. Values beyond it become arbitrary-value tokens. The
// snapping changes visual output by up to this many px and is a deliberate
// design-token policy, so it must stay exact.
const SnapTolerance = 4

// scaleStep is one entry of the design scale: a pixel value and the class
// suffix it maps to.
type scaleStep struct {
	px     int
	suffix string
}

// spacingScale is the Tailwind spacing scale from 0 to 384px, ordered
// ascending. Shared by padding, gap, and fixed sizing.
var spacingScale = []scaleStep{
	{0, "0"},
	{4, "1"},
	{8, "2"},
	{12, "3"},
	{16, "4"},
	{20, "5"},
	{24, "6"},
	{28, "7"},
	{32, "8"},
	{36, "9"},
	{40, "10"},
	{44, "11"},
	{48, "12"},
	{56, "14"},
	{64, "16"},
	{80, "20"},
	{96, "24"},
	{112, "28"},
	{128, "32"},
	{144, "36"},
	{160, "40"},
	{176, "44"},
	{192, "48"},
	{208, "52"},
	{224, "56"},
	{240, "60"},
	{256, "64"},
	{288, "72"},
	{320, "80"},
	{384, "96"},
}

// QuantizePx maps a pixel value to a scale suffix. Exact hits map directly;
// otherwise the nearest step within SnapTolerance wins, preferring the
// smaller step on ties. Values outside tolerance of every step return an
// arbitrary-value suffix carrying the literal pixel number.
func QuantizePx(px int) string {
	if px < 0 {
		px = 0
	}

	bestSuffix := ""
	bestDist := SnapTolerance + 1
	for _, step := range spacingScale {
		dist := px - step.px
		if dist < 0 {
			dist = -dist
		}
		// strict less keeps the smaller step on equidistant ties
		if dist < bestDist {
			bestDist = dist
			bestSuffix = step.suffix
		}
	}

	if bestSuffix == "" {
		return arbitraryPx(px)
	}
	return bestSuffix
}

// arbitraryPx formats an arbitrary-value suffix. No information loss, but it
// opts out of the design-token scale.
func arbitraryPx(px int) string {
	return fmt.Sprintf("[%spx]", strconv.Itoa(px))
}

// IsArbitrary reports whether a quantized suffix is an arbitrary value
// rather than a scale step.
func IsArbitrary(suffix string) bool {
	return len(suffix) > 0 && suffix[0] == '['
}
