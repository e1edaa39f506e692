// ABOUTME: Utility class generator converting normalized layout facts into Tailwind tokens
// ABOUTME: Covers flex, grid, sizing, spacing, color, radius, and text styling classes

package tailwind

import (
	"fmt"
	"math"

	"codegen-app-api/core/domain"
)

// radiusBuckets is the ascending corner-radius threshold table. The first
// bucket whose threshold covers the radius wins; anything beyond the table
// is fully rounded.
var radiusBuckets = []struct {
	maxPx float64
	class string
}{
	{2, "rounded-sm"},
	{4, "rounded"},
	{6, "rounded-md"},
	{8, "rounded-lg"},
	{12, "rounded-xl"},
	{16, "rounded-2xl"},
	{24, "rounded-3xl"},
}

// fontSizeBuckets maps px font sizes to Tailwind text scale classes,
// ordered ascending by px.
var fontSizeBuckets = []struct {
	maxPx float64
	class string
}{
	{13, "text-xs"},
	{15, "text-sm"},
	{17, "text-base"},
	{19, "text-lg"},
	{22, "text-xl"},
	{27, "text-2xl"},
	{33, "text-3xl"},
	{42, "text-4xl"},
	{54, "text-5xl"},
}

// fontWeightClasses maps the design tool's numeric weights to Tailwind
// weight classes.
var fontWeightClasses = map[int]string{
	100: "font-thin",
	200: "font-extralight",
	300: "font-light",
	400: "font-normal",
	500: "font-medium",
	600: "font-semibold",
	700: "font-bold",
	800: "font-extrabold",
	900: "font-black",
}

// Generator converts layout facts into utility class tokens. Cheap value
// type; construct per call site.
type Generator struct {
	colors ColorQuantizer
}

// NewGenerator creates a class generator using the authoritative grayscale
// color path.
func NewGenerator() Generator {
	return Generator{}
}

// NewGeneratorWithHueNames creates a class generator using the experimental
// hue-bucketed color naming.
func NewGeneratorWithHueNames() Generator {
	return Generator{colors: ColorQuantizer{HueNames: true}}
}

// FlexClasses emits the flexbox classes for an Auto Layout container.
func (g Generator) FlexClasses(layout domain.LayoutInfo) []string {
	classes := []string{"flex"}

	if layout.Direction == domain.DirectionVertical {
		classes = append(classes, "flex-col")
	} else {
		classes = append(classes, "flex-row")
	}

	if layout.Wrap {
		classes = append(classes, "flex-wrap")
	}

	if layout.Spacing.Gap > 0 {
		classes = append(classes, "gap-"+QuantizePx(layout.Spacing.Gap))
	}

	classes = append(classes, alignClasses(layout.Alignment)...)
	return classes
}

// gridColumnCount picks the column count from the child count.
func gridColumnCount(childCount int) int {
	switch {
	case childCount <= 2:
		return childCount
	case childCount <= 4:
		return 2
	case childCount <= 9:
		return 3
	case childCount <= 16:
		return 4
	default:
		return 5
	}
}

// GridClasses emits the grid classes for a grid candidate. Grid output is
// mobile-first: a single column at the base tier, widening at the mid and
// wide breakpoints. When responsive output is disabled the full column
// count applies unconditionally.
func (g Generator) GridClasses(childCount int, layout domain.LayoutInfo, responsive bool) []string {
	cols := gridColumnCount(childCount)
	if cols < 1 {
		cols = 1
	}

	classes := []string{"grid"}
	if responsive {
		mid := cols
		if mid > 2 {
			mid = 2
		}
		classes = append(classes,
			"grid-cols-1",
			fmt.Sprintf("md:grid-cols-%d", mid),
			fmt.Sprintf("lg:grid-cols-%d", cols),
		)
	} else {
		classes = append(classes, fmt.Sprintf("grid-cols-%d", cols))
	}

	if layout.Spacing.Gap > 0 {
		classes = append(classes, "gap-"+QuantizePx(layout.Spacing.Gap))
	}
	return classes
}

// SizingClasses emits width and height classes from the sizing modes:
// Fill becomes full-size, Hug content-sizes, Fixed quantizes the captured
// pixel value. Fixed axes without a captured value emit nothing.
func (g Generator) SizingClasses(sizing domain.SizingInfo) []string {
	var classes []string

	switch sizing.Width {
	case domain.SizingFill:
		classes = append(classes, "w-full")
	case domain.SizingHug:
		classes = append(classes, "w-auto")
	case domain.SizingFixed:
		if sizing.HasWidth {
			classes = append(classes, "w-"+QuantizePx(int(math.Round(sizing.WidthValue))))
		}
	}

	switch sizing.Height {
	case domain.SizingFill:
		classes = append(classes, "h-full")
	case domain.SizingHug:
		classes = append(classes, "h-auto")
	case domain.SizingFixed:
		if sizing.HasHeight {
			classes = append(classes, "h-"+QuantizePx(int(math.Round(sizing.HeightValue))))
		}
	}

	return classes
}

// SpacingClasses emits the minimal padding classes for the given values:
// one class when all sides match, an axis pair when vertical and horizontal
// sides pair up, directional classes otherwise. A looser emission is never
// allowed to use fewer classes for the same values.
func (g Generator) SpacingClasses(spacing domain.SpacingInfo) []string {
	if spacing.PaddingTop == 0 && spacing.PaddingRight == 0 &&
		spacing.PaddingBottom == 0 && spacing.PaddingLeft == 0 {
		return nil
	}

	if spacing.Uniform() {
		return []string{"p-" + QuantizePx(spacing.PaddingTop)}
	}

	if spacing.Symmetric() {
		var classes []string
		if spacing.PaddingTop > 0 {
			classes = append(classes, "py-"+QuantizePx(spacing.PaddingTop))
		}
		if spacing.PaddingLeft > 0 {
			classes = append(classes, "px-"+QuantizePx(spacing.PaddingLeft))
		}
		return classes
	}

	var classes []string
	if spacing.PaddingTop > 0 {
		classes = append(classes, "pt-"+QuantizePx(spacing.PaddingTop))
	}
	if spacing.PaddingRight > 0 {
		classes = append(classes, "pr-"+QuantizePx(spacing.PaddingRight))
	}
	if spacing.PaddingBottom > 0 {
		classes = append(classes, "pb-"+QuantizePx(spacing.PaddingBottom))
	}
	if spacing.PaddingLeft > 0 {
		classes = append(classes, "pl-"+QuantizePx(spacing.PaddingLeft))
	}
	return classes
}

// ColorClasses emits background, border, and radius classes from the node's
// paints. Only the first visible solid fill and stroke are styled.
func (g Generator) ColorClasses(fills, strokes []domain.Paint, cornerRadius float64) []string {
	var classes []string

	if fill := domain.FirstVisibleSolid(fills); fill != nil {
		classes = append(classes, "bg-"+g.colors.Quantize(*fill.Color))
	}

	if stroke := domain.FirstVisibleSolid(strokes); stroke != nil {
		classes = append(classes, "border", "border-"+g.colors.Quantize(*stroke.Color))
	}

	if cornerRadius > 0 {
		classes = append(classes, radiusClass(cornerRadius))
	}

	return classes
}

// radiusClass picks a radius bucket from the ascending threshold table.
func radiusClass(radius float64) string {
	for _, bucket := range radiusBuckets {
		if radius <= bucket.maxPx {
			return bucket.class
		}
	}
	return "rounded-full"
}

// TextClasses emits typography classes for a text node: size bucket, weight
// bucket, fill color, and horizontal alignment. Heading tags already encode
// size and weight, so they get neither; left alignment is the browser
// default and emits nothing.
func (g Generator) TextClasses(node *domain.DesignNode, tag string) []string {
	var classes []string
	heading := len(tag) == 2 && tag[0] == 'h'

	if style := node.Style; style != nil {
		if !heading && style.FontSize > 0 {
			classes = append(classes, fontSizeClass(style.FontSize))
		}
		if !heading && tag != "strong" && style.FontWeight > 0 {
			classes = append(classes, fontWeightClass(style.FontWeight))
		}
		switch style.TextAlignHorizontal {
		case "CENTER":
			classes = append(classes, "text-center")
		case "RIGHT":
			classes = append(classes, "text-right")
		case "JUSTIFIED":
			classes = append(classes, "text-justify")
		}
	}

	if fill := domain.FirstVisibleSolid(node.Fills); fill != nil {
		classes = append(classes, "text-"+g.colors.Quantize(*fill.Color))
	}

	return classes
}

// fontSizeClass picks the text scale class covering the font size.
func fontSizeClass(px float64) string {
	for _, bucket := range fontSizeBuckets {
		if px < bucket.maxPx {
			return bucket.class
		}
	}
	return "text-6xl"
}

// fontWeightClass rounds the numeric weight to the nearest hundred and maps
// it to a weight class.
func fontWeightClass(weight float64) string {
	rounded := int(weight+50) / 100 * 100
	if rounded < 100 {
		rounded = 100
	}
	if rounded > 900 {
		rounded = 900
	}
	return fontWeightClasses[rounded]
}

// alignClasses maps normalized alignment to items-* and justify-* classes.
// Cross-axis stretch and main-axis start are the flexbox defaults and emit
// nothing.
func alignClasses(alignment domain.AlignmentInfo) []string {
	var classes []string

	switch alignment.AlignItems {
	case domain.AlignCenter:
		classes = append(classes, "items-center")
	case domain.AlignEnd:
		classes = append(classes, "items-end")
	case domain.AlignBaseline:
		classes = append(classes, "items-baseline")
	case domain.AlignStart:
		classes = append(classes, "items-start")
	}

	switch alignment.JustifyContent {
	case domain.JustifyCenter:
		classes = append(classes, "justify-center")
	case domain.JustifyEnd:
		classes = append(classes, "justify-end")
	case domain.JustifySpaceBetween:
		classes = append(classes, "justify-between")
	case domain.JustifySpaceAround:
		classes = append(classes, "justify-around")
	case domain.JustifySpaceEvenly:
		classes = append(classes, "justify-evenly")
	}

	return classes
}

// Optimize deduplicates class tokens and drops empties, preserving first
// occurrence order. Idempotent: optimizing twice equals optimizing once.
func (g Generator) Optimize(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	result := make([]string, 0, len(classes))
	for _, class := range classes {
		if class == "" {
			continue
		}
		if _, dup := seen[class]; dup {
			continue
		}
		seen[class] = struct{}{}
		result = append(result, class)
	}
	return result
}
