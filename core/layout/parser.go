// ABOUTME: Layout parser derives normalized layout info from a node's Auto Layout fields
// ABOUTME: Pure functions over a DesignNode; no I/O, no mutation, no cross-call state

package layout

import (
	"math"

	"codegen-app-api/core/domain"
)

// GridCandidateMinChildren is the minimum child count for grid eligibility.
const GridCandidateMinChildren = 3

// GridCandidateScore is the quality score required for grid eligibility.
// Grid emission is reserved for the highest-quality, explicitly-wrapping inputs.
const GridCandidateScore = 100

// Parser derives layout facts from design nodes. It is a cheap value type;
// construct one wherever needed rather than sharing an instance.
type Parser struct{}

// NewParser creates a layout parser.
func NewParser() Parser {
	return Parser{}
}

// HasAutoLayout reports whether the node flows its children with Auto Layout.
func (Parser) HasAutoLayout(node *domain.DesignNode) bool {
	return node.LayoutMode != "" && node.LayoutMode != domain.LayoutModeNone
}

// HasAbsolutePositioning reports whether the node positions children
// absolutely. A bounding box without Auto Layout signals children that
// overlap or overflow instead of flowing.
func (p Parser) HasAbsolutePositioning(node *domain.DesignNode) bool {
	return !p.HasAutoLayout(node) && node.AbsoluteBoundingBox != nil
}

// HasFixedSize reports whether either axis of the node is fixed-size.
func (Parser) HasFixedSize(node *domain.DesignNode) bool {
	return node.PrimaryAxisSizingMode == domain.SizingFixed ||
		node.CounterAxisSizingMode == domain.SizingFixed
}

// HasWrapDisabled reports whether the node uses Auto Layout with wrapping
// explicitly turned off.
func (p Parser) HasWrapDisabled(node *domain.DesignNode) bool {
	return p.HasAutoLayout(node) && node.LayoutWrap == domain.WrapDisabled
}

// IsGridCandidate reports whether the node qualifies for CSS Grid output.
// All four conditions are required; this is a conjunctive gate, not a score.
func (p Parser) IsGridCandidate(node *domain.DesignNode, qualityScore int) bool {
	return qualityScore == GridCandidateScore &&
		len(node.Children) >= GridCandidateMinChildren &&
		p.HasAutoLayout(node) &&
		node.LayoutWrap == domain.WrapEnabled
}

// ParseLayout derives the normalized LayoutInfo for a container node.
// Absent fields take conservative defaults: zero gap and padding, Fixed
// sizing (a container with no explicit sizing is treated as non-flexible).
func (p Parser) ParseLayout(node *domain.DesignNode) domain.LayoutInfo {
	direction := domain.DirectionVertical
	if node.LayoutMode == domain.LayoutModeHorizontal {
		direction = domain.DirectionHorizontal
	}

	return domain.LayoutInfo{
		Direction: direction,
		Wrap:      node.LayoutWrap == domain.WrapEnabled,
		Spacing: domain.SpacingInfo{
			Gap:           pxInt(node.ItemSpacing),
			PaddingTop:    pxInt(node.PaddingTop),
			PaddingRight:  pxInt(node.PaddingRight),
			PaddingBottom: pxInt(node.PaddingBottom),
			PaddingLeft:   pxInt(node.PaddingLeft),
		},
		Sizing: p.parseSizing(node),
		Alignment: domain.AlignmentInfo{
			AlignItems:     mapAlignItems(node.CounterAxisAlignItems),
			JustifyContent: mapJustifyContent(node.PrimaryAxisAlignItems),
		},
	}
}

// parseSizing maps the per-axis sizing modes, capturing pixel values from the
// bounding box only for Fixed axes. The primary axis follows the layout
// direction: horizontal flow sizes width on the primary axis.
func (Parser) parseSizing(node *domain.DesignNode) domain.SizingInfo {
	widthMode := node.CounterAxisSizingMode
	heightMode := node.PrimaryAxisSizingMode
	if node.LayoutMode == domain.LayoutModeHorizontal {
		widthMode, heightMode = heightMode, widthMode
	}
	if widthMode == "" {
		widthMode = domain.SizingFixed
	}
	if heightMode == "" {
		heightMode = domain.SizingFixed
	}

	sizing := domain.SizingInfo{
		Width:  widthMode,
		Height: heightMode,
	}

	if box := node.AbsoluteBoundingBox; box != nil {
		if widthMode == domain.SizingFixed {
			sizing.WidthValue = box.Width
			sizing.HasWidth = true
		}
		if heightMode == domain.SizingFixed {
			sizing.HeightValue = box.Height
			sizing.HasHeight = true
		}
	}

	return sizing
}

// mapAlignItems maps raw cross-axis alignment to the normalized enum.
// Inherit and absent values behave as Stretch, the design tool's effective
// default.
func mapAlignItems(align domain.AxisAlign) domain.AlignItems {
	switch align {
	case domain.AxisAlignMin:
		return domain.AlignStart
	case domain.AxisAlignCenter:
		return domain.AlignCenter
	case domain.AxisAlignMax:
		return domain.AlignEnd
	}
	return domain.AlignStretch
}

// mapJustifyContent maps raw main-axis alignment to the normalized enum.
// Stretch maps to SpaceBetween because stretch is not a valid justify value;
// Inherit maps to Start.
func mapJustifyContent(align domain.AxisAlign) domain.JustifyContent {
	switch align {
	case domain.AxisAlignMin, domain.AxisAlignInherit:
		return domain.JustifyStart
	case domain.AxisAlignCenter:
		return domain.JustifyCenter
	case domain.AxisAlignMax:
		return domain.JustifyEnd
	case domain.AxisAlignSpaceBetween, domain.AxisAlignStretch:
		return domain.JustifySpaceBetween
	}
	return domain.JustifyStart
}

// pxInt rounds a pixel value to a non-negative whole number.
func pxInt(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
