// ABOUTME: Normalized layout model derived from a container node's Auto Layout fields
// ABOUTME: Produced once per container by the layout parser and consumed by class generation

package domain

// Direction is the normalized flow direction of a container.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// AlignItems is the normalized cross-axis alignment of a container.
type AlignItems string

const (
	AlignStart    AlignItems = "start"
	AlignCenter   AlignItems = "center"
	AlignEnd      AlignItems = "end"
	AlignBaseline AlignItems = "baseline"
	AlignStretch  AlignItems = "stretch"
)

// JustifyContent is the normalized main-axis distribution of a container.
type JustifyContent string

const (
	JustifyStart        JustifyContent = "start"
	JustifyCenter       JustifyContent = "center"
	JustifyEnd          JustifyContent = "end"
	JustifySpaceBetween JustifyContent = "space-between"
	JustifySpaceAround  JustifyContent = "space-around"
	JustifySpaceEvenly  JustifyContent = "space-evenly"
)

// SpacingInfo holds the gap and padding of a container in whole pixels.
type SpacingInfo struct {
	Gap           int
	PaddingTop    int
	PaddingRight  int
	PaddingBottom int
	PaddingLeft   int
}

// Uniform reports whether all four padding values are equal.
func (s SpacingInfo) Uniform() bool {
	return s.PaddingTop == s.PaddingBottom &&
		s.PaddingRight == s.PaddingLeft &&
		s.PaddingTop == s.PaddingRight
}

// Symmetric reports whether padding collapses to a vertical and a
// horizontal pair.
func (s SpacingInfo) Symmetric() bool {
	return s.PaddingTop == s.PaddingBottom && s.PaddingLeft == s.PaddingRight
}

// SizingInfo holds the per-axis sizing mode of a node. The value fields are
// populated only when the corresponding mode is SizingFixed and the node
// carried a bounding box.
type SizingInfo struct {
	Width       SizingMode
	Height      SizingMode
	WidthValue  float64
	HeightValue float64
	HasWidth    bool
	HasHeight   bool
}

// AlignmentInfo holds the normalized alignment of a container.
type AlignmentInfo struct {
	AlignItems     AlignItems
	JustifyContent JustifyContent
}

// LayoutInfo is the complete normalized layout of one container node.
// It is immutable once derived; class generation reads it, nothing writes it.
type LayoutInfo struct {
	Direction Direction
	Wrap      bool
	Spacing   SpacingInfo
	Sizing    SizingInfo
	Alignment AlignmentInfo
}
