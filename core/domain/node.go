// ABOUTME: DesignNode domain model represents a node in an imported design-tool tree
// ABOUTME: Mirrors the design tool's REST shape so trees decode directly from JSON

package domain

// NodeKind identifies the type of a design node.
type NodeKind string

// Node kinds observed in imported design trees. Unrecognized kinds decode
// fine and are skipped during generation.
const (
	NodeFrame     NodeKind = "FRAME"
	NodeComponent NodeKind = "COMPONENT"
	NodeInstance  NodeKind = "INSTANCE"
	NodeGroup     NodeKind = "GROUP"
	NodeText      NodeKind = "TEXT"
	NodeRectangle NodeKind = "RECTANGLE"
	NodeVector    NodeKind = "VECTOR"
)

// LayoutMode is the Auto Layout flow direction of a container node.
type LayoutMode string

const (
	LayoutModeNone       LayoutMode = "NONE"
	LayoutModeHorizontal LayoutMode = "HORIZONTAL"
	LayoutModeVertical   LayoutMode = "VERTICAL"
)

// LayoutWrap controls whether Auto Layout children wrap onto new lines.
type LayoutWrap string

const (
	WrapDisabled LayoutWrap = "NO_WRAP"
	WrapEnabled  LayoutWrap = "WRAP"
)

// SizingMode is the per-axis sizing behavior of a node.
type SizingMode string

const (
	SizingFixed SizingMode = "FIXED"
	SizingHug   SizingMode = "HUG"
	SizingFill  SizingMode = "FILL"
)

// AxisAlign is a raw alignment value as exported by the design tool.
type AxisAlign string

const (
	AxisAlignMin     AxisAlign = "MIN"
	AxisAlignCenter  AxisAlign = "CENTER"
	AxisAlignMax     AxisAlign = "MAX"
	AxisAlignStretch AxisAlign = "STRETCH"
	AxisAlignInherit AxisAlign = "INHERIT"
	// SPACE_BETWEEN appears on the primary axis when the designer picked
	// "auto" spacing between items.
	AxisAlignSpaceBetween AxisAlign = "SPACE_BETWEEN"
)

// DesignNode is a single element in the imported design tree.
// The JSON tags match the design tool's file API so a fetched document
// subtree unmarshals directly into this type.
type DesignNode struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     NodeKind     `json:"type"`
	Children []DesignNode `json:"children,omitempty"`

	// Auto Layout fields, present on layout-bearing kinds
	LayoutMode            LayoutMode `json:"layoutMode,omitempty"`
	LayoutWrap            LayoutWrap `json:"layoutWrap,omitempty"`
	ItemSpacing           float64    `json:"itemSpacing,omitempty"`
	PaddingTop            float64    `json:"paddingTop,omitempty"`
	PaddingRight          float64    `json:"paddingRight,omitempty"`
	PaddingBottom         float64    `json:"paddingBottom,omitempty"`
	PaddingLeft           float64    `json:"paddingLeft,omitempty"`
	PrimaryAxisSizingMode SizingMode `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode SizingMode `json:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems AxisAlign  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems AxisAlign  `json:"counterAxisAlignItems,omitempty"`

	// Geometry and styling
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Fills               []Paint      `json:"fills,omitempty"`
	Strokes             []Paint      `json:"strokes,omitempty"`
	CornerRadius        float64      `json:"cornerRadius,omitempty"`

	// Text-only fields
	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`
}

// BoundingBox is the absolute position and size of a node on the canvas.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Paint is a fill or stroke applied to a node.
type Paint struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Color   *Color  `json:"color,omitempty"`
}

// PaintSolid is the only paint type the generator styles from; gradients and
// images fall through without emitting color classes.
const PaintSolid = "SOLID"

// IsVisible reports whether the paint should be rendered. The design tool
// omits the visible flag for visible paints.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Color is an RGBA color with channels in the 0..1 range.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// TypeStyle holds the text styling properties of a text node.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
}

// FirstVisibleSolid returns the first visible solid paint in the list,
// or nil when none qualifies.
func FirstVisibleSolid(paints []Paint) *Paint {
	for i := range paints {
		if paints[i].Type == PaintSolid && paints[i].IsVisible() && paints[i].Color != nil {
			return &paints[i]
		}
	}
	return nil
}
