// ABOUTME: Tree builder walks a design node tree and assembles the HTML document
// ABOUTME: Orchestrates the layout parser, semantic mapper, and class generator per node

package builder

import (
	"fmt"
	"sort"
	"strings"

	"codegen-app-api/core/domain"
	"codegen-app-api/core/errors"
	"codegen-app-api/core/layout"
	"codegen-app-api/core/semantic"
	"codegen-app-api/core/tailwind"
	"codegen-app-api/pkg/utils/markup"
)

const indentUnit = "  "

// Config carries the engine settings the builder needs beyond the caller's
// generation options.
type Config struct {
	// MaxDepth is the recursion guard; deeper trees fail closed
	MaxDepth int

	// IncludeMetaTags emits viewport and description meta tags
	IncludeMetaTags bool

	// HueColorNames switches the color quantizer to the experimental
	// hue-bucketed naming
	HueColorNames bool
}

// Builder assembles an HTML document from a design node tree. It carries no
// state between Build calls; the leaves it orchestrates are stateless value
// types constructed here.
type Builder struct {
	parser  layout.Parser
	mapper  semantic.Mapper
	classes tailwind.Generator

	options      domain.GenerationOptions
	qualityScore int
	cfg          Config
}

// New creates a builder for one generation run.
func New(options domain.GenerationOptions, qualityScore int, cfg Config) *Builder {
	classes := tailwind.NewGenerator()
	if cfg.HueColorNames {
		classes = tailwind.NewGeneratorWithHueNames()
	}
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = 100
	}

	return &Builder{
		parser:       layout.NewParser(),
		mapper:       semantic.NewMapper(),
		classes:      classes,
		options:      options,
		qualityScore: qualityScore,
		cfg:          cfg,
	}
}

// Build emits the full HTML document for the tree rooted at node.
// The only error it returns is the depth guard; everything else in the walk
// is total.
func (b *Builder) Build(root *domain.DesignNode) (string, error) {
	var sb strings.Builder

	b.writeDocumentHead(&sb, root.Name)
	if err := b.writeNode(&sb, root, 1); err != nil {
		return "", err
	}
	b.writeDocumentFoot(&sb)

	return sb.String(), nil
}

// writeNode dispatches on the node kind. Unknown kinds are skipped silently
// and their subtrees are not visited; generation stays permissive about
// node types it does not understand.
func (b *Builder) writeNode(sb *strings.Builder, node *domain.DesignNode, depth int) error {
	if depth > b.cfg.MaxDepth {
		return &errors.DepthExceededError{MaxDepth: b.cfg.MaxDepth, NodeID: node.ID}
	}

	switch node.Type {
	case domain.NodeFrame, domain.NodeComponent, domain.NodeInstance:
		return b.writeContainer(sb, node, depth)
	case domain.NodeText:
		b.writeText(sb, node, depth)
	case domain.NodeRectangle, domain.NodeVector:
		b.writeShape(sb, node, depth)
	case domain.NodeGroup:
		return b.writeGroup(sb, node, depth)
	}
	return nil
}

// writeContainer emits a semantic container element with its layout,
// sizing, spacing, and color classes, then recurses into the children.
func (b *Builder) writeContainer(sb *strings.Builder, node *domain.DesignNode, depth int) error {
	tag := b.mapper.MapToTag(node.Name)
	info := b.parser.ParseLayout(node)

	var classes []string
	if b.parser.HasAutoLayout(node) {
		if b.useGridFor(node) {
			classes = append(classes, b.classes.GridClasses(len(node.Children), info, b.options.IncludeResponsive)...)
		} else {
			classes = append(classes, b.classes.FlexClasses(info)...)
		}
	}
	classes = append(classes, b.classes.SizingClasses(info.Sizing)...)
	classes = append(classes, b.classes.SpacingClasses(info.Spacing)...)
	classes = append(classes, b.classes.ColorClasses(node.Fills, node.Strokes, node.CornerRadius)...)
	classes = b.classes.Optimize(classes)

	indent := strings.Repeat(indentUnit, depth)
	if b.options.IncludeComments && node.Name != "" {
		fmt.Fprintf(sb, "%s<!-- %s -->\n", indent, strings.ReplaceAll(node.Name, "--", "-"))
	}

	attrs := b.mapper.A11yAttributes(tag, node.Name)
	fmt.Fprintf(sb, "%s<%s%s%s>\n", indent, tag, classAttribute(classes), attrString(attrs))

	for i := range node.Children {
		if err := b.writeNode(sb, &node.Children[i], depth+1); err != nil {
			return err
		}
	}

	fmt.Fprintf(sb, "%s</%s>\n", indent, tag)
	return nil
}

// writeText emits a leaf text element with escaped characters. Text nodes
// never recurse.
func (b *Builder) writeText(sb *strings.Builder, node *domain.DesignNode, depth int) {
	tag := b.mapper.MapTextToTag(node)
	classes := b.classes.Optimize(b.classes.TextClasses(node, tag))

	indent := strings.Repeat(indentUnit, depth)
	fmt.Fprintf(sb, "%s<%s%s>%s</%s>\n",
		indent, tag, classAttribute(classes), markup.EscapeText(node.Characters), tag)
}

// writeShape emits a styling-only div for rectangles and vectors, carrying
// the literal pixel dimensions of the bounding box. Shapes never recurse.
func (b *Builder) writeShape(sb *strings.Builder, node *domain.DesignNode, depth int) {
	classes := b.classes.ColorClasses(node.Fills, node.Strokes, node.CornerRadius)
	if box := node.AbsoluteBoundingBox; box != nil {
		classes = append(classes,
			fmt.Sprintf("w-[%dpx]", int(box.Width)),
			fmt.Sprintf("h-[%dpx]", int(box.Height)),
		)
	}
	classes = b.classes.Optimize(classes)

	indent := strings.Repeat(indentUnit, depth)
	fmt.Fprintf(sb, "%s<div%s></div>\n", indent, classAttribute(classes))
}

// writeGroup emits a bare positioning wrapper and recurses. Groups never
// carry Auto Layout, so the wrapper adds no layout classes of its own.
func (b *Builder) writeGroup(sb *strings.Builder, node *domain.DesignNode, depth int) error {
	indent := strings.Repeat(indentUnit, depth)
	fmt.Fprintf(sb, "%s<div class=\"relative\">\n", indent)

	for i := range node.Children {
		if err := b.writeNode(sb, &node.Children[i], depth+1); err != nil {
			return err
		}
	}

	fmt.Fprintf(sb, "%s</div>\n", indent)
	return nil
}

// useGridFor decides Flex vs Grid for a container: the caller must have
// asked for grid twice over (IncludeGrid and UseGrid) and the node must
// pass the conjunctive candidate gate.
func (b *Builder) useGridFor(node *domain.DesignNode) bool {
	return b.options.IncludeGrid &&
		b.options.UseGrid &&
		b.parser.IsGridCandidate(node, b.qualityScore)
}

// classAttribute renders the class attribute, or nothing for an empty list.
func classAttribute(classes []string) string {
	if len(classes) == 0 {
		return ""
	}
	return fmt.Sprintf(" class=%q", strings.Join(classes, " "))
}

// attrString renders extra attributes in a deterministic order: role first,
// aria-label second, anything else sorted by name.
func attrString(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if name != "role" && name != "aria-label" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	ordered := make([]string, 0, len(attrs))
	if _, ok := attrs["role"]; ok {
		ordered = append(ordered, "role")
	}
	if _, ok := attrs["aria-label"]; ok {
		ordered = append(ordered, "aria-label")
	}
	ordered = append(ordered, names...)

	var sb strings.Builder
	for _, name := range ordered {
		fmt.Fprintf(&sb, " %s=\"%s\"", name, markup.EscapeAttribute(attrs[name]))
	}
	return sb.String()
}
