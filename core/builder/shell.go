// ABOUTME: Document shell emission: doctype, head metadata, CDN script, breakpoint config
// ABOUTME: Breakpoint configuration is injected only when the caller supplied breakpoints

package builder

import (
	"fmt"
	"strings"

	"codegen-app-api/pkg/utils/markup"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

// writeDocumentHead emits everything before the root node: doctype, head
// with charset (plus viewport and description when meta tags are enabled),
// the framework CDN script, and the breakpoint configuration block.
func (b *Builder) writeDocumentHead(sb *strings.Builder, title string) {
	if title == "" {
		title = "Generated Page"
	}

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("  <meta charset=\"UTF-8\">\n")
	if b.cfg.IncludeMetaTags {
		sb.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
		sb.WriteString("  <meta name=\"description\" content=\"Generated from design file\">\n")
	}
	fmt.Fprintf(sb, "  <title>%s</title>\n", markup.EscapeText(title))
	fmt.Fprintf(sb, "  <script src=%q></script>\n", tailwindCDN)
	b.writeBreakpointConfig(sb)
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")
}

// writeBreakpointConfig emits the inline tailwind.config block mapping the
// four named breakpoints to screen widths. Skipped entirely when the caller
// supplied no breakpoints.
func (b *Builder) writeBreakpointConfig(sb *strings.Builder) {
	if b.options.Breakpoints == nil {
		return
	}

	bp := b.options.Breakpoints.WithDefaults()
	sb.WriteString("  <script>\n")
	sb.WriteString("    tailwind.config = {\n")
	sb.WriteString("      theme: {\n")
	sb.WriteString("        screens: {\n")
	fmt.Fprintf(sb, "          sm: '%dpx',\n", bp.Mobile)
	fmt.Fprintf(sb, "          md: '%dpx',\n", bp.Tablet)
	fmt.Fprintf(sb, "          lg: '%dpx',\n", bp.Desktop)
	fmt.Fprintf(sb, "          xl: '%dpx'\n", bp.Wide)
	sb.WriteString("        }\n")
	sb.WriteString("      }\n")
	sb.WriteString("    }\n")
	sb.WriteString("  </script>\n")
}

// writeDocumentFoot closes the body and document.
func (b *Builder) writeDocumentFoot(sb *strings.Builder) {
	sb.WriteString("</body>\n")
	sb.WriteString("</html>")
}
