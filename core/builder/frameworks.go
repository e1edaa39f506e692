// ABOUTME: Output post-processing: minification and component wrapping for JSX/SFC targets
// ABOUTME: All three frameworks share the HTML emission core; wrappers reshape the body only

package builder

import (
	"fmt"
	"strings"
)

// Minify collapses the pretty document into a single line by stripping
// per-line indentation and joining. Metadata is always computed before
// minification, so scoring is unaffected.
func Minify(html string) string {
	lines := strings.Split(html, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "")
}

// BodyContent extracts the markup between the body tags of an emitted
// document. Returns the document unchanged when no body is present.
func BodyContent(html string) string {
	start := strings.Index(html, "<body>\n")
	end := strings.LastIndex(html, "\n</body>")
	if start < 0 || end < 0 || end <= start {
		return html
	}
	return html[start+len("<body>\n") : end]
}

// WrapReactComponent reshapes the document body into a JSX function
// component: class attributes become className and HTML comments become JSX
// comment blocks.
func WrapReactComponent(componentName, html string) string {
	body := BodyContent(html)
	body = strings.ReplaceAll(body, " class=\"", " className=\"")
	body = strings.ReplaceAll(body, "<!--", "{/*")
	body = strings.ReplaceAll(body, "-->", "*/}")
	body = reindent(body, "      ")

	var sb strings.Builder
	fmt.Fprintf(&sb, "export default function %s() {\n", componentName)
	sb.WriteString("  return (\n")
	sb.WriteString("    <>\n")
	sb.WriteString(body)
	sb.WriteString("    </>\n")
	sb.WriteString("  );\n")
	sb.WriteString("}\n")
	return sb.String()
}

// WrapVueComponent reshapes the document body into a single-file component
// template block.
func WrapVueComponent(componentName, html string) string {
	body := reindent(BodyContent(html), "  ")

	var sb strings.Builder
	sb.WriteString("<template>\n")
	sb.WriteString(body)
	sb.WriteString("</template>\n")
	sb.WriteString("\n")
	sb.WriteString("<script setup>\n")
	fmt.Fprintf(&sb, "// %s\n", componentName)
	sb.WriteString("</script>\n")
	return sb.String()
}

// reindent shifts every non-empty line by the given prefix, preserving the
// body's own nesting. Body content starts one level deep, so one unit is
// stripped first.
func reindent(body, prefix string) string {
	lines := strings.Split(body, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(strings.TrimPrefix(line, indentUnit))
		sb.WriteString("\n")
	}
	return sb.String()
}
