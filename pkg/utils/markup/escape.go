// ABOUTME: HTML escaping utilities for generated markup
// ABOUTME: Escapes text and attribute values exactly once, never double-escaping

package markup

import (
	"strings"
)

// escaper replaces the five HTML-significant characters in a single pass,
// so already-escaped entities are never escaped again. The replacement set
// is fixed by the generation contract (&quot; and &#39;, not &#34;/&apos;),
// which is why this does not use html.EscapeString.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeText escapes a text node's characters for safe HTML emission.
func EscapeText(text string) string {
	return escaper.Replace(text)
}

// EscapeAttribute escapes an attribute value for emission inside double
// quotes.
func EscapeAttribute(value string) string {
	return escaper.Replace(value)
}
