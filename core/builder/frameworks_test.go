package builder

import (
	"strings"
	"testing"

	"codegen-app-api/core/domain"
)

func TestMinify(t *testing.T) {
	html := "<!DOCTYPE html>\n<html>\n  <body>\n    <p>x</p>\n  </body>\n</html>"
	want := "<!DOCTYPE html><html><body><p>x</p></body></html>"

	if got := Minify(html); got != want {
		t.Errorf("Minify() = %q, want %q", got, want)
	}
}

func TestBodyContent(t *testing.T) {
	html := buildHTML(t, &domain.DesignNode{ID: "1:1", Name: "Root", Type: domain.NodeFrame}, domain.DefaultOptions(), 90)

	body := BodyContent(html)
	if strings.Contains(body, "<head>") || strings.Contains(body, "<!DOCTYPE") {
		t.Errorf("BodyContent() leaked document shell:\n%s", body)
	}
	if !strings.Contains(body, "<div") {
		t.Errorf("BodyContent() dropped the root element:\n%s", body)
	}

	// No body tags: passthrough
	if got := BodyContent("<p>x</p>"); got != "<p>x</p>" {
		t.Errorf("BodyContent(no body) = %q, want passthrough", got)
	}
}

func TestWrapReactComponent(t *testing.T) {
	node := &domain.DesignNode{
		ID:         "1:1",
		Name:       "hero section",
		Type:       domain.NodeFrame,
		LayoutMode: domain.LayoutModeVertical,
	}
	options := domain.DefaultOptions()
	options.IncludeComments = true
	html := buildHTML(t, node, options, 90)

	jsx := WrapReactComponent("HeroSection", html)

	if !strings.Contains(jsx, "export default function HeroSection() {") {
		t.Errorf("missing component declaration:\n%s", jsx)
	}
	if !strings.Contains(jsx, `className="flex flex-col"`) {
		t.Errorf("class attribute not converted to className:\n%s", jsx)
	}
	if strings.Contains(jsx, ` class="`) {
		t.Error("raw class attribute survived conversion")
	}
	if !strings.Contains(jsx, "{/* hero section */}") {
		t.Errorf("HTML comment not converted to JSX comment:\n%s", jsx)
	}
	if !strings.Contains(jsx, "<>") || !strings.Contains(jsx, "</>") {
		t.Error("fragment wrapper missing")
	}
}

func TestWrapVueComponent(t *testing.T) {
	node := &domain.DesignNode{ID: "1:1", Name: "Root", Type: domain.NodeFrame, LayoutMode: domain.LayoutModeVertical}
	html := buildHTML(t, node, domain.DefaultOptions(), 90)

	sfc := WrapVueComponent("RootView", html)

	if !strings.HasPrefix(sfc, "<template>\n") {
		t.Errorf("SFC does not start with template block:\n%s", sfc)
	}
	if !strings.Contains(sfc, "</template>") {
		t.Error("template block not closed")
	}
	if !strings.Contains(sfc, "<script setup>") {
		t.Error("script setup block missing")
	}
	if !strings.Contains(sfc, `class="flex flex-col"`) {
		t.Errorf("Vue output should keep class attributes:\n%s", sfc)
	}
}
