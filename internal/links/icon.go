package links

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var svgElements = []string{
	"svg", "g", "path", "circle", "ellipse", "rect", "line", "polyline", "polygon",
}

var iconPolicy = newIconPolicy()

// newIconPolicy allows inline SVG shapes with geometry and paint attributes only.
// Scripts, event handlers, links and styles are stripped.
func newIconPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(svgElements...)
	p.AllowNoAttrs().OnElements(svgElements...)
	p.AllowAttrs("xmlns", "viewbox", "width", "height", "preserveaspectratio").OnElements("svg")
	p.AllowAttrs("d").OnElements("path")
	p.AllowAttrs("cx", "cy", "r", "rx", "ry").OnElements("circle", "ellipse", "rect")
	p.AllowAttrs("x", "y", "width", "height").OnElements("rect")
	p.AllowAttrs("x1", "y1", "x2", "y2").OnElements("line")
	p.AllowAttrs("points").OnElements("polyline", "polygon")
	p.AllowAttrs(
		"fill", "fill-rule", "clip-rule", "stroke", "stroke-width",
		"stroke-linecap", "stroke-linejoin", "opacity", "transform",
	).OnElements(svgElements...)
	return p
}

// SanitizeIcon reduces icon markup to the SVG allow-list.
func SanitizeIcon(markup string) string {
	markup = strings.TrimSpace(markup)
	if markup == "" {
		return ""
	}
	return strings.TrimSpace(iconPolicy.Sanitize(markup))
}

// IconHTML sanitizes the icon again for rendering; stored values may predate the policy.
func (l Link) IconHTML() template.HTML {
	// bluemonday output is trusted because the policy allows no scripting surface.
	return template.HTML(SanitizeIcon(l.Icon))
}
