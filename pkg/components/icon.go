package components

import (
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// IconName identifies an icon in the built-in lucide set
type IconName string

// DefaultIconSize is the rendered width and height when IconProps.Size is 0
const DefaultIconSize = 24

// IconProps controls icon rendering
type IconProps struct {
	Size  int
	Class string
}

// shape is one SVG primitive of an icon
type shape struct {
	tag   string
	attrs map[string]string
}

func path(d string) shape { return shape{"path", map[string]string{"d": d}} }

func circle(cx, cy, r string) shape {
	return shape{"circle", map[string]string{"cx": cx, "cy": cy, "r": r}}
}

func polyline(points string) shape {
	return shape{"polyline", map[string]string{"points": points}}
}

func line(x1, x2, y1, y2 string) shape {
	return shape{"line", map[string]string{"x1": x1, "x2": x2, "y1": y1, "y2": y2}}
}

// Icon renders an inline SVG. Unknown names render the bare SVG frame.
func Icon(name IconName, props IconProps) *vdom.VNode {
	size := props.Size
	if size <= 0 {
		size = DefaultIconSize
	}

	svg := builder.Svg().
		Attr("xmlns", "http://www.w3.org/2000/svg").
		Size(size).
		ViewBox("0 0 24 24").
		Fill("none").
		Stroke("currentColor").
		Attr("stroke-width", "2").
		Attr("stroke-linecap", "round").
		Attr("stroke-linejoin", "round").
		Aria("hidden", "true").
		Class(Cn("lucide", "lucide-"+string(name), props.Class))

	for _, s := range iconShapes[name] {
		svg.Child(builder.El(s.tag).Attrs(s.attrs))
	}
	return svg.Build()
}
