package components

import (
	ui "github.com/loke-dev/mdx-blog/pkg/components"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// TechItemIconSize is the icon size inside the bubble
const TechItemIconSize = 16

// TechItemProps describes one tool of the tech-stack grid
type TechItemProps struct {
	Icon        ui.IconName
	Name        string
	Description string
}

// TechItem renders an icon bubble with a name and a one-line description
func TechItem(props TechItemProps) *vdom.VNode {
	return builder.Div().
		Class("flex flex-col items-center text-center gap-1").
		Children(
			builder.Div().
				Class("bg-primary/10 rounded-full p-3 text-primary").
				Children(ui.Icon(props.Icon, ui.IconProps{Size: TechItemIconSize})).
				Build(),
			builder.P().Class("font-medium text-sm mt-2").Text(props.Name).Build(),
			builder.P().Class("text-xs text-muted-foreground").Text(props.Description).Build(),
		).Build()
}
