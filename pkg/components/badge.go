package components

import (
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// BadgeVariant defines the visual style of a badge
type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeOutline     BadgeVariant = "outline"
)

const badgeBase = "inline-flex items-center rounded-md border px-2.5 py-0.5 text-xs font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2"

var badgeVariants = map[BadgeVariant]string{
	BadgeDefault:     "border-transparent bg-primary text-primary-foreground shadow hover:bg-primary/80",
	BadgeSecondary:   "border-transparent bg-secondary text-secondary-foreground hover:bg-secondary/80",
	BadgeDestructive: "border-transparent bg-destructive text-destructive-foreground shadow hover:bg-destructive/80",
	BadgeOutline:     "text-foreground",
}

// BadgeProps defines the properties for the Badge component
type BadgeProps struct {
	Text    string
	Variant BadgeVariant
	Class   string
}

// Badge renders a small inline label
func Badge(props BadgeProps) *vdom.VNode {
	variant, ok := badgeVariants[props.Variant]
	if !ok {
		variant = badgeVariants[BadgeDefault]
	}

	return builder.Div().
		Class(Cn(badgeBase, variant, props.Class)).
		Text(props.Text).
		Build()
}
