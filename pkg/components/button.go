package components

import (
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// ButtonVariant defines the visual style of the button
type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = "default"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonOutline     ButtonVariant = "outline"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonLink        ButtonVariant = "link"
)

// ButtonSize defines the size of the button
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSmall       ButtonSize = "sm"
	ButtonLarge       ButtonSize = "lg"
	ButtonIcon        ButtonSize = "icon"
)

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50 [&_svg]:pointer-events-none [&_svg]:size-4 [&_svg]:shrink-0"

var buttonVariants = map[ButtonVariant]string{
	ButtonDefault:     "bg-primary text-primary-foreground shadow hover:bg-primary/90",
	ButtonDestructive: "bg-destructive text-destructive-foreground shadow-sm hover:bg-destructive/90",
	ButtonOutline:     "border border-input bg-background shadow-sm hover:bg-accent hover:text-accent-foreground",
	ButtonSecondary:   "bg-secondary text-secondary-foreground shadow-sm hover:bg-secondary/80",
	ButtonGhost:       "hover:bg-accent hover:text-accent-foreground",
	ButtonLink:        "text-primary underline-offset-4 hover:underline",
}

var buttonSizes = map[ButtonSize]string{
	ButtonSizeDefault: "h-9 px-4 py-2",
	ButtonSmall:       "h-8 rounded-md px-3 text-xs",
	ButtonLarge:       "h-10 rounded-md px-8",
	ButtonIcon:        "h-9 w-9",
}

// ButtonProps defines the properties for the Button component
type ButtonProps struct {
	Variant  ButtonVariant
	Size     ButtonSize
	Class    string
	ID       string
	Disabled bool

	// Href renders the button as a link carrying the button styling
	Href string

	// External opens Href in a new tab without a referrer
	External bool

	Children []*vdom.VNode
}

// ButtonClass returns the class list for a variant and size.
// Unknown values fall back to the defaults.
func ButtonClass(variant ButtonVariant, size ButtonSize, extra string) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants[ButtonDefault]
	}
	s, ok := buttonSizes[size]
	if !ok {
		s = buttonSizes[ButtonSizeDefault]
	}
	return Cn(buttonBase, v, s, extra)
}

// Button creates a button, or a button-styled link when Href is set
func Button(props ButtonProps) *vdom.VNode {
	class := ButtonClass(props.Variant, props.Size, props.Class)

	var el *builder.ElementBuilder
	if props.Href != "" {
		el = builder.A().Href(props.Href)
		if props.External {
			el.External()
		}
	} else {
		el = builder.Button().Type("button").Disabled(props.Disabled)
	}

	el.Class(class)
	if props.ID != "" {
		el.ID(props.ID)
	}

	return el.Children(props.Children...).Build()
}
