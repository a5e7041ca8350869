package components

import (
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// CardProps defines the properties shared by the card parts
type CardProps struct {
	Class    string
	ID       string
	Children []*vdom.VNode
}

func cardPart(tag, base string, props CardProps) *vdom.VNode {
	el := builder.El(tag).Class(Cn(base, props.Class))
	if props.ID != "" {
		el.ID(props.ID)
	}
	return el.Children(props.Children...).Build()
}

// Card is the outer bordered container
func Card(props CardProps) *vdom.VNode {
	return cardPart("div", "rounded-xl border bg-card text-card-foreground shadow", props)
}

// CardHeader stacks the icon, title and description
func CardHeader(props CardProps) *vdom.VNode {
	return cardPart("div", "flex flex-col space-y-1.5 p-6", props)
}

// CardTitle renders the card heading
func CardTitle(props CardProps) *vdom.VNode {
	return cardPart("div", "font-semibold leading-none tracking-tight", props)
}

// CardDescription renders the muted line under the title
func CardDescription(props CardProps) *vdom.VNode {
	return cardPart("div", "text-sm text-muted-foreground", props)
}

// CardContent renders the card body
func CardContent(props CardProps) *vdom.VNode {
	return cardPart("div", "p-6 pt-0", props)
}

// CardFooter renders a row of actions under the content
func CardFooter(props CardProps) *vdom.VNode {
	return cardPart("div", "flex items-center p-6 pt-0", props)
}

// TextCard is a shortcut for the common icon/title/description/body card
type TextCard struct {
	Icon        *vdom.VNode
	Title       string
	Description string
	Body        string
	Class       string
}

// Render builds the card tree
func (c TextCard) Render() *vdom.VNode {
	return Card(CardProps{
		Class: c.Class,
		Children: []*vdom.VNode{
			CardHeader(CardProps{Children: []*vdom.VNode{
				c.Icon,
				CardTitle(CardProps{Children: []*vdom.VNode{vdom.NewText(c.Title)}}),
				CardDescription(CardProps{Children: []*vdom.VNode{vdom.NewText(c.Description)}}),
			}}),
			CardContent(CardProps{Children: []*vdom.VNode{vdom.NewText(c.Body)}}),
		},
	})
}

// CardGridProps lays out pre-built cards
type CardGridProps struct {
	Cards []*vdom.VNode
	Class string
}

// CardGrid creates a responsive grid of cards
func CardGrid(props CardGridProps) *vdom.VNode {
	return builder.Div().
		Class(Cn("grid", props.Class)).
		Children(props.Cards...).
		Build()
}
