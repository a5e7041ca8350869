package builder

import "strconv"

// === Link & Media Attributes ===

// Href sets the href attribute
func (b *ElementBuilder) Href(href string) *ElementBuilder {
	b.props["href"] = href
	return b
}

// Target sets the target attribute
func (b *ElementBuilder) Target(target string) *ElementBuilder {
	b.props["target"] = target
	return b
}

// Rel sets the rel attribute
func (b *ElementBuilder) Rel(rel string) *ElementBuilder {
	b.props["rel"] = rel
	return b
}

// External marks a link as opening in a new tab without a referrer
func (b *ElementBuilder) External() *ElementBuilder {
	return b.Target("_blank").Rel("noreferrer")
}

// Src sets the src attribute
func (b *ElementBuilder) Src(src string) *ElementBuilder {
	b.props["src"] = src
	return b
}

// Alt sets the alt attribute
func (b *ElementBuilder) Alt(alt string) *ElementBuilder {
	b.props["alt"] = alt
	return b
}

// Width sets the width attribute
func (b *ElementBuilder) Width(width string) *ElementBuilder {
	b.props["width"] = width
	return b
}

// Height sets the height attribute
func (b *ElementBuilder) Height(height string) *ElementBuilder {
	b.props["height"] = height
	return b
}

// Loading sets the loading attribute (lazy, eager)
func (b *ElementBuilder) Loading(loading string) *ElementBuilder {
	b.props["loading"] = loading
	return b
}

// === Document Attributes ===

// Name sets the name attribute
func (b *ElementBuilder) Name(name string) *ElementBuilder {
	b.props["name"] = name
	return b
}

// Property sets the property attribute (Open Graph meta tags)
func (b *ElementBuilder) Property(property string) *ElementBuilder {
	b.props["property"] = property
	return b
}

// Content sets the content attribute
func (b *ElementBuilder) Content(content string) *ElementBuilder {
	b.props["content"] = content
	return b
}

// Charset sets the charset attribute
func (b *ElementBuilder) Charset(charset string) *ElementBuilder {
	b.props["charset"] = charset
	return b
}

// Type sets the type attribute
func (b *ElementBuilder) Type(t string) *ElementBuilder {
	b.props["type"] = t
	return b
}

// Defer sets the defer attribute
func (b *ElementBuilder) Defer(d bool) *ElementBuilder {
	if d {
		b.props["defer"] = true
	}
	return b
}

// Disabled sets the disabled attribute
func (b *ElementBuilder) Disabled(disabled bool) *ElementBuilder {
	if disabled {
		b.props["disabled"] = true
	}
	return b
}

// === SVG Attributes ===

// ViewBox sets the viewBox attribute
func (b *ElementBuilder) ViewBox(box string) *ElementBuilder {
	b.props["viewBox"] = box
	return b
}

// Fill sets the fill attribute
func (b *ElementBuilder) Fill(fill string) *ElementBuilder {
	b.props["fill"] = fill
	return b
}

// Stroke sets the stroke attribute
func (b *ElementBuilder) Stroke(stroke string) *ElementBuilder {
	b.props["stroke"] = stroke
	return b
}

// Size sets both width and height to the same pixel value
func (b *ElementBuilder) Size(px int) *ElementBuilder {
	v := strconv.Itoa(px)
	return b.Width(v).Height(v)
}

// === Data Attributes ===

// Data sets a data attribute
func (b *ElementBuilder) Data(key, value string) *ElementBuilder {
	b.props["data-"+key] = value
	return b
}

// === Custom Attributes ===

// Attr sets a custom attribute
func (b *ElementBuilder) Attr(key string, value interface{}) *ElementBuilder {
	b.props[key] = value
	return b
}

// Attrs sets several string attributes at once
func (b *ElementBuilder) Attrs(attrs map[string]string) *ElementBuilder {
	for k, v := range attrs {
		b.props[k] = v
	}
	return b
}
