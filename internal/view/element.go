// Package view holds the display tree that widgets render into. Elements
// are plain descriptors; turning them into HTML happens in WriteHTML.
package view

import "slices"

// Element is one node of the display tree. An element with an empty Tag
// is a text node carrying only Text.
type Element struct {
	Tag      string            `json:"tag,omitempty"`
	ID       string            `json:"id,omitempty"`
	Classes  []string          `json:"classes,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Disabled bool              `json:"disabled,omitempty"`
	Hidden   bool              `json:"hidden,omitempty"`
	Children []*Element        `json:"children,omitempty"`
}

// NewElement creates an element with the given tag and id
func NewElement(tag, id string, classes ...string) *Element {
	return &Element{Tag: tag, ID: id, Classes: classes}
}

// TextNode creates a text node
func TextNode(text string) *Element {
	return &Element{Text: text}
}

// IsText reports whether e is a text node
func (e *Element) IsText() bool {
	return e.Tag == ""
}

// Append adds children and returns e
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Clear drops all children and text
func (e *Element) Clear() {
	e.Children = nil
	e.Text = ""
}

// SetAttr sets an attribute, allocating the map on first use
func (e *Element) SetAttr(key, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[key] = value
	return e
}

// AddClass adds class c if missing
func (e *Element) AddClass(c string) {
	if !e.HasClass(c) {
		e.Classes = append(e.Classes, c)
	}
}

// RemoveClass removes every occurrence of class c
func (e *Element) RemoveClass(c string) {
	e.Classes = slices.DeleteFunc(e.Classes, func(x string) bool { return x == c })
}

// HasClass reports whether e carries class c
func (e *Element) HasClass(c string) bool {
	return slices.Contains(e.Classes, c)
}

// Find returns the first element in the subtree rooted at e with the
// given id, searching depth-first, or nil.
func (e *Element) Find(id string) *Element {
	if e == nil || id == "" {
		return nil
	}
	if e.ID == id {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for e and every descendant in document order
func (e *Element) Walk(fn func(*Element)) {
	if e == nil {
		return
	}
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// TextContent concatenates the text of e and its descendants
func (e *Element) TextContent() string {
	var out []byte
	e.Walk(func(n *Element) {
		out = append(out, n.Text...)
	})
	return string(out)
}
