package view

import (
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const mathJaxConfig = `window.MathJax = { tex: { inlineMath: [['\\(', '\\)']], displayMath: [['$$', '$$']] } };`

const mathJaxSrc = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"

// WriteHTML renders the page as a complete HTML document
func WriteHTML(w io.Writer, p *Page) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := newNode("html", html.Attribute{Key: "lang", Val: "fr"})
	head := newNode("head")
	head.AppendChild(newNode("meta", html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(newNode("meta",
		html.Attribute{Key: "name", Val: "viewport"},
		html.Attribute{Key: "content", Val: "width=device-width, initial-scale=1"}))

	title := newNode("title")
	title.AppendChild(&html.Node{Type: html.TextNode, Data: p.Title})
	head.AppendChild(title)

	cfg := newNode("script")
	cfg.AppendChild(&html.Node{Type: html.TextNode, Data: mathJaxConfig})
	head.AppendChild(cfg)
	head.AppendChild(newNode("script",
		html.Attribute{Key: "async"},
		html.Attribute{Key: "src", Val: mathJaxSrc}))

	body := newNode("body")
	if p.Root != nil {
		body.AppendChild(toNode(p.Root))
	}

	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)

	return html.Render(w, doc)
}

// RenderFragment renders a single element subtree
func RenderFragment(w io.Writer, e *Element) error {
	return html.Render(w, toNode(e))
}

// FragmentString renders e to a string, returning "" on failure
func FragmentString(e *Element) string {
	var sb strings.Builder
	if err := RenderFragment(&sb, e); err != nil {
		return ""
	}
	return sb.String()
}

func newNode(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func toNode(e *Element) *html.Node {
	if e.IsText() {
		return &html.Node{Type: html.TextNode, Data: e.Text}
	}

	n := newNode(e.Tag, attributes(e)...)
	if e.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.Text})
	}
	for _, c := range e.Children {
		n.AppendChild(toNode(c))
	}
	return n
}

func attributes(e *Element) []html.Attribute {
	var attrs []html.Attribute
	if e.ID != "" {
		attrs = append(attrs, html.Attribute{Key: "id", Val: e.ID})
	}
	if len(e.Classes) > 0 {
		attrs = append(attrs, html.Attribute{Key: "class", Val: strings.Join(e.Classes, " ")})
	}

	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, html.Attribute{Key: k, Val: e.Attrs[k]})
	}

	if e.Disabled {
		attrs = append(attrs, html.Attribute{Key: "disabled"})
	}
	if e.Hidden {
		attrs = append(attrs, html.Attribute{Key: "hidden"})
	}
	return attrs
}
