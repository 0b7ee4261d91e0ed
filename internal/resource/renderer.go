// Package resource renders the static list of study resources.
package resource

import (
	"studyhub/internal/model"
	"studyhub/internal/view"
)

// Render fills the resources container of page with one card per
// resource, in order, and returns the number of cards. A page without the
// container is left untouched so the same code can run on every page.
func Render(page *view.Page, resources []model.Resource) int {
	container := page.Mount(view.ResourcesContainer)
	if container == nil {
		return 0
	}

	container.Clear()
	for _, r := range resources {
		container.Append(Card(r))
	}
	return len(resources)
}

// Card builds the link card for one resource
func Card(r model.Resource) *view.Element {
	title := view.NewElement("h3", "", "resource-title").Append(view.TextNode(r.Title))

	return view.NewElement("a", "", "resource-card").
		SetAttr("href", r.Link).
		SetAttr("target", "_blank").
		SetAttr("rel", "noopener noreferrer").
		Append(title)
}
