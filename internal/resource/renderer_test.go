package resource

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/model"
	"studyhub/internal/view"
)

func TestRenderProducesOneCardPerResource(t *testing.T) {
	for _, n := range []int{0, 1, 3, 12} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			resources := make([]model.Resource, n)
			for i := range resources {
				resources[i] = model.Resource{
					Title: fmt.Sprintf("R%d", i),
					Link:  fmt.Sprintf("https://example.com/%d", i),
				}
			}

			page := view.NewResourcesPage()
			require.Equal(t, n, Render(page, resources))

			cards := page.Mount(view.ResourcesContainer).Children
			require.Len(t, cards, n)
			for i, c := range cards {
				assert.Equal(t, "a", c.Tag)
				assert.Equal(t, resources[i].Link, c.Attrs["href"])
				assert.Equal(t, "_blank", c.Attrs["target"])
				assert.Equal(t, resources[i].Title, c.TextContent())
			}
		})
	}
}

func TestRenderReplacesPreviousCards(t *testing.T) {
	page := view.NewResourcesPage()
	Render(page, Defaults)
	Render(page, Defaults[:2])

	assert.Len(t, page.Mount(view.ResourcesContainer).Children, 2)
}

func TestRenderWithoutContainerIsNoop(t *testing.T) {
	page := view.NewQuizPage()
	before := view.FragmentString(page.Root)

	assert.Equal(t, 0, Render(page, Defaults))
	assert.Equal(t, before, view.FragmentString(page.Root))
}

func TestCardHTML(t *testing.T) {
	got := view.FragmentString(Card(model.Resource{Title: "Livres", Link: "https://x.test/a?b=1&c=2"}))
	assert.Equal(t,
		`<a class="resource-card" href="https://x.test/a?b=1&amp;c=2" rel="noopener noreferrer" target="_blank"><h3 class="resource-title">Livres</h3></a>`,
		got)
}
