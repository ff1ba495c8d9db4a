package detail

import (
	"fmt"

	"github.com/abokichi/storefront/models"
	"github.com/abokichi/storefront/surface"
)

// thumbnailCount is fixed at three copies of the product image until the
// catalog carries real multi-image sets.
const thumbnailCount = 3

// Gallery is the image gallery sub-state machine. Direct thumbnail
// clicks and arrow navigation track their indices independently:
// selecting a thumbnail moves the main image and highlight but not the
// arrow index, so a following Next advances from wherever the arrows
// last were. That mirrors the storefront behaviour exactly.
type Gallery struct {
	sources []string
	alt     string

	main   surface.Image
	thumbs []surface.Thumb

	active int
	arrow  int
}

func newGallery(p models.Product, main surface.Image, thumbs []surface.Thumb) *Gallery {
	g := &Gallery{
		sources: make([]string, thumbnailCount),
		alt:     p.Name,
		main:    main,
		thumbs:  thumbs,
	}
	for i := range g.sources {
		g.sources[i] = p.Image
	}

	if g.main != nil {
		g.main.SetImage(p.Image, p.Name)
	}
	for i, thumb := range g.thumbs {
		if i >= len(g.sources) {
			break
		}
		thumb.SetImage(g.sources[i], fmt.Sprintf("Thumbnail %d", i+1))
		thumb.SetActive(i == 0)
	}
	return g
}

// Len returns the thumbnail count.
func (g *Gallery) Len() int {
	return len(g.sources)
}

// ActiveIndex returns the highlighted thumbnail index.
func (g *Gallery) ActiveIndex() int {
	return g.active
}

// MainSource returns the asset currently shown as the main image.
func (g *Gallery) MainSource() string {
	return g.sources[g.active]
}

// Select handles a direct thumbnail click: main image and highlight move
// to the clicked thumbnail, the arrow-tracked index stays where it was.
func (g *Gallery) Select(index int) {
	if index < 0 || index >= len(g.sources) {
		return
	}
	g.apply(index)
}

// Next moves the arrow-tracked index forward with wraparound and resyncs
// the main image and highlight to it.
func (g *Gallery) Next() {
	g.arrow = (g.arrow + 1) % len(g.sources)
	g.apply(g.arrow)
}

// Prev moves the arrow-tracked index backward with wraparound and
// resyncs the main image and highlight to it.
func (g *Gallery) Prev() {
	g.arrow = (g.arrow - 1 + len(g.sources)) % len(g.sources)
	g.apply(g.arrow)
}

func (g *Gallery) apply(index int) {
	g.active = index
	if g.main != nil {
		g.main.SetImage(g.sources[index], g.alt)
	}
	for i, thumb := range g.thumbs {
		thumb.SetActive(i == index)
	}
}
