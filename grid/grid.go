// Package grid renders the catalog listing: one card per product, a
// positional click binding per card, the aggregate count display, and
// the grid/list view toggle.
package grid

import (
	"fmt"

	"github.com/abokichi/storefront/models"
	"github.com/abokichi/storefront/surface"
	"github.com/abokichi/storefront/view"
)

// Empty-state messages. The two states are deliberately distinguishable:
// one means the catalog never arrived, the other that filters excluded
// everything.
const (
	MsgNoProducts = "No products available."
	MsgNoMatches  = "No products match your filters. Try adjusting your selection."
)

// Navigator is invoked when a card is clicked.
type Navigator interface {
	GoToDetail(productID int)
}

// Card is the display form of one product.
type Card struct {
	ProductID int
	Image     string
	Name      string
	Price     string
	OldPrice  string
	Stars     string
	Reviews   int
}

// NewCard builds the display card for a product.
func NewCard(p models.Product) Card {
	card := Card{
		ProductID: p.ID,
		Image:     p.Image,
		Name:      p.Name,
		Price:     "$" + p.Price.StringFixed(2),
		Stars:     view.Stars(p.Rating),
		Reviews:   p.Reviews,
	}
	if p.HasOldPrice() {
		card.OldPrice = "$" + p.OldPrice.StringFixed(2)
	}
	return card
}

// State describes what the grid currently shows.
type State int

// Grid states.
const (
	StateProducts State = iota
	StateNoProducts
	StateNoMatches
)

// ViewMode selects presentation density. It never re-runs the pipeline.
type ViewMode string

// Supported view modes.
const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Columns returns the column count for the mode: single column for the
// list view, the fixed 4-column grid for everything else.
func (m ViewMode) Columns() int {
	if m == ViewList {
		return 1
	}
	return 4
}

// Listing owns the catalog listing view state. Every control change
// re-runs the filter/sort pipeline and re-renders, rebinding the card
// click handlers against the then-current sequence.
type Listing struct {
	source []models.Product
	sel    view.Selection
	mode   view.SortMode
	vmode  ViewMode

	count surface.Surface
	nav   Navigator

	cards   []Card
	state   State
	message string
}

// NewListing builds a listing over the product source. A nil source
// means the catalog never arrived and renders the no-products state.
// The count surface and navigator may be nil.
func NewListing(source []models.Product, count surface.Surface, nav Navigator) *Listing {
	l := &Listing{
		source: source,
		mode:   view.SortAlphabetical,
		vmode:  ViewGrid,
		count:  count,
		nav:    nav,
	}
	l.render()
	return l
}

// OnFilterChange applies a new facet selection and re-renders.
func (l *Listing) OnFilterChange(sel view.Selection) {
	l.sel = sel
	l.render()
}

// OnSortChange applies a new sort control value and re-renders.
func (l *Listing) OnSortChange(raw string) {
	l.mode = view.ParseSortMode(raw)
	l.render()
}

// OnViewChange activates a view button. Only presentation density
// changes; the rendered sequence stays as it is.
func (l *Listing) OnViewChange(mode ViewMode) {
	l.vmode = mode
}

// Click navigates to the detail view of the card at the given position
// in the current rendered sequence. Out-of-range positions are ignored.
func (l *Listing) Click(index int) {
	if index < 0 || index >= len(l.cards) || l.nav == nil {
		return
	}
	l.nav.GoToDetail(l.cards[index].ProductID)
}

// Cards returns the currently rendered cards.
func (l *Listing) Cards() []Card {
	return l.cards
}

// State returns what the grid currently shows.
func (l *Listing) State() State {
	return l.state
}

// Message returns the empty-state message, if any.
func (l *Listing) Message() string {
	return l.message
}

// ViewMode returns the active view mode.
func (l *Listing) ViewMode() ViewMode {
	return l.vmode
}

// Columns returns the column count of the active view mode.
func (l *Listing) Columns() int {
	return l.vmode.Columns()
}

func (l *Listing) render() {
	if l.source == nil {
		l.cards = nil
		l.state = StateNoProducts
		l.message = MsgNoProducts
		return
	}

	items := view.Compute(l.source, l.sel, l.mode)

	if l.count != nil {
		l.count.SetText(fmt.Sprintf("Products (%d)", len(items)))
	}

	if len(items) == 0 {
		l.cards = nil
		l.state = StateNoMatches
		l.message = MsgNoMatches
		return
	}

	cards := make([]Card, len(items))
	for i, p := range items {
		cards[i] = NewCard(p)
	}
	l.cards = cards
	l.state = StateProducts
	l.message = ""
}
