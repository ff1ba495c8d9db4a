package detail

import (
	"errors"
	"testing"
	"time"

	"github.com/abokichi/storefront/cart"
	"github.com/abokichi/storefront/catalog"
	"github.com/abokichi/storefront/kvstore"
	"github.com/abokichi/storefront/models"
	"github.com/abokichi/storefront/surface"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualScheduler struct {
	tasks []func()
}

func (m *manualScheduler) After(d time.Duration, fn func()) {
	m.tasks = append(m.tasks, fn)
}

func (m *manualScheduler) fire() {
	tasks := m.tasks
	m.tasks = nil
	for _, fn := range tasks {
		fn()
	}
}

type orderNav struct {
	visited []int
}

func (n *orderNav) GoToOrder(productID int) {
	n.visited = append(n.visited, productID)
}

func detailCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]models.Product{
		{
			ID:          1,
			Name:        "Chili Miso",
			Price:       decimal.NewFromInt(13),
			OldPrice:    decimal.NewFromInt(16),
			Rating:      4.7,
			Reviews:     128,
			Image:       "assets/img/chili-miso.png",
			Description: "Umami-rich chili miso condiment.",
		},
		{
			ID:    2,
			Name:  "Okazu Set",
			Price: decimal.NewFromInt(36),
			Image: "assets/img/okazu-set.png",
		},
	})
	require.NoError(t, err)
	return cat
}

func newTestComposer(t *testing.T) (*Composer, *cart.Store, *manualScheduler, *orderNav) {
	t.Helper()
	cartStore := cart.NewStore(kvstore.NewMemory())
	nav := &orderNav{}
	c := NewComposer(detailCatalog(t), cartStore, nav)
	sched := &manualScheduler{}
	c.Scheduler = sched
	c.Now = func() time.Time { return time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC) }
	c.NewReference = func() string { return "ref-test" }
	return c, cartStore, sched, nav
}

func fullSurfaces() (Surfaces, map[string]*surface.Label) {
	labels := map[string]*surface.Label{
		"breadcrumb": {}, "title": {}, "price": {}, "old": {},
		"stars": {}, "reviews": {}, "short": {}, "desc": {},
	}
	s := Surfaces{
		Breadcrumb:   labels["breadcrumb"],
		Title:        labels["title"],
		CurrentPrice: labels["price"],
		OldPrice:     labels["old"],
		Stars:        labels["stars"],
		Reviews:      labels["reviews"],
		ShortDesc:    labels["short"],
		Description:  labels["desc"],
		MainImage:    &surface.Picture{},
		Thumbnails:   []surface.Thumb{&surface.Picture{}, &surface.Picture{}, &surface.Picture{}},
		AddToCart:    &surface.PushButton{Label: "ADD TO CART", Opacity: 1},
	}
	return s, labels
}

func TestComposePopulatesSurfaces(t *testing.T) {
	c, _, _, _ := newTestComposer(t)
	s, labels := fullSurfaces()

	page, err := c.Compose(1, s)
	require.NoError(t, err)

	assert.Equal(t, "Chili Miso", labels["breadcrumb"].Text)
	assert.Equal(t, "Chili Miso", labels["title"].Text)
	assert.Equal(t, "$13.00", labels["price"].Text)
	assert.Equal(t, "$16.00", labels["old"].Text)
	assert.True(t, labels["old"].Visible)
	assert.Equal(t, "★★★★☆", labels["stars"].Text)
	assert.Equal(t, "128 Reviews", labels["reviews"].Text)
	assert.Equal(t, "Umami-rich chili miso condiment.", labels["short"].Text)
	assert.Contains(t, labels["desc"].Text, "Umami-rich chili miso condiment.")
	assert.Contains(t, labels["desc"].Text, "HEAT LEVEL: MILD-MEDIUM")
	assert.Equal(t, "assets/img/chili-miso.png", page.Gallery.MainSource())
}

func TestComposeOldPriceHiddenWhenAbsent(t *testing.T) {
	c, _, _, _ := newTestComposer(t)
	old := &surface.Label{Visible: true}

	_, err := c.Compose(2, Surfaces{OldPrice: old})
	require.NoError(t, err)
	assert.False(t, old.Visible)
}

func TestComposeShortDescriptionFallback(t *testing.T) {
	c, _, _, _ := newTestComposer(t)
	short := &surface.Label{}

	_, err := c.Compose(2, Surfaces{ShortDesc: short})
	require.NoError(t, err)
	assert.Equal(t, defaultShortDescription, short.Text)
}

func TestComposeToleratesMissingSurfaces(t *testing.T) {
	c, _, _, _ := newTestComposer(t)

	page, err := c.Compose(1, Surfaces{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Product.ID)
	assert.NotNil(t, page.Gallery)
	assert.Nil(t, page.Tabs)
}

func TestComposeResolutionFallback(t *testing.T) {
	c, _, _, _ := newTestComposer(t)

	page, err := c.Compose(0, Surfaces{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Product.ID, "absent id defaults to first product")

	page, err = c.Compose(99, Surfaces{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Product.ID, "miss falls back to first product")
}

func TestComposeEmptyCatalog(t *testing.T) {
	empty, err := catalog.New(nil)
	require.NoError(t, err)
	c := NewComposer(empty, cart.NewStore(kvstore.NewMemory()), nil)

	_, err = c.Compose(1, Surfaces{})
	assert.True(t, errors.Is(err, catalog.ErrNoProducts))
}

func TestGalleryThumbnailsAndArrows(t *testing.T) {
	c, _, _, _ := newTestComposer(t)
	main := &surface.Picture{}
	thumbs := []surface.Thumb{&surface.Picture{}, &surface.Picture{}, &surface.Picture{}}

	page, err := c.Compose(1, Surfaces{MainImage: main, Thumbnails: thumbs})
	require.NoError(t, err)
	g := page.Gallery

	require.Equal(t, 3, g.Len())
	assert.Equal(t, 0, g.ActiveIndex())
	assert.True(t, thumbs[0].(*surface.Picture).Active)

	g.Select(2)
	assert.Equal(t, 2, g.ActiveIndex())
	assert.True(t, thumbs[2].(*surface.Picture).Active)
	assert.False(t, thumbs[0].(*surface.Picture).Active)

	// The arrow index was untouched by the direct click, so Next moves
	// from 0 to 1, not from 2 to 0.
	g.Next()
	assert.Equal(t, 1, g.ActiveIndex())

	// Wraparound in both directions.
	g.Prev()
	assert.Equal(t, 0, g.ActiveIndex())
	g.Prev()
	assert.Equal(t, 2, g.ActiveIndex())
	g.Next()
	assert.Equal(t, 0, g.ActiveIndex())
}

func TestTabs(t *testing.T) {
	tabs := NewTabs(
		[]string{"description", "ingredients", "shipping"},
		[]string{"description", "ingredients"},
		"description",
	)

	assert.Equal(t, "description", tabs.ActiveTab())
	assert.Equal(t, "description", tabs.ActivePane())

	tabs.Activate("ingredients")
	assert.Equal(t, "ingredients", tabs.ActiveTab())
	assert.Equal(t, "ingredients", tabs.ActivePane())

	// A tab without a matching pane leaves all panes inactive.
	tabs.Activate("shipping")
	assert.Equal(t, "shipping", tabs.ActiveTab())
	assert.Empty(t, tabs.ActivePane())
}

func TestAddToCartFeedback(t *testing.T) {
	c, cartStore, sched, _ := newTestComposer(t)
	button := &surface.PushButton{Label: "ADD TO CART", Opacity: 1}

	page, err := c.Compose(1, Surfaces{AddToCart: button})
	require.NoError(t, err)

	page.AddToCart()
	assert.Equal(t, 1, cartStore.Count())
	assert.Equal(t, "ADDED TO CART!", button.Label)
	assert.Equal(t, 0.7, button.Opacity)

	// A second click before the revert fires schedules an independent
	// task; both resolve to the same final state.
	page.AddToCart()
	assert.Equal(t, 2, cartStore.Count())
	require.Len(t, sched.tasks, 2)

	sched.fire()
	assert.Equal(t, "ADD TO CART", button.Label)
	assert.Equal(t, 1.0, button.Opacity)
}

func TestBuyNowRecordsOrderAndNavigates(t *testing.T) {
	c, cartStore, _, nav := newTestComposer(t)

	page, err := c.Compose(2, Surfaces{})
	require.NoError(t, err)
	page.BuyNow()

	order, ok := cartStore.LastOrder()
	require.True(t, ok)
	assert.Equal(t, 2, order.ProductID)
	assert.Equal(t, "Okazu Set", order.ProductName)
	assert.Equal(t, "ref-test", order.Reference)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC), order.PlacedAt)

	assert.Equal(t, []int{2}, nav.visited)
}
