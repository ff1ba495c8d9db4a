// Package detail composes the product detail page: field population,
// the gallery and tab sub-state machines, and the cart actions.
package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/abokichi/storefront/cart"
	"github.com/abokichi/storefront/catalog"
	"github.com/abokichi/storefront/models"
	"github.com/abokichi/storefront/surface"
	"github.com/abokichi/storefront/view"
	"github.com/google/uuid"
)

// Button labels and the feedback revert delay for the add-to-cart
// action.
const (
	addToCartLabel    = "ADD TO CART"
	addToCartFeedback = "ADDED TO CART!"
	feedbackDelay     = 2 * time.Second
	feedbackOpacity   = 0.7
)

// defaultShortDescription fills in when a product carries no description.
const defaultShortDescription = "Your new cooking BFF! You can add this to virtually everything. " +
	"Try it on rice, on meat or tofu, in your burger, ramen and pretty much anything."

// Static boilerplate appended to every full description block. It is
// product-independent in the current catalog.
var descriptionBoilerplate = []string{
	"Chili OKAZU is an umami-rich chili, miso, and sesame oil based condiment often eaten " +
		"with rice in Japan. It's also perfect for chicken, burgers, fish, eggs, potatoes, " +
		"and as a marinade or salad dressing.",
	"OKAZU gained popularity at farmers' markets in Toronto and has been featured in " +
		"various publications and won a \"Foodie Pick Awards.\"",
	"HEAT LEVEL: MILD-MEDIUM",
	"INGREDIENTS: SUNFLOWER OIL, SESAME OIL, GARLIC, MISO PASTE (ORGANIC SOYBEANS, RICE, " +
		"SALT), TAMARI SOY SAUCE (NON-GMO SOYBEANS, SALT, SUGAR), SUGAR, CHILI POWDER, " +
		"WHITE SESAME SEEDS.",
	"Allergen information: CHILI & SPICY OKAZU CONTAINS: SESAME, SOYBEANS. MAY CONTAIN: " +
		"MUSTARD. CURRY OKAZU CONTAINS: SESAME, SOYBEANS, MUSTARD.",
	"PRODUCT SEPARATION IS NORMAL. REFRIGERATE AFTER OPENING.",
}

// Navigator is invoked after a buy-now action.
type Navigator interface {
	GoToOrder(productID int)
}

// Scheduler runs a one-shot deferred callback. Production code uses
// time.AfterFunc; tests inject a manual implementation.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type timerScheduler struct{}

func (timerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Surfaces lists the mount points the composer populates. Any nil field
// makes the corresponding population a no-op.
type Surfaces struct {
	Breadcrumb   surface.Surface
	Title        surface.Surface
	CurrentPrice surface.Surface
	OldPrice     surface.Surface
	Stars        surface.Surface
	Reviews      surface.Surface
	ShortDesc    surface.Surface
	Description  surface.Surface
	MainImage    surface.Image
	Thumbnails   []surface.Thumb
	AddToCart    surface.Button

	// Tab layout supplied by the surrounding page: tab ids, pane ids,
	// and whichever tab carries the active marker.
	TabIDs    []string
	PaneIDs   []string
	ActiveTab string
}

// Composer resolves products and builds detail pages.
type Composer struct {
	catalog *catalog.Catalog
	cart    *cart.Store
	nav     Navigator

	// Overridable for tests.
	Scheduler    Scheduler
	Now          func() time.Time
	NewReference func() string
}

// NewComposer builds a detail-page composer. The navigator may be nil
// for headless use.
func NewComposer(cat *catalog.Catalog, cartStore *cart.Store, nav Navigator) *Composer {
	return &Composer{
		catalog:      cat,
		cart:         cartStore,
		nav:          nav,
		Scheduler:    timerScheduler{},
		Now:          time.Now,
		NewReference: uuid.NewString,
	}
}

// Page is one composed detail view with its interactive state.
type Page struct {
	Product models.Product
	Gallery *Gallery
	Tabs    *Tabs

	composer *Composer
	surfaces Surfaces
}

// Compose resolves the product (0 means no id was supplied) and
// populates every present surface. It fails only when the catalog is
// empty, in which case the caller redirects to the listing.
func (c *Composer) Compose(id int, s Surfaces) (*Page, error) {
	product, err := c.catalog.Resolve(id)
	if err != nil {
		return nil, err
	}

	setText(s.Breadcrumb, product.Name)
	setText(s.Title, product.Name)
	setText(s.CurrentPrice, "$"+product.Price.StringFixed(2))

	if s.OldPrice != nil {
		if product.HasOldPrice() {
			s.OldPrice.SetText("$" + product.OldPrice.StringFixed(2))
			s.OldPrice.Show()
		} else {
			s.OldPrice.Hide()
		}
	}

	setText(s.Stars, view.Stars(product.Rating))
	setText(s.Reviews, fmt.Sprintf("%d Reviews", product.Reviews))
	setText(s.ShortDesc, shortDescription(product))
	setText(s.Description, FullDescription(product))

	page := &Page{
		Product:  product,
		Gallery:  newGallery(product, s.MainImage, s.Thumbnails),
		composer: c,
		surfaces: s,
	}
	if len(s.TabIDs) > 0 {
		page.Tabs = NewTabs(s.TabIDs, s.PaneIDs, s.ActiveTab)
	}
	return page, nil
}

// AddToCart increments the cart counter and flashes the button label,
// reverting after a fixed delay. Repeat clicks schedule independent
// reverts; both set the same final state, so the race is harmless.
func (p *Page) AddToCart() {
	p.composer.cart.SetCount(p.composer.cart.Count() + 1)

	button := p.surfaces.AddToCart
	if button == nil {
		return
	}
	button.SetLabel(addToCartFeedback)
	button.SetOpacity(feedbackOpacity)
	p.composer.Scheduler.After(feedbackDelay, func() {
		button.SetLabel(addToCartLabel)
		button.SetOpacity(1)
	})
}

// BuyNow records the order, overwriting any previous one, and navigates
// to the confirmation view for this product.
func (p *Page) BuyNow() {
	p.composer.cart.RecordOrder(models.OrderRecord{
		ProductID:   p.Product.ID,
		ProductName: p.Product.Name,
		Reference:   p.composer.NewReference(),
		PlacedAt:    p.composer.Now(),
	})
	if p.composer.nav != nil {
		p.composer.nav.GoToOrder(p.Product.ID)
	}
}

// FullDescription composes the rich description block: the product's own
// description (or the promotional fallback) followed by the static
// marketing, ingredient, and allergen boilerplate.
func FullDescription(p models.Product) string {
	paragraphs := make([]string, 0, 1+len(descriptionBoilerplate))
	paragraphs = append(paragraphs, shortDescription(p))
	paragraphs = append(paragraphs, descriptionBoilerplate...)
	return strings.Join(paragraphs, "\n\n")
}

func shortDescription(p models.Product) string {
	if p.Description != "" {
		return p.Description
	}
	return defaultShortDescription
}

func setText(s surface.Surface, text string) {
	if s == nil {
		return
	}
	s.SetText(text)
}
