// Package web serves the storefront pages over HTTP, rendering the same
// view models the headless composers produce.
package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/abokichi/storefront/cart"
	"github.com/abokichi/storefront/catalog"
	"github.com/abokichi/storefront/confirm"
	"github.com/abokichi/storefront/detail"
	"github.com/abokichi/storefront/grid"
	"github.com/abokichi/storefront/surface"
	"github.com/abokichi/storefront/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server renders the storefront pages.
type Server struct {
	catalog  *catalog.Catalog
	cart     *cart.Store
	metrics  *Metrics
	composer *detail.Composer
	tmpl     *template.Template
	router   chi.Router
}

// NewServer wires the page routes over the given catalog and cart store.
// Metrics may be nil.
func NewServer(cat *catalog.Catalog, cartStore *cart.Store, metrics *Metrics) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		catalog:  cat,
		cart:     cartStore,
		metrics:  metrics,
		composer: detail.NewComposer(cat, cartStore, nil),
		tmpl:     tmpl,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleHome)
	r.Get("/products", s.handleProducts)
	r.Get("/product", s.handleProduct)
	r.Post("/cart/add", s.handleCartAdd)
	r.Post("/buy", s.handleBuy)
	r.Get("/order", s.handleOrder)
	s.router = r

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type layoutData struct {
	Title     string
	CartCount int
}

func (s *Server) layout(title string) layoutData {
	return layoutData{Title: title, CartCount: s.cart.Count()}
}

type homeData struct {
	layoutData
	Cards []grid.Card
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.metrics.IncPageView("home")

	// The curated grid never carries a sort control, so the layout
	// arrangement applies instead of sorting.
	items := view.ComputeCurated(s.catalog.All(), view.Selection{})
	cards := make([]grid.Card, len(items))
	for i, p := range items {
		cards[i] = grid.NewCard(p)
	}

	s.render(w, "home", homeData{
		layoutData: s.layout("Abokichi"),
		Cards:      cards,
	})
	s.metrics.ObserveRender(time.Since(start))
}

type productsData struct {
	layoutData
	Cards   []grid.Card
	Count   string
	Message string
	Columns int
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.metrics.IncPageView("products")

	q := r.URL.Query()
	count := &surface.Label{}
	listing := grid.NewListing(s.catalog.All(), count, nil)
	listing.OnViewChange(grid.ViewMode(q.Get("view")))
	listing.OnSortChange(q.Get("sort"))
	listing.OnFilterChange(view.Selection{
		Categories: q["category"],
		Types:      q["type"],
	})

	if listing.State() == grid.StateNoMatches {
		s.metrics.IncEmptyResult()
	}

	s.render(w, "products", productsData{
		layoutData: s.layout("Products"),
		Cards:      listing.Cards(),
		Count:      count.Text,
		Message:    listing.Message(),
		Columns:    listing.Columns(),
	})
	s.metrics.ObserveRender(time.Since(start))
}

type productData struct {
	layoutData
	ProductID   int
	Name        string
	Breadcrumb  string
	Price       string
	OldPrice    string
	Stars       string
	Reviews     string
	ShortDesc   string
	MainImage   string
	Thumbnails  []*surface.Picture
	Description []string
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.metrics.IncPageView("product")

	var (
		breadcrumb = &surface.Label{}
		title      = &surface.Label{}
		price      = &surface.Label{}
		oldPrice   = &surface.Label{}
		stars      = &surface.Label{}
		reviews    = &surface.Label{}
		shortDesc  = &surface.Label{}
		mainImage  = &surface.Picture{}
		thumbs     = []*surface.Picture{{}, {}, {}}
	)
	thumbSurfaces := make([]surface.Thumb, len(thumbs))
	for i, t := range thumbs {
		thumbSurfaces[i] = t
	}

	page, err := s.composer.Compose(parseID(r.URL.Query().Get("id")), detail.Surfaces{
		Breadcrumb:   breadcrumb,
		Title:        title,
		CurrentPrice: price,
		OldPrice:     oldPrice,
		Stars:        stars,
		Reviews:      reviews,
		ShortDesc:    shortDesc,
		MainImage:    mainImage,
		Thumbnails:   thumbSurfaces,
	})
	if err != nil {
		// An empty catalog cannot render a detail page; send the
		// visitor back to the listing.
		http.Redirect(w, r, "/products", http.StatusFound)
		return
	}

	data := productData{
		layoutData:  s.layout(title.Text),
		ProductID:   page.Product.ID,
		Name:        title.Text,
		Breadcrumb:  breadcrumb.Text,
		Price:       price.Text,
		Stars:       stars.Text,
		Reviews:     reviews.Text,
		ShortDesc:   shortDesc.Text,
		MainImage:   mainImage.Src,
		Thumbnails:  thumbs,
		Description: strings.Split(detail.FullDescription(page.Product), "\n\n"),
	}
	if oldPrice.Visible {
		data.OldPrice = oldPrice.Text
	}

	s.render(w, "product", data)
	s.metrics.ObserveRender(time.Since(start))
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	s.metrics.IncCartAction("add")
	s.cart.SetCount(s.cart.Count() + 1)

	target := "/products"
	if id := parseID(r.FormValue("id")); id != 0 {
		target = fmt.Sprintf("/product?id=%d", id)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	page, err := s.composer.Compose(parseID(r.FormValue("id")), detail.Surfaces{})
	if err != nil {
		http.Redirect(w, r, "/products", http.StatusFound)
		return
	}

	s.metrics.IncCartAction("buy")
	page.BuyNow()
	http.Redirect(w, r, fmt.Sprintf("/order?id=%d", page.Product.ID), http.StatusSeeOther)
}

type orderData struct {
	layoutData
	ProductName string
	Lines       []string
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.metrics.IncPageView("order")
	s.metrics.IncCartAction("reset")

	name := &surface.Label{}
	summary := &surface.Block{}
	confirm.Compose(s.catalog, s.cart, parseID(r.URL.Query().Get("id")), confirm.Surfaces{
		ProductName: name,
		Summary:     summary,
	})

	s.render(w, "order", orderData{
		layoutData:  s.layout("Order confirmed"),
		ProductName: name.Text,
		Lines:       summary.Content,
	})
	s.metrics.ObserveRender(time.Since(start))
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render page", slog.String("page", name), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func parseID(raw string) int {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
