package catalog

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/abokichi/storefront/config"
	"github.com/abokichi/storefront/models"
	"github.com/gocolly/colly/v2"
	"github.com/shopspring/decimal"
)

// LoadFile reads a JSON catalog file: an array of product records in
// display order.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return New(products)
}

// Loader fetches the catalog from a live storefront page, extracting one
// product per card element.
type Loader struct {
	cfg       *config.Config
	collector *colly.Collector
}

// NewLoader builds a loader for the configured catalog URL.
func NewLoader(cfg *config.Config) (*Loader, error) {
	parsed, err := url.Parse(cfg.CatalogURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("catalog url must include a host")
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(parsed.Host),
		colly.UserAgent(cfg.UserAgent),
	)
	collector.SetRequestTimeout(cfg.RequestTimeout)

	return &Loader{
		cfg:       cfg,
		collector: collector,
	}, nil
}

// Load visits the catalog page and returns the extracted catalog. Cards
// missing required fields are skipped; fetch failures abort the load.
func (l *Loader) Load() (*Catalog, error) {
	var products []models.Product
	var fetchErr error

	l.collector.OnHTML("article.product-card", func(e *colly.HTMLElement) {
		if p := extractProduct(e); p != nil {
			products = append(products, *p)
		}
	})
	l.collector.OnError(func(r *colly.Response, err error) {
		if fetchErr == nil {
			fetchErr = err
		}
	})

	if err := l.collector.Visit(l.cfg.CatalogURL); err != nil {
		return nil, fmt.Errorf("visit catalog page: %w", err)
	}
	l.collector.Wait()

	if fetchErr != nil {
		return nil, fmt.Errorf("fetch catalog page: %w", fetchErr)
	}
	return New(products)
}

func extractProduct(e *colly.HTMLElement) *models.Product {
	id, err := strconv.Atoi(strings.TrimSpace(e.Attr("data-id")))
	if err != nil || id <= 0 {
		return nil
	}

	name := strings.TrimSpace(e.ChildText("h3"))
	if name == "" {
		return nil
	}

	price, err := parsePrice(e.ChildText(".current-price"))
	if err != nil {
		return nil
	}

	product := &models.Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Category:    strings.TrimSpace(e.Attr("data-category")),
		Type:        strings.TrimSpace(e.Attr("data-type")),
		Image:       e.ChildAttr("img", "src"),
		Description: strings.TrimSpace(e.ChildText(".product-desc")),
	}

	if old, err := parsePrice(e.ChildText(".product-old-price")); err == nil {
		product.OldPrice = old
	}
	if rating, err := strconv.ParseFloat(strings.TrimSpace(e.Attr("data-rating")), 64); err == nil {
		product.Rating = rating
	}
	if reviews, err := strconv.Atoi(strings.TrimSpace(e.Attr("data-reviews"))); err == nil {
		product.Reviews = reviews
	}
	return product
}

func parsePrice(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "$"))
	if text == "" {
		return decimal.Decimal{}, fmt.Errorf("empty price")
	}
	return decimal.NewFromString(text)
}
