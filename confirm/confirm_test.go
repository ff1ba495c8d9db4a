package confirm

import (
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

func confirmCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]models.Product{
		{ID: 1, Name: "Chili Miso", Price: decimal.NewFromInt(13)},
		{ID: 2, Name: "Okazu Set", Price: decimal.NewFromInt(36)},
	})
	require.NoError(t, err)
	return cat
}

func TestComposeShowsProductName(t *testing.T) {
	cartStore := cart.NewStore(kvstore.NewMemory())
	name := &surface.Label{}

	Compose(confirmCatalog(t), cartStore, 2, Surfaces{ProductName: name})
	assert.Equal(t, "Okazu Set", name.Text)
}

func TestComposeFallbackLabel(t *testing.T) {
	cartStore := cart.NewStore(kvstore.NewMemory())

	tests := []struct {
		name string
		id   int
	}{
		{name: "unknown id", id: 99},
		{name: "absent id", id: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := &surface.Label{}
			Compose(confirmCatalog(t), cartStore, tt.id, Surfaces{ProductName: label})
			assert.Equal(t, "your items", label.Text)
		})
	}
}

func TestComposeResetsCartUnconditionally(t *testing.T) {
	cartStore := cart.NewStore(kvstore.NewMemory())
	cartStore.SetCount(3)

	Compose(confirmCatalog(t), cartStore, 99, Surfaces{})
	assert.Equal(t, 0, cartStore.Count(), "reset happens even when resolution fails")
}

func TestComposeAppendsPlacedOnLine(t *testing.T) {
	cartStore := cart.NewStore(kvstore.NewMemory())
	cartStore.RecordOrder(models.OrderRecord{
		ProductID:   1,
		ProductName: "Chili Miso",
		PlacedAt:    time.Date(2024, 6, 1, 15, 4, 0, 0, time.UTC),
	})

	summary := &surface.Block{}
	Compose(confirmCatalog(t), cartStore, 1, Surfaces{Summary: summary})

	require.Len(t, summary.Content, 1)
	assert.Equal(t, "Placed on June 1, 2024 at 3:04 PM", summary.Content[0])
}

func TestComposeNoOrderAppendsNothing(t *testing.T) {
	cartStore := cart.NewStore(kvstore.NewMemory())
	summary := &surface.Block{}

	Compose(confirmCatalog(t), cartStore, 1, Surfaces{Summary: summary})
	assert.Empty(t, summary.Content)
}
