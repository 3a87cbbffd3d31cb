package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/inkwell/internal/models"
)

func TestSnapshotOrderItemUsesCatalogPrice(t *testing.T) {
	product := models.Product{
		SKU:   "NB-A5-DOT",
		Name:  "A5 dotted notebook",
		Price: 1000,
	}

	line := snapshotOrderItem(product, 3)

	// The price is frozen from the catalog record; there is no path for a
	// caller-supplied price to reach the line item.
	assert.Equal(t, product.Price, line.UnitPrice)
	assert.Equal(t, float64(3000), line.LineTotal)
	assert.Equal(t, product.Name, line.ProductName)
	assert.Equal(t, product.SKU, line.SKU)
	require.NotNil(t, line.ProductID)
	assert.Equal(t, product.ID, *line.ProductID)
	assert.Equal(t, 3, line.Quantity)
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-001", FormatOrderNumber(1))
	assert.Equal(t, "ORD-042", FormatOrderNumber(42))
	assert.Equal(t, "ORD-999", FormatOrderNumber(999))
	// The padding widens past three digits instead of truncating.
	assert.Equal(t, "ORD-1000", FormatOrderNumber(1000))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "pen@example.com", normalizeEmail("  Pen@Example.COM "))
	assert.Equal(t, "", normalizeEmail("   "))
}
