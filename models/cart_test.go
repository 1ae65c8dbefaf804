package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func haircut() Service {
	return Service{ID: "svc-haircut", Name: "Haircut", Price: 100, DurationMinutes: 45, Active: true}
}

func shampoo() Product {
	return Product{ID: "prod-shampoo", Name: "Shampoo", Price: 50, Active: true}
}

func TestAddServiceIsIdempotent(t *testing.T) {
	c := &Cart{ShopperID: "s1"}

	c.AddService(haircut())
	c.AddService(haircut())

	require.Len(t, c.Lines, 1)
	assert.Equal(t, LineKindService, c.Lines[0].Kind)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.True(t, c.HasService("svc-haircut"))
}

func TestAddProductIncrementsQuantity(t *testing.T) {
	c := &Cart{ShopperID: "s1"}

	c.AddProduct(shampoo())
	c.AddProduct(shampoo())

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.ProductQuantity("prod-shampoo"))
}

func TestSetProductQuantityFloor(t *testing.T) {
	tests := []struct {
		name string
		qty  int
	}{
		{"zero removes the line", 0},
		{"negative removes the line", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cart{ShopperID: "s1"}
			c.AddProduct(shampoo())

			c.SetProductQuantity("prod-shampoo", tt.qty)

			assert.Empty(t, c.Lines)
			assert.Equal(t, 0, c.ProductQuantity("prod-shampoo"))
		})
	}
}

func TestSetProductQuantityIgnoresServiceLines(t *testing.T) {
	c := &Cart{ShopperID: "s1"}
	c.AddService(haircut())

	c.SetProductQuantity("svc-haircut", 3)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestTotal(t *testing.T) {
	c := &Cart{ShopperID: "s1"}
	c.AddService(haircut())
	c.AddProduct(shampoo())
	c.SetProductQuantity("prod-shampoo", 3)

	assert.Equal(t, 250.0, c.Total())
}

func TestTotalServiceDurationMinutes(t *testing.T) {
	c := &Cart{ShopperID: "s1"}
	c.AddService(haircut())
	c.AddService(Service{ID: "svc-color", Name: "Coloring", Price: 300, DurationMinutes: 90})
	c.AddProduct(shampoo())

	assert.Equal(t, 135, c.TotalServiceDurationMinutes())
}

func TestRemoveLine(t *testing.T) {
	c := &Cart{ShopperID: "s1"}
	c.AddService(haircut())
	c.AddProduct(shampoo())

	c.RemoveLine("svc-haircut")

	require.Len(t, c.Lines, 1)
	assert.False(t, c.HasService("svc-haircut"))
	assert.False(t, c.HasServiceLines())
}

func TestClear(t *testing.T) {
	c := &Cart{ShopperID: "s1"}
	c.AddService(haircut())
	c.AddProduct(shampoo())

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0.0, c.Total())
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := &Cart{ShopperID: "s1"}
	c.AddProduct(Product{ID: "p1", Name: "One", Price: 1})
	c.AddProduct(Product{ID: "p2", Name: "Two", Price: 2})
	c.AddService(haircut())
	c.AddProduct(Product{ID: "p1", Name: "One", Price: 1})

	require.Len(t, c.Lines, 3)
	assert.Equal(t, "p1", c.Lines[0].ID)
	assert.Equal(t, "p2", c.Lines[1].ID)
	assert.Equal(t, "svc-haircut", c.Lines[2].ID)
}
