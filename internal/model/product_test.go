package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeID(t *testing.T) {
	testCases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string", "5", "5"},
		{"padded string", " 5 ", "5"},
		{"float", float64(5), "5"},
		{"float with fraction", 5.5, "5.5"},
		{"int", 42, "42"},
		{"int64", int64(1766683900923), "1766683900923"},
		{"large float", float64(1766683900923), "1766683900923"},
		{"nil", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeID(tc.in))
		})
	}
}

func TestSameID(t *testing.T) {
	assert.True(t, SameID("5", 5))
	assert.True(t, SameID(float64(5), "5"))
	assert.False(t, SameID("5", "50"))
}

func TestProductUnmarshalNumericID(t *testing.T) {
	var products []Product
	err := json.Unmarshal([]byte(`[
		{"id": 5, "name": "CPU", "price": 100, "category": "Parts", "description": "d", "stock": 1, "imageUrl": "", "createdAt": "2025-01-01T00:00:00.000Z"},
		{"id": "6", "name": "GPU", "price": 200, "category": "Parts", "description": "d", "stock": 2}
	]`), &products)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "5", products[0].ID)
	assert.Equal(t, "CPU", products[0].Name)
	assert.Equal(t, float64(100), products[0].Price)
	assert.Equal(t, "2025-01-01T00:00:00.000Z", products[0].CreatedAt)
	assert.Equal(t, "6", products[1].ID)
	assert.Equal(t, 2, products[1].Stock)
}

func TestProductUnmarshalCoercesStoredNumbers(t *testing.T) {
	testCases := []struct {
		name      string
		price     string
		stock     string
		wantPrice float64
		wantStock int
	}{
		{"fractional stock", `10`, `2.5`, 10, 2},
		{"numeric strings", `"199.5"`, `"3"`, 199.5, 3},
		{"negative values", `-1`, `-4`, 0, 0},
		{"oversized stock", `1`, `1e12`, 1, math.MaxInt32},
		{"unreadable values", `"cheap"`, `"lots"`, 0, 0},
		{"null values", `null`, `null`, 0, 0},
		{"bool values", `true`, `false`, 1, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Product
			err := json.Unmarshal([]byte(`{"id":"1","name":"A","price":`+tc.price+`,"stock":`+tc.stock+`}`), &p)

			require.NoError(t, err)
			assert.Equal(t, "1", p.ID)
			assert.Equal(t, "A", p.Name)
			assert.Equal(t, tc.wantPrice, p.Price)
			assert.Equal(t, tc.wantStock, p.Stock)
		})
	}
}

func TestProductInputApplyTo(t *testing.T) {
	price := 150.0
	stock := 2
	existing := Product{
		ID:        "1",
		Name:      "A",
		Price:     100,
		Stock:     2,
		ImageURL:  "/products/a.png",
		CreatedAt: "2025-01-01T00:00:00.000Z",
	}

	in := ProductInput{Name: "B", Price: &price, Category: "X", Description: "Y", Stock: &stock}
	in.ApplyTo(&existing)

	assert.Equal(t, Product{
		ID:          "1",
		Name:        "B",
		Price:       150,
		Category:    "X",
		Description: "Y",
		Stock:       2,
		ImageURL:    "/products/a.png",
		CreatedAt:   "2025-01-01T00:00:00.000Z",
	}, existing)

	in.ImageURL = "https://example.com/b.png"
	in.ApplyTo(&existing)
	assert.Equal(t, "https://example.com/b.png", existing.ImageURL)
}
