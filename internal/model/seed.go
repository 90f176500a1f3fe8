package model

import "time"

// CreatedAtLayout matches the ISO-8601 form written for createdAt.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatCreatedAt renders t the way createdAt is persisted.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}

// DemoProducts is the dataset a keyed store is seeded with on first use.
func DemoProducts(now time.Time) []Product {
	createdAt := FormatCreatedAt(now)
	return []Product{
		{
			ID:          "1",
			Name:        "Razer BlackWidow V4 Pro",
			Description: "Mechanical gaming keyboard with Razer Chroma RGB, dedicated macro keys, and command dial.",
			Price:       8990,
			ImageURL:    "https://images.unsplash.com/photo-1595225476474-87563907a212?w=500&auto=format&fit=crop&q=60",
			Category:    "Keyboard",
			Stock:       5,
			CreatedAt:   createdAt,
		},
		{
			ID:          "2",
			Name:        "Logitech G Pro X Superlight 2",
			Description: "Ultra-lightweight wireless gaming mouse designed for esports professionals.",
			Price:       5690,
			ImageURL:    "https://images.unsplash.com/photo-1615663245857-acda5b2a643e?w=500&auto=format&fit=crop&q=60",
			Category:    "Mouse",
			Stock:       15,
			CreatedAt:   createdAt,
		},
		{
			ID:          "3",
			Name:        "HyperX Cloud Alpha Wireless",
			Description: "DTS Headphone:X Spatial Audio and up to 300 hours of battery life.",
			Price:       6990,
			ImageURL:    "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=500&auto=format&fit=crop&q=60",
			Category:    "Headset",
			Stock:       10,
			CreatedAt:   createdAt,
		},
		{
			ID:          "4",
			Name:        "Secretlab TITAN Evo",
			Description: "The gold standard of gaming chairs. Integrated lumbar support and magnetic memory foam head pillow.",
			Price:       18900,
			ImageURL:    "https://images.unsplash.com/photo-1616628188550-808882bab58c?w=500&auto=format&fit=crop&q=60",
			Category:    "Gaming Chair",
			Stock:       3,
			CreatedAt:   createdAt,
		},
		{
			ID:          "5",
			Name:        "ASUS ROG Swift OLED PG27AQDM",
			Description: "27-inch 1440p OLED gaming monitor with 240Hz refresh rate and 0.03ms response time.",
			Price:       34900,
			ImageURL:    "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=500&auto=format&fit=crop&q=60",
			Category:    "Monitor",
			Stock:       2,
			CreatedAt:   createdAt,
		},
		{
			ID:          "6",
			Name:        "SteelSeries Apex Pro TKL",
			Description: "World's fastest keyboard with adjustable OmniPoint 2.0 switches.",
			Price:       7990,
			ImageURL:    "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?w=500&auto=format&fit=crop&q=60",
			Category:    "Keyboard",
			Stock:       8,
			CreatedAt:   createdAt,
		},
	}
}
