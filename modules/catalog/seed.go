package catalog

func rating(r float64) *float64 { return &r }

// DemoProducts is the storefront's initial catalog.
func DemoProducts() []ProductRequest {
	return []ProductRequest{
		{
			Name:        "Sombra Negra Colorida",
			Category:    "Maquillaje",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=500&h=500&fit=crop",
			Description: "Sombra de ojos de alta pigmentación con acabado mate y shimmer",
			Stock:       50,
			Rating:      rating(4.9),
			SalesCount:  125,
			IsFeatured:  true,
		},
		{
			Name:        "Labial Rojo Intenso",
			Category:    "Maquillaje",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=500&h=500&fit=crop",
			Description: "Labial de larga duración con acabado mate y cremoso",
			Stock:       75,
			Rating:      rating(4.7),
			SalesCount:  89,
			IsFeatured:  true,
		},
		{
			Name:        "Crema Hidratante Premium",
			Category:    "Cuidado Personal",
			Price:       45.99,
			Image:       "https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=500&h=500&fit=crop",
			Description: "Crema facial hidratante con ingredientes naturales y antienvejecimiento",
			Stock:       30,
			Rating:      rating(4.8),
			SalesCount:  156,
			IsFeatured:  true,
		},
	}
}
