package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
)

// Seed builds the static demo catalog. The collection is fixed at load
// time and never mutated.
func Seed() *Store {
	return NewStore(seedProducts())
}

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("catalog: bad seed price " + s)
	}
	return d
}

// colors builds a variant set; availability defaults to true, so only the
// unavailable ones are called out.
func colorOption(id, name, hex string) domain.ColorOption {
	return domain.ColorOption{ID: id, Name: name, Hex: hex, Available: true}
}

func unavailable(c domain.ColorOption) domain.ColorOption {
	c.Available = false
	return c
}

var defaultSizes = []string{"S", "M", "L", "XL", "XXL"}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "prod-1",
			Name:        "Stylish T-Shirt",
			Description: "A soft cotton tee with a relaxed fit, ready for everyday wear.",
			Price:       price("29.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=T-Shirt",
			Category:    "Category A",
			Rating:      price("4.3"),
			Sizes:       defaultSizes,
			Colors: []domain.ColorOption{
				colorOption("c1", "Blue", "#87CEEB"),
				colorOption("c2", "White", "#FFFFFF"),
				colorOption("c3", "Black", "#000000"),
			},
			Featured: true,
		},
		{
			ID:          "prod-2",
			Name:        "Modern Jeans",
			Description: "Slim-cut denim with a hint of stretch for all-day comfort.",
			Price:       price("59.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Jeans",
			Category:    "Category B",
			Rating:      price("4.5"),
			Sizes:       []string{"30W", "32W", "34W", "36W"},
			Colors: []domain.ColorOption{
				colorOption("c1", "Black", "#1C1C1C"),
				colorOption("c2", "Indigo", "#4B0082"),
			},
			Featured: true,
		},
		{
			ID:          "prod-3",
			Name:        "Premium Quality Hoodie",
			Description: "Experience ultimate comfort and style with our Premium Quality Hoodie. Made from a soft and durable cotton blend, this hoodie features a modern fit, adjustable drawstring hood, and a spacious kangaroo pocket.",
			Price:       price("79.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Hoodie",
			Category:    "Category C",
			Rating:      price("4.7"),
			Sizes:       defaultSizes,
			Colors: []domain.ColorOption{
				colorOption("c1", "Ocean Blue", "#6495ED"),
				colorOption("c2", "Charcoal Gray", "#36454F"),
				unavailable(colorOption("c3", "Forest Green", "#228B22")),
				colorOption("c4", "Crimson Red", "#DC143C"),
			},
			Specifications: []domain.Specification{
				{Title: "Material", Value: "80% Cotton, 20% Polyester"},
				{Title: "Fit", Value: "Modern Fit"},
				{Title: "Care", Value: "Machine wash cold, tumble dry low"},
			},
			Reviews: []domain.Review{
				{
					ID:           "rev1",
					AuthorName:   "Alice Wonderland",
					Rating:       price("5"),
					Date:         "June 15, 2024",
					Title:        "Absolutely love it!",
					Comment:      "This hoodie is so comfortable and fits perfectly. The color is exactly as shown. Highly recommend!",
					Verified:     true,
					HelpfulVotes: 10,
				},
				{
					ID:              "rev2",
					AuthorName:      "Bob The Builder",
					Rating:          price("4"),
					Date:            "June 10, 2024",
					Title:           "Great quality, slightly snug",
					Comment:         "Really good quality material. I found it a bit snug for an L, might want to size up if you prefer a looser fit.",
					Verified:        true,
					HelpfulVotes:    5,
					NotHelpfulVotes: 1,
				},
				{
					ID:           "rev3",
					AuthorName:   "Charlie Brown",
					Rating:       price("5"),
					Date:         "May 28, 2024",
					Title:        "My new favorite!",
					Comment:      "Warm, stylish, and the pockets are huge. What more could you ask for?",
					HelpfulVotes: 8,
				},
			},
			Featured: true,
		},
		{
			ID:          "prod-4",
			Name:        "Canvas Sneakers",
			Description: "Low-top canvas sneakers with a cushioned insole.",
			Price:       price("44.50"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Sneakers",
			Category:    "Category A",
			Rating:      price("4.1"),
			Sizes:       []string{"7", "8", "9", "10", "11"},
			Colors: []domain.ColorOption{
				colorOption("c1", "White", "#FFFFFF"),
				colorOption("c2", "Navy", "#000080"),
			},
		},
		{
			ID:          "prod-5",
			Name:        "Wool Beanie",
			Description: "A warm ribbed beanie in merino wool.",
			Price:       price("19.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Beanie",
			Category:    "Category B",
			Rating:      price("4.0"),
			Sizes:       []string{"One Size"},
			Colors: []domain.ColorOption{
				colorOption("c1", "Heather Gray", "#B0B0B0"),
				colorOption("c2", "Mustard", "#FFDB58"),
			},
		},
		{
			ID:          "prod-6",
			Name:        "Leather Belt",
			Description: "Full-grain leather belt with a brushed buckle.",
			Price:       price("34.00"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Belt",
			Category:    "Category C",
			Rating:      price("4.6"),
			Sizes:       []string{"S", "M", "L"},
			Colors: []domain.ColorOption{
				colorOption("c1", "Brown", "#8B4513"),
				colorOption("c2", "Black", "#000000"),
			},
		},
		{
			ID:          "prod-7",
			Name:        "Linen Shirt",
			Description: "Breathable linen shirt for warm days.",
			Price:       price("49.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Shirt",
			Category:    "Category A",
			Rating:      price("4.2"),
			Sizes:       defaultSizes,
			Colors: []domain.ColorOption{
				colorOption("c1", "Sand", "#C2B280"),
				colorOption("c2", "Sky Blue", "#87CEEB"),
			},
		},
		{
			ID:          "prod-8",
			Name:        "Chino Shorts",
			Description: "Classic chino shorts with a nine-inch inseam.",
			Price:       price("39.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Shorts",
			Category:    "Category B",
			Rating:      price("3.9"),
			Sizes:       []string{"30W", "32W", "34W"},
			Colors: []domain.ColorOption{
				colorOption("c1", "Khaki", "#C3B091"),
				colorOption("c2", "Olive", "#708238"),
			},
		},
		{
			ID:          "prod-9",
			Name:        "Rain Jacket",
			Description: "Packable waterproof shell with taped seams.",
			Price:       price("89.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Jacket",
			Category:    "Category C",
			Rating:      price("4.8"),
			Sizes:       defaultSizes,
			Colors: []domain.ColorOption{
				colorOption("c1", "Yellow", "#FFD700"),
				unavailable(colorOption("c2", "Teal", "#008080")),
			},
		},
		{
			ID:          "prod-10",
			Name:        "Crew Socks 3-Pack",
			Description: "Cushioned crew socks in a three-pack.",
			Price:       price("14.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Socks",
			Category:    "Category A",
			Rating:      price("4.4"),
			Sizes:       []string{"One Size"},
			Colors: []domain.ColorOption{
				colorOption("c1", "Assorted", "#CCCCCC"),
			},
		},
		{
			ID:          "prod-11",
			Name:        "Denim Jacket",
			Description: "A timeless trucker jacket in washed denim.",
			Price:       price("74.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=DenimJacket",
			Category:    "Category B",
			Rating:      price("4.5"),
			Sizes:       defaultSizes,
			Colors: []domain.ColorOption{
				colorOption("c1", "Light Wash", "#A3B9D3"),
				colorOption("c2", "Dark Wash", "#2F4F6F"),
			},
		},
		{
			ID:          "prod-12",
			Name:        "Graphic Sweatshirt",
			Description: "Heavyweight fleece sweatshirt with a printed front.",
			Price:       price("54.99"),
			ImageURL:    "https://via.placeholder.com/300x300?text=Sweatshirt",
			Category:    "Category C",
			Rating:      price("4.0"),
			Sizes:       defaultSizes,
			Colors: []domain.ColorOption{
				colorOption("c1", "Cream", "#FFFDD0"),
				colorOption("c2", "Forest", "#228B22"),
			},
		},
	}
}
