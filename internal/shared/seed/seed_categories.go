package seed

import "github.com/rohitguptaaa/AmazeMart/internal/catalog"

func Categories() []catalog.Category {
	return []catalog.Category{
		{
			ID:            "electronics",
			Name:          "Electronics",
			Image:         "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=300&h=300&fit=crop",
			Subcategories: []string{"Smartphones", "Laptops", "Tablets", "Headphones", "Cameras"},
		},
		{
			ID:            "fashion",
			Name:          "Fashion",
			Image:         "https://images.unsplash.com/photo-1445205170230-053b83016050?w=300&h=300&fit=crop",
			Subcategories: []string{"Men's Clothing", "Women's Clothing", "Shoes", "Accessories"},
		},
		{
			ID:            "home",
			Name:          "Home & Kitchen",
			Image:         "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=300&h=300&fit=crop",
			Subcategories: []string{"Furniture", "Kitchen Appliances", "Bedding", "Decor"},
		},
		{
			ID:            "books",
			Name:          "Books",
			Image:         "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=300&h=300&fit=crop",
			Subcategories: []string{"Fiction", "Non-Fiction", "Educational", "Comics"},
		},
		{
			ID:            "sports",
			Name:          "Sports & Outdoors",
			Image:         "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=300&h=300&fit=crop",
			Subcategories: []string{"Fitness", "Outdoor Gear", "Team Sports", "Water Sports"},
		},
		{
			ID:            "beauty",
			Name:          "Beauty & Personal Care",
			Image:         "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=300&h=300&fit=crop",
			Subcategories: []string{"Skincare", "Makeup", "Haircare", "Fragrances"},
		},
		{
			ID:            "toys",
			Name:          "Toys & Games",
			Image:         "https://images.unsplash.com/photo-1558060370-d644479cb6f7?w=300&h=300&fit=crop",
			Subcategories: []string{"Action Figures", "Board Games", "Educational", "Outdoor Play"},
		},
		{
			ID:            "automotive",
			Name:          "Automotive",
			Image:         "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=300&h=300&fit=crop",
			Subcategories: []string{"Car Electronics", "Tools", "Accessories", "Parts"},
		},
	}
}
