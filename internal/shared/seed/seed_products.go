package seed

import "github.com/rohitguptaaa/AmazeMart/internal/catalog"

// Products returns the static storefront catalog in canonical order. The
// order is load order and several query operations (category listings,
// deals, tie-breaking in top lists) depend on it staying put.
func Products() []catalog.Product {
	return []catalog.Product{
		{
			ID:            "1",
			Title:         "Apple iPhone 15 Pro Max - 256GB - Natural Titanium",
			Description:   "iPhone 15 Pro Max. Forged in titanium and featuring the groundbreaking A17 Pro chip, a customizable Action button, and the most powerful iPhone camera system ever.",
			Price:         1199.00,
			OriginalPrice: 1299.00,
			Discount:      8,
			Rating:        4.8,
			ReviewCount:   12453,
			Image:         "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1695048132832-b41495278e24?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1695048132846-6d40c2c2b6da?w=800&h=800&fit=crop",
			},
			Category: "electronics",
			Brand:    "Apple",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"6.7-inch Super Retina XDR display with ProMotion",
				"A17 Pro chip for unprecedented performance",
				"Pro camera system with 48MP Main camera",
				"Titanium design with textured matte glass back",
				"Action button for quick access to features",
			},
			Specifications: map[string]string{
				"Display": "6.7-inch Super Retina XDR",
				"Chip":    "A17 Pro",
				"Storage": "256GB",
				"Camera":  "48MP + 12MP + 12MP",
				"Battery": "Up to 29 hours video playback",
			},
		},
		{
			ID:            "2",
			Title:         "Sony WH-1000XM5 Wireless Noise Canceling Headphones",
			Description:   "Industry-leading noise cancellation with Auto NC Optimizer. Exceptional sound quality with 30mm drivers. Crystal clear hands-free calling with 4 beamforming microphones.",
			Price:         328.00,
			OriginalPrice: 399.99,
			Discount:      18,
			Rating:        4.7,
			ReviewCount:   8921,
			Image:         "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800&h=800&fit=crop",
			},
			Category: "electronics",
			Brand:    "Sony",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"Industry-leading noise cancellation",
				"30-hour battery life with quick charging",
				"Multipoint connection for 2 devices",
				"Speak-to-Chat automatically pauses music",
				"Lightweight design at 250g",
			},
			Specifications: map[string]string{
				"Driver":             "30mm",
				"Frequency Response": "4Hz-40,000Hz",
				"Battery Life":       "30 hours",
				"Weight":             "250g",
				"Connectivity":       "Bluetooth 5.2",
			},
		},
		{
			ID:            "3",
			Title:         "Samsung 65\" Class OLED 4K S95D Smart TV",
			Description:   "Experience the deepest blacks and most vibrant colors with Samsung's revolutionary OLED technology. Neural Quantum Processor 4K AI upscaling delivers stunning picture quality.",
			Price:         1997.99,
			OriginalPrice: 2599.99,
			Discount:      23,
			Rating:        4.6,
			ReviewCount:   3421,
			Image:         "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=800&h=800&fit=crop",
			},
			Category: "electronics",
			Brand:    "Samsung",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"65\" OLED 4K display with infinite contrast",
				"Neural Quantum Processor with AI upscaling",
				"Dolby Atmos and Object Tracking Sound",
				"Gaming Hub with cloud gaming support",
				"Smart TV with Tizen OS",
			},
			Specifications: map[string]string{
				"Screen Size":  "65 inches",
				"Resolution":   "4K UHD (3840 x 2160)",
				"Panel Type":   "OLED",
				"Refresh Rate": "120Hz",
				"HDR":          "Quantum HDR OLED+",
			},
		},
		{
			ID:            "4",
			Title:         "Dyson V15 Detect Cordless Vacuum Cleaner",
			Description:   "Dyson's most powerful, intelligent cordless vacuum. Laser reveals microscopic dust. Piezo sensor counts and sizes dust particles. LCD screen shows what's been sucked up.",
			Price:         649.99,
			OriginalPrice: 749.99,
			Discount:      13,
			Rating:        4.8,
			ReviewCount:   6234,
			Image:         "https://images.unsplash.com/photo-1558317374-067fb5f30001?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1558317374-067fb5f30001?w=800&h=800&fit=crop",
			},
			Category: "home",
			Brand:    "Dyson",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"Laser Slim Fluffy cleaner head reveals dust",
				"Piezo sensor measures dust 15,000 times a second",
				"Up to 60 minutes of fade-free power",
				"HEPA filtration captures 99.99% of particles",
				"LCD screen displays real-time reports",
			},
			Specifications: map[string]string{
				"Run Time":      "Up to 60 minutes",
				"Bin Volume":    "0.76L",
				"Weight":        "6.8 lbs",
				"Filtration":    "Whole-machine HEPA",
				"Suction Power": "230 AW",
			},
		},
		{
			ID:            "5",
			Title:         "Apple MacBook Pro 16\" M3 Max - Space Black",
			Description:   "The most advanced Mac ever. M3 Max with up to 16-core CPU and 40-core GPU. Liquid Retina XDR display. Up to 22 hours battery life.",
			Price:         3499.00,
			OriginalPrice: 3499.00,
			Rating:        4.9,
			ReviewCount:   4521,
			Image:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=800&h=800&fit=crop",
			},
			Category: "electronics",
			Brand:    "Apple",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"M3 Max chip with 16-core CPU",
				"40-core GPU for professional graphics",
				"36GB unified memory",
				"16.2-inch Liquid Retina XDR display",
				"Up to 22 hours battery life",
			},
			Specifications: map[string]string{
				"Chip":    "Apple M3 Max",
				"Memory":  "36GB",
				"Storage": "1TB SSD",
				"Display": "16.2-inch Liquid Retina XDR",
				"Battery": "Up to 22 hours",
			},
		},
		{
			ID:            "6",
			Title:         "Nike Air Jordan 1 Retro High OG - Chicago",
			Description:   "The shoe that started it all. The Air Jordan 1 Retro High OG features a premium leather upper and iconic colorway that pays homage to MJ's days in Chicago.",
			Price:         180.00,
			OriginalPrice: 180.00,
			Rating:        4.9,
			ReviewCount:   15632,
			Image:         "https://images.unsplash.com/photo-1600269452121-4f2416e55c28?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1600269452121-4f2416e55c28?w=800&h=800&fit=crop",
			},
			Category: "fashion",
			Brand:    "Nike",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"Premium leather upper",
				"Air-Sole unit for cushioning",
				"Rubber outsole with pivot circle",
				"Perforated toe box for ventilation",
				"Iconic Wings logo on collar",
			},
			Specifications: map[string]string{
				"Material": "Full-grain leather",
				"Sole":     "Rubber",
				"Closure":  "Lace-up",
				"Style":    "High-top",
				"Color":    "Varsity Red/Black/White",
			},
		},
		{
			ID:            "7",
			Title:         "Kindle Paperwhite Signature Edition - 32GB",
			Description:   "The best Kindle for reading. With a 6.8\" display, adjustable warm light, auto-adjusting front light, and up to 10 weeks of battery life.",
			Price:         189.99,
			OriginalPrice: 189.99,
			Rating:        4.7,
			ReviewCount:   28453,
			Image:         "https://images.unsplash.com/photo-1611532736597-de2d4265fba3?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1611532736597-de2d4265fba3?w=800&h=800&fit=crop",
			},
			Category: "electronics",
			Brand:    "Amazon",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"6.8\" glare-free display",
				"Adjustable warm light",
				"32GB storage for thousands of books",
				"Wireless charging compatible",
				"IPX8 waterproof",
			},
			Specifications: map[string]string{
				"Display":      "6.8-inch 300 ppi",
				"Storage":      "32GB",
				"Battery":      "Up to 10 weeks",
				"Connectivity": "WiFi",
				"Weight":       "207g",
			},
		},
		{
			ID:            "8",
			Title:         "Instant Pot Duo Plus 9-in-1 Electric Pressure Cooker",
			Description:   "9 appliances in 1: pressure cooker, slow cooker, rice cooker, steamer, sauté pan, egg cooker, yogurt maker, warmer, and sterilizer.",
			Price:         89.95,
			OriginalPrice: 119.95,
			Discount:      25,
			Rating:        4.7,
			ReviewCount:   156234,
			Image:         "https://images.unsplash.com/photo-1585515320310-259814833e62?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1585515320310-259814833e62?w=800&h=800&fit=crop",
			},
			Category: "home",
			Brand:    "Instant Pot",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"9 appliances in 1",
				"15 one-touch smart programs",
				"Easy-seal lid with auto sealing",
				"Dishwasher-safe parts",
				"Free Instant Pot app with recipes",
			},
			Specifications: map[string]string{
				"Capacity":   "6 quart",
				"Wattage":    "1000W",
				"Programs":   "15 smart programs",
				"Material":   "Stainless steel",
				"Dimensions": "13.4 x 12.2 x 12.5 inches",
			},
		},
		{
			ID:            "9",
			Title:         "LEGO Star Wars Millennium Falcon Ultimate Collector Series",
			Description:   "Build and display the most iconic starship in the galaxy. This Ultimate Collector Series Millennium Falcon features intricate details and over 7,500 pieces.",
			Price:         849.99,
			OriginalPrice: 849.99,
			Rating:        4.9,
			ReviewCount:   3421,
			Image:         "https://images.unsplash.com/photo-1585366119957-e9730b6d0f60?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1585366119957-e9730b6d0f60?w=800&h=800&fit=crop",
			},
			Category: "toys",
			Brand:    "LEGO",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"7,541 pieces for advanced builders",
				"Highly detailed exterior and interior",
				"Includes 4 crew minifigures",
				"Rotating sensor dish and top/bottom quad laser cannons",
				"Display stand with informational fact plaque",
			},
			Specifications: map[string]string{
				"Pieces":      "7,541",
				"Age":         "16+",
				"Dimensions":  "33 x 22 x 8 inches",
				"Minifigures": "4 included",
				"Theme":       "Star Wars",
			},
		},
		{
			ID:            "10",
			Title:         "PlayStation 5 Console - God of War Ragnarök Bundle",
			Description:   "Experience lightning-fast loading, deeper immersion with support for haptic feedback, adaptive triggers, and 3D Audio. Includes God of War Ragnarök game.",
			Price:         559.99,
			OriginalPrice: 559.99,
			Rating:        4.8,
			ReviewCount:   45632,
			Image:         "https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=800&h=800&fit=crop",
			},
			Category: "electronics",
			Brand:    "Sony",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"Ultra-high speed SSD",
				"Ray tracing for realistic graphics",
				"4K-TV Gaming at 120fps",
				"Tempest 3D AudioTech",
				"Includes DualSense wireless controller",
			},
			Specifications: map[string]string{
				"Storage":    "825GB SSD",
				"GPU":        "10.28 TFLOPs",
				"RAM":        "16GB GDDR6",
				"Resolution": "Up to 8K",
				"Frame Rate": "Up to 120fps",
			},
		},
		{
			ID:            "11",
			Title:         "Bose QuietComfort Ultra Earbuds",
			Description:   "Bose's best noise cancelling earbuds with spatial audio. Immersive Audio for a deeper listening experience. Up to 6 hours of battery life.",
			Price:         299.00,
			OriginalPrice: 299.00,
			Rating:        4.5,
			ReviewCount:   2341,
			Image:         "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800&h=800&fit=crop",
			},
			Category: "electronics",
			Brand:    "Bose",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"World-class noise cancellation",
				"Bose Immersive Audio with spatial sound",
				"CustomTune technology",
				"Up to 6 hours of battery life",
				"IPX4 water resistant",
			},
			Specifications: map[string]string{
				"Battery Life":     "6 hours (24 with case)",
				"Driver":           "9.3mm",
				"Connectivity":     "Bluetooth 5.3",
				"Water Resistance": "IPX4",
				"Weight":           "6.24g per earbud",
			},
		},
		{
			ID:            "12",
			Title:         "Nespresso Vertuo Next Coffee and Espresso Machine",
			Description:   "Brew barista-grade coffee at home with the touch of a button. Centrifusion technology reads each capsule for perfect extraction every time.",
			Price:         159.00,
			OriginalPrice: 209.00,
			Discount:      24,
			Rating:        4.6,
			ReviewCount:   12453,
			Image:         "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=800&h=800&fit=crop",
			},
			Category: "home",
			Brand:    "Nespresso",
			InStock:  true,
			Prime:    true,
			Features: []string{
				"Centrifusion technology for optimal extraction",
				"5 cup sizes from espresso to carafe",
				"30-second heat-up time",
				"Bluetooth and WiFi connectivity",
				"Made with 54% recycled plastics",
			},
			Specifications: map[string]string{
				"Water Tank": "37 oz",
				"Pressure":   "19 bars",
				"Cup Sizes":  "5 (1.35oz - 18oz)",
				"Dimensions": "5.5 x 16.9 x 12.4 inches",
				"Weight":     "8.8 lbs",
			},
		},
	}
}
