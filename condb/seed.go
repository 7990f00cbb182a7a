package condb

import "rajas/models"

var seedProducts = []models.Product{
	{
		ID:          1,
		Name:        "Premium Cotton Kurta",
		Description: "Elegant handcrafted cotton kurta with intricate embroidery",
		Price:       2499.00,
		Category:    "men",
		Image:       "https://s.alicdn.com/@sc04/kf/A6f2f93f1a303404992a4a090fbd6457bw/2025-Premium-Soft-Cotton-M-4XL-Size-Kurta-with-Beautiful-Foil-Printed-Design-and-Plain-White-Bottom-for-Men-Boys-for-Parties.jpg",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"White", "Cream", "Blue"},
		InStock:     true,
	},
	{
		ID:          2,
		Name:        "Designer Lehenga Set",
		Description: "Royal designer lehenga with heavy work and dupatta",
		Price:       8999.00,
		Category:    "women",
		Image:       "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTpDHhd_aryujavrfYgeR8UeNG2I76AjNzF1Q&s",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Red", "Pink", "Maroon", "Gold"},
		InStock:     true,
	},
	{
		ID:          3,
		Name:        "Silk Saree Collection",
		Description: "Pure silk saree with traditional border and pallu",
		Price:       5499.00,
		Category:    "women",
		Image:       "https://khanboutique.pk/cdn/shop/files/WhatsAppImage2024-04-17at3.56.01PM.jpg?v=1713351601",
		Sizes:       []string{"Free Size"},
		Colors:      []string{"Green", "Purple", "Orange", "Red"},
		InStock:     true,
	},
	{
		ID:          4,
		Name:        "Sherwani Set",
		Description: "Luxurious sherwani with dupatta and churidar",
		Price:       12999.00,
		Category:    "men",
		Image:       "https://wearzones.com/cdn/shop/files/Untitled_design_7_c8f73232-5470-4b20-8d41-e8aad055e35a.png?v=1751516582",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Ivory", "Gold", "Maroon"},
		InStock:     true,
	},
	{
		ID:          5,
		Name:        "Anarkali Suit",
		Description: "Beautiful anarkali suit with embroidered work",
		Price:       3999.00,
		Category:    "women",
		Image:       "https://i.pinimg.com/236x/fc/fc/bf/fcfcbf530f6dd0df3b9e90005a0c8971.jpg",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Pink", "Blue", "Green"},
		InStock:     true,
	},
	{
		ID:          6,
		Name:        "Pathani Suit",
		Description: "Comfortable pathani suit for daily wear",
		Price:       1899.00,
		Category:    "men",
		Image:       "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQeQHgC0mWyffPDRX9_k9J4bacr35_JVvU0Ug&s",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"White", "Black", "Grey"},
		InStock:     true,
	},
	{
		ID:          7,
		Name:        "Palazzo Suit Set",
		Description: "Trendy palazzo suit with dupatta",
		Price:       2799.00,
		Category:    "women",
		Image:       "https://clothsvilla.com/cdn/shop/files/red-tabby-organza-work-suit-set-with-plazo-dupatta_10_500x500.jpg?v=1750400314",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Yellow", "Pink", "Mint"},
		InStock:     true,
	},
	{
		ID:          8,
		Name:        "Nehru Jacket",
		Description: "Stylish nehru jacket with button detailing",
		Price:       3499.00,
		Category:    "men",
		Image:       "https://cdn.shopify.com/s/files/1/0862/9350/files/IvyGreenVelvetNehruJacket_df5cf9ad-1ad5-410e-9b2c-d61a354ee755_480x480.jpg?v=1638199838",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Navy", "Black", "Wine"},
		InStock:     true,
	},
}
