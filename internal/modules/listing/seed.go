package listing

// sampleListings is the demo dataset loadable from the admin dashboard.
var sampleListings = []CreateListingRequest{
	{
		Name:         "Fresh Bread & Pastries",
		Organization: "Local Bakery",
		Description:  "Assorted fresh bread, croissants, and pastries from today's batch. Includes whole wheat bread, sourdough, chocolate croissants, and fruit danishes.",
		Quantity:     "20 items",
		Location:     "Downtown Bakery, 123 Main St, New York, NY",
		Latitude:     40.7128,
		Longitude:    -74.0060,
		Freshness:    "fresh",
		Dietary:      "vegetarian",
		Allergens:    []string{"gluten", "dairy"},
		Image:        "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400",
	},
	{
		Name:         "Organic Vegetables",
		Organization: "Green Market",
		Description:  "Fresh organic vegetables including carrots, broccoli, spinach, kale, and bell peppers. All locally sourced and pesticide-free.",
		Quantity:     "15 kg",
		Location:     "Green Market, 456 Oak Ave, New York, NY",
		Latitude:     40.7589,
		Longitude:    -73.9851,
		Freshness:    "fresh",
		Dietary:      "vegan",
		Allergens:    []string{},
		Image:        "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400",
	},
	{
		Name:         "Canned Goods",
		Organization: "Community Center",
		Description:  "Various canned goods including beans, tomatoes, soup, and vegetables. All items are within expiration date and properly sealed.",
		Quantity:     "50 cans",
		Location:     "Community Center, 789 Pine St, New York, NY",
		Latitude:     40.7505,
		Longitude:    -73.9934,
		Freshness:    "preserved",
		Dietary:      "vegetarian",
		Allergens:    []string{},
		Image:        "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400",
	},
	{
		Name:         "Frozen Meals",
		Organization: "Restaurant Chain",
		Description:  "Prepared frozen meals including pasta dishes, rice bowls, and desserts. All meals are individually packaged and ready to heat.",
		Quantity:     "30 meals",
		Location:     "Restaurant Chain, 321 Elm St, New York, NY",
		Latitude:     40.7648,
		Longitude:    -73.9808,
		Freshness:    "frozen",
		Dietary:      "mixed",
		Allergens:    []string{"gluten", "dairy", "nuts"},
		Image:        "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400",
	},
	{
		Name:         "Fresh Fruits",
		Organization: "Farmers Market",
		Description:  "Seasonal fresh fruits including apples, oranges, bananas, and berries. All fruits are ripe and ready to eat.",
		Quantity:     "25 kg",
		Location:     "Farmers Market, 555 Market St, New York, NY",
		Latitude:     40.7484,
		Longitude:    -73.9857,
		Freshness:    "fresh",
		Dietary:      "vegan",
		Allergens:    []string{},
		Image:        "https://images.unsplash.com/photo-1619566636858-adf3ef46400b?w=400",
	},
	{
		Name:         "Dairy Products",
		Organization: "Local Dairy",
		Description:  "Fresh dairy products including milk, cheese, yogurt, and butter. All products are from local farms and within expiration date.",
		Quantity:     "40 items",
		Location:     "Local Dairy, 777 Dairy Ave, New York, NY",
		Latitude:     40.7569,
		Longitude:    -73.9781,
		Freshness:    "fresh",
		Dietary:      "vegetarian",
		Allergens:    []string{"dairy"},
		Image:        "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400",
	},
}
