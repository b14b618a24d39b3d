package catalog

import (
	"github.com/semantic-product-search/internal/models"
	"github.com/shopspring/decimal"
)

// PlaceholderImage is served for every sample product
const PlaceholderImage = "/static/image_not_available.svg"

type sample struct {
	name        string
	description string
	price       string
	brand       string
}

type category struct {
	name     string
	products []sample
}

var categories = []category{
	{
		name: "Fruits",
		products: []sample{
			{"Organic Red Apples", "Fresh, crisp organic red apples. Perfect for snacking or baking. Rich in fiber and vitamin C.", "4.99", "Nature's Best"},
			{"Bananas", "Sweet, ripe bananas. Great source of potassium and natural energy. Perfect for breakfast or smoothies.", "2.49", "Tropical Fresh"},
			{"Strawberries", "Juicy, sweet strawberries. Packed with antioxidants and vitamin C. Ideal for desserts or fresh eating.", "5.99", "Berry Farm"},
			{"Blueberries", "Fresh blueberries loaded with antioxidants. Great for breakfast, baking, or as a healthy snack.", "6.99", "Mountain Berry"},
			{"Oranges", "Sweet, juicy oranges. High in vitamin C. Perfect for fresh juice or eating whole.", "3.99", "Citrus Grove"},
			{"Mangoes", "Sweet and juicy mangoes, perfect for smoothies or desserts. High in vitamin A and C.", "5.49", "Tropical Orchard"},
			{"Pineapple", "Fresh pineapple with tangy sweetness. Great for grilling, smoothies, or fruit salads.", "4.79", "Island Fresh"},
			{"Grapes", "Seedless table grapes. Sweet and crisp. Perfect for snacking or cheese boards.", "4.59", "Vine Valley"},
			{"Kiwi", "Tangy kiwi fruits rich in vitamin C. Great for fruit salads or smoothies.", "3.49", "Green Orchard"},
		},
	},
	{
		name: "Vegetables",
		products: []sample{
			{"Organic Carrots", "Fresh organic carrots. Crunchy and sweet. Rich in beta-carotene and vitamin A. Great for salads or cooking.", "2.99", "Garden Fresh"},
			{"Broccoli", "Fresh green broccoli. High in vitamins C and K. Perfect for steaming, roasting, or stir-frying.", "3.49", "Green Valley"},
			{"Spinach", "Fresh baby spinach leaves. Nutrient-dense leafy green. Perfect for salads, smoothies, or cooking.", "3.99", "Leafy Greens"},
			{"Tomatoes", "Ripe, juicy tomatoes. Perfect for salads, sandwiches, or cooking. Rich in lycopene and vitamin C.", "3.49", "Sunny Farms"},
			{"Bell Peppers", "Colorful bell peppers. Sweet and crisp. Great for salads, stir-fries, or roasting. High in vitamin C.", "4.99", "Rainbow Produce"},
			{"Cucumbers", "Cool and crisp cucumbers. Great for salads, pickling, or snacking. Refreshing and hydrating.", "2.79", "Green Meadow"},
			{"Sweet Potatoes", "Naturally sweet root vegetables rich in fiber and vitamin A. Perfect for roasting or mashing.", "3.29", "Farmstead"},
			{"Zucchini", "Tender zucchini squash. Great for grilling, roasting, or spiralizing into noodles.", "2.69", "Summer Fields"},
			{"Cauliflower", "Fresh cauliflower florets. Ideal for roasting, mashing, or low-carb rice substitutes.", "3.59", "Garden Pride"},
		},
	},
	{
		name: "Dairy",
		products: []sample{
			{"Whole Milk", "Fresh whole milk. Rich and creamy. Great source of calcium and protein. Perfect for drinking or cooking.", "4.49", "Farm Fresh Dairy"},
			{"Greek Yogurt", "Creamy Greek yogurt. High in protein and probiotics. Perfect for breakfast or as a healthy snack.", "5.99", "Mediterranean Delight"},
			{"Cheddar Cheese", "Sharp cheddar cheese. Aged for rich flavor. Perfect for sandwiches, cooking, or cheese boards.", "6.99", "Cheese Masters"},
			{"Butter", "Premium butter. Rich and creamy. Made from fresh cream. Perfect for baking and cooking.", "4.99", "Golden Farms"},
			{"Eggs", "Farm-fresh eggs. Free-range and organic. High in protein. Perfect for breakfast or baking.", "5.49", "Happy Hens"},
			{"Mozzarella", "Fresh mozzarella cheese. Soft and creamy. Ideal for pizzas, salads, and sandwiches.", "6.49", "Italian Creamery"},
			{"Almond Milk", "Unsweetened almond milk. Dairy-free and vegan. Great for cereals, coffee, and smoothies.", "3.99", "NutriChoice"},
			{"Parmesan Cheese", "Aged Parmesan cheese with a nutty flavor. Perfect for grating over pasta and salads.", "7.99", "Rustic Dairy"},
			{"Cottage Cheese", "Low-fat cottage cheese. High in protein and great for snacks or salads.", "4.79", "Valley Dairy"},
		},
	},
	{
		name: "Meat",
		products: []sample{
			{"Ground Beef", "Fresh ground beef. 80/20 lean to fat ratio. Perfect for burgers, meatballs, or tacos.", "7.99", "Premium Meats"},
			{"Chicken Breast", "Boneless, skinless chicken breast. Lean protein source. Perfect for grilling, baking, or pan-frying.", "8.99", "Farm Raised"},
			{"Salmon Fillet", "Fresh Atlantic salmon fillet. Rich in omega-3 fatty acids. Perfect for grilling or baking.", "12.99", "Ocean Fresh"},
			{"Pork Chops", "Bone-in pork chops. Tender and flavorful. Perfect for grilling or pan-searing.", "9.99", "Heritage Farms"},
			{"Turkey Breast", "Lean turkey breast. High in protein, low in fat. Perfect for sandwiches or roasting.", "6.99", "Free Range"},
			{"Bacon", "Smoked pork bacon. Crispy and flavorful. Perfect for breakfast or sandwiches.", "6.49", "Smoky Ridge"},
			{"Shrimp", "Raw peeled shrimp. Great for grilling, stir-fries, or pasta dishes. High in protein.", "11.99", "Sea Harvest"},
			{"Lamb Chops", "Tender lamb chops. Rich flavor, ideal for grilling or roasting.", "14.99", "Pasture Prime"},
			{"Sliced Ham", "Honey-glazed sliced ham. Ready for sandwiches or charcuterie boards.", "7.49", "Cured Classics"},
		},
	},
	{
		name: "Beverages",
		products: []sample{
			{"Orange Juice", "Fresh squeezed orange juice. 100% pure. Rich in vitamin C. Perfect for breakfast.", "4.99", "Sunshine Juice"},
			{"Coffee Beans", "Premium arabica coffee beans. Medium roast. Rich and smooth flavor. Perfect for morning brew.", "12.99", "Mountain Roast"},
			{"Green Tea", "Organic green tea. High in antioxidants. Light and refreshing. Great for health and wellness.", "5.99", "Zen Tea"},
			{"Sparkling Water", "Natural sparkling water. Zero calories, no sugar. Refreshing and hydrating.", "3.99", "Pure Springs"},
			{"Apple Juice", "100% pure apple juice. No added sugar. Sweet and refreshing. Great for kids and adults.", "4.49", "Orchard Fresh"},
			{"Kombucha", "Organic kombucha tea. Lightly effervescent with probiotics. Great for gut health.", "4.29", "Culture Brew"},
			{"Protein Shake", "Ready-to-drink protein shake with 20g protein. Perfect post-workout beverage.", "3.99", "PowerFuel"},
			{"Coconut Water", "Hydrating coconut water with natural electrolytes. Great post-workout drink.", "3.49", "Island Hydrate"},
			{"Herbal Tea", "Caffeine-free herbal tea blend with chamomile and mint. Calming and soothing.", "4.19", "Calm Leaf"},
		},
	},
	{
		name: "Snacks",
		products: []sample{
			{"Potato Chips", "Classic potato chips. Crispy and salty. Perfect for snacking or parties.", "3.99", "Crunchy Delights"},
			{"Dark Chocolate", "Premium dark chocolate. 70% cocoa. Rich and indulgent. High in antioxidants.", "5.99", "Cocoa Masters"},
			{"Trail Mix", "Mixed nuts, dried fruits, and chocolate chips. Energy-packed snack. Perfect for hiking or on-the-go.", "6.99", "Nature's Trail"},
			{"Granola Bars", "Healthy granola bars. Made with oats, nuts, and honey. Great for breakfast or snacks.", "4.99", "Healthy Bites"},
			{"Popcorn", "Light and fluffy popcorn. Low calorie snack. Perfect for movie nights or anytime snacking.", "2.99", "Popped Fresh"},
			{"Pretzels", "Baked pretzel twists. Lightly salted and crunchy. Great for dipping or snacking.", "3.49", "Twist & Crunch"},
			{"Fruit Gummies", "Assorted fruit gummies made with real fruit juice. Chewy and sweet.", "2.99", "Sweet Orchard"},
			{"Protein Bars", "High-protein bars with nuts and whey. Ideal for post-workout or on-the-go snacks.", "2.79", "Muscle Bite"},
			{"Rice Cakes", "Light and crunchy rice cakes. Low calorie base for spreads or snacks.", "2.49", "Crispy Rice"},
		},
	},
	{
		name: "Bakery",
		products: []sample{
			{"Whole Wheat Bread", "Fresh baked whole wheat bread. High in fiber. Perfect for sandwiches or toast.", "3.99", "Bakery Fresh"},
			{"Croissants", "Buttery, flaky croissants. Fresh baked daily. Perfect for breakfast or brunch.", "4.99", "French Bakery"},
			{"Bagels", "Fresh bagels. Chewy and delicious. Perfect with cream cheese or as a sandwich.", "4.49", "City Bakery"},
			{"Chocolate Chip Cookies", "Homemade chocolate chip cookies. Soft and chewy. Made with real chocolate chips.", "5.99", "Sweet Treats"},
			{"Sourdough Bread", "Artisan sourdough bread. Tangy flavor, crispy crust. Perfect for sandwiches or toast.", "5.49", "Artisan Bakers"},
			{"Banana Bread", "Moist banana bread with walnuts. Perfect with coffee or tea.", "5.79", "Home Bakery"},
			{"Muffins", "Assorted muffins: blueberry, chocolate chip, and banana nut. Freshly baked.", "5.29", "Morning Delight"},
			{"Cinnamon Rolls", "Soft cinnamon rolls with icing. Perfect warm breakfast treat.", "6.49", "Sweet Swirl"},
			{"Pita Bread", "Fresh pita pockets. Great for sandwiches, dips, or wraps.", "3.69", "Mediterranean Oven"},
		},
	},
	{
		name: "Frozen",
		products: []sample{
			{"Frozen Peas", "Frozen green peas. Flash frozen at peak freshness. Perfect for quick side dishes.", "2.99", "Frozen Fresh"},
			{"Ice Cream", "Premium vanilla ice cream. Rich and creamy. Made with real vanilla beans.", "6.99", "Creamy Delights"},
			{"Frozen Pizza", "Frozen margherita pizza. Ready to bake. Perfect for quick meals.", "7.99", "Pizza Express"},
			{"Frozen Berries", "Mixed frozen berries. Great for smoothies, baking, or yogurt. Flash frozen for freshness.", "4.99", "Berry Blend"},
			{"Frozen Vegetables Mix", "Mixed frozen vegetables. Broccoli, carrots, and peas. Perfect for stir-fries or sides.", "3.49", "Garden Mix"},
			{"Frozen Lasagna", "Family-size cheese lasagna. Oven-ready meal for quick dinners.", "9.99", "Italian Table"},
			{"Veggie Burgers", "Plant-based veggie burger patties. High in protein and fiber. Grill or pan-sear.", "7.49", "Green Grill"},
			{"Frozen Waffles", "Toaster-ready waffles. Quick breakfast option. Serve with syrup or fruit.", "3.99", "Morning Toast"},
			{"Frozen Dumplings", "Assorted vegetable dumplings. Steam or pan-fry for quick meals.", "5.99", "Asian Kitchen"},
		},
	},
}

// SampleProducts returns the static supermarket catalog used for seeding
func SampleProducts() []models.Product {
	var products []models.Product
	for _, c := range categories {
		for _, s := range c.products {
			products = append(products, models.Product{
				Name:        s.name,
				Description: s.description,
				Price:       decimal.RequireFromString(s.price),
				Category:    c.name,
				Brand:       s.brand,
				ImageURL:    PlaceholderImage,
			})
		}
	}
	return products
}

// categoryNames returns the category names in catalog order
func categoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.name
	}
	return names
}
