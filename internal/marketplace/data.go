package marketplace

import "time"

// Seller is a verified supplier in the marketplace directory.
type Seller struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Rating         float64       `json:"rating"`
	Location       string        `json:"location"`
	Speciality     string        `json:"speciality"`
	Verified       bool          `json:"verified"`
	Established    string        `json:"established"`
	TotalSales     int           `json:"total_sales"`
	ProductLines   []string      `json:"product_lines"`
	Contact        SellerContact `json:"contact"`
	Certifications []string      `json:"certifications"`
	ShippingZones  []string      `json:"shipping_zones"`
	ResponseTime   string        `json:"response_time"`
}

type SellerContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

// SellerDetail pairs a seller with their product catalog.
type SellerDetail struct {
	Seller
	Products []Product `json:"products"`
}

// Product is a supply catalog entry.
type Product struct {
	ID             string            `json:"id"`
	SellerID       string            `json:"seller_id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory"`
	Price          float64           `json:"price"`
	Unit           string            `json:"unit"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	InStock        bool              `json:"in_stock"`
	StockQuantity  int               `json:"stock_quantity"`
	MinimumOrder   int               `json:"minimum_order"`
	BulkPricing    []BulkTier        `json:"bulk_pricing"`
	Shipping       ShippingTerms     `json:"shipping"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Tags           []string          `json:"tags"`
}

type BulkTier struct {
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
}

type ShippingTerms struct {
	Cost                  float64 `json:"cost"`
	EstimatedDays         string  `json:"estimated_days"`
	FreeShippingThreshold float64 `json:"free_shipping_threshold"`
}

// ProductDetail pairs a product with its seller.
type ProductDetail struct {
	Product
	Seller *Seller `json:"seller"`
}

// Category groups the catalog for browsing.
type Category struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
	ProductCount  int      `json:"product_count"`
}

// Quote is a priced response to a supply inquiry.
type Quote struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	SellerID          string    `json:"seller_id"`
	Quantity          int       `json:"quantity"`
	UnitPrice         float64   `json:"unit_price"`
	Subtotal          float64   `json:"subtotal"`
	Shipping          float64   `json:"shipping"`
	Total             float64   `json:"total"`
	EstimatedDelivery string    `json:"estimated_delivery"`
	ValidUntil        time.Time `json:"valid_until"`
	Message           string    `json:"message,omitempty"`
	ContactInfo       string    `json:"contact_info"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

var seedSellers = []Seller{
	{
		ID:           "seller-001",
		Name:         "GreenHarvest Supplies",
		Rating:       4.9,
		Location:     "Iowa, USA",
		Speciality:   "Organic Fertilizers",
		Verified:     true,
		Established:  "2018",
		TotalSales:   1247,
		ProductLines: []string{"NPK Blends", "Compost", "Bio-stimulants"},
		Contact: SellerContact{
			Email:   "contact@greenharvest.com",
			Phone:   "+1-515-555-0123",
			Website: "https://greenharvest.com",
		},
		Certifications: []string{"OMRI Listed", "USDA Organic", "ISO 9001"},
		ShippingZones:  []string{"Iowa", "Illinois", "Minnesota", "Wisconsin"},
		ResponseTime:   "< 2 hours",
	},
	{
		ID:           "seller-002",
		Name:         "PrecisionAg Tools",
		Rating:       4.8,
		Location:     "Nebraska, USA",
		Speciality:   "Smart Equipment",
		Verified:     true,
		Established:  "2015",
		TotalSales:   892,
		ProductLines: []string{"Soil Sensors", "Irrigation Systems", "Drones"},
		Contact: SellerContact{
			Email:   "sales@precisionag.com",
			Phone:   "+1-402-555-0198",
			Website: "https://precisionag.com",
		},
		Certifications: []string{"FCC Certified", "CE Marked", "RoHS Compliant"},
		ShippingZones:  []string{"Nebraska", "Kansas", "Oklahoma", "Colorado"},
		ResponseTime:   "< 4 hours",
	},
	{
		ID:           "seller-003",
		Name:         "Heritage Seeds Co.",
		Rating:       4.7,
		Location:     "Kansas, USA",
		Speciality:   "Premium Seeds",
		Verified:     true,
		Established:  "2012",
		TotalSales:   2156,
		ProductLines: []string{"Corn Seeds", "Soybean Seeds", "Cover Crops"},
		Contact: SellerContact{
			Email:   "orders@heritageseeds.com",
			Phone:   "+1-620-555-0176",
			Website: "https://heritageseeds.com",
		},
		Certifications: []string{"AOSCA Certified", "Non-GMO Project", "Seed Quality Certified"},
		ShippingZones:  []string{"Kansas", "Oklahoma", "Texas", "Missouri"},
		ResponseTime:   "< 1 hour",
	},
}

var seedProducts = []Product{
	{
		ID:          "prod-001",
		SellerID:    "seller-001",
		Name:        "Premium NPK 15-15-15 Fertilizer",
		Category:    "Fertilizers",
		Subcategory: "Granular Fertilizers",
		Price:       28.99,
		Unit:        "50 lb bag",
		Description: "Balanced granular fertilizer perfect for corn and soybean production",
		Features:    []string{"Slow-release formula", "Organic certified", "Weather resistant"},
		Specifications: map[string]string{
			"nitrogen":         "15%",
			"phosphorus":       "15%",
			"potassium":        "15%",
			"coverage":         "2,500 sq ft",
			"application_rate": "2-3 lbs per 1,000 sq ft",
		},
		InStock:       true,
		StockQuantity: 1250,
		MinimumOrder:  10,
		BulkPricing: []BulkTier{
			{Quantity: 50, PricePerUnit: 26.99},
			{Quantity: 100, PricePerUnit: 24.99},
			{Quantity: 500, PricePerUnit: 22.99},
		},
		Shipping: ShippingTerms{Cost: 15.99, EstimatedDays: "3-5", FreeShippingThreshold: 500},
		Rating:   4.8,
		Reviews:  156,
		Tags:     []string{"organic", "slow-release", "all-purpose"},
	},
	{
		ID:          "prod-002",
		SellerID:    "seller-002",
		Name:        "SmartSoil Pro Moisture Sensor",
		Category:    "Equipment",
		Subcategory: "Monitoring Systems",
		Price:       189.99,
		Unit:        "per sensor",
		Description: "Wireless soil moisture and temperature monitoring system",
		Features:    []string{"Real-time monitoring", "Mobile app connectivity", "2-year battery life"},
		Specifications: map[string]string{
			"range":        "300 ft wireless",
			"depth":        "6-12 inches",
			"accuracy":     "+/-3%",
			"battery_life": "24 months",
			"connectivity": "LoRa/WiFi",
		},
		InStock:       true,
		StockQuantity: 75,
		MinimumOrder:  1,
		BulkPricing: []BulkTier{
			{Quantity: 5, PricePerUnit: 179.99},
			{Quantity: 10, PricePerUnit: 169.99},
			{Quantity: 25, PricePerUnit: 159.99},
		},
		Shipping: ShippingTerms{Cost: 12.99, EstimatedDays: "2-4", FreeShippingThreshold: 200},
		Rating:   4.9,
		Reviews:  89,
		Tags:     []string{"smart-farming", "wireless", "precision-ag"},
	},
	{
		ID:          "prod-003",
		SellerID:    "seller-003",
		Name:        "Elite Corn Seed - Variety XR4820",
		Category:    "Seeds",
		Subcategory: "Corn Seeds",
		Price:       145.00,
		Unit:        "50,000 kernel bag",
		Description: "High-yield corn variety optimized for Midwest growing conditions",
		Features:    []string{"110-day maturity", "Disease resistant", "High yield potential"},
		Specifications: map[string]string{
			"maturity":        "110 days",
			"yield_potential": "200+ bu/acre",
			"planting_rate":   "32,000-36,000 seeds/acre",
			"germination":     "95%+",
			"traits":          "Non-GMO",
		},
		InStock:       true,
		StockQuantity: 45,
		MinimumOrder:  1,
		BulkPricing: []BulkTier{
			{Quantity: 5, PricePerUnit: 139.99},
			{Quantity: 10, PricePerUnit: 134.99},
			{Quantity: 20, PricePerUnit: 129.99},
		},
		Shipping: ShippingTerms{Cost: 25.99, EstimatedDays: "5-7", FreeShippingThreshold: 1000},
		Rating:   4.7,
		Reviews:  203,
		Tags:     []string{"high-yield", "disease-resistant", "non-gmo"},
	},
}

var seedCategories = []Category{
	{
		Name:          "Fertilizers",
		Subcategories: []string{"Granular Fertilizers", "Liquid Fertilizers", "Organic Fertilizers"},
		ProductCount:  45,
	},
	{
		Name:          "Seeds",
		Subcategories: []string{"Corn Seeds", "Soybean Seeds", "Cover Crops", "Vegetable Seeds"},
		ProductCount:  128,
	},
	{
		Name:          "Equipment",
		Subcategories: []string{"Monitoring Systems", "Irrigation Equipment", "Harvest Equipment"},
		ProductCount:  67,
	},
	{
		Name:          "Pesticides",
		Subcategories: []string{"Herbicides", "Insecticides", "Fungicides", "Organic Pesticides"},
		ProductCount:  89,
	},
	{
		Name:          "Tools",
		Subcategories: []string{"Hand Tools", "Power Tools", "Measuring Equipment"},
		ProductCount:  34,
	},
}
