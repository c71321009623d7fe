package marketplace

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
)

const quoteValidity = 7 * 24 * time.Hour

// Service serves the supplier directory and catalog until real vendor
// onboarding exists. Quotes are priced but not persisted.
type Service struct {
	now func() time.Time
}

// NewService builds the mock marketplace service.
func NewService() *Service {
	return &Service{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// SellerFilter narrows the supplier directory.
type SellerFilter struct {
	Speciality   string
	Location     string
	VerifiedOnly bool
	MinRating    float64
}

// Sellers lists suppliers matching the filter.
func (s *Service) Sellers(filter SellerFilter) []Seller {
	sellers := make([]Seller, 0, len(seedSellers))
	for _, seller := range seedSellers {
		if filter.Speciality != "" && !containsFold(seller.Speciality, filter.Speciality) {
			continue
		}
		if filter.Location != "" && !containsFold(seller.Location, filter.Location) {
			continue
		}
		if filter.VerifiedOnly && !seller.Verified {
			continue
		}
		if seller.Rating < filter.MinRating {
			continue
		}
		sellers = append(sellers, seller)
	}
	return sellers
}

// Seller returns one supplier together with their catalog.
func (s *Service) Seller(id string) (*SellerDetail, error) {
	seller := findSeller(id)
	if seller == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Seller not found")
	}

	products := make([]Product, 0)
	for _, product := range seedProducts {
		if product.SellerID == id {
			products = append(products, product)
		}
	}
	return &SellerDetail{Seller: *seller, Products: products}, nil
}

// ProductFilter narrows the catalog listing.
type ProductFilter struct {
	Category    string
	Subcategory string
	MinPrice    *float64
	MaxPrice    *float64
	InStockOnly bool
	Search      string
}

// Products lists catalog entries matching the filter. Search matches name,
// description, and tags.
func (s *Service) Products(filter ProductFilter) []Product {
	products := make([]Product, 0, len(seedProducts))
	for _, product := range seedProducts {
		if filter.Category != "" && !strings.EqualFold(product.Category, filter.Category) {
			continue
		}
		if filter.Subcategory != "" && !strings.EqualFold(product.Subcategory, filter.Subcategory) {
			continue
		}
		if filter.MinPrice != nil && product.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && product.Price > *filter.MaxPrice {
			continue
		}
		if filter.InStockOnly && !product.InStock {
			continue
		}
		if filter.Search != "" && !matchesSearch(product, filter.Search) {
			continue
		}
		products = append(products, product)
	}
	return products
}

// Product returns one catalog entry joined with its seller.
func (s *Service) Product(id string) (*ProductDetail, error) {
	for _, product := range seedProducts {
		if product.ID == id {
			return &ProductDetail{Product: product, Seller: findSeller(product.SellerID)}, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
}

// Categories lists the catalog categories.
func (s *Service) Categories() []Category {
	return append([]Category(nil), seedCategories...)
}

// QuoteInput carries a supply inquiry.
type QuoteInput struct {
	ProductID   string
	SellerID    string
	Quantity    int
	Message     string
	ContactInfo string
}

// RequestQuote prices an inquiry against the product's bulk tiers. Orders
// large enough to clear the free-shipping threshold ship at no cost. The
// quote is valid for seven days and is not persisted.
func (s *Service) RequestQuote(input QuoteInput) (*Quote, error) {
	if input.ProductID == "" || input.SellerID == "" || input.Quantity <= 0 || input.ContactInfo == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields: productId, sellerId, quantity, contactInfo")
	}

	var product *Product
	for i := range seedProducts {
		if seedProducts[i].ID == input.ProductID {
			product = &seedProducts[i]
			break
		}
	}
	if product == nil || findSeller(input.SellerID) == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product or seller not found")
	}

	unitPrice := product.Price
	for _, tier := range product.BulkPricing {
		if input.Quantity >= tier.Quantity && tier.PricePerUnit < unitPrice {
			unitPrice = tier.PricePerUnit
		}
	}

	subtotal := unitPrice * float64(input.Quantity)
	shipping := product.Shipping.Cost
	if subtotal >= product.Shipping.FreeShippingThreshold {
		shipping = 0
	}

	now := s.now()
	return &Quote{
		ID:                uuid.NewString(),
		ProductID:         input.ProductID,
		SellerID:          input.SellerID,
		Quantity:          input.Quantity,
		UnitPrice:         unitPrice,
		Subtotal:          subtotal,
		Shipping:          shipping,
		Total:             subtotal + shipping,
		EstimatedDelivery: product.Shipping.EstimatedDays,
		ValidUntil:        now.Add(quoteValidity),
		Message:           input.Message,
		ContactInfo:       input.ContactInfo,
		Status:            "pending",
		CreatedAt:         now,
	}, nil
}

func findSeller(id string) *Seller {
	for i := range seedSellers {
		if seedSellers[i].ID == id {
			return &seedSellers[i]
		}
	}
	return nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesSearch(product Product, term string) bool {
	if containsFold(product.Name, term) || containsFold(product.Description, term) {
		return true
	}
	for _, tag := range product.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}
