package marketplace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
)

func newFixedService(now time.Time) *Service {
	return &Service{now: func() time.Time { return now }}
}

func TestSellersFiltering(t *testing.T) {
	svc := newFixedService(time.Now())

	require.Len(t, svc.Sellers(SellerFilter{}), 3)
	require.Len(t, svc.Sellers(SellerFilter{Speciality: "organic"}), 1, "speciality match is a case-insensitive substring")
	require.Len(t, svc.Sellers(SellerFilter{Location: "nebraska"}), 1)
	require.Len(t, svc.Sellers(SellerFilter{MinRating: 4.8}), 2)
	require.Empty(t, svc.Sellers(SellerFilter{Speciality: "livestock"}))
}

func TestSellerJoinsCatalog(t *testing.T) {
	svc := newFixedService(time.Now())

	detail, err := svc.Seller("seller-001")
	require.NoError(t, err)
	require.Equal(t, "GreenHarvest Supplies", detail.Name)
	require.Len(t, detail.Products, 1)
	require.Equal(t, "prod-001", detail.Products[0].ID)

	_, err = svc.Seller("seller-999")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	require.Equal(t, "Seller not found", typed.Message())
}

func TestProductsFiltering(t *testing.T) {
	svc := newFixedService(time.Now())

	require.Len(t, svc.Products(ProductFilter{}), 3)
	require.Len(t, svc.Products(ProductFilter{Category: "seeds"}), 1)
	require.Len(t, svc.Products(ProductFilter{Subcategory: "monitoring systems"}), 1)

	min := 100.0
	require.Len(t, svc.Products(ProductFilter{MinPrice: &min}), 2)
	max := 50.0
	require.Len(t, svc.Products(ProductFilter{MaxPrice: &max}), 1)

	require.Len(t, svc.Products(ProductFilter{Search: "wireless"}), 1, "search covers name, description, and tags")
	require.Len(t, svc.Products(ProductFilter{Search: "non-gmo"}), 1)
	require.Empty(t, svc.Products(ProductFilter{Search: "tractor"}))
}

func TestProductJoinsSeller(t *testing.T) {
	svc := newFixedService(time.Now())

	detail, err := svc.Product("prod-002")
	require.NoError(t, err)
	require.NotNil(t, detail.Seller)
	require.Equal(t, "PrecisionAg Tools", detail.Seller.Name)

	_, err = svc.Product("prod-999")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	require.Equal(t, "Product not found", typed.Message())
}

func TestCategories(t *testing.T) {
	svc := newFixedService(time.Now())
	categories := svc.Categories()
	require.Len(t, categories, 5)
	require.Equal(t, "Fertilizers", categories[0].Name)
}

func TestRequestQuoteValidation(t *testing.T) {
	svc := newFixedService(time.Now())

	for _, input := range []QuoteInput{
		{SellerID: "seller-001", Quantity: 10, ContactInfo: "farmer@example.com"},
		{ProductID: "prod-001", Quantity: 10, ContactInfo: "farmer@example.com"},
		{ProductID: "prod-001", SellerID: "seller-001", ContactInfo: "farmer@example.com"},
		{ProductID: "prod-001", SellerID: "seller-001", Quantity: 10},
	} {
		_, err := svc.RequestQuote(input)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		require.Equal(t, pkgerrors.CodeValidation, typed.Code())
		require.Equal(t, "Missing required fields: productId, sellerId, quantity, contactInfo", typed.Message())
	}

	_, err := svc.RequestQuote(QuoteInput{ProductID: "prod-999", SellerID: "seller-001", Quantity: 10, ContactInfo: "c"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	require.Equal(t, "Product or seller not found", typed.Message())
}

func TestRequestQuotePricing(t *testing.T) {
	now := time.Date(2024, 9, 18, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(now)

	// Below every bulk tier: list price plus shipping.
	quote, err := svc.RequestQuote(QuoteInput{ProductID: "prod-001", SellerID: "seller-001", Quantity: 10, ContactInfo: "farmer@example.com"})
	require.NoError(t, err)
	require.Equal(t, 28.99, quote.UnitPrice)
	require.Equal(t, 15.99, quote.Shipping)
	require.InDelta(t, 28.99*10+15.99, quote.Total, 0.001)
	require.Equal(t, "pending", quote.Status)
	require.Equal(t, now.Add(7*24*time.Hour), quote.ValidUntil)

	// Deepest applicable tier wins and the subtotal clears free shipping.
	quote, err = svc.RequestQuote(QuoteInput{ProductID: "prod-001", SellerID: "seller-001", Quantity: 100, ContactInfo: "farmer@example.com"})
	require.NoError(t, err)
	require.Equal(t, 24.99, quote.UnitPrice)
	require.Equal(t, 0.0, quote.Shipping)
	require.InDelta(t, 24.99*100, quote.Total, 0.001)
}
