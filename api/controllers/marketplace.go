package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cropsense/cropsense-backend/api/responses"
	"github.com/cropsense/cropsense-backend/api/validators"
	"github.com/cropsense/cropsense-backend/internal/marketplace"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/types"
)

type marketplaceDataEnvelope struct {
	types.SuccessEnvelope
	Data      any       `json:"data"`
	Total     *int      `json:"total,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func marketplaceEnvelope(data any) marketplaceDataEnvelope {
	return marketplaceDataEnvelope{
		SuccessEnvelope: types.SuccessEnvelope{Success: true},
		Data:            data,
		Timestamp:       time.Now().UTC(),
	}
}

func MarketplaceSellers(svc *marketplace.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		minRating, err := validators.ParseQueryFloat(r, "rating")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := marketplace.SellerFilter{
			Speciality:   strings.TrimSpace(query.Get("speciality")),
			Location:     strings.TrimSpace(query.Get("location")),
			VerifiedOnly: strings.EqualFold(query.Get("verified"), "true"),
		}
		if minRating != nil {
			filter.MinRating = *minRating
		}

		sellers := svc.Sellers(filter)
		total := len(sellers)
		envelope := marketplaceEnvelope(sellers)
		envelope.Total = &total
		responses.WriteSuccess(w, envelope)
	}
}

func MarketplaceSeller(svc *marketplace.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := svc.Seller(chi.URLParam(r, "sellerId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, marketplaceEnvelope(detail))
	}
}

func MarketplaceProducts(svc *marketplace.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		minPrice, err := validators.ParseQueryFloat(r, "minPrice")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryFloat(r, "maxPrice")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := svc.Products(marketplace.ProductFilter{
			Category:    strings.TrimSpace(query.Get("category")),
			Subcategory: strings.TrimSpace(query.Get("subcategory")),
			MinPrice:    minPrice,
			MaxPrice:    maxPrice,
			InStockOnly: strings.EqualFold(query.Get("inStock"), "true"),
			Search:      strings.TrimSpace(query.Get("search")),
		})
		total := len(products)
		envelope := marketplaceEnvelope(products)
		envelope.Total = &total
		responses.WriteSuccess(w, envelope)
	}
}

func MarketplaceProduct(svc *marketplace.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := svc.Product(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, marketplaceEnvelope(detail))
	}
}

func MarketplaceCategories(svc *marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := svc.Categories()
		total := len(categories)
		envelope := marketplaceEnvelope(categories)
		envelope.Total = &total
		responses.WriteSuccess(w, envelope)
	}
}

type quoteRequest struct {
	ProductID   string `json:"productId"`
	SellerID    string `json:"sellerId"`
	Quantity    int    `json:"quantity"`
	Message     string `json:"message"`
	ContactInfo string `json:"contactInfo"`
}

func MarketplaceQuote(svc *marketplace.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.RequestQuote(marketplace.QuoteInput{
			ProductID:   req.ProductID,
			SellerID:    req.SellerID,
			Quantity:    req.Quantity,
			Message:     req.Message,
			ContactInfo: req.ContactInfo,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		envelope := marketplaceEnvelope(quote)
		envelope.Message = "Quote request submitted successfully"
		responses.WriteSuccessStatus(w, http.StatusCreated, envelope)
	}
}
