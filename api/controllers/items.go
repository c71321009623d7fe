package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cropsense/cropsense-backend/api/middleware"
	"github.com/cropsense/cropsense-backend/api/responses"
	"github.com/cropsense/cropsense-backend/api/validators"
	"github.com/cropsense/cropsense-backend/internal/items"
	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/types"
)

type itemEnvelope struct {
	types.SuccessEnvelope
	Item *items.ItemDTO `json:"item"`
}

type itemListEnvelope struct {
	types.SuccessEnvelope
	Items []items.ItemDTO `json:"items"`
	Count int             `json:"count"`
}

type createItemRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Contact     string          `json:"contact" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	ImageLink   *string         `json:"image_url"`
	Qty         *int            `json:"qty"`
}

type updateItemRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Contact     *string          `json:"contact"`
	Type        *string          `json:"type"`
	ImageLink   *string          `json:"image_url"`
	Qty         *int             `json:"qty"`
}

func CreateItem(svc *items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var req createItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.CreateListing(r.Context(), items.CreateItemDTO{
			OwnerID:     ownerID,
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			Contact:     req.Contact,
			Type:        req.Type,
			ImageLink:   req.ImageLink,
			Qty:         req.Qty,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, itemEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true, Message: "Item listed successfully"},
			Item:            item,
		})
	}
}

func GetItem(svc *items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := strings.TrimSpace(chi.URLParam(r, "itemId"))
		if itemID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		item, err := svc.GetListing(r.Context(), itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, itemEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Item:            item,
		})
	}
}

func ListItems(svc *items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemType := strings.TrimSpace(r.URL.Query().Get("type"))

		list, err := svc.ListListings(r.Context(), itemType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, itemListEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Items:           list,
			Count:           len(list),
		})
	}
}

func ListOwnItems(svc *items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		list, err := svc.ListOwnListings(r.Context(), ownerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, itemListEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Items:           list,
			Count:           len(list),
		})
	}
}

func UpdateItem(svc *items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		itemID := strings.TrimSpace(chi.URLParam(r, "itemId"))
		if itemID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		var req updateItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.UpdateListing(r.Context(), itemID, actorID, items.UpdateItemDTO{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			Contact:     req.Contact,
			Type:        req.Type,
			ImageLink:   req.ImageLink,
			Qty:         req.Qty,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, itemEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true, Message: "Item updated successfully"},
			Item:            item,
		})
	}
}

func DeleteItem(svc *items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		itemID := strings.TrimSpace(chi.URLParam(r, "itemId"))
		if itemID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		if err := svc.DeleteListing(r.Context(), itemID, actorID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.SuccessEnvelope{Success: true, Message: "Item deleted successfully"})
	}
}
