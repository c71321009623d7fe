package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cropsense/cropsense-backend/api/middleware"
	"github.com/cropsense/cropsense-backend/api/responses"
	"github.com/cropsense/cropsense-backend/api/validators"
	"github.com/cropsense/cropsense-backend/internal/orders"
	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/types"
)

type placeOrderRequest struct {
	ItemID string `json:"item_id"`
	Qty    int    `json:"qty"`
	UserID string `json:"userId"`
}

type orderEnvelope struct {
	types.SuccessEnvelope
	Order *orders.OrderDTO `json:"order"`
}

type orderListEnvelope struct {
	types.SuccessEnvelope
	Orders []orders.EnrichedOrderDTO `json:"orders"`
	Count  int                       `json:"count"`
}

// PlaceOrder handles POST /api/orders. The purchaser may be named in the
// body; when absent, the authenticated user is used.
func PlaceOrder(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req placeOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := resolvePurchaser(r, req.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), orders.PlaceOrderInput{
			ItemID: req.ItemID,
			Qty:    req.Qty,
			UserID: userID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, orderEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true, Message: "Order placed successfully"},
			Order:           order,
		})
	}
}

// ListOrders handles GET /api/orders?user=. The query parameter defaults to
// the authenticated user.
func ListOrders(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := resolvePurchaser(r, r.URL.Query().Get("user"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.GetUserOrders(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orderListEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Orders:          list,
			Count:           len(list),
		})
	}
}

func resolvePurchaser(r *http.Request, explicit string) (uuid.UUID, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		id, err := uuid.Parse(explicit)
		if err != nil {
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id")
		}
		return id, nil
	}
	id, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	return id, nil
}
