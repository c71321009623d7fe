package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/cropsense/cropsense-backend/internal/items"
	"github.com/cropsense/cropsense-backend/pkg/db/models"
	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/metrics"
)

type repository interface {
	Create(ctx context.Context, dto CreateOrderDTO) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
}

// ItemStore is the stock accessor surface the coordinator depends on.
type ItemStore interface {
	ReadStock(ctx context.Context, itemID string) (items.StockSnapshot, error)
	WriteStock(ctx context.Context, itemID string, sold int, soldOut bool) error
	FindSnapshots(ctx context.Context, itemIDs []string) (map[string]*items.ItemSnapshot, error)
}

// Service coordinates order placement against independently-written item and
// order rows. The two writes are not atomic: stock is reserved first, the
// order row is inserted second, and a failed insert triggers a compensating
// stock write. A failed compensation leaves the item over-reserved and is
// surfaced through logs and metrics for reconciliation.
type Service struct {
	repo    repository
	items   ItemStore
	logg    *logger.Logger
	metrics *metrics.OrderMetrics
}

// NewService builds the order placement service.
func NewService(repo repository, itemStore ItemStore, logg *logger.Logger, om *metrics.OrderMetrics) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if itemStore == nil {
		return nil, fmt.Errorf("item store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{repo: repo, items: itemStore, logg: logg, metrics: om}, nil
}

// PlaceOrder reserves stock and records the order.
//
// Sequence: validate, read stock, check the ceiling, overwrite the stock
// counters, insert the order row. Reads and writes against the item are
// independent operations with no isolation between concurrent calls; two
// placements racing on the same item can both pass the ceiling check. The
// ceiling therefore holds under serial execution only.
func (s *Service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderDTO, error) {
	if input.ItemID == "" || input.Qty == 0 {
		s.metrics.IncFailed("invalid_argument")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Item ID and quantity are required")
	}
	if input.Qty < 0 {
		s.metrics.IncFailed("invalid_argument")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Quantity must be greater than 0")
	}
	if input.UserID == uuid.Nil {
		s.metrics.IncFailed("invalid_argument")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "User is required")
	}

	ctx = s.logg.WithItemID(ctx, input.ItemID)

	stock, err := s.items.ReadStock(ctx, input.ItemID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			s.metrics.IncFailed("item_not_found")
			return nil, err
		}
		s.metrics.IncFailed("upstream_unavailable")
		return nil, err
	}

	currentSold := stock.Sold
	if stock.Qty != nil && currentSold+input.Qty > *stock.Qty {
		s.metrics.IncFailed("insufficient_stock")
		return nil, pkgerrors.New(pkgerrors.CodeInsufficientStock, "Insufficient stock available")
	}

	newSold := currentSold + input.Qty
	newSoldOut := stock.Qty != nil && newSold >= *stock.Qty

	if err := s.items.WriteStock(ctx, input.ItemID, newSold, newSoldOut); err != nil {
		s.metrics.IncFailed("reservation_failed")
		return nil, pkgerrors.Wrap(pkgerrors.CodeReservation, err, "reserving stock")
	}

	order, err := s.repo.Create(ctx, CreateOrderDTO{
		ItemID:      input.ItemID,
		Qty:         input.Qty,
		PurchaserID: input.UserID,
	})
	if err != nil {
		s.metrics.IncFailed("order_creation_failed")
		s.compensate(ctx, input.ItemID, currentSold, stock.Qty, err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeOrderCreation, err, "creating order")
	}

	s.metrics.IncPlaced()
	ctx = s.logg.WithOrderID(ctx, order.OrderID)
	s.logg.Info(ctx, "orders.placed")
	return FromModel(order), nil
}

// compensate restores the stock counters to their pre-reservation values
// after a failed order insert. Best effort: a failed compensating write
// leaves stock reserved with no order to justify it, which is a real data
// inconsistency, so it is logged loudly rather than returned to the caller.
func (s *Service) compensate(ctx context.Context, itemID string, priorSold int, qty *int, cause error) {
	priorSoldOut := qty != nil && priorSold >= *qty
	if err := s.items.WriteStock(ctx, itemID, priorSold, priorSoldOut); err != nil {
		s.metrics.IncCompensation("failed")
		s.logg.Error(ctx, "orders.compensation_failed", multierr.Combine(cause, err))
		return
	}
	s.metrics.IncCompensation("restored")
	s.logg.Warn(ctx, "orders.compensated")
}

// GetUserOrders lists the user's orders joined with listing snapshots. A
// failed snapshot lookup degrades to null snapshots instead of failing the
// whole read, so history stays visible when listings are gone or the lookup
// errors.
func (s *Service) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]EnrichedOrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "User is required")
	}

	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}

	seen := make(map[string]struct{}, len(rows))
	itemIDs := make([]string, 0, len(rows))
	for i := range rows {
		if _, ok := seen[rows[i].ItemID]; ok {
			continue
		}
		seen[rows[i].ItemID] = struct{}{}
		itemIDs = append(itemIDs, rows[i].ItemID)
	}

	snapshots := map[string]*items.ItemSnapshot{}
	if len(itemIDs) > 0 {
		loaded, err := s.items.FindSnapshots(ctx, itemIDs)
		if err != nil {
			s.logg.Warn(s.logg.WithUserID(ctx, userID.String()), "orders.snapshot_lookup_failed")
		} else {
			snapshots = loaded
		}
	}

	enriched := make([]EnrichedOrderDTO, 0, len(rows))
	for i := range rows {
		enriched = append(enriched, EnrichedOrderDTO{
			OrderDTO: *FromModel(&rows[i]),
			Items:    snapshots[rows[i].ItemID],
		})
	}
	return enriched, nil
}
