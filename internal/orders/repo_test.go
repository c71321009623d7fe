package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cropsense/cropsense-backend/pkg/db/models"
)

func newTestRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Order{}))
	return NewRepository(conn), conn
}

func backdateOrder(t *testing.T, conn *gorm.DB, orderID string, at time.Time) {
	t.Helper()
	err := conn.Model(&models.Order{}).
		Where("order_id = ?", orderID).
		UpdateColumn("created_at", at).Error
	require.NoError(t, err)
}

func TestCreateOrderDefaults(t *testing.T) {
	repo, _ := newTestRepo(t)
	user := uuid.New()

	order, err := repo.Create(context.Background(), CreateOrderDTO{
		ItemID:      "item-1",
		Qty:         2,
		PurchaserID: user,
	})
	require.NoError(t, err)
	require.NotEmpty(t, order.OrderID)
	require.Equal(t, models.OrderProgressPending, order.Progress)
	require.Equal(t, user, order.PurchaserID)
}

func TestListByUserNewestFirst(t *testing.T) {
	repo, conn := newTestRepo(t)
	ctx := context.Background()
	user := uuid.New()
	other := uuid.New()

	first, err := repo.Create(ctx, CreateOrderDTO{ItemID: "item-1", Qty: 1, PurchaserID: user})
	require.NoError(t, err)
	backdateOrder(t, conn, first.OrderID, time.Now().Add(-time.Hour))
	second, err := repo.Create(ctx, CreateOrderDTO{ItemID: "item-2", Qty: 1, PurchaserID: user})
	require.NoError(t, err)
	_, err = repo.Create(ctx, CreateOrderDTO{ItemID: "item-3", Qty: 1, PurchaserID: other})
	require.NoError(t, err)

	rows, err := repo.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, second.OrderID, rows[0].OrderID)
	require.Equal(t, first.OrderID, rows[1].OrderID)

	empty, err := repo.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, empty)
}
