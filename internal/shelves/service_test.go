package shelves

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/warehublabs/warehub-backend/pkg/db/models"
	"github.com/warehublabs/warehub-backend/pkg/errors"
)

type stubRepo struct {
	items     map[int64][]ItemRow
	lastOrder Order
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) ListShelvesByStock(ctx context.Context, stockID int64) ([]models.Shelf, error) {
	return nil, nil
}

func (s *stubRepo) ListItemsByStock(ctx context.Context, stockID int64, order Order) ([]ItemRow, error) {
	s.lastOrder = order
	return s.items[stockID], nil
}

func (s *stubRepo) StockExists(ctx context.Context, stockID int64) (bool, error) {
	_, ok := s.items[stockID]
	return ok, nil
}

func TestListItemsMapsRows(t *testing.T) {
	received := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubRepo{items: map[int64][]ItemRow{
		10: {{
			ID:          1,
			ShelfID:     3,
			Amount:      20,
			ProductName: "Cooler",
			SKU:         "CL-100",
			Brand:       "Corsair",
			ImageURL:    "https://img.example/cooler.jpg",
			ReceivedAt:  received,
		}},
	}}
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)

	out, err := svc.ListItems(context.Background(), 10, OrderQtyDesc)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, OrderQtyDesc, repo.lastOrder)
	assert.Equal(t, "Cooler", out[0].ProductName)
	assert.Equal(t, int64(20), out[0].Amount)
	assert.Equal(t, received.UnixMilli(), out[0].ReceivedAt)
}

func TestListItemsUnknownStock(t *testing.T) {
	svc, err := NewService(ServiceParams{Repo: &stubRepo{items: map[int64][]ItemRow{}}})
	require.NoError(t, err)

	_, err = svc.ListItems(context.Background(), 99, DefaultOrder)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeNotFound, typed.Code())
	assert.Equal(t, "Stock not found", typed.Message())
}

func TestListItemsZeroReceivedAt(t *testing.T) {
	repo := &stubRepo{items: map[int64][]ItemRow{
		10: {{ID: 1, ProductName: "Unstamped"}},
	}}
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)

	out, err := svc.ListItems(context.Background(), 10, DefaultOrder)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Zero(t, out[0].ReceivedAt)
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, OrderQtyDesc, ParseOrder("qty-desc"))
	assert.Equal(t, DefaultOrder, ParseOrder(""))
	assert.Equal(t, DefaultOrder, ParseOrder("amount; DROP TABLE shelf_items"))
}
