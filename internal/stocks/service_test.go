package stocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/warehublabs/warehub-backend/pkg/db/models"
	"github.com/warehublabs/warehub-backend/pkg/errors"
)

type stubRepo struct {
	Repository

	byWarehouse map[int64][]OccupancyRow
	byID        map[int64]*models.Stock
	occupancy   map[int64]*OccupancyRow
	stored      map[int64]int64
	created     *models.Stock
	updated     *models.Stock
	deletedID   int64
	deleteHit   bool
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) ListByWarehouse(ctx context.Context, warehouseID int64) ([]OccupancyRow, error) {
	return s.byWarehouse[warehouseID], nil
}

func (s *stubRepo) FindWithOccupancy(ctx context.Context, id int64) (*OccupancyRow, error) {
	return s.occupancy[id], nil
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*models.Stock, error) {
	return s.byID[id], nil
}

func (s *stubRepo) Create(ctx context.Context, st *models.Stock) error {
	st.ID = 11
	s.created = st
	return nil
}

func (s *stubRepo) Update(ctx context.Context, st *models.Stock) error {
	s.updated = st
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) (bool, error) {
	s.deletedID = id
	return s.deleteHit, nil
}

func (s *stubRepo) SumStoredAmount(ctx context.Context, id int64) (int64, error) {
	return s.stored[id], nil
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubWarehouses struct {
	existing map[int64]bool
}

func (s stubWarehouses) Exists(ctx context.Context, warehouseID int64) (bool, error) {
	return s.existing[warehouseID], nil
}

func newTestService(t *testing.T, repo *stubRepo) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:       repo,
		Tx:         stubTx{},
		Warehouses: stubWarehouses{existing: map[int64]bool{1: true}},
	})
	require.NoError(t, err)
	return svc
}

func TestListByWarehouseMapsRows(t *testing.T) {
	svc := newTestService(t, &stubRepo{byWarehouse: map[int64][]OccupancyRow{
		1: {
			{ID: 10, Name: "Zone A", Capacity: 60, WarehouseID: 1, Current: 40},
			{ID: 11, Name: "Zone B", Capacity: 30, WarehouseID: 1},
		},
	}})

	out, err := svc.ListByWarehouse(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, StockSummary{ID: 10, Name: "Zone A", Capacity: 60, Current: 40}, out[0])
	assert.Zero(t, out[1].Current)
}

func TestGetUnknownStock(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.Get(context.Background(), 99)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeNotFound, typed.Code())
	assert.Equal(t, "Stock not found", typed.Message())
}

func TestCreateValidatesWarehouse(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo)

	row, err := svc.Create(context.Background(), CreateStockRequest{
		Name:        "Zone A",
		Capacity:    60,
		WarehouseID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), row.ID)
	assert.Equal(t, int64(1), row.WarehouseID)

	_, err = svc.Create(context.Background(), CreateStockRequest{
		Name:        "Zone B",
		Capacity:    60,
		WarehouseID: 2,
	})
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeValidation, typed.Code())
	assert.Equal(t, "Warehouse not found", typed.Message())
}

func TestCreateMissingFields(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	cases := []CreateStockRequest{
		{Capacity: 60, WarehouseID: 1},
		{Name: "Zone A", WarehouseID: 1},
		{Name: "Zone A", Capacity: 0, WarehouseID: 1},
		{Name: "Zone A", Capacity: 60},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		typed := errors.As(err)
		require.NotNil(t, typed, "request %+v", req)
		assert.Equal(t, errors.CodeValidation, typed.Code())
		assert.Equal(t, "Missing required fields", typed.Message())
	}
}

func TestUpdateStock(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*models.Stock{
		10: {ID: 10, Name: "Zone A", Capacity: 60, WarehouseID: 1},
	}}
	svc := newTestService(t, repo)

	row, err := svc.Update(context.Background(), 10, UpdateStockRequest{Name: "Zone A+", Capacity: 80})
	require.NoError(t, err)
	assert.Equal(t, "Zone A+", row.Name)
	assert.Equal(t, int64(80), row.Capacity)
	// The warehouse binding never changes on update.
	assert.Equal(t, int64(1), row.WarehouseID)

	_, err = svc.Update(context.Background(), 99, UpdateStockRequest{Name: "X", Capacity: 1})
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeNotFound, typed.Code())
}

func TestDeleteGuardsOccupiedStock(t *testing.T) {
	repo := &stubRepo{stored: map[int64]int64{10: 40}, deleteHit: true}
	svc := newTestService(t, repo)

	err := svc.Delete(context.Background(), 10)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeConflict, typed.Code())
	assert.Equal(t, "Stock is not empty", typed.Message())
	assert.Zero(t, repo.deletedID)
}

func TestDeleteEmptyStock(t *testing.T) {
	repo := &stubRepo{deleteHit: true}
	svc := newTestService(t, repo)

	require.NoError(t, svc.Delete(context.Background(), 10))
	assert.Equal(t, int64(10), repo.deletedID)
}

func TestDeleteUnknownStock(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	err := svc.Delete(context.Background(), 10)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeNotFound, typed.Code())
	assert.Equal(t, "Stock not found", typed.Message())
}
