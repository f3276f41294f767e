package stocks

import (
	"context"
	stdErrors "errors"
	"strings"

	"gorm.io/gorm"

	"github.com/warehublabs/warehub-backend/pkg/db/models"
	"github.com/warehublabs/warehub-backend/pkg/errors"
)

// TxRunner runs a function inside one database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// WarehouseChecker verifies a warehouse id refers to an existing row.
type WarehouseChecker interface {
	Exists(ctx context.Context, warehouseID int64) (bool, error)
}

// ServiceParams groups dependencies for the stock service.
type ServiceParams struct {
	Repo       Repository
	Tx         TxRunner
	Warehouses WarehouseChecker
}

// Service orchestrates stock area operations.
type Service struct {
	repo       Repository
	tx         TxRunner
	warehouses WarehouseChecker
}

// NewService builds a stock service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, stdErrors.New("repo is required")
	}
	if params.Tx == nil {
		return nil, stdErrors.New("tx runner is required")
	}
	if params.Warehouses == nil {
		return nil, stdErrors.New("warehouse checker is required")
	}
	return &Service{repo: params.Repo, tx: params.Tx, warehouses: params.Warehouses}, nil
}

// ListByWarehouse returns the warehouse's stock areas with derived occupancy.
func (s *Service) ListByWarehouse(ctx context.Context, warehouseID int64) ([]StockSummary, error) {
	rows, err := s.repo.ListByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list stocks by warehouse")
	}
	out := make([]StockSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSummary(row))
	}
	return out, nil
}

// Get returns one stock area with derived occupancy.
func (s *Service) Get(ctx context.Context, id int64) (*StockSummary, error) {
	row, err := s.repo.FindWithOccupancy(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "find stock")
	}
	if row == nil {
		return nil, errors.New(errors.CodeNotFound, "Stock not found")
	}
	summary := toSummary(*row)
	return &summary, nil
}

// Create validates the payload and inserts the stock area. The referenced
// warehouse must exist; a dangling id is a payload problem, not a 404.
func (s *Service) Create(ctx context.Context, req CreateStockRequest) (*StockRow, error) {
	if strings.TrimSpace(req.Name) == "" || req.Capacity <= 0 || req.WarehouseID <= 0 {
		return nil, errors.New(errors.CodeValidation, "Missing required fields")
	}

	exists, err := s.warehouses.Exists(ctx, req.WarehouseID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "check warehouse")
	}
	if !exists {
		return nil, errors.New(errors.CodeValidation, "Warehouse not found")
	}

	st := models.Stock{
		Name:        strings.TrimSpace(req.Name),
		Capacity:    req.Capacity,
		WarehouseID: req.WarehouseID,
	}
	if err := s.repo.Create(ctx, &st); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "create stock")
	}

	row := toRow(st)
	return &row, nil
}

// Update replaces the name and capacity of an existing stock area.
func (s *Service) Update(ctx context.Context, id int64, req UpdateStockRequest) (*StockRow, error) {
	if strings.TrimSpace(req.Name) == "" || req.Capacity <= 0 {
		return nil, errors.New(errors.CodeValidation, "Missing required fields")
	}

	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "find stock")
	}
	if st == nil {
		return nil, errors.New(errors.CodeNotFound, "Stock not found")
	}

	st.Name = strings.TrimSpace(req.Name)
	st.Capacity = req.Capacity
	if err := s.repo.Update(ctx, st); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "update stock")
	}

	row := toRow(*st)
	return &row, nil
}

// Delete removes an empty stock area. The occupancy check and the delete run
// in one transaction so a concurrent putaway cannot slip between them.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		stored, err := repo.SumStoredAmount(ctx, id)
		if err != nil {
			return errors.Wrap(errors.CodeInternal, err, "check stock occupancy")
		}
		if stored > 0 {
			return errors.New(errors.CodeConflict, "Stock is not empty")
		}

		deleted, err := repo.Delete(ctx, id)
		if err != nil {
			return errors.Wrap(errors.CodeInternal, err, "delete stock")
		}
		if !deleted {
			return errors.New(errors.CodeNotFound, "Stock not found")
		}
		return nil
	})
	if err != nil {
		if typed := errors.As(err); typed != nil {
			return typed
		}
		return errors.Wrap(errors.CodeInternal, err, "delete stock")
	}
	return nil
}
