package warehouses

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

// ManagerResolver maps a manager username to an employee id.
type ManagerResolver interface {
	ResolveManager(ctx context.Context, username string) (*int64, error)
}

// ServiceParams groups dependencies for the warehouse service.
type ServiceParams struct {
	Repo     Repository
	Tx       TxRunner
	Managers ManagerResolver
}

// Service orchestrates warehouse operations.
type Service struct {
	repo     Repository
	tx       TxRunner
	managers ManagerResolver
}

// NewService builds a warehouse service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, stdErrors.New("repo is required")
	}
	if params.Tx == nil {
		return nil, stdErrors.New("tx runner is required")
	}
	if params.Managers == nil {
		return nil, stdErrors.New("manager resolver is required")
	}
	return &Service{repo: params.Repo, tx: params.Tx, managers: params.Managers}, nil
}

// List returns the lightweight picker rows, ordered by id.
func (s *Service) List(ctx context.Context) ([]WarehouseSummary, error) {
	whs, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list warehouses")
	}
	out := make([]WarehouseSummary, 0, len(whs))
	for _, wh := range whs {
		out = append(out, WarehouseSummary{ID: wh.ID, Name: wh.Name})
	}
	return out, nil
}

// ListDetails returns every warehouse with manager name and derived
// occupancy, the payload the overview scene is built from.
func (s *Service) ListDetails(ctx context.Context) ([]WarehouseDetail, error) {
	rows, err := s.repo.ListWithOccupancy(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list warehouses with occupancy")
	}
	out := make([]WarehouseDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDetail(row))
	}
	return out, nil
}

// Get returns one warehouse with derived occupancy.
func (s *Service) Get(ctx context.Context, id int64) (*WarehouseDetail, error) {
	row, err := s.repo.FindWithOccupancy(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "find warehouse")
	}
	if row == nil {
		return nil, errors.New(errors.CodeNotFound, "Warehouse not found")
	}
	detail := toDetail(*row)
	return &detail, nil
}

// Exists reports whether the warehouse id refers to a stored row.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	wh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(errors.CodeInternal, err, "find warehouse")
	}
	return wh != nil, nil
}

// Create validates the payload, resolves the manager username and inserts
// the warehouse, returning the stored row.
func (s *Service) Create(ctx context.Context, req CreateWarehouseRequest) (*WarehouseRow, error) {
	if strings.TrimSpace(req.Name) == "" || req.Capacity <= 0 || strings.TrimSpace(req.Username) == "" {
		return nil, errors.New(errors.CodeValidation, "Missing required fields")
	}

	managerID, err := s.managers.ResolveManager(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	wh := models.Warehouse{
		Name:      strings.TrimSpace(req.Name),
		Capacity:  req.Capacity,
		ManagerID: managerID,
		Address:   strings.TrimSpace(req.Address),
	}
	if err := s.repo.Create(ctx, &wh); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "create warehouse")
	}

	row := toRow(wh)
	return &row, nil
}

// Update replaces the mutable columns of an existing warehouse.
func (s *Service) Update(ctx context.Context, id int64, req UpdateWarehouseRequest) (*WarehouseRow, error) {
	if strings.TrimSpace(req.Name) == "" || req.Capacity <= 0 {
		return nil, errors.New(errors.CodeValidation, "Missing required fields")
	}

	wh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "find warehouse")
	}
	if wh == nil {
		return nil, errors.New(errors.CodeNotFound, "Warehouse not found")
	}

	wh.Name = strings.TrimSpace(req.Name)
	wh.Capacity = req.Capacity
	wh.Address = strings.TrimSpace(req.Address)
	if strings.TrimSpace(req.Username) != "" {
		managerID, err := s.managers.ResolveManager(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		wh.ManagerID = managerID
	}

	if err := s.repo.Update(ctx, wh); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "update warehouse")
	}

	row := toRow(*wh)
	return &row, nil
}

// Delete removes an empty warehouse. The occupancy check and the delete run
// in one transaction so a concurrent putaway cannot slip between them.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		stored, err := repo.SumStoredAmount(ctx, id)
		if err != nil {
			return errors.Wrap(errors.CodeInternal, err, "check warehouse occupancy")
		}
		if stored > 0 {
			return errors.New(errors.CodeConflict, "Warehouse is not empty")
		}

		deleted, err := repo.Delete(ctx, id)
		if err != nil {
			return errors.Wrap(errors.CodeInternal, err, "delete warehouse")
		}
		if !deleted {
			return errors.New(errors.CodeNotFound, "Warehouse not found")
		}
		return nil
	})
	if err != nil {
		if typed := errors.As(err); typed != nil {
			return typed
		}
		return errors.Wrap(errors.CodeInternal, err, "delete warehouse")
	}
	return nil
}
