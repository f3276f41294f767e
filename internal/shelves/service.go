package shelves

import (
	"context"
	stdErrors "errors"

	"github.com/warehublabs/warehub-backend/pkg/errors"
)

// ItemResponse is one product entry the stock view renders.
type ItemResponse struct {
	ID          int64  `json:"shelf_item_id"`
	ShelfID     int64  `json:"shelf_id"`
	Amount      int64  `json:"qty"`
	ProductName string `json:"name"`
	SKU         string `json:"sku"`
	Brand       string `json:"brand"`
	ImageURL    string `json:"img"`
	// ReceivedAt is unix milliseconds, the shape the sort dropdown compares.
	ReceivedAt int64 `json:"time"`
}

// ServiceParams groups dependencies for the shelf service.
type ServiceParams struct {
	Repo Repository
}

// Service exposes shelf item listings for the stock view.
type Service struct {
	repo Repository
}

// NewService builds a shelf service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, stdErrors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// ListItems returns the stock area's shelf items in the requested order.
func (s *Service) ListItems(ctx context.Context, stockID int64, order Order) ([]ItemResponse, error) {
	exists, err := s.repo.StockExists(ctx, stockID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "check stock")
	}
	if !exists {
		return nil, errors.New(errors.CodeNotFound, "Stock not found")
	}

	rows, err := s.repo.ListItemsByStock(ctx, stockID, order)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list shelf items")
	}

	out := make([]ItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toItemResponse(row))
	}
	return out, nil
}

func toItemResponse(row ItemRow) ItemResponse {
	var received int64
	if !row.ReceivedAt.IsZero() {
		received = row.ReceivedAt.UnixMilli()
	}
	return ItemResponse{
		ID:          row.ID,
		ShelfID:     row.ShelfID,
		Amount:      row.Amount,
		ProductName: row.ProductName,
		SKU:         row.SKU,
		Brand:       row.Brand,
		ImageURL:    row.ImageURL,
		ReceivedAt:  received,
	}
}
