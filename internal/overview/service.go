package overview

import (
	"context"
	stdErrors "errors"

	"github.com/warehublabs/warehub-backend/internal/scene"
	"github.com/warehublabs/warehub-backend/internal/stocks"
	"github.com/warehublabs/warehub-backend/internal/warehouses"
	"github.com/warehublabs/warehub-backend/pkg/config"
	"github.com/warehublabs/warehub-backend/pkg/selector"
)

// WarehouseDirectory is the warehouse surface the overviews read from.
type WarehouseDirectory interface {
	List(ctx context.Context) ([]warehouses.WarehouseSummary, error)
	ListDetails(ctx context.Context) ([]warehouses.WarehouseDetail, error)
}

// StockDirectory is the stock surface the overviews read from.
type StockDirectory interface {
	ListByWarehouse(ctx context.Context, warehouseID int64) ([]stocks.StockSummary, error)
}

// WarehouseScene is the drawable warehouse overview: the laid-out scene plus
// the detail rows the hover popups read.
type WarehouseScene struct {
	Scene      scene.Scene                  `json:"scene"`
	Warehouses []warehouses.WarehouseDetail `json:"warehouses"`
}

// StockScene is the drawable stock overview for one selected warehouse. The
// picker list rides along so the client can switch warehouses without a
// second request.
type StockScene struct {
	Selected   *int64                        `json:"selected_wh_id"`
	Warehouses []warehouses.WarehouseSummary `json:"warehouses"`
	Stocks     []stocks.StockSummary         `json:"stocks"`
	Scene      scene.Scene                   `json:"scene"`
}

// ServiceParams groups dependencies for the overview service.
type ServiceParams struct {
	Warehouses WarehouseDirectory
	Stocks     StockDirectory
	Scene      config.SceneConfig
}

// Service assembles overview scenes out of entity listings and the grid
// layout rules.
type Service struct {
	warehouses WarehouseDirectory
	stocks     StockDirectory
	cfg        config.SceneConfig
}

// NewService builds an overview service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Warehouses == nil {
		return nil, stdErrors.New("warehouse directory is required")
	}
	if params.Stocks == nil {
		return nil, stdErrors.New("stock directory is required")
	}
	return &Service{warehouses: params.Warehouses, stocks: params.Stocks, cfg: params.Scene}, nil
}

// WarehouseOverview lays every warehouse out on the fixed-column grid with
// the trailing add cell.
func (s *Service) WarehouseOverview(ctx context.Context) (*WarehouseScene, error) {
	details, err := s.warehouses.ListDetails(ctx)
	if err != nil {
		return nil, err
	}

	tiles := make([]scene.Tile, 0, len(details))
	for _, wh := range details {
		tiles = append(tiles, scene.Tile{
			ID:       wh.ID,
			Name:     wh.Name,
			Current:  wh.Current,
			Capacity: wh.Capacity,
		})
	}

	spec := scene.GridSpec{
		SpacingX: s.cfg.WarehouseSpacingX,
		SpacingZ: s.cfg.WarehouseSpacingZ,
		Policy:   scene.FixedColumns(s.cfg.ColumnsPerRow),
	}
	sc := scene.Build(tiles, spec, scene.BuildOptions{IncludeAdd: true})

	return &WarehouseScene{Scene: sc, Warehouses: details}, nil
}

// StockOverview lays the selected warehouse's stock areas out on a
// near-square grid. The selector is the opaque query value; when it is
// absent or stale the first warehouse is shown instead.
func (s *Service) StockOverview(ctx context.Context, sel string) (*StockScene, error) {
	summaries, err := s.warehouses.List(ctx)
	if err != nil {
		return nil, err
	}

	selected := resolveSelection(sel, summaries)
	out := &StockScene{Warehouses: summaries, Stocks: []stocks.StockSummary{}}
	if selected == nil {
		return out, nil
	}
	out.Selected = selected

	areas, err := s.stocks.ListByWarehouse(ctx, *selected)
	if err != nil {
		return nil, err
	}
	out.Stocks = areas

	tiles := make([]scene.Tile, 0, len(areas))
	for _, st := range areas {
		tiles = append(tiles, scene.Tile{
			ID:       st.ID,
			Name:     st.Name,
			Current:  st.Current,
			Capacity: st.Capacity,
		})
	}

	spec := scene.GridSpec{
		SpacingX: s.cfg.StockSpacingX,
		SpacingZ: s.cfg.StockSpacingZ,
		Policy:   scene.SquareColumns(),
	}
	out.Scene = scene.Build(tiles, spec, scene.BuildOptions{})

	return out, nil
}

// resolveSelection decodes the selector and checks it against the known
// warehouses. Anything that does not resolve degrades to the first
// warehouse; an empty directory yields no selection.
func resolveSelection(sel string, summaries []warehouses.WarehouseSummary) *int64 {
	if len(summaries) == 0 {
		return nil
	}
	if id, ok := selector.Decode(sel); ok {
		for _, wh := range summaries {
			if wh.ID == id {
				return &id
			}
		}
	}
	first := summaries[0].ID
	return &first
}
