package stocks

import "github.com/warehublabs/warehub-backend/pkg/db/models"

// CreateStockRequest is the create payload for a stock area.
type CreateStockRequest struct {
	Name        string `json:"stock_name" validate:"required"`
	Capacity    int64  `json:"capacity" validate:"required,gt=0"`
	WarehouseID int64  `json:"wh_id" validate:"required,gt=0"`
}

// UpdateStockRequest carries the mutable columns.
type UpdateStockRequest struct {
	Name     string `json:"stock_name" validate:"required"`
	Capacity int64  `json:"capacity" validate:"required,gt=0"`
}

// StockSummary is one stock area with its derived occupancy, the row the
// stock overview scene is built from.
type StockSummary struct {
	ID       int64  `json:"stock_id"`
	Name     string `json:"stock_name"`
	Capacity int64  `json:"capacity"`
	Current  int64  `json:"current_amount"`
}

// StockRow is the raw table row returned after writes.
type StockRow struct {
	ID          int64  `json:"stock_id"`
	Name        string `json:"stock_name"`
	Capacity    int64  `json:"capacity"`
	WarehouseID int64  `json:"wh_id"`
}

func toRow(st models.Stock) StockRow {
	return StockRow{
		ID:          st.ID,
		Name:        st.Name,
		Capacity:    st.Capacity,
		WarehouseID: st.WarehouseID,
	}
}

func toSummary(row OccupancyRow) StockSummary {
	return StockSummary{
		ID:       row.ID,
		Name:     row.Name,
		Capacity: row.Capacity,
		Current:  row.Current,
	}
}
