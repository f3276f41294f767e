package warehouses

import "github.com/warehublabs/warehub-backend/pkg/db/models"

// CreateWarehouseRequest is the create payload. The manager arrives as a
// username and is resolved to an employee id server side.
type CreateWarehouseRequest struct {
	Name     string `json:"wh_name" validate:"required"`
	Capacity int64  `json:"capacity" validate:"required,gt=0"`
	Username string `json:"username" validate:"required"`
	Address  string `json:"address"`
}

// UpdateWarehouseRequest carries the mutable columns.
type UpdateWarehouseRequest struct {
	Name     string `json:"wh_name" validate:"required"`
	Capacity int64  `json:"capacity" validate:"required,gt=0"`
	Username string `json:"username"`
	Address  string `json:"address"`
}

// WarehouseSummary is the list-view row: just enough for the picker.
type WarehouseSummary struct {
	ID   int64  `json:"wh_id"`
	Name string `json:"wh_name"`
}

// WarehouseDetail mirrors the detail row shape clients already consume:
// address is exposed as "location" and occupancy as "current".
type WarehouseDetail struct {
	ID          int64  `json:"wh_id"`
	Name        string `json:"wh_name"`
	ManagerName string `json:"manager_name"`
	Location    string `json:"location"`
	Capacity    int64  `json:"capacity"`
	Current     int64  `json:"current"`
}

// WarehouseRow is the raw table row returned after writes.
type WarehouseRow struct {
	ID        int64  `json:"wh_id"`
	Name      string `json:"wh_name"`
	Capacity  int64  `json:"capacity"`
	ManagerID *int64 `json:"wh_manager_id"`
	Address   string `json:"address"`
}

func toRow(wh models.Warehouse) WarehouseRow {
	return WarehouseRow{
		ID:        wh.ID,
		Name:      wh.Name,
		Capacity:  wh.Capacity,
		ManagerID: wh.ManagerID,
		Address:   wh.Address,
	}
}

func toDetail(row OccupancyRow) WarehouseDetail {
	return WarehouseDetail{
		ID:          row.ID,
		Name:        row.Name,
		ManagerName: joinName(row.ManagerFirstName, row.ManagerLastName),
		Location:    row.Address,
		Capacity:    row.Capacity,
		Current:     row.Current,
	}
}

// joinName assembles the display name in Go so the aggregate query stays
// portable across Postgres and SQLite.
func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
