package models

// Warehouse is a physical site holding stock locations. Capacity is the
// upper bound on the summed shelf-item amounts below it; the current total
// is always derived at read time, never stored.
type Warehouse struct {
	ID        int64  `gorm:"column:wh_id;primaryKey;autoIncrement" json:"wh_id"`
	Name      string `gorm:"column:wh_name;not null" json:"wh_name"`
	Capacity  int64  `gorm:"column:capacity;not null" json:"capacity"`
	ManagerID *int64 `gorm:"column:wh_manager_id" json:"wh_manager_id"`
	Address   string `gorm:"column:address" json:"address"`
}

func (Warehouse) TableName() string { return "warehouse" }
