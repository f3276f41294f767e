package models

// Stock is a stock location (rack zone) inside a warehouse.
type Stock struct {
	ID          int64  `gorm:"column:stock_id;primaryKey;autoIncrement" json:"stock_id"`
	Name        string `gorm:"column:stock_name;not null" json:"stock_name"`
	Capacity    int64  `gorm:"column:capacity;not null" json:"capacity"`
	WarehouseID int64  `gorm:"column:wh_id;not null" json:"wh_id"`
}

func (Stock) TableName() string { return "stock" }
