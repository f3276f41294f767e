package models

// Shelf is a grouping level between a stock location and its items.
type Shelf struct {
	ID      int64 `gorm:"column:shelf_id;primaryKey;autoIncrement" json:"shelf_id"`
	StockID int64 `gorm:"column:stock_id;not null" json:"stock_id"`
}

func (Shelf) TableName() string { return "shelf" }
