package models

import "time"

// ShelfItem is a product lot sitting on a shelf. Amount feeds the derived
// occupancy aggregates for its stock location and warehouse.
type ShelfItem struct {
	ID          int64     `gorm:"column:shelf_item_id;primaryKey;autoIncrement" json:"shelf_item_id"`
	ShelfID     int64     `gorm:"column:shelf_id;not null" json:"shelf_id"`
	Amount      int64     `gorm:"column:amount;not null;default:0" json:"amount"`
	ProductName string    `gorm:"column:product_name;not null" json:"product_name"`
	SKU         string    `gorm:"column:sku;not null" json:"sku"`
	Brand       string    `gorm:"column:brand" json:"brand"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url"`
	ReceivedAt  time.Time `gorm:"column:received_at" json:"received_at"`
}

func (ShelfItem) TableName() string { return "shelf_items" }
