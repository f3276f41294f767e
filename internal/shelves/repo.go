package shelves

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/warehublabs/warehub-backend/pkg/db/models"
)

// ItemRow is one shelf item joined with its shelf, scoped to a stock area.
type ItemRow struct {
	ID          int64     `gorm:"column:shelf_item_id"`
	ShelfID     int64     `gorm:"column:shelf_id"`
	Amount      int64     `gorm:"column:amount"`
	ProductName string    `gorm:"column:product_name"`
	SKU         string    `gorm:"column:sku"`
	Brand       string    `gorm:"column:brand"`
	ImageURL    string    `gorm:"column:image_url"`
	ReceivedAt  time.Time `gorm:"column:received_at"`
}

// Repository handles shelf and shelf item persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListShelvesByStock(ctx context.Context, stockID int64) ([]models.Shelf, error)
	ListItemsByStock(ctx context.Context, stockID int64, order Order) ([]ItemRow, error)
	StockExists(ctx context.Context, stockID int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a shelf repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListShelvesByStock(ctx context.Context, stockID int64) ([]models.Shelf, error) {
	var shelves []models.Shelf
	if err := r.db.WithContext(ctx).
		Where("stock_id = ?", stockID).
		Order("shelf_id ASC").
		Find(&shelves).Error; err != nil {
		return nil, err
	}
	return shelves, nil
}

func (r *repository) ListItemsByStock(ctx context.Context, stockID int64, order Order) ([]ItemRow, error) {
	var rows []ItemRow
	if err := r.db.WithContext(ctx).
		Raw(`
SELECT
    si.shelf_item_id,
    si.shelf_id,
    si.amount,
    si.product_name,
    si.sku,
    si.brand,
    si.image_url,
    si.received_at
FROM shelf_items si
JOIN shelf sh ON sh.shelf_id = si.shelf_id
WHERE sh.stock_id = ?
ORDER BY `+order.clause(), stockID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) StockExists(ctx context.Context, stockID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Stock{}).
		Where("stock_id = ?", stockID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
