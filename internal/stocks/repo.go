package stocks

import (
	"context"

	"gorm.io/gorm"

	"github.com/warehublabs/warehub-backend/pkg/db/models"
)

// OccupancyRow is one stock area with its derived occupancy.
type OccupancyRow struct {
	ID          int64  `gorm:"column:stock_id"`
	Name        string `gorm:"column:stock_name"`
	Capacity    int64  `gorm:"column:capacity"`
	WarehouseID int64  `gorm:"column:wh_id"`
	Current     int64  `gorm:"column:current_amount"`
}

// Repository handles stock area persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListByWarehouse(ctx context.Context, warehouseID int64) ([]OccupancyRow, error)
	FindWithOccupancy(ctx context.Context, id int64) (*OccupancyRow, error)
	FindByID(ctx context.Context, id int64) (*models.Stock, error)
	Create(ctx context.Context, stock *models.Stock) error
	Update(ctx context.Context, stock *models.Stock) error
	Delete(ctx context.Context, id int64) (bool, error)
	SumStoredAmount(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a stock repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

const occupancyQuery = `
SELECT
    s.stock_id,
    s.stock_name,
    s.capacity,
    s.wh_id,
    COALESCE(SUM(si.amount), 0) AS current_amount
FROM stock s
LEFT JOIN shelf sh ON sh.stock_id = s.stock_id
LEFT JOIN shelf_items si ON si.shelf_id = sh.shelf_id
`

const occupancyGroup = `
GROUP BY s.stock_id, s.stock_name, s.capacity, s.wh_id
`

func (r *repository) ListByWarehouse(ctx context.Context, warehouseID int64) ([]OccupancyRow, error) {
	var rows []OccupancyRow
	if err := r.db.WithContext(ctx).
		Raw(occupancyQuery+"WHERE s.wh_id = ?\n"+occupancyGroup+"ORDER BY s.stock_id", warehouseID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindWithOccupancy(ctx context.Context, id int64) (*OccupancyRow, error) {
	var rows []OccupancyRow
	if err := r.db.WithContext(ctx).
		Raw(occupancyQuery+"WHERE s.stock_id = ?\n"+occupancyGroup, id).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Stock, error) {
	var st models.Stock
	if err := r.db.WithContext(ctx).
		Where("stock_id = ?", id).
		First(&st).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (r *repository) Create(ctx context.Context, stock *models.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

func (r *repository) Update(ctx context.Context, stock *models.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("stock_id = ?", id).Delete(&models.Stock{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SumStoredAmount totals the shelf items inside one stock area. The delete
// guard relies on this running inside the same transaction as the delete.
func (r *repository) SumStoredAmount(ctx context.Context, id int64) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Raw(`
SELECT COALESCE(SUM(si.amount), 0) AS current_amount
FROM stock s
LEFT JOIN shelf sh ON sh.stock_id = s.stock_id
LEFT JOIN shelf_items si ON si.shelf_id = sh.shelf_id
WHERE s.stock_id = ?`, id).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
