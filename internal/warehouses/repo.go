package warehouses

import (
	"context"

	"gorm.io/gorm"

	"github.com/warehublabs/warehub-backend/pkg/db/models"
)

// OccupancyRow is one warehouse joined with its manager and the derived
// occupancy sum. Occupancy is never stored; it is aggregated from shelf
// items on every read.
type OccupancyRow struct {
	ID               int64  `gorm:"column:wh_id"`
	Name             string `gorm:"column:wh_name"`
	Capacity         int64  `gorm:"column:capacity"`
	Address          string `gorm:"column:address"`
	ManagerFirstName string `gorm:"column:manager_firstname"`
	ManagerLastName  string `gorm:"column:manager_lastname"`
	Current          int64  `gorm:"column:current_amount"`
}

// Repository handles warehouse persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.Warehouse, error)
	ListWithOccupancy(ctx context.Context) ([]OccupancyRow, error)
	FindWithOccupancy(ctx context.Context, id int64) (*OccupancyRow, error)
	FindByID(ctx context.Context, id int64) (*models.Warehouse, error)
	Create(ctx context.Context, warehouse *models.Warehouse) error
	Update(ctx context.Context, warehouse *models.Warehouse) error
	Delete(ctx context.Context, id int64) (bool, error)
	SumStoredAmount(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a warehouse repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context) ([]models.Warehouse, error) {
	var whs []models.Warehouse
	if err := r.db.WithContext(ctx).
		Order("wh_id ASC").
		Find(&whs).Error; err != nil {
		return nil, err
	}
	return whs, nil
}

const occupancyQuery = `
SELECT
    w.wh_id,
    w.wh_name,
    w.capacity,
    w.address,
    COALESCE(e.emp_firstname, '') AS manager_firstname,
    COALESCE(e.emp_lastname, '')  AS manager_lastname,
    COALESCE(SUM(si.amount), 0)   AS current_amount
FROM warehouse w
LEFT JOIN employees e ON w.wh_manager_id = e.emp_id
LEFT JOIN stock st ON st.wh_id = w.wh_id
LEFT JOIN shelf sh ON sh.stock_id = st.stock_id
LEFT JOIN shelf_items si ON si.shelf_id = sh.shelf_id
`

const occupancyGroup = `
GROUP BY
    w.wh_id,
    w.wh_name,
    w.capacity,
    w.address,
    e.emp_firstname,
    e.emp_lastname
`

func (r *repository) ListWithOccupancy(ctx context.Context) ([]OccupancyRow, error) {
	var rows []OccupancyRow
	if err := r.db.WithContext(ctx).
		Raw(occupancyQuery + occupancyGroup + "ORDER BY w.wh_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindWithOccupancy(ctx context.Context, id int64) (*OccupancyRow, error) {
	var rows []OccupancyRow
	if err := r.db.WithContext(ctx).
		Raw(occupancyQuery+"WHERE w.wh_id = ?\n"+occupancyGroup, id).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Warehouse, error) {
	var wh models.Warehouse
	if err := r.db.WithContext(ctx).
		Where("wh_id = ?", id).
		First(&wh).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &wh, nil
}

func (r *repository) Create(ctx context.Context, warehouse *models.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

func (r *repository) Update(ctx context.Context, warehouse *models.Warehouse) error {
	return r.db.WithContext(ctx).Save(warehouse).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("wh_id = ?", id).Delete(&models.Warehouse{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SumStoredAmount totals every shelf item stored anywhere in the warehouse.
// The delete guard relies on this running inside the same transaction as the
// delete itself.
func (r *repository) SumStoredAmount(ctx context.Context, id int64) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Raw(`
SELECT COALESCE(SUM(si.amount), 0) AS current_amount
FROM stock s
LEFT JOIN shelf sh ON sh.stock_id = s.stock_id
LEFT JOIN shelf_items si ON si.shelf_id = sh.shelf_id
WHERE s.wh_id = ?`, id).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
