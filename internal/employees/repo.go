package employees

import (
	"context"

	"gorm.io/gorm"

	"github.com/warehublabs/warehub-backend/pkg/db/models"
)

// Repository handles employee persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.Employee, error)
	FindByID(ctx context.Context, id int64) (*models.Employee, error)
	FindByUsername(ctx context.Context, username string) (*models.Employee, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an employee repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context) ([]models.Employee, error) {
	var emps []models.Employee
	if err := r.db.WithContext(ctx).
		Order("emp_lastname ASC, emp_firstname ASC").
		Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Employee, error) {
	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Where("emp_id = ?", id).
		First(&emp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*models.Employee, error) {
	if username == "" {
		return nil, nil
	}
	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&emp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}
