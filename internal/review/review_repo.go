package review

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, r *Review) error
	FindByID(ctx context.Context, id uint) (*Review, error)
	FindAll(ctx context.Context) ([]Review, error)
	FindByEmployee(ctx context.Context, employeeID uint) ([]Review, error)
	AverageRatingByEmployee(ctx context.Context, employeeID uint) (float64, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rev *Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Review, error) {
	var rev Review
	err := r.db.WithContext(ctx).First(&rev, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Review, error) {
	var rows []Review
	err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uint) ([]Review, error) {
	var rows []Review
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// AverageRatingByEmployee returns 0 (not NULL, not an error) for an
// employee with no reviews.
func (r *repository) AverageRatingByEmployee(ctx context.Context, employeeID uint) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&Review{}).
		Select("COALESCE(AVG(overall_rating), 0)").
		Where("employee_id = ?", employeeID).
		Scan(&avg).Error
	return avg, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Review{}).Count(&n).Error
	return n, err
}
