package task

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Task, error)
	FindAll(ctx context.Context) ([]Task, error)
	FindByEmployee(ctx context.Context, employeeID uint) ([]Task, error)
	FindByStatus(ctx context.Context, status Status) ([]Task, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	CountByEmployeeAndStatus(ctx context.Context, employeeID uint, status Status) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Task{}, id).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Order("deadline ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uint) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("deadline ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStatus(ctx context.Context, status Status) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("deadline ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Task{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *repository) CountByEmployeeAndStatus(ctx context.Context, employeeID uint, status Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Task{}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}
