package attendance

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID uint, date string) (*Attendance, error)
	FindByEmployee(ctx context.Context, employeeID uint) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose statements run on the given
// transaction handle instead of the base connection.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Attendance{}, id).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByEmployeeAndDate returns the most recent row for the day; under
// the append policy there may be several.
func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uint, date string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		Order("id DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uint) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC, id DESC").
		Find(&rows).Error
	return rows, err
}
