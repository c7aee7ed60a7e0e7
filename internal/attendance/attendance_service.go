package attendance

import (
	"context"
	"errors"

	attendanceerrors "github.com/niranjan-18-25/WorkOrbit/internal/attendance/errors"
	"github.com/niranjan-18-25/WorkOrbit/internal/events"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"

	"gorm.io/gorm"
)

type Service interface {
	// Mark records attendance for an employee on a day. The replace
	// policy runs find-then-write inside a transaction so two concurrent
	// replaces cannot both append.
	Mark(ctx context.Context, req MarkRequest) (AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID uint) ([]AttendanceResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db   *gorm.DB
	repo Repository
	bus  *events.Bus
}

func NewService(db *gorm.DB, repo Repository, bus *events.Bus) Service {
	return &service{db: db, repo: repo, bus: bus}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}
	return apperror.Storage(err)
}

func (s *service) Mark(ctx context.Context, req MarkRequest) (AttendanceResponse, error) {
	policy := Policy(req.Policy)
	if policy == "" {
		policy = PolicyAppend
	}

	row := &Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Status:       Status(req.Status),
		Remarks:      req.Remarks,
	}
	op := events.OpInsert

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if policy == PolicyReplace {
			existing, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err == nil {
				row.ID = existing.ID
				row.CreatedAt = existing.CreatedAt
				op = events.OpUpdate
			}
		}

		if op == events.OpUpdate {
			return qtx.Update(ctx, row)
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		return AttendanceResponse{}, apperror.Storage(err)
	}

	s.bus.Publish(events.Change{Table: events.TableAttendance, Op: op, RowID: row.ID})
	return NewResponse(*row), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID uint) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		resp[i] = NewResponse(a)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.bus.Publish(events.Change{Table: events.TableAttendance, Op: events.OpDelete, RowID: id})
	return nil
}
