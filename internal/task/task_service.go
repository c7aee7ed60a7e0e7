package task

import (
	"context"
	"errors"

	"github.com/niranjan-18-25/WorkOrbit/internal/events"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
	taskerrors "github.com/niranjan-18-25/WorkOrbit/internal/task/errors"

	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Update(ctx context.Context, id uint, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (TaskResponse, error)
	GetAll(ctx context.Context) ([]TaskResponse, error)
	GetByEmployee(ctx context.Context, employeeID uint) ([]TaskResponse, error)
	// UpdateStatus is the employee-facing mutation; it enforces ownership.
	UpdateStatus(ctx context.Context, id, actorID uint, status Status) (TaskResponse, error)
	Counters(ctx context.Context) (TaskCounters, error)
	CountersForEmployee(ctx context.Context, employeeID uint) (TaskCounters, error)
}

type service struct {
	repo Repository
	bus  *events.Bus
}

func NewService(repo Repository, bus *events.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrTaskNotFound
	}
	return apperror.Storage(err)
}

func (s *service) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	status := Status(req.Status)
	if status == "" {
		status = StatusPending
	}

	t := &Task{
		EmployeeID:   req.EmployeeID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     Priority(req.Priority),
		Status:       status,
		Deadline:     req.Deadline,
		AssignedDate: req.AssignedDate,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	s.bus.Publish(events.Change{Table: events.TableTasks, Op: events.OpInsert, RowID: t.ID})
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateTaskRequest) (TaskResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	t.EmployeeID = req.EmployeeID
	t.Title = req.Title
	t.Description = req.Description
	t.Priority = Priority(req.Priority)
	t.Status = Status(req.Status)
	t.Deadline = req.Deadline
	t.AssignedDate = req.AssignedDate

	if err := s.repo.Update(ctx, t); err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	s.bus.Publish(events.Change{Table: events.TableTasks, Op: events.OpUpdate, RowID: t.ID})
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.bus.Publish(events.Change{Table: events.TableTasks, Op: events.OpDelete, RowID: id})
	return nil
}

func (s *service) GetByID(ctx context.Context, id uint) (TaskResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TaskResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID uint) ([]TaskResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) UpdateStatus(ctx context.Context, id, actorID uint, status Status) (TaskResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}
	if t.EmployeeID != actorID {
		return TaskResponse{}, taskerrors.ErrNotTaskOwner
	}

	t.Status = status
	if err := s.repo.Update(ctx, t); err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	s.bus.Publish(events.Change{Table: events.TableTasks, Op: events.OpUpdate, RowID: t.ID})
	return mapToResponse(*t), nil
}

func (s *service) Counters(ctx context.Context) (TaskCounters, error) {
	return s.counters(ctx, func(status Status) (int64, error) {
		return s.repo.CountByStatus(ctx, status)
	})
}

func (s *service) CountersForEmployee(ctx context.Context, employeeID uint) (TaskCounters, error) {
	return s.counters(ctx, func(status Status) (int64, error) {
		return s.repo.CountByEmployeeAndStatus(ctx, employeeID, status)
	})
}

func (s *service) counters(ctx context.Context, count func(Status) (int64, error)) (TaskCounters, error) {
	var c TaskCounters
	var err error

	if c.Pending, err = count(StatusPending); err != nil {
		return TaskCounters{}, mapRepositoryError(err)
	}
	if c.Active, err = count(StatusActive); err != nil {
		return TaskCounters{}, mapRepositoryError(err)
	}
	if c.Done, err = count(StatusDone); err != nil {
		return TaskCounters{}, mapRepositoryError(err)
	}

	c.Total = c.Pending + c.Active + c.Done
	c.CompletionPercentage = CompletionPercentage(c.Done, c.Total)
	return c, nil
}

// CompletionPercentage is integer division of done*100 by total, and 0
// for an empty task set.
func CompletionPercentage(done, total int64) int {
	if total == 0 {
		return 0
	}
	return int(done * 100 / total)
}

func mapToListResponse(rows []Task) []TaskResponse {
	resp := make([]TaskResponse, len(rows))
	for i, t := range rows {
		resp[i] = mapToResponse(t)
	}
	return resp
}
