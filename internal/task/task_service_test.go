package task_test

import (
	"context"
	"testing"

	"github.com/niranjan-18-25/WorkOrbit/internal/events"
	"github.com/niranjan-18-25/WorkOrbit/internal/task"
	taskerrors "github.com/niranjan-18-25/WorkOrbit/internal/task/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTaskRepository struct {
	createFn                   func(ctx context.Context, t *task.Task) error
	updateFn                   func(ctx context.Context, t *task.Task) error
	deleteFn                   func(ctx context.Context, id uint) error
	findByIDFn                 func(ctx context.Context, id uint) (*task.Task, error)
	findAllFn                  func(ctx context.Context) ([]task.Task, error)
	findByEmployeeFn           func(ctx context.Context, employeeID uint) ([]task.Task, error)
	findByStatusFn             func(ctx context.Context, status task.Status) ([]task.Task, error)
	countByStatusFn            func(ctx context.Context, status task.Status) (int64, error)
	countByEmployeeAndStatusFn func(ctx context.Context, employeeID uint, status task.Status) (int64, error)
}

func (f *fakeTaskRepository) Create(ctx context.Context, t *task.Task) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTaskRepository) Delete(ctx context.Context, id uint) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeTaskRepository) FindByID(ctx context.Context, id uint) (*task.Task, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaskRepository) FindAll(ctx context.Context) ([]task.Task, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeTaskRepository) FindByEmployee(ctx context.Context, employeeID uint) ([]task.Task, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeTaskRepository) FindByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	if f.findByStatusFn != nil {
		return f.findByStatusFn(ctx, status)
	}
	return nil, nil
}

func (f *fakeTaskRepository) CountByStatus(ctx context.Context, status task.Status) (int64, error) {
	if f.countByStatusFn != nil {
		return f.countByStatusFn(ctx, status)
	}
	return 0, nil
}

func (f *fakeTaskRepository) CountByEmployeeAndStatus(ctx context.Context, employeeID uint, status task.Status) (int64, error) {
	if f.countByEmployeeAndStatusFn != nil {
		return f.countByEmployeeAndStatusFn(ctx, employeeID, status)
	}
	return 0, nil
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to pending", func(t *testing.T) {
		repo := &fakeTaskRepository{
			createFn: func(ctx context.Context, tk *task.Task) error {
				tk.ID = 11
				return nil
			},
		}
		bus := events.NewBus()
		ch, cancel := bus.Subscribe(events.TableTasks)
		defer cancel()
		svc := task.NewService(repo, bus)

		resp, err := svc.Create(ctx, task.CreateTaskRequest{
			EmployeeID:   5,
			Title:        "Quarterly report",
			Priority:     string(task.PriorityHigh),
			Deadline:     "2026-09-30",
			AssignedDate: "2026-09-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, string(task.StatusPending), resp.Status)

		change := <-ch
		assert.Equal(t, events.OpInsert, change.Op)
		assert.Equal(t, uint(11), change.RowID)
	})
}

func TestTaskService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	owned := func() *task.Task {
		return &task.Task{ID: 8, EmployeeID: 5, Title: "Deploy", Status: task.StatusActive}
	}

	t.Run("owner can move the task to done", func(t *testing.T) {
		repo := &fakeTaskRepository{
			findByIDFn: func(ctx context.Context, id uint) (*task.Task, error) {
				return owned(), nil
			},
		}
		svc := task.NewService(repo, events.NewBus())

		resp, err := svc.UpdateStatus(ctx, 8, 5, task.StatusDone)

		assert.NoError(t, err)
		assert.Equal(t, string(task.StatusDone), resp.Status)
	})

	t.Run("non-owner is rejected before any write", func(t *testing.T) {
		repo := &fakeTaskRepository{
			findByIDFn: func(ctx context.Context, id uint) (*task.Task, error) {
				return owned(), nil
			},
			updateFn: func(ctx context.Context, tk *task.Task) error {
				t.Fatal("update must not be reached")
				return nil
			},
		}
		svc := task.NewService(repo, events.NewBus())

		_, err := svc.UpdateStatus(ctx, 8, 6, task.StatusDone)

		assert.ErrorIs(t, err, taskerrors.ErrNotTaskOwner)
	})

	t.Run("missing task", func(t *testing.T) {
		svc := task.NewService(&fakeTaskRepository{}, events.NewBus())

		_, err := svc.UpdateStatus(ctx, 404, 5, task.StatusDone)

		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})
}

func TestTaskService_Counters(t *testing.T) {
	ctx := context.Background()

	t.Run("buckets add up and percentage is integer division", func(t *testing.T) {
		counts := map[task.Status]int64{
			task.StatusPending: 1,
			task.StatusActive:  1,
			task.StatusDone:    1,
		}
		repo := &fakeTaskRepository{
			countByStatusFn: func(ctx context.Context, status task.Status) (int64, error) {
				return counts[status], nil
			},
		}
		svc := task.NewService(repo, events.NewBus())

		c, err := svc.Counters(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), c.Total)
		assert.Equal(t, c.Total, c.Pending+c.Active+c.Done)
		assert.Equal(t, 33, c.CompletionPercentage)
	})

	t.Run("per-employee counters scope by id", func(t *testing.T) {
		repo := &fakeTaskRepository{
			countByEmployeeAndStatusFn: func(ctx context.Context, employeeID uint, status task.Status) (int64, error) {
				assert.Equal(t, uint(5), employeeID)
				if status == task.StatusDone {
					return 2, nil
				}
				return 1, nil
			},
		}
		svc := task.NewService(repo, events.NewBus())

		c, err := svc.CountersForEmployee(ctx, 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), c.Total)
		assert.Equal(t, 50, c.CompletionPercentage)
	})
}

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0, task.CompletionPercentage(0, 0))
	assert.Equal(t, 0, task.CompletionPercentage(0, 5))
	assert.Equal(t, 33, task.CompletionPercentage(1, 3))
	assert.Equal(t, 66, task.CompletionPercentage(2, 3))
	assert.Equal(t, 100, task.CompletionPercentage(3, 3))
}
