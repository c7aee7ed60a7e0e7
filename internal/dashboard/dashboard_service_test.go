package dashboard_test

import (
	"context"
	"testing"

	"github.com/niranjan-18-25/WorkOrbit/internal/attendance"
	"github.com/niranjan-18-25/WorkOrbit/internal/dashboard"
	"github.com/niranjan-18-25/WorkOrbit/internal/events"
	"github.com/niranjan-18-25/WorkOrbit/internal/review"
	"github.com/niranjan-18-25/WorkOrbit/internal/task"
	"github.com/niranjan-18-25/WorkOrbit/internal/user"
	usererrors "github.com/niranjan-18-25/WorkOrbit/internal/user/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	employees        []user.User
	countEmployeesFn func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) Delete(ctx context.Context, id uint) error      { return nil }
func (f *fakeUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range f.employees {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) FindAllEmployees(ctx context.Context) ([]user.User, error) {
	return f.employees, nil
}
func (f *fakeUserRepository) CountEmployees(ctx context.Context) (int64, error) {
	if f.countEmployeesFn != nil {
		return f.countEmployeesFn(ctx)
	}
	return int64(len(f.employees)), nil
}
func (f *fakeUserRepository) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeTaskRepository struct {
	tasks []task.Task
}

func (f *fakeTaskRepository) Create(ctx context.Context, t *task.Task) error { return nil }
func (f *fakeTaskRepository) Update(ctx context.Context, t *task.Task) error { return nil }
func (f *fakeTaskRepository) Delete(ctx context.Context, id uint) error      { return nil }
func (f *fakeTaskRepository) FindByID(ctx context.Context, id uint) (*task.Task, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTaskRepository) FindAll(ctx context.Context) ([]task.Task, error) {
	return f.tasks, nil
}
func (f *fakeTaskRepository) FindByEmployee(ctx context.Context, employeeID uint) ([]task.Task, error) {
	var rows []task.Task
	for _, t := range f.tasks {
		if t.EmployeeID == employeeID {
			rows = append(rows, t)
		}
	}
	return rows, nil
}
func (f *fakeTaskRepository) FindByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	var rows []task.Task
	for _, t := range f.tasks {
		if t.Status == status {
			rows = append(rows, t)
		}
	}
	return rows, nil
}
func (f *fakeTaskRepository) CountByStatus(ctx context.Context, status task.Status) (int64, error) {
	var n int64
	for _, t := range f.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}
func (f *fakeTaskRepository) CountByEmployeeAndStatus(ctx context.Context, employeeID uint, status task.Status) (int64, error) {
	var n int64
	for _, t := range f.tasks {
		if t.EmployeeID == employeeID && t.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeReviewRepository struct {
	reviews []review.Review
	countFn func(ctx context.Context) (int64, error)
}

func (f *fakeReviewRepository) Create(ctx context.Context, r *review.Review) error { return nil }
func (f *fakeReviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeReviewRepository) FindAll(ctx context.Context) ([]review.Review, error) {
	return f.reviews, nil
}
func (f *fakeReviewRepository) FindByEmployee(ctx context.Context, employeeID uint) ([]review.Review, error) {
	var rows []review.Review
	for _, r := range f.reviews {
		if r.EmployeeID == employeeID {
			rows = append(rows, r)
		}
	}
	return rows, nil
}
func (f *fakeReviewRepository) AverageRatingByEmployee(ctx context.Context, employeeID uint) (float64, error) {
	rows, _ := f.FindByEmployee(ctx, employeeID)
	return dashboard.AverageRating(rows), nil
}
func (f *fakeReviewRepository) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return int64(len(f.reviews)), nil
}

type fakeAttendanceRepository struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepository) WithTx(tx *gorm.DB) attendance.Repository { return f }
func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	return nil
}
func (f *fakeAttendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	return nil
}
func (f *fakeAttendanceRepository) Delete(ctx context.Context, id uint) error { return nil }
func (f *fakeAttendanceRepository) FindByID(ctx context.Context, id uint) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID uint, date string) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepository) FindByEmployee(ctx context.Context, employeeID uint) ([]attendance.Attendance, error) {
	var rows []attendance.Attendance
	for _, a := range f.records {
		if a.EmployeeID == employeeID {
			rows = append(rows, a)
		}
	}
	return rows, nil
}

func newDashboardService(users *fakeUserRepository, tasks *fakeTaskRepository, reviews *fakeReviewRepository, att *fakeAttendanceRepository) dashboard.Service {
	taskSvc := task.NewService(tasks, events.NewBus())
	return dashboard.NewService(users, tasks, reviews, att, taskSvc)
}

func TestDashboardService_AdminDashboard(t *testing.T) {
	ctx := context.Background()

	users := &fakeUserRepository{employees: []user.User{
		{ID: 1, Name: "Alice", Role: user.RoleEmployee, Department: "Platform", JoiningDate: "2026-08-20"},
		{ID: 2, Name: "Bob", Role: user.RoleEmployee, Department: "Sales", JoiningDate: "2026-08-26"},
	}}
	tasks := &fakeTaskRepository{tasks: []task.Task{
		{ID: 10, EmployeeID: 1, Title: "Ship release", Status: task.StatusDone, Deadline: "2026-08-27"},
		{ID: 11, EmployeeID: 1, Title: "Draft plan", Status: task.StatusActive, Deadline: "2026-09-01"},
		{ID: 12, EmployeeID: 2, Title: "Call leads", Status: task.StatusPending, Deadline: "2026-09-05"},
	}}
	reviews := &fakeReviewRepository{reviews: []review.Review{
		{ID: 20, EmployeeID: 1, OverallRating: 5.0, Date: "2026-08-15"},
		{ID: 21, EmployeeID: 2, OverallRating: 3.0, Date: "2026-08-01"},
	}}

	state, err := newDashboardService(users, tasks, reviews, &fakeAttendanceRepository{}).AdminDashboard(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), state.EmployeeCount)
	assert.Equal(t, int64(3), state.TaskCounters.Total)
	assert.Equal(t, int64(1), state.TaskCounters.Done)
	assert.Equal(t, 33, state.TaskCounters.CompletionPercentage)
	assert.Equal(t, int64(2), state.ReviewCount)
	assert.InDelta(t, 4.0, state.AverageRating, 1e-9)

	assert.Len(t, state.TopPerformers, 2)
	assert.Equal(t, "Alice", state.TopPerformers[0].Name)
	assert.NotEmpty(t, state.RecentActivity)
}

func TestDashboardService_AdminDashboard_CountsComeFromStore(t *testing.T) {
	// The count queries are authoritative even when they disagree with
	// the rows fetched for the activity feed.
	users := &fakeUserRepository{
		employees: []user.User{{ID: 1, Name: "Alice", Role: user.RoleEmployee}},
		countEmployeesFn: func(ctx context.Context) (int64, error) {
			return 42, nil
		},
	}
	reviews := &fakeReviewRepository{
		countFn: func(ctx context.Context) (int64, error) {
			return 7, nil
		},
	}

	state, err := newDashboardService(users, &fakeTaskRepository{}, reviews, &fakeAttendanceRepository{}).AdminDashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), state.EmployeeCount)
	assert.Equal(t, int64(7), state.ReviewCount)
}

func TestDashboardService_AdminDashboard_EmptyStore(t *testing.T) {
	state, err := newDashboardService(&fakeUserRepository{}, &fakeTaskRepository{}, &fakeReviewRepository{}, &fakeAttendanceRepository{}).AdminDashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(0), state.EmployeeCount)
	assert.Equal(t, 0.0, state.AverageRating)
	assert.Equal(t, 0, state.TaskCounters.CompletionPercentage)
	assert.Empty(t, state.TopPerformers)
	assert.Empty(t, state.RecentActivity)
}

func TestDashboardService_EmployeeHome(t *testing.T) {
	ctx := context.Background()

	tasks := &fakeTaskRepository{tasks: []task.Task{
		{ID: 10, EmployeeID: 1, Status: task.StatusDone},
		{ID: 11, EmployeeID: 1, Status: task.StatusDone},
		{ID: 12, EmployeeID: 1, Status: task.StatusActive},
		{ID: 13, EmployeeID: 2, Status: task.StatusPending},
	}}
	reviews := &fakeReviewRepository{reviews: []review.Review{
		// Newest first, matching the store ordering contract.
		{ID: 21, EmployeeID: 1, OverallRating: 4.0, Date: "2026-08-20", Remarks: "Latest"},
		{ID: 20, EmployeeID: 1, OverallRating: 3.0, Date: "2026-07-01"},
	}}

	t.Run("counters and latest review are scoped to the employee", func(t *testing.T) {
		state, err := newDashboardService(&fakeUserRepository{}, tasks, reviews, &fakeAttendanceRepository{}).EmployeeHome(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), state.TaskCounters.Total)
		assert.Equal(t, 66, state.TaskCounters.CompletionPercentage)
		assert.InDelta(t, 3.5, state.AverageRating, 1e-9)
		assert.NotNil(t, state.LatestReview)
		assert.Equal(t, "Latest", state.LatestReview.Remarks)
	})

	t.Run("no reviews leaves the section empty", func(t *testing.T) {
		state, err := newDashboardService(&fakeUserRepository{}, tasks, &fakeReviewRepository{}, &fakeAttendanceRepository{}).EmployeeHome(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, state.AverageRating)
		assert.Nil(t, state.LatestReview)
	})
}

func TestDashboardService_EmployeeDetail(t *testing.T) {
	ctx := context.Background()

	users := &fakeUserRepository{employees: []user.User{
		{ID: 1, Name: "Alice", Role: user.RoleEmployee, Department: "Platform", JoiningDate: "2026-08-20"},
	}}
	tasks := &fakeTaskRepository{tasks: []task.Task{
		{ID: 10, EmployeeID: 1, Status: task.StatusDone},
		{ID: 11, EmployeeID: 1, Status: task.StatusPending},
	}}
	reviews := &fakeReviewRepository{reviews: []review.Review{
		{ID: 20, EmployeeID: 1, OverallRating: 4.0, Date: "2026-08-15"},
	}}
	att := &fakeAttendanceRepository{records: []attendance.Attendance{
		{ID: 30, EmployeeID: 1, Date: "2026-08-27", Status: attendance.StatusPresent},
		{ID: 31, EmployeeID: 1, Date: "2026-08-26", Status: attendance.StatusLeave},
	}}

	t.Run("joins profile, reviews and attendance", func(t *testing.T) {
		state, err := newDashboardService(users, tasks, reviews, att).EmployeeDetail(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "Alice", state.Employee.Name)
		assert.Equal(t, int64(2), state.TaskCounters.Total)
		assert.Equal(t, 50, state.TaskCounters.CompletionPercentage)
		assert.InDelta(t, 4.0, state.AverageRating, 1e-9)
		assert.Len(t, state.Reviews, 1)
		assert.Len(t, state.Attendance, 2)
	})

	t.Run("missing employee", func(t *testing.T) {
		_, err := newDashboardService(users, tasks, reviews, att).EmployeeDetail(ctx, 404)

		assert.ErrorIs(t, err, usererrors.ErrEmployeeNotFound)
	})
}
