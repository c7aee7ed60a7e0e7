package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/niranjan-18-25/WorkOrbit/internal/attendance"
	"github.com/niranjan-18-25/WorkOrbit/internal/review"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
	"github.com/niranjan-18-25/WorkOrbit/internal/task"
	"github.com/niranjan-18-25/WorkOrbit/internal/user"
	usererrors "github.com/niranjan-18-25/WorkOrbit/internal/user/errors"

	"gorm.io/gorm"
)

// Service derives display-ready state from the raw entity repositories.
// It holds no state of its own; every call recomputes from the store so
// stream consumers always see a fresh snapshot.
type Service interface {
	AdminDashboard(ctx context.Context) (AdminDashboardState, error)
	EmployeeHome(ctx context.Context, employeeID uint) (EmployeeHomeState, error)
	// EmployeeDetail is the admin's profile view: the employee joined
	// with their full review and attendance history.
	EmployeeDetail(ctx context.Context, employeeID uint) (EmployeeDetailState, error)
}

type service struct {
	users      user.Repository
	tasks      task.Repository
	reviews    review.Repository
	attendance attendance.Repository
	taskSvc    task.Service
	now        func() time.Time
}

func NewService(users user.Repository, tasks task.Repository, reviews review.Repository, att attendance.Repository, taskSvc task.Service) Service {
	return &service{
		users:      users,
		tasks:      tasks,
		reviews:    reviews,
		attendance: att,
		taskSvc:    taskSvc,
		now:        time.Now,
	}
}

func (s *service) AdminDashboard(ctx context.Context) (AdminDashboardState, error) {
	employees, err := s.users.FindAllEmployees(ctx)
	if err != nil {
		return AdminDashboardState{}, apperror.Storage(err)
	}

	allTasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return AdminDashboardState{}, apperror.Storage(err)
	}

	allReviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return AdminDashboardState{}, apperror.Storage(err)
	}

	counters, err := s.taskSvc.Counters(ctx)
	if err != nil {
		return AdminDashboardState{}, err
	}

	employeeCount, err := s.users.CountEmployees(ctx)
	if err != nil {
		return AdminDashboardState{}, apperror.Storage(err)
	}

	reviewCount, err := s.reviews.Count(ctx)
	if err != nil {
		return AdminDashboardState{}, apperror.Storage(err)
	}

	now := s.now()
	return AdminDashboardState{
		EmployeeCount:  employeeCount,
		TaskCounters:   counters,
		AverageRating:  AverageRating(allReviews),
		ReviewCount:    reviewCount,
		TopPerformers:  TopPerformers(allReviews, employeeNames(employees), 3),
		RecentActivity: BuildRecentActivity(employees, allTasks, allReviews, now),
	}, nil
}

func (s *service) EmployeeDetail(ctx context.Context, employeeID uint) (EmployeeDetailState, error) {
	u, err := s.users.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeDetailState{}, usererrors.ErrEmployeeNotFound
		}
		return EmployeeDetailState{}, apperror.Storage(err)
	}

	reviews, err := s.reviews.FindByEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeDetailState{}, apperror.Storage(err)
	}

	history, err := s.attendance.FindByEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeDetailState{}, apperror.Storage(err)
	}

	counters, err := s.taskSvc.CountersForEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeDetailState{}, err
	}

	state := EmployeeDetailState{
		Employee:      user.NewResponse(*u),
		TaskCounters:  counters,
		AverageRating: AverageRating(reviews),
		Reviews:       make([]review.ReviewResponse, len(reviews)),
		Attendance:    make([]attendance.AttendanceResponse, len(history)),
	}
	for i, r := range reviews {
		state.Reviews[i] = review.NewResponse(r)
	}
	for i, a := range history {
		state.Attendance[i] = attendance.NewResponse(a)
	}
	return state, nil
}

func (s *service) EmployeeHome(ctx context.Context, employeeID uint) (EmployeeHomeState, error) {
	counters, err := s.taskSvc.CountersForEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeHomeState{}, err
	}

	rows, err := s.reviews.FindByEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeHomeState{}, apperror.Storage(err)
	}

	state := EmployeeHomeState{
		TaskCounters:  counters,
		AverageRating: AverageRating(rows),
	}
	if len(rows) > 0 {
		// Rows come back newest first.
		latest := review.NewResponse(rows[0])
		state.LatestReview = &latest
	}
	return state, nil
}
