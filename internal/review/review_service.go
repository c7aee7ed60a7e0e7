package review

import (
	"context"
	"errors"

	"github.com/niranjan-18-25/WorkOrbit/internal/events"
	reviewerrors "github.com/niranjan-18-25/WorkOrbit/internal/review/errors"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"

	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	GetByID(ctx context.Context, id uint) (ReviewResponse, error)
	GetAll(ctx context.Context) ([]ReviewResponse, error)
	GetByEmployee(ctx context.Context, employeeID uint) ([]ReviewResponse, error)
	AverageForEmployee(ctx context.Context, employeeID uint) (float64, error)
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
		return reviewerrors.ErrReviewNotFound
	}
	return apperror.Storage(err)
}

func (s *service) Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error) {
	rev := &Review{
		EmployeeID:    req.EmployeeID,
		Date:          req.Date,
		Quality:       req.Quality,
		Communication: req.Communication,
		Innovation:    req.Innovation,
		Timeliness:    req.Timeliness,
		Attendance:    req.Attendance,
		OverallRating: req.OverallRating,
		Remarks:       req.Remarks,
		ReviewedBy:    req.ReviewedBy,
	}

	if err := s.repo.Create(ctx, rev); err != nil {
		return ReviewResponse{}, mapRepositoryError(err)
	}

	s.bus.Publish(events.Change{Table: events.TableReviews, Op: events.OpInsert, RowID: rev.ID})
	return NewResponse(*rev), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (ReviewResponse, error) {
	rev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReviewResponse{}, mapRepositoryError(err)
	}
	return NewResponse(*rev), nil
}

func (s *service) GetAll(ctx context.Context) ([]ReviewResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID uint) ([]ReviewResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) AverageForEmployee(ctx context.Context, employeeID uint) (float64, error) {
	avg, err := s.repo.AverageRatingByEmployee(ctx, employeeID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	return avg, nil
}

func mapToListResponse(rows []Review) []ReviewResponse {
	resp := make([]ReviewResponse, len(rows))
	for i, r := range rows {
		resp[i] = NewResponse(r)
	}
	return resp
}
