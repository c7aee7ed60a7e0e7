package user

import (
	"context"

	"github.com/niranjan-18-25/WorkOrbit/internal/events"
	usererrors "github.com/niranjan-18-25/WorkOrbit/internal/user/errors"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (UserResponse, error)
	UpdateEmployee(ctx context.Context, id uint, req UpdateEmployeeRequest) (UserResponse, error)
	DeleteEmployee(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (UserResponse, error)
	GetAllEmployees(ctx context.Context) ([]UserResponse, error)
}

type service struct {
	repo Repository
	bus  *events.Bus
}

func NewService(repo Repository, bus *events.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func (s *service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Name:         req.Name,
		Role:         RoleEmployee,
		Designation:  req.Designation,
		Department:   req.Department,
		JoiningDate:  req.JoiningDate,
		Contact:      req.Contact,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.bus.Publish(events.Change{Table: events.TableUsers, Op: events.OpInsert, RowID: u.ID})
	return NewResponse(*u), nil
}

func (s *service) UpdateEmployee(ctx context.Context, id uint, req UpdateEmployeeRequest) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.Email = req.Email
	u.Name = req.Name
	u.Designation = req.Designation
	u.Department = req.Department
	u.JoiningDate = req.JoiningDate
	u.Contact = req.Contact

	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.PasswordHash = string(hashed)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.bus.Publish(events.Change{Table: events.TableUsers, Op: events.OpUpdate, RowID: u.ID})
	return NewResponse(*u), nil
}

func (s *service) DeleteEmployee(ctx context.Context, id uint) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if u.Role == RoleAdmin {
		return usererrors.ErrCannotDeleteAdmin
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.bus.Publish(events.Change{Table: events.TableUsers, Op: events.OpDelete, RowID: id})
	return nil
}

func (s *service) GetByID(ctx context.Context, id uint) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return NewResponse(*u), nil
}

func (s *service) GetAllEmployees(ctx context.Context) ([]UserResponse, error) {
	rows, err := s.repo.FindAllEmployees(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]UserResponse, len(rows))
	for i, u := range rows {
		resp[i] = NewResponse(u)
	}
	return resp, nil
}
