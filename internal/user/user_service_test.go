package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/niranjan-18-25/WorkOrbit/internal/events"
	"github.com/niranjan-18-25/WorkOrbit/internal/user"
	usererrors "github.com/niranjan-18-25/WorkOrbit/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn           func(ctx context.Context, u *user.User) error
	updateFn           func(ctx context.Context, u *user.User) error
	deleteFn           func(ctx context.Context, id uint) error
	findByIDFn         func(ctx context.Context, id uint) (*user.User, error)
	findByEmailFn      func(ctx context.Context, email string) (*user.User, error)
	findAllEmployeesFn func(ctx context.Context) ([]user.User, error)
	countEmployeesFn   func(ctx context.Context) (int64, error)
	countAllFn         func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id uint) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindAllEmployees(ctx context.Context) ([]user.User, error) {
	if f.findAllEmployeesFn != nil {
		return f.findAllEmployeesFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepository) CountEmployees(ctx context.Context) (int64, error) {
	if f.countEmployeesFn != nil {
		return f.countEmployeesFn(ctx)
	}
	return 0, nil
}

func (f *fakeUserRepository) CountAll(ctx context.Context) (int64, error) {
	if f.countAllFn != nil {
		return f.countAllFn(ctx)
	}
	return 0, nil
}

func TestUserService_CreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and assigns employee role", func(t *testing.T) {
		repo := &fakeUserRepository{}
		bus := events.NewBus()
		svc := user.NewService(repo, bus)

		var stored *user.User
		repo.createFn = func(ctx context.Context, u *user.User) error {
			u.ID = 7
			stored = u
			return nil
		}

		resp, err := svc.CreateEmployee(ctx, user.CreateEmployeeRequest{
			Email:       "jane@company.com",
			Password:    "s3cret99",
			Name:        "Jane Roe",
			Designation: "Engineer",
			Department:  "Platform",
			JoiningDate: "2026-01-15",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(7), resp.ID)
		assert.Equal(t, string(user.RoleEmployee), resp.Role)
		assert.NotNil(t, stored)
		assert.NotEqual(t, "s3cret99", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret99")))
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		repo := &fakeUserRepository{
			createFn: func(ctx context.Context, u *user.User) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_user_email"}
			},
		}
		svc := user.NewService(repo, events.NewBus())

		_, err := svc.CreateEmployee(ctx, user.CreateEmployeeRequest{
			Email:       "jane@company.com",
			Password:    "s3cret99",
			Name:        "Jane Roe",
			Designation: "Engineer",
			Department:  "Platform",
			JoiningDate: "2026-01-15",
		})

		assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyRegistered)
	})
}

func TestUserService_UpdateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps hash when password omitted", func(t *testing.T) {
		existing := &user.User{
			ID:           3,
			Email:        "old@company.com",
			PasswordHash: "existing-hash",
			Name:         "Old Name",
			Role:         user.RoleEmployee,
		}
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
				assert.Equal(t, uint(3), id)
				return existing, nil
			},
		}
		svc := user.NewService(repo, events.NewBus())

		resp, err := svc.UpdateEmployee(ctx, 3, user.UpdateEmployeeRequest{
			Email:       "new@company.com",
			Name:        "New Name",
			Designation: "Lead",
			Department:  "Platform",
			JoiningDate: "2025-06-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "new@company.com", resp.Email)
		assert.Equal(t, "existing-hash", existing.PasswordHash)
	})

	t.Run("missing employee", func(t *testing.T) {
		repo := &fakeUserRepository{}
		svc := user.NewService(repo, events.NewBus())

		_, err := svc.UpdateEmployee(ctx, 99, user.UpdateEmployeeRequest{
			Email: "x@company.com", Name: "X",
			Designation: "E", Department: "D", JoiningDate: "2025-01-01",
		})

		assert.ErrorIs(t, err, usererrors.ErrEmployeeNotFound)
	})
}

func TestUserService_DeleteEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses to delete the administrator", func(t *testing.T) {
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
				return &user.User{ID: 1, Role: user.RoleAdmin}, nil
			},
			deleteFn: func(ctx context.Context, id uint) error {
				t.Fatal("delete must not be reached")
				return nil
			},
		}
		svc := user.NewService(repo, events.NewBus())

		err := svc.DeleteEmployee(ctx, 1)

		assert.ErrorIs(t, err, usererrors.ErrCannotDeleteAdmin)
	})

	t.Run("deletes employee and publishes change", func(t *testing.T) {
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
				return &user.User{ID: 4, Role: user.RoleEmployee}, nil
			},
		}
		bus := events.NewBus()
		ch, cancel := bus.Subscribe(events.TableUsers)
		defer cancel()
		svc := user.NewService(repo, bus)

		err := svc.DeleteEmployee(ctx, 4)

		assert.NoError(t, err)
		change := <-ch
		assert.Equal(t, events.OpDelete, change.Op)
		assert.Equal(t, uint(4), change.RowID)
	})
}

func TestEnsureAdminSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds empty store with hashed admin", func(t *testing.T) {
		var stored *user.User
		repo := &fakeUserRepository{
			countAllFn: func(ctx context.Context) (int64, error) { return 0, nil },
			createFn: func(ctx context.Context, u *user.User) error {
				stored = u
				return nil
			},
		}

		user.EnsureAdminSeed(ctx, repo)

		assert.NotNil(t, stored)
		assert.Equal(t, user.SeedAdminEmail, stored.Email)
		assert.Equal(t, user.RoleAdmin, stored.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("admin123")))
	})

	t.Run("non-empty store is left alone", func(t *testing.T) {
		repo := &fakeUserRepository{
			countAllFn: func(ctx context.Context) (int64, error) { return 2, nil },
			createFn: func(ctx context.Context, u *user.User) error {
				t.Fatal("create must not be reached")
				return nil
			},
		}

		user.EnsureAdminSeed(ctx, repo)
	})

	t.Run("count failure is swallowed", func(t *testing.T) {
		repo := &fakeUserRepository{
			countAllFn: func(ctx context.Context) (int64, error) {
				return 0, errors.New("connection reset")
			},
		}

		user.EnsureAdminSeed(ctx, repo)
	})
}
