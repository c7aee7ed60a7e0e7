package user

import (
	"errors"

	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
	usererrors "github.com/niranjan-18-25/WorkOrbit/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_user_email" {
			return usererrors.ErrEmailAlreadyRegistered
		}
	}

	return apperror.Storage(err)
}
