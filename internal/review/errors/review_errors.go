package reviewerrors

import (
	"net/http"

	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
)

var (
	ErrReviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Review not found",
		http.StatusNotFound,
	)
	ErrInvalidReviewID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid review ID",
		http.StatusBadRequest,
	)
)
