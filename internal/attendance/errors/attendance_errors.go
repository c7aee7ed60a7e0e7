package attendanceerrors

import (
	"net/http"

	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance ID",
		http.StatusBadRequest,
	)
)
