package messageerrors

import (
	"net/http"

	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
)

var (
	ErrInvalidParticipant = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid conversation participant",
		http.StatusBadRequest,
	)
	ErrSelfMessage = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot send a message to yourself",
		http.StatusBadRequest,
	)
)
