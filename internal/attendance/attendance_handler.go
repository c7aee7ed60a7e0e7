package attendance

import (
	"net/http"
	"strconv"

	attendanceerrors "github.com/niranjan-18-25/WorkOrbit/internal/attendance/errors"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("employeeId"), 10, 32)
	if err != nil {
		writeServiceError(c, attendanceerrors.ErrInvalidAttendanceID)
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), uint(employeeID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// GetMine serves the calling employee's own history.
func (h *Handler) GetMine(c *gin.Context) {
	actorID := c.GetUint("user_id")

	resp, err := h.service.GetByEmployee(c.Request.Context(), actorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		writeServiceError(c, attendanceerrors.ErrInvalidAttendanceID)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id}, nil)
}
