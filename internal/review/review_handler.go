package review

import (
	"net/http"
	"strconv"

	reviewerrors "github.com/niranjan-18-25/WorkOrbit/internal/review/errors"
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

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("employeeId"), 10, 32)
	if err != nil {
		writeServiceError(c, reviewerrors.ErrInvalidReviewID)
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), uint(employeeID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// GetMine serves the employee's own review history plus their average.
func (h *Handler) GetMine(c *gin.Context) {
	actorID := c.GetUint("user_id")

	reviews, err := h.service.GetByEmployee(c.Request.Context(), actorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	avg, err := h.service.AverageForEmployee(c.Request.Context(), actorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": avg,
	}, nil)
}

func (h *Handler) AverageByEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("employeeId"), 10, 32)
	if err != nil {
		writeServiceError(c, reviewerrors.ErrInvalidReviewID)
		return
	}

	avg, err := h.service.AverageForEmployee(c.Request.Context(), uint(employeeID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"average_rating": avg}, nil)
}
