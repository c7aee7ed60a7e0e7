package dashboard

import (
	"net/http"
	"strconv"

	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/response"
	usererrors "github.com/niranjan-18-25/WorkOrbit/internal/user/errors"

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

func (h *Handler) Admin(c *gin.Context) {
	resp, err := h.service.AdminDashboard(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) EmployeeDetail(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("employeeId"), 10, 32)
	if err != nil {
		writeServiceError(c, usererrors.ErrInvalidEmployeeID)
		return
	}

	resp, err := h.service.EmployeeDetail(c.Request.Context(), uint(employeeID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Home(c *gin.Context) {
	actorID := c.GetUint("user_id")

	resp, err := h.service.EmployeeHome(c.Request.Context(), actorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
