package message

import (
	"net/http"
	"strconv"

	messageerrors "github.com/niranjan-18-25/WorkOrbit/internal/message/errors"
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

func parseParticipant(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil || id == 0 {
		writeServiceError(c, messageerrors.ErrInvalidParticipant)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) Send(c *gin.Context) {
	senderID := c.GetUint("user_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Send(c.Request.Context(), senderID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetConversation(c *gin.Context) {
	callerID := c.GetUint("user_id")
	otherID, ok := parseParticipant(c)
	if !ok {
		return
	}

	resp, err := h.service.GetConversation(c.Request.Context(), callerID, otherID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	userID := c.GetUint("user_id")

	n, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n}, nil)
}

func (h *Handler) MarkRead(c *gin.Context) {
	callerID := c.GetUint("user_id")
	otherID, ok := parseParticipant(c)
	if !ok {
		return
	}

	if err := h.service.MarkConversationRead(c.Request.Context(), callerID, otherID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"marked_read": true}, nil)
}
