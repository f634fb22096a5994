package cart

import (
	"net/http"

	"github.com/rohitguptaaa/AmazeMart/internal/pkg/apperror"
	"github.com/rohitguptaaa/AmazeMart/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) sessionID(c *gin.Context) (string, bool) {
	sid := c.GetString("session_id_validated")
	if sid == "" {
		response.Error(c, http.StatusUnauthorized, "NO_SESSION", "Session not established", nil)
		return "", false
	}
	return sid, true
}

func (h *Handler) Detail(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	res, err := h.service.Detail(c.Request.Context(), sid)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Count(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	count, err := h.service.Count(c.Request.Context(), sid)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, CartCountResponse{Count: count})
}

func (h *Handler) AddItem(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.service.AddItem(c.Request.Context(), sid, c.Param("productId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, nil)
}

func (h *Handler) UpdateQty(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateQty(c.Request.Context(), sid, c.Param("productId"), req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveItem(c.Request.Context(), sid, c.Param("productId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) Clear(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.service.Clear(c.Request.Context(), sid); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) SetDrawer(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req SetDrawerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	if err := h.service.SetDrawer(c.Request.Context(), sid, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
