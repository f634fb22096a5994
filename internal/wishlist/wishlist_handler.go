package wishlist

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

func (h *Handler) List(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	res, err := h.service.List(c.Request.Context(), sid)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Add(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.service.Add(c.Request.Context(), sid, c.Param("productId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, nil)
}

func (h *Handler) Remove(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), sid, c.Param("productId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// Membership answers "is this product in my wishlist" without shipping the
// whole list; the product card's heart icon polls this.
func (h *Handler) Membership(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	productID := c.Param("productId")
	in, err := h.service.Contains(c.Request.Context(), sid, productID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, MembershipResponse{
		ProductID:  productID,
		InWishlist: in,
	})
}
