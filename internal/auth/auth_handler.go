package auth

import (
	"net/http"

	"github.com/rohitguptaaa/AmazeMart/internal/pkg/apperror"
	"github.com/rohitguptaaa/AmazeMart/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	accessTokenMaxAge  = 60 * 15
	refreshTokenMaxAge = 60 * 60 * 24 * 7
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.setTokenCookies(c, res)
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.setTokenCookies(c, res)
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) setTokenCookies(c *gin.Context, res SessionResponse) {
	c.SetCookie("access_token", res.AccessToken, accessTokenMaxAge, "/", "", false, true)
	c.SetCookie("refresh_token", res.RefreshToken, refreshTokenMaxAge, "/", "", false, true)
}
