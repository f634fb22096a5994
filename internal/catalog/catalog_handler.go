package catalog

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

// Browse serves the storefront grid: free-text search plus filters and one
// sort mode, all in query params.
func (h *Handler) Browse(c *gin.Context) {
	var q BrowseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid browse query", err.Error())
		return
	}

	items, err := h.service.Browse(c.Request.Context(), BrowseRequest{
		Query:     q.Query,
		Category:  q.Category,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		MinRating: q.MinRating,
		Sort:      SortMode(q.Sort),
	})
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, ProductListResponse{Items: items, Total: len(items)})
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Deals(c *gin.Context) {
	items := h.service.Deals(c.Request.Context())
	response.Success(c, http.StatusOK, ProductListResponse{Items: items, Total: len(items)})
}

func (h *Handler) BestSellers(c *gin.Context) {
	items := h.service.BestSellers(c.Request.Context())
	response.Success(c, http.StatusOK, ProductListResponse{Items: items, Total: len(items)})
}

func (h *Handler) Trending(c *gin.Context) {
	items := h.service.Trending(c.Request.Context())
	response.Success(c, http.StatusOK, ProductListResponse{Items: items, Total: len(items)})
}

func (h *Handler) Categories(c *gin.Context) {
	items := h.service.Categories(c.Request.Context())
	response.Success(c, http.StatusOK, CategoryListResponse{Items: items, Total: len(items)})
}

// CategoryProducts lists a category's products in catalog order. An unknown
// category yields an empty list, matching the query engine's semantics.
func (h *Handler) CategoryProducts(c *gin.Context) {
	items := h.service.ListByCategory(c.Request.Context(), c.Param("id"))
	response.Success(c, http.StatusOK, ProductListResponse{Items: items, Total: len(items)})
}
