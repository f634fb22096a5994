package cart_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rohitguptaaa/AmazeMart/internal/cart"
	"github.com/rohitguptaaa/AmazeMart/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeCartService struct {
	AddItemFn    func(ctx context.Context, sessionID, productID string) error
	UpdateQtyFn  func(ctx context.Context, sessionID, productID string, req cart.UpdateQtyRequest) error
	RemoveItemFn func(ctx context.Context, sessionID, productID string) error
	ClearFn      func(ctx context.Context, sessionID string) error
	SetDrawerFn  func(ctx context.Context, sessionID string, req cart.SetDrawerRequest) error
	DetailFn     func(ctx context.Context, sessionID string) (cart.CartDetailResponse, error)
	CountFn      func(ctx context.Context, sessionID string) (int, error)
}

func (f *fakeCartService) AddItem(ctx context.Context, sessionID, productID string) error {
	return f.AddItemFn(ctx, sessionID, productID)
}
func (f *fakeCartService) UpdateQty(ctx context.Context, sessionID, productID string, req cart.UpdateQtyRequest) error {
	return f.UpdateQtyFn(ctx, sessionID, productID, req)
}
func (f *fakeCartService) RemoveItem(ctx context.Context, sessionID, productID string) error {
	return f.RemoveItemFn(ctx, sessionID, productID)
}
func (f *fakeCartService) Clear(ctx context.Context, sessionID string) error {
	return f.ClearFn(ctx, sessionID)
}
func (f *fakeCartService) SetDrawer(ctx context.Context, sessionID string, req cart.SetDrawerRequest) error {
	return f.SetDrawerFn(ctx, sessionID, req)
}
func (f *fakeCartService) Detail(ctx context.Context, sessionID string) (cart.CartDetailResponse, error) {
	return f.DetailFn(ctx, sessionID)
}
func (f *fakeCartService) Count(ctx context.Context, sessionID string) (int, error) {
	return f.CountFn(ctx, sessionID)
}

// ==================== HELPER FUNCTIONS ====================

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// sessionWrapper mimics the session middleware's output.
func sessionWrapper(sessionID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session_id_validated", sessionID)
		handler(c)
	}
}

// ==================== TEST CASES ====================

func TestCartHandler_Detail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			DetailFn: func(ctx context.Context, sessionID string) (cart.CartDetailResponse, error) {
				assert.Equal(t, "sess-1", sessionID)
				return cart.CartDetailResponse{
					Items: []cart.CartLineResponse{
						{Product: catalog.Product{ID: "p1", Title: "Alpha Phone"}, Qty: 2, LineTotal: 20},
					},
					Total: 20,
					Count: 2,
				}, nil
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.GET("/cart", sessionWrapper("sess-1", ctrl.Detail))

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":20`)
		assert.Contains(t, w.Body.String(), `"count":2`)
	})

	t.Run("no_session_is_unauthorized", func(t *testing.T) {
		ctrl := cart.NewHandler(&fakeCartService{})
		r := setupTestRouter()
		r.GET("/cart", ctrl.Detail)

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "NO_SESSION")
	})
}

func TestCartHandler_Count(t *testing.T) {
	svc := &fakeCartService{
		CountFn: func(ctx context.Context, sessionID string) (int, error) {
			return 5, nil
		},
	}

	ctrl := cart.NewHandler(svc)
	r := setupTestRouter()
	r.GET("/cart/count", sessionWrapper("sess-1", ctrl.Count))

	req := httptest.NewRequest(http.MethodGet, "/cart/count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":5`)
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, sessionID, productID string) error {
				assert.Equal(t, "p1", productID)
				return nil
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.POST("/cart/items/:productId", sessionWrapper("sess-1", ctrl.AddItem))

		req := httptest.NewRequest(http.MethodPost, "/cart/items/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown_product_maps_to_404", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, sessionID, productID string) error {
				return catalog.ErrProductNotFound
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.POST("/cart/items/:productId", sessionWrapper("sess-1", ctrl.AddItem))

		req := httptest.NewRequest(http.MethodPost, "/cart/items/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestCartHandler_UpdateQty(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			UpdateQtyFn: func(ctx context.Context, sessionID, productID string, req cart.UpdateQtyRequest) error {
				if assert.NotNil(t, req.Qty) {
					assert.Equal(t, 2, *req.Qty)
				}
				return nil
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.PATCH("/cart/items/:productId", sessionWrapper("sess-1", ctrl.UpdateQty))

		req := httptest.NewRequest(http.MethodPatch, "/cart/items/p1", strings.NewReader(`{"qty":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad_request_invalid_json", func(t *testing.T) {
		ctrl := cart.NewHandler(&fakeCartService{})
		r := setupTestRouter()
		r.PATCH("/cart/items/:productId", sessionWrapper("sess-1", ctrl.UpdateQty))

		req := httptest.NewRequest(http.MethodPatch, "/cart/items/p1", strings.NewReader(`{"qty":"invalid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing_qty_is_rejected_by_binding", func(t *testing.T) {
		ctrl := cart.NewHandler(&fakeCartService{})
		r := setupTestRouter()
		r.PATCH("/cart/items/:productId", sessionWrapper("sess-1", ctrl.UpdateQty))

		req := httptest.NewRequest(http.MethodPatch, "/cart/items/p1", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	svc := &fakeCartService{
		RemoveItemFn: func(ctx context.Context, sessionID, productID string) error { return nil },
		ClearFn:      func(ctx context.Context, sessionID string) error { return nil },
	}

	ctrl := cart.NewHandler(svc)
	r := setupTestRouter()
	r.DELETE("/cart/items/:productId", sessionWrapper("sess-1", ctrl.RemoveItem))
	r.DELETE("/cart", sessionWrapper("sess-1", ctrl.Clear))

	t.Run("success_remove_item", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/cart/items/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("success_clear_cart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCartHandler_SetDrawer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			SetDrawerFn: func(ctx context.Context, sessionID string, req cart.SetDrawerRequest) error {
				if assert.NotNil(t, req.Open) {
					assert.True(t, *req.Open)
				}
				return nil
			},
		}

		ctrl := cart.NewHandler(svc)
		r := setupTestRouter()
		r.PATCH("/cart/drawer", sessionWrapper("sess-1", ctrl.SetDrawer))

		req := httptest.NewRequest(http.MethodPatch, "/cart/drawer", strings.NewReader(`{"open":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing_flag_is_rejected_by_binding", func(t *testing.T) {
		ctrl := cart.NewHandler(&fakeCartService{})
		r := setupTestRouter()
		r.PATCH("/cart/drawer", sessionWrapper("sess-1", ctrl.SetDrawer))

		req := httptest.NewRequest(http.MethodPatch, "/cart/drawer", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
