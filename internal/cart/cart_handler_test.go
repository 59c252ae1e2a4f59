package cart_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeCartService struct {
	CreateFn     func(ctx context.Context, userID string) error
	CountFn      func(ctx context.Context, userID string) (int64, error)
	DetailFn     func(ctx context.Context, userID string) (cart.CartDetailResponse, error)
	CurrentFn    func(ctx context.Context, userID string) (*cart.Store, error)
	AddItemFn    func(ctx context.Context, userID string, req cart.AddItemRequest) error
	UpdateQtyFn  func(ctx context.Context, userID, productID string, req cart.UpdateQtyRequest) error
	IncrementFn  func(ctx context.Context, userID, productID string) error
	DecrementFn  func(ctx context.Context, userID, productID string) error
	DeleteItemFn func(ctx context.Context, userID, productID string) error
	ClearFn      func(ctx context.Context, userID string) error
}

func (f *fakeCartService) Create(ctx context.Context, userID string) error {
	return f.CreateFn(ctx, userID)
}
func (f *fakeCartService) Count(ctx context.Context, userID string) (int64, error) {
	return f.CountFn(ctx, userID)
}
func (f *fakeCartService) Detail(ctx context.Context, userID string) (cart.CartDetailResponse, error) {
	return f.DetailFn(ctx, userID)
}
func (f *fakeCartService) Current(ctx context.Context, userID string) (*cart.Store, error) {
	return f.CurrentFn(ctx, userID)
}
func (f *fakeCartService) AddItem(ctx context.Context, userID string, req cart.AddItemRequest) error {
	if f.AddItemFn == nil {
		return nil
	}
	return f.AddItemFn(ctx, userID, req)
}
func (f *fakeCartService) AddItemTx(ctx context.Context, _ *sql.Tx, userID string, req cart.AddItemRequest) error {
	return f.AddItem(ctx, userID, req)
}
func (f *fakeCartService) Committed(context.Context, string) {}
func (f *fakeCartService) UpdateQty(ctx context.Context, userID, productID string, req cart.UpdateQtyRequest) error {
	return f.UpdateQtyFn(ctx, userID, productID, req)
}
func (f *fakeCartService) Increment(ctx context.Context, userID, productID string) error {
	return f.IncrementFn(ctx, userID, productID)
}
func (f *fakeCartService) Decrement(ctx context.Context, userID, productID string) error {
	return f.DecrementFn(ctx, userID, productID)
}
func (f *fakeCartService) DeleteItem(ctx context.Context, userID, productID string) error {
	return f.DeleteItemFn(ctx, userID, productID)
}
func (f *fakeCartService) Clear(ctx context.Context, userID string) error {
	return f.ClearFn(ctx, userID)
}

// ==================== HELPER FUNCTIONS ====================

const testUserID = "7b8f4b1e-3c1a-4d4e-9a52-2f0d3c9b1a10"

func setupTestRouter(h *cart.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// stands in for AuthMiddleware
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDValidated, testUserID)
		c.Next()
	})

	r.POST("/carts", h.Create)
	r.GET("/carts/detail", h.Detail)
	r.GET("/carts/count", h.Count)
	r.DELETE("/carts", h.Clear)
	r.POST("/carts/items/:productId", h.AddItem)
	r.PATCH("/carts/items/:productId", h.UpdateQty)
	r.POST("/carts/items/:productId/increment", h.Increment)
	r.POST("/carts/items/:productId/decrement", h.Decrement)
	r.DELETE("/carts/items/:productId", h.DeleteItem)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== TEST CASES ====================

func TestCartHandler_Create(t *testing.T) {
	svc := &fakeCartService{
		CreateFn: func(ctx context.Context, uid string) error {
			assert.Equal(t, testUserID, uid)
			return nil
		},
	}

	w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodPost, "/carts", "")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCartHandler_Count(t *testing.T) {
	svc := &fakeCartService{
		CountFn: func(ctx context.Context, userID string) (int64, error) {
			return 5, nil
		},
	}

	w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodGet, "/carts/count", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":5`)
}

func TestCartHandler_Detail(t *testing.T) {
	t.Run("empty_cart_has_array_and_zeros", func(t *testing.T) {
		svc := &fakeCartService{
			DetailFn: func(ctx context.Context, userID string) (cart.CartDetailResponse, error) {
				return cart.CartDetailResponse{Items: []cart.CartItemResponse{}}, nil
			},
		}

		w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodGet, "/carts/detail", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
		assert.Contains(t, w.Body.String(), `"subtotal":0`)
	})

	t.Run("service_error_is_generic_500", func(t *testing.T) {
		svc := &fakeCartService{
			DetailFn: func(ctx context.Context, userID string) (cart.CartDetailResponse, error) {
				return cart.CartDetailResponse{}, assert.AnError
			},
		}

		w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodGet, "/carts/detail", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	productID := "0f5c2a0e-8d3b-4c61-b8a1-6c2b0a9d4e11"

	t.Run("price_as_string_and_product_from_path", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, userID string, req cart.AddItemRequest) error {
				assert.Equal(t, productID, req.ProductID)
				assert.True(t, req.Price.Equal(decimal.RequireFromString("549")))
				assert.Equal(t, int32(2), req.Qty)
				return nil
			},
		}

		body := `{"productName":"Headphones","price":"549","qty":2}`
		w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodPost, "/carts/items/"+productID, body)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("price_as_number", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, userID string, req cart.AddItemRequest) error {
				assert.True(t, req.Price.Equal(decimal.RequireFromString("19.99")))
				return nil
			},
		}

		body := `{"productName":"Cable","price":19.99,"qty":1}`
		w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodPost, "/carts/items/"+productID, body)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unparseable_price", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, userID string, req cart.AddItemRequest) error {
				t.Fatal("service must not be called")
				return nil
			},
		}

		body := `{"productName":"Cable","price":"abc","qty":1}`
		w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodPost, "/carts/items/"+productID, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	for name, body := range map[string]string{
		"missing_price": `{"productName":"Cable","qty":1}`,
		"null_price":    `{"productName":"Cable","price":null,"qty":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			f := newServiceFixture(t)

			w := doRequest(setupTestRouter(cart.NewHandler(f.svc)), http.MethodPost, "/carts/items/"+productID, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"price"`)
			assert.NoError(t, f.sqlMock.ExpectationsWereMet())
		})
	}

	t.Run("validation_error_maps_to_400_with_field", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, userID string, req cart.AddItemRequest) error {
				return cart.ErrInvalidQty
			},
		}

		body := `{"productName":"Cable","price":1,"qty":0}`
		w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodPost, "/carts/items/"+productID, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"qty"`)
	})
}

func TestCartHandler_UpdateQty(t *testing.T) {
	t.Run("success_update_qty", func(t *testing.T) {
		svc := &fakeCartService{
			UpdateQtyFn: func(ctx context.Context, userID, productID string, req cart.UpdateQtyRequest) error {
				assert.Equal(t, "p-1", productID)
				assert.Equal(t, int32(3), req.Qty)
				return nil
			},
		}

		w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodPatch, "/carts/items/p-1", `{"qty":3}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("item_not_found", func(t *testing.T) {
		svc := &fakeCartService{
			UpdateQtyFn: func(ctx context.Context, userID, productID string, req cart.UpdateQtyRequest) error {
				return cart.ErrCartItemNotFound
			},
		}

		w := doRequest(setupTestRouter(cart.NewHandler(svc)), http.MethodPatch, "/carts/items/p-1", `{"qty":3}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad_body", func(t *testing.T) {
		w := doRequest(setupTestRouter(cart.NewHandler(&fakeCartService{})), http.MethodPatch, "/carts/items/p-1", `{"qty":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_IncrementDecrement(t *testing.T) {
	var calls []string
	svc := &fakeCartService{
		IncrementFn: func(ctx context.Context, userID, productID string) error {
			calls = append(calls, "inc:"+productID)
			return nil
		},
		DecrementFn: func(ctx context.Context, userID, productID string) error {
			calls = append(calls, "dec:"+productID)
			return nil
		},
	}
	r := setupTestRouter(cart.NewHandler(svc))

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/carts/items/p-1/increment", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/carts/items/p-1/decrement", "").Code)
	assert.Equal(t, []string{"inc:p-1", "dec:p-1"}, calls)
}

func TestCartHandler_DeleteAndClear(t *testing.T) {
	var cleared, deleted string
	svc := &fakeCartService{
		DeleteItemFn: func(ctx context.Context, userID, productID string) error {
			deleted = productID
			return nil
		},
		ClearFn: func(ctx context.Context, userID string) error {
			cleared = userID
			return nil
		},
	}
	r := setupTestRouter(cart.NewHandler(svc))

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodDelete, "/carts/items/p-9", "").Code)
	assert.Equal(t, "p-9", deleted)

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodDelete, "/carts", "").Code)
	assert.Equal(t, testUserID, cleared)
}
