package order

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-storefront-api/internal/middleware"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(svc Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: svc, rdb: rdb, logger: l}
}

func (h *Handler) writeError(c *gin.Context, op string, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("order "+op+" failed",
			zap.String("user_id", middleware.UserID(c)),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// ==================== CUSTOMER ENDPOINTS ====================

// Checkout places an order from the caller's cart.
// POST /orders/checkout
func (h *Handler) Checkout(c *gin.Context) {
	userID := middleware.UserID(c)
	ctx := c.Request.Context()

	if lockKey := c.GetString(middleware.ContextIdempotencyLockKey); lockKey != "" && h.rdb != nil {
		defer h.rdb.Del(ctx, lockKey)
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("checkout bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Checkout(ctx, userID, req)
	if err != nil {
		h.writeError(c, "checkout", err)
		return
	}

	if cacheKey := c.GetString(middleware.ContextIdempotencyCacheKey); cacheKey != "" && h.rdb != nil {
		data, err := json.Marshal(res)
		if err == nil {
			err = h.rdb.Set(ctx, cacheKey, data, middleware.IdempotencyResponseTTL).Err()
		}
		if err != nil {
			h.logger.Warn("idempotency response not cached", zap.String("cache_key", cacheKey), zap.Error(err))
		}
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) List(c *gin.Context) {
	status := c.Query("status")
	if status == "ALL" {
		status = ""
	}
	page, limit := pagination(c)

	orders, total, err := h.service.List(c.Request.Context(), middleware.UserID(c), status, page, limit)
	if err != nil {
		h.writeError(c, "list", err)
		return
	}

	response.Success(c, http.StatusOK, orders, response.NewPaginationMeta(total, page, limit))
}

func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		h.writeError(c, "detail", err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	res, err := h.service.Cancel(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		h.writeError(c, "cancel", err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// ==================== ADMIN ENDPOINTS ====================

func (h *Handler) ListAdmin(c *gin.Context) {
	status := c.Query("status")
	search := c.Query("search")
	page, limit := pagination(c)

	orders, total, err := h.service.ListAdmin(c.Request.Context(), status, search, page, limit)
	if err != nil {
		h.writeError(c, "list admin", err)
		return
	}

	response.Success(c, http.StatusOK, orders, response.NewPaginationMeta(total, page, limit))
}

// UpdateStatusByAdmin moves an order along the fulfilment flow.
// PATCH /admin/orders/:id/status
func (h *Handler) UpdateStatusByAdmin(c *gin.Context) {
	var req UpdateStatusAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.UpdateStatusByAdmin(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.writeError(c, "update status", err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
