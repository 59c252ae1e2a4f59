package cart

import (
	"net/http"

	"go-storefront-api/internal/middleware"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) writeError(c *gin.Context, op string, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("cart "+op+" failed",
			zap.String("user_id", middleware.UserID(c)),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	if err := h.service.Create(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.writeError(c, "create", err)
		return
	}
	response.Success(c, http.StatusCreated, nil, nil)
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("add item bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	// the path wins over the body
	req.ProductID = c.Param("productId")

	if err := h.service.AddItem(c.Request.Context(), middleware.UserID(c), req); err != nil {
		h.writeError(c, "add item", err)
		return
	}

	response.Success(c, http.StatusCreated, nil, nil)
}

func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, "count", err)
		return
	}

	response.Success(c, http.StatusOK, CartCountResponse{Count: count}, nil)
}

func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, "detail", err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UpdateQty(c *gin.Context) {
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateQty(c.Request.Context(), middleware.UserID(c), c.Param("productId"), req); err != nil {
		h.writeError(c, "update qty", err)
		return
	}

	response.Success(c, http.StatusOK, nil, nil)
}

func (h *Handler) Increment(c *gin.Context) {
	if err := h.service.Increment(c.Request.Context(), middleware.UserID(c), c.Param("productId")); err != nil {
		h.writeError(c, "increment", err)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}

func (h *Handler) Decrement(c *gin.Context) {
	if err := h.service.Decrement(c.Request.Context(), middleware.UserID(c), c.Param("productId")); err != nil {
		h.writeError(c, "decrement", err)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	if err := h.service.DeleteItem(c.Request.Context(), middleware.UserID(c), c.Param("productId")); err != nil {
		h.writeError(c, "delete item", err)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.writeError(c, "clear", err)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}
