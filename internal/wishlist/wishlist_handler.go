package wishlist

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

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("wishlist.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wishlist.handler")
	}
	return &Handler{service: svc, logger: l}
}

func (h *Handler) writeError(c *gin.Context, op string, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("wishlist "+op+" failed",
			zap.String("user_id", middleware.UserID(c)),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// POST /wishlists/items/:productId
func (h *Handler) Create(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), middleware.UserID(c), c.Param("productId"), req)
	if err != nil {
		h.writeError(c, "create", err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

// GET /wishlists/items
func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, "list", err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /wishlists/items/:productId
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), c.Param("productId")); err != nil {
		h.writeError(c, "delete", err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Product removed from wishlist successfully",
	}, nil)
}

// POST /wishlists/items/:productId/move-to-cart
func (h *Handler) MoveToCart(c *gin.Context) {
	if err := h.service.MoveToCart(c.Request.Context(), middleware.UserID(c), c.Param("productId")); err != nil {
		h.writeError(c, "move to cart", err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Product moved to cart",
	}, nil)
}
