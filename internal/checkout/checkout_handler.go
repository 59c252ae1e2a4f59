package checkout

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
	l := zap.L().Named("checkout.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("checkout.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) writeError(c *gin.Context, op string, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("checkout "+op+" failed",
			zap.String("user_id", middleware.UserID(c)),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindError(c *gin.Context, err error) {
	h.logger.Debug("checkout bind failed", zap.Error(err))
	response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
}

func (h *Handler) Options(c *gin.Context) {
	res, err := h.service.Options(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, "options", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	var req SummaryRequest
	// an empty body is a plain summary
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.bindError(c, err)
			return
		}
	}

	res, err := h.service.Summary(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.writeError(c, "summary", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ApplyPromo(c *gin.Context) {
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.service.ApplyPromo(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.writeError(c, "apply promo", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) RemovePromo(c *gin.Context) {
	res, err := h.service.RemovePromo(c.Request.Context(), middleware.UserID(c), c.Query("state_code"))
	if err != nil {
		h.writeError(c, "remove promo", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) SelectAddress(c *gin.Context) {
	var req SelectAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.service.SelectAddress(c.Request.Context(), middleware.UserID(c), req.AddressID)
	if err != nil {
		h.writeError(c, "select address", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) SelectPaymentMethod(c *gin.Context) {
	var req SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	res, err := h.service.SelectPaymentMethod(c.Request.Context(), middleware.UserID(c), req.PaymentMethod)
	if err != nil {
		h.writeError(c, "select payment method", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
