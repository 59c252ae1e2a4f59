package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/outbox"
	"go-storefront-api/internal/shared/database/dbgen"
	"go-storefront-api/internal/shared/database/helper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	// Customer Actions
	Checkout(ctx context.Context, userID string, req CheckoutRequest) (OrderResponse, error)
	List(ctx context.Context, userID string, status string, page, limit int) ([]OrderResponse, int64, error)
	Detail(ctx context.Context, orderID, userID string) (OrderResponse, error)
	Cancel(ctx context.Context, orderID, userID string) (OrderResponse, error)

	// Admin Actions
	ListAdmin(ctx context.Context, status string, search string, page, limit int) ([]OrderResponse, int64, error)
	UpdateStatusByAdmin(ctx context.Context, orderID string, nextStatus string) (OrderResponse, error)
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Checkout   checkout.Service
	Logger     *zap.Logger
	Now        func() time.Time
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	checkout   checkout.Service
	logger     *zap.Logger
	now        func() time.Time
}

// adminTransitions lists where an admin may move an order from each status.
var adminTransitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusCompleted},
}

var knownStatuses = map[string]struct{}{
	StatusPending:    {},
	StatusProcessing: {},
	StatusShipped:    {},
	StatusDelivered:  {},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Checkout == nil {
		panic("checkout service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		checkout:   deps.Checkout,
		logger:     deps.Logger,
		now:        deps.Now,
	}
}

func (s *service) newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%s", s.now().Unix(), strings.ToUpper(uuid.NewString()[:4]))
}

func (s *service) Checkout(ctx context.Context, userID string, req CheckoutRequest) (OrderResponse, error) {
	logger := s.logger.With(zap.String("user_id", userID))

	// 1. Selection: fails on a missing address before any I/O
	addr, err := s.checkout.Validate(ctx, userID, checkout.Selection{
		AddressID:     req.AddressID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return OrderResponse{}, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return OrderResponse{}, ErrInvalidUserID
	}

	// 2. Price the cart as it is now
	quote, err := s.checkout.Quote(ctx, userID, addr.State)
	if err != nil {
		logger.Error("failed to price cart", zap.Error(err))
		return OrderResponse{}, err
	}
	if len(quote.Items) == 0 {
		return OrderResponse{}, checkout.ErrEmptyCart
	}
	if quote.Summary.Degraded {
		logger.Warn("checkout blocked, pricing degraded")
		return OrderResponse{}, checkout.ErrPricingUnavailable
	}
	sum := quote.Summary

	addressSnapshot, err := json.Marshal(addr)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	addressID, _ := uuid.Parse(addr.ID)

	var promocode sql.NullString
	if sum.PromocodeApplied {
		promocode = helper.RawStringToNull(sum.Promocode)
	}

	orderNumber := s.newOrderNumber()
	logger = logger.With(zap.String("order_number", orderNumber))

	// 3. Order, items and the cart-clearing event commit together
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
			logger.Warn("transaction rolled back")
		}
	}()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.CreateOrder(ctx, dbgen.CreateOrderParams{
		OrderNumber:     orderNumber,
		UserID:          uid,
		Status:          StatusPending,
		PaymentMethod:   checkout.PaymentMethodCOD,
		PaymentStatus:   PaymentStatusUnpaid,
		AddressID:       helper.UUIDToNull(addressID),
		AddressSnapshot: addressSnapshot,
		SubtotalPrice:   helper.DecimalToMoney(sum.Subtotal),
		DiscountPrice:   helper.DecimalToMoney(sum.Discount),
		ShippingPrice:   helper.DecimalToMoney(sum.Shipping),
		TaxPrice:        helper.DecimalToMoney(sum.Tax),
		TotalPrice:      helper.DecimalToMoney(sum.Total),
		Promocode:       promocode,
		Note:            helper.RawStringToNull(strings.TrimSpace(req.Note)),
	})
	if err != nil {
		logger.Error("failed to create order record", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	items := make([]dbgen.OrderItem, 0, len(quote.Items))
	for _, it := range quote.Items {
		line := it.UnitPrice.Mul(decimal.NewFromInt32(it.Quantity))
		arg := dbgen.CreateOrderItemParams{
			OrderID:      o.ID,
			ProductID:    it.ProductID,
			NameSnapshot: it.ProductName,
			UnitPrice:    helper.DecimalToMoney(it.UnitPrice),
			Quantity:     it.Quantity,
			TotalPrice:   helper.DecimalToMoney(line),
		}
		if err := qtx.CreateOrderItem(ctx, arg); err != nil {
			logger.Error("failed to create order item", zap.String("product_id", it.ProductID.String()), zap.Error(err))
			return OrderResponse{}, ErrOrderFailed
		}
		items = append(items, dbgen.OrderItem{
			OrderID:      o.ID,
			ProductID:    arg.ProductID,
			NameSnapshot: arg.NameSnapshot,
			UnitPrice:    arg.UnitPrice,
			Quantity:     arg.Quantity,
			TotalPrice:   arg.TotalPrice,
		})
	}

	event, err := outbox.NewDeleteCartEvent(o.ID, userID)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	if err := s.outboxRepo.WithTx(tx).CreateOutboxEvent(ctx, event); err != nil {
		logger.Error("failed to create outbox event", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit transaction", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}
	committed = true

	// the order stands even if the session cannot be dropped; it expires
	if err := s.checkout.Reset(ctx, userID); err != nil {
		logger.Warn("failed to reset checkout session", zap.Error(err))
	}

	logger.Info("checkout success", zap.String("order_id", o.ID.String()))

	return mapOrderToResponse(o, items), nil
}

func pageArgs(page, limit int) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return int32(limit), int32((page - 1) * limit)
}

func (s *service) List(ctx context.Context, userID string, status string, page, limit int) ([]OrderResponse, int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, ErrInvalidUserID
	}

	status = strings.ToUpper(strings.TrimSpace(status))
	if status != "" {
		if _, ok := knownStatuses[status]; !ok {
			return nil, 0, ErrInvalidStatus
		}
	}

	lim, off := pageArgs(page, limit)
	rows, err := s.repo.ListByUser(ctx, dbgen.ListOrdersByUserParams{
		UserID: uid,
		Status: helper.RawStringToNull(status),
		Limit:  lim,
		Offset: off,
	})
	if err != nil {
		return nil, 0, err
	}

	res := make([]OrderResponse, 0, len(rows))
	var total int64
	for _, r := range rows {
		total = r.TotalCount
		res = append(res, OrderResponse{
			ID:            r.ID.String(),
			OrderNumber:   r.OrderNumber,
			Status:        r.Status,
			PaymentMethod: r.PaymentMethod,
			PaymentStatus: r.PaymentStatus,
			TotalPrice:    helper.StringToDecimal(r.TotalPrice).InexactFloat64(),
			PlacedAt:      r.PlacedAt,
			Items:         []OrderItemResponse{},
		})
	}

	return res, total, nil
}

func (s *service) ListAdmin(ctx context.Context, status string, search string, page, limit int) ([]OrderResponse, int64, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status != "" {
		if _, ok := knownStatuses[status]; !ok {
			return nil, 0, ErrInvalidStatus
		}
	}

	lim, off := pageArgs(page, limit)
	rows, err := s.repo.ListAdmin(ctx, dbgen.ListOrdersAdminParams{
		Status: helper.RawStringToNull(status),
		Search: helper.RawStringToNull(strings.TrimSpace(search)),
		Limit:  lim,
		Offset: off,
	})
	if err != nil {
		return nil, 0, err
	}

	res := make([]OrderResponse, 0, len(rows))
	var total int64
	for _, r := range rows {
		total = r.TotalCount
		res = append(res, OrderResponse{
			ID:            r.ID.String(),
			OrderNumber:   r.OrderNumber,
			UserID:        r.UserID.String(),
			Status:        r.Status,
			PaymentMethod: r.PaymentMethod,
			PaymentStatus: r.PaymentStatus,
			TotalPrice:    helper.StringToDecimal(r.TotalPrice).InexactFloat64(),
			PlacedAt:      r.PlacedAt,
			Items:         []OrderItemResponse{},
		})
	}

	return res, total, nil
}

// owned loads an order and hides orders of other users behind not found.
func (s *service) owned(ctx context.Context, repo Repository, orderID, userID string) (dbgen.Order, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return dbgen.Order{}, ErrInvalidOrderID
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return dbgen.Order{}, ErrInvalidUserID
	}

	o, err := repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Order{}, ErrOrderNotFound
		}
		return dbgen.Order{}, err
	}
	if o.UserID != uid {
		return dbgen.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) Detail(ctx context.Context, orderID, userID string) (OrderResponse, error) {
	o, err := s.owned(ctx, s.repo, orderID, userID)
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := s.repo.GetItems(ctx, o.ID)
	if err != nil {
		return OrderResponse{}, err
	}

	return mapOrderToResponse(o, items), nil
}

func (s *service) Cancel(ctx context.Context, orderID, userID string) (OrderResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := s.owned(ctx, qtx, orderID, userID)
	if err != nil {
		return OrderResponse{}, err
	}
	if o.Status != StatusPending {
		return OrderResponse{}, ErrCannotCancel
	}

	updated, err := qtx.UpdateStatus(ctx, o.ID, StatusCancelled)
	if err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}

	s.logger.Info("order cancelled",
		zap.String("order_id", o.ID.String()),
		zap.String("user_id", userID),
	)
	return mapOrderToResponse(updated, nil), nil
}

func (s *service) UpdateStatusByAdmin(ctx context.Context, orderID string, nextStatus string) (OrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}
	nextStatus = strings.ToUpper(strings.TrimSpace(nextStatus))
	if _, ok := knownStatuses[nextStatus]; !ok {
		return OrderResponse{}, ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	o, err := qtx.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, ErrOrderNotFound
		}
		return OrderResponse{}, err
	}

	if !canTransition(o.Status, nextStatus) {
		return OrderResponse{}, ErrInvalidStatusTransition
	}

	updated, err := qtx.UpdateStatus(ctx, oid, nextStatus)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	return mapOrderToResponse(updated, nil), nil
}

func canTransition(from, to string) bool {
	for _, next := range adminTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func mapOrderToResponse(o dbgen.Order, items []dbgen.OrderItem) OrderResponse {
	res := OrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID.String(),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		SubtotalPrice: helper.StringToDecimal(o.SubtotalPrice).InexactFloat64(),
		DiscountPrice: helper.StringToDecimal(o.DiscountPrice).InexactFloat64(),
		ShippingPrice: helper.StringToDecimal(o.ShippingPrice).InexactFloat64(),
		TaxPrice:      helper.StringToDecimal(o.TaxPrice).InexactFloat64(),
		TotalPrice:    helper.StringToDecimal(o.TotalPrice).InexactFloat64(),
		Promocode:     helper.NullStringPtr(o.Promocode),
		Note:          helper.NullStringPtr(o.Note),
		Address:       o.AddressSnapshot,
		PlacedAt:      o.PlacedAt,
		Items:         make([]OrderItemResponse, 0, len(items)),
	}

	for _, item := range items {
		res.Items = append(res.Items, OrderItemResponse{
			ID:           item.ID.String(),
			ProductID:    item.ProductID.String(),
			NameSnapshot: item.NameSnapshot,
			UnitPrice:    helper.StringToDecimal(item.UnitPrice).InexactFloat64(),
			Quantity:     item.Quantity,
			Subtotal:     helper.StringToDecimal(item.TotalPrice).InexactFloat64(),
		})
	}
	return res
}
