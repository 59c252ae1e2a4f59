package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-storefront-api/internal/shared/database/dbgen"
	"go-storefront-api/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string) error
	Count(ctx context.Context, userID string) (int64, error)
	Detail(ctx context.Context, userID string) (CartDetailResponse, error)
	// Current returns the user's cart as committed in Postgres, skipping the
	// snapshot cache. Callers get their own copy.
	Current(ctx context.Context, userID string) (*Store, error)

	AddItem(ctx context.Context, userID string, req AddItemRequest) error
	// AddItemTx writes the item inside the caller's transaction. Call
	// Committed once tx has committed.
	AddItemTx(ctx context.Context, tx *sql.Tx, userID string, req AddItemRequest) error
	// Committed invalidates the cached cart and notifies the listener.
	Committed(ctx context.Context, userID string)
	UpdateQty(ctx context.Context, userID, productID string, req UpdateQtyRequest) error

	Increment(ctx context.Context, userID, productID string) error
	Decrement(ctx context.Context, userID, productID string) error

	DeleteItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

// ChangeListener is told about every committed cart mutation.
type ChangeListener interface {
	CartChanged(ctx context.Context, userID string) error
}

type Deps struct {
	DB       *sql.DB
	Repo     Repository
	Cache    SnapshotCache
	Listener ChangeListener
	Logger   *zap.Logger
}

type service struct {
	db       *sql.DB
	repo     Repository
	cache    SnapshotCache
	listener ChangeListener
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("cart repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:       deps.DB,
		repo:     deps.Repo,
		cache:    deps.Cache,
		listener: deps.Listener,
		validate: validator.New(),
		logger:   deps.Logger.Named("cart.service"),
	}
}

// ========================
// helpers
// ========================

func (s *service) parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, ErrInvalidUserID
	}
	return id, nil
}

func (s *service) parseProductID(productID string) (uuid.UUID, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return uuid.Nil, ErrInvalidProductID
	}
	return id, nil
}

func (s *service) getCartOnly(ctx context.Context, repo Repository, uid uuid.UUID) (uuid.UUID, error) {
	cart, err := repo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrCartNotFound
		}
		return uuid.Nil, err
	}
	return cart.ID, nil
}

func (s *service) getOrCreateCart(ctx context.Context, repo Repository, uid uuid.UUID) (uuid.UUID, error) {
	cart, err := repo.GetByUserID(ctx, uid)
	if err == nil {
		return cart.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, err
	}

	cart, err = repo.CreateCart(ctx, uid)
	if err != nil {
		return uuid.Nil, err
	}
	return cart.ID, nil
}

func itemFromRow(r dbgen.CartItem) (Item, error) {
	price, err := decimal.NewFromString(r.UnitPrice)
	if err != nil {
		return Item{}, fmt.Errorf("cart item %s: bad unit price %q: %w", r.ID, r.UnitPrice, err)
	}
	return Item{
		ID:             r.ID.String(),
		ProductID:      r.ProductID,
		ProductName:    r.ProductName,
		ImageURL:       r.ImageUrl.String,
		UnitPrice:      price,
		CompareAtPrice: helper.NullStringToDecimal(r.CompareAtPrice),
		Quantity:       r.Quantity,
	}, nil
}

// load serves the snapshot and rebuilds it from Postgres on a miss. The
// rebuild is only written back if no mutation committed since the
// generation was read.
func (s *service) load(ctx context.Context, uid uuid.UUID) (*Store, error) {
	if s.cache == nil {
		return s.readDB(ctx, uid)
	}

	userID := uid.String()

	store, err := s.cache.Get(ctx, userID)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.logger.Warn("cart snapshot read failed", zap.String("user_id", userID), zap.Error(err))
	}

	gen, genErr := s.cache.Generation(ctx, userID)
	if genErr != nil {
		s.logger.Warn("cart snapshot generation read failed", zap.String("user_id", userID), zap.Error(genErr))
	}

	store, err = s.readDB(ctx, uid)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		err := s.cache.Set(ctx, userID, gen, store)
		switch {
		case errors.Is(err, ErrSnapshotConflict):
			s.logger.Debug("cart changed during rebuild, snapshot not written", zap.String("user_id", userID))
		case err != nil:
			s.logger.Warn("cart snapshot write failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	return store, nil
}

func (s *service) readDB(ctx context.Context, uid uuid.UUID) (*Store, error) {
	rows, err := s.repo.GetDetail(ctx, uid)
	if err != nil {
		return nil, err
	}

	store := NewStore()
	for _, r := range rows {
		it, err := itemFromRow(r)
		if err != nil {
			return nil, err
		}
		if _, err := store.Add(it); err != nil {
			return nil, fmt.Errorf("cart item %s: %w", r.ID, err)
		}
	}
	return store, nil
}

// afterCommit drops the snapshot and notifies the listener. Both are
// best-effort: Postgres already holds the truth.
func (s *service) afterCommit(ctx context.Context, uid uuid.UUID) {
	userID := uid.String()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			s.logger.Error("cart snapshot invalidate failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	if s.listener != nil {
		if err := s.listener.CartChanged(ctx, userID); err != nil {
			s.logger.Warn("cart change listener failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
}

// ========================
// operations
// ========================

func (s *service) Create(ctx context.Context, userID string) error {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}
	_, err = s.getOrCreateCart(ctx, s.repo, uid)
	return err
}

func (s *service) Count(ctx context.Context, userID string) (int64, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return 0, err
	}

	store, err := s.load(ctx, uid)
	if err != nil {
		return 0, err
	}
	return store.Summary().TotalItems, nil
}

func (s *service) Detail(ctx context.Context, userID string) (CartDetailResponse, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	store, err := s.load(ctx, uid)
	if err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(store), nil
}

// Current always reads Postgres; checkout prices orders from it.
func (s *service) Current(ctx context.Context, userID string) (*Store, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.readDB(ctx, uid)
}

func (s *service) AddItem(ctx context.Context, userID string, req AddItemRequest) error {
	uid, pid, err := s.checkAddItem(userID, req)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.upsertItem(ctx, s.repo.WithTx(tx), uid, pid, req); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.afterCommit(ctx, uid)
	return nil
}

func (s *service) AddItemTx(ctx context.Context, tx *sql.Tx, userID string, req AddItemRequest) error {
	uid, pid, err := s.checkAddItem(userID, req)
	if err != nil {
		return err
	}
	return s.upsertItem(ctx, s.repo.WithTx(tx), uid, pid, req)
}

func (s *service) checkAddItem(userID string, req AddItemRequest) (uuid.UUID, uuid.UUID, error) {
	if err := s.validate.Struct(req); err != nil {
		return uuid.Nil, uuid.Nil, MapValidationError(err)
	}
	if req.Price == nil || req.Price.IsNegative() ||
		(req.CompareAtPrice != nil && req.CompareAtPrice.IsNegative()) {
		return uuid.Nil, uuid.Nil, ErrInvalidPrice
	}

	uid, err := s.parseUserID(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	pid, err := s.parseProductID(req.ProductID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return uid, pid, nil
}

// upsertItem adds to an existing line; the quantity is capped at MaxQuantity.
func (s *service) upsertItem(ctx context.Context, repo Repository, uid, pid uuid.UUID, req AddItemRequest) error {
	cartID, err := s.getOrCreateCart(ctx, repo, uid)
	if err != nil {
		return err
	}

	_, err = repo.UpsertItem(ctx, dbgen.UpsertCartItemParams{
		CartID:         cartID,
		ProductID:      pid,
		ProductName:    req.ProductName,
		ImageUrl:       helper.RawStringToNull(req.ImageURL),
		UnitPrice:      req.Price.StringFixed(2),
		CompareAtPrice: helper.DecimalPtrToNullString(req.CompareAtPrice),
		Quantity:       req.Qty,
	})
	return err
}

func (s *service) Committed(ctx context.Context, userID string) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return
	}
	s.afterCommit(ctx, uid)
}

func (s *service) UpdateQty(ctx context.Context, userID, productID string, req UpdateQtyRequest) error {
	if req.Qty < 1 {
		return ErrInvalidQty
	}
	if err := s.validate.Struct(req); err != nil {
		return MapValidationError(err)
	}

	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}

	pid, err := s.parseProductID(productID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	cartID, err := s.getCartOnly(ctx, repo, uid)
	if err != nil {
		return err
	}

	_, err = repo.UpdateQty(ctx, dbgen.UpdateCartItemQtyParams{
		CartID:    cartID,
		ProductID: pid,
		Quantity:  req.Qty,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCartItemNotFound
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.afterCommit(ctx, uid)
	return nil
}

func (s *service) Increment(ctx context.Context, userID, productID string) error {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}

	pid, err := s.parseProductID(productID)
	if err != nil {
		return err
	}

	cartID, err := s.getCartOnly(ctx, s.repo, uid)
	if err != nil {
		return err
	}

	_, err = s.repo.IncrementQty(ctx, cartID, pid)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCartItemNotFound
	}
	if err != nil {
		return err
	}

	s.afterCommit(ctx, uid)
	return nil
}

// Decrement at quantity 1 removes the line.
func (s *service) Decrement(ctx context.Context, userID, productID string) error {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}

	pid, err := s.parseProductID(productID)
	if err != nil {
		return err
	}

	cartID, err := s.getCartOnly(ctx, s.repo, uid)
	if err != nil {
		return err
	}

	_, err = s.repo.DecrementQty(ctx, cartID, pid)
	if errors.Is(err, sql.ErrNoRows) {
		affected, delErr := s.repo.DeleteItem(ctx, cartID, pid)
		if delErr != nil {
			return delErr
		}
		if affected == 0 {
			return ErrCartItemNotFound
		}
	} else if err != nil {
		return err
	}

	s.afterCommit(ctx, uid)
	return nil
}

func (s *service) DeleteItem(ctx context.Context, userID, productID string) error {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}

	pid, err := s.parseProductID(productID)
	if err != nil {
		return err
	}

	cartID, err := s.getCartOnly(ctx, s.repo, uid)
	if err != nil {
		return err
	}

	affected, err := s.repo.DeleteItem(ctx, cartID, pid)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}

	s.afterCommit(ctx, uid)
	return nil
}

// Clear empties the cart. A user without a cart is already clear.
func (s *service) Clear(ctx context.Context, userID string) error {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	cartID, err := s.getCartOnly(ctx, repo, uid)
	if errors.Is(err, ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := repo.DeleteAllItems(ctx, cartID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.afterCommit(ctx, uid)
	return nil
}
