package wishlist

import (
	"context"
	"database/sql"
	"errors"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/shared/database/dbgen"
	"go-storefront-api/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID, productID string, req AddItemRequest) (WishlistItemResponse, error)
	List(ctx context.Context, userID string) (WishlistResponse, error)
	Delete(ctx context.Context, userID, productID string) error
	// MoveToCart adds the saved snapshot to the cart with quantity 1 and
	// drops it from the wishlist.
	MoveToCart(ctx context.Context, userID, productID string) error
}

type Deps struct {
	DB     *sql.DB
	Repo   Repository
	Carts  cart.Service
	Logger *zap.Logger
}

type service struct {
	db       *sql.DB
	repo     Repository
	carts    cart.Service
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("wishlist repository cannot be nil")
	}
	if deps.Carts == nil {
		panic("cart service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:       deps.DB,
		repo:     deps.Repo,
		carts:    deps.Carts,
		validate: validator.New(),
		logger:   deps.Logger.Named("wishlist.service"),
	}
}

func parseIDs(userID, productID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidUserID
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidProductID
	}
	return uid, pid, nil
}

func (s *service) Create(ctx context.Context, userID, productID string, req AddItemRequest) (WishlistItemResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return WishlistItemResponse{}, mapValidationError(err)
	}
	if req.Price == nil || req.Price.IsNegative() {
		return WishlistItemResponse{}, ErrInvalidPrice
	}

	uid, pid, err := parseIDs(userID, productID)
	if err != nil {
		return WishlistItemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WishlistItemResponse{}, ErrWishlistFailed
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	wishlist, err := qtx.GetOrCreateWishlist(ctx, uid)
	if err != nil {
		s.logger.Error("get or create wishlist failed", zap.String("user_id", userID), zap.Error(err))
		return WishlistItemResponse{}, ErrWishlistFailed
	}

	exists, err := qtx.CheckItemExists(ctx, wishlist.ID, pid)
	if err != nil {
		return WishlistItemResponse{}, ErrWishlistFailed
	}
	if exists {
		return WishlistItemResponse{}, ErrItemAlreadyExists
	}

	item, err := qtx.AddItem(ctx, dbgen.AddWishlistItemParams{
		WishlistID:  wishlist.ID,
		ProductID:   pid,
		ProductName: req.ProductName,
		UnitPrice:   helper.DecimalToMoney(*req.Price),
		ImageUrl:    helper.RawStringToNull(req.ImageURL),
	})
	if err != nil {
		s.logger.Error("add wishlist item failed", zap.String("user_id", userID), zap.Error(err))
		return WishlistItemResponse{}, ErrWishlistFailed
	}

	if err := tx.Commit(); err != nil {
		return WishlistItemResponse{}, ErrWishlistFailed
	}

	return mapItem(item), nil
}

func (s *service) List(ctx context.Context, userID string) (WishlistResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return WishlistResponse{}, ErrInvalidUserID
	}

	wishlist, err := s.repo.GetWishlistByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WishlistResponse{
				UserID: userID,
				Items:  []WishlistItemResponse{},
			}, nil
		}
		return WishlistResponse{}, ErrWishlistFailed
	}

	items, err := s.repo.GetItems(ctx, wishlist.ID)
	if err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}

	res := make([]WishlistItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, mapItem(item))
	}

	return WishlistResponse{
		ID:        wishlist.ID.String(),
		UserID:    wishlist.UserID.String(),
		Items:     res,
		ItemCount: len(res),
		CreatedAt: wishlist.CreatedAt,
		UpdatedAt: wishlist.UpdatedAt,
	}, nil
}

func (s *service) Delete(ctx context.Context, userID, productID string) error {
	uid, pid, err := parseIDs(userID, productID)
	if err != nil {
		return err
	}

	wishlist, err := s.repo.GetWishlistByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return ErrWishlistFailed
	}

	exists, err := s.repo.CheckItemExists(ctx, wishlist.ID, pid)
	if err != nil {
		return ErrWishlistFailed
	}
	if !exists {
		return ErrItemNotFound
	}

	if err := s.repo.DeleteItem(ctx, wishlist.ID, pid); err != nil {
		return ErrWishlistFailed
	}
	return nil
}

func (s *service) MoveToCart(ctx context.Context, userID, productID string) error {
	uid, pid, err := parseIDs(userID, productID)
	if err != nil {
		return err
	}

	wishlist, err := s.repo.GetWishlistByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return ErrWishlistFailed
	}

	// the wishlist delete and the cart upsert commit together
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrWishlistFailed
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item, err := qtx.GetItem(ctx, wishlist.ID, pid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return ErrWishlistFailed
	}

	if err := qtx.DeleteItem(ctx, wishlist.ID, pid); err != nil {
		return ErrWishlistFailed
	}

	price := helper.StringToDecimal(item.UnitPrice)
	if err := s.carts.AddItemTx(ctx, tx, userID, cart.AddItemRequest{
		ProductID:   item.ProductID.String(),
		ProductName: item.ProductName,
		ImageURL:    item.ImageUrl.String,
		Price:       &price,
		Qty:         1,
	}); err != nil {
		s.logger.Warn("move to cart rejected by cart",
			zap.String("user_id", userID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("move to cart commit failed",
			zap.String("user_id", userID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return ErrWishlistFailed
	}

	s.carts.Committed(ctx, userID)
	return nil
}

func mapItem(item dbgen.WishlistItem) WishlistItemResponse {
	return WishlistItemResponse{
		ID:          item.ID.String(),
		ProductID:   item.ProductID.String(),
		ProductName: item.ProductName,
		Price:       helper.StringToDecimal(item.UnitPrice).InexactFloat64(),
		ImageURL:    helper.NullStringPtr(item.ImageUrl),
		AddedAt:     item.CreatedAt,
	}
}
