package address

import (
	"context"
	"database/sql"
	"errors"

	"go-storefront-api/internal/shared/database/dbgen"
	"go-storefront-api/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=address_service.go -destination=../mock/address/address_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID string) (ListAddressesResponse, error)
	GetByID(ctx context.Context, id, userID string) (AddressResponse, error)
	Create(ctx context.Context, req CreateAddressRequest) (AddressResponse, error)
	Update(ctx context.Context, id, userID string, req UpdateAddressRequest) (AddressResponse, error)
	Delete(ctx context.Context, id, userID string) error
	SetDefault(ctx context.Context, id, userID string) (AddressResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		db:       db,
		repo:     repo,
		validate: validator.New(),
		logger:   l.Named("address.service"),
	}
}

func parseIDs(id, userID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidUserID
	}
	aid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidAddressID
	}
	return aid, uid, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAddressNotFound
	}
	return err
}

func (s *service) List(ctx context.Context, userID string) (ListAddressesResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ListAddressesResponse{}, ErrInvalidUserID
	}

	rows, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		return ListAddressesResponse{}, err
	}

	out := ListAddressesResponse{Addresses: make([]AddressResponse, 0, len(rows))}
	for _, a := range rows {
		out.Addresses = append(out.Addresses, mapAddressToResponse(a))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (AddressResponse, error) {
	aid, uid, err := parseIDs(id, userID)
	if err != nil {
		return AddressResponse{}, err
	}

	a, err := s.repo.GetByID(ctx, aid, uid)
	if err != nil {
		return AddressResponse{}, notFound(err)
	}
	return mapAddressToResponse(a), nil
}

// Create makes the address the default when asked to, or when it is the
// user's first one. The previous default is unset in the same transaction.
func (s *service) Create(ctx context.Context, req CreateAddressRequest) (AddressResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AddressResponse{}, mapValidationError(err)
	}

	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return AddressResponse{}, ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AddressResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	count, err := repo.CountByUser(ctx, uid)
	if err != nil {
		return AddressResponse{}, err
	}

	isDefault := req.IsDefault || count == 0
	if isDefault {
		if err := repo.UnsetDefaultByUser(ctx, uid); err != nil {
			return AddressResponse{}, err
		}
	}

	a, err := repo.Create(ctx, dbgen.CreateAddressParams{
		UserID:     uid,
		Name:       req.Name,
		Phone:      req.Phone,
		Line1:      req.Line1,
		Line2:      helper.StringToNull(req.Line2),
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Landmark:   helper.StringToNull(req.Landmark),
		Type:       req.Type,
		IsDefault:  isDefault,
	})
	if err != nil {
		return AddressResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AddressResponse{}, err
	}

	return mapAddressToResponse(a), nil
}

func (s *service) Update(ctx context.Context, id, userID string, req UpdateAddressRequest) (AddressResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AddressResponse{}, mapValidationError(err)
	}

	aid, uid, err := parseIDs(id, userID)
	if err != nil {
		return AddressResponse{}, err
	}

	a, err := s.repo.Update(ctx, dbgen.UpdateAddressParams{
		ID:         aid,
		UserID:     uid,
		Name:       req.Name,
		Phone:      req.Phone,
		Line1:      req.Line1,
		Line2:      helper.StringToNull(req.Line2),
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Landmark:   helper.StringToNull(req.Landmark),
		Type:       req.Type,
	})
	if err != nil {
		return AddressResponse{}, notFound(err)
	}
	return mapAddressToResponse(a), nil
}

// Delete soft-deletes the address. When it was the default, the next
// remaining address is promoted.
func (s *service) Delete(ctx context.Context, id, userID string) error {
	aid, uid, err := parseIDs(id, userID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	existing, err := repo.GetByID(ctx, aid, uid)
	if err != nil {
		return notFound(err)
	}

	affected, err := repo.SoftDelete(ctx, aid, uid)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}

	if existing.IsDefault {
		remaining, err := repo.ListByUser(ctx, uid)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			if _, err := repo.SetDefault(ctx, remaining[0].ID, uid); err != nil {
				return err
			}
			s.logger.Debug("default address promoted",
				zap.String("user_id", userID),
				zap.String("address_id", remaining[0].ID.String()),
			)
		}
	}

	return tx.Commit()
}

func (s *service) SetDefault(ctx context.Context, id, userID string) (AddressResponse, error) {
	aid, uid, err := parseIDs(id, userID)
	if err != nil {
		return AddressResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AddressResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	if _, err := repo.GetByID(ctx, aid, uid); err != nil {
		return AddressResponse{}, notFound(err)
	}
	if err := repo.UnsetDefaultByUser(ctx, uid); err != nil {
		return AddressResponse{}, err
	}

	a, err := repo.SetDefault(ctx, aid, uid)
	if err != nil {
		return AddressResponse{}, notFound(err)
	}

	if err := tx.Commit(); err != nil {
		return AddressResponse{}, err
	}
	return mapAddressToResponse(a), nil
}

// ==================== MAPPERS ====================

func mapAddressToResponse(a dbgen.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID.String(),
		Name:       a.Name,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      helper.NullStringPtr(a.Line2),
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Landmark:   helper.NullStringPtr(a.Landmark),
		Type:       a.Type,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
	}
}
