package address_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-storefront-api/internal/address"
	mockAddress "go-storefront-api/internal/mock/address"
	"go-storefront-api/internal/shared/database/dbgen"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validCreateRequest(userID uuid.UUID) address.CreateAddressRequest {
	return address.CreateAddressRequest{
		UserID:     userID.String(),
		Name:       "Jane Doe",
		Phone:      "+15550100",
		Line1:      "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Type:       "home",
	}
}

func TestAddressService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockAddress.NewMockRepository(ctrl)
	svc := address.NewService(nil, repo)
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return([]dbgen.Address{
				{ID: uuid.New(), Name: "Home", IsDefault: true, Line2: sql.NullString{String: "Apt 2", Valid: true}},
			}, nil)

		res, err := svc.List(context.Background(), userID.String())

		require.NoError(t, err)
		require.Len(t, res.Addresses, 1)
		assert.Equal(t, "Home", res.Addresses[0].Name)
		assert.Equal(t, "Apt 2", *res.Addresses[0].Line2)
		assert.Nil(t, res.Addresses[0].Landmark)
	})

	t.Run("Empty_IsNotNil", func(t *testing.T) {
		repo.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)

		res, err := svc.List(context.Background(), userID.String())

		require.NoError(t, err)
		assert.NotNil(t, res.Addresses)
		assert.Empty(t, res.Addresses)
	})

	t.Run("Failed", func(t *testing.T) {
		repo.EXPECT().
			ListByUser(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.List(context.Background(), uuid.New().String())

		assert.Error(t, err)
	})
}

func TestAddressService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockAddress.NewMockRepository(ctrl)
	svc := address.NewService(nil, repo)
	addrID := uuid.New()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().
			GetByID(gomock.Any(), addrID, userID).
			Return(dbgen.Address{ID: addrID, Name: "Home", State: "IL"}, nil)

		res, err := svc.GetByID(context.Background(), addrID.String(), userID.String())

		assert.NoError(t, err)
		assert.Equal(t, "IL", res.State)
		assert.Equal(t, addrID.String(), res.ID)
	})

	t.Run("Failed_NotFound", func(t *testing.T) {
		repo.EXPECT().
			GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dbgen.Address{}, sql.ErrNoRows)

		_, err := svc.GetByID(context.Background(), uuid.New().String(), userID.String())

		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})

	t.Run("Failed_InvalidUUID", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "invalid-uuid", userID.String())
		assert.ErrorIs(t, err, address.ErrInvalidAddressID)
	})
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (address.Service, *mockAddress.MockRepository, sqlmock.Sqlmock) {
		ctrl := gomock.NewController(t)
		repo := mockAddress.NewMockRepository(ctrl)
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		return address.NewService(db, repo), repo, mock
	}

	t.Run("FirstAddress_BecomesDefault", func(t *testing.T) {
		svc, repo, mock := setup(t)
		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)
		repo.EXPECT().UnsetDefaultByUser(ctx, userID).Return(nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateAddressParams) (dbgen.Address, error) {
				assert.True(t, arg.IsDefault)
				assert.False(t, arg.Line2.Valid)
				return dbgen.Address{ID: uuid.New(), Name: arg.Name, IsDefault: true}, nil
			})

		res, err := svc.Create(ctx, validCreateRequest(userID))

		require.NoError(t, err)
		assert.True(t, res.IsDefault)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SecondAddress_KeepsExistingDefault", func(t *testing.T) {
		svc, repo, mock := setup(t)
		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().CountByUser(ctx, userID).Return(int64(2), nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateAddressParams) (dbgen.Address, error) {
				assert.False(t, arg.IsDefault)
				return dbgen.Address{ID: uuid.New()}, nil
			})

		_, err := svc.Create(ctx, validCreateRequest(userID))
		require.NoError(t, err)
	})

	t.Run("ExplicitDefault_UnsetsPrevious", func(t *testing.T) {
		svc, repo, mock := setup(t)
		userID := uuid.New()
		req := validCreateRequest(userID)
		req.IsDefault = true

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().CountByUser(ctx, userID).Return(int64(3), nil)
		unset := repo.EXPECT().UnsetDefaultByUser(ctx, userID).Return(nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(dbgen.Address{ID: uuid.New(), IsDefault: true}, nil).After(unset)

		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	})

	t.Run("InvalidType", func(t *testing.T) {
		svc, _, mock := setup(t)
		req := validCreateRequest(uuid.New())
		req.Type = "castle"

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Type")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateFails_RollsBack", func(t *testing.T) {
		svc, repo, mock := setup(t)
		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().CountByUser(ctx, userID).Return(int64(1), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(dbgen.Address{}, errors.New("db error"))

		_, err := svc.Create(ctx, validCreateRequest(userID))
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddressService_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mockAddress.NewMockRepository(ctrl)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := address.NewService(db, repo)

	t.Run("Default_PromotesNext", func(t *testing.T) {
		userID, addrID, nextID := uuid.New(), uuid.New(), uuid.New()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByID(ctx, addrID, userID).Return(dbgen.Address{ID: addrID, IsDefault: true}, nil)
		repo.EXPECT().SoftDelete(ctx, addrID, userID).Return(int64(1), nil)
		repo.EXPECT().ListByUser(ctx, userID).Return([]dbgen.Address{{ID: nextID}}, nil)
		repo.EXPECT().SetDefault(ctx, nextID, userID).Return(dbgen.Address{ID: nextID, IsDefault: true}, nil)

		assert.NoError(t, svc.Delete(ctx, addrID.String(), userID.String()))
	})

	t.Run("NotFound", func(t *testing.T) {
		userID, addrID := uuid.New(), uuid.New()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByID(ctx, addrID, userID).Return(dbgen.Address{}, sql.ErrNoRows)

		err := svc.Delete(ctx, addrID.String(), userID.String())
		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressService_SetDefault(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mockAddress.NewMockRepository(ctrl)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := address.NewService(db, repo)
	userID, addrID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectCommit()

	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().GetByID(ctx, addrID, userID).Return(dbgen.Address{ID: addrID}, nil)
	unset := repo.EXPECT().UnsetDefaultByUser(ctx, userID).Return(nil)
	repo.EXPECT().SetDefault(ctx, addrID, userID).Return(dbgen.Address{ID: addrID, IsDefault: true}, nil).After(unset)

	res, err := svc.SetDefault(ctx, addrID.String(), userID.String())
	require.NoError(t, err)
	assert.True(t, res.IsDefault)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockAddress.NewMockRepository(ctrl)
	svc := address.NewService(nil, repo)
	userID, addrID := uuid.New(), uuid.New()

	req := address.UpdateAddressRequest{
		Name: "Office", Phone: "1", Line1: "2 Side St", City: "X", State: "NY", PostalCode: "10001", Type: "work",
	}

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(dbgen.Address{}, sql.ErrNoRows)

	_, err := svc.Update(context.Background(), addrID.String(), userID.String(), req)
	assert.ErrorIs(t, err, address.ErrAddressNotFound)
}
