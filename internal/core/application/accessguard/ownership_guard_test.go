package accessguard_test

import (
	"context"
	"errors"
	"testing"

	"dinehub/internal/core/application/accessguard"
	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOwnershipReader struct{ mock.Mock }

func (m *MockOwnershipReader) IsOwnerOfRestaurant(
	ctx context.Context,
	restaurantID, ownerID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, restaurantID, ownerID)
	return args.Bool(0), args.Error(1)
}

func TestOwnershipGuard_RequireOwnership_Owner(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	userID := kernel.NewUUID()

	reader := new(MockOwnershipReader)
	reader.On("IsOwnerOfRestaurant", ctx, restaurantID, userID).Return(true, nil).Once()

	guard := accessguard.NewOwnershipGuard(reader)
	err := guard.RequireOwnership(ctx, restaurantID, userID)

	require.NoError(t, err)
	reader.AssertExpectations(t)
}

func TestOwnershipGuard_RequireOwnership_NotOwner(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	userID := kernel.NewUUID()

	reader := new(MockOwnershipReader)
	reader.On("IsOwnerOfRestaurant", ctx, restaurantID, userID).Return(false, nil).Once()

	guard := accessguard.NewOwnershipGuard(reader)
	err := guard.RequireOwnership(ctx, restaurantID, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestOwnershipGuard_RequireOwnership_ReaderError(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	userID := kernel.NewUUID()

	reader := new(MockOwnershipReader)
	reader.On("IsOwnerOfRestaurant", ctx, restaurantID, userID).
		Return(false, errors.New("connection refused")).Once()

	guard := accessguard.NewOwnershipGuard(reader)
	err := guard.RequireOwnership(ctx, restaurantID, userID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestOwnershipGuard_IsOwnerOfRestaurant(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	userID := kernel.NewUUID()

	reader := new(MockOwnershipReader)
	reader.On("IsOwnerOfRestaurant", ctx, restaurantID, userID).Return(true, nil).Once()

	guard := accessguard.NewOwnershipGuard(reader)
	isOwner, err := guard.IsOwnerOfRestaurant(ctx, restaurantID, userID)

	require.NoError(t, err)
	assert.True(t, isOwner)
}
