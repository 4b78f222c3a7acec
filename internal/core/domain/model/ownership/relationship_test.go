package ownership_test

import (
	"testing"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRelationship_ValidInput(t *testing.T) {
	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	rel, err := ownership.NewRelationship(restaurantID, ownerID, ownership.RoleOwner, true, actorID)

	require.NoError(t, err)
	assert.True(t, rel.RestaurantID().IsEqual(restaurantID))
	assert.True(t, rel.OwnerID().IsEqual(ownerID))
	assert.Equal(t, ownership.RoleOwner, rel.Role())
	assert.True(t, rel.IsPrimary())
	assert.True(t, rel.CreatedBy().IsEqual(actorID))
	assert.True(t, rel.UpdatedBy().IsEqual(actorID))
	assert.False(t, rel.CreatedAt().IsZero())
	assert.Equal(t, rel.CreatedAt(), rel.UpdatedAt())
	assert.NoError(t, rel.Validate())
}

func TestNewRelationship_InvalidInput(t *testing.T) {
	testCases := []struct {
		name         string
		restaurantID kernel.UUID
		ownerID      kernel.UUID
		role         ownership.Role
		actorID      kernel.UUID
	}{
		{
			name:    "missing restaurant id",
			ownerID: kernel.NewUUID(),
			role:    ownership.RoleOwner,
			actorID: kernel.NewUUID(),
		},
		{
			name:         "missing owner id",
			restaurantID: kernel.NewUUID(),
			role:         ownership.RoleOwner,
			actorID:      kernel.NewUUID(),
		},
		{
			name:         "unknown role",
			restaurantID: kernel.NewUUID(),
			ownerID:      kernel.NewUUID(),
			role:         ownership.UnknownRole,
			actorID:      kernel.NewUUID(),
		},
		{
			name:         "missing actor id",
			restaurantID: kernel.NewUUID(),
			ownerID:      kernel.NewUUID(),
			role:         ownership.RoleOwner,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ownership.NewRelationship(tc.restaurantID, tc.ownerID, tc.role, false, tc.actorID)

			require.Error(t, err)
		})
	}
}

func TestRelationship_ChangeRole(t *testing.T) {
	actorID := kernel.NewUUID()
	rel, err := ownership.NewRelationship(kernel.NewUUID(), kernel.NewUUID(), ownership.RoleStaff, true, actorID)
	require.NoError(t, err)

	editorID := kernel.NewUUID()
	err = rel.ChangeRole(ownership.RoleManager, editorID)

	require.NoError(t, err)
	assert.Equal(t, ownership.RoleManager, rel.Role())
	assert.True(t, rel.IsPrimary(), "role change must not move the primary flag")
	assert.True(t, rel.UpdatedBy().IsEqual(editorID))
	assert.True(t, rel.CreatedBy().IsEqual(actorID))
}

func TestRelationship_ChangeRole_InvalidRole(t *testing.T) {
	rel, err := ownership.NewRelationship(
		kernel.NewUUID(), kernel.NewUUID(), ownership.RoleStaff, false, kernel.NewUUID())
	require.NoError(t, err)

	err = rel.ChangeRole(ownership.UnknownRole, kernel.NewUUID())

	require.Error(t, err)
	assert.Equal(t, ownership.RoleStaff, rel.Role())
}

func TestRelationship_MarkAndClearPrimary(t *testing.T) {
	rel, err := ownership.NewRelationship(
		kernel.NewUUID(), kernel.NewUUID(), ownership.RoleOwner, false, kernel.NewUUID())
	require.NoError(t, err)

	actorID := kernel.NewUUID()

	require.NoError(t, rel.MarkPrimary(actorID))
	assert.True(t, rel.IsPrimary())

	require.NoError(t, rel.ClearPrimary(actorID))
	assert.False(t, rel.IsPrimary())
	assert.True(t, rel.UpdatedBy().IsEqual(actorID))
}

func TestRelationship_IsEqual_ByPair(t *testing.T) {
	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	first, err := ownership.NewRelationship(restaurantID, ownerID, ownership.RoleOwner, true, kernel.NewUUID())
	require.NoError(t, err)
	second, err := ownership.NewRelationship(restaurantID, ownerID, ownership.RoleStaff, false, kernel.NewUUID())
	require.NoError(t, err)
	other, err := ownership.NewRelationship(restaurantID, kernel.NewUUID(), ownership.RoleOwner, false, kernel.NewUUID())
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(other))
	assert.False(t, first.IsEqual(nil))
}

func TestRelationship_Validate_NotConstructed(t *testing.T) {
	rel := &ownership.Relationship{}

	err := rel.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ownership.ErrRelationshipIsNotConstructed)
}
