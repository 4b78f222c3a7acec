package dish_test

import (
	"testing"

	"dinehub/internal/core/domain/model/dish"
	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDish_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	aggregate, err := dish.NewDish(id, restaurantID, "Margherita", "tomato and mozzarella", 1250)

	require.NoError(t, err)
	assert.True(t, aggregate.ID().IsEqual(id))
	assert.True(t, aggregate.RestaurantID().IsEqual(restaurantID))
	assert.Equal(t, "Margherita", aggregate.Name())
	assert.Equal(t, 1250, aggregate.PriceCents())
	assert.NoError(t, aggregate.Validate())
}

func TestNewDish_FreeDishAllowed(t *testing.T) {
	_, err := dish.NewDish(kernel.NewUUID(), kernel.NewUUID(), "Tap water", "", 0)

	require.NoError(t, err)
}

func TestNewDish_InvalidInput(t *testing.T) {
	testCases := []struct {
		name       string
		dishName   string
		priceCents int
	}{
		{name: "empty name", dishName: "", priceCents: 100},
		{name: "negative price", dishName: "Margherita", priceCents: -1},
		{name: "price above maximum", dishName: "Margherita", priceCents: 10_000_001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dish.NewDish(kernel.NewUUID(), kernel.NewUUID(), tc.dishName, "", tc.priceCents)

			require.Error(t, err)
		})
	}
}

func TestNewDish_PriceOutOfRangeError(t *testing.T) {
	_, err := dish.NewDish(kernel.NewUUID(), kernel.NewUUID(), "Margherita", "", -5)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestDish_Snapshot(t *testing.T) {
	id := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	aggregate, err := dish.NewDish(id, restaurantID, "Margherita", "", 1250)
	require.NoError(t, err)

	snapshot, err := aggregate.Snapshot()

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"`+id.String()+`","restaurant_id":"`+restaurantID.String()+`","name":"Margherita","price_cents":1250}`,
		string(snapshot))
}

func TestDish_Validate_NotConstructed(t *testing.T) {
	aggregate := &dish.Dish{}

	err := aggregate.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, dish.ErrDishIsNotConstructed)
}
