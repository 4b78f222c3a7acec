package dish

import (
	"encoding/json"
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/errs"
	"dinehub/internal/pkg/guard"
)

// StoreName is the live table dishes are persisted in; it is recorded
// as original_table on archive snapshots taken at deletion.
const StoreName = "dishes"

const (
	minPriceCents = 0
	maxPriceCents = 10_000_000
)

// Domain errors for dish operations.
var (
	// ErrNameIsRequired is returned when attempting to create a dish without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDishIsNotConstructed is returned when using an improperly initialized Dish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish")
)

// Dish is a menu item of a restaurant. Like Restaurant it is a deletable
// aggregate removed through the archive-first protocol.
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	priceCents   int

	guard guard.ConstructorGuard
}

// snapshot is the serialized form captured into archive records.
type snapshot struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	PriceCents   int    `json:"price_cents"`
}

// NewDish creates a dish on a restaurant's menu.
// Name is required and the price must lie within the supported range.
func NewDish(id, restaurantID kernel.UUID, name, description string, priceCents int) (*Dish, error) {
	d := &Dish{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setRestaurantID(restaurantID),
		d.setName(name),
		d.setPriceCents(priceCents),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDish reconstructs a dish from persistent storage.
func RestoreDish(id, restaurantID kernel.UUID, name, description string, priceCents int) (*Dish, error) {
	return NewDish(id, restaurantID, name, description, priceCents)
}

// Validate ensures the dish was created through a constructor.
func (d *Dish) Validate() error {
	return d.guard.Validate(ErrDishIsNotConstructed)
}

// ID returns the dish identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// RestaurantID returns the restaurant the dish belongs to.
func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the free-form description.
func (d *Dish) Description() string {
	return d.description
}

// PriceCents returns the price in the smallest currency unit.
func (d *Dish) PriceCents() int {
	return d.priceCents
}

// Snapshot serializes the dish's full current state for archival.
func (d *Dish) Snapshot() (json.RawMessage, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return json.Marshal(snapshot{
		ID:           d.id.String(),
		RestaurantID: d.restaurantID.String(),
		Name:         d.name,
		Description:  d.description,
		PriceCents:   d.priceCents,
	})
}

// IsEqual compares two dishes by identifier.
func (d *Dish) IsEqual(other *Dish) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Dish) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.restaurantID = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

func (d *Dish) setPriceCents(price int) error {
	if price < minPriceCents || price > maxPriceCents {
		return errs.NewValueIsOutOfRangeError("priceCents", price, minPriceCents, maxPriceCents)
	}

	d.priceCents = price
	return nil
}
