package restaurant

import (
	"encoding/json"
	"errors"

	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/pkg/errs"
	"dinehub/internal/pkg/guard"
)

// StoreName is the live table restaurants are persisted in; it is recorded
// as original_table on archive snapshots taken at deletion.
const StoreName = "restaurants"

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when attempting to create a restaurant without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New(
		"Restaurant must be created via NewRestaurant or RestoreRestaurant")
)

// Restaurant is a business listed in the directory. It is a deletable
// aggregate: removing it goes through the archive-first protocol, which
// snapshots its full state before the live row disappears.
//
// Ownership semantics do not live here; they are modeled by the ownership
// package as relationships keyed on the restaurant's identifier.
type Restaurant struct {
	id          kernel.UUID
	name        string
	address     string
	description string

	guard guard.ConstructorGuard
}

// snapshot is the serialized form captured into archive records.
type snapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
}

// NewRestaurant creates a restaurant listing.
// Name and address are required; description is free-form and optional.
func NewRestaurant(id kernel.UUID, name, address, description string) (*Restaurant, error) {
	r := &Restaurant{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistent storage.
func RestoreRestaurant(id kernel.UUID, name, address, description string) (*Restaurant, error) {
	return NewRestaurant(id, name, address, description)
}

// Validate ensures the restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant address.
func (r *Restaurant) Address() string {
	return r.address
}

// Description returns the free-form description.
func (r *Restaurant) Description() string {
	return r.description
}

// Snapshot serializes the restaurant's full current state for archival.
func (r *Restaurant) Snapshot() (json.RawMessage, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return json.Marshal(snapshot{
		ID:          r.id.String(),
		Name:        r.name,
		Address:     r.address,
		Description: r.description,
	})
}

// IsEqual compares two restaurants by identifier.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	r.address = address
	return nil
}
