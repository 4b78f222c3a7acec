package http

import (
	"encoding/json"
	"time"
)

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateRestaurantRequest is the body of POST /api/v1/restaurants.
type CreateRestaurantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
}

// CreateDishRequest is the body of POST /api/v1/restaurants/:restaurantId/dishes.
type CreateDishRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int    `json:"price_cents"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// DeleteRequest is the optional body of archive-first delete endpoints.
type DeleteRequest struct {
	Note string `json:"note,omitempty"`
}

// AssignOwnerRequest is the body of POST /api/v1/restaurants/:restaurantId/owners.
type AssignOwnerRequest struct {
	OwnerID   string `json:"owner_id"`
	Role      string `json:"role"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

// UpdateOwnerRoleRequest is the body of PUT .../owners/:ownerId/role.
type UpdateOwnerRoleRequest struct {
	Role string `json:"role"`
}

// Owner is one entry of the owner list read model.
type Owner struct {
	OwnerID   string    `json:"owner_id"`
	Role      string    `json:"role"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedRestaurant is one entry of the restaurants-by-owner read model.
type OwnedRestaurant struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Role         string `json:"role"`
	IsPrimary    bool   `json:"is_primary"`
}

// ArchiveRecord is one entry of the archive search read model. Data carries
// the snapshot captured when the row was deleted.
type ArchiveRecord struct {
	ID            string          `json:"id"`
	OriginalTable string          `json:"original_table"`
	OriginalID    string          `json:"original_id"`
	Data          json.RawMessage `json:"data"`
	DeletedAt     time.Time       `json:"deleted_at"`
	DeletedBy     *string         `json:"deleted_by,omitempty"`
	Note          *string         `json:"note,omitempty"`
}
