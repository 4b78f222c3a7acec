// Package http exposes the application's use cases over a JSON API built on
// echo. Handlers translate transport concerns into commands and queries and
// map domain errors onto HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dinehub/internal/core/application/accessguard"
	"dinehub/internal/core/application/usecases/commands"
	"dinehub/internal/core/application/usecases/queries"
	"dinehub/internal/core/domain/model/kernel"
	"dinehub/internal/core/domain/model/ownership"
	"dinehub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader identifies the acting user. Upstream auth is expected to set
// it; handlers only parse and authorize.
const userIDHeader = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRestaurantHandler     commands.CreateRestaurantCommandHandler
	deleteRestaurantHandler     commands.DeleteRestaurantCommandHandler
	createDishHandler           commands.CreateDishCommandHandler
	deleteDishHandler           commands.DeleteDishCommandHandler
	assignOwnerHandler          commands.AssignOwnerCommandHandler
	removeOwnerHandler          commands.RemoveOwnerCommandHandler
	updateOwnerRoleHandler      commands.UpdateOwnerRoleCommandHandler
	transferPrimaryOwnerHandler commands.TransferPrimaryOwnerCommandHandler

	// Query handlers
	getRestaurantOwnersHandler   queries.GetRestaurantOwnersQueryHandler
	getRestaurantsByOwnerHandler queries.GetRestaurantsByOwnerQueryHandler
	getArchiveRecordsHandler     queries.GetArchiveRecordsQueryHandler

	ownershipGuard accessguard.OwnershipGuard
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	deleteRestaurantHandler commands.DeleteRestaurantCommandHandler,
	createDishHandler commands.CreateDishCommandHandler,
	deleteDishHandler commands.DeleteDishCommandHandler,
	assignOwnerHandler commands.AssignOwnerCommandHandler,
	removeOwnerHandler commands.RemoveOwnerCommandHandler,
	updateOwnerRoleHandler commands.UpdateOwnerRoleCommandHandler,
	transferPrimaryOwnerHandler commands.TransferPrimaryOwnerCommandHandler,
	getRestaurantOwnersHandler queries.GetRestaurantOwnersQueryHandler,
	getRestaurantsByOwnerHandler queries.GetRestaurantsByOwnerQueryHandler,
	getArchiveRecordsHandler queries.GetArchiveRecordsQueryHandler,
	ownershipGuard accessguard.OwnershipGuard,
) *Server {
	return &Server{
		createRestaurantHandler:      createRestaurantHandler,
		deleteRestaurantHandler:      deleteRestaurantHandler,
		createDishHandler:            createDishHandler,
		deleteDishHandler:            deleteDishHandler,
		assignOwnerHandler:           assignOwnerHandler,
		removeOwnerHandler:           removeOwnerHandler,
		updateOwnerRoleHandler:       updateOwnerRoleHandler,
		transferPrimaryOwnerHandler:  transferPrimaryOwnerHandler,
		getRestaurantOwnersHandler:   getRestaurantOwnersHandler,
		getRestaurantsByOwnerHandler: getRestaurantsByOwnerHandler,
		getArchiveRecordsHandler:     getArchiveRecordsHandler,
		ownershipGuard:               ownershipGuard,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/restaurants", s.CreateRestaurant)
	api.DELETE("/restaurants/:restaurantId", s.DeleteRestaurant)

	api.POST("/restaurants/:restaurantId/dishes", s.CreateDish)
	api.DELETE("/restaurants/:restaurantId/dishes/:dishId", s.DeleteDish)

	api.POST("/restaurants/:restaurantId/owners", s.AssignOwner)
	api.GET("/restaurants/:restaurantId/owners", s.GetRestaurantOwners)
	api.DELETE("/restaurants/:restaurantId/owners/:ownerId", s.RemoveOwner)
	api.PUT("/restaurants/:restaurantId/owners/:ownerId/role", s.UpdateOwnerRole)
	api.PUT("/restaurants/:restaurantId/owners/:ownerId/primary", s.TransferPrimaryOwner)

	api.GET("/owners/:ownerId/restaurants", s.GetRestaurantsByOwner)
	api.GET("/archive", s.GetArchiveRecords)
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var req CreateRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateRestaurantCommand(req.Name, req.Address, req.Description)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant data: "+err.Error())
	}

	if err := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.RestaurantID().String()})
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/:restaurantId.
// The row is archived before it is removed; both happen in one transaction.
func (s *Server) DeleteRestaurant(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	userID, err := actingUser(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	if err := s.ownershipGuard.RequireOwnership(ctx.Request().Context(), restaurantID, userID); err != nil {
		return domainError(ctx, err)
	}

	var req DeleteRequest
	_ = ctx.Bind(&req)

	cmd, err := commands.NewDeleteRestaurantCommand(restaurantID, userID.String(), req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if err := s.deleteRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDish handles POST /api/v1/restaurants/:restaurantId/dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	userID, err := actingUser(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	if err := s.ownershipGuard.RequireOwnership(ctx.Request().Context(), restaurantID, userID); err != nil {
		return domainError(ctx, err)
	}

	var req CreateDishRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDishCommand(restaurantID, req.Name, req.Description, req.PriceCents)
	if err != nil {
		return badRequest(ctx, "Invalid dish data: "+err.Error())
	}

	if err := s.createDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.DishID().String()})
}

// DeleteDish handles DELETE /api/v1/restaurants/:restaurantId/dishes/:dishId.
func (s *Server) DeleteDish(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	dishID, err := pathUUID(ctx, "dishId")
	if err != nil {
		return badRequest(ctx, "Invalid dish ID")
	}

	userID, err := actingUser(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	if err := s.ownershipGuard.RequireOwnership(ctx.Request().Context(), restaurantID, userID); err != nil {
		return domainError(ctx, err)
	}

	var req DeleteRequest
	_ = ctx.Bind(&req)

	cmd, err := commands.NewDeleteDishCommand(dishID, userID.String(), req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if err := s.deleteDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOwner handles POST /api/v1/restaurants/:restaurantId/owners.
// Not routed through the ownership guard: the first assignment is what
// bootstraps ownership of a fresh restaurant. The acting user is recorded
// in the relationship's audit fields.
func (s *Server) AssignOwner(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	userID, err := actingUser(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req AssignOwnerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner ID")
	}

	role, err := ownership.RoleFromString(req.Role)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewAssignOwnerCommand(restaurantID, ownerID, userID, role, req.IsPrimary)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.assignOwnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveOwner handles DELETE /api/v1/restaurants/:restaurantId/owners/:ownerId.
func (s *Server) RemoveOwner(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	ownerID, err := pathUUID(ctx, "ownerId")
	if err != nil {
		return badRequest(ctx, "Invalid owner ID")
	}

	userID, err := actingUser(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	if err := s.ownershipGuard.RequireOwnership(ctx.Request().Context(), restaurantID, userID); err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewRemoveOwnerCommand(restaurantID, ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid remove request: "+err.Error())
	}

	if err := s.removeOwnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOwnerRole handles PUT /api/v1/restaurants/:restaurantId/owners/:ownerId/role.
func (s *Server) UpdateOwnerRole(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	ownerID, err := pathUUID(ctx, "ownerId")
	if err != nil {
		return badRequest(ctx, "Invalid owner ID")
	}

	userID, err := actingUser(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	if err := s.ownershipGuard.RequireOwnership(ctx.Request().Context(), restaurantID, userID); err != nil {
		return domainError(ctx, err)
	}

	var req UpdateOwnerRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := ownership.RoleFromString(req.Role)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateOwnerRoleCommand(restaurantID, ownerID, userID, role)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.updateOwnerRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransferPrimaryOwner handles PUT /api/v1/restaurants/:restaurantId/owners/:ownerId/primary.
// The target owner becomes the restaurant's sole primary owner.
func (s *Server) TransferPrimaryOwner(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	newOwnerID, err := pathUUID(ctx, "ownerId")
	if err != nil {
		return badRequest(ctx, "Invalid owner ID")
	}

	userID, err := actingUser(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	if err := s.ownershipGuard.RequireOwnership(ctx.Request().Context(), restaurantID, userID); err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewTransferPrimaryOwnerCommand(restaurantID, newOwnerID, userID)
	if err != nil {
		return badRequest(ctx, "Invalid transfer request: "+err.Error())
	}

	if err := s.transferPrimaryOwnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRestaurantOwners handles GET /api/v1/restaurants/:restaurantId/owners.
func (s *Server) GetRestaurantOwners(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	query, err := queries.NewGetRestaurantOwnersQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid owners query: "+err.Error())
	}

	owners, err := s.getRestaurantOwnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve owners")
	}

	response := make([]Owner, len(owners))
	for i, owner := range owners {
		response[i] = Owner{
			OwnerID:   owner.OwnerID.String(),
			Role:      owner.Role,
			IsPrimary: owner.IsPrimary,
			CreatedAt: owner.CreatedAt,
			UpdatedAt: owner.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantsByOwner handles GET /api/v1/owners/:ownerId/restaurants.
func (s *Server) GetRestaurantsByOwner(ctx echo.Context) error {
	ownerID, err := pathUUID(ctx, "ownerId")
	if err != nil {
		return badRequest(ctx, "Invalid owner ID")
	}

	query, err := queries.NewGetRestaurantsByOwnerQuery(ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurants query: "+err.Error())
	}

	restaurants, err := s.getRestaurantsByOwnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve restaurants")
	}

	response := make([]OwnedRestaurant, len(restaurants))
	for i, restaurant := range restaurants {
		response[i] = OwnedRestaurant{
			RestaurantID: restaurant.RestaurantID.String(),
			Name:         restaurant.Name,
			Address:      restaurant.Address,
			Role:         restaurant.Role,
			IsPrimary:    restaurant.IsPrimary,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetArchiveRecords handles GET /api/v1/archive.
// Supports original_table, original_id, deleted_by, deleted_before (RFC3339),
// offset and limit query parameters; all optional.
func (s *Server) GetArchiveRecords(ctx echo.Context) error {
	var originalTable, deletedBy *string
	var originalID *kernel.UUID
	var deletedBefore *time.Time

	if v := ctx.QueryParam("original_table"); v != "" {
		originalTable = &v
	}
	if v := ctx.QueryParam("deleted_by"); v != "" {
		deletedBy = &v
	}
	if v := ctx.QueryParam("original_id"); v != "" {
		id, err := kernel.UUIDFromString(v)
		if err != nil {
			return badRequest(ctx, "Invalid original_id")
		}
		originalID = &id
	}
	if v := ctx.QueryParam("deleted_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badRequest(ctx, "Invalid deleted_before, expected RFC3339")
		}
		deletedBefore = &t
	}

	offset, err := queryInt(ctx, "offset", 0)
	if err != nil {
		return badRequest(ctx, "Invalid offset")
	}
	limit, err := queryInt(ctx, "limit", 0)
	if err != nil {
		return badRequest(ctx, "Invalid limit")
	}

	query, err := queries.NewGetArchiveRecordsQuery(originalTable, originalID, deletedBy, deletedBefore, offset, limit)
	if err != nil {
		return badRequest(ctx, "Invalid archive query: "+err.Error())
	}

	records, err := s.getArchiveRecordsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to search archive")
	}

	response := make([]ArchiveRecord, len(records))
	for i, record := range records {
		response[i] = ArchiveRecord{
			ID:            record.ID.String(),
			OriginalTable: record.OriginalTable,
			OriginalID:    record.OriginalID.String(),
			Data:          record.Data,
			DeletedAt:     record.DeletedAt,
			DeletedBy:     record.DeletedBy,
			Note:          record.Note,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actingUser parses the user header into a domain UUID.
func actingUser(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(userIDHeader))
}

// pathUUID parses a path parameter into a domain UUID.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// queryInt parses an optional integer query parameter.
func queryInt(ctx echo.Context, name string, fallback int) (int, error) {
	v := ctx.QueryParam(name)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing or invalid " + userIDHeader + " header",
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps application and domain errors onto HTTP statuses.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, commands.ErrCannotRemovePrimaryOwner):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrPermissionDenied):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, commands.ErrOwnerNotAssigned):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
