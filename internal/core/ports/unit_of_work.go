package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained from it issue their statements against the
// transaction started by Begin; they never commit or roll back themselves.
// Only the coordinator driving the unit of work calls Commit/Rollback, so a
// multi-write sequence (archive insert plus live-row delete, or the
// clear-then-set primary flip) either becomes visible as a whole or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RestaurantRepository returns a RestaurantRepository bound to the current transaction.
	RestaurantRepository() RestaurantRepository

	// DishRepository returns a DishRepository bound to the current transaction.
	DishRepository() DishRepository

	// OwnershipRepository returns an OwnershipRepository bound to the current transaction.
	OwnershipRepository() OwnershipRepository

	// ArchiveRepository returns an ArchiveRepository bound to the current transaction.
	ArchiveRepository() ArchiveRepository
}
