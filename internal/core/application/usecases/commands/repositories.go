// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"dinehub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition of repositories it needs,
// so tests and the composition root only wire what a use case actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// DishRepoFactory provides access to the dish repository within a transaction.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// OwnershipRepoFactory provides access to the ownership repository within a transaction.
	OwnershipRepoFactory interface {
		OwnershipRepository() ports.OwnershipRepository
	}

	// ArchiveRepoFactory provides access to the archive repository within a transaction.
	ArchiveRepoFactory interface {
		ArchiveRepository() ports.ArchiveRepository
	}

	// RestaurantUoW manages transactions for restaurant-only operations.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// DishUoW manages transactions for dish operations that also need the
	// owning restaurant (existence checks).
	DishUoW interface {
		TxManager
		DishRepoFactory
		RestaurantRepoFactory
	}

	// DishUoWFactory creates new dish unit of work instances.
	DishUoWFactory interface {
		Create() DishUoW
	}

	// OwnershipUoW manages transactions for ownership-relationship operations.
	// The primary-flag flips (clear-then-set) run entirely within one such
	// unit of work.
	OwnershipUoW interface {
		TxManager
		OwnershipRepoFactory
	}

	// OwnershipUoWFactory creates new ownership unit of work instances.
	OwnershipUoWFactory interface {
		Create() OwnershipUoW
	}

	// RestaurantArchiveUoW manages the archive-first deletion of restaurants:
	// the archive insert and the live-row delete share one transaction.
	RestaurantArchiveUoW interface {
		TxManager
		RestaurantRepoFactory
		ArchiveRepoFactory
	}

	// RestaurantArchiveUoWFactory creates unit of work instances for restaurant deletion.
	RestaurantArchiveUoWFactory interface {
		Create() RestaurantArchiveUoW
	}

	// DishArchiveUoW manages the archive-first deletion of dishes.
	DishArchiveUoW interface {
		TxManager
		DishRepoFactory
		ArchiveRepoFactory
	}

	// DishArchiveUoWFactory creates unit of work instances for dish deletion.
	DishArchiveUoWFactory interface {
		Create() DishArchiveUoW
	}

	// ArchiveUoW manages transactions for archive-only operations (purge).
	ArchiveUoW interface {
		TxManager
		ArchiveRepoFactory
	}

	// ArchiveUoWFactory creates new archive unit of work instances.
	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}
)
