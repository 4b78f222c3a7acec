package cmd

import (
	"dinehub/internal/adapters/out/postgres"
	"dinehub/internal/core/application/accessguard"
	"dinehub/internal/core/application/usecases/commands"
	"dinehub/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	var f commands.RestaurantArchiveUoWFactory = FuncRestaurantArchiveUoWFactory(func() commands.RestaurantArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	var f commands.DishUoWFactory = FuncDishUoWFactory(func() commands.DishUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDishCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	var f commands.DishArchiveUoWFactory = FuncDishArchiveUoWFactory(func() commands.DishArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDishCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOwnerCommandHandler() commands.AssignOwnerCommandHandler {
	var f commands.OwnershipUoWFactory = FuncOwnershipUoWFactory(func() commands.OwnershipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOwnerCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOwnerCommandHandler() commands.RemoveOwnerCommandHandler {
	var f commands.OwnershipUoWFactory = FuncOwnershipUoWFactory(func() commands.OwnershipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOwnerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOwnerRoleCommandHandler() commands.UpdateOwnerRoleCommandHandler {
	var f commands.OwnershipUoWFactory = FuncOwnershipUoWFactory(func() commands.OwnershipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOwnerRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferPrimaryOwnerCommandHandler() commands.TransferPrimaryOwnerCommandHandler {
	var f commands.OwnershipUoWFactory = FuncOwnershipUoWFactory(func() commands.OwnershipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferPrimaryOwnerCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeArchiveCommandHandler() commands.PurgeArchiveCommandHandler {
	var f commands.ArchiveUoWFactory = FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeArchiveCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRestaurantOwnersQueryHandler() queries.GetRestaurantOwnersQueryHandler {
	return queries.NewGetRestaurantOwnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantsByOwnerQueryHandler() queries.GetRestaurantsByOwnerQueryHandler {
	return queries.NewGetRestaurantsByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetArchiveRecordsQueryHandler() queries.GetArchiveRecordsQueryHandler {
	return queries.NewGetArchiveRecordsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOwnershipGuard() accessguard.OwnershipGuard {
	return accessguard.NewOwnershipGuard(postgres.NewReadOnlyOwnershipRepository(c.gormDB))
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncRestaurantArchiveUoWFactory func() commands.RestaurantArchiveUoW

func (f FuncRestaurantArchiveUoWFactory) Create() commands.RestaurantArchiveUoW {
	return f()
}

type FuncDishUoWFactory func() commands.DishUoW

func (f FuncDishUoWFactory) Create() commands.DishUoW {
	return f()
}

type FuncDishArchiveUoWFactory func() commands.DishArchiveUoW

func (f FuncDishArchiveUoWFactory) Create() commands.DishArchiveUoW {
	return f()
}

type FuncOwnershipUoWFactory func() commands.OwnershipUoW

func (f FuncOwnershipUoWFactory) Create() commands.OwnershipUoW {
	return f()
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}
