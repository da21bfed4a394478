package cmd

import (
	"mailroom/internal/adapters/out/postgres"
	"mailroom/internal/adapters/out/postgres/recipientrepo"
	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	directory  *recipientrepo.GormRecipientDirectory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  recipientrepo.NewGormRecipientDirectory(gormDB),
	}
}

func (c *CompositionRoot) RecipientDirectory() *recipientrepo.GormRecipientDirectory {
	return c.directory
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterParcelCommandHandler(
		f, c.directory, services.NewRecipientMatcher(), services.NewSlotAllocator())
}

func (c *CompositionRoot) CreateDeliverParcelCommandHandler() commands.DeliverParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateReclassifyStaleParcelsCommandHandler() commands.ReclassifyStaleParcelsCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReclassifyStaleParcelsCommandHandler(f, services.NewStaleArchiver())
}

func (c *CompositionRoot) CreateSearchParcelsQueryHandler() queries.SearchParcelsQueryHandler {
	return queries.NewSearchParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMatchRecipientsQueryHandler() queries.MatchRecipientsQueryHandler {
	return queries.NewMatchRecipientsQueryHandler(c.directory, services.NewRecipientMatcher())
}

func (c *CompositionRoot) CreateParcelStatisticsQueryHandler() queries.ParcelStatisticsQueryHandler {
	return queries.NewParcelStatisticsQueryHandler(c.gormDB)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}
