package cmd

import (
	"log/slog"
	"os"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, commands.NewDefaultCreationPolicy())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, services.NewTransitionAuthorizer())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	handler, err := queries.NewGetOrdersQueryHandler(c.gormDB)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	handler, err := queries.NewGetOrderQueryHandler(c.gormDB)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreateGetPackagingOrdersQueryHandler() queries.GetPackagingOrdersQueryHandler {
	handler, err := queries.NewGetPackagingOrdersQueryHandler(c.gormDB)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler, err := queries.NewGetReviewBacklogQueryHandler(c.gormDB)
	if err != nil {
		panic(err)
	}
	return jobs.NewJobManager(handler, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
