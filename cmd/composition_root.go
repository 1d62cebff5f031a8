package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/erp"
	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	ledger     *services.StockLedger
	planner    services.RoutePlanner
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		ledger:     services.NewStockLedger(),
		planner:    services.NewRoutePlanner(),
		notifier:   notify.NewLogNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateTakeForAssemblyCommandHandler() commands.TakeForAssemblyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTakeForAssemblyCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkItemUnavailableCommandHandler() commands.MarkItemUnavailableCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkItemUnavailableCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateResolveReplacementCommandHandler() commands.ResolveReplacementCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveReplacementCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkAssembledCommandHandler() commands.MarkAssembledCommandHandler {
	var f commands.OrderCourierUoWFactory = FuncOrderCourierUoWFactory(func() commands.OrderCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAssembledCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteTaxiDeliveryCommandHandler() commands.CompleteTaxiDeliveryCommandHandler {
	var f commands.OrderClinicUoWFactory = FuncOrderClinicUoWFactory(func() commands.OrderClinicUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteTaxiDeliveryCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignRouteCommandHandler() commands.AssignRouteCommandHandler {
	var f commands.OrderCourierUoWFactory = FuncOrderCourierUoWFactory(func() commands.OrderCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRouteCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateReconcileStockCommandHandler() commands.ReconcileStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileStockCommandHandler(f, c.ledger)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClinicCommandHandler() commands.CreateClinicCommandHandler {
	var f commands.ClinicUoWFactory = FuncClinicUoWFactory(func() commands.ClinicUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClinicCommandHandler(f)
}

func (c *CompositionRoot) CreateGetReadyOrdersQueryHandler() queries.GetReadyOrdersQueryHandler {
	return queries.NewGetReadyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePlanRouteQueryHandler() queries.PlanRouteQueryHandler {
	return queries.NewPlanRouteQueryHandler(c.CreateGetReadyOrdersQueryHandler(), c.planner)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateStockFeed() (ports.StockFeed, error) {
	return erp.NewClient(c.config.ERPBaseURL, c.config.ERPUsername, c.config.ERPPassword)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	feed, err := c.CreateStockFeed()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(
		feed,
		c.CreateReconcileStockCommandHandler(),
		c.config.StockSyncSchedule,
		c.logger,
	), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncClinicUoWFactory func() commands.ClinicUoW

func (f FuncClinicUoWFactory) Create() commands.ClinicUoW {
	return f()
}

type FuncOrderStockUoWFactory func() commands.OrderStockUoW

func (f FuncOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return f()
}

type FuncOrderCourierUoWFactory func() commands.OrderCourierUoW

func (f FuncOrderCourierUoWFactory) Create() commands.OrderCourierUoW {
	return f()
}

type FuncOrderClinicUoWFactory func() commands.OrderClinicUoW

func (f FuncOrderClinicUoWFactory) Create() commands.OrderClinicUoW {
	return f()
}
