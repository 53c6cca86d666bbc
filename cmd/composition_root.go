package cmd

import (
	"log/slog"
	"time"

	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/filestore"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/receipt"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/jobs"
	"laundry/internal/pkg/notifier"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	notifications *notifier.Log
	images        *filestore.Store
	receipts      *receipt.Generator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	images, err := filestore.NewStore(config.UploadsDir, "uploads")
	if err != nil {
		return CompositionRoot{}, err
	}

	receipts, err := receipt.NewGenerator(config.ReceiptsDir)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifications: notifier.NewLog(),
		images:        images,
		receipts:      receipts,
	}, nil
}

func (c *CompositionRoot) Images() *filestore.Store {
	return c.images
}

func (c *CompositionRoot) Receipts() *receipt.Generator {
	return c.receipts
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitRequestCommandHandler() commands.SubmitRequestCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRequestCommandHandler(f, c.notifications)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.notifications)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifications)
}

func (c *CompositionRoot) CreateAttachFeedbackCommandHandler() commands.AttachFeedbackCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachFeedbackCommandHandler(f)
}

func (c *CompositionRoot) CreateSetPriceCommandHandler() commands.SetPriceCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPriceCommandHandler(f)
}

func (c *CompositionRoot) CreateEnsureAdminCommandHandler() commands.EnsureAdminCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEnsureAdminCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderHistoryQueryHandler() queries.OrderHistoryQueryHandler {
	return queries.NewOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPricingQueryHandler() queries.GetPricingQueryHandler {
	return queries.NewGetPricingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEstimatePriceQueryHandler() queries.EstimatePriceQueryHandler {
	return queries.NewEstimatePriceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAdminSummaryQueryHandler() queries.AdminSummaryQueryHandler {
	return queries.NewAdminSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrdersPerMonthQueryHandler() queries.OrdersPerMonthQueryHandler {
	return queries.NewOrdersPerMonthQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCompletedOrdersQueryHandler() queries.CompletedOrdersQueryHandler {
	return queries.NewCompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateSubmitRequestCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateAttachFeedbackCommandHandler(),
		c.CreateSetPriceCommandHandler(),
		c.CreateEnsureAdminCommandHandler(),
		c.CreateLoginQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateOrderHistoryQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetPricingQueryHandler(),
		c.CreateEstimatePriceQueryHandler(),
		c.CreateAdminSummaryQueryHandler(),
		c.CreateOrdersPerMonthQueryHandler(),
		c.CreateCompletedOrdersQueryHandler(),
		c.images,
		c.receipts,
		c.notifications,
		c.config.AdminPassword,
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	retention := time.Duration(c.config.ReceiptTTLHours) * time.Hour
	return jobs.NewJobManager(c.receipts, retention, logger)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}
