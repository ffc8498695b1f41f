package cmd

import (
	"strings"

	"courierhub/internal/adapters/out/kafka"
	"courierhub/internal/adapters/out/postgres"
	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.ShipmentEventPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	publisher := kafka.NewShipmentEventPublisher(
		strings.Split(config.KafkaHost, ","),
		config.KafkaStatusTopic,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) manifestUoWFactory() commands.ManifestUoWFactory {
	return FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) scanUoWFactory() commands.ScanUoWFactory {
	return FuncScanUoWFactory(func() commands.ScanUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) exceptionUoWFactory() commands.ExceptionUoWFactory {
	return FuncExceptionUoWFactory(func() commands.ExceptionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) rtoUoWFactory() commands.RTOUoWFactory {
	return FuncRTOUoWFactory(func() commands.RTOUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateBulkCreateShipmentsCommandHandler() commands.BulkCreateShipmentsCommandHandler {
	return commands.NewBulkCreateShipmentsCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateManifestCommandHandler() commands.CreateManifestCommandHandler {
	return commands.NewCreateManifestCommandHandler(c.manifestUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCloseManifestCommandHandler() commands.CloseManifestCommandHandler {
	return commands.NewCloseManifestCommandHandler(c.manifestUoWFactory())
}

func (c *CompositionRoot) CreateRemanifestCommandHandler() commands.RemanifestCommandHandler {
	return commands.NewRemanifestCommandHandler(c.manifestUoWFactory())
}

func (c *CompositionRoot) CreateHubInScanCommandHandler() commands.HubInScanCommandHandler {
	return commands.NewHubInScanCommandHandler(c.scanUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateHubOutScanCommandHandler() commands.HubOutScanCommandHandler {
	return commands.NewHubOutScanCommandHandler(c.scanUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRaiseExceptionCommandHandler() commands.RaiseExceptionCommandHandler {
	return commands.NewRaiseExceptionCommandHandler(c.exceptionUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateResolveExceptionCommandHandler() commands.ResolveExceptionCommandHandler {
	return commands.NewResolveExceptionCommandHandler(c.exceptionUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateInitiateRTOCommandHandler() commands.InitiateRTOCommandHandler {
	return commands.NewInitiateRTOCommandHandler(c.rtoUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCompleteRTOCommandHandler() commands.CompleteRTOCommandHandler {
	return commands.NewCompleteRTOCommandHandler(c.rtoUoWFactory())
}

func (c *CompositionRoot) CreateResolveRTOCommandHandler() commands.ResolveRTOCommandHandler {
	return commands.NewResolveRTOCommandHandler(c.rtoUoWFactory())
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByIDQueryHandler() queries.GetShipmentByIDQueryHandler {
	return queries.NewGetShipmentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetManifestsQueryHandler() queries.GetManifestsQueryHandler {
	return queries.NewGetManifestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetManifestByIDQueryHandler() queries.GetManifestByIDQueryHandler {
	return queries.NewGetManifestByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListExceptionsQueryHandler() queries.ListExceptionsQueryHandler {
	return queries.NewListExceptionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRTOManifestsQueryHandler() queries.ListRTOManifestsQueryHandler {
	return queries.NewListRTOManifestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountStrandedShipmentsQueryHandler() queries.CountStrandedShipmentsQueryHandler {
	return queries.NewCountStrandedShipmentsQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}

type FuncScanUoWFactory func() commands.ScanUoW

func (f FuncScanUoWFactory) Create() commands.ScanUoW {
	return f()
}

type FuncExceptionUoWFactory func() commands.ExceptionUoW

func (f FuncExceptionUoWFactory) Create() commands.ExceptionUoW {
	return f()
}

type FuncRTOUoWFactory func() commands.RTOUoW

func (f FuncRTOUoWFactory) Create() commands.RTOUoW {
	return f()
}
