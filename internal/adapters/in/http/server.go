// Package http exposes the booking and hub operations API over echo.
// Handlers stay thin: bind, validate tags, build a command or query, call
// the application handler, wrap the result in the JSON envelope.
package http

import (
	nethttp "net/http"
	"strconv"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/core/domain/model/rto"
	"courierhub/internal/core/domain/model/scan"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface. It coordinates between HTTP handlers
// and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler       commands.CreateShipmentCommandHandler
	bulkCreateShipmentsHandler  commands.BulkCreateShipmentsCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler
	deleteShipmentHandler       commands.DeleteShipmentCommandHandler
	createManifestHandler       commands.CreateManifestCommandHandler
	closeManifestHandler        commands.CloseManifestCommandHandler
	remanifestHandler           commands.RemanifestCommandHandler
	hubInScanHandler            commands.HubInScanCommandHandler
	hubOutScanHandler           commands.HubOutScanCommandHandler
	raiseExceptionHandler       commands.RaiseExceptionCommandHandler
	resolveExceptionHandler     commands.ResolveExceptionCommandHandler
	initiateRTOHandler          commands.InitiateRTOCommandHandler
	completeRTOHandler          commands.CompleteRTOCommandHandler
	resolveRTOHandler           commands.ResolveRTOCommandHandler

	// Query handlers
	listShipmentsHandler    queries.ListShipmentsQueryHandler
	getShipmentByIDHandler  queries.GetShipmentByIDQueryHandler
	getManifestsHandler     queries.GetManifestsQueryHandler
	getManifestByIDHandler  queries.GetManifestByIDQueryHandler
	listExceptionsHandler   queries.ListExceptionsQueryHandler
	listRTOManifestsHandler queries.ListRTOManifestsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	bulkCreateShipmentsHandler commands.BulkCreateShipmentsCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	createManifestHandler commands.CreateManifestCommandHandler,
	closeManifestHandler commands.CloseManifestCommandHandler,
	remanifestHandler commands.RemanifestCommandHandler,
	hubInScanHandler commands.HubInScanCommandHandler,
	hubOutScanHandler commands.HubOutScanCommandHandler,
	raiseExceptionHandler commands.RaiseExceptionCommandHandler,
	resolveExceptionHandler commands.ResolveExceptionCommandHandler,
	initiateRTOHandler commands.InitiateRTOCommandHandler,
	completeRTOHandler commands.CompleteRTOCommandHandler,
	resolveRTOHandler commands.ResolveRTOCommandHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getShipmentByIDHandler queries.GetShipmentByIDQueryHandler,
	getManifestsHandler queries.GetManifestsQueryHandler,
	getManifestByIDHandler queries.GetManifestByIDQueryHandler,
	listExceptionsHandler queries.ListExceptionsQueryHandler,
	listRTOManifestsHandler queries.ListRTOManifestsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:       createShipmentHandler,
		bulkCreateShipmentsHandler:  bulkCreateShipmentsHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		deleteShipmentHandler:       deleteShipmentHandler,
		createManifestHandler:       createManifestHandler,
		closeManifestHandler:        closeManifestHandler,
		remanifestHandler:           remanifestHandler,
		hubInScanHandler:            hubInScanHandler,
		hubOutScanHandler:           hubOutScanHandler,
		raiseExceptionHandler:       raiseExceptionHandler,
		resolveExceptionHandler:     resolveExceptionHandler,
		initiateRTOHandler:          initiateRTOHandler,
		completeRTOHandler:          completeRTOHandler,
		resolveRTOHandler:           resolveRTOHandler,
		listShipmentsHandler:        listShipmentsHandler,
		getShipmentByIDHandler:      getShipmentByIDHandler,
		getManifestsHandler:         getManifestsHandler,
		getManifestByIDHandler:      getManifestByIDHandler,
		listExceptionsHandler:       listExceptionsHandler,
		listRTOManifestsHandler:     listRTOManifestsHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *TenantAuth) {
	api := e.Group("/api/v1", auth.Middleware())

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.POST("/shipments/bulk-upload", s.BulkUploadShipments)
	api.GET("/shipments/exceptions/list", s.ListExceptions)
	api.GET("/shipments/:id", s.GetShipment)
	api.PATCH("/shipments/:id", s.UpdateShipmentStatus)
	api.DELETE("/shipments/:id", s.DeleteShipment)
	api.POST("/shipments/:id/exceptions", s.RaiseException)
	api.PATCH("/shipments/:id/exceptions/:eid", s.ResolveException)

	api.POST("/hub-operations/manifests", s.CreateManifest)
	api.GET("/hub-operations/manifests", s.ListManifests)
	api.GET("/hub-operations/manifests/:id", s.GetManifest)
	api.PATCH("/hub-operations/manifests/:id/close", s.CloseManifest)
	api.POST("/hub-operations/manifests/:id/remanifest", s.Remanifest)

	api.POST("/hub-operations/hub-scans/in-scan", s.HubInScan)
	api.POST("/hub-operations/hub-scans/out-scan", s.HubOutScan)

	api.POST("/hub-operations/rto", s.InitiateRTO)
	api.GET("/hub-operations/rto", s.ListRTOManifests)
	api.PATCH("/hub-operations/rto/:id/complete", s.CompleteRTO)
	api.PATCH("/hub-operations/rto/:id/resolve", s.ResolveRTO)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	sender, err := shipment.NewParty(
		req.Sender.Name, req.Sender.Phone, req.Sender.Address,
		req.Sender.Pincode, req.Sender.City, req.Sender.State)
	if err != nil {
		return fail(ctx, err)
	}
	receiver, err := shipment.NewParty(
		req.Receiver.Name, req.Receiver.Phone, req.Receiver.Address,
		req.Receiver.Pincode, req.Receiver.City, req.Receiver.State)
	if err != nil {
		return fail(ctx, err)
	}

	serviceType, err := shipment.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return fail(ctx, err)
	}

	source := shipment.Manual
	if req.Source != "" {
		if source, err = shipment.SourceFromString(req.Source); err != nil {
			return fail(ctx, err)
		}
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		tenant,
		sender,
		receiver,
		req.WeightKg,
		shipment.Dimensions{
			LengthCm: req.Dimensions.LengthCm,
			WidthCm:  req.Dimensions.WidthCm,
			HeightCm: req.Dimensions.HeightCm,
		},
		req.Pieces,
		req.DeclaredValue,
		serviceType,
		source,
		req.TotalCharge,
	)
	if err != nil {
		return fail(ctx, err)
	}

	aggregate, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	metrics.ShipmentsCreated.WithLabelValues(source.String()).Inc()
	return created(ctx, shipmentViewFromAggregate(aggregate))
}

// BulkUploadShipments handles POST /api/v1/shipments/bulk-upload.
func (s *Server) BulkUploadShipments(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var req bulkUploadRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	rows := make([]commands.BulkShipmentRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, commands.BulkShipmentRow{
			SenderName:      r.SenderName,
			SenderPhone:     r.SenderPhone,
			SenderAddress:   r.SenderAddress,
			SenderPincode:   r.SenderPincode,
			SenderCity:      r.SenderCity,
			SenderState:     r.SenderState,
			ReceiverName:    r.ReceiverName,
			ReceiverPhone:   r.ReceiverPhone,
			ReceiverAddress: r.ReceiverAddress,
			ReceiverPincode: r.ReceiverPincode,
			ReceiverCity:    r.ReceiverCity,
			ReceiverState:   r.ReceiverState,
			WeightKg:        r.WeightKg,
			LengthCm:        r.LengthCm,
			WidthCm:         r.WidthCm,
			HeightCm:        r.HeightCm,
			Pieces:          r.Pieces,
			DeclaredValue:   r.DeclaredValue,
			ServiceType:     r.ServiceType,
			TotalCharge:     r.TotalCharge,
		})
	}

	cmd, err := commands.NewBulkCreateShipmentsCommand(tenant, rows)
	if err != nil {
		return fail(ctx, err)
	}

	report, err := s.bulkCreateShipmentsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	metrics.ShipmentsCreated.WithLabelValues(shipment.Bulk.String()).Add(float64(report.SuccessCount))
	return ok(ctx, bulkReportViewFromReport(report))
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var status *shipment.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := shipment.StatusFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		status = &parsed
	}

	var source *shipment.Source
	if raw := ctx.QueryParam("source"); raw != "" {
		parsed, err := shipment.SourceFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		source = &parsed
	}

	pagination := paginationFromRequest(ctx)
	query, err := queries.NewListShipmentsQuery(
		tenant, status, source, ctx.QueryParam("search"), pagination)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	shipments := make([]shipmentView, 0, len(result.Shipments))
	for _, row := range result.Shipments {
		shipments = append(shipments, shipmentViewFromRow(row))
	}

	return ok(ctx, shipmentListView{
		Shipments: shipments,
		Total:     result.Total,
		Page:      pagination.Page(),
		PageSize:  pagination.PageSize(),
	})
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetShipmentByIDQuery(tenant, id)
	if err != nil {
		return fail(ctx, err)
	}

	row, err := s.getShipmentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, shipmentViewFromRow(row))
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:id.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req updateShipmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(id, tenant, status)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, nil)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(id, tenant)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, nil)
}

// RaiseException handles POST /api/v1/shipments/:id/exceptions.
func (s *Server) RaiseException(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req raiseExceptionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	exceptionType, err := exception.TypeFromString(req.ExceptionType)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRaiseExceptionCommand(id, tenant, exceptionType, req.Description)
	if err != nil {
		return fail(ctx, err)
	}

	record, err := s.raiseExceptionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, exceptionViewFromAggregate(record))
}

// ResolveException handles PATCH /api/v1/shipments/:id/exceptions/:eid.
func (s *Server) ResolveException(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}
	exceptionID, err := kernel.UUIDFromString(ctx.Param("eid"))
	if err != nil {
		return fail(ctx, err)
	}

	var req resolveExceptionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	verdict, err := exception.StatusFromString(req.Verdict)
	if err != nil {
		return fail(ctx, err)
	}

	var newStatus *shipment.Status
	if req.NewStatus != nil {
		parsed, statusErr := shipment.StatusFromString(*req.NewStatus)
		if statusErr != nil {
			return fail(ctx, statusErr)
		}
		newStatus = &parsed
	}

	cmd, err := commands.NewResolveExceptionCommand(
		exceptionID, shipmentID, tenant, verdict, req.ResolutionNotes, newStatus)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.resolveExceptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, nil)
}

// ListExceptions handles GET /api/v1/shipments/exceptions/list.
func (s *Server) ListExceptions(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var status *exception.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := exception.StatusFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		status = &parsed
	}

	pagination := paginationFromRequest(ctx)
	query, err := queries.NewListExceptionsQuery(tenant, status, pagination)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.listExceptionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	exceptions := make([]exceptionView, 0, len(result.Exceptions))
	for _, row := range result.Exceptions {
		exceptions = append(exceptions, exceptionViewFromRow(row))
	}

	return ok(ctx, exceptionListView{
		Exceptions: exceptions,
		Total:      result.Total,
		Page:       pagination.Page(),
		PageSize:   pagination.PageSize(),
	})
}

// CreateManifest handles POST /api/v1/hub-operations/manifests.
func (s *Server) CreateManifest(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var req createManifestRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	courierCompanyID, err := kernel.UUIDFromString(req.CourierCompanyID)
	if err != nil {
		return fail(ctx, err)
	}
	originHubID, err := kernel.UUIDFromString(req.OriginHubID)
	if err != nil {
		return fail(ctx, err)
	}
	shipmentIDs, err := parseUUIDs(req.ShipmentIDs)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateManifestCommand(
		kernel.NewUUID(), tenant, courierCompanyID, originHubID, shipmentIDs)
	if err != nil {
		return fail(ctx, err)
	}

	aggregate, err := s.createManifestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, manifestViewFromAggregate(aggregate))
}

// ListManifests handles GET /api/v1/hub-operations/manifests.
func (s *Server) ListManifests(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var status *manifest.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := manifest.StatusFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		status = &parsed
	}

	var originHubID *kernel.UUID
	if raw := ctx.QueryParam("origin_hub_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		originHubID = &parsed
	}

	var courierCompanyID *kernel.UUID
	if raw := ctx.QueryParam("courier_company_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		courierCompanyID = &parsed
	}

	pagination := paginationFromRequest(ctx)
	query, err := queries.NewGetManifestsQuery(tenant, status, originHubID, courierCompanyID, pagination)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getManifestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	manifests := make([]manifestView, 0, len(result.Manifests))
	for _, row := range result.Manifests {
		manifests = append(manifests, manifestViewFromRow(row))
	}

	return ok(ctx, manifestListView{
		Manifests: manifests,
		Total:     result.Total,
		Page:      pagination.Page(),
		PageSize:  pagination.PageSize(),
	})
}

// GetManifest handles GET /api/v1/hub-operations/manifests/:id.
func (s *Server) GetManifest(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetManifestByIDQuery(tenant, id)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getManifestByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	members := make([]shipmentView, 0, len(result.Shipments))
	for _, row := range result.Shipments {
		members = append(members, shipmentViewFromRow(row))
	}

	return ok(ctx, manifestDetailView{
		Manifest:  manifestViewFromRow(result.Manifest),
		Shipments: members,
	})
}

// CloseManifest handles PATCH /api/v1/hub-operations/manifests/:id/close.
func (s *Server) CloseManifest(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCloseManifestCommand(id, tenant)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.closeManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, nil)
}

// Remanifest handles POST /api/v1/hub-operations/manifests/:id/remanifest.
func (s *Server) Remanifest(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req remanifestRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	shipmentIDs, err := parseUUIDs(req.ShipmentIDs)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRemanifestCommand(id, tenant, shipmentIDs, req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.remanifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, nil)
}

// HubInScan handles POST /api/v1/hub-operations/hub-scans/in-scan.
func (s *Server) HubInScan(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var req inScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cn, err := shipment.ConsignmentNumberFromString(req.ShipmentCN)
	if err != nil {
		return fail(ctx, err)
	}
	hubID, err := kernel.UUIDFromString(req.HubID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewHubInScanCommand(tenant, cn, hubID, req.DeviceID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.hubInScanHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	metrics.ScansProcessed.WithLabelValues(scan.In.String()).Inc()
	return ok(ctx, nil)
}

// HubOutScan handles POST /api/v1/hub-operations/hub-scans/out-scan.
func (s *Server) HubOutScan(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var req outScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cn, err := shipment.ConsignmentNumberFromString(req.ShipmentCN)
	if err != nil {
		return fail(ctx, err)
	}
	hubID, err := kernel.UUIDFromString(req.HubID)
	if err != nil {
		return fail(ctx, err)
	}

	var nextHubID *kernel.UUID
	if req.NextHubID != nil {
		parsed, nextErr := kernel.UUIDFromString(*req.NextHubID)
		if nextErr != nil {
			return fail(ctx, nextErr)
		}
		nextHubID = &parsed
	}

	cmd, err := commands.NewHubOutScanCommand(
		tenant, cn, hubID, req.DeviceID, nextHubID, req.RouteCode, req.VehicleID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.hubOutScanHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	metrics.ScansProcessed.WithLabelValues(scan.Out.String()).Inc()
	return ok(ctx, nil)
}

// InitiateRTO handles POST /api/v1/hub-operations/rto.
func (s *Server) InitiateRTO(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var req initiateRTORequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	reason, err := rto.ReasonFromString(req.Reason)
	if err != nil {
		return fail(ctx, err)
	}
	originHubID, err := kernel.UUIDFromString(req.OriginHubID)
	if err != nil {
		return fail(ctx, err)
	}
	returnHubID, err := kernel.UUIDFromString(req.ReturnHubID)
	if err != nil {
		return fail(ctx, err)
	}
	shipmentIDs, err := parseUUIDs(req.ShipmentIDs)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewInitiateRTOCommand(
		kernel.NewUUID(), tenant, reason, originHubID, returnHubID, req.Notes, shipmentIDs)
	if err != nil {
		return fail(ctx, err)
	}

	aggregate, err := s.initiateRTOHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, rtoManifestViewFromAggregate(aggregate))
}

// ListRTOManifests handles GET /api/v1/hub-operations/rto.
func (s *Server) ListRTOManifests(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	var status *rto.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := rto.StatusFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		status = &parsed
	}

	pagination := paginationFromRequest(ctx)
	query, err := queries.NewListRTOManifestsQuery(tenant, status, pagination)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.listRTOManifestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	manifests := make([]rtoManifestView, 0, len(result.Manifests))
	for _, row := range result.Manifests {
		manifests = append(manifests, rtoManifestViewFromRow(row))
	}

	return ok(ctx, rtoManifestListView{
		Manifests: manifests,
		Total:     result.Total,
		Page:      pagination.Page(),
		PageSize:  pagination.PageSize(),
	})
}

// CompleteRTO handles PATCH /api/v1/hub-operations/rto/:id/complete.
func (s *Server) CompleteRTO(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCompleteRTOCommand(id, tenant)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.completeRTOHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, nil)
}

// ResolveRTO handles PATCH /api/v1/hub-operations/rto/:id/resolve.
func (s *Server) ResolveRTO(ctx echo.Context) error {
	tenant, authorized := tenantFromContext(ctx)
	if !authorized {
		return ctx.NoContent(nethttp.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewResolveRTOCommand(id, tenant)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.resolveRTOHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, nil)
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func paginationFromRequest(ctx echo.Context) queries.Pagination {
	page := intQueryParam(ctx, "page")
	pageSize := intQueryParam(ctx, "page_size")
	return queries.NewPagination(page, pageSize)
}

func intQueryParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}
