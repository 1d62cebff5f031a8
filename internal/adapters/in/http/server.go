// Package http exposes the fulfillment use cases over a REST API.
// It coordinates between HTTP handlers and application use cases,
// translating transport DTOs into commands and queries and domain
// errors into status codes.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the fulfillment API.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	takeForAssemblyHandler     commands.TakeForAssemblyCommandHandler
	markItemUnavailableHandler commands.MarkItemUnavailableCommandHandler
	resolveReplacementHandler  commands.ResolveReplacementCommandHandler
	markAssembledHandler       commands.MarkAssembledCommandHandler
	completeTaxiHandler        commands.CompleteTaxiDeliveryCommandHandler
	assignRouteHandler         commands.AssignRouteCommandHandler
	completeDeliveryHandler    commands.CompleteDeliveryCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	reconcileStockHandler      commands.ReconcileStockCommandHandler
	createCourierHandler       commands.CreateCourierCommandHandler
	createClinicHandler        commands.CreateClinicCommandHandler

	// Query handlers
	getReadyOrdersHandler queries.GetReadyOrdersQueryHandler
	planRouteHandler      queries.PlanRouteQueryHandler
	getStockHandler       queries.GetStockQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	takeForAssemblyHandler commands.TakeForAssemblyCommandHandler,
	markItemUnavailableHandler commands.MarkItemUnavailableCommandHandler,
	resolveReplacementHandler commands.ResolveReplacementCommandHandler,
	markAssembledHandler commands.MarkAssembledCommandHandler,
	completeTaxiHandler commands.CompleteTaxiDeliveryCommandHandler,
	assignRouteHandler commands.AssignRouteCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	reconcileStockHandler commands.ReconcileStockCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	createClinicHandler commands.CreateClinicCommandHandler,
	getReadyOrdersHandler queries.GetReadyOrdersQueryHandler,
	planRouteHandler queries.PlanRouteQueryHandler,
	getStockHandler queries.GetStockQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		takeForAssemblyHandler:     takeForAssemblyHandler,
		markItemUnavailableHandler: markItemUnavailableHandler,
		resolveReplacementHandler:  resolveReplacementHandler,
		markAssembledHandler:       markAssembledHandler,
		completeTaxiHandler:        completeTaxiHandler,
		assignRouteHandler:         assignRouteHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		cancelOrderHandler:         cancelOrderHandler,
		reconcileStockHandler:      reconcileStockHandler,
		createCourierHandler:       createCourierHandler,
		createClinicHandler:        createClinicHandler,
		getReadyOrdersHandler:      getReadyOrdersHandler,
		planRouteHandler:           planRouteHandler,
		getStockHandler:            getStockHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/assembly", s.TakeForAssembly)
	api.POST("/orders/:id/lines/:lineId/unavailable", s.MarkItemUnavailable)
	api.POST("/orders/:id/lines/:lineId/replacement", s.ResolveReplacement)
	api.POST("/orders/:id/assembled", s.MarkAssembled)
	api.POST("/orders/:id/taxi-link", s.CompleteTaxiDelivery)
	api.POST("/orders/:id/delivered", s.CompleteDelivery)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/ready", s.GetReadyOrders)

	api.POST("/routes", s.AssignRoute)
	api.GET("/routes/plan", s.PlanRoute)

	api.GET("/stock/:sku", s.GetStock)
	api.PUT("/stock/:sku", s.ReconcileStock)

	api.POST("/couriers", s.CreateCourier)
	api.POST("/clinics", s.CreateClinic)
}

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrder handles POST /api/v1/orders - registers a new order and reserves its stock.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req struct {
		ManagerID    string `json:"manager_id"`
		ClinicID     string `json:"clinic_id"`
		IsUrgent     bool   `json:"is_urgent"`
		DeliveryType string `json:"delivery_type"`
		Lines        []struct {
			SKU      string `json:"sku"`
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
		} `json:"lines"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return badRequest(ctx, "Invalid manager_id: "+err.Error())
	}
	clinicID, err := kernel.UUIDFromString(req.ClinicID)
	if err != nil {
		return badRequest(ctx, "Invalid clinic_id: "+err.Error())
	}
	deliveryType, err := parseDeliveryType(req.DeliveryType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	lines := make([]commands.LineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, commands.LineInput{SKU: l.SKU, Name: l.Name, Quantity: l.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, managerID, clinicID, lines, req.IsUrgent, deliveryType)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// TakeForAssembly handles POST /api/v1/orders/:id/assembly - claims an order for assembly.
func (s *Server) TakeForAssembly(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		WarehouseID string `json:"warehouse_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse_id: "+err.Error())
	}

	cmd, err := commands.NewTakeForAssemblyCommand(orderID, warehouseID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.takeForAssemblyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkItemUnavailable handles POST /api/v1/orders/:id/lines/:lineId/unavailable -
// flags a line for replacement and notifies the manager.
func (s *Server) MarkItemUnavailable(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	lineID, err := pathUUID(ctx, "lineId")
	if err != nil {
		return badRequest(ctx, "Invalid line id")
	}

	var req struct {
		WarehouseID string `json:"warehouse_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse_id: "+err.Error())
	}

	cmd, err := commands.NewMarkItemUnavailableCommand(orderID, lineID, warehouseID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.markItemUnavailableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveReplacement handles POST /api/v1/orders/:id/lines/:lineId/replacement -
// records the manager's substitute for an unavailable item.
func (s *Server) ResolveReplacement(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	lineID, err := pathUUID(ctx, "lineId")
	if err != nil {
		return badRequest(ctx, "Invalid line id")
	}

	var req struct {
		ManagerID string `json:"manager_id"`
		SKU       string `json:"sku"`
		Name      string `json:"name"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return badRequest(ctx, "Invalid manager_id: "+err.Error())
	}

	cmd, err := commands.NewResolveReplacementCommand(orderID, lineID, managerID, req.SKU, req.Name)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.resolveReplacementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAssembled handles POST /api/v1/orders/:id/assembled - completes assembly and
// moves the order to the delivery stage matching its delivery type.
func (s *Server) MarkAssembled(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		WarehouseID string `json:"warehouse_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse_id: "+err.Error())
	}

	cmd, err := commands.NewMarkAssembledCommand(orderID, warehouseID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.markAssembledHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteTaxiDelivery handles POST /api/v1/orders/:id/taxi-link - attaches the
// taxi tracking link and completes the order.
func (s *Server) CompleteTaxiDelivery(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		TrackingLink string `json:"tracking_link"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteTaxiDeliveryCommand(orderID, req.TrackingLink)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeTaxiHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRoute handles POST /api/v1/routes - dispatches a batch of ready orders
// to a courier. Orders that were taken by someone else in the meantime are
// skipped; the response lists the orders that were actually dispatched.
func (s *Server) AssignRoute(ctx echo.Context) error {
	var req struct {
		CourierID string   `json:"courier_id"`
		OrderIDs  []string `json:"order_ids"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id: "+err.Error())
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid order id: "+raw)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewAssignRouteCommand(orderIDs, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	dispatched, err := s.assignRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	ids := make([]string, 0, len(dispatched))
	for _, id := range dispatched {
		ids = append(ids, id.String())
	}

	return ctx.JSON(http.StatusOK, map[string][]string{"dispatched_order_ids": ids})
}

// CompleteDelivery handles POST /api/v1/orders/:id/delivered - confirms a
// courier handed the order over at the clinic.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		CourierID string `json:"courier_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id: "+err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels a non-terminal order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		ActorID string `json:"actor_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetReadyOrders handles GET /api/v1/orders/ready - lists assembled
// courier-delivery orders waiting for a route, urgent first.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	query := queries.NewGetReadyOrdersQuery()

	ready, err := s.getReadyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	type readyOrder struct {
		OrderID    string  `json:"order_id"`
		ClinicName string  `json:"clinic_name"`
		Lat        float64 `json:"lat"`
		Lon        float64 `json:"lon"`
		IsUrgent   bool    `json:"is_urgent"`
	}

	response := make([]readyOrder, 0, len(ready))
	for _, r := range ready {
		response = append(response, readyOrder{
			OrderID:    r.OrderID.String(),
			ClinicName: r.ClinicName,
			Lat:        r.Location.Lat(),
			Lon:        r.Location.Lon(),
			IsUrgent:   r.IsUrgent,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlanRoute handles GET /api/v1/routes/plan?lat=..&lon=.. - plans a delivery
// route over all ready courier orders from the given origin.
func (s *Server) PlanRoute(ctx echo.Context) error {
	var params struct {
		Lat float64 `query:"lat"`
		Lon float64 `query:"lon"`
	}
	if err := ctx.Bind(&params); err != nil {
		return badRequest(ctx, "Invalid origin coordinates")
	}

	query, err := queries.NewPlanRouteQuery(params.Lat, params.Lon)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	plan, err := s.planRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPlanRouteResponse(plan))
}

// GetStock handles GET /api/v1/stock/:sku - returns a SKU's availability.
func (s *Server) GetStock(ctx echo.Context) error {
	query, err := queries.NewGetStockQuery(ctx.Param("sku"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	level, err := s.getStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"sku":           level.SKU,
		"available_qty": level.AvailableQty,
	})
}

// ReconcileStock handles PUT /api/v1/stock/:sku - overwrites a SKU's availability
// with the quantity reported by the system of record.
func (s *Server) ReconcileStock(ctx echo.Context) error {
	var req struct {
		Qty int `json:"qty"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReconcileStockCommand(ctx.Param("sku"), req.Qty)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.reconcileStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCourier handles POST /api/v1/couriers - registers a new active courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": courierID.String()})
}

// CreateClinic handles POST /api/v1/clinics - registers a new clinic destination.
func (s *Server) CreateClinic(ctx echo.Context) error {
	var req struct {
		Name      string  `json:"name"`
		Address   string  `json:"address"`
		Lat       float64 `json:"lat"`
		Lon       float64 `json:"lon"`
		ContactID *string `json:"contact_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(req.Lat, req.Lon)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates: "+err.Error())
	}

	var contactID *kernel.UUID
	if req.ContactID != nil {
		cID, cErr := kernel.UUIDFromString(*req.ContactID)
		if cErr != nil {
			return badRequest(ctx, "Invalid contact_id: "+cErr.Error())
		}
		contactID = &cID
	}

	clinicID := kernel.NewUUID()
	cmd, err := commands.NewCreateClinicCommand(clinicID, req.Name, req.Address, location, contactID)
	if err != nil {
		return badRequest(ctx, "Invalid clinic data: "+err.Error())
	}

	if err := s.createClinicHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": clinicID.String()})
}

func toPlanRouteResponse(plan queries.PlanRouteQueryResponse) map[string]any {
	type stop struct {
		OrderID    string  `json:"order_id"`
		ClinicName string  `json:"clinic_name"`
		Lat        float64 `json:"lat"`
		Lon        float64 `json:"lon"`
		IsUrgent   bool    `json:"is_urgent"`
		DistanceKm float64 `json:"distance_km"`
	}

	grouped := make([]stop, 0, len(plan.Grouped))
	for _, leg := range plan.Grouped {
		grouped = append(grouped, stop{
			OrderID:    leg.OrderID.String(),
			ClinicName: leg.ClinicName,
			Lat:        leg.Location.Lat(),
			Lon:        leg.Location.Lon(),
			IsUrgent:   leg.IsUrgent,
			DistanceKm: leg.DistanceKm,
		})
	}

	distant := make([]stop, 0, len(plan.Distant))
	for _, d := range plan.Distant {
		distant = append(distant, stop{
			OrderID:    d.OrderID.String(),
			ClinicName: d.ClinicName,
			Lat:        d.Location.Lat(),
			Lon:        d.Location.Lon(),
			IsUrgent:   d.IsUrgent,
			DistanceKm: d.DistanceKm,
		})
	}

	return map[string]any{
		"grouped":        grouped,
		"distant":        distant,
		"total_km":       plan.TotalKm,
		"navigation_url": plan.NavigationURL,
	}
}

// parseDeliveryType maps the transport representation to the domain type.
func parseDeliveryType(raw string) (order.DeliveryType, error) {
	switch raw {
	case "courier":
		return order.CourierDelivery, nil
	case "taxi":
		return order.TaxiDelivery, nil
	default:
		return order.DeliveryTypeUnknown, errs.NewValueIsInvalidError("delivery_type")
	}
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use case failures to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, commands.ErrCourierIsNotActive),
		errors.Is(err, order.ErrCourierMismatch),
		errors.Is(err, order.ErrReplacementNotRequested):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}
