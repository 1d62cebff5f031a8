package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// ReadyOrdersProvider supplies the candidate stops for route planning.
// GetReadyOrdersQueryHandler is the production implementation.
type ReadyOrdersProvider interface {
	Handle(ctx context.Context, query GetReadyOrdersQuery) ([]GetReadyOrdersQueryResponse, error)
}

// PlanRouteQueryHandler composes the ready-order projection with the route
// planner and annotates the result for display.
type PlanRouteQueryHandler struct {
	readyOrders ReadyOrdersProvider
	planner     services.RoutePlanner
}

// NewPlanRouteQueryHandler creates a handler for route planning queries.
func NewPlanRouteQueryHandler(
	readyOrders ReadyOrdersProvider, planner services.RoutePlanner,
) PlanRouteQueryHandler {
	return PlanRouteQueryHandler{
		readyOrders: readyOrders,
		planner:     planner,
	}
}

// Handle executes the planning query.
// With no orders ready the response is empty, never an error.
func (h PlanRouteQueryHandler) Handle(
	ctx context.Context,
	query PlanRouteQuery,
) (PlanRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PlanRouteQueryResponse{}, err
	}

	ready, err := h.readyOrders.Handle(ctx, NewGetReadyOrdersQuery())
	if err != nil {
		return PlanRouteQueryResponse{}, err
	}

	byOrderID := make(map[string]GetReadyOrdersQueryResponse, len(ready))
	stops := make([]services.Stop, 0, len(ready))
	for _, r := range ready {
		byOrderID[r.OrderID.String()] = r
		stops = append(stops, services.Stop{OrderID: r.OrderID, Location: r.Location})
	}

	plan, err := h.planner.Plan(query.Origin(), stops)
	if err != nil {
		return PlanRouteQueryResponse{}, err
	}

	resp := PlanRouteQueryResponse{
		TotalKm:       plan.TotalKm,
		NavigationURL: h.planner.NavigationURL(plan),
	}

	for _, leg := range plan.Grouped {
		source := byOrderID[leg.OrderID.String()]
		resp.Grouped = append(resp.Grouped, PlanRouteLeg{
			OrderID:    leg.OrderID,
			ClinicName: source.ClinicName,
			Location:   leg.Location,
			IsUrgent:   source.IsUrgent,
			DistanceKm: leg.LegKm,
		})
	}

	for _, stop := range plan.Distant {
		source := byOrderID[stop.OrderID.String()]
		distanceKm, distErr := query.Origin().DistanceKm(stop.Location)
		if distErr != nil {
			return PlanRouteQueryResponse{}, distErr
		}
		resp.Distant = append(resp.Distant, PlanRouteDistantStop{
			OrderID:    stop.OrderID,
			ClinicName: source.ClinicName,
			Location:   stop.Location,
			IsUrgent:   source.IsUrgent,
			DistanceKm: distanceKm,
		})
	}

	return resp, nil
}
