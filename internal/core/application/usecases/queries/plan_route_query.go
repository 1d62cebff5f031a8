package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrPlanRouteQueryIsNotConstructed = errors.New(
	"PlanRouteQuery must be created via NewPlanRouteQuery constructor",
)

// PlanRouteQuery asks for a visiting order over all orders currently ready
// for pickup, starting from the courier's position.
//
// The plan is a read-only snapshot: it reserves nothing, and orders on it may
// be taken by another courier before this one accepts. Acceptance reconciles
// that race by skipping orders that moved on.
type PlanRouteQuery struct { //nolint:recvcheck //using for validation
	origin kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewPlanRouteQuery creates a query to plan a route from the given position.
func NewPlanRouteQuery(lat, lon float64) (PlanRouteQuery, error) {
	q := PlanRouteQuery{guard: guard.NewConstructorGuard()}

	origin, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return PlanRouteQuery{}, err
	}
	q.origin = origin

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q PlanRouteQuery) Validate() error {
	return q.guard.Validate(ErrPlanRouteQueryIsNotConstructed)
}

// Origin returns the courier's current position.
func (q PlanRouteQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// PlanRouteLeg is one stop on the planned route. DistanceKm is the
// incremental distance from the previous stop (the origin for the first).
type PlanRouteLeg struct {
	OrderID    kernel.UUID
	ClinicName string
	Location   kernel.GeoPoint
	IsUrgent   bool
	DistanceKm float64
}

// PlanRouteDistantStop is a far outlier to be delivered individually.
type PlanRouteDistantStop struct {
	OrderID    kernel.UUID
	ClinicName string
	Location   kernel.GeoPoint
	IsUrgent   bool
	DistanceKm float64
}

// PlanRouteQueryResponse is the planned route.
type PlanRouteQueryResponse struct {
	Grouped       []PlanRouteLeg
	Distant       []PlanRouteDistantStop
	TotalKm       float64
	NavigationURL string
}
