// Package queries contains read-only operations over the persisted state.
// Query handlers bypass the domain model and read projections directly from
// the database, following the CQRS split used across the application layer.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetReadyOrdersQueryIsNotConstructed = errors.New(
	"GetReadyOrdersQuery must be created via NewGetReadyOrdersQuery constructor",
)

// GetReadyOrdersQuery retrieves all courier-delivery orders waiting for
// pickup, together with their destination coordinates. This projection is
// the input for route planning.
type GetReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyOrdersQuery creates a query to retrieve orders ready for pickup.
func NewGetReadyOrdersQuery() GetReadyOrdersQuery {
	return GetReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyOrdersQueryIsNotConstructed)
}

// GetReadyOrdersQueryResponse is one order awaiting pickup with its
// destination clinic.
type GetReadyOrdersQueryResponse struct {
	OrderID    kernel.UUID
	ClinicName string
	Location   kernel.GeoPoint
	IsUrgent   bool
}
