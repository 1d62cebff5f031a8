package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReadyOrdersQueryHandler reads the ready-for-pickup projection straight
// from the database, joining each order with its destination clinic.
//
// Only courier-delivery orders appear: taxi orders never enter the pickup
// pool. Urgent orders come first so couriers see them at the top.
type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyOrdersQueryHandler creates a handler for ready order queries.
// Requires a GORM database connection for query execution.
func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyOrdersQuery,
) ([]GetReadyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetReadyOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			c.name,
			c.lat,
			c.lon,
			o.is_urgent
		FROM orders o
		JOIN clinics c ON c.id = o.clinic_id
		WHERE o.status = ? AND o.delivery_type = ?
		ORDER BY o.is_urgent DESC, o.created_at
	`, order.ReadyForPickup, order.CourierDelivery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetReadyOrdersQueryResponse
		var id uuid.UUID
		var lat, lon float64

		if err = rows.Scan(&id, &resp.ClinicName, &lat, &lon, &resp.IsUrgent); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = orderID

		location, locErr := kernel.NewGeoPoint(lat, lon)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
