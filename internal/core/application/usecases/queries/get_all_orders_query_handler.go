package queries

import (
	"context"

	"canteen/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order board from the
// database for canteen staff.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first with their
// line items attached.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.ActorRole() != kernel.RoleStaff {
		return nil, kernel.ErrForbidden
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.public_id,
			o.student_id,
			o.status,
			o.hostel_tag,
			o.created_at,
			i.menu_item_id,
			i.quantity
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		ORDER BY o.created_at DESC, o.id, i.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
