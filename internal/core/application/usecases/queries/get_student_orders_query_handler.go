package queries

import (
	"context"

	"canteen/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetStudentOrdersQueryHandler retrieves one student's retained orders
// from the database.
type GetStudentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStudentOrdersQueryHandler creates a handler for order history queries.
func NewGetStudentOrdersQueryHandler(db *gorm.DB) GetStudentOrdersQueryHandler {
	return GetStudentOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first with their
// line items attached. Orders past the retention window never appear:
// the expiry job removes them from the table.
func (h GetStudentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStudentOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.ActorRole() != kernel.RoleStudent {
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
		WHERE o.student_id = ?
		ORDER BY o.created_at DESC, o.id, i.id
	`, query.StudentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
