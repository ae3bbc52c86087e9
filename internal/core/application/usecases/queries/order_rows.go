package queries

import (
	"database/sql"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// scanOrderRows folds a joined orders/order_items result set into
// order responses. Rows arrive grouped by order id, one row per line
// item.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			rawID        uuid.UUID
			publicID     string
			rawStudentID uuid.UUID
			status       int
			hostelTag    string
			createdAt    time.Time
			rawMenuItem  uuid.UUID
			quantity     int
		)

		err := rows.Scan(
			&rawID,
			&publicID,
			&rawStudentID,
			&status,
			&hostelTag,
			&createdAt,
			&rawMenuItem,
			&quantity,
		)
		if err != nil {
			return nil, err
		}

		id, err := kernel.UUIDFromBytes(rawID[:])
		if err != nil {
			return nil, err
		}

		menuItemID, err := kernel.UUIDFromBytes(rawMenuItem[:])
		if err != nil {
			return nil, err
		}

		item := OrderItemResponse{MenuItemID: menuItemID, Quantity: quantity}

		if n := len(orders); n > 0 && orders[n-1].ID.IsEqual(id) {
			orders[n-1].Items = append(orders[n-1].Items, item)
			continue
		}

		studentID, err := kernel.UUIDFromBytes(rawStudentID[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, OrderResponse{
			ID:        id,
			PublicID:  publicID,
			StudentID: studentID,
			Status:    order.Status(status).String(),
			HostelTag: hostelTag,
			CreatedAt: createdAt,
			Items:     []OrderItemResponse{item},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
