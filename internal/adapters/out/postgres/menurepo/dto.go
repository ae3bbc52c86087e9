// Package menurepo persists menu items for the canteen.
package menurepo

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting menu items.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Price     int
	Category  string `gorm:"index"`
	Available bool
	CreatedAt time.Time
}

// TableName specifies the database table name for menu items.
func (ItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID().Bytes(),
		Name:      item.Name(),
		Price:     item.Price(),
		Category:  item.Category(),
		Available: item.Available(),
		CreatedAt: item.CreatedAt(),
	}
}

func toDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, dto.Name, dto.Price, dto.Category, dto.Available, dto.CreatedAt)
}
