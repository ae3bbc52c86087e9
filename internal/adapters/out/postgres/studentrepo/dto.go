// Package studentrepo reads the student records maintained by the
// identity system. The ordering core treats this table as read-only.
package studentrepo

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/student"

	"github.com/google/uuid"
)

// StudentDTO represents the canonical student record.
type StudentDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"uniqueIndex"`
	Name  string
}

// TableName specifies the database table name for students.
func (StudentDTO) TableName() string {
	return "students"
}

func toDomain(dto StudentDTO) (student.Student, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return student.Student{}, err
	}

	return student.NewStudent(id, dto.Email, dto.Name)
}
