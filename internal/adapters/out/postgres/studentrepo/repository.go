package studentrepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/student"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStudentRepository implements StudentRepository using GORM.
// Read-only: student records are written by the identity system.
type GormStudentRepository struct {
	db *gorm.DB
}

// NewGormStudentRepository creates a new GORM student repository.
func NewGormStudentRepository(db *gorm.DB) *GormStudentRepository {
	return &GormStudentRepository{db: db}
}

// Get retrieves a student by ID.
func (r *GormStudentRepository) Get(ctx context.Context, id kernel.UUID) (student.Student, error) {
	if err := id.Validate(); err != nil {
		return student.Student{}, err
	}

	var dto StudentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return student.Student{}, errs.NewObjectNotFoundError("student", id.String())
		}
		return student.Student{}, err
	}

	return toDomain(dto)
}
