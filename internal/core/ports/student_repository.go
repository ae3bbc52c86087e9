package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/student"
)

// StudentRepository reads owner records maintained by the identity
// system. The ordering core never writes students; it reads them to
// revalidate placement claims against canonical attributes.
type StudentRepository interface {
	// Get retrieves a student by identity.
	Get(ctx context.Context, id kernel.UUID) (student.Student, error)
}
