package queries

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrGetStudentOrdersQueryIsNotConstructed = errors.New(
		"GetStudentOrdersQuery must be created via NewGetStudentOrdersQuery constructor",
	)
)

// GetStudentOrdersQuery retrieves the retained orders belonging to one
// student for their order history view. Students see their own orders
// only; the owning identity comes from the verified session, never from
// a request parameter.
type GetStudentOrdersQuery struct {
	actorRole kernel.Role
	studentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStudentOrdersQuery creates a query for a student's own orders.
func NewGetStudentOrdersQuery(actorRole kernel.Role, studentID kernel.UUID) (GetStudentOrdersQuery, error) {
	if err := errors.Join(actorRole.Validate(), studentID.Validate()); err != nil {
		return GetStudentOrdersQuery{}, err
	}

	return GetStudentOrdersQuery{
		actorRole: actorRole,
		studentID: studentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStudentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStudentOrdersQueryIsNotConstructed)
}

// ActorRole returns the verified role of the requester.
func (q GetStudentOrdersQuery) ActorRole() kernel.Role {
	return q.actorRole
}

// StudentID returns the owner whose orders are requested.
func (q GetStudentOrdersQuery) StudentID() kernel.UUID {
	return q.studentID
}
