// Package student provides the read model for order owners. Credential
// issuance and verification live outside this service; the core only
// needs the canonical attributes required to validate order placement.
package student

import (
	"fmt"
	"strings"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// Hostel choices accepted on placement. Anything else voids the
// first-year tag rather than failing the order.
const (
	HostelBoys  = "boys"
	HostelGirls = "girls"
)

// Student is the canonical owner record as stored by the identity
// system. The ordering core reads it to revalidate client claims; it
// never writes it.
type Student struct {
	id    kernel.UUID
	email string
	name  string
}

// NewStudent creates a student read model entry.
func NewStudent(id kernel.UUID, email, name string) (Student, error) {
	if err := id.Validate(); err != nil {
		return Student{}, err
	}
	if email == "" {
		return Student{}, errs.NewValueIsRequiredError("email")
	}

	return Student{
		id:    id,
		email: strings.ToLower(email),
		name:  name,
	}, nil
}

// ID returns the student's identity.
func (s Student) ID() kernel.UUID {
	return s.id
}

// Email returns the student's canonical email, lowercased.
func (s Student) Email() string {
	return s.email
}

// Name returns the student's display name.
func (s Student) Name() string {
	return s.name
}

// FirstYearHostelTag computes the delivery label for a claimed
// first-year order. The claim is never trusted on its own: the tag is
// produced only when the student's canonical email carries the current
// year's two-digit prefix, the first-year flag is set, and the hostel
// choice is one of the known hostels. In every other case the tag is
// empty and the order proceeds untagged.
func (s Student) FirstYearHostelTag(claimedFirstYear bool, hostelChoice string, now time.Time) string {
	if !claimedFirstYear {
		return ""
	}

	choice := strings.ToLower(hostelChoice)
	if choice != HostelBoys && choice != HostelGirls {
		return ""
	}

	currentYY := fmt.Sprintf("%02d", now.Year()%100)
	if !strings.HasPrefix(s.email, currentYY) {
		return ""
	}

	if choice == HostelBoys {
		return "First Year – Boys Hostel"
	}
	return "First Year – Girls Hostel"
}
