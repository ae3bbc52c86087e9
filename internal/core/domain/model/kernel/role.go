package kernel

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
)

// ErrForbidden is returned when a verified actor's role does not permit
// the requested operation. The operation is rejected with no state change.
var ErrForbidden = errors.New("operation is not permitted for this role")

// Role is the verified actor role presented by the authentication gate.
// The core trusts it as already authenticated; it only checks which
// operations the role may invoke.
type Role string

const (
	// RoleStudent places orders and reads its own.
	RoleStudent Role = "student"

	// RoleStaff manages the menu and drives order transitions.
	RoleStaff Role = "staff"
)

// RoleFromString parses an externally supplied role name.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleStaff:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a known role", s),
		)
	}
}

// Validate checks that the role is one of the known roles.
func (r Role) Validate() error {
	switch r {
	case RoleStudent, RoleStaff:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a known role", string(r)),
		)
	}
}

// String returns the wire name of the role.
func (r Role) String() string {
	return string(r)
}
