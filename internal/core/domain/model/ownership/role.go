package ownership

import (
	"fmt"

	"dinehub/internal/pkg/errs"
)

// Role describes the level of control a user has over a restaurant.
//
// Role is a value object; values from external sources (API, database)
// must be validated or parsed through RoleFromString before use.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// RoleOwner grants full control over the restaurant, including
	// managing other ownership relationships.
	RoleOwner

	// RoleManager grants day-to-day management rights (menu, dishes)
	// without ownership administration.
	RoleManager

	// RoleStaff grants limited operational access.
	RoleStaff
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		RoleOwner:   "owner",
		RoleManager: "manager",
		RoleStaff:   "staff",
	}
}

// getValidRoleStrings returns only the roles that may be persisted.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		RoleOwner:   "owner",
		RoleManager: "manager",
		RoleStaff:   "staff",
	}
}

// RoleFromString parses a role name into a Role value.
// Returns a value-is-invalid error for anything outside {owner, manager, staff}.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are: owner, manager, staff.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
