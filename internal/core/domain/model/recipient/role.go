package recipient

import "mailroom/internal/pkg/errs"

// Role represents the relationship a directory entry has with the building.
type Role int

const (
	// RoleUnknown is the zero value, not valid for use.
	RoleUnknown Role = iota

	// RoleStudent marks a registered student.
	RoleStudent

	// RoleEmployee marks a staff member.
	RoleEmployee

	// RoleResident marks a permanent resident.
	RoleResident
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleStudent:  "Student",
		RoleEmployee: "Employee",
		RoleResident: "Resident",
	}
}

// ParseRole converts a directory role name to a Role.
// Fails with a ValueIsInvalidError when the name is not part of the catalog.
func ParseRole(name string) (Role, error) {
	for role, roleName := range getRoleStrings() {
		if role != RoleUnknown && roleName == name {
			return role, nil
		}
	}

	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// Validate ensures the role is one of the catalog values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}

	return nil
}

// String returns the directory name of the role.
func (r Role) String() string {
	if name, ok := getRoleStrings()[r]; ok {
		return name
	}

	return getRoleStrings()[RoleUnknown]
}
