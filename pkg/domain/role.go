package domain

import (
	"strings"

	dErrors "roster/pkg/domain-errors"
)

// Role is the authorization tier carried by an identity claim.
//
// Invariants:
//   - Roles form a total order: member < nco < command < admin
//   - RoleNone is the absence of a claim and never satisfies a requirement
//   - Values outside the four known roles are treated exactly like RoleNone
//
// Usage: construct via ParseRole at trust boundaries; comparisons go through
// MeetsOrExceeds so unknown values cannot slip through an ordering check.
type Role uint8

const (
	RoleNone Role = iota
	RoleMember
	RoleNCO
	RoleCommand
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleMember:  "member",
	RoleNCO:     "nco",
	RoleCommand: "command",
	RoleAdmin:   "admin",
}

var roleLabels = map[Role]string{
	RoleMember:  "Member",
	RoleNCO:     "Non-Commissioned Officer",
	RoleCommand: "Command",
	RoleAdmin:   "Administrator",
}

// ParseRole converts a claim value into a Role. The empty string yields RoleNone
// without error: a missing role claim means no privilege, not a malformed token.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RoleNone, nil
	}
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return RoleNone, dErrors.New(dErrors.CodeInvalidInput, "unknown role: "+s)
}

// IsValid reports whether r is one of the four known roles.
func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

// MeetsOrExceeds reports whether r is at or above required in the hierarchy.
func (r Role) MeetsOrExceeds(required Role) bool {
	return MeetsOrExceeds(r, required)
}

// MeetsOrExceeds is false for an absent or unknown actor role, otherwise it
// compares hierarchy ranks.
func MeetsOrExceeds(actor Role, required Role) bool {
	if !actor.IsValid() || !required.IsValid() {
		return false
	}
	return actor >= required
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return ""
}

// Label is the display name shown next to a member.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return "No Role"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}
