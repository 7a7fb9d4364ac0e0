package models

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

type Role string

const (
	StudentRole              Role = "student"
	ITStaffRole              Role = "it_staff"
	EnvironmentalOfficerRole Role = "environmental_officer"
	AdminRole                Role = "admin"
)

// DefaultRole is what an authenticated user resolves to when no role rows exist.
const DefaultRole = StudentRole

var knownRoles = mapset.NewThreadUnsafeSet(StudentRole, ITStaffRole, EnvironmentalOfficerRole, AdminRole)

var staffRoles = mapset.NewThreadUnsafeSet(ITStaffRole, EnvironmentalOfficerRole, AdminRole)

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !knownRoles.Contains(r) {
		return "", NewValidationError("role", "unknown role "+s)
	}
	return r, nil
}

// RoleSet is an unordered set of roles. Capability checks are membership
// tests; no role outranks another.
type RoleSet struct {
	set mapset.Set[Role]
}

func NewRoleSet(roles ...Role) RoleSet {
	return RoleSet{set: mapset.NewThreadUnsafeSet(roles...)}
}

// RoleSetFromStrings drops values that are not known roles.
func RoleSetFromStrings(values []string) RoleSet {
	rs := NewRoleSet()
	for _, v := range values {
		if r, err := ParseRole(v); err == nil {
			rs.set.Add(r)
		}
	}
	return rs
}

// WithDefault returns the set itself, or {student} when it is empty.
func (rs RoleSet) WithDefault() RoleSet {
	if rs.Len() == 0 {
		return NewRoleSet(DefaultRole)
	}
	return rs
}

func (rs RoleSet) Len() int {
	if rs.set == nil {
		return 0
	}
	return rs.set.Cardinality()
}

func (rs RoleSet) Has(role Role) bool {
	return rs.set != nil && rs.set.Contains(role)
}

func (rs RoleSet) HasAny(roles ...Role) bool {
	return rs.set != nil && rs.set.ContainsAny(roles...)
}

// IsStaff is true iff the set intersects {it_staff, environmental_officer, admin}.
func (rs RoleSet) IsStaff() bool {
	return rs.set != nil && rs.set.Intersect(staffRoles).Cardinality() > 0
}

// Strings returns the roles sorted, for stable serialization.
func (rs RoleSet) Strings() []string {
	out := make([]string, 0, rs.Len())
	if rs.set == nil {
		return out
	}
	for r := range rs.set.Iter() {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

type UserRole struct {
	UserID uuid.UUID `json:"user_id" db:"user_id"`
	Role   Role      `json:"role" db:"role"`
}
