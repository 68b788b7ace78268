package domain

// StaffRole is the role a staff user holds across the property.
// Permission gating happens at the HTTP layer; the core services only
// receive the acting user's ID for audit fields.
type StaffRole string

const (
	RoleFrontDesk StaffRole = "FRONT_DESK"
	RoleManager   StaffRole = "MANAGER"
)

// roleRank orders roles for minimum-role checks.
var roleRank = map[StaffRole]int{
	RoleFrontDesk: 1,
	RoleManager:   2,
}

// Satisfies reports whether the role meets or exceeds required.
func (r StaffRole) Satisfies(required StaffRole) bool {
	return roleRank[r] >= roleRank[required]
}

// Property is the hotel-level scope every engine operation is threaded with.
// There is no ambient "current property"; callers pass the ID explicitly.
type Property struct {
	PropertyID        string  `json:"propertyID"`
	Name              string  `json:"name"`
	CurrencyCode      string  `json:"currencyCode"`
	DefaultRatePlanID *string `json:"defaultRatePlanID"` // Nullable FK -> rate_plans
	AuditFields
}

// StaffUser is an authenticated operator of the property-management system.
type StaffUser struct {
	StaffUserID  string    `json:"staffUserID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         StaffRole `json:"role"`
	IsActive     bool      `json:"isActive"`
	AuditFields
}
