package models

// StaffUser is a persisted operator account.
type StaffUser struct {
	StaffUserID  string `json:"staffUserID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Property is the persisted hotel-level scope.
type Property struct {
	PropertyID        string  `json:"propertyID"`
	Name              string  `json:"name"`
	CurrencyCode      string  `json:"currencyCode"`
	DefaultRatePlanID *string `json:"defaultRatePlanID"`
	AuditFields
}
