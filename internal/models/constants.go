package models

// Currency codes
const (
	CurrencyCAD = "CAD"
	CurrencyKRW = "KRW"
)

// Default profile values
const (
	DefaultCountry        = "Canada"
	DefaultCity           = "Toronto"
	DefaultDurationMonths = 12
)

// DefaultExchangeRate is the fallback number of KRW per CAD.
const DefaultExchangeRate = 1000

// Persisted blob keys
const (
	KeyProfile       = "studyProfile"
	KeyChecklist     = "checklist"
	KeyInitialCosts  = "initialCosts"
	KeyMonthlyBudget = "monthlyBudget"
	KeyExchangeRate  = "exchangeRate"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
)
