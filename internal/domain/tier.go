package domain

// LicenseTier identifies the KEDO pricing plan applied to a calculation.
type LicenseTier string

const (
	TierLite       LicenseTier = "lite"
	TierStandard   LicenseTier = "standard"
	TierEnterprise LicenseTier = "enterprise"
)

// Employee-count thresholds of the pricing model. Companies at or below
// ChoiceMaxEmployees pick Lite or Standard themselves; larger companies
// are assigned a tier automatically.
const (
	ChoiceMaxEmployees    = 499
	EnterpriseMinEmployees = 2000
)

// AutoTier returns the tier assigned for the given employee count and
// whether the assignment is automatic. For counts at or below
// ChoiceMaxEmployees the user chooses interactively and ok is false.
func AutoTier(employeeCount int) (tier LicenseTier, ok bool) {
	switch {
	case employeeCount >= EnterpriseMinEmployees:
		return TierEnterprise, true
	case employeeCount > ChoiceMaxEmployees:
		return TierStandard, true
	default:
		return "", false
	}
}

// TariffName returns the customer-facing plan name for a tier.
func (t LicenseTier) TariffName() string {
	switch t {
	case TierLite:
		return "HRlink Lite"
	case TierEnterprise:
		return "HRlink Enterprise"
	default:
		return "HRlink Standard"
	}
}

// Valid reports whether t is one of the known tiers.
func (t LicenseTier) Valid() bool {
	switch t {
	case TierLite, TierStandard, TierEnterprise:
		return true
	}
	return false
}
