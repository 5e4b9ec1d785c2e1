package domain

// PaperCosts holds the per-page reference costs of keeping documents on
// paper. A single row with ID "default" is seeded at migration time.
type PaperCosts struct {
	ID           string
	PageCost     float64
	PrintingCost float64
	StorageCost  float64
	RentCost     float64
}

// PerPage returns the combined cost of producing and keeping one page.
func (p PaperCosts) PerPage() float64 {
	return p.PageCost + p.PrintingCost + p.StorageCost + p.RentCost
}

// LicenseCosts holds the reference license fees. EmployeeFee* are yearly
// per-employee fees by tier; the enterprise fee is lower than standard.
type LicenseCosts struct {
	ID                    string
	MainFee               float64
	HRFee                 float64
	EmployeeFeeLite       float64
	EmployeeFeeStandard   float64
	EmployeeFeeEnterprise float64
}

// EmployeeFee returns the per-employee yearly fee for the given tier.
// Unknown tiers fall back to the standard fee.
func (l LicenseCosts) EmployeeFee(tier LicenseTier) float64 {
	switch tier {
	case TierLite:
		return l.EmployeeFeeLite
	case TierEnterprise:
		return l.EmployeeFeeEnterprise
	default:
		return l.EmployeeFeeStandard
	}
}

// TypicalOperations holds the average minutes an HR specialist spends on
// one paper document, broken down by operation.
type TypicalOperations struct {
	ID           string
	PrintingMin  float64
	SigningMin   float64
	ArchivingMin float64
}

// TotalMin returns the total handling minutes per document.
func (o TypicalOperations) TotalMin() float64 {
	return o.PrintingMin + o.SigningMin + o.ArchivingMin
}

// Rates bundles the three reference tables for a calculation run.
type Rates struct {
	Paper      PaperCosts
	License    LicenseCosts
	Operations TypicalOperations
}
