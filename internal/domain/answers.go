package domain

// AnswerSet accumulates the answers of one in-progress calculation.
// Pointer fields distinguish "not asked yet" from a legitimate zero.
type AnswerSet struct {
	OrganizationName  string
	EmployeeCount     *int
	HRSpecialistCount *int
	Tier              LicenseTier
	DocsPerEmployee   *float64
	PagesPerDocument  *float64
	TurnoverPct       *float64
	AverageSalary     *float64
	CourierCost       *float64
	HRDeliveryPct     *float64
}

// answerFields maps the human-readable key of every required answer to a
// presence check, in question order.
var answerFields = []struct {
	key     string
	present func(*AnswerSet) bool
}{
	{"employee_count", func(a *AnswerSet) bool { return a.EmployeeCount != nil }},
	{"license_tier", func(a *AnswerSet) bool { return a.Tier.Valid() }},
	{"hr_specialist_count", func(a *AnswerSet) bool { return a.HRSpecialistCount != nil }},
	{"documents_per_employee", func(a *AnswerSet) bool { return a.DocsPerEmployee != nil }},
	{"pages_per_document", func(a *AnswerSet) bool { return a.PagesPerDocument != nil }},
	{"turnover_percentage", func(a *AnswerSet) bool { return a.TurnoverPct != nil }},
	{"average_salary", func(a *AnswerSet) bool { return a.AverageSalary != nil }},
	{"courier_delivery_cost", func(a *AnswerSet) bool { return a.CourierCost != nil }},
	{"hr_delivery_percentage", func(a *AnswerSet) bool { return a.HRDeliveryPct != nil }},
}

// MissingKeys returns the keys of required answers that are not present
// yet, in question order. HRDeliveryPct counts as required because the
// form defaults it to zero when the courier question is skipped.
func (a *AnswerSet) MissingKeys() []string {
	var missing []string
	for _, f := range answerFields {
		if !f.present(a) {
			missing = append(missing, f.key)
		}
	}
	return missing
}

// Complete reports whether every required answer is present.
func (a *AnswerSet) Complete() bool {
	return len(a.MissingKeys()) == 0
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatValue(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Snapshot returns the answers as plain values, zeroing absent fields.
// Callers must check Complete first; Snapshot does not.
func (a *AnswerSet) Snapshot() AnswerValues {
	return AnswerValues{
		OrganizationName:  a.OrganizationName,
		EmployeeCount:     intValue(a.EmployeeCount),
		HRSpecialistCount: intValue(a.HRSpecialistCount),
		Tier:              a.Tier,
		DocsPerEmployee:   floatValue(a.DocsPerEmployee),
		PagesPerDocument:  floatValue(a.PagesPerDocument),
		TurnoverPct:       floatValue(a.TurnoverPct),
		AverageSalary:     floatValue(a.AverageSalary),
		CourierCost:       floatValue(a.CourierCost),
		HRDeliveryPct:     floatValue(a.HRDeliveryPct),
	}
}

// AnswerValues is a completed, flattened answer set.
type AnswerValues struct {
	OrganizationName  string
	EmployeeCount     int
	HRSpecialistCount int
	Tier              LicenseTier
	DocsPerEmployee   float64
	PagesPerDocument  float64
	TurnoverPct       float64
	AverageSalary     float64
	CourierCost       float64
	HRDeliveryPct     float64
}
