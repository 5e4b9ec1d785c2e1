// Package calc derives the yearly cost comparison from a completed
// answer set and the reference cost tables. Everything here is pure:
// same inputs, same totals.
package calc

import (
	"errors"

	"github.com/avoevodin/kedobot/internal/domain"
)

// DefaultWorkingMinutesPerMonth is the divisor used to turn a monthly
// salary into a cost per minute.
const DefaultWorkingMinutesPerMonth = 10080

// ErrBadWorkingMinutes indicates a non-positive working-minutes divisor.
// This is a configuration error, not a user-input one.
var ErrBadWorkingMinutes = errors.New("working minutes per month must be positive")

// Inputs is a fully-validated answer set plus engine configuration.
type Inputs struct {
	Answers                domain.AnswerValues
	WorkingMinutesPerMonth float64
}

// DocumentsPerYear returns the yearly signed-document volume, including
// the extra paperwork caused by staff turnover.
func DocumentsPerYear(a domain.AnswerValues) float64 {
	return float64(a.EmployeeCount) * a.DocsPerEmployee * (1 + a.TurnoverPct/100)
}

// PagesPerYear returns the yearly printed-page volume.
func PagesPerYear(a domain.AnswerValues) float64 {
	return DocumentsPerYear(a) * a.PagesPerDocument
}

// Compute derives the four cost totals from inputs and reference rates.
// A zero WorkingMinutesPerMonth falls back to the default; a negative
// one is rejected.
func Compute(in Inputs, rates domain.Rates) (domain.Totals, error) {
	minutes := in.WorkingMinutesPerMonth
	if minutes == 0 {
		minutes = DefaultWorkingMinutesPerMonth
	}
	if minutes < 0 {
		return domain.Totals{}, ErrBadWorkingMinutes
	}

	a := in.Answers
	docsPerYear := DocumentsPerYear(a)
	pagesPerYear := docsPerYear * a.PagesPerDocument

	costPerMinute := a.AverageSalary / minutes

	totals := domain.Totals{
		Paper:      pagesPerYear * rates.Paper.PerPage(),
		Logistics:  a.CourierCost * (a.HRDeliveryPct / 100) * docsPerYear,
		Operations: rates.Operations.TotalMin() * costPerMinute * docsPerYear,
		License: rates.License.MainFee +
			rates.License.HRFee*float64(a.HRSpecialistCount) +
			rates.License.EmployeeFee(a.Tier)*float64(a.EmployeeCount),
	}
	return totals, nil
}
