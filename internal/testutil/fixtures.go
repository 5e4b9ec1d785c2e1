package testutil

import (
	"time"

	"github.com/avoevodin/kedobot/internal/domain"
	"github.com/google/uuid"
)

// AnswerOption mutates a fixture answer set.
type AnswerOption func(*domain.AnswerValues)

func WithEmployeeCount(n int) AnswerOption {
	return func(a *domain.AnswerValues) { a.EmployeeCount = n }
}

func WithTier(t domain.LicenseTier) AnswerOption {
	return func(a *domain.AnswerValues) { a.Tier = t }
}

func WithCourier(cost, pct float64) AnswerOption {
	return func(a *domain.AnswerValues) {
		a.CourierCost = cost
		a.HRDeliveryPct = pct
	}
}

// NewTestAnswers returns a complete, realistic answer set.
func NewTestAnswers(opts ...AnswerOption) domain.AnswerValues {
	a := domain.AnswerValues{
		OrganizationName:  "ООО Ромашка",
		EmployeeCount:     100,
		HRSpecialistCount: 2,
		Tier:              domain.TierStandard,
		DocsPerEmployee:   30,
		PagesPerDocument:  1.5,
		TurnoverPct:       10,
		AverageSalary:     80000,
		CourierCost:       300,
		HRDeliveryPct:     20,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// NewTestSubmission returns a persisted-shape submission for a user.
func NewTestSubmission(userID int64, createdAt time.Time, opts ...AnswerOption) *domain.Submission {
	return &domain.Submission{
		ID:      uuid.New().String(),
		UserID:  userID,
		Answers: NewTestAnswers(opts...),
		Totals: domain.Totals{
			Paper:      200000,
			Logistics:  30000,
			Operations: 150000,
			License:    140000,
		},
		CreatedAt: createdAt,
	}
}

// NewTestRates returns reference tables with round numbers that make
// expected totals easy to derive by hand.
func NewTestRates() domain.Rates {
	return domain.Rates{
		Paper: domain.PaperCosts{
			ID: "default", PageCost: 0.5, PrintingCost: 0.5, StorageCost: 0.5, RentCost: 0.5,
		},
		License: domain.LicenseCosts{
			ID: "default", MainFee: 50000, HRFee: 10000,
			EmployeeFeeLite: 500, EmployeeFeeStandard: 700, EmployeeFeeEnterprise: 600,
		},
		Operations: domain.TypicalOperations{
			ID: "default", PrintingMin: 2, SigningMin: 5, ArchivingMin: 3,
		},
	}
}
