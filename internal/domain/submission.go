package domain

import "time"

// Totals are the four derived yearly cost figures of one calculation.
// Values keep full float precision; rounding happens at display time only.
type Totals struct {
	Paper      float64
	Logistics  float64
	Operations float64
	License    float64
}

// PaperWorkflow returns the combined yearly cost of staying on paper.
func (t Totals) PaperWorkflow() float64 {
	return t.Paper + t.Logistics + t.Operations
}

// NetSavings returns the yearly saving of switching to KEDO licenses.
func (t Totals) NetSavings() float64 {
	return t.PaperWorkflow() - t.License
}

// Submission is one finalized answer set with its derived totals,
// persisted per user. At most SubmissionRetention most recent submissions
// are kept per user.
type Submission struct {
	ID        string
	UserID    int64
	Answers   AnswerValues
	Totals    Totals
	CreatedAt time.Time
}

// SubmissionRetention is the number of submissions retained per user;
// older ones are evicted oldest-first.
const SubmissionRetention = 5

// TariffName returns the customer-facing plan name of the submission.
func (s *Submission) TariffName() string {
	return s.Answers.Tier.TariffName()
}
