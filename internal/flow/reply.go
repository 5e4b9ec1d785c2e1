package flow

import (
	"context"

	"github.com/avoevodin/kedobot/internal/domain"
)

// Option is one button of an inline keyboard.
type Option struct {
	Label  string
	Action Action
}

// Reply is one outbound message: text, optional keyboard and an optional
// request to render the cost-comparison chart. The transport decides how
// each part is displayed.
type Reply struct {
	Text    string
	Options []Option
	Chart   *domain.Totals
}

// Result is what the calculator hands back when a form completes: the
// persisted submission plus the per-employee fee used for the tier, for
// the results screen.
type Result struct {
	Submission  *domain.Submission
	EmployeeFee float64
}

// Finalizer computes totals for a completed answer set and persists the
// submission. Implemented by the calculator service.
type Finalizer interface {
	Finalize(ctx context.Context, userID int64, answers domain.AnswerValues) (*Result, error)
}

// LeadSubmitter hands a completed contact record to the CRM collaborator.
// A *domain.MissingFieldsError return degrades gracefully: the flow tells
// the user what is missing instead of submitting a partial lead.
type LeadSubmitter interface {
	Submit(ctx context.Context, userID int64, contact domain.Contact) error
}
