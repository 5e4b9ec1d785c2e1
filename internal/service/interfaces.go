package service

import (
	"context"
	"time"

	"github.com/avoevodin/kedobot/internal/domain"
	"github.com/avoevodin/kedobot/internal/flow"
)

// CalculatorService finalizes completed answer sets and serves the
// submission history. It implements flow.Finalizer.
type CalculatorService interface {
	Finalize(ctx context.Context, userID int64, answers domain.AnswerValues) (*flow.Result, error)
	History(ctx context.Context, userID int64) ([]*domain.Submission, error)
}

// LeadService validates and forwards captured contacts to the CRM.
// It implements flow.LeadSubmitter.
type LeadService interface {
	Submit(ctx context.Context, userID int64, contact domain.Contact) error
}

// StatsOverview is the audience summary shown to operators: distinct
// users with at least one finished calculation per trailing window.
type StatsOverview struct {
	Day     int
	Week    int
	Month   int
	Quarter int
	Year    int
	Total   int
}

// StatsService reports usage statistics.
type StatsService interface {
	Overview(ctx context.Context, now time.Time) (*StatsOverview, error)
}

// AnnounceService delivers an operator message to every known user.
type AnnounceService interface {
	// Broadcast sends text to all users and returns the number of
	// successful deliveries.
	Broadcast(ctx context.Context, text string) (int, error)
}

// Sender delivers a message to one chat. Implemented by the transport.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// RateService reads and updates the reference cost tables used by the
// calculation engine.
type RateService interface {
	Rates(ctx context.Context) (*domain.Rates, error)
	UpdatePaperCosts(ctx context.Context, p *domain.PaperCosts) error
	UpdateLicenseCosts(ctx context.Context, l *domain.LicenseCosts) error
	UpdateTypicalOperations(ctx context.Context, o *domain.TypicalOperations) error
}
