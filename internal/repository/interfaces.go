package repository

import (
	"context"
	"time"

	"github.com/avoevodin/kedobot/internal/domain"
)

// SubmissionRepo stores finalized calculations, capped per user at
// domain.SubmissionRetention most recent entries.
type SubmissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	LatestByUser(ctx context.Context, userID int64) (*domain.Submission, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Submission, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	// PruneOld deletes the oldest submissions of a user beyond keep.
	PruneOld(ctx context.Context, userID int64, keep int) error
	// CountDistinctUsers counts users with at least one submission in [from, to).
	CountDistinctUsers(ctx context.Context, from, to time.Time) (int, error)
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// RateRepo reads and updates the singleton reference cost tables. Every
// table has exactly one row with id 'default', seeded at migration time;
// a missing row is a configuration error surfaced as ErrNotFound.
type RateRepo interface {
	PaperCosts(ctx context.Context) (*domain.PaperCosts, error)
	LicenseCosts(ctx context.Context) (*domain.LicenseCosts, error)
	TypicalOperations(ctx context.Context) (*domain.TypicalOperations, error)
	Rates(ctx context.Context) (*domain.Rates, error)
	UpdatePaperCosts(ctx context.Context, p *domain.PaperCosts) error
	UpdateLicenseCosts(ctx context.Context, l *domain.LicenseCosts) error
	UpdateTypicalOperations(ctx context.Context, o *domain.TypicalOperations) error
}
