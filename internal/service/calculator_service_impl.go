package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/avoevodin/kedobot/internal/calc"
	"github.com/avoevodin/kedobot/internal/db"
	"github.com/avoevodin/kedobot/internal/domain"
	"github.com/avoevodin/kedobot/internal/flow"
	"github.com/avoevodin/kedobot/internal/repository"
)

type calculatorService struct {
	rates       repository.RateRepo
	submissions repository.SubmissionRepo
	uow         db.UnitOfWork

	workingMinutes float64

	// notify, when set, receives a notice on a user's first submission.
	notify       Sender
	notifyChatID int64
}

// NewCalculatorService wires the cost engine to the reference tables
// and the submission store. workingMinutes of zero means the default.
func NewCalculatorService(rates repository.RateRepo, submissions repository.SubmissionRepo, uow db.UnitOfWork, workingMinutes float64) *calculatorService {
	return &calculatorService{
		rates:          rates,
		submissions:    submissions,
		uow:            uow,
		workingMinutes: workingMinutes,
	}
}

// WithNewUserNotice makes the service announce first-time users to the
// given chat.
func (s *calculatorService) WithNewUserNotice(sender Sender, chatID int64) *calculatorService {
	s.notify = sender
	s.notifyChatID = chatID
	return s
}

func (s *calculatorService) Finalize(ctx context.Context, userID int64, answers domain.AnswerValues) (*flow.Result, error) {
	rates, err := s.rates.Rates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading rates: %w", err)
	}

	totals, err := calc.Compute(calc.Inputs{
		Answers:                answers,
		WorkingMinutesPerMonth: s.workingMinutes,
	}, *rates)
	if err != nil {
		return nil, fmt.Errorf("computing totals: %w", err)
	}

	sub := &domain.Submission{
		ID:        uuid.New().String(),
		UserID:    userID,
		Answers:   answers,
		Totals:    totals,
		CreatedAt: time.Now().UTC(),
	}

	firstSubmission := false
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSubs := repository.NewSQLiteSubmissionRepo(tx)

		n, err := txSubs.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		firstSubmission = n == 0

		if err := txSubs.Create(ctx, sub); err != nil {
			return err
		}
		return txSubs.PruneOld(ctx, userID, domain.SubmissionRetention)
	})
	if err != nil {
		return nil, fmt.Errorf("storing submission: %w", err)
	}

	if firstSubmission && s.notify != nil && s.notifyChatID != 0 {
		notice := fmt.Sprintf("Новый пользователь %d завершил первый расчёт.", userID)
		if err := s.notify.Send(ctx, s.notifyChatID, notice); err != nil {
			log.Printf("new user notice for %d: %v", userID, err)
		}
	}

	return &flow.Result{
		Submission:  sub,
		EmployeeFee: rates.License.EmployeeFee(answers.Tier),
	}, nil
}

func (s *calculatorService) History(ctx context.Context, userID int64) ([]*domain.Submission, error) {
	return s.submissions.ListByUser(ctx, userID)
}
