package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avoevodin/kedobot/internal/db"
	"github.com/avoevodin/kedobot/internal/domain"
)

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(conn db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: conn}
}

const submissionColumns = `id, user_id, organization_name, employee_count, hr_specialist_count,
	license_tier, docs_per_employee, pages_per_document, turnover_pct, average_salary,
	courier_cost, hr_delivery_pct, total_paper, total_logistics, total_operations,
	total_license, created_at`

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	query := `INSERT INTO submissions (` + submissionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.Answers.OrganizationName,
		s.Answers.EmployeeCount,
		s.Answers.HRSpecialistCount,
		string(s.Answers.Tier),
		s.Answers.DocsPerEmployee,
		s.Answers.PagesPerDocument,
		s.Answers.TurnoverPct,
		s.Answers.AverageSalary,
		s.Answers.CourierCost,
		s.Answers.HRDeliveryPct,
		s.Totals.Paper,
		s.Totals.Logistics,
		s.Totals.Operations,
		s.Totals.License,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = ?`
	return r.scanSubmission(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSubmissionRepo) LatestByUser(ctx context.Context, userID int64) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions
		WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`
	return r.scanSubmission(r.db.QueryRowContext(ctx, query, userID))
}

func (r *SQLiteSubmissionRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions
		WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()
	return r.scanSubmissions(rows)
}

func (r *SQLiteSubmissionRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM submissions WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting submissions: %w", err)
	}
	return n, nil
}

func (r *SQLiteSubmissionRepo) PruneOld(ctx context.Context, userID int64, keep int) error {
	query := `DELETE FROM submissions WHERE user_id = ? AND rowid NOT IN (
		SELECT rowid FROM submissions WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ?)`
	if _, err := r.db.ExecContext(ctx, query, userID, userID, keep); err != nil {
		return fmt.Errorf("pruning submissions: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) CountDistinctUsers(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(DISTINCT user_id) FROM submissions
		WHERE created_at >= ? AND created_at < ?`
	var n int
	err := r.db.QueryRowContext(ctx, query,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting distinct users: %w", err)
	}
	return n, nil
}

func (r *SQLiteSubmissionRepo) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT user_id FROM submissions ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("listing user ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user ids: %w", err)
	}
	return ids, nil
}

// scanSubmission scans a single submission from a *sql.Row.
func (r *SQLiteSubmissionRepo) scanSubmission(row *sql.Row) (*domain.Submission, error) {
	var s domain.Submission
	var tier, createdAtStr string

	err := row.Scan(
		&s.ID, &s.UserID, &s.Answers.OrganizationName, &s.Answers.EmployeeCount,
		&s.Answers.HRSpecialistCount, &tier, &s.Answers.DocsPerEmployee,
		&s.Answers.PagesPerDocument, &s.Answers.TurnoverPct, &s.Answers.AverageSalary,
		&s.Answers.CourierCost, &s.Answers.HRDeliveryPct,
		&s.Totals.Paper, &s.Totals.Logistics, &s.Totals.Operations, &s.Totals.License,
		&createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("submission: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	return r.populateSubmission(&s, tier, createdAtStr)
}

// scanSubmissions scans multiple submissions from *sql.Rows.
func (r *SQLiteSubmissionRepo) scanSubmissions(rows *sql.Rows) ([]*domain.Submission, error) {
	var subs []*domain.Submission
	for rows.Next() {
		var s domain.Submission
		var tier, createdAtStr string

		err := rows.Scan(
			&s.ID, &s.UserID, &s.Answers.OrganizationName, &s.Answers.EmployeeCount,
			&s.Answers.HRSpecialistCount, &tier, &s.Answers.DocsPerEmployee,
			&s.Answers.PagesPerDocument, &s.Answers.TurnoverPct, &s.Answers.AverageSalary,
			&s.Answers.CourierCost, &s.Answers.HRDeliveryPct,
			&s.Totals.Paper, &s.Totals.Logistics, &s.Totals.Operations, &s.Totals.License,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning submission row: %w", err)
		}

		sub, parseErr := r.populateSubmission(&s, tier, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return subs, nil
}

// populateSubmission fills in parsed fields after scanning raw strings.
func (r *SQLiteSubmissionRepo) populateSubmission(s *domain.Submission, tier, createdAtStr string) (*domain.Submission, error) {
	s.Answers.Tier = domain.LicenseTier(tier)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return s, nil
}
