package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoevodin/kedobot/internal/db"
	"github.com/avoevodin/kedobot/internal/domain"
)

// SQLiteRateRepo implements RateRepo using a SQLite database.
type SQLiteRateRepo struct {
	db db.DBTX
}

// NewSQLiteRateRepo creates a new SQLiteRateRepo.
func NewSQLiteRateRepo(conn db.DBTX) *SQLiteRateRepo {
	return &SQLiteRateRepo{db: conn}
}

func (r *SQLiteRateRepo) PaperCosts(ctx context.Context) (*domain.PaperCosts, error) {
	query := `SELECT id, page_cost, printing_cost, storage_cost, rent_cost
		FROM paper_costs WHERE id = 'default'`
	var p domain.PaperCosts
	err := r.db.QueryRowContext(ctx, query).Scan(
		&p.ID, &p.PageCost, &p.PrintingCost, &p.StorageCost, &p.RentCost,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("paper costs: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning paper costs: %w", err)
	}
	return &p, nil
}

func (r *SQLiteRateRepo) LicenseCosts(ctx context.Context) (*domain.LicenseCosts, error) {
	query := `SELECT id, main_fee, hr_fee, employee_fee_lite, employee_fee_standard, employee_fee_enterprise
		FROM license_costs WHERE id = 'default'`
	var l domain.LicenseCosts
	err := r.db.QueryRowContext(ctx, query).Scan(
		&l.ID, &l.MainFee, &l.HRFee,
		&l.EmployeeFeeLite, &l.EmployeeFeeStandard, &l.EmployeeFeeEnterprise,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("license costs: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning license costs: %w", err)
	}
	return &l, nil
}

func (r *SQLiteRateRepo) TypicalOperations(ctx context.Context) (*domain.TypicalOperations, error) {
	query := `SELECT id, printing_min, signing_min, archiving_min
		FROM typical_operations WHERE id = 'default'`
	var o domain.TypicalOperations
	err := r.db.QueryRowContext(ctx, query).Scan(
		&o.ID, &o.PrintingMin, &o.SigningMin, &o.ArchivingMin,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("typical operations: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning typical operations: %w", err)
	}
	return &o, nil
}

// Rates loads all three reference tables in one call.
func (r *SQLiteRateRepo) Rates(ctx context.Context) (*domain.Rates, error) {
	paper, err := r.PaperCosts(ctx)
	if err != nil {
		return nil, err
	}
	license, err := r.LicenseCosts(ctx)
	if err != nil {
		return nil, err
	}
	ops, err := r.TypicalOperations(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Rates{Paper: *paper, License: *license, Operations: *ops}, nil
}

func (r *SQLiteRateRepo) UpdatePaperCosts(ctx context.Context, p *domain.PaperCosts) error {
	query := `INSERT OR REPLACE INTO paper_costs (id, page_cost, printing_cost, storage_cost, rent_cost)
		VALUES ('default', ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, p.PageCost, p.PrintingCost, p.StorageCost, p.RentCost)
	if err != nil {
		return fmt.Errorf("updating paper costs: %w", err)
	}
	return nil
}

func (r *SQLiteRateRepo) UpdateLicenseCosts(ctx context.Context, l *domain.LicenseCosts) error {
	query := `INSERT OR REPLACE INTO license_costs (id, main_fee, hr_fee, employee_fee_lite, employee_fee_standard, employee_fee_enterprise)
		VALUES ('default', ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.MainFee, l.HRFee, l.EmployeeFeeLite, l.EmployeeFeeStandard, l.EmployeeFeeEnterprise)
	if err != nil {
		return fmt.Errorf("updating license costs: %w", err)
	}
	return nil
}

func (r *SQLiteRateRepo) UpdateTypicalOperations(ctx context.Context, o *domain.TypicalOperations) error {
	query := `INSERT OR REPLACE INTO typical_operations (id, printing_min, signing_min, archiving_min)
		VALUES ('default', ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, o.PrintingMin, o.SigningMin, o.ArchivingMin)
	if err != nil {
		return fmt.Errorf("updating typical operations: %w", err)
	}
	return nil
}
