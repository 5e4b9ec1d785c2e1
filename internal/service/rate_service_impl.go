package service

import (
	"context"
	"fmt"

	"github.com/avoevodin/kedobot/internal/domain"
	"github.com/avoevodin/kedobot/internal/repository"
)

type rateService struct {
	rates repository.RateRepo
}

// NewRateService exposes the reference cost tables for operator review
// and editing.
func NewRateService(rates repository.RateRepo) RateService {
	return &rateService{rates: rates}
}

func (s *rateService) Rates(ctx context.Context) (*domain.Rates, error) {
	return s.rates.Rates(ctx)
}

func (s *rateService) UpdatePaperCosts(ctx context.Context, p *domain.PaperCosts) error {
	if p.PageCost < 0 || p.PrintingCost < 0 || p.StorageCost < 0 || p.RentCost < 0 {
		return fmt.Errorf("paper costs must not be negative")
	}
	return s.rates.UpdatePaperCosts(ctx, p)
}

func (s *rateService) UpdateLicenseCosts(ctx context.Context, l *domain.LicenseCosts) error {
	if l.MainFee < 0 || l.HRFee < 0 ||
		l.EmployeeFeeLite < 0 || l.EmployeeFeeStandard < 0 || l.EmployeeFeeEnterprise < 0 {
		return fmt.Errorf("license costs must not be negative")
	}
	return s.rates.UpdateLicenseCosts(ctx, l)
}

func (s *rateService) UpdateTypicalOperations(ctx context.Context, o *domain.TypicalOperations) error {
	if o.PrintingMin < 0 || o.SigningMin < 0 || o.ArchivingMin < 0 {
		return fmt.Errorf("operation minutes must not be negative")
	}
	return s.rates.UpdateTypicalOperations(ctx, o)
}
