package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoevodin/kedobot/internal/domain"
	"github.com/avoevodin/kedobot/internal/repository"
	"github.com/avoevodin/kedobot/internal/testutil"
)

func TestRateService_ReadsSeededDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRateService(repository.NewSQLiteRateRepo(database))

	rates, err := svc.Rates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 700.0, rates.License.EmployeeFeeStandard)
	assert.Positive(t, rates.Paper.PerPage())
	assert.Positive(t, rates.Operations.TotalMin())
}

func TestRateService_UpdateRoundTrips(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRateService(repository.NewSQLiteRateRepo(database))
	ctx := context.Background()

	p := &domain.PaperCosts{ID: "default", PageCost: 2, PrintingCost: 3, StorageCost: 1, RentCost: 2}
	require.NoError(t, svc.UpdatePaperCosts(ctx, p))

	rates, err := svc.Rates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8.0, rates.Paper.PerPage())
}

func TestRateService_RejectsNegativeValues(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRateService(repository.NewSQLiteRateRepo(database))
	ctx := context.Background()

	err := svc.UpdatePaperCosts(ctx, &domain.PaperCosts{ID: "default", PageCost: -1})
	require.Error(t, err)

	err = svc.UpdateLicenseCosts(ctx, &domain.LicenseCosts{ID: "default", MainFee: -5})
	require.Error(t, err)

	err = svc.UpdateTypicalOperations(ctx, &domain.TypicalOperations{ID: "default", SigningMin: -2})
	require.Error(t, err)

	// Seeded values must be untouched after rejected updates.
	rates, err := svc.Rates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, rates.License.MainFee)
}
