package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoevodin/kedobot/internal/calc"
	"github.com/avoevodin/kedobot/internal/repository"
	"github.com/avoevodin/kedobot/internal/service"
	"github.com/avoevodin/kedobot/internal/testutil"
)

type countingSender struct{ n int }

func (c *countingSender) Send(context.Context, int64, string) error {
	c.n++
	return nil
}

func newTestApp(t *testing.T) (*App, *repository.SQLiteSubmissionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	subs := repository.NewSQLiteSubmissionRepo(database)
	rates := repository.NewSQLiteRateRepo(database)

	return &App{
		Calculator:    service.NewCalculatorService(rates, subs, testutil.NewTestUoW(database), calc.DefaultWorkingMinutesPerMonth),
		Leads:         service.NewLeadService(stubCRM{}, subs),
		Stats:         service.NewStatsService(subs),
		Announce:      service.NewAnnounceService(subs, &countingSender{}),
		Rates:         service.NewRateService(rates),
		IsInteractive: func() bool { return false },
	}, subs
}

func execute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestStatsCmd(t *testing.T) {
	app, subs := newTestApp(t)
	require.NoError(t, subs.Create(context.Background(), testutil.NewTestSubmission(5, time.Now().UTC())))

	out := execute(t, app, "stats")
	assert.Contains(t, out, "Всего")
	assert.Contains(t, out, "1")
}

func TestAnnounceCmd(t *testing.T) {
	app, subs := newTestApp(t)
	sender := &countingSender{}
	app.Announce = service.NewAnnounceService(subs, sender)

	now := time.Now().UTC()
	require.NoError(t, subs.Create(context.Background(), testutil.NewTestSubmission(1, now)))
	require.NoError(t, subs.Create(context.Background(), testutil.NewTestSubmission(2, now)))

	out := execute(t, app, "announce", "Обновление", "тарифов")
	assert.Contains(t, out, "Доставлено: 2")
	assert.Equal(t, 2, sender.n)
}

func TestRatesShowCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out := execute(t, app, "rates", "show")
	assert.Contains(t, out, "Лицензии HRlink")
	assert.Contains(t, out, "700")
}

func TestRatesImportCmd(t *testing.T) {
	app, _ := newTestApp(t)

	file := filepath.Join(t.TempDir(), "rates.yaml")
	content := []byte("license:\n  main_fee: 60000\n  hr_fee: 12000\n  employee_fee_lite: 550\n  employee_fee_standard: 750\n  employee_fee_enterprise: 650\n")
	require.NoError(t, os.WriteFile(file, content, 0o644))

	out := execute(t, app, "rates", "import", file)
	assert.Contains(t, out, "импортированы")

	rates, err := app.Rates.Rates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60000.0, rates.License.MainFee)
	assert.Equal(t, 750.0, rates.License.EmployeeFeeStandard)
	// Untouched sections keep their seeded values.
	assert.Equal(t, 1.2, rates.Paper.PageCost)
}

func TestRatesImportCmd_RejectsEmptyFile(t *testing.T) {
	app, _ := newTestApp(t)

	file := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(file, []byte("# nothing here\n"), 0o644))

	root := NewRootCmd(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"rates", "import", file})
	require.Error(t, root.Execute())
}

func TestHistoryCmd(t *testing.T) {
	app, subs := newTestApp(t)
	require.NoError(t, subs.Create(context.Background(), testutil.NewTestSubmission(localUserID, time.Now().UTC())))

	out := execute(t, app, "history")
	assert.Contains(t, out, "Экономия")
	assert.Contains(t, out, "Сотрудников: 100")

	empty := execute(t, app, "history", "--user", "999")
	assert.Contains(t, empty, "Расчётов нет")
}

func TestRootWithoutTTYShowsHelp(t *testing.T) {
	app, _ := newTestApp(t)
	out := execute(t, app)
	assert.Contains(t, out, "Usage")
}
