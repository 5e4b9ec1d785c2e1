package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/avoevodin/kedobot/internal/cli/formatter"
	"github.com/avoevodin/kedobot/internal/domain"
)

func newRatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Inspect and edit the reference cost tables",
	}
	cmd.AddCommand(
		newRatesShowCmd(app),
		newRatesEditCmd(app),
		newRatesImportCmd(app),
	)
	return cmd
}

func newRatesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current reference cost tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := app.Rates.Rates(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRates(rates))
			return nil
		},
	}
}

func newRatesEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the reference cost tables interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rates, err := app.Rates.Rates(ctx)
			if err != nil {
				return err
			}

			form, fields := ratesForm(rates)
			if err := form.Run(); err != nil {
				return err
			}

			updated, err := fields.toRates()
			if err != nil {
				return err
			}
			if err := app.Rates.UpdatePaperCosts(ctx, &updated.Paper); err != nil {
				return err
			}
			if err := app.Rates.UpdateLicenseCosts(ctx, &updated.License); err != nil {
				return err
			}
			if err := app.Rates.UpdateTypicalOperations(ctx, &updated.Operations); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Тарифы обновлены.")
			return nil
		},
	}
}

// rateFields holds the form's string-typed values before parsing.
type rateFields struct {
	pageCost, printingCost, storageCost, rentCost  string
	mainFee, hrFee, feeLite, feeStandard, feeEnt   string
	printingMin, signingMin, archivingMin          string
}

func ratesForm(r *domain.Rates) (*huh.Form, *rateFields) {
	f := &rateFields{
		pageCost:     formatRate(r.Paper.PageCost),
		printingCost: formatRate(r.Paper.PrintingCost),
		storageCost:  formatRate(r.Paper.StorageCost),
		rentCost:     formatRate(r.Paper.RentCost),
		mainFee:      formatRate(r.License.MainFee),
		hrFee:        formatRate(r.License.HRFee),
		feeLite:      formatRate(r.License.EmployeeFeeLite),
		feeStandard:  formatRate(r.License.EmployeeFeeStandard),
		feeEnt:       formatRate(r.License.EmployeeFeeEnterprise),
		printingMin:  formatRate(r.Operations.PrintingMin),
		signingMin:   formatRate(r.Operations.SigningMin),
		archivingMin: formatRate(r.Operations.ArchivingMin),
	}

	form := huh.NewForm(
		huh.NewGroup(
			rateInput("Бумага, руб./стр.", &f.pageCost),
			rateInput("Печать, руб./стр.", &f.printingCost),
			rateInput("Хранение, руб./стр.", &f.storageCost),
			rateInput("Аренда, руб./стр.", &f.rentCost),
		).Title("Бумажный документооборот"),
		huh.NewGroup(
			rateInput("Базовая лицензия, руб./год", &f.mainFee),
			rateInput("Лицензия кадровика, руб./год", &f.hrFee),
			rateInput("Сотрудник, HRlink Lite", &f.feeLite),
			rateInput("Сотрудник, HRlink Standard", &f.feeStandard),
			rateInput("Сотрудник, HRlink Enterprise", &f.feeEnt),
		).Title("Лицензии"),
		huh.NewGroup(
			rateInput("Печать и подготовка, мин.", &f.printingMin),
			rateInput("Подписание, мин.", &f.signingMin),
			rateInput("Архивирование, мин.", &f.archivingMin),
		).Title("Операции с документом"),
	).WithTheme(kedobotHuhTheme()).WithShowHelp(false)

	return form, f
}

func rateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateRate)
}

func validateRate(s string) error {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("введите число")
	}
	if n < 0 {
		return fmt.Errorf("значение не может быть отрицательным")
	}
	return nil
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (f *rateFields) toRates() (*domain.Rates, error) {
	vals := make([]float64, 0, 12)
	for _, s := range []string{
		f.pageCost, f.printingCost, f.storageCost, f.rentCost,
		f.mainFee, f.hrFee, f.feeLite, f.feeStandard, f.feeEnt,
		f.printingMin, f.signingMin, f.archivingMin,
	} {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing rate %q: %w", s, err)
		}
		vals = append(vals, n)
	}

	return &domain.Rates{
		Paper: domain.PaperCosts{
			ID: "default", PageCost: vals[0], PrintingCost: vals[1],
			StorageCost: vals[2], RentCost: vals[3],
		},
		License: domain.LicenseCosts{
			ID: "default", MainFee: vals[4], HRFee: vals[5],
			EmployeeFeeLite: vals[6], EmployeeFeeStandard: vals[7], EmployeeFeeEnterprise: vals[8],
		},
		Operations: domain.TypicalOperations{
			ID: "default", PrintingMin: vals[9], SigningMin: vals[10], ArchivingMin: vals[11],
		},
	}, nil
}
