package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/avoevodin/kedobot/internal/domain"
)

// ratesFile is the YAML schema of a rates import. Sections are
// optional; only the ones present get written.
type ratesFile struct {
	Paper *struct {
		PageCost     float64 `yaml:"page_cost"`
		PrintingCost float64 `yaml:"printing_cost"`
		StorageCost  float64 `yaml:"storage_cost"`
		RentCost     float64 `yaml:"rent_cost"`
	} `yaml:"paper"`
	License *struct {
		MainFee               float64 `yaml:"main_fee"`
		HRFee                 float64 `yaml:"hr_fee"`
		EmployeeFeeLite       float64 `yaml:"employee_fee_lite"`
		EmployeeFeeStandard   float64 `yaml:"employee_fee_standard"`
		EmployeeFeeEnterprise float64 `yaml:"employee_fee_enterprise"`
	} `yaml:"license"`
	Operations *struct {
		PrintingMin  float64 `yaml:"printing_min"`
		SigningMin   float64 `yaml:"signing_min"`
		ArchivingMin float64 `yaml:"archiving_min"`
	} `yaml:"operations"`
}

func newRatesImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load reference cost tables from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading rates file: %w", err)
			}

			var file ratesFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parsing rates file: %w", err)
			}
			if file.Paper == nil && file.License == nil && file.Operations == nil {
				return fmt.Errorf("rates file has no paper, license or operations section")
			}

			ctx := context.Background()
			if p := file.Paper; p != nil {
				err := app.Rates.UpdatePaperCosts(ctx, &domain.PaperCosts{
					ID: "default", PageCost: p.PageCost, PrintingCost: p.PrintingCost,
					StorageCost: p.StorageCost, RentCost: p.RentCost,
				})
				if err != nil {
					return err
				}
			}
			if l := file.License; l != nil {
				err := app.Rates.UpdateLicenseCosts(ctx, &domain.LicenseCosts{
					ID: "default", MainFee: l.MainFee, HRFee: l.HRFee,
					EmployeeFeeLite: l.EmployeeFeeLite, EmployeeFeeStandard: l.EmployeeFeeStandard,
					EmployeeFeeEnterprise: l.EmployeeFeeEnterprise,
				})
				if err != nil {
					return err
				}
			}
			if o := file.Operations; o != nil {
				err := app.Rates.UpdateTypicalOperations(ctx, &domain.TypicalOperations{
					ID: "default", PrintingMin: o.PrintingMin, SigningMin: o.SigningMin,
					ArchivingMin: o.ArchivingMin,
				})
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Тарифы импортированы.")
			return nil
		},
	}
}
