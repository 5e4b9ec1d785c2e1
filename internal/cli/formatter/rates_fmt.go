package formatter

import (
	"fmt"
	"strings"

	"github.com/avoevodin/kedobot/internal/domain"
)

// FormatRates renders the reference cost tables for the rates command.
func FormatRates(r *domain.Rates) string {
	var b strings.Builder

	b.WriteString(Header("Бумажный документооборот, руб. за страницу"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Бумага        %.2f\n", r.Paper.PageCost)
	fmt.Fprintf(&b, "  Печать        %.2f\n", r.Paper.PrintingCost)
	fmt.Fprintf(&b, "  Хранение      %.2f\n", r.Paper.StorageCost)
	fmt.Fprintf(&b, "  Аренда        %.2f\n", r.Paper.RentCost)
	fmt.Fprintf(&b, "  Итого         %s\n", StyleBold.Render(fmt.Sprintf("%.2f", r.Paper.PerPage())))

	b.WriteString("\n")
	b.WriteString(Header("Лицензии HRlink, руб. в год"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Базовая лицензия          %.0f\n", r.License.MainFee)
	fmt.Fprintf(&b, "  Лицензия кадровика        %.0f\n", r.License.HRFee)
	fmt.Fprintf(&b, "  Сотрудник, HRlink Lite    %.0f\n", r.License.EmployeeFeeLite)
	fmt.Fprintf(&b, "  Сотрудник, Standard       %.0f\n", r.License.EmployeeFeeStandard)
	fmt.Fprintf(&b, "  Сотрудник, Enterprise     %.0f\n", r.License.EmployeeFeeEnterprise)

	b.WriteString("\n")
	b.WriteString(Header("Операции с одним документом, минуты"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Печать и подготовка   %.0f\n", r.Operations.PrintingMin)
	fmt.Fprintf(&b, "  Подписание            %.0f\n", r.Operations.SigningMin)
	fmt.Fprintf(&b, "  Архивирование         %.0f\n", r.Operations.ArchivingMin)
	fmt.Fprintf(&b, "  Итого                 %s\n", StyleBold.Render(fmt.Sprintf("%.0f", r.Operations.TotalMin())))

	return b.String()
}
