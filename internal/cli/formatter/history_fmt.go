package formatter

import (
	"fmt"
	"strings"

	"github.com/avoevodin/kedobot/internal/calc"
	"github.com/avoevodin/kedobot/internal/domain"
)

// FormatHistory renders a user's stored submissions, newest first.
func FormatHistory(subs []*domain.Submission) string {
	var b strings.Builder
	for i, s := range subs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n",
			Header(s.CreatedAt.Format("02.01.2006 15:04")),
			Dim(s.TariffName()))
		fmt.Fprintf(&b, "  Сотрудников: %d, документов в год: %s\n",
			s.Answers.EmployeeCount, calc.FormatMoney(calc.DocumentsPerYear(s.Answers)))
		fmt.Fprintf(&b, "  Бумажное КДП: %s руб./год, КЭДО: %s руб./год\n",
			calc.FormatMoney(s.Totals.PaperWorkflow()), calc.FormatMoney(s.Totals.License))
		fmt.Fprintf(&b, "  Экономия: %s\n",
			StyleGreen.Render(calc.FormatMoney(s.Totals.NetSavings())+" руб./год"))
	}
	return b.String()
}
