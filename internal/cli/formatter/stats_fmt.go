package formatter

import (
	"fmt"
	"strings"

	"github.com/avoevodin/kedobot/internal/service"
)

// FormatStats renders the audience overview for the stats command.
func FormatStats(o *service.StatsOverview) string {
	var b strings.Builder
	b.WriteString(Header("Пользователи с завершёнными расчётами"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		count int
	}{
		{"За день", o.Day},
		{"За неделю", o.Week},
		{"За месяц", o.Month},
		{"За квартал", o.Quarter},
		{"За год", o.Year},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-12s %s\n", r.label, StyleBlue.Render(fmt.Sprintf("%d", r.count)))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%-12s %s\n", "Всего", StyleBold.Render(fmt.Sprintf("%d", o.Total)))
	return b.String()
}
