package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avoevodin/kedobot/internal/calc"
	"github.com/avoevodin/kedobot/internal/domain"
)

const (
	filledBlock = "█"
	chartWidth  = 28
)

// FormatCostChart renders the paper-versus-digital comparison as
// horizontal bars scaled to the larger total.
func FormatCostChart(t domain.Totals) string {
	paper := t.PaperWorkflow()
	digital := t.License

	maxVal := paper
	if digital > maxVal {
		maxVal = digital
	}

	var b strings.Builder
	b.WriteString(Header("Бумажное КДП и КЭДО, руб. в год"))
	b.WriteString("\n\n")
	b.WriteString(costBar("Бумага", paper, maxVal, StyleRed))
	b.WriteString("\n")
	b.WriteString(costBar("КЭДО", digital, maxVal, StyleGreen))
	b.WriteString("\n")
	return b.String()
}

func costBar(label string, value, maxVal float64, style lipgloss.Style) string {
	width := 0
	if maxVal > 0 {
		width = int(value / maxVal * chartWidth)
	}
	if width < 1 && value > 0 {
		width = 1
	}
	bar := style.Render(strings.Repeat(filledBlock, width))
	return fmt.Sprintf("%-8s %s %s", label, bar, calc.FormatMoney(value))
}
