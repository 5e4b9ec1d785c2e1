package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avoevodin/kedobot/internal/domain"
)

func TestFormatCostChart(t *testing.T) {
	out := FormatCostChart(domain.Totals{
		Paper:      200000,
		Logistics:  30000,
		Operations: 170000,
		License:    140000,
	})

	assert.Contains(t, out, "Бумага")
	assert.Contains(t, out, "КЭДО")
	assert.Contains(t, out, "400 000")
	assert.Contains(t, out, "140 000")
}

func TestFormatCostChart_ZeroTotalsDoNotPanic(t *testing.T) {
	out := FormatCostChart(domain.Totals{})
	assert.Contains(t, out, "Бумага")
	assert.Contains(t, out, "0")
}
