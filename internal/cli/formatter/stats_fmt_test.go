package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avoevodin/kedobot/internal/service"
)

func TestFormatStats(t *testing.T) {
	out := FormatStats(&service.StatsOverview{
		Day: 1, Week: 2, Month: 5, Quarter: 9, Year: 20, Total: 33,
	})

	assert.Contains(t, out, "За день")
	assert.Contains(t, out, "За квартал")
	assert.Contains(t, out, "Всего")
	assert.Contains(t, out, "33")
}
