package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{9900, "9 900"},
		{1234567.8, "1 234 568"},
		{1000000, "1 000 000"},
		{-25500, "-25 500"},
		{700.4, "700"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in))
	}
}
