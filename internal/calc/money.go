package calc

import (
	"math"
	"strconv"
)

// FormatMoney renders a ruble amount rounded to whole units with spaces
// as thousands separators: 1234567.8 → "1 234 568".
func FormatMoney(v float64) string {
	n := int64(math.Round(v))

	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
