package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatReal renders a whole-reais amount with thousand separators.
func FormatReal(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sR$ %s", sign, formatThousand(amount))
}

// ParseRealToInt parses "R$ 1.200" or "1200" into a whole-reais amount.
func ParseRealToInt(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "r$")
	replacer := strings.NewReplacer(".", "", ",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	return strconv.ParseInt(s, 10, 64)
}

// ProrateMonthly converts a monthly price into a stay total by night count,
// rounding to the nearest real. A 30-day month is the contract unit used
// across the app.
func ProrateMonthly(pricePerMonth, nights int64) int64 {
	if nights <= 0 {
		return 0
	}
	return (pricePerMonth*nights + 15) / 30
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
