package tools

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// formatMillions renders a monetary value scaled to millions with no
// decimals, rounding half away from zero: 500_000 → "$1M",
// 1_234_500_000 → "$1235M".
func formatMillions(v float64) string {
	return "$" + strconv.FormatFloat(math.Round(v/1e6), 'f', 0, 64) + "M"
}

// formatBillions renders a monetary value scaled to billions with two
// decimals: 6_000_000 → "$0.01B".
func formatBillions(v float64) string {
	return fmt.Sprintf("$%.2fB", v/1e9)
}

// formatPercent renders a fractional ratio as a percentage with two
// decimals: 0.1534 → "15.34%".
func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// formatSigned renders a change value with an explicit sign, + included
// when non-negative.
func formatSigned(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}

// groupDigits renders a whole number with comma separators:
// 12345678 → "12,345,678".
func groupDigits(v float64) string {
	s := strconv.FormatInt(int64(math.Round(v)), 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// formatSearchValue renders one screened metric from a search row: numeric
// magnitudes above one million scale to millions with one decimal, smaller
// numerics print unscaled, and non-numeric values pass through.
func formatSearchValue(v any) string {
	n, ok := v.(float64)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	if math.Abs(n) > 1e6 {
		return fmt.Sprintf("$%.1fM", n/1e6)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// millionsOrNA renders an optional monetary field in millions, or "N/A"
// when the API omitted it.
func millionsOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return formatMillions(*v)
}

// percentOrNA renders an optional fractional ratio as a percentage, or
// "N/A" when absent.
func percentOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return formatPercent(*v)
}

// ratioOrNA renders an optional plain ratio with two decimals, or "N/A"
// when absent.
func ratioOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// formatTime renders an RFC 3339 timestamp in the local timezone, falling
// back to the raw value when it does not parse.
func formatTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Local().Format("Jan 2, 2006 3:04:05 PM MST")
}
