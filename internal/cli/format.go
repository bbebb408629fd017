// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatDKK formats a whole-DKK amount with Danish thousands grouping.
// e.g., 37285.6 -> "37.286 kr."
func FormatDKK(amount float64) string {
	return groupDigits(int64(math.Round(amount))) + " kr."
}

// FormatDKK2 formats an amount with øre precision.
// e.g., 37285.6 -> "37.285,60 kr."
func FormatDKK2(amount float64) string {
	neg := amount < 0
	abs := math.Abs(amount)
	whole := int64(abs)
	ore := int64(math.Round((abs - float64(whole)) * 100))
	if ore == 100 {
		whole++
		ore = 0
	}
	s := fmt.Sprintf("%s,%02d kr.", groupDigits(whole), ore)
	if neg {
		return "-" + s
	}
	return s
}

// groupDigits adds Danish dot separators to an integer.
// e.g., 1234567 -> "1.234.567"
func groupDigits(n int64) string {
	if n < 0 {
		return "-" + groupDigits(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte('.')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatKM formats a distance with one decimal.
func FormatKM(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}
