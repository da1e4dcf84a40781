package utils

import (
	"fmt"
	"strings"
)

// FormatAmount renders a monetary value with thousand separators and two
// decimals, e.g. 1,234.50. Negative amounts keep their sign; bills can
// legitimately go below zero.
func FormatAmount(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return sign + strings.Join(groups, ",") + "." + decimalPart
}
