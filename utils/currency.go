package utils

import "fmt"

// FormatCents renders an amount in integer cents as a decimal string,
// e.g. 12345 -> "123.45". Used for log lines and shift summaries.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
