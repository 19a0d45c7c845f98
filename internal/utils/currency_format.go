package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatVND formats a whole-dong amount with dot thousand separators and the đ suffix.
// Example: 54000 returns "54.000đ"; -1500 returns "-1.500đ".
func FormatVND(amount decimal.Decimal) string {
	return FormatThousands(amount.Round(0)) + "đ"
}

// FormatThousands renders an integer amount with "." between groups of three digits.
func FormatThousands(amount decimal.Decimal) string {
	digits := amount.Abs().Round(0).String()
	var b strings.Builder
	if amount.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
