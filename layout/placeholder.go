package layout

import (
	"fmt"
	"strings"
)

// Placeholder defaults for the free-text card fields. The lengths leave
// enough room for handwriting at the default 45 mm symbol size.
const (
	PlaceholderChar = "_"

	DefaultOVLength       = 16
	DefaultCallSignLength = 16
	DefaultPlaceLength    = 16
	DefaultFreeTextLength = 32
)

// DefaultStrengthDigits describes the four strength fields:
// leaders / sub-leaders / helpers / total.
var DefaultStrengthDigits = [4]int{5, 6, 6, 3}

// PlaceholderText returns char repeated length times. A non-positive length
// yields the empty string.
func PlaceholderText(length int, char string) string {
	if length <= 0 {
		return ""
	}
	return strings.Repeat(char, length)
}

// StrengthPlaceholder builds the strength line placeholder. The first three
// fields are blank (filled in by hand), only the total field carries
// underscores: "      /       /       / ___".
func StrengthPlaceholder(digits [4]int) string {
	return fmt.Sprintf("%s / %s / %s / %s",
		PlaceholderText(digits[0], " "),
		PlaceholderText(digits[1], " "),
		PlaceholderText(digits[2], " "),
		PlaceholderText(digits[3], PlaceholderChar),
	)
}
