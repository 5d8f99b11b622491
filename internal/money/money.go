// Package money renders monetary values for display. Formatting is a pure
// display concern: nothing here alters stored values.
package money

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Masked replaces every rendered amount when privacy mode is on.
const Masked = "****"

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders v as US-locale currency with two decimal places, e.g.
// $1,234.56. When privacy is set the fixed mask is returned without touching
// the value. A non-finite value renders as $0.00 rather than erroring.
func Format(v float64, privacy bool) string {
	if privacy {
		return Masked
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v < 0 {
		return "-$" + printer.Sprintf("%.2f", -v)
	}
	return "$" + printer.Sprintf("%.2f", v)
}

// ParseAmount parses free-text numeric input ("42.50", "$1,200", " 45 ").
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

// FormatInput renders free-text amount input; non-numeric input renders as
// $0.00 rather than erroring.
func FormatInput(s string, privacy bool) string {
	v, err := ParseAmount(s)
	if err != nil {
		v = 0
	}
	return Format(v, privacy)
}
