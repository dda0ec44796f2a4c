// ABOUTME: Locale-aware number and duration formatting for result cells
// ABOUTME: Groups digits with golang.org/x/text/message ("10,000,000")

package pretty

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Count formats n with thousands separators.
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// Micros formats d as whole microseconds, the unit result tables use.
func Micros(d time.Duration) string {
	return printer.Sprintf("%d us", d.Microseconds())
}

// PerOp formats the mean duration of one of n operations in nanoseconds.
func PerOp(d time.Duration, n int64) string {
	if n <= 0 {
		return "N/A"
	}
	return printer.Sprintf("%.2f ns/op", float64(d.Nanoseconds())/float64(n))
}
