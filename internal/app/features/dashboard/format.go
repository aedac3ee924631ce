// internal/app/features/dashboard/format.go
package dashboard

import (
	"fmt"
	"html"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
)

// FormatNumber abbreviates values of 1000 or more with one decimal and a
// "k" suffix (1500 -> "1.5k").
func FormatNumber(n int64) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return strconv.FormatInt(n, 10)
}

var badgeClasses = map[string]string{
	"active":     "active",
	"processing": "processing",
	"success":    "success",
	"failed":     "failed",
	"suspended":  "suspended",
	"pending":    "processing",
}

// StatusBadge maps a status to its badge CSS class; unknown statuses are
// "neutral".
func StatusBadge(status string) string {
	if c, ok := badgeClasses[status]; ok {
		return c
	}
	return "neutral"
}

var textPolicy = bluemonday.StrictPolicy()

// plainText strips markup from free text typed by officers. The template
// layer escapes the result again, so entities are decoded here.
func plainText(s string) string {
	return html.UnescapeString(textPolicy.Sanitize(s))
}
