package view

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

var printer = message.NewPrinter(language.English)

// Money groups thousands with commas and shows cents only when there are
// any: 50000 → "50,000", 1250.5 → "1,250.50".
func Money(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}

// Amount formats a backend amount.
func Amount(a domain.Amount) string {
	return Money(a.Float64())
}

// Count formats an integer figure with grouping.
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// Dash renders "-" in place of an empty value.
func Dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// DateTime renders a timestamp in local wall-clock form.
func DateTime(ts domain.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format("02 Jan 2006 15:04")
}

// Date renders only the calendar day.
func Date(ts domain.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format("02 Jan 2006")
}

// Humanize turns a JSON key such as "amount_paid" into "Amount Paid".
func Humanize(key string) string {
	key = strings.TrimPrefix(key, "_")
	if key == "id" {
		return "ID"
	}
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
