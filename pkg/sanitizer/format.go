package sanitizer

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NormalizeEmail lowercases and trims an address and collapses repeated dots
// in the local part. Input without exactly one "@" is only trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// FormatNumber renders value with exactly places fraction digits using the
// grouping and decimal separators of tag, e.g. "1,234.50" for English.
func FormatNumber(tag language.Tag, value float64, places int) string {
	if places < 0 {
		places = 0
	}

	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(value, number.Scale(places)))
}
