package validator

import (
	"net/mail"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

// Email fails when the running string is not a plain e-mail address and
// normalizes it when it is.
func Email[V any]() Rule[V, string] {
	return Rule[V, string]{
		Name:    "email",
		Message: "must be a valid email address",
		Test: func(_ V, s string) bool {
			return isEmail(s)
		},
		Transform: sanitizer.Transform[V](sanitizer.NormalizeEmail),
	}
}

func isEmail(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// Display names ("Bob <bob@example.com>") are not plain addresses.
	if addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}
