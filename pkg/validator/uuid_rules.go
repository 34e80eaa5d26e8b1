package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID fails when the running string is not a hyphenated UUID and rewrites
// it into canonical lowercase form when it is.
func UUID[V any]() Rule[V, string] {
	return Rule[V, string]{
		Name:    "uuid",
		Message: "must be a valid UUID",
		Test: func(_ V, s string) bool {
			_, ok := parseUUID(s)
			return ok
		},
		Transform: func(_ V, s string) string {
			id, ok := parseUUID(s)
			if !ok {
				return s
			}
			return id.String()
		},
	}
}

// NonNilUUID fails on the zero UUID.
func NonNilUUID[V any]() Rule[V, uuid.UUID] {
	return Rule[V, uuid.UUID]{
		Name:    "uuid_not_nil",
		Message: "UUID cannot be nil",
		Test: func(_ V, id uuid.UUID) bool {
			return id != uuid.Nil
		},
	}
}

// UUIDSeed parses s as a UUID for use with NewWithSeed.
// Unparseable input seeds uuid.Nil.
func UUIDSeed(s string) uuid.UUID {
	id, ok := parseUUID(s)
	if !ok {
		return uuid.Nil
	}
	return id
}

func parseUUID(s string) (uuid.UUID, bool) {
	s = strings.TrimSpace(s)

	// uuid.Parse also accepts urn and braced forms; only the plain form is allowed.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
