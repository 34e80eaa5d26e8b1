package validator_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rule     validator.Rule[string, string]
		value    string
		expected bool
	}{
		{"required passes", validator.Required[string](), "x", true},
		{"required fails on blank", validator.Required[string](), " \t ", false},
		{"required fails on empty", validator.Required[string](), "", false},
		{"min length passes", validator.MinLen[string](3), "abc", true},
		{"min length counts runes", validator.MinLen[string](3), "äöü", true},
		{"min length fails", validator.MinLen[string](3), "ab", false},
		{"max length passes", validator.MaxLen[string](3), "äöü", true},
		{"max length fails", validator.MaxLen[string](3), "abcd", false},
		{"exact length passes", validator.Len[string](2), "ab", true},
		{"exact length fails", validator.Len[string](2), "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, validator.New(tt.rule)(tt.value).Valid)
		})
	}
}

func TestStringTransforms(t *testing.T) {
	t.Parallel()

	validate := validator.New(
		validator.Trim[string](),
		validator.NormalizeWhitespace[string](),
		validator.Lower[string](),
		validator.Truncate[string](8),
	)

	res := validate("  Hello    WORLD again ")
	assert.True(t, res.Valid)
	assert.Equal(t, "hello wo", res.TransformedValue)
	assert.Equal(t, "  Hello    WORLD again ", res.Value)
}

func TestStringRules_UseRunningValue(t *testing.T) {
	t.Parallel()

	validate := validator.New(
		validator.Trim[string](),
		validator.Required[string](),
		validator.MaxLen[string](3),
	)

	assert.True(t, validate("  abc  ").Valid, "length is checked after trimming")
	assert.Equal(t, []string{"required"}, validate("   ").FailedRuleNames())
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	t.Run("min and max", func(t *testing.T) {
		t.Parallel()

		validate := validator.New(validator.Min[int](1), validator.Max[int](10))

		assert.True(t, validate(1).Valid)
		assert.True(t, validate(10).Valid)
		assert.Equal(t, []string{"min"}, validate(0).FailedRuleNames())
		assert.Equal(t, []string{"max"}, validate(11).FailedRuleNames())
	})

	t.Run("named numeric types", func(t *testing.T) {
		t.Parallel()

		type quantity uint16

		validate := validator.New(validator.Between[quantity](quantity(1), quantity(99)))

		assert.True(t, validate(quantity(5)).Valid)
		res := validate(quantity(120))
		assert.False(t, res.Valid)
		assert.Equal(t, quantity(99), res.ResetValue)
	})

	t.Run("between resets to the clamped value", func(t *testing.T) {
		t.Parallel()

		validate := validator.New(validator.Between[float64](0.5, 1.5))

		res := validate(2.0)
		assert.False(t, res.Valid)
		reset, ok := res.Reset()
		require.True(t, ok)
		assert.Equal(t, 1.5, reset)

		res = validate(0.1)
		assert.Equal(t, 0.5, res.ResetValue)

		res = validate(1.0)
		assert.True(t, res.Valid)
		assert.False(t, res.HasResetValue)
	})

	t.Run("round then check", func(t *testing.T) {
		t.Parallel()

		validate := validator.New(validator.RoundTo[float64, float64](1), validator.Max[float64](9.9))

		res := validate(9.94)
		assert.True(t, res.Valid)
		assert.InDelta(t, 9.9, res.TransformedValue, 1e-9)

		assert.False(t, validate(9.96).Valid)
	})

	t.Run("messages include bounds", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "must be at least 3", validator.Min[int](3).Message)
		assert.Equal(t, "must be between 1 and 5", validator.Between[int](1, 5).Message)
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"test@example.com",
		"user.name@domain.co.uk",
		"user+tag@example.com",
		"John.Doe@Example.COM",
	}
	invalid := []string{
		"",
		"invalid",
		"@example.com",
		"user@",
		"user@domain",
		"user@.example.com",
		"user@example.com.",
		"Bob <bob@example.com>",
	}

	validate := validator.New(validator.Email[string]())

	for _, email := range valid {
		assert.True(t, validate(email).Valid, "expected %q to be valid", email)
	}
	for _, email := range invalid {
		res := validate(email)
		assert.False(t, res.Valid, "expected %q to be invalid", email)
		assert.Equal(t, email, res.TransformedValue, "invalid input is not normalized")
	}

	assert.Equal(t, "john.doe@example.com", validate("John.Doe@Example.COM").TransformedValue)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	validate := validator.New(validator.UUID[string]())

	t.Run("canonicalizes valid input", func(t *testing.T) {
		t.Parallel()

		res := validate("6BA7B810-9DAD-11D1-80B4-00C04FD430C8")
		assert.True(t, res.Valid)
		assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", res.TransformedValue)
	})

	t.Run("accepts random ids", func(t *testing.T) {
		t.Parallel()

		id := uuid.New().String()
		assert.True(t, validate(id).Valid)
	})

	t.Run("rejects other forms", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{
			"",
			"not-a-uuid",
			"6ba7b8109dad11d180b400c04fd430c8",
			"{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",
			"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"6ba7b810-9dad-11d1-80b4-00c04fd430cz",
		} {
			assert.False(t, validate(value).Valid, "expected %q to be invalid", value)
		}
	})
}

func TestUUIDSeed(t *testing.T) {
	t.Parallel()

	validate := validator.NewWithSeed(validator.UUIDSeed, validator.NonNilUUID[string]())

	id := uuid.New()
	res := validate(strings.ToUpper(id.String()))
	assert.True(t, res.Valid)
	assert.Equal(t, id, res.TransformedValue)

	res = validate("garbage")
	assert.False(t, res.Valid)
	assert.Equal(t, uuid.Nil, res.TransformedValue)
	assert.Equal(t, []string{"uuid_not_nil"}, res.FailedRuleNames())

	assert.False(t, validate(uuid.Nil.String()).Valid)
}
