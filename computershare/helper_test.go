package computershare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// assertDecimal asserts that got is present and equal to want.
func assertDecimal(t *testing.T, want string, got decimal.NullDecimal, msgAndArgs ...any) {
	t.Helper()
	if assert.True(t, got.Valid, msgAndArgs...) {
		assert.Truef(t, decimal.RequireFromString(want).Equal(got.Decimal), "want %s, got %s", want, got.Decimal)
	}
}
