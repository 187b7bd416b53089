package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	"github.com/tu-usuario/myinvois-pro/internal/domain/billing"
)

func TestNextSequenceNumber_FirstNumber(t *testing.T) {
	got, err := billing.NextSequenceNumber("INV", "")
	require.NoError(t, err)
	assert.Equal(t, "INV0001", got)
}

func TestNextSequenceNumber_Increments(t *testing.T) {
	got, err := billing.NextSequenceNumber("INV", "INV0007")
	require.NoError(t, err)
	assert.Equal(t, "INV0008", got)
}

func TestNextSequenceNumber_ProductPrefix(t *testing.T) {
	got, err := billing.NextSequenceNumber("P", "P0042")
	require.NoError(t, err)
	assert.Equal(t, "P0043", got)
}

// Past 9999 the numeric portion widens instead of failing. Pinned on purpose:
// the permissive overflow is the chosen semantics, not an accident.
func TestNextSequenceNumber_WidensPast9999(t *testing.T) {
	got, err := billing.NextSequenceNumber("INV", "INV9999")
	require.NoError(t, err)
	assert.Equal(t, "INV10000", got)

	got, err = billing.NextSequenceNumber("INV", "INV10000")
	require.NoError(t, err)
	assert.Equal(t, "INV10001", got)
}

func TestNextSequenceNumber_NonNumericRemainder(t *testing.T) {
	_, err := billing.NextSequenceNumber("INV", "INV-DRAFT")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSequenceFormat)
}

func TestNextSequenceNumber_EmptyRemainder(t *testing.T) {
	_, err := billing.NextSequenceNumber("INV", "INV")
	assert.ErrorIs(t, err, domain.ErrInvalidSequenceFormat)
}

func TestLatestNumber_LexicographicMax(t *testing.T) {
	latest := billing.LatestNumber([]string{"INV0002", "INV0010", "INV0009"})
	assert.Equal(t, "INV0010", latest, "comparison is on the full string, not numeric")
}

func TestLatestNumber_Empty(t *testing.T) {
	assert.Equal(t, "", billing.LatestNumber(nil))
}

// Monotonicity over a realistic allocation loop: each allocated number sorts
// strictly after every previous one while the width holds.
func TestNextSequenceNumber_MonotonicRun(t *testing.T) {
	numbers := []string{}
	last := ""
	for i := 0; i < 25; i++ {
		next, err := billing.NextSequenceNumber("INV", last)
		require.NoError(t, err)
		if last != "" {
			assert.Greater(t, next, last)
		}
		numbers = append(numbers, next)
		last = billing.LatestNumber(numbers)
	}
	assert.Equal(t, "INV0025", last)
}
