package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhoumik1804/krsika-backend/utils"
)

func TestParseDate(t *testing.T) {
	d, err := utils.ParseDate("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = utils.ParseDate("15-08-2026")
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))

	_, err = utils.ParseDate("")
	require.Error(t, err)
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2026, 8, 15, 17, 45, 12, 999, time.FixedZone("IST", 5*3600+1800))
	got := utils.TruncateToDay(in)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestUniqueSlice(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, utils.UniqueSlice([]int{3, 1, 3, 2, 1}))
	assert.Empty(t, utils.UniqueSlice([]int(nil)))
}

func TestErrorTaxonomy(t *testing.T) {
	val := utils.NewValidationError("quantity must not be negative, got %s", "-1")
	assert.True(t, utils.IsValidationError(val))
	assert.False(t, utils.IsNotFoundError(val))
	assert.Contains(t, val.Error(), "-1")

	nf := utils.NewNotFoundError("mill %s not found", "m-1")
	assert.True(t, utils.IsNotFoundError(nf))
	assert.ErrorIs(t, nf, utils.ErrorRecordNotFound)

	st := utils.NewStorageError("insert ledger entries", nf)
	assert.True(t, utils.IsStorageError(st))
	// Wrapping preserves the cause.
	assert.ErrorIs(t, st, utils.ErrorRecordNotFound)
	assert.False(t, utils.IsValidationError(st))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	assert.NoError(t, utils.ComparePassword(string(hash), "secret123"))
	assert.Error(t, utils.ComparePassword(string(hash), "wrong"))
}
