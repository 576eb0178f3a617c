package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString(t *testing.T) {
	assert.Nil(t, optionalString(""))
	assert.Nil(t, optionalString("   "))
	v := optionalString(" hypertension ")
	require.NotNil(t, v)
	assert.Equal(t, "hypertension", *v)
}

func TestOptionalFloat(t *testing.T) {
	assert.Nil(t, optionalFloat(""))
	assert.Nil(t, optionalFloat("abc"))
	v := optionalFloat("70.5")
	require.NotNil(t, v)
	assert.Equal(t, 70.5, *v)
}

func TestOptionalInt(t *testing.T) {
	assert.Nil(t, optionalInt(""))
	assert.Nil(t, optionalInt("72.5"))
	v := optionalInt("72")
	require.NotNil(t, v)
	assert.Equal(t, 72, *v)
}

func TestOptionalDate(t *testing.T) {
	v, err := optionalDate("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = optionalDate("2024-11-01")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 2024, v.Year())

	_, err = optionalDate("01/11/2024")
	require.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	in := time.Date(2026, 3, 1, 1, 30, 0, 0, loc)

	got := startOfDay(in)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), got)

	// 01:30 local is still the previous day in UTC, so epoch-aligned
	// truncation would land on the wrong day
	assert.NotEqual(t, in.Truncate(24*time.Hour), got)
}
