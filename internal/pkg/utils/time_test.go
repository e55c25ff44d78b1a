package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysOfStay(t *testing.T) {
	admission := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

	t.Run("Exact Days", func(t *testing.T) {
		discharge := admission.Add(3 * 24 * time.Hour)
		assert.Equal(t, 3, DaysOfStay(admission, &discharge, time.Now()))
	})

	t.Run("Partial Day Rounds Up", func(t *testing.T) {
		discharge := admission.Add(2*24*time.Hour + time.Minute)
		assert.Equal(t, 3, DaysOfStay(admission, &discharge, time.Now()))
	})

	t.Run("Open Episode Uses Now", func(t *testing.T) {
		now := admission.Add(36 * time.Hour)
		assert.Equal(t, 2, DaysOfStay(admission, nil, now))
	})

	t.Run("Same Instant Is Zero", func(t *testing.T) {
		discharge := admission
		assert.Equal(t, 0, DaysOfStay(admission, &discharge, time.Now()))
	})

	t.Run("Discharge Before Admission Is Zero", func(t *testing.T) {
		discharge := admission.Add(-time.Hour)
		assert.Equal(t, 0, DaysOfStay(admission, &discharge, time.Now()))
	})
}

func TestSlotDuration(t *testing.T) {
	t.Run("Quarter Hour", func(t *testing.T) {
		assert.Equal(t, 15*time.Minute, SlotDuration("09:00", "09:15"))
	})

	t.Run("End Before Start Is Zero", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), SlotDuration("10:00", "09:00"))
	})

	t.Run("Unparseable Is Zero", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), SlotDuration("mañana", "tarde"))
	})
}

func TestIsValidSIP(t *testing.T) {
	t.Run("Seven Digits Pass", func(t *testing.T) {
		assert.True(t, IsValidSIP("1234567"))
	})

	t.Run("Wrong Lengths Fail", func(t *testing.T) {
		assert.False(t, IsValidSIP("123456"))
		assert.False(t, IsValidSIP("12345678"))
	})

	t.Run("Letters Fail", func(t *testing.T) {
		assert.False(t, IsValidSIP("12A4567"))
		assert.False(t, IsValidSIP(""))
	})
}
