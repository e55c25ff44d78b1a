package utils

import "time"

// DaysOfStay returns the whole-day length of a hospitalization, rounding up.
// For an open episode the end defaults to now.
func DaysOfStay(admission time.Time, discharge *time.Time, now time.Time) int {
	end := now
	if discharge != nil {
		end = *discharge
	}
	elapsed := end.Sub(admission)
	if elapsed <= 0 {
		return 0
	}
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// SlotDuration computes the span between HH:MM start and end times of a slot.
// The zero duration is returned when either side does not parse.
func SlotDuration(startTime, endTime string) time.Duration {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return end.Sub(start)
}

func IsTimeWithinRange(requestedTime, startTime, endTime string) bool {
	requested, _ := time.Parse("15:04", requestedTime)
	start, _ := time.Parse("15:04", startTime)
	end, _ := time.Parse("15:04", endTime)

	return requested.Equal(start) || (requested.After(start) && requested.Before(end))
}
