package services

import (
	"sort"
	"time"

	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/timeframe"
)

// CurrentStreakDays counts consecutive reference-zone days with at least
// one session, walking backward from today. A streak survives an empty
// "today" as long as yesterday had a session, so an unbroken run is not
// reported as zero before the day is over.
func CurrentStreakDays(sessions []models.FocusSession, now time.Time) int {
	active := activeDaySet(sessions)
	if len(active) == 0 {
		return 0
	}

	day := timeframe.DateOf(now)
	if !active[timeframe.FormatDateKey(day)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for active[timeframe.FormatDateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreakDays finds the longest run of consecutive active days in
// the whole history.
func LongestStreakDays(sessions []models.FocusSession) int {
	active := activeDaySet(sessions)
	if len(active) == 0 {
		return 0
	}

	keys := make([]string, 0, len(active))
	for key := range active {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	longest := 0
	length := 0
	var previous time.Time
	for index, key := range keys {
		day, err := timeframe.ParseDateKey(key)
		if err != nil {
			continue
		}
		if index == 0 || timeframe.DaysBetween(previous, day) != 1 {
			length = 1
		} else {
			length++
		}
		if length > longest {
			longest = length
		}
		previous = day
	}
	return longest
}

func activeDaySet(sessions []models.FocusSession) map[string]bool {
	active := make(map[string]bool, len(sessions))
	for _, session := range sessions {
		active[timeframe.FormatDateKey(session.StartedAt)] = true
	}
	return active
}
