package gamification

import (
	"time"

	"english_quest_backend/internal/util"
)

// CheckIn returns the streak and activity date after a visit on today. A second visit
// the same day changes nothing, the next calendar day extends the streak, any gap resets it to 1.
func CheckIn(streakDays int, lastActivityDate string, today time.Time) (int, string) {
	todayStr := today.Format(util.DateFormat)
	if lastActivityDate == todayStr && streakDays > 0 {
		return streakDays, todayStr
	}
	last, err := time.ParseInLocation(util.DateFormat, lastActivityDate, today.Location())
	if err == nil {
		y, m, d := today.Date()
		yesterday := time.Date(y, m, d-1, 0, 0, 0, 0, today.Location())
		if last.Equal(yesterday) {
			return streakDays + 1, todayStr
		}
	}
	return 1, todayStr
}
