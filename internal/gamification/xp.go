package gamification

const (
	BaseXP = 10
	// MinSecondsPerQuestion is the plausible floor for reading and answering one question.
	MinSecondsPerQuestion = 3
)

// Multipliers are kept in tenths so XP stays in integer arithmetic.
const (
	multiplierBase        = 10
	multiplierStreakBonus = 2 // streak > 5
	multiplierLongStreak  = 5 // streak > 10, on top of the first bonus
	multiplierSpeedFlag   = 1
)

// IsFlaggedForSpeed marks completions faster than MinSecondsPerQuestion per question.
func IsFlaggedForSpeed(durationSeconds, questionCount int) bool {
	return durationSeconds < questionCount*MinSecondsPerQuestion
}

func multiplierTenths(streakDays int, flagged bool) int {
	if flagged {
		return multiplierSpeedFlag
	}
	m := multiplierBase
	if streakDays > 5 {
		m += multiplierStreakBonus
	}
	if streakDays > 10 {
		m += multiplierLongStreak
	}
	return m
}

// XPMultiplier is 1.0, +0.2 past a 5 day streak, +0.5 more past 10 days.
// A speed flag forces 0.1 regardless of streak.
func XPMultiplier(streakDays int, flagged bool) float64 {
	return float64(multiplierTenths(streakDays, flagged)) / 10
}

// XPEarned is floor(score * BaseXP * multiplier).
func XPEarned(score, streakDays int, flagged bool) int {
	if score <= 0 {
		return 0
	}
	return score * BaseXP * multiplierTenths(streakDays, flagged) / 10
}
