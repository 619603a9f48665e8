package model

type MissionType string

const (
	MissionDaily    MissionType = "daily"
	MissionWeekly   MissionType = "weekly"
	MissionSeasonal MissionType = "seasonal"
)

// MissionTrigger is the activity event a mission subscribes to. Empty means no automatic progress.
type MissionTrigger string

const (
	TriggerPracticeFinished MissionTrigger = "practice_finished"
	TriggerPerfectExam      MissionTrigger = "perfect_exam"
	TriggerLoginStreak      MissionTrigger = "login_streak"
)

// swagger:model Mission
type Mission struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	XPReward    int            `json:"xpReward"`
	Type        MissionType    `json:"type"`
	Goal        int            `json:"goal"`
	Progress    int            `json:"progress"`
	Completed   bool           `json:"completed"`
	Icon        Icon           `json:"icon"`
	Trigger     MissionTrigger `json:"trigger,omitempty"`
	PeriodStart string         `json:"periodStart,omitempty"` // YYYY-MM-DD of the current daily/weekly window
}
