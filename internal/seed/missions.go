package seed

import "english_quest_backend/internal/model"

// Missions returns the built-in mission board.
func Missions() []model.Mission {
	return []model.Mission{
		{ID: "m1", Title: "Daily Grinder", Description: "Complete 3 practice exercises today.", XPReward: 50, Type: model.MissionDaily, Goal: 3, Icon: model.IconZap, Trigger: model.TriggerPracticeFinished},
		{ID: "m2", Title: "Perfect Score", Description: "Get 100% in any Exam mode.", XPReward: 100, Type: model.MissionWeekly, Goal: 1, Icon: model.IconTarget, Trigger: model.TriggerPerfectExam},
		{ID: "m3", Title: "Consistency King", Description: "Login 5 days in a row.", XPReward: 200, Type: model.MissionWeekly, Goal: 5, Icon: model.IconCalendar, Trigger: model.TriggerLoginStreak},
	}
}
