package seed

import "english_quest_backend/internal/model"

// Users returns the built-in accounts used when the store holds no users yet.
func Users() []model.User {
	return []model.User{
		{ID: "1", Name: "Profesor Admin", Username: "admin", Role: model.RoleAdmin, XP: 500, League: model.LeagueGold, ImpactScore: 100, StreakDays: 10, LastActivityDate: "2023-10-27"},
		{ID: "2", Name: "Estudiante Demo", Username: "student", Role: model.RoleStudent, XP: 120, League: model.LeagueBronze, ImpactScore: 10, StreakDays: 2, LastActivityDate: "2023-10-27"},
		{ID: "3", Name: "Alex Johnson", Username: "alexj", Role: model.RoleStudent, XP: 2150, League: model.LeagueGold, ImpactScore: 45, StreakDays: 15, LastActivityDate: "2023-10-27"},
		{ID: "4", Name: "Sarah Lee", Username: "sarah", Role: model.RoleStudent, XP: 800, League: model.LeagueSilver, ImpactScore: 20, StreakDays: 5, LastActivityDate: "2023-10-26"},
		{ID: "5", Name: "Mike Brown", Username: "mike", Role: model.RoleStudent, XP: 3500, League: model.LeaguePlatinum, ImpactScore: 120, StreakDays: 30, LastActivityDate: "2023-10-27"},
	}
}
