package service

import (
	"english_quest_backend/internal/gamification"
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
)

type LeaderboardEntry struct {
	Rank   int          `json:"rank"`
	UserID string       `json:"userId"`
	Name   string       `json:"name"`
	Avatar string       `json:"avatar,omitempty"`
	XP     int          `json:"xp"`
	Level  int          `json:"level"`
	League model.League `json:"league"`
}

type Leaderboard struct {
	Entries []LeaderboardEntry        `json:"entries"`
	Me      *LeaderboardEntry         `json:"me,omitempty"`
	Leagues []gamification.LeagueTier `json:"leagues"`
}

type LeaderboardService struct {
	UserRepo *repository.UserRepository
}

func NewLeaderboardService(userRepo *repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{UserRepo: userRepo}
}

// Leaderboard ranks everyone by xp; limit <= 0 keeps the full list. The caller's
// entry is returned even when it falls outside the limit.
func (s *LeaderboardService) Leaderboard(userID string, limit int) *Leaderboard {
	users := s.UserRepo.TopByXP(0)

	board := &Leaderboard{Leagues: gamification.Leagues}
	for i, u := range users {
		entry := LeaderboardEntry{
			Rank:   i + 1,
			UserID: u.ID,
			Name:   u.Name,
			Avatar: u.Avatar,
			XP:     u.XP,
			Level:  gamification.Level(u.XP),
			League: u.League,
		}
		if u.ID == userID {
			me := entry
			board.Me = &me
		}
		if limit <= 0 || i < limit {
			board.Entries = append(board.Entries, entry)
		}
	}
	return board
}
