package service

import (
	"context"
	"time"

	"english_quest_backend/internal/config"
	"english_quest_backend/internal/gamification"
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/util"
	"english_quest_backend/pkg/logger"

	"go.uber.org/zap"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Missions *MissionService
	Cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(userRepo *repository.UserRepository, missions *MissionService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Missions: missions,
		Cfg:      cfg,
		now:      time.Now,
	}
}

type LoginResult struct {
	Token             string   `json:"token"`
	Profile           *Profile `json:"profile"`
	CompletedMissions []string `json:"completedMissions,omitempty"`
}

// Profile is the signed-in learner with everything derived from xp.
type Profile struct {
	User          model.User              `json:"user"`
	Level         int                     `json:"level"`
	LevelProgress float64                 `json:"levelProgress"`
	NextLevelXP   int                     `json:"nextLevelXp"`
	Title         string                  `json:"title"`
	League        gamification.LeagueTier `json:"league"`
}

// Login looks the user up by username and records the daily check-in.
// Identification only: there is no password.
func (s *AuthService) Login(ctx context.Context, username string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}

	today := s.now()
	user, err = s.UserRepo.Modify(ctx, user.ID, func(u *model.User) error {
		u.StreakDays, u.LastActivityDate = gamification.CheckIn(u.StreakDays, u.LastActivityDate, today)
		return nil
	})
	if err != nil {
		return nil, err
	}

	completed := s.creditStreak(ctx, user)
	if len(completed) > 0 {
		if fresh, err := s.UserRepo.FindByID(user.ID); err == nil {
			user = fresh
		}
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Profile: BuildProfile(user), CompletedMissions: completed}, nil
}

// creditStreak feeds the new streak to login-streak missions and pays out the ones it
// completes. Failures are logged; they never block a login.
func (s *AuthService) creditStreak(ctx context.Context, user *model.User) []string {
	if s.Missions == nil {
		return nil
	}
	missions, err := s.Missions.Apply(ctx, model.TriggerLoginStreak, user.StreakDays)
	if err != nil {
		logger.Log.Warn("Failed to update streak missions", zap.String("user_id", user.ID), zap.Error(err))
		return nil
	}

	var ids []string
	reward := 0
	for _, m := range missions {
		ids = append(ids, m.ID)
		reward += m.XPReward
	}
	if reward > 0 {
		if _, _, err := awardXP(ctx, s.UserRepo, user.ID, reward); err != nil {
			logger.Log.Error("Failed to award streak mission xp", zap.String("user_id", user.ID), zap.Error(err))
		}
	}
	return ids
}

func (s *AuthService) Profile(userID string) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return BuildProfile(user), nil
}

func BuildProfile(user *model.User) *Profile {
	level := gamification.Level(user.XP)
	league, ok := gamification.LeagueInfo(user.League)
	if !ok {
		league, _ = gamification.LeagueInfo(gamification.LeagueFor(user.XP))
	}
	return &Profile{
		User:          *user,
		Level:         level,
		LevelProgress: gamification.LevelProgressPercent(user.XP),
		NextLevelXP:   gamification.LevelThreshold(level + 1),
		Title:         gamification.Title(level),
		League:        league,
	}
}
