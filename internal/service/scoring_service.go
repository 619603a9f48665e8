package service

import (
	"context"
	"fmt"
	"time"

	"english_quest_backend/internal/assessment"
	"english_quest_backend/internal/gamification"
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
	"english_quest_backend/pkg/logger"
	"english_quest_backend/pkg/monitoring"
	"english_quest_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ScoringService turns a finished attempt into XP, league, mission and history updates.
type ScoringService struct {
	UserRepo       *repository.UserRepository
	ProgressRepo   *repository.ProgressRepository
	CompletionRepo *repository.CompletionRepository
	Missions       *MissionService
	now            func() time.Time
}

func NewScoringService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	completionRepo *repository.CompletionRepository,
	missions *MissionService,
) *ScoringService {
	return &ScoringService{
		UserRepo:       userRepo,
		ProgressRepo:   progressRepo,
		CompletionRepo: completionRepo,
		Missions:       missions,
		now:            time.Now,
	}
}

// Finalize scores attempt for userID given how long it took. Steps run in a fixed order:
// grade, speed check, history, then XP and league, missions and block completion.
// An error means nothing was written.
func (s *ScoringService) Finalize(ctx context.Context, userID string, attempt *assessment.Attempt, durationSeconds int) (*model.ExamResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "scoring.finalize")
	defer span.End()

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	grading := attempt.Grade()
	total := attempt.Total()
	flagged := gamification.IsFlaggedForSpeed(durationSeconds, total)
	xp := gamification.XPEarned(grading.Score, user.StreakDays, flagged)

	span.SetAttributes(
		attribute.String("activity", string(attempt.Mode)),
		attribute.Int("score", grading.Score),
		attribute.Int("total", total),
		attribute.Bool("speed_flag", flagged),
	)

	result := &model.ExamResult{
		Score:             grading.Score,
		Total:             total,
		Answers:           grading.Answers,
		Timestamp:         s.now(),
		TopicTitle:        attempt.Topic.Title,
		XPEarned:          xp,
		Type:              attempt.Mode,
		TimeTakenSeconds:  durationSeconds,
		IsFlaggedForSpeed: flagged,
		League:            user.League,
	}

	// 历史记录是唯一的权威来源，先写入；写入失败时不产生任何奖励
	record := model.UserProgress{
		UserID:         userID,
		TopicID:        attempt.Topic.ID,
		Score:          grading.Score,
		TotalQuestions: total,
		Timestamp:      result.Timestamp,
		Type:           attempt.Mode,
		ExerciseIndex:  attempt.Block,
		XPEarned:       xp,
		Mistakes:       grading.Mistakes,
	}
	if err := s.ProgressRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("append progress: %w", err)
	}

	// From here the attempt is recorded; later write failures are logged, not returned.
	s.applyRewards(ctx, userID, attempt, grading.Score, total, result)

	monitoring.ActivitiesFinished.WithLabelValues(string(attempt.Mode)).Inc()
	monitoring.XPAwarded.WithLabelValues("activity").Add(float64(xp))
	if flagged {
		monitoring.SpeedFlags.WithLabelValues(string(attempt.Mode)).Inc()
		logger.Log.Info("Completion flagged for speed",
			zap.String("user_id", userID),
			zap.String("topic_id", attempt.Topic.ID),
			zap.Int("seconds", durationSeconds),
			zap.Int("questions", total),
		)
	}

	return result, nil
}

func (s *ScoringService) applyRewards(ctx context.Context, userID string, attempt *assessment.Attempt, score, total int, result *model.ExamResult) {
	fail := func(step string, err error) {
		logger.Log.Error("Failed to apply activity reward",
			zap.String("step", step),
			zap.String("user_id", userID),
			zap.String("topic_id", attempt.Topic.ID),
			zap.Error(err),
		)
	}

	if user, promoted, err := awardXP(ctx, s.UserRepo, userID, result.XPEarned); err != nil {
		fail("xp", err)
	} else {
		result.League = user.League
		result.Promoted = promoted
	}

	var trigger model.MissionTrigger
	switch {
	case attempt.Mode == model.ActivityPractice:
		trigger = model.TriggerPracticeFinished
	case attempt.Mode == model.ActivityExam && total > 0 && score == total:
		trigger = model.TriggerPerfectExam
	}
	if trigger != "" {
		completed, err := s.Missions.Apply(ctx, trigger, 1)
		if err != nil {
			fail("missions", err)
		}
		for _, m := range completed {
			result.MissionXP += m.XPReward
			result.CompletedMissions = append(result.CompletedMissions, m.ID)
		}
		if result.MissionXP > 0 {
			user, promoted, err := awardXP(ctx, s.UserRepo, userID, result.MissionXP)
			if err != nil {
				fail("mission xp", err)
			} else {
				result.League = user.League
				result.Promoted = result.Promoted || promoted
				monitoring.XPAwarded.WithLabelValues("mission").Add(float64(result.MissionXP))
			}
		}
	}

	if attempt.Mode == model.ActivityPractice && attempt.Block != nil {
		if _, err := s.CompletionRepo.MarkCompleted(ctx, userID, attempt.Topic.ID, *attempt.Block); err != nil {
			fail("block completion", err)
		}
	}
}

// awardXP adds xp and applies any league promotion in one write.
func awardXP(ctx context.Context, users *repository.UserRepository, userID string, xp int) (*model.User, bool, error) {
	promoted := false
	user, err := users.Modify(ctx, userID, func(u *model.User) error {
		u.XP += xp
		if league, ok := gamification.Promote(u.League, u.XP); ok {
			u.League = league
			promoted = true
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if promoted {
		monitoring.LeaguePromotions.WithLabelValues(string(user.League)).Inc()
		logger.Log.Info("League promotion", zap.String("user_id", userID), zap.String("league", string(user.League)))
	}
	return user, promoted, nil
}
