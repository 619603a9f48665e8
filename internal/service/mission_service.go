package service

import (
	"context"
	"time"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/util"
	"english_quest_backend/pkg/logger"

	"go.uber.org/zap"
)

// missionHandlers maps each event to how a subscribed mission advances. value carries
// the event's figure where it has one (the login streak).
var missionHandlers = map[model.MissionTrigger]func(m *model.Mission, value int){
	model.TriggerPracticeFinished: func(m *model.Mission, _ int) {
		m.Progress++
	},
	model.TriggerPerfectExam: func(m *model.Mission, _ int) {
		m.Progress = m.Goal
	},
	model.TriggerLoginStreak: func(m *model.Mission, streak int) {
		if streak > m.Progress {
			m.Progress = streak
		}
	},
}

type MissionService struct {
	MissionRepo *repository.MissionRepository
	now         func() time.Time
}

func NewMissionService(missionRepo *repository.MissionRepository) *MissionService {
	return &MissionService{MissionRepo: missionRepo, now: time.Now}
}

func (s *MissionService) List() []model.Mission {
	return s.MissionRepo.List()
}

// Apply advances every open mission subscribed to trigger and returns the ones it completed.
func (s *MissionService) Apply(ctx context.Context, trigger model.MissionTrigger, value int) ([]model.Mission, error) {
	handler, ok := missionHandlers[trigger]
	if !ok {
		return nil, nil
	}
	now := s.now()

	var completed []model.Mission
	err := s.MissionRepo.Modify(ctx, func(missions []model.Mission) error {
		for i := range missions {
			m := &missions[i]
			rollPeriod(m, now)
			if m.Trigger != trigger || m.Completed {
				continue
			}
			handler(m, value)
			if m.Progress > m.Goal {
				m.Progress = m.Goal
			}
			if m.Progress >= m.Goal {
				m.Completed = true
				completed = append(completed, *m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, m := range completed {
		logger.Log.Info("Mission completed", zap.String("mission", m.ID), zap.Int("xp_reward", m.XPReward))
	}
	return completed, nil
}

// ResetExpired clears missions whose daily or weekly window has passed.
func (s *MissionService) ResetExpired(ctx context.Context) (int, error) {
	now := s.now()

	stale := false
	for _, m := range s.MissionRepo.List() {
		if m.PeriodStart != periodStart(m.Type, now) {
			stale = true
			break
		}
	}
	if !stale {
		return 0, nil
	}

	reset := 0
	err := s.MissionRepo.Modify(ctx, func(missions []model.Mission) error {
		for i := range missions {
			if rollPeriod(&missions[i], now) {
				reset++
			}
		}
		return nil
	})
	return reset, err
}

// RunResetLoop checks mission windows every interval until ctx is cancelled.
func (s *MissionService) RunResetLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.ResetExpired(ctx)
			if err != nil {
				logger.Log.Error("Mission reset failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Log.Info("Missions reset", zap.Int("count", n))
			}
		}
	}
}

// rollPeriod moves m into the window containing now. It reports whether progress was cleared.
// A mission without a recorded window is stamped without losing progress.
func rollPeriod(m *model.Mission, now time.Time) bool {
	period := periodStart(m.Type, now)
	if m.PeriodStart == period {
		return false
	}
	hadWindow := m.PeriodStart != ""
	m.PeriodStart = period
	if !hadWindow || period == "" {
		return false
	}
	m.Progress = 0
	m.Completed = false
	return true
}

// periodStart is the first day of the window now falls in. Seasonal missions have none.
func periodStart(t model.MissionType, now time.Time) string {
	switch t {
	case model.MissionDaily:
		return now.Format(util.DateFormat)
	case model.MissionWeekly:
		offset := (int(now.Weekday()) + 6) % 7 // ISO weeks start on Monday
		y, m, d := now.Date()
		return time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location()).Format(util.DateFormat)
	}
	return ""
}
