package service

import (
	"english_quest_backend/internal/gamification"
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/util"
)

type AnalyticsService struct {
	ProgressRepo *repository.ProgressRepository
	SessionRepo  *repository.SessionRepository
	UserRepo     *repository.UserRepository
}

func NewAnalyticsService(
	progressRepo *repository.ProgressRepository,
	sessionRepo *repository.SessionRepository,
	userRepo *repository.UserRepository,
) *AnalyticsService {
	return &AnalyticsService{
		ProgressRepo: progressRepo,
		SessionRepo:  sessionRepo,
		UserRepo:     userRepo,
	}
}

// StudentReport 教师端查看的学生学习报告
type StudentReport struct {
	Profile           *Profile                   `json:"profile"`
	Stats             model.ProgressStats        `json:"stats"`
	History           []model.UserProgress       `json:"history"`
	Sessions          []model.StudySession       `json:"sessions"`
	SecondsByActivity map[model.ActivityType]int `json:"secondsByActivity"`
	TotalSeconds      int                        `json:"totalSeconds"`
}

type HistoryEntry struct {
	model.UserProgress
	Rank gamification.Rank `json:"rank"`
}

// History pages through the learner's attempts, newest first.
func (s *AnalyticsService) History(userID string, page, limit int) util.PageResponse {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	all := s.ProgressRepo.ListByUser(userID)

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	list := make([]HistoryEntry, 0, end-start)
	for _, p := range all[start:end] {
		list = append(list, HistoryEntry{UserProgress: p, Rank: MasteryRank(p)})
	}
	return util.PageResponse{
		List:  list,
		Total: int64(len(all)),
		Page:  page,
		Limit: limit,
	}
}

func (s *AnalyticsService) Stats(userID string) model.ProgressStats {
	return s.ProgressRepo.Stats(userID)
}

func (s *AnalyticsService) StudentReport(userID string) (*StudentReport, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	seconds := s.SessionRepo.SecondsByActivity(userID)
	total := 0
	for _, v := range seconds {
		total += v
	}

	return &StudentReport{
		Profile:           BuildProfile(user),
		Stats:             s.ProgressRepo.Stats(userID),
		History:           s.ProgressRepo.ListByUser(userID),
		Sessions:          s.SessionRepo.ListByUser(userID),
		SecondsByActivity: seconds,
		TotalSeconds:      total,
	}, nil
}

// MasteryRank is the badge for a single attempt.
func MasteryRank(p model.UserProgress) gamification.Rank {
	if p.TotalQuestions == 0 {
		return gamification.RankFor(0)
	}
	return gamification.RankFor(float64(p.Score) / float64(p.TotalQuestions) * 100)
}
