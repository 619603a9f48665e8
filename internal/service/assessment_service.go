package service

import (
	"context"
	"math/rand/v2"
	"sync"

	"english_quest_backend/internal/assessment"
	"english_quest_backend/internal/gamification"
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/tracker"
	"english_quest_backend/internal/util"
	"english_quest_backend/pkg/logger"

	"go.uber.org/zap"
)

// learner is one signed-in user's activity state. Its mutex serializes that user's requests.
type learner struct {
	mu      sync.Mutex
	machine *assessment.Machine
	tracker *tracker.Tracker
}

type ExerciseBlock struct {
	Index         int                `json:"index"`
	QuestionCount int                `json:"questionCount"`
	Completed     bool               `json:"completed"`
	BestScore     *int               `json:"bestScore,omitempty"`
	Rank          *gamification.Rank `json:"rank,omitempty"`
}

// PracticeOverview backs the practice-select screen.
type PracticeOverview struct {
	TopicID        string          `json:"topicId"`
	TopicTitle     string          `json:"topicTitle"`
	ExercisesCount int             `json:"exercisesCount"`
	Exercises      []ExerciseBlock `json:"exercises"`
	ExamUnlocked   bool            `json:"examUnlocked"`
}

type AssessmentService struct {
	CategoryRepo   *repository.CategoryRepository
	UserRepo       *repository.UserRepository
	ProgressRepo   *repository.ProgressRepository
	CompletionRepo *repository.CompletionRepository
	SessionRepo    *repository.SessionRepository
	Scoring        *ScoringService

	mu          sync.Mutex
	learners    map[string]*learner
	newSource   func() assessment.Source
	trackerOpts []tracker.Option
}

func NewAssessmentService(
	categoryRepo *repository.CategoryRepository,
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	completionRepo *repository.CompletionRepository,
	sessionRepo *repository.SessionRepository,
	scoring *ScoringService,
) *AssessmentService {
	return &AssessmentService{
		CategoryRepo:   categoryRepo,
		UserRepo:       userRepo,
		ProgressRepo:   progressRepo,
		CompletionRepo: completionRepo,
		SessionRepo:    sessionRepo,
		Scoring:        scoring,
		learners:       map[string]*learner{},
		newSource: func() assessment.Source {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

func (s *AssessmentService) learner(userID string) *learner {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.learners[userID]
	if !ok {
		l = &learner{
			machine: assessment.New(s.newSource()),
			tracker: tracker.New(s.SessionRepo, s.trackerOpts...),
		}
		s.learners[userID] = l
	}
	return l
}

// enter runs a transition. When it succeeds, any running activity is closed and,
// if track is set, a new timer starts.
func (s *AssessmentService) enter(ctx context.Context, user *model.User, l *learner, track bool, transition func(m *assessment.Machine) error) error {
	prevActivity, running := l.machine.Active()
	prevTopic := l.machine.Topic()

	if err := transition(l.machine); err != nil {
		return err
	}
	if running && prevTopic != nil {
		s.endTracking(ctx, l, user, prevTopic.ID, prevActivity)
	}
	if track {
		l.tracker.Start()
	} else {
		l.tracker.Reset()
	}
	return nil
}

func (s *AssessmentService) endTracking(ctx context.Context, l *learner, user *model.User, topicID string, activity model.ActivityType) *model.StudySession {
	session, err := l.tracker.End(ctx, user, topicID, activity)
	if err != nil {
		logger.Log.Error("Failed to record study session", zap.String("user_id", user.ID), zap.Error(err))
	}
	return session
}

func (s *AssessmentService) load(userID, topicID string) (*model.User, *model.Topic, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, nil, err
	}
	topic, _, err := s.CategoryRepo.FindTopic(topicID)
	if err != nil {
		return nil, nil, err
	}
	return user, topic, nil
}

func (s *AssessmentService) StartStudy(ctx context.Context, userID, topicID string) (*assessment.State, error) {
	user, topic, err := s.load(userID, topicID)
	if err != nil {
		return nil, err
	}
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	err = s.enter(ctx, user, l, true, func(m *assessment.Machine) error {
		m.EnterStudy(*topic)
		return nil
	})
	if err != nil {
		return nil, err
	}
	state := l.machine.Snapshot()
	return &state, nil
}

func (s *AssessmentService) OpenPracticeSelect(ctx context.Context, userID, topicID string) (*PracticeOverview, error) {
	user, topic, err := s.load(userID, topicID)
	if err != nil {
		return nil, err
	}
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	err = s.enter(ctx, user, l, false, func(m *assessment.Machine) error {
		return m.EnterPracticeSelect(*topic)
	})
	if err != nil {
		return nil, err
	}
	return s.overview(userID, topic), nil
}

// StartPractice opens block when given, otherwise a random set.
func (s *AssessmentService) StartPractice(ctx context.Context, userID, topicID string, block *int) (*assessment.State, error) {
	user, topic, err := s.load(userID, topicID)
	if err != nil {
		return nil, err
	}
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	err = s.enter(ctx, user, l, true, func(m *assessment.Machine) error {
		return m.EnterPractice(*topic, block)
	})
	if err != nil {
		return nil, err
	}
	state := l.machine.Snapshot()
	return &state, nil
}

func (s *AssessmentService) StartExam(ctx context.Context, userID, topicID string) (*assessment.State, error) {
	user, topic, err := s.load(userID, topicID)
	if err != nil {
		return nil, err
	}
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	err = s.enter(ctx, user, l, true, func(m *assessment.Machine) error {
		return m.EnterExam(*topic)
	})
	if err != nil {
		return nil, err
	}
	state := l.machine.Snapshot()
	return &state, nil
}

func (s *AssessmentService) State(userID string) assessment.State {
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.machine.Snapshot()
}

func (s *AssessmentService) Answer(userID, value string) (*assessment.State, error) {
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.machine.Answer(value); err != nil {
		return nil, err
	}
	state := l.machine.Snapshot()
	return &state, nil
}

// GoTo ignores out-of-range indexes and returns the unchanged state.
func (s *AssessmentService) GoTo(userID string, index int) assessment.State {
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.machine.GoTo(index)
	return l.machine.Snapshot()
}

func (s *AssessmentService) Next(userID string) (*assessment.State, error) {
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.machine.Next(); err != nil {
		return nil, err
	}
	state := l.machine.Snapshot()
	return &state, nil
}

func (s *AssessmentService) Prev(userID string) assessment.State {
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.machine.Prev()
	return l.machine.Snapshot()
}

// Finish scores the running practice or exam and records its session. When scoring
// fails nothing is recorded and the attempt stays open.
func (s *AssessmentService) Finish(ctx context.Context, userID string) (*model.ExamResult, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	attempt, err := l.machine.Finish()
	if err != nil {
		return nil, err
	}

	// 计分失败时计时器保持运行，学员回到答题界面后可以再次提交
	duration := l.tracker.Elapsed()
	result, err := s.Scoring.Finalize(ctx, userID, attempt, duration)
	if err != nil {
		l.machine.Resume()
		return nil, err
	}

	s.endTracking(ctx, l, user, attempt.Topic.ID, attempt.Mode)
	l.machine.SetResult(result)
	return result, nil
}

// Exit abandons the current view, closing its timer so no session is left dangling.
func (s *AssessmentService) Exit(ctx context.Context, userID string) (*assessment.State, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()

	topic := l.machine.Topic()
	if activity, running := l.machine.Exit(); running && topic != nil {
		s.endTracking(ctx, l, user, topic.ID, activity)
	}
	l.tracker.Reset()

	state := l.machine.Snapshot()
	return &state, nil
}

// StudyTopic is the topic open in study view, used by comic generation.
func (s *AssessmentService) StudyTopic(userID string) (*model.Topic, error) {
	l := s.learner(userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.machine.View() != assessment.ViewStudy || l.machine.Topic() == nil {
		return nil, util.ErrNoActiveActivity
	}
	t := *l.machine.Topic()
	return &t, nil
}

func (s *AssessmentService) PracticeOverview(userID, topicID string) (*PracticeOverview, error) {
	topic, _, err := s.CategoryRepo.FindTopic(topicID)
	if err != nil {
		return nil, err
	}
	if !topic.HasQuestions() {
		return nil, util.ErrNoQuestions
	}
	return s.overview(userID, topic), nil
}

// overview lists blocks with completion and best score. The exam unlocks once every block is done.
func (s *AssessmentService) overview(userID string, topic *model.Topic) *PracticeOverview {
	count := topic.BlockCount()
	completed := map[int]bool{}
	for _, b := range s.CompletionRepo.Completed(userID, topic.ID) {
		completed[b] = true
	}

	o := &PracticeOverview{
		TopicID:        topic.ID,
		TopicTitle:     topic.Title,
		ExercisesCount: count,
		Exercises:      make([]ExerciseBlock, 0, count),
		ExamUnlocked:   count > 0,
	}
	for i := 0; i < count; i++ {
		block := ExerciseBlock{
			Index:         i,
			QuestionCount: len(topic.Block(i)),
			Completed:     completed[i],
		}
		if best, ok := s.ProgressRepo.BestScore(userID, topic.ID, i); ok {
			rank := gamification.RankFor(gamification.BlockPercentage(best))
			block.BestScore = &best
			block.Rank = &rank
		}
		if !block.Completed {
			o.ExamUnlocked = false
		}
		o.Exercises = append(o.Exercises, block)
	}
	return o
}
