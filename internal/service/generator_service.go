package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"english_quest_backend/internal/config"
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/util"
	"english_quest_backend/pkg/logger"
	"english_quest_backend/pkg/monitoring"
	"english_quest_backend/pkg/tracing"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	TheoryErrorText = "Hubo un error generando la explicación. Por favor intenta de nuevo."
	TheoryEmptyText = "No se pudo generar la teoría."

	defaultQuestionCount = 5
	maxQuestionCount     = 20
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyHard:
		return d
	}
	return DifficultyMedium
}

type ComicResult struct {
	ImageBase64 string `json:"imageBase64"`
	DataURL     string `json:"dataUrl"`
	URL         string `json:"url,omitempty"`
}

// GeneratorService wraps the external content model. Only one request runs at a time;
// failures degrade to fixed text, an empty list or an image error.
type GeneratorService struct {
	Storage *StorageService
	Content *ContentService

	mu       sync.RWMutex
	cfg      config.AIConfig
	backend  ContentGenerator
	inflight *semaphore.Weighted
}

func NewGeneratorService(ctx context.Context, cfg config.AIConfig, storage *StorageService, content *ContentService) *GeneratorService {
	s := &GeneratorService{
		Storage:  storage,
		Content:  content,
		inflight: semaphore.NewWeighted(1),
	}
	s.UpdateConfig(ctx, cfg)
	return s
}

// UpdateConfig swaps the backend, used by config hot reload.
func (s *GeneratorService) UpdateConfig(ctx context.Context, cfg config.AIConfig) {
	backend, err := NewContentGenerator(ctx, cfg)
	if err != nil {
		logger.Log.Warn("Content generator disabled", zap.Error(err))
		backend = nil
	}
	s.SetBackend(cfg, backend)
}

func (s *GeneratorService) SetBackend(cfg config.AIConfig, backend ContentGenerator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.backend = backend
}

func (s *GeneratorService) current() (ContentGenerator, time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	timeout := time.Duration(s.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}
	return s.backend, timeout
}

func (s *GeneratorService) acquire() error {
	if !s.inflight.TryAcquire(1) {
		return util.ErrGenerationInProgress
	}
	return nil
}

// GenerateTheory returns markdown for topicTitle, or a fixed message when generation fails.
// The only error is ErrGenerationInProgress.
func (s *GeneratorService) GenerateTheory(ctx context.Context, topicTitle string) (string, error) {
	if err := s.acquire(); err != nil {
		return "", err
	}
	defer s.inflight.Release(1)

	ctx, span := tracing.Tracer.Start(ctx, "generator.theory")
	defer span.End()

	text, err := s.generateText(ctx, theoryPrompt(topicTitle), false)
	if err != nil {
		s.recordFailure("theory", err)
		return TheoryErrorText, nil
	}
	if strings.TrimSpace(text) == "" {
		return TheoryEmptyText, nil
	}
	return text, nil
}

// GenerateQuestions returns up to count multiple-choice questions. Any failure yields an
// empty list, which callers treat as "no questions available".
func (s *GeneratorService) GenerateQuestions(ctx context.Context, topicTitle string, count int, difficulty Difficulty) ([]model.Question, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.inflight.Release(1)

	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	ctx, span := tracing.Tracer.Start(ctx, "generator.questions")
	defer span.End()

	raw, err := s.generateText(ctx, questionsPrompt(topicTitle, count, difficulty), true)
	if err != nil {
		s.recordFailure("questions", err)
		return []model.Question{}, nil
	}
	questions, err := parseGeneratedQuestions(raw)
	if err != nil {
		s.recordFailure("questions", err)
		return []model.Question{}, nil
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// GenerateComic draws the study comic for topic and stores it when storage is available.
func (s *GeneratorService) GenerateComic(ctx context.Context, topic *model.Topic) (*ComicResult, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.inflight.Release(1)

	ctx, span := tracing.Tracer.Start(ctx, "generator.comic")
	defer span.End()

	backend, timeout := s.current()
	if backend == nil {
		s.recordFailure("comic", fmt.Errorf("no backend"))
		return nil, util.ErrImageGeneration
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data, err := backend.GenerateImage(ctx, comicPrompt(topic.ID))
	if err != nil {
		s.recordFailure("comic", err)
		return nil, util.ErrImageGeneration
	}
	mimeType, err := util.DetectImageType(data)
	if err != nil {
		s.recordFailure("comic", err)
		return nil, util.ErrImageGeneration
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	result := &ComicResult{
		ImageBase64: encoded,
		DataURL:     "data:" + mimeType + ";base64," + encoded,
	}
	if s.Storage != nil {
		url, err := s.Storage.UploadImage(ctx, "comics/"+topic.ID, data)
		if err != nil {
			logger.Log.Warn("Failed to store comic", zap.String("topic_id", topic.ID), zap.Error(err))
		} else {
			result.URL = url
		}
	}
	return result, nil
}

// DraftTheory generates theory for a stored topic and optionally saves it.
func (s *GeneratorService) DraftTheory(ctx context.Context, categoryID, topicID string, save bool) (string, error) {
	topic, err := s.topicIn(categoryID, topicID)
	if err != nil {
		return "", err
	}
	theory, err := s.GenerateTheory(ctx, topic.Title)
	if err != nil {
		return "", err
	}
	if save && theory != TheoryErrorText && theory != TheoryEmptyText {
		if err := s.Content.SetTheory(ctx, categoryID, topicID, theory); err != nil {
			return "", err
		}
	}
	return theory, nil
}

// DraftQuestions generates questions for a stored topic and optionally appends them to its bank.
func (s *GeneratorService) DraftQuestions(ctx context.Context, categoryID, topicID string, count int, difficulty Difficulty, save bool) ([]model.Question, error) {
	topic, err := s.topicIn(categoryID, topicID)
	if err != nil {
		return nil, err
	}
	questions, err := s.GenerateQuestions(ctx, topic.Title, count, difficulty)
	if err != nil {
		return nil, err
	}
	if save && len(questions) > 0 {
		return s.Content.AppendQuestions(ctx, categoryID, topicID, questions)
	}
	return questions, nil
}

func (s *GeneratorService) topicIn(categoryID, topicID string) (*model.Topic, error) {
	category, err := s.Content.CategoryRepo.FindCategory(categoryID)
	if err != nil {
		return nil, err
	}
	i := category.TopicIndex(topicID)
	if i < 0 {
		return nil, util.ErrTopicNotFound
	}
	return &category.Topics[i], nil
}

func (s *GeneratorService) generateText(ctx context.Context, prompt string, asJSON bool) (string, error) {
	backend, timeout := s.current()
	if backend == nil {
		return "", fmt.Errorf("content generator is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return backend.GenerateText(ctx, prompt, asJSON)
}

func (s *GeneratorService) recordFailure(kind string, err error) {
	monitoring.GeneratorFailures.WithLabelValues(kind).Inc()
	logger.Log.Warn("Content generation failed", zap.String("kind", kind), zap.Error(err))
}

// parseGeneratedQuestions accepts {"questions":[...]} or a bare array, optionally fenced.
// Items without text or answer are dropped and ids are made unique.
func parseGeneratedQuestions(raw string) ([]model.Question, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return nil, fmt.Errorf("empty response")
	}

	var items []model.Question
	if strings.HasPrefix(clean, "[") {
		if err := json.Unmarshal([]byte(clean), &items); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
	} else {
		var wrapped struct {
			Questions []model.Question `json:"questions"`
		}
		if err := json.Unmarshal([]byte(clean), &wrapped); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
		items = wrapped.Questions
	}

	out := make([]model.Question, 0, len(items))
	seen := map[string]bool{}
	for _, q := range items {
		if strings.TrimSpace(q.Text) == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
			continue
		}
		if q.ID == "" || seen[q.ID] {
			q.ID = model.GenerateID("ai")
		}
		seen[q.ID] = true
		out = append(out, q)
	}
	return out, nil
}
