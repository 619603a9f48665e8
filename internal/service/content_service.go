package service

import (
	"context"
	"strings"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/util"
)

const (
	defaultCategoryDescription = "Nueva carpeta"
	defaultCategoryColor       = "bg-slate-500"
	defaultTopicDescription    = "Pendiente de contenido"
)

// ContentService 课程内容管理：分类、主题、题库
type ContentService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewContentService(categoryRepo *repository.CategoryRepository) *ContentService {
	return &ContentService{CategoryRepo: categoryRepo}
}

// TopicInput is the editable part of a topic.
type TopicInput struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Icon            model.Icon       `json:"icon"`
	ManualTheory    string           `json:"manualTheory"`
	ManualQuestions []model.Question `json:"manualQuestions"`
}

type QuestionInput struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

func (s *ContentService) Categories() ([]model.Category, error) {
	return s.CategoryRepo.List()
}

func (s *ContentService) Topic(topicID string) (*model.Topic, error) {
	topic, _, err := s.CategoryRepo.FindTopic(topicID)
	return topic, err
}

func (s *ContentService) CreateCategory(ctx context.Context, title string) (*model.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, util.ErrInvalidTitle
	}
	category := &model.Category{
		ID:          model.GenerateID("cat"),
		Title:       title,
		Description: defaultCategoryDescription,
		Color:       defaultCategoryColor,
		Topics:      []model.Topic{},
	}
	if err := s.CategoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *ContentService) UpdateCategory(ctx context.Context, categoryID, title, description string) (*model.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, util.ErrInvalidTitle
	}
	if err := s.CategoryRepo.UpdateMeta(ctx, categoryID, title, strings.TrimSpace(description)); err != nil {
		return nil, err
	}
	return s.CategoryRepo.FindCategory(categoryID)
}

func (s *ContentService) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.CategoryRepo.Delete(ctx, categoryID)
}

func (s *ContentService) CreateTopic(ctx context.Context, categoryID, title string) (*model.Topic, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, util.ErrInvalidTitle
	}
	topic := model.Topic{
		ID:          model.GenerateID("topic"),
		Title:       title,
		Description: defaultTopicDescription,
		Icon:        model.DefaultIcon,
	}
	if err := s.CategoryRepo.AddTopic(ctx, categoryID, topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

// SaveTopic replaces a topic's editable content. Questions without an id get one.
func (s *ContentService) SaveTopic(ctx context.Context, categoryID, topicID string, in TopicInput) (*model.Topic, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, util.ErrInvalidTitle
	}
	questions, err := normalizeQuestions(in.ManualQuestions)
	if err != nil {
		return nil, err
	}

	var saved model.Topic
	err = s.CategoryRepo.ModifyTopic(ctx, categoryID, topicID, func(t *model.Topic) error {
		t.Title = title
		t.Description = strings.TrimSpace(in.Description)
		t.Icon = model.ParseIcon(string(in.Icon))
		t.ManualTheory = in.ManualTheory
		t.ManualQuestions = questions
		saved = *t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// MoveTopic shifts a topic one slot; direction is "up" or "down".
func (s *ContentService) MoveTopic(ctx context.Context, categoryID, topicID, direction string) error {
	return s.CategoryRepo.MoveTopic(ctx, categoryID, topicID, direction == "up")
}

func (s *ContentService) DeleteTopic(ctx context.Context, categoryID, topicID string) error {
	return s.CategoryRepo.DeleteTopic(ctx, categoryID, topicID)
}

func (s *ContentService) SetTheory(ctx context.Context, categoryID, topicID, theory string) error {
	return s.CategoryRepo.ModifyTopic(ctx, categoryID, topicID, func(t *model.Topic) error {
		t.ManualTheory = theory
		return nil
	})
}

func (s *ContentService) AddQuestion(ctx context.Context, categoryID, topicID string, in QuestionInput) (*model.Question, error) {
	added, err := s.AppendQuestions(ctx, categoryID, topicID, []model.Question{{
		ID:            strings.TrimSpace(in.ID),
		Text:          in.Text,
		Options:       in.Options,
		CorrectAnswer: in.CorrectAnswer,
		Explanation:   in.Explanation,
	}})
	if err != nil {
		return nil, err
	}
	return &added[0], nil
}

// AppendQuestions adds questions at the end of the bank, so they land in the last blocks.
func (s *ContentService) AppendQuestions(ctx context.Context, categoryID, topicID string, qs []model.Question) ([]model.Question, error) {
	qs, err := normalizeQuestions(qs)
	if err != nil {
		return nil, err
	}
	err = s.CategoryRepo.ModifyTopic(ctx, categoryID, topicID, func(t *model.Topic) error {
		for _, q := range qs {
			if t.QuestionIndex(q.ID) >= 0 {
				return util.ErrDuplicateQuestion
			}
		}
		t.ManualQuestions = append(t.ManualQuestions, qs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return qs, nil
}

func (s *ContentService) DeleteQuestion(ctx context.Context, categoryID, topicID, questionID string) error {
	return s.CategoryRepo.ModifyTopic(ctx, categoryID, topicID, func(t *model.Topic) error {
		i := t.QuestionIndex(questionID)
		if i < 0 {
			return util.ErrQuestionNotFound
		}
		t.ManualQuestions = append(t.ManualQuestions[:i], t.ManualQuestions[i+1:]...)
		return nil
	})
}

// MoveQuestion swaps a question with its neighbour. Block membership follows the new order.
func (s *ContentService) MoveQuestion(ctx context.Context, categoryID, topicID, questionID, direction string) error {
	return s.CategoryRepo.ModifyTopic(ctx, categoryID, topicID, func(t *model.Topic) error {
		i := t.QuestionIndex(questionID)
		if i < 0 {
			return util.ErrQuestionNotFound
		}
		j := i + 1
		if direction == "up" {
			j = i - 1
		}
		if j < 0 || j >= len(t.ManualQuestions) {
			return nil
		}
		t.ManualQuestions[i], t.ManualQuestions[j] = t.ManualQuestions[j], t.ManualQuestions[i]
		return nil
	})
}

func normalizeQuestions(in []model.Question) ([]model.Question, error) {
	out := make([]model.Question, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, q := range in {
		q.Text = strings.TrimSpace(q.Text)
		q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
		if q.Text == "" || q.CorrectAnswer == "" {
			return nil, util.ErrInvalidQuestion
		}
		if q.ID == "" {
			q.ID = model.GenerateID("q")
		}
		if seen[q.ID] {
			return nil, util.ErrDuplicateQuestion
		}
		seen[q.ID] = true

		options := q.Options[:0:0]
		for _, o := range q.Options {
			if o = strings.TrimSpace(o); o != "" {
				options = append(options, o)
			}
		}
		q.Options = options
		out = append(out, q)
	}
	return out, nil
}
