package assessment

import (
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/util"
)

type QuestionView struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options,omitempty"`
	FreeText bool     `json:"freeText"`
}

type Feedback struct {
	Selected      string `json:"selected"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

// State is what a client needs to render the current view.
type State struct {
	View       View              `json:"view"`
	TopicID    string            `json:"topicId,omitempty"`
	TopicTitle string            `json:"topicTitle,omitempty"`
	Theory     string            `json:"theory,omitempty"`
	Index      int               `json:"index"`
	Total      int               `json:"total"`
	Answered   int               `json:"answered"`
	Question   *QuestionView     `json:"question,omitempty"`
	Answer     string            `json:"answer,omitempty"`
	Feedback   *Feedback         `json:"feedback,omitempty"`
	CanNext    bool              `json:"canNext"`
	CanPrev    bool              `json:"canPrev"`
	IsLast     bool              `json:"isLast"`
	Block      *int              `json:"block,omitempty"`
	Result     *model.ExamResult `json:"result,omitempty"`
}

func (m *Machine) Snapshot() State {
	s := State{
		View:   m.view,
		Theory: m.theory,
		Index:  m.index,
		Total:  len(m.questions),
		Block:  m.block,
		Result: m.result,
	}
	if m.topic != nil {
		s.TopicID = m.topic.ID
		s.TopicTitle = m.topic.Title
	}
	for _, q := range m.questions {
		if m.answers[q.ID] != "" {
			s.Answered++
		}
	}

	q := m.current()
	if q == nil {
		return s
	}
	s.Question = &QuestionView{ID: q.ID, Text: q.Text}
	if m.view == ViewPractice && len(q.Options) > 0 {
		s.Question.Options = append([]string(nil), q.Options...)
	} else {
		s.Question.FreeText = true
	}
	s.Answer = m.answers[q.ID]
	s.CanNext = m.CanAdvance()
	s.CanPrev = m.index > 0
	s.IsLast = m.index == len(m.questions)-1

	if m.view == ViewPractice && m.showFeedback {
		s.Feedback = &Feedback{
			Selected:      s.Answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     util.AnswersMatch(s.Answer, q.CorrectAnswer),
			Explanation:   q.Explanation,
		}
	}
	return s
}
