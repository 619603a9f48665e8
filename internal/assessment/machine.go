// Package assessment is the per-learner state machine behind study, practice and exam flows.
package assessment

import (
	"strings"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/util"
)

type View string

const (
	ViewIdle           View = "idle"
	ViewStudy          View = "study"
	ViewPracticeSelect View = "practice-select"
	ViewPractice       View = "practice"
	ViewExam           View = "exam"
	ViewResults        View = "results"
)

const (
	PracticeSize = 10
	ExamSize     = 20
)

// StudyPlaceholder is shown when a topic has no authored theory yet.
const StudyPlaceholder = "# Próximamente\n\nEl profesor aún no ha añadido el contenido teórico para este tema."

// Source supplies random indexes. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Shuffle returns a uniformly permuted copy of questions (Fisher-Yates).
func Shuffle(src Source, questions []model.Question) []model.Question {
	out := make([]model.Question, len(questions))
	copy(out, questions)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Theory returns the topic's authored theory or the placeholder.
func Theory(topic model.Topic) string {
	if strings.TrimSpace(topic.ManualTheory) != "" {
		return topic.ManualTheory
	}
	return StudyPlaceholder
}

// Machine is not safe for concurrent use; callers serialize access per learner.
type Machine struct {
	src Source

	view         View
	topic        *model.Topic
	theory       string
	questions    []model.Question
	index        int
	answers      map[string]string
	showFeedback bool
	block        *int
	result       *model.ExamResult
	finishedMode View
}

func New(src Source) *Machine {
	return &Machine{
		src:     src,
		view:    ViewIdle,
		answers: map[string]string{},
	}
}

func (m *Machine) View() View {
	return m.view
}

func (m *Machine) Topic() *model.Topic {
	return m.topic
}

// Active reports which tracked activity is running, if any.
func (m *Machine) Active() (model.ActivityType, bool) {
	switch m.view {
	case ViewStudy:
		return model.ActivityStudy, true
	case ViewPractice:
		return model.ActivityPractice, true
	case ViewExam:
		return model.ActivityExam, true
	}
	return "", false
}

func (m *Machine) reset() {
	m.theory = ""
	m.questions = nil
	m.index = 0
	m.answers = map[string]string{}
	m.showFeedback = false
	m.block = nil
	m.result = nil
	m.finishedMode = ""
}

func (m *Machine) EnterStudy(topic model.Topic) string {
	m.reset()
	m.topic = &topic
	m.view = ViewStudy
	m.theory = Theory(topic)
	return m.theory
}

// EnterPracticeSelect opens the block picker. An empty bank is refused and nothing changes.
func (m *Machine) EnterPracticeSelect(topic model.Topic) error {
	if !topic.HasQuestions() {
		return util.ErrNoQuestions
	}
	m.reset()
	m.topic = &topic
	m.view = ViewPracticeSelect
	return nil
}

// EnterPractice starts a practice set: the authored block when block is set,
// otherwise PracticeSize random questions from the whole bank.
func (m *Machine) EnterPractice(topic model.Topic, block *int) error {
	if !topic.HasQuestions() {
		return util.ErrNoQuestions
	}

	var questions []model.Question
	if block != nil {
		if *block < 0 || *block >= topic.BlockCount() {
			return util.ErrBlockNotFound
		}
		questions = topic.Block(*block)
	} else {
		questions = take(Shuffle(m.src, topic.ManualQuestions), PracticeSize)
	}

	m.reset()
	m.topic = &topic
	m.view = ViewPractice
	m.theory = Theory(topic)
	m.questions = questions
	if block != nil {
		b := *block
		m.block = &b
	}
	return nil
}

// EnterExam draws up to ExamSize shuffled questions from the bank.
func (m *Machine) EnterExam(topic model.Topic) error {
	if !topic.HasQuestions() {
		return util.ErrNoExam
	}
	questions := take(Shuffle(m.src, topic.ManualQuestions), ExamSize)

	m.reset()
	m.topic = &topic
	m.view = ViewExam
	m.questions = questions
	return nil
}

func (m *Machine) answering() bool {
	return m.view == ViewPractice || m.view == ViewExam
}

func (m *Machine) current() *model.Question {
	if !m.answering() || m.index < 0 || m.index >= len(m.questions) {
		return nil
	}
	return &m.questions[m.index]
}

func (m *Machine) answered(q *model.Question) bool {
	return q != nil && m.answers[q.ID] != ""
}

// Answer records a value for the current question. Practice answers are final and reveal
// feedback at once; exam answers can be rewritten and stay hidden until the end.
func (m *Machine) Answer(value string) error {
	q := m.current()
	if q == nil {
		return util.ErrNoActiveActivity
	}

	if m.view == ViewExam {
		if value == "" {
			delete(m.answers, q.ID)
		} else {
			m.answers[q.ID] = value
		}
		return nil
	}

	if m.answered(q) {
		return util.ErrAlreadyAnswered
	}
	if strings.TrimSpace(value) == "" {
		return util.ErrAnswerRequired
	}
	if len(q.Options) > 0 && !contains(q.Options, value) {
		return util.ErrInvalidOption
	}
	m.answers[q.ID] = value
	m.showFeedback = true
	return nil
}

// GoTo moves to index when it is inside the set. Out-of-range requests are ignored.
func (m *Machine) GoTo(index int) bool {
	if !m.answering() || index < 0 || index >= len(m.questions) {
		return false
	}
	m.index = index
	if m.view == ViewPractice {
		m.showFeedback = m.answered(&m.questions[index])
	}
	return true
}

// CanAdvance is false in practice until the current question is answered.
func (m *Machine) CanAdvance() bool {
	if !m.answering() {
		return false
	}
	if m.view == ViewPractice && !m.answered(m.current()) {
		return false
	}
	return m.index < len(m.questions)-1
}

func (m *Machine) Next() error {
	if !m.answering() {
		return util.ErrNoActiveActivity
	}
	if m.view == ViewPractice && !m.answered(m.current()) {
		return util.ErrAnswerRequired
	}
	m.GoTo(m.index + 1)
	return nil
}

func (m *Machine) Prev() bool {
	return m.GoTo(m.index - 1)
}

// Finish closes the running practice or exam and moves to results.
func (m *Machine) Finish() (*Attempt, error) {
	if !m.answering() {
		return nil, util.ErrNoActiveActivity
	}
	mode, _ := m.Active()

	attempt := &Attempt{
		Mode:      mode,
		Topic:     *m.topic,
		Questions: append([]model.Question(nil), m.questions...),
		Answers:   make(map[string]string, len(m.answers)),
	}
	for k, v := range m.answers {
		attempt.Answers[k] = v
	}
	if m.block != nil {
		b := *m.block
		attempt.Block = &b
	}

	m.finishedMode = m.view
	m.view = ViewResults
	m.showFeedback = false
	return attempt, nil
}

// Resume reopens a finished attempt whose result was never recorded, keeping its
// answers and position so the learner can finish again.
func (m *Machine) Resume() bool {
	if m.view != ViewResults || m.result != nil {
		return false
	}
	if m.finishedMode != ViewPractice && m.finishedMode != ViewExam {
		return false
	}
	m.view = m.finishedMode
	m.finishedMode = ""
	if m.view == ViewPractice {
		m.showFeedback = m.answered(m.current())
	}
	return true
}

func (m *Machine) SetResult(result *model.ExamResult) {
	m.result = result
}

// Exit leaves the current view. It reports the activity that was running so the
// caller can close its timer.
func (m *Machine) Exit() (model.ActivityType, bool) {
	activity, running := m.Active()

	next := ViewIdle
	if m.view == ViewPractice || (m.view == ViewResults && m.finishedMode == ViewPractice) {
		next = ViewPracticeSelect
	}

	topic := m.topic
	m.reset()
	m.view = next
	if next == ViewIdle {
		m.topic = nil
	} else {
		m.topic = topic
	}
	return activity, running
}

func take(questions []model.Question, n int) []model.Question {
	if len(questions) > n {
		return questions[:n]
	}
	return questions
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
