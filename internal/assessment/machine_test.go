package assessment_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"testing"

	"english_quest_backend/internal/assessment"
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/util"
)

func newMachine() *assessment.Machine {
	return assessment.New(rand.New(rand.NewPCG(1, 2)))
}

func bank(n int) model.Topic {
	t := model.Topic{ID: "topic", Title: "Topic", ManualTheory: "# Theory"}
	for i := 1; i <= n; i++ {
		t.ManualQuestions = append(t.ManualQuestions, model.Question{
			ID:            fmt.Sprintf("q%d", i),
			Text:          fmt.Sprintf("question %d", i),
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
			Explanation:   "because",
		})
	}
	return t
}

func intPtr(i int) *int { return &i }

func TestShuffleIsDeterministicPermutation(t *testing.T) {
	topic := bank(30)
	a := assessment.Shuffle(rand.New(rand.NewPCG(7, 7)), topic.ManualQuestions)
	b := assessment.Shuffle(rand.New(rand.NewPCG(7, 7)), topic.ManualQuestions)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different orders")
	}
	seen := map[string]bool{}
	for _, q := range a {
		seen[q.ID] = true
	}
	if len(seen) != 30 {
		t.Fatalf("shuffle lost questions: %d distinct", len(seen))
	}
	if topic.ManualQuestions[0].ID != "q1" {
		t.Fatal("shuffle mutated its input")
	}
}

func TestEnterPracticeRandomDrawsTen(t *testing.T) {
	m := newMachine()
	if err := m.EnterPractice(bank(24), nil); err != nil {
		t.Fatalf("EnterPractice: %v", err)
	}
	s := m.Snapshot()
	if s.View != assessment.ViewPractice || s.Total != assessment.PracticeSize {
		t.Fatalf("got view=%s total=%d", s.View, s.Total)
	}
	if s.Theory != "# Theory" {
		t.Errorf("practice should carry theory, got %q", s.Theory)
	}
}

func TestEnterPracticeSmallBankTakesAll(t *testing.T) {
	m := newMachine()
	if err := m.EnterPractice(bank(4), nil); err != nil {
		t.Fatal(err)
	}
	if got := m.Snapshot().Total; got != 4 {
		t.Fatalf("got total=%d want 4", got)
	}
}

func TestEnterPracticeBlockKeepsAuthoredOrder(t *testing.T) {
	m := newMachine()
	if err := m.EnterPractice(bank(24), intPtr(2)); err != nil {
		t.Fatal(err)
	}
	s := m.Snapshot()
	if s.Total != 4 {
		t.Fatalf("last block: got %d questions want 4", s.Total)
	}
	if s.Question.ID != "q21" {
		t.Errorf("first question: got %s want q21", s.Question.ID)
	}
	if s.Block == nil || *s.Block != 2 {
		t.Errorf("block not recorded: %v", s.Block)
	}
}

func TestEnterPracticeBlockOutOfRange(t *testing.T) {
	m := newMachine()
	before := m.Snapshot()
	for _, b := range []int{-1, 3} {
		if err := m.EnterPractice(bank(24), intPtr(b)); !errors.Is(err, util.ErrBlockNotFound) {
			t.Errorf("block %d: got err=%v", b, err)
		}
	}
	if !reflect.DeepEqual(before, m.Snapshot()) {
		t.Error("state changed after refused entry")
	}
}

func TestEnterExamDrawsTwenty(t *testing.T) {
	m := newMachine()
	if err := m.EnterExam(bank(30)); err != nil {
		t.Fatal(err)
	}
	s := m.Snapshot()
	if s.Total != assessment.ExamSize {
		t.Fatalf("got %d want %d", s.Total, assessment.ExamSize)
	}
	if s.Question.Options != nil || !s.Question.FreeText {
		t.Error("exam questions must be free text")
	}
}

func TestEmptyBankIsRefusedWithoutTransition(t *testing.T) {
	m := newMachine()
	m.EnterStudy(bank(3))
	before := m.Snapshot()

	empty := model.Topic{ID: "empty", Title: "Empty"}
	if err := m.EnterPracticeSelect(empty); !errors.Is(err, util.ErrNoQuestions) {
		t.Errorf("practice select: got %v", err)
	}
	if err := m.EnterPractice(empty, nil); !errors.Is(err, util.ErrNoQuestions) {
		t.Errorf("practice: got %v", err)
	}
	if err := m.EnterExam(empty); !errors.Is(err, util.ErrNoExam) {
		t.Errorf("exam: got %v", err)
	}
	if !reflect.DeepEqual(before, m.Snapshot()) {
		t.Fatal("view changed after refusals")
	}
}

func TestStudyPlaceholder(t *testing.T) {
	m := newMachine()
	got := m.EnterStudy(model.Topic{ID: "t", ManualTheory: "  \n"})
	if got != assessment.StudyPlaceholder {
		t.Fatalf("got %q", got)
	}
	if act, ok := m.Active(); !ok || act != model.ActivityStudy {
		t.Fatalf("active: %s %v", act, ok)
	}
}

func TestNavigationBounds(t *testing.T) {
	m := newMachine()
	if err := m.EnterExam(bank(5)); err != nil {
		t.Fatal(err)
	}
	if m.Prev() {
		t.Error("Prev at first question should be ignored")
	}
	if m.GoTo(-1) || m.GoTo(5) {
		t.Error("out-of-range GoTo accepted")
	}
	if got := m.Snapshot().Index; got != 0 {
		t.Fatalf("index moved to %d", got)
	}
	if !m.GoTo(4) {
		t.Fatal("GoTo(4) refused")
	}
	s := m.Snapshot()
	if !s.IsLast || s.CanNext {
		t.Errorf("last question: isLast=%v canNext=%v", s.IsLast, s.CanNext)
	}
	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if got := m.Snapshot().Index; got != 4 {
		t.Errorf("Next past the end moved to %d", got)
	}
}

func TestPracticeAnswerGating(t *testing.T) {
	m := newMachine()
	if err := m.EnterPractice(bank(10), intPtr(0)); err != nil {
		t.Fatal(err)
	}

	if s := m.Snapshot(); s.CanNext || s.Feedback != nil {
		t.Fatal("unanswered question must not allow next or show feedback")
	}
	if err := m.Next(); !errors.Is(err, util.ErrAnswerRequired) {
		t.Fatalf("Next unanswered: got %v", err)
	}
	if err := m.Answer("maybe"); !errors.Is(err, util.ErrInvalidOption) {
		t.Fatalf("invalid option: got %v", err)
	}
	if err := m.Answer(""); !errors.Is(err, util.ErrAnswerRequired) {
		t.Fatalf("empty answer: got %v", err)
	}
	if err := m.Answer("wrong"); err != nil {
		t.Fatal(err)
	}
	if err := m.Answer("right"); !errors.Is(err, util.ErrAlreadyAnswered) {
		t.Fatalf("second answer: got %v", err)
	}

	s := m.Snapshot()
	if s.Feedback == nil || s.Feedback.IsCorrect || s.Feedback.CorrectAnswer != "right" {
		t.Fatalf("feedback: %+v", s.Feedback)
	}
	if !s.CanNext {
		t.Fatal("answered question should allow next")
	}
	if err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if s := m.Snapshot(); s.Index != 1 || s.Feedback != nil {
		t.Fatalf("after next: index=%d feedback=%v", s.Index, s.Feedback)
	}
	if !m.Prev() || m.Snapshot().Feedback == nil {
		t.Fatal("revisiting an answered question should show its feedback")
	}
}

func TestExamAnswersCanBeRewrittenAndCleared(t *testing.T) {
	m := newMachine()
	if err := m.EnterExam(bank(2)); err != nil {
		t.Fatal(err)
	}
	_ = m.Answer("first")
	_ = m.Answer("second")
	s := m.Snapshot()
	if s.Answer != "second" || s.Feedback != nil {
		t.Fatalf("answer=%q feedback=%v", s.Answer, s.Feedback)
	}
	_ = m.Answer("")
	if got := m.Snapshot().Answered; got != 0 {
		t.Fatalf("cleared answer still counted: %d", got)
	}
}

func TestExamGradingEndToEnd(t *testing.T) {
	topic := model.Topic{ID: "t", Title: "Contractions", ManualQuestions: []model.Question{
		{ID: "a", Text: "I ___ like it.", CorrectAnswer: "do not"},
		{ID: "b", Text: "They ___ here.", CorrectAnswer: "are not"},
		{ID: "c", Text: "She ___ go.", CorrectAnswer: "will not"},
	}}
	given := map[string]string{"a": "Don't", "b": "  aren't. ", "c": "would not"}

	m := newMachine()
	if err := m.EnterExam(topic); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		m.GoTo(i)
		if err := m.Answer(given[m.Snapshot().Question.ID]); err != nil {
			t.Fatal(err)
		}
	}

	attempt, err := m.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if m.View() != assessment.ViewResults {
		t.Fatalf("view after finish: %s", m.View())
	}
	g := attempt.Grade()
	if g.Score != 2 || attempt.Total() != 3 {
		t.Fatalf("score=%d total=%d", g.Score, attempt.Total())
	}
	if len(g.Mistakes) != 1 || g.Mistakes[0].CorrectAnswer != "will not" {
		t.Fatalf("mistakes: %+v", g.Mistakes)
	}
}

func TestUnansweredCountsAsWrong(t *testing.T) {
	m := newMachine()
	if err := m.EnterPractice(bank(3), intPtr(0)); err != nil {
		t.Fatal(err)
	}
	_ = m.Answer("right")
	attempt, err := m.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if g := attempt.Grade(); g.Score != 1 || len(g.Answers) != 3 {
		t.Fatalf("score=%d answers=%d", g.Score, len(g.Answers))
	}
}

func TestFinishRequiresActivity(t *testing.T) {
	m := newMachine()
	if _, err := m.Finish(); !errors.Is(err, util.ErrNoActiveActivity) {
		t.Fatalf("got %v", err)
	}
	if err := m.Answer("x"); !errors.Is(err, util.ErrNoActiveActivity) {
		t.Fatalf("got %v", err)
	}
}

func TestExitTransitions(t *testing.T) {
	m := newMachine()
	topic := bank(12)

	m.EnterStudy(topic)
	if act, ok := m.Exit(); !ok || act != model.ActivityStudy || m.View() != assessment.ViewIdle {
		t.Fatalf("study exit: %s %v %s", act, ok, m.View())
	}

	_ = m.EnterPractice(topic, intPtr(1))
	if act, ok := m.Exit(); !ok || act != model.ActivityPractice || m.View() != assessment.ViewPracticeSelect {
		t.Fatalf("practice exit: %s %v %s", act, ok, m.View())
	}
	if m.Topic() == nil || m.Topic().ID != "topic" {
		t.Fatal("practice select lost its topic")
	}

	_ = m.EnterPractice(topic, intPtr(0))
	if _, err := m.Finish(); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Exit(); ok || m.View() != assessment.ViewPracticeSelect {
		t.Fatalf("results exit after practice: %v %s", ok, m.View())
	}

	_ = m.EnterExam(topic)
	if act, ok := m.Exit(); !ok || act != model.ActivityExam || m.View() != assessment.ViewIdle {
		t.Fatalf("exam exit: %s %v %s", act, ok, m.View())
	}
}

func TestResumeReopensUnrecordedFinish(t *testing.T) {
	m := newMachine()
	topic := bank(12)
	_ = m.EnterPractice(topic, intPtr(0))
	m.GoTo(3)
	if err := m.Answer("right"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Finish(); err != nil {
		t.Fatal(err)
	}

	if !m.Resume() {
		t.Fatal("resume refused")
	}
	s := m.Snapshot()
	if s.View != assessment.ViewPractice || s.Index != 3 || s.Answered != 1 || s.Feedback == nil {
		t.Fatalf("resumed state: %+v", s)
	}
	if _, err := m.Finish(); err != nil {
		t.Fatalf("second finish: %v", err)
	}

	m.SetResult(&model.ExamResult{Score: 1, Total: 10})
	if m.Resume() || m.View() != assessment.ViewResults {
		t.Fatalf("resume after a recorded result: %s", m.View())
	}

	m.EnterStudy(topic)
	if m.Resume() || m.View() != assessment.ViewStudy {
		t.Fatalf("resume outside results: %s", m.View())
	}
}
