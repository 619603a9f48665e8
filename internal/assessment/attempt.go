package assessment

import (
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/util"
)

// Attempt is a finished practice or exam set, ready for scoring.
type Attempt struct {
	Mode      model.ActivityType
	Topic     model.Topic
	Questions []model.Question
	Answers   map[string]string
	Block     *int
}

type Grading struct {
	Score    int
	Answers  []model.AnswerResult
	Mistakes []model.Mistake
}

// Grade compares every normalized answer with the normalized correct answer.
// Missing answers count as wrong.
func (a *Attempt) Grade() Grading {
	g := Grading{Answers: make([]model.AnswerResult, 0, len(a.Questions))}
	for _, q := range a.Questions {
		selected := a.Answers[q.ID]
		correct := util.AnswersMatch(selected, q.CorrectAnswer)
		if correct {
			g.Score++
		} else {
			g.Mistakes = append(g.Mistakes, model.Mistake{
				QuestionText:  q.Text,
				UserAnswer:    selected,
				CorrectAnswer: q.CorrectAnswer,
			})
		}
		g.Answers = append(g.Answers, model.AnswerResult{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			Selected:     selected,
			Correct:      q.CorrectAnswer,
			IsCorrect:    correct,
			Explanation:  q.Explanation,
		})
	}
	return g
}

func (a *Attempt) Total() int {
	return len(a.Questions)
}
