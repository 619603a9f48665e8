package model

import "time"

type Mistake struct {
	QuestionText  string `json:"questionText"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

// UserProgress is one finished practice or exam attempt. Records are never edited.
// swagger:model UserProgress
type UserProgress struct {
	UserID         string       `json:"userId"`
	TopicID        string       `json:"topicId"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"totalQuestions"`
	Timestamp      time.Time    `json:"timestamp"`
	Type           ActivityType `json:"type"` // practice or exam
	ExerciseIndex  *int         `json:"exerciseIndex,omitempty"`
	XPEarned       int          `json:"xpEarned"`
	Mistakes       []Mistake    `json:"mistakes,omitempty"`
}

// CompletedExercises maps userID -> topicID -> completed block indexes.
type CompletedExercises map[string]map[string][]int

type AnswerResult struct {
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
	Selected     string `json:"selected"`
	Correct      string `json:"correct"`
	IsCorrect    bool   `json:"isCorrect"`
	Explanation  string `json:"explanation"`
}

// ExamResult is the outcome shown right after an activity. It is not persisted.
// swagger:model ExamResult
type ExamResult struct {
	Score             int            `json:"score"`
	Total             int            `json:"total"`
	Answers           []AnswerResult `json:"answers"`
	Timestamp         time.Time      `json:"timestamp"`
	TopicTitle        string         `json:"topicTitle,omitempty"`
	XPEarned          int            `json:"xpEarned"`
	MissionXP         int            `json:"missionXp"`
	Type              ActivityType   `json:"type"`
	TimeTakenSeconds  int            `json:"timeTakenSeconds"`
	IsFlaggedForSpeed bool           `json:"isFlaggedForSpeed"`
	League            League         `json:"league,omitempty"`
	Promoted          bool           `json:"promoted"`
	CompletedMissions []string       `json:"completedMissions,omitempty"`
}

// ProgressStats aggregates a learner's attempt history.
type ProgressStats struct {
	PracticeCount   int     `json:"practiceCount"`
	ExamCount       int     `json:"examCount"`
	AverageAccuracy float64 `json:"averageAccuracy"` // mean of score/total, 0..1
}
