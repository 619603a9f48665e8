package model

import "time"

type ActivityType string

const (
	ActivityStudy    ActivityType = "study"
	ActivityPractice ActivityType = "practice"
	ActivityExam     ActivityType = "exam"
)

// StudySession is appended once when a study, practice or exam activity ends.
// swagger:model StudySession
type StudySession struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	UserName        string       `json:"userName"`
	StartTime       time.Time    `json:"startTime"`
	DurationSeconds int          `json:"durationSeconds"`
	ActivityType    ActivityType `json:"activityType"`
	TopicID         string       `json:"topicId"`
	Timestamp       time.Time    `json:"timestamp"`
}
