// Package tracker measures how long a learner spends in one study, practice or exam activity.
package tracker

import (
	"context"
	"math"
	"sync"
	"time"

	"english_quest_backend/internal/model"
)

// Recorder persists finished sessions.
type Recorder interface {
	AppendSession(ctx context.Context, session model.StudySession) error
}

type Option func(*Tracker)

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

// Tracker holds at most one running activity. Starting again overwrites a stale start.
type Tracker struct {
	mu       sync.Mutex
	start    *time.Time
	recorder Recorder
	now      func() time.Time
	newID    func() string
}

func New(recorder Recorder, opts ...Option) *Tracker {
	t := &Tracker{
		recorder: recorder,
		now:      time.Now,
		newID:    model.GenerateUUID,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.start = &now
}

func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.start != nil
}

// Elapsed is the rounded number of seconds since Start, or 0 when nothing is running.
func (t *Tracker) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.start == nil {
		return 0
	}
	return roundSeconds(t.now().Sub(*t.start))
}

// End closes the running activity and records it. Without a start, user or topic it is a no-op
// and returns a nil session.
func (t *Tracker) End(ctx context.Context, user *model.User, topicID string, activity model.ActivityType) (*model.StudySession, error) {
	t.mu.Lock()
	if t.start == nil || user == nil || topicID == "" {
		t.mu.Unlock()
		return nil, nil
	}
	started := *t.start
	now := t.now()
	t.start = nil
	t.mu.Unlock()

	session := model.StudySession{
		ID:              t.newID(),
		UserID:          user.ID,
		UserName:        user.Name,
		StartTime:       started,
		DurationSeconds: roundSeconds(now.Sub(started)),
		ActivityType:    activity,
		TopicID:         topicID,
		Timestamp:       now,
	}
	if t.recorder != nil {
		if err := t.recorder.AppendSession(ctx, session); err != nil {
			return &session, err
		}
	}
	return &session, nil
}

// Reset drops a running activity without recording it.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.start = nil
}

func roundSeconds(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(math.Round(float64(d) / float64(time.Second)))
}
