package repository

import (
	"context"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/util"
)

// SessionRepository is the append-only study session log. It satisfies tracker.Recorder.
type SessionRepository struct {
	sessions *collection[[]model.StudySession]
}

func NewSessionRepository(ctx context.Context, store KVStore) (*SessionRepository, error) {
	c, err := loadCollection(ctx, store, util.KeySessions, func() []model.StudySession { return nil })
	if err != nil {
		return nil, err
	}
	return &SessionRepository{sessions: c}, nil
}

func (r *SessionRepository) AppendSession(ctx context.Context, s model.StudySession) error {
	return r.sessions.update(ctx, func(sessions *[]model.StudySession) error {
		*sessions = append(*sessions, s)
		return nil
	})
}

func (r *SessionRepository) ListByUser(userID string) []model.StudySession {
	var out []model.StudySession
	r.sessions.read(func(sessions []model.StudySession) {
		for i := len(sessions) - 1; i >= 0; i-- {
			if sessions[i].UserID == userID {
				out = append(out, sessions[i])
			}
		}
	})
	return out
}

// SecondsByActivity sums recorded durations per activity type.
func (r *SessionRepository) SecondsByActivity(userID string) map[model.ActivityType]int {
	totals := map[model.ActivityType]int{}
	r.sessions.read(func(sessions []model.StudySession) {
		for _, s := range sessions {
			if s.UserID == userID {
				totals[s.ActivityType] += s.DurationSeconds
			}
		}
	})
	return totals
}

func (r *SessionRepository) Reset(ctx context.Context) error {
	return r.sessions.replace(ctx, nil)
}
