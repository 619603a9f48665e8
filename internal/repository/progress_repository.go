package repository

import (
	"context"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/util"
)

// ProgressRepository is the append-only attempt history.
type ProgressRepository struct {
	records *collection[[]model.UserProgress]
}

func NewProgressRepository(ctx context.Context, store KVStore) (*ProgressRepository, error) {
	c, err := loadCollection(ctx, store, util.KeyProgress, func() []model.UserProgress { return nil })
	if err != nil {
		return nil, err
	}
	return &ProgressRepository{records: c}, nil
}

func (r *ProgressRepository) Append(ctx context.Context, p model.UserProgress) error {
	return r.records.update(ctx, func(records *[]model.UserProgress) error {
		*records = append(*records, p)
		return nil
	})
}

// ListByUser returns the learner's attempts, newest first.
func (r *ProgressRepository) ListByUser(userID string) []model.UserProgress {
	var out []model.UserProgress
	r.records.read(func(records []model.UserProgress) {
		for i := len(records) - 1; i >= 0; i-- {
			if records[i].UserID == userID {
				out = append(out, records[i])
			}
		}
	})
	return out
}

// BestScore is the highest practice score for one block of a topic.
func (r *ProgressRepository) BestScore(userID, topicID string, block int) (int, bool) {
	best, found := 0, false
	r.records.read(func(records []model.UserProgress) {
		for _, p := range records {
			if p.UserID != userID || p.TopicID != topicID || p.Type != model.ActivityPractice {
				continue
			}
			if p.ExerciseIndex == nil || *p.ExerciseIndex != block {
				continue
			}
			if !found || p.Score > best {
				best, found = p.Score, true
			}
		}
	})
	return best, found
}

func (r *ProgressRepository) Stats(userID string) model.ProgressStats {
	var stats model.ProgressStats
	var sum float64
	var n int
	r.records.read(func(records []model.UserProgress) {
		for _, p := range records {
			if p.UserID != userID {
				continue
			}
			switch p.Type {
			case model.ActivityPractice:
				stats.PracticeCount++
			case model.ActivityExam:
				stats.ExamCount++
			}
			if p.TotalQuestions > 0 {
				sum += float64(p.Score) / float64(p.TotalQuestions)
			}
			n++
		}
	})
	if n > 0 {
		stats.AverageAccuracy = sum / float64(n)
	}
	return stats
}

func (r *ProgressRepository) Reset(ctx context.Context) error {
	return r.records.replace(ctx, nil)
}
