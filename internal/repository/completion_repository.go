package repository

import (
	"context"
	"sort"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/util"
)

// CompletionRepository records which practice blocks each learner finished per topic.
type CompletionRepository struct {
	completed *collection[model.CompletedExercises]
}

func NewCompletionRepository(ctx context.Context, store KVStore) (*CompletionRepository, error) {
	c, err := loadCollection(ctx, store, util.KeyCompletedExercises, func() model.CompletedExercises {
		return model.CompletedExercises{}
	})
	if err != nil {
		return nil, err
	}
	return &CompletionRepository{completed: c}, nil
}

// MarkCompleted adds block to the set once. It reports whether the block was new.
func (r *CompletionRepository) MarkCompleted(ctx context.Context, userID, topicID string, block int) (bool, error) {
	if r.IsCompleted(userID, topicID, block) {
		return false, nil
	}
	added := false
	err := r.completed.update(ctx, func(data *model.CompletedExercises) error {
		if *data == nil {
			*data = model.CompletedExercises{}
		}
		topics := (*data)[userID]
		if topics == nil {
			topics = map[string][]int{}
			(*data)[userID] = topics
		}
		for _, b := range topics[topicID] {
			if b == block {
				return nil
			}
		}
		topics[topicID] = append(topics[topicID], block)
		added = true
		return nil
	})
	return added, err
}

func (r *CompletionRepository) IsCompleted(userID, topicID string, block int) bool {
	for _, b := range r.Completed(userID, topicID) {
		if b == block {
			return true
		}
	}
	return false
}

// Completed returns the finished block indexes in ascending order.
func (r *CompletionRepository) Completed(userID, topicID string) []int {
	var out []int
	r.completed.read(func(data model.CompletedExercises) {
		out = append(out, data[userID][topicID]...)
	})
	sort.Ints(out)
	return out
}

func (r *CompletionRepository) Reset(ctx context.Context) error {
	return r.completed.replace(ctx, model.CompletedExercises{})
}
