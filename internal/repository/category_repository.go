package repository

import (
	"context"
	"fmt"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/seed"
	"english_quest_backend/internal/util"
)

// CategoryRepository owns the whole category/topic/question tree as one document.
type CategoryRepository struct {
	categories *collection[[]model.Category]
}

func NewCategoryRepository(ctx context.Context, store KVStore) (*CategoryRepository, error) {
	c, err := loadCollection(ctx, store, util.KeyCategories, seed.Categories)
	if err != nil {
		return nil, err
	}
	return &CategoryRepository{categories: c}, nil
}

func (r *CategoryRepository) List() ([]model.Category, error) {
	var (
		out []model.Category
		err error
	)
	r.categories.read(func(cats []model.Category) {
		out, err = deepCopy(cats)
	})
	if err != nil {
		return nil, fmt.Errorf("copy categories: %w", err)
	}
	return out, nil
}

// FindCategory returns a copy of one category.
func (r *CategoryRepository) FindCategory(id string) (*model.Category, error) {
	var (
		out *model.Category
		err error
	)
	r.categories.read(func(cats []model.Category) {
		for i := range cats {
			if cats[i].ID == id {
				var c model.Category
				c, err = deepCopy(cats[i])
				out = &c
				return
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("copy category %s: %w", id, err)
	}
	if out == nil {
		return nil, util.ErrCategoryNotFound
	}
	return out, nil
}

// FindTopic searches every category and returns a copy of the topic with its owning category id.
func (r *CategoryRepository) FindTopic(topicID string) (*model.Topic, string, error) {
	var (
		out        *model.Topic
		categoryID string
		err        error
	)
	r.categories.read(func(cats []model.Category) {
		for i := range cats {
			if j := cats[i].TopicIndex(topicID); j >= 0 {
				var t model.Topic
				t, err = deepCopy(cats[i].Topics[j])
				out, categoryID = &t, cats[i].ID
				return
			}
		}
	})
	if err != nil {
		return nil, "", fmt.Errorf("copy topic %s: %w", topicID, err)
	}
	if out == nil {
		return nil, "", util.ErrTopicNotFound
	}
	return out, categoryID, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.categories.update(ctx, func(cats *[]model.Category) error {
		*cats = append(*cats, *category)
		return nil
	})
}

func (r *CategoryRepository) UpdateMeta(ctx context.Context, id, title, description string) error {
	return r.modifyCategory(ctx, id, func(c *model.Category) error {
		c.Title = title
		c.Description = description
		return nil
	})
}

// Delete removes the category together with its topics.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.categories.update(ctx, func(cats *[]model.Category) error {
		for i := range *cats {
			if (*cats)[i].ID == id {
				*cats = append((*cats)[:i], (*cats)[i+1:]...)
				return nil
			}
		}
		return util.ErrCategoryNotFound
	})
}

func (r *CategoryRepository) AddTopic(ctx context.Context, categoryID string, topic model.Topic) error {
	return r.modifyCategory(ctx, categoryID, func(c *model.Category) error {
		if c.TopicIndex(topic.ID) >= 0 {
			return util.ErrDuplicateTopic
		}
		c.Topics = append(c.Topics, topic)
		return nil
	})
}

// SaveTopic replaces the stored topic that has the same id.
func (r *CategoryRepository) SaveTopic(ctx context.Context, categoryID string, topic model.Topic) error {
	return r.ModifyTopic(ctx, categoryID, topic.ID, func(t *model.Topic) error {
		*t = topic
		return nil
	})
}

func (r *CategoryRepository) ModifyTopic(ctx context.Context, categoryID, topicID string, fn func(t *model.Topic) error) error {
	return r.modifyCategory(ctx, categoryID, func(c *model.Category) error {
		i := c.TopicIndex(topicID)
		if i < 0 {
			return util.ErrTopicNotFound
		}
		return fn(&c.Topics[i])
	})
}

// MoveTopic swaps the topic with its neighbour; moving past either edge is a no-op.
func (r *CategoryRepository) MoveTopic(ctx context.Context, categoryID, topicID string, up bool) error {
	return r.modifyCategory(ctx, categoryID, func(c *model.Category) error {
		i := c.TopicIndex(topicID)
		if i < 0 {
			return util.ErrTopicNotFound
		}
		j := i + 1
		if up {
			j = i - 1
		}
		if j < 0 || j >= len(c.Topics) {
			return nil
		}
		c.Topics[i], c.Topics[j] = c.Topics[j], c.Topics[i]
		return nil
	})
}

func (r *CategoryRepository) DeleteTopic(ctx context.Context, categoryID, topicID string) error {
	return r.modifyCategory(ctx, categoryID, func(c *model.Category) error {
		i := c.TopicIndex(topicID)
		if i < 0 {
			return util.ErrTopicNotFound
		}
		c.Topics = append(c.Topics[:i], c.Topics[i+1:]...)
		return nil
	})
}

func (r *CategoryRepository) Reset(ctx context.Context) error {
	return r.categories.replace(ctx, seed.Categories())
}

func (r *CategoryRepository) modifyCategory(ctx context.Context, id string, fn func(c *model.Category) error) error {
	return r.categories.update(ctx, func(cats *[]model.Category) error {
		for i := range *cats {
			if (*cats)[i].ID == id {
				return fn(&(*cats)[i])
			}
		}
		return util.ErrCategoryNotFound
	})
}
