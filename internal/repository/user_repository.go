package repository

import (
	"context"
	"sort"
	"strings"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/seed"
	"english_quest_backend/internal/util"
)

type UserRepository struct {
	users *collection[[]model.User]
}

func NewUserRepository(ctx context.Context, store KVStore) (*UserRepository, error) {
	c, err := loadCollection(ctx, store, util.KeyUsers, seed.Users)
	if err != nil {
		return nil, err
	}
	return &UserRepository{users: c}, nil
}

func (r *UserRepository) List() []model.User {
	var out []model.User
	r.users.read(func(users []model.User) {
		out = append([]model.User(nil), users...)
	})
	return out
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var found *model.User
	r.users.read(func(users []model.User) {
		for i := range users {
			if users[i].ID == id {
				u := users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, util.ErrUserNotFound
	}
	return found, nil
}

// FindByUsername matches case-insensitively after trimming.
func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	var found *model.User
	r.users.read(func(users []model.User) {
		for i := range users {
			if strings.EqualFold(users[i].Username, username) {
				u := users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, util.ErrUserNotFound
	}
	return found, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.users.update(ctx, func(users *[]model.User) error {
		for _, u := range *users {
			if strings.EqualFold(u.Username, user.Username) {
				return util.ErrUsernameTaken
			}
		}
		*users = append(*users, *user)
		return nil
	})
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	_, err := r.Modify(ctx, user.ID, func(u *model.User) error {
		*u = *user
		return nil
	})
	return err
}

// Modify applies fn to the stored user under the collection lock and returns the result.
func (r *UserRepository) Modify(ctx context.Context, id string, fn func(u *model.User) error) (*model.User, error) {
	var updated model.User
	err := r.users.update(ctx, func(users *[]model.User) error {
		for i := range *users {
			if (*users)[i].ID == id {
				if err := fn(&(*users)[i]); err != nil {
					return err
				}
				updated = (*users)[i]
				return nil
			}
		}
		return util.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.users.update(ctx, func(users *[]model.User) error {
		for i := range *users {
			if (*users)[i].ID == id {
				*users = append((*users)[:i], (*users)[i+1:]...)
				return nil
			}
		}
		return util.ErrUserNotFound
	})
}

// TopByXP orders by xp descending, ties by name. limit <= 0 returns everyone.
func (r *UserRepository) TopByXP(limit int) []model.User {
	users := r.List()
	sort.SliceStable(users, func(i, j int) bool {
		if users[i].XP != users[j].XP {
			return users[i].XP > users[j].XP
		}
		return users[i].Name < users[j].Name
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users
}

func (r *UserRepository) Reset(ctx context.Context) error {
	return r.users.replace(ctx, seed.Users())
}
