package service

import (
	"context"
	"strings"
	"unicode"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/util"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) List() []model.User {
	return s.UserRepo.List()
}

// Create adds a user whose username is the lowercased name with whitespace removed.
func (s *UserService) Create(ctx context.Context, name string, role model.Role) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrInvalidName
	}
	if role == "" {
		role = model.RoleStudent
	}
	if role != model.RoleStudent && role != model.RoleAdmin {
		return nil, util.ErrInvalidRole
	}

	user := &model.User{
		ID:       model.GenerateUUID(),
		Name:     name,
		Username: UsernameFor(name),
		Role:     role,
		XP:       0,
		League:   model.LeagueBronze,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Admins cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return util.ErrPermissionDenied
	}
	return s.UserRepo.Delete(ctx, userID)
}

func UsernameFor(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}
