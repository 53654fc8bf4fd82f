package service

import (
	"context"
	"errors"

	"github.com/consultbase/leadsvc/internal/leads/domain"
	"github.com/consultbase/leadsvc/internal/leads/store"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// RegisterPushToken stores (or clears, when empty) the caller's device token.
func (s *UserService) RegisterPushToken(ctx context.Context, userID, token string) error {
	err := s.Store.Users().UpdatePushToken(ctx, userID, token)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
