// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and the downstream clients through port
// interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService by orchestrating calls to the
// downstream user service through the UserClient port. It handles validation
// and structured logging but contains no business logic.
type UserService struct {
	userClient ports.UserClient
	logger     *slog.Logger
}

// NewUserService creates a UserService. A nil logger is replaced with a
// no-op logger.
func NewUserService(client ports.UserClient, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{
		userClient: client,
		logger:     logger,
	}
}

// GetUser returns a single user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.logger.InfoContext(ctx, "fetching user", slog.String("user_id", id))

	u, err := s.userClient.GetUser(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "GetUser"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return u, nil
}

// CreateUser validates and creates a new user, returning the created entity
// with server-assigned fields (ID, timestamps).
func (s *UserService) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	s.logger.InfoContext(ctx, "creating user", slog.String("email", u.Email))

	if err := u.Validate(); err != nil {
		return nil, err
	}

	created, err := s.userClient.CreateUser(ctx, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "CreateUser"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateUser validates and applies a partial update to an existing user.
// Zero fields on u are left unchanged downstream.
func (s *UserService) UpdateUser(ctx context.Context, id string, u *domain.User) (*domain.User, error) {
	s.logger.InfoContext(ctx, "updating user", slog.String("user_id", id))

	if err := u.ValidateUpdate(); err != nil {
		return nil, err
	}

	updated, err := s.userClient.UpdateUser(ctx, id, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update user",
			slog.String("operation", "UpdateUser"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}
