package acl

import (
	"context"

	"github.com/examstack/exam-bff/internal/adapters/clients/acl/user"
	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/ports"
	"github.com/examstack/exam-bff/internal/upstream"
)

// Compile-time interface check.
var _ ports.UserClient = (*UserClient)(nil)

// UserClient is the outbound adapter for the downstream user service. It
// implements [ports.UserClient].
//
// All methods translate between domain types and the downstream wire format
// via the [user] translators. Failed calls are mapped to domain errors
// (ErrNotFound, ErrValidation, ErrUnavailable, ...) by [TranslateError].
//
// The underlying [upstream.Facade] provides retries, per-attempt timeouts,
// and circuit breaking for every outbound call.
type UserClient struct {
	facade *upstream.Facade
}

// NewUserClient creates a UserClient that dispatches through the given facade.
func NewUserClient(facade *upstream.Facade) *UserClient {
	return &UserClient{facade: facade}
}

// GetUser fetches a single user by ID via the getUser endpoint.
// Returns [domain.ErrNotFound] if the downstream returns 404.
func (c *UserClient) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var dto user.UserDTO
	_, err := c.facade.Get(ctx, "getUser", upstream.CallOptions{
		PathParams: map[string]string{"id": id},
	}, &dto)
	if err != nil {
		return nil, TranslateError(err)
	}

	result := user.ToDomainUser(&dto)
	return &result, nil
}

// CreateUser creates a user via the createUser endpoint and returns the
// created entity. Returns [domain.ErrValidation] if the downstream rejects
// the payload.
func (c *UserClient) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	var dto user.UserDTO
	_, err := c.facade.Post(ctx, "createUser", upstream.CallOptions{
		Body: user.ToCreateUserRequest(u),
	}, &dto)
	if err != nil {
		return nil, TranslateError(err)
	}

	result := user.ToDomainUser(&dto)
	return &result, nil
}

// UpdateUser updates a user via the updateUser endpoint and returns the
// updated entity. Returns [domain.ErrNotFound] if the user does not exist.
func (c *UserClient) UpdateUser(ctx context.Context, id string, u *domain.User) (*domain.User, error) {
	var dto user.UserDTO
	_, err := c.facade.Put(ctx, "updateUser", upstream.CallOptions{
		PathParams: map[string]string{"id": id},
		Body:       user.ToUpdateUserRequest(u),
	}, &dto)
	if err != nil {
		return nil, TranslateError(err)
	}

	result := user.ToDomainUser(&dto)
	return &result, nil
}
