package user

import (
	"time"

	"github.com/examstack/exam-bff/internal/domain"
)

// ToDomainUser converts a downstream UserDTO to a domain User entity.
// RFC3339 timestamps that fail to parse become zero times.
func ToDomainUser(dto *UserDTO) domain.User {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	return domain.User{
		ID:        dto.ID,
		Email:     dto.Email,
		FullName:  dto.FullName,
		Role:      domain.UserRole(dto.Role),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ToCreateUserRequest converts a domain User entity to a downstream
// CreateUserRequestDTO.
func ToCreateUserRequest(u *domain.User) CreateUserRequestDTO {
	return CreateUserRequestDTO{
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role.String(),
	}
}

// ToUpdateUserRequest converts a domain User entity to a downstream
// UpdateUserRequestDTO. Zero fields mean "do not change" and are omitted
// from the request body.
func ToUpdateUserRequest(u *domain.User) UpdateUserRequestDTO {
	req := UpdateUserRequestDTO{}
	if u.Email != "" {
		req.Email = &u.Email
	}
	if u.FullName != "" {
		req.FullName = &u.FullName
	}
	if u.Role != "" {
		role := u.Role.String()
		req.Role = &role
	}
	return req
}
