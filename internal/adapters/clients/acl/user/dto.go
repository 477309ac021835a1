// Package user implements the Anti-Corruption Layer translators for the
// downstream user service's resources.
package user

// UserDTO matches the downstream User schema.
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateUserRequestDTO matches the downstream CreateUserRequest schema.
type CreateUserRequestDTO struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"`
}

// UpdateUserRequestDTO matches the downstream UpdateUserRequest schema.
// All fields are optional; nil means "do not change this field".
type UpdateUserRequestDTO struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
}
