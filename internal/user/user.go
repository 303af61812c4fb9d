package user

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the `users` table. The password hash stays inside the
// application; responses are built with ToResponse which drops it.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUserInput carries the input for creating a user. The service hashes
// Password before it reaches a repository.
type CreateUserInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserInput carries a partial update. Nil fields keep their stored
// value.
type UpdateUserInput struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Response is the wire shape of a user.
type Response struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListResponse wraps a list of users together with its cardinality.
type ListResponse struct {
	Users []Response `json:"users"`
	Total int        `json:"total"`
}

// ToResponse projects a user onto its wire shape, dropping the password hash.
func ToResponse(u User) Response {
	return Response{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToListResponse projects a slice of users onto the list envelope.
func ToListResponse(users []User) ListResponse {
	out := make([]Response, 0, len(users))
	for _, u := range users {
		out = append(out, ToResponse(u))
	}
	return ListResponse{Users: out, Total: len(out)}
}
