package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RegisterInput represents the input for account registration.
type RegisterInput struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// LoginInput represents the input for email/password authentication.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthTokens is the token pair issued on successful authentication.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileInput represents a partial profile update.
type UpdateProfileInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// ChangePasswordInput represents a password change request.
type ChangePasswordInput struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// Profile is the account detail payload.
type Profile struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	JoinedAt    time.Time  `json:"date_joined"`
	LastLoginAt *time.Time `json:"last_login"`
	PlacesCount int64      `json:"places_count"`
}

// AccountUsecase defines the account management use cases.
type AccountUsecase interface {
	// Register creates a new account with the user role.
	Register(ctx context.Context, input *RegisterInput) (*Profile, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthTokens, error)

	// GetProfile returns the account detail for the given user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// UpdateProfile applies a partial update to name fields.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*Profile, error)

	// ChangePassword verifies the old password and stores a new hash.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
}
