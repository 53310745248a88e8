package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"placehub/internal/domain/entity"
	domainerrors "placehub/internal/domain/errors"
	"placehub/internal/domain/repository"
	"placehub/internal/domain/service"
	"placehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	placeRepo    repository.PlaceRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	PlaceRepo    repository.PlaceRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		placeRepo:    params.PlaceRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new account with the user role. The email uniqueness
// check and the insert run in one transaction; the unique constraint is the
// last line of defense against a concurrent registration.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.Profile, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, user.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User registered", slog.String("userID", user.ID.String()))

	return srv.profileOf(ctx, user)
}

// Login verifies credentials and issues a token pair.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthTokens, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("login input is required")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}
	if !user.IsActive || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, refresh, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to record login time")
	}

	return &usecase.AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}

// GetProfile returns the account detail for the given user.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.Profile, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.profileOf(ctx, user)
}

// UpdateProfile applies a partial update to name fields.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.Profile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile input is required")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return srv.profileOf(ctx, user)
}

// ChangePassword verifies the old password and stores a new hash. A wrong
// old password is a field-level validation failure, not an auth failure.
func (srv *accountService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("password input is required")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrWrongPassword
	}
	if input.NewPassword != input.NewPasswordConfirm {
		return domainerrors.ErrPasswordMismatch.WithDetails("new passwords do not match")
	}
	if err := validatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	srv.logger.Info("Password changed", slog.String("userID", user.ID.String()))

	return nil
}

func (srv *accountService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// profileOf assembles the account payload, including the owned-places count.
func (srv *accountService) profileOf(ctx context.Context, user *entity.User) (*usecase.Profile, error) {
	count, err := srv.placeRepo.CountByOwner(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count places by owner")
	}

	return &usecase.Profile{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FullName(),
		Role:        user.Role.String(),
		IsActive:    user.IsActive,
		JoinedAt:    user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
		PlacesCount: count,
	}, nil
}

// validateRegistration enforces the registration field rules.
func validateRegistration(input *usecase.RegisterInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("registration input is required")
	}
	if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
		return domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}
	if input.FirstName == "" || input.LastName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("first_name and last_name are required")
	}
	if input.Password != input.PasswordConfirm {
		return domainerrors.ErrPasswordMismatch.WithDetails("password_confirm does not match password")
	}

	return validatePasswordStrength(input.Password)
}

// validatePasswordStrength requires a minimum length plus at least one
// letter and one digit.
func validatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return domainerrors.ErrValidationFailed.WithDetails("password must contain letters and numbers")
	}

	return nil
}
