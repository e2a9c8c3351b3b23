package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"geoshare/domain/apperr"
	"geoshare/domain/models"
	"geoshare/domain/repositories"
	"geoshare/domain/services"
	"geoshare/pkg/logger"
)

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	hasher   services.PasswordHasher
	tokens   services.TokenIssuer
	now      func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	hasher services.PasswordHasher,
	tokens services.TokenIssuer,
	now func() time.Time,
) services.AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		now:      now,
	}
}

// Register creates an account and logs it in. Email and username are unique
// case-insensitively; the stored form is lowercased.
func (s *AuthServiceImpl) Register(ctx context.Context, email, username, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.ToLower(strings.TrimSpace(username))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return "", nil, apperr.Conflict("email is already registered")
	}

	existing, err = s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return "", nil, apperr.Conflict("username is already taken")
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &models.User{
		ID:        uuid.New(),
		Email:     email,
		Username:  username,
		Password:  digest,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return "", nil, apperr.Conflict("email or username is already taken")
		}
		return "", nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Auth("user_registered", "User registered", map[string]interface{}{
		"user_id":  user.ID.String(),
		"username": user.Username,
	})
	return token, user, nil
}

// Login authenticates by email or username. Unknown account and wrong
// password produce the same error so the login form leaks nothing.
func (s *AuthServiceImpl) Login(ctx context.Context, login, password string) (string, *models.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))

	var user *models.User
	var err error
	if strings.Contains(login, "@") {
		user, err = s.userRepo.GetByEmail(ctx, login)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, login)
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user == nil || !s.hasher.Verify(password, user.Password) {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}
	if !user.IsActive {
		return "", nil, apperr.Forbidden("account is disabled")
	}

	now := s.now()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := s.userRepo.Update(ctx, user.ID, user); err != nil {
		return "", nil, fmt.Errorf("failed to record login: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Auth("user_logged_in", "User logged in", map[string]interface{}{
		"user_id":  user.ID.String(),
		"username": user.Username,
	})
	return token, user, nil
}

func (s *AuthServiceImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}
