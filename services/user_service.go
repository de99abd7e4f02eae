package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/charlietlyons/VitaTrack-API/models"
	"github.com/charlietlyons/VitaTrack-API/store"
	"github.com/charlietlyons/VitaTrack-API/utils"
)

// WelcomeMailer is the slice of the mailer this service needs. A nil
// mailer disables the welcome email without touching registration.
type WelcomeMailer interface {
	SendWelcomeEmail(ctx context.Context, to, firstName string) error
}

type RegisterPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	First    string `json:"first"`
	Last     string `json:"last"`
	Phone    string `json:"phone"`
}

type UserService struct {
	store      store.Store
	tokens     *utils.TokenIssuer
	mailer     WelcomeMailer
	bcryptCost int
}

func NewUserService(s store.Store, tokens *utils.TokenIssuer, mailer WelcomeMailer, bcryptCost int) *UserService {
	return &UserService{
		store:      s,
		tokens:     tokens,
		mailer:     mailer,
		bcryptCost: bcryptCost,
	}
}

// Register validates the payload, rejects taken emails and stores the
// user with a bcrypt-hashed password. Nothing is written on a
// validation failure.
func (s *UserService) Register(ctx context.Context, payload RegisterPayload) (*models.User, error) {
	if !validateRegisterPayload(payload) {
		return nil, ErrInvalidPayload
	}

	var existing models.User
	err := s.store.GetOneByQuery(ctx, store.UserCollection, store.Query{"email": payload.Email}, &existing)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hash, err := utils.HashPassword(payload.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     payload.Email,
		Password:  hash,
		FirstName: payload.First,
		LastName:  payload.Last,
		Phone:     payload.Phone,
		Role:      models.UserRole,
	}

	if err := s.store.Insert(ctx, store.UserCollection, user); err != nil {
		// the unique email index catches the concurrent-register race
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcomeEmail(ctx, user.Email, user.FirstName); err != nil {
			slog.Error("welcome email failed", "email", user.Email, "error", err)
		}
	}

	return &user, nil
}

// Verify checks credentials and issues a one-hour bearer token. A bad
// password is logged, not escalated.
func (s *UserService) Verify(ctx context.Context, email, password string) (string, error) {
	var user models.User
	err := s.store.GetOneByQuery(ctx, store.UserCollection, store.Query{"email": email}, &user)
	if errors.Is(err, store.ErrNotFound) {
		slog.Error("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		slog.Info("user attempted to login with incorrect password", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user logged in", "email", email)
	return token, nil
}

// VerifyToken validates signature and expiry and returns the decoded
// claims.
func (s *UserService) VerifyToken(tokenString string) (*utils.Claims, error) {
	return s.tokens.Verify(tokenString)
}

// GetUserDetails returns the public projection of a user. Credential
// material never leaves the service.
func (s *UserService) GetUserDetails(ctx context.Context, email string) (*models.AccountDetails, error) {
	var user models.User
	err := s.store.GetOneByQuery(ctx, store.UserCollection, store.Query{"email": email}, &user)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	details := user.AccountDetails()
	return &details, nil
}

// UpdatePassword re-hashes and patches the user found by email.
func (s *UserService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	if !validatePassword(newPassword) {
		return ErrInvalidPayload
	}

	var user models.User
	err := s.store.GetOneByQuery(ctx, store.UserCollection, store.Query{"email": email}, &user)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = hash
	if err := s.store.Patch(ctx, store.UserCollection, user.ID, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteAll wipes the user collection. Development reset only.
func (s *UserService) DeleteAll(ctx context.Context) (int64, error) {
	return s.store.DeleteAll(ctx, store.UserCollection)
}
