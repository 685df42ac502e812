package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yjkwon-dev/pinggye/internal/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/yjkwon-dev/pinggye/internal/store"
	"github.com/yjkwon-dev/pinggye/models"
)

const bcryptCost = 10

// Auth implements AuthService over a UserRepository.
type Auth struct {
	users store.UserRepository
	log   *logger.Logger
}

// NewAuthService creates the authentication service.
func NewAuthService(users store.UserRepository, log *logger.Logger) *Auth {
	return &Auth{users: users, log: log}
}

func (a *Auth) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return nil, ErrUsernameTaken
	}
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	a.log.Info().Str("username", user.Username).Msg("user signed up")
	return user, nil
}

func (a *Auth) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := a.users.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, ErrAuthenticationFailed
	}
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrAuthenticationFailed
	}

	return user, nil
}

func (a *Auth) GetUser(ctx context.Context, id string) (*models.User, error) {
	return a.users.GetUserByID(ctx, id)
}
