package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/models"
)

// UserRepo is the SQL-backed UserRepository.
type UserRepo struct {
	db  *DB
	now func() time.Time
	log *logger.Logger
}

// NewUserRepo creates a UserRepo over the shared database handle.
func NewUserRepo(db *DB, log *logger.Logger) *UserRepo {
	return &UserRepo{db: db, now: time.Now, log: log}
}

func (r *UserRepo) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := r.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, queryInsertUser,
		user.ID,
		user.Username,
		nullString(user.Email),
		nullString(user.PasswordHash),
		nullString(user.FirstName),
		nullString(user.LastName),
		nullString(user.ProfileImageURL),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, uniqueViolationError(err)
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	return &user, nil
}

func (r *UserRepo) UpsertUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := r.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.QueryRowContext(ctx, queryUpsertUser,
		user.ID,
		user.Username,
		nullString(user.Email),
		nullString(user.PasswordHash),
		nullString(user.FirstName),
		nullString(user.LastName),
		nullString(user.ProfileImageURL),
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, uniqueViolationError(err)
		}
		return nil, fmt.Errorf("error upserting user: %w", err)
	}

	return &user, nil
}

func uniqueViolationError(err error) error {
	if uniqueViolationOn(err, "email") {
		return ErrEmailAlreadyExists
	}
	return ErrUsernameAlreadyExists
}

func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUser(ctx, querySelectUserByID, id)
}

func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUser(ctx, querySelectUserByUsername, username)
}

func (r *UserRepo) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	var email, passwordHash, firstName, lastName, profileImageURL sql.NullString

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&email,
		&passwordHash,
		&firstName,
		&lastName,
		&profileImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error selecting user: %w", err)
	}

	user.Email = email.String
	user.PasswordHash = passwordHash.String
	user.FirstName = firstName.String
	user.LastName = lastName.String
	user.ProfileImageURL = profileImageURL.String

	return &user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
