package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/models"
)

// ExcuseRepo is the SQL-backed ExcuseRepository.
type ExcuseRepo struct {
	db  *DB
	now func() time.Time
	log *logger.Logger
}

// NewExcuseRepo creates an ExcuseRepo over the shared database handle.
func NewExcuseRepo(db *DB, log *logger.Logger) *ExcuseRepo {
	return &ExcuseRepo{db: db, now: time.Now, log: log}
}

func (r *ExcuseRepo) CreateExcuse(ctx context.Context, draft ExcuseDraft, owner *string) (*models.Excuse, error) {
	row := r.db.QueryRowContext(ctx, queryInsertExcuse,
		ownerArg(owner),
		string(draft.Category),
		string(draft.Tone),
		draft.Content,
		ownerArg(draft.UserInput),
		r.now(),
		draft.IsBookmarked,
	)

	excuse, err := scanExcuse(row)
	if err != nil {
		return nil, fmt.Errorf("error inserting excuse: %w", err)
	}
	return excuse, nil
}

func (r *ExcuseRepo) GetExcuseByID(ctx context.Context, id int64) (*models.Excuse, error) {
	excuse, err := scanExcuse(r.db.QueryRowContext(ctx, querySelectExcuseByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExcuseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error selecting excuse: %w", err)
	}
	return excuse, nil
}

func (r *ExcuseRepo) GetRecentExcuses(ctx context.Context, limit int, owner *string) ([]models.Excuse, error) {
	query, args, err := buildSelectExcuses(limit, owner, false)
	if err != nil {
		return nil, fmt.Errorf("error building excuses query: %w", err)
	}
	return r.selectExcuses(ctx, query, args)
}

func (r *ExcuseRepo) GetBookmarkedExcuses(ctx context.Context, owner *string) ([]models.Excuse, error) {
	query, args, err := buildSelectExcuses(0, owner, true)
	if err != nil {
		return nil, fmt.Errorf("error building bookmarks query: %w", err)
	}
	return r.selectExcuses(ctx, query, args)
}

func (r *ExcuseRepo) SetBookmark(ctx context.Context, id int64, bookmarked bool) (*models.Excuse, error) {
	flag := 0
	if bookmarked {
		flag = 1
	}

	excuse, err := scanExcuse(r.db.QueryRowContext(ctx, querySetBookmark, flag, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExcuseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating bookmark: %w", err)
	}
	return excuse, nil
}

func (r *ExcuseRepo) ClearExcuses(ctx context.Context, owner *string) error {
	query, args, err := buildDeleteExcuses(owner)
	if err != nil {
		return fmt.Errorf("error building delete query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error clearing excuses: %w", err)
	}
	return nil
}

func (r *ExcuseRepo) selectExcuses(ctx context.Context, query string, args []any) ([]models.Excuse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error selecting excuses: %w", err)
	}
	defer rows.Close()

	excuses := make([]models.Excuse, 0)
	for rows.Next() {
		excuse, scanErr := scanExcuse(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("error scanning excuse row: %w", scanErr)
		}
		excuses = append(excuses, *excuse)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating excuse rows: %w", err)
	}

	return excuses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExcuse(row rowScanner) (*models.Excuse, error) {
	var excuse models.Excuse
	var userID, userInput sql.NullString

	err := row.Scan(
		&excuse.ID,
		&userID,
		&excuse.Category,
		&excuse.Tone,
		&excuse.Content,
		&userInput,
		&excuse.CreatedAt,
		&excuse.IsBookmarked,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		excuse.UserID = &userID.String
	}
	if userInput.Valid {
		excuse.UserInput = &userInput.String
	}
	return &excuse, nil
}

func ownerArg(owner *string) sql.NullString {
	if owner == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *owner, Valid: true}
}
