package store

import sq "github.com/Masterminds/squirrel"

// Fixed queries shared by the PostgreSQL and SQLite backends. Both accept
// $N placeholders, and RETURNING is available in PostgreSQL and in the
// SQLite versions shipped with the bundled driver.
const (
	queryInsertUser = `INSERT INTO users (id, username, email, password_hash, first_name, last_name, profile_image_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	queryStatementSelectUser = `SELECT id, username, email, password_hash, first_name, last_name, profile_image_url, created_at, updated_at FROM users`

	querySelectUserByID       = queryStatementSelectUser + ` WHERE id = $1`
	querySelectUserByUsername = queryStatementSelectUser + ` WHERE username = $1`

	// created_at is deliberately absent from the update set, so the
	// original creation time survives replacement.
	queryUpsertUser = `INSERT INTO users (id, username, email, password_hash, first_name, last_name, profile_image_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
	username = excluded.username,
	email = excluded.email,
	password_hash = excluded.password_hash,
	first_name = excluded.first_name,
	last_name = excluded.last_name,
	profile_image_url = excluded.profile_image_url,
	updated_at = excluded.updated_at
RETURNING created_at`

	queryInsertExcuse = `INSERT INTO excuses (user_id, category, tone, content, user_input, created_at, is_bookmarked)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, category, tone, content, user_input, created_at, is_bookmarked`

	querySelectExcuseByID = `SELECT id, user_id, category, tone, content, user_input, created_at, is_bookmarked FROM excuses WHERE id = $1`

	querySetBookmark = `UPDATE excuses SET is_bookmarked = $1 WHERE id = $2
RETURNING id, user_id, category, tone, content, user_input, created_at, is_bookmarked`

	// The COALESCE pair matches the expression unique index, so owned and
	// anonymous buckets share one upsert path.
	queryUpsertUsage = `INSERT INTO usage_stats (user_id, week, count, last_used)
VALUES ($1, $2, 1, $3)
ON CONFLICT (COALESCE(user_id, ''), week)
DO UPDATE SET count = usage_stats.count + 1, last_used = excluded.last_used
RETURNING id, user_id, week, count, last_used`

	querySelectCurrentUsage = `SELECT id, user_id, week, count, last_used FROM usage_stats
WHERE week = $1 AND COALESCE(user_id, '') = $2`
)

// queryBuilder produces the dynamic owner-filtered queries. Dollar
// placeholders keep the generated SQL valid for both backends.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildSelectExcuses(limit int, owner *string, bookmarkedOnly bool) (string, []any, error) {
	query := queryBuilder.
		Select("id", "user_id", "category", "tone", "content", "user_input", "created_at", "is_bookmarked").
		From("excuses").
		OrderBy("created_at DESC", "id DESC")

	if bookmarkedOnly {
		query = query.Where(sq.Eq{"is_bookmarked": 1})
	}
	if owner != nil {
		query = query.Where(sq.Eq{"user_id": *owner})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query.ToSql()
}

func buildDeleteExcuses(owner *string) (string, []any, error) {
	query := queryBuilder.Delete("excuses")
	if owner != nil {
		query = query.Where(sq.Eq{"user_id": *owner})
	}
	return query.ToSql()
}

func buildSelectUsageHistory(owner *string) (string, []any, error) {
	query := queryBuilder.
		Select("id", "user_id", "week", "count", "last_used").
		From("usage_stats").
		OrderBy("last_used DESC", "id DESC")

	if owner != nil {
		query = query.Where(sq.Eq{"user_id": *owner})
	}

	return query.ToSql()
}
