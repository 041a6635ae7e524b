package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/focus"
)

type sessionRow struct {
	DurationMinutes int       `db:"duration_minutes"`
	Timestamp       time.Time `db:"timestamp"`
}

type focusRepository struct {
	db *sqlx.DB
}

var _ focus.Repository = (*focusRepository)(nil) // interface compliance check

func NewFocusRepository(db *sqlx.DB) *focusRepository {
	return &focusRepository{db: db}
}

func (repo focusRepository) CreateSession(ctx context.Context, userID string, session focus.Session) (focus.Session, error) {
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO focus_session (user_id, duration_minutes, timestamp)
		VALUES ($1, $2, $3)`,
		userID, session.DurationMinutes, session.Timestamp)
	if err != nil {
		return focus.Session{}, errors.Wrap(err, "inserting focus session")
	}
	return session, nil
}

func (repo focusRepository) QueryUserSessions(ctx context.Context, userID string) ([]focus.Session, error) {
	var rows []sessionRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT duration_minutes, timestamp FROM focus_session
		WHERE user_id = $1 ORDER BY timestamp`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying focus sessions")
	}
	sessions := make([]focus.Session, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, focus.Session{DurationMinutes: r.DurationMinutes, Timestamp: r.Timestamp})
	}
	return sessions, nil
}
