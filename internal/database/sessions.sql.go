package database

import (
	"context"

	"github.com/google/uuid"
)

const createSession = `
INSERT INTO sessions (id, profile_id)
VALUES ($1, $2)
RETURNING id, profile_id, created_at`

type CreateSessionParams struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
}

func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) (Session, error) {
	var s Session
	err := q.db.QueryRowContext(ctx, createSession, arg.ID, arg.ProfileID).
		Scan(&s.ID, &s.ProfileID, &s.CreatedAt)
	return s, err
}

const getActiveSession = `
SELECT id, profile_id, created_at
FROM sessions
ORDER BY created_at DESC
LIMIT 1`

func (q *Queries) GetActiveSession(ctx context.Context) (Session, error) {
	var s Session
	err := q.db.QueryRowContext(ctx, getActiveSession).
		Scan(&s.ID, &s.ProfileID, &s.CreatedAt)
	return s, err
}

const deleteSession = `
DELETE FROM sessions
WHERE id = $1`

func (q *Queries) DeleteSession(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteSession, id)
	return err
}

const deleteAllSessions = `
DELETE FROM sessions`

func (q *Queries) DeleteAllSessions(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllSessions)
	return err
}
