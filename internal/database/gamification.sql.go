package database

import (
	"context"

	"github.com/google/uuid"
)

const createXpEvent = `
INSERT INTO xp_events (id, profile_id, action, points)
VALUES ($1, $2, $3, $4)`

type CreateXpEventParams struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Action    string
	Points    int32
}

func (q *Queries) CreateXpEvent(ctx context.Context, arg CreateXpEventParams) error {
	_, err := q.db.ExecContext(ctx, createXpEvent, arg.ID, arg.ProfileID, arg.Action, arg.Points)
	return err
}

const listAchievementUnlocks = `
SELECT profile_id, achievement_id, unlocked_at
FROM achievement_unlocks
WHERE profile_id = $1`

func (q *Queries) ListAchievementUnlocks(ctx context.Context, profileID uuid.UUID) ([]AchievementUnlock, error) {
	rows, err := q.db.QueryContext(ctx, listAchievementUnlocks, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []AchievementUnlock
	for rows.Next() {
		var u AchievementUnlock
		if err := rows.Scan(&u.ProfileID, &u.AchievementID, &u.UnlockedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const createAchievementUnlock = `
INSERT INTO achievement_unlocks (profile_id, achievement_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

type CreateAchievementUnlockParams struct {
	ProfileID     uuid.UUID
	AchievementID string
}

func (q *Queries) CreateAchievementUnlock(ctx context.Context, arg CreateAchievementUnlockParams) error {
	_, err := q.db.ExecContext(ctx, createAchievementUnlock, arg.ProfileID, arg.AchievementID)
	return err
}

const factoryResetDatabase = `
TRUNCATE xp_events, achievement_unlocks, quizzes, lessons, chapters, courses, sessions, profiles`

// FactoryResetDatabase wipes every table. Admin use only.
func (q *Queries) FactoryResetDatabase(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, factoryResetDatabase)
	return err
}
