package database

import (
	"context"

	"github.com/google/uuid"
)

const profileColumns = `id, name, xp, current_streak, lessons_completed, perfect_quizzes, lessons_today, courses_created, diverse_lessons, ai_interactions, created_at, updated_at`

func scanProfile(row interface{ Scan(...interface{}) error }) (Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Xp,
		&p.CurrentStreak,
		&p.LessonsCompleted,
		&p.PerfectQuizzes,
		&p.LessonsToday,
		&p.CoursesCreated,
		&p.DiverseLessons,
		&p.AiInteractions,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const createProfile = `
INSERT INTO profiles (id, name)
VALUES ($1, $2)
RETURNING ` + profileColumns

type CreateProfileParams struct {
	ID   uuid.UUID
	Name string
}

func (q *Queries) CreateProfile(ctx context.Context, arg CreateProfileParams) (Profile, error) {
	return scanProfile(q.db.QueryRowContext(ctx, createProfile, arg.ID, arg.Name))
}

const getAllProfiles = `
SELECT ` + profileColumns + `
FROM profiles
ORDER BY created_at`

func (q *Queries) GetAllProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := q.db.QueryContext(ctx, getAllProfiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const getProfileById = `
SELECT ` + profileColumns + `
FROM profiles
WHERE id = $1`

func (q *Queries) GetProfileById(ctx context.Context, id uuid.UUID) (Profile, error) {
	return scanProfile(q.db.QueryRowContext(ctx, getProfileById, id))
}

const updateProfileByID = `
UPDATE profiles
SET name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + profileColumns

type UpdateProfileByIDParams struct {
	ID   uuid.UUID
	Name string
}

func (q *Queries) UpdateProfileByID(ctx context.Context, arg UpdateProfileByIDParams) (Profile, error) {
	return scanProfile(q.db.QueryRowContext(ctx, updateProfileByID, arg.ID, arg.Name))
}

const deleteProfile = `
DELETE FROM profiles
WHERE id = $1`

func (q *Queries) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteProfile, id)
	return err
}

const addProfileXP = `
UPDATE profiles
SET xp = xp + $2, updated_at = now()
WHERE id = $1
RETURNING ` + profileColumns

type AddProfileXPParams struct {
	ID     uuid.UUID
	Points int32
}

func (q *Queries) AddProfileXP(ctx context.Context, arg AddProfileXPParams) (Profile, error) {
	return scanProfile(q.db.QueryRowContext(ctx, addProfileXP, arg.ID, arg.Points))
}

const listProfilesByXP = `
SELECT ` + profileColumns + `
FROM profiles
ORDER BY xp DESC, created_at
LIMIT $1`

func (q *Queries) ListProfilesByXP(ctx context.Context, limit int32) ([]Profile, error) {
	rows, err := q.db.QueryContext(ctx, listProfilesByXP, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const incrementLessonsCompleted = `
UPDATE profiles
SET lessons_completed = lessons_completed + 1,
    lessons_today = lessons_today + 1,
    diverse_lessons = diverse_lessons + 1,
    updated_at = now()
WHERE id = $1`

func (q *Queries) IncrementLessonsCompleted(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, incrementLessonsCompleted, id)
	return err
}

const incrementPerfectQuizzes = `
UPDATE profiles
SET perfect_quizzes = perfect_quizzes + 1, updated_at = now()
WHERE id = $1`

func (q *Queries) IncrementPerfectQuizzes(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, incrementPerfectQuizzes, id)
	return err
}

const incrementCoursesCreated = `
UPDATE profiles
SET courses_created = courses_created + 1, updated_at = now()
WHERE id = $1`

func (q *Queries) IncrementCoursesCreated(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, incrementCoursesCreated, id)
	return err
}

const incrementAIInteractions = `
UPDATE profiles
SET ai_interactions = ai_interactions + 1, updated_at = now()
WHERE id = $1`

func (q *Queries) IncrementAIInteractions(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, incrementAIInteractions, id)
	return err
}
