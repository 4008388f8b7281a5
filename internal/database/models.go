package database

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

// Row types mirroring the tables in schema.sql.

type Profile struct {
	ID               uuid.UUID
	Name             string
	Xp               int32
	CurrentStreak    int32
	LessonsCompleted int32
	PerfectQuizzes   int32
	LessonsToday     int32
	CoursesCreated   int32
	DiverseLessons   int32
	AiInteractions   int32
	CreatedAt        sql.NullTime
	UpdatedAt        sql.NullTime
}

type Session struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	CreatedAt sql.NullTime
}

type Course struct {
	ID                uuid.UUID
	Name              string
	Description       sql.NullString
	Category          string
	Difficulty        string
	Status            string
	EstimatedDuration sql.NullString
	CreatorID         uuid.NullUUID
	CreatedAt         sql.NullTime
	UpdatedAt         sql.NullTime
}

type Chapter struct {
	CourseID    uuid.UUID
	ID          string
	Position    int32
	Title       string
	Description sql.NullString
	Duration    sql.NullString
	Topics      []string
}

type Lesson struct {
	CourseID        uuid.UUID
	ChapterID       string
	ID              string
	Position        int32
	Title           string
	Content         sql.NullString
	Type            string
	DurationMinutes int32
	VideoID         sql.NullString
}

type Quiz struct {
	CourseID  uuid.UUID
	ChapterID string
	ID        string
	Title     string
	Questions json.RawMessage
}

type AchievementUnlock struct {
	ProfileID     uuid.UUID
	AchievementID string
	UnlockedAt    sql.NullTime
}

type XpEvent struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Action    string
	Points    int32
	CreatedAt sql.NullTime
}
