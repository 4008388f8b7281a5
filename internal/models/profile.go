package models

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Profile represents a user in the system
type Profile struct {
	ID uuid.UUID `json:"id"` // unique identifier

	Name string `json:"name"` // display name

	// gamification stuff
	XP            int `json:"xp"`             // experience points
	CurrentStreak int `json:"current_streak"` // consecutive active days

	// counters achievements are checked against
	LessonsCompleted int `json:"lessons_completed"`
	PerfectQuizzes   int `json:"perfect_quizzes"`
	LessonsToday     int `json:"lessons_today"`
	CoursesCreated   int `json:"courses_created"`
	DiverseLessons   int `json:"diverse_lessons"`
	AIInteractions   int `json:"ai_interactions"`

	// timestamps
	CreatedAt sql.NullTime `json:"created_at,omitempty"`
	UpdatedAt sql.NullTime `json:"updated_at,omitempty"`
}

// CreateProfileInput is what we expect when creating a new profile
type CreateProfileInput struct {
	Name string `json:"name"`
}

// UpdateProfileInput is what we expect when updating a profile
type UpdateProfileInput struct {
	Name string `json:"name,omitempty"`
}

// Stats bundles the counters the achievement checker reads
func (p *Profile) Stats() UserStats {
	return UserStats{
		LessonsCompleted: p.LessonsCompleted,
		CurrentStreak:    p.CurrentStreak,
		PerfectQuizzes:   p.PerfectQuizzes,
		LessonsToday:     p.LessonsToday,
		CoursesCreated:   p.CoursesCreated,
		DiverseLessons:   p.DiverseLessons,
		AIInteractions:   p.AIInteractions,
	}
}

// String provides a string representation of the profile
// This is useful for logging and debugging
func (p *Profile) String() string {
	return fmt.Sprintf("Profile(ID=%s, Name=%s, XP=%d)", p.ID, p.Name, p.XP)
}
