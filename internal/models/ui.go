package models

import (
	"database/sql"

	"github.com/google/uuid"
)

// UI-facing lesson types. The frontend never sees the generation enum
// directly - text becomes "lesson", video stays "video".
const (
	UITypeLesson     = "lesson"
	UITypeQuiz       = "quiz"
	UITypeAssignment = "assignment"
	UITypeVideo      = "video"
)

// UILesson is the lesson shape the frontend consumes
type UILesson struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"` // HTML, filled on demand
	Type      string `json:"type"`              // lesson | quiz | assignment | video
	Duration  int    `json:"duration"`          // minutes
	VideoID   string `json:"videoId,omitempty"`
	Completed bool   `json:"completed"`
}

// UIChapter is the chapter shape the frontend consumes
type UIChapter struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Order     int        `json:"order"`
	Topics    []string   `json:"topics"`
	Lessons   []UILesson `json:"lessons"`
	Completed bool       `json:"completed"`
}

// CourseMeta is the persisted course metadata shown in course lists
type CourseMeta struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	Status      string    `json:"status"` // draft | published
	Thumbnail   string    `json:"thumbnail,omitempty"`

	EstimatedDuration string    `json:"estimated_duration,omitempty"`
	CreatorID         uuid.UUID `json:"creator_id,omitempty"`

	CreatedAt sql.NullTime `json:"created_at,omitempty"`
	UpdatedAt sql.NullTime `json:"updated_at,omitempty"`
}

// UpdateCourseInput is what we expect when editing course metadata
type UpdateCourseInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	Status      string `json:"status,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// PathCheck is the result of validating a course's learning path
type PathCheck struct {
	CourseID      string   `json:"courseId"`
	ValidSequence bool     `json:"validSequence"`
	Issues        []string `json:"issues"`
	Summary       string   `json:"summary"`
}
