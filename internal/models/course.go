package models

// Lesson types the generation pipeline works with. Everything that isn't
// exactly "video" or "interactive" collapses to text during normalization.
const (
	LessonTypeText        = "text"
	LessonTypeVideo       = "video"
	LessonTypeInteractive = "interactive"
)

// CourseStructure is the full AI-generated course outline
type CourseStructure struct {
	Title             string    `json:"title"`             // course name
	Description       string    `json:"description"`       // what the course is about
	EstimatedDuration string    `json:"estimatedDuration"` // e.g. "8-10 hours"
	Prerequisites     []string  `json:"prerequisites"`
	LearningObjectives []string `json:"learningObjectives"`
	Chapters          []Chapter `json:"chapters"`
}

// Chapter is one unit of a generated course
type Chapter struct {
	ID          string   `json:"id"` // "chapter-<n>" when the AI doesn't supply one
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"` // free text like "2 hours"
	Topics      []string `json:"topics"`
	Lessons     []Lesson `json:"lessons"`
	Quiz        *Quiz    `json:"quiz,omitempty"` // filled in after structure generation
}

// Lesson is a single lesson inside a chapter
type Lesson struct {
	ID       string `json:"id"` // "lesson-<chapter>-<n>" when the AI doesn't supply one
	Title    string `json:"title"`
	Content  string `json:"content"` // brief description at structure time, markdown later
	Type     string `json:"type"`    // text | video | interactive
	Duration string `json:"duration"`
	VideoID  string `json:"videoId,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// Quiz holds the generated questions for a chapter
type Quiz struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizQuestion is one quiz item
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Type          string   `json:"type"` // multiple-choice | true-false | short-answer
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GenerateCourseInput is what we expect when generating a new course
type GenerateCourseInput struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Chapters      int    `json:"chapters"`
	IncludeVideos bool   `json:"includeVideos"`
}
