package models

// TutorContext tells the AI tutor where the student currently is
type TutorContext struct {
	CourseName     string `json:"courseName"`
	CurrentChapter string `json:"currentChapter"`
	CurrentLesson  string `json:"currentLesson"`
}

// TutorMessage is one turn of a tutor conversation
type TutorMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
