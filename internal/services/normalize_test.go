package services

import (
	"encoding/json"
	"testing"

	"github.com/skillforge/skillforge-backend/internal/models"
)

func parseRaw(t *testing.T, src string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(src), &raw); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return raw
}

func TestNormalizeFillsPositionalIDs(t *testing.T) {
	raw := parseRaw(t, `{
		"title": "Go Basics",
		"chapters": [
			{"title": "Syntax", "lessons": [{"title": "Variables"}, {"title": "Loops"}]},
			{"title": "Types", "lessons": [{"title": "Structs"}]}
		]
	}`)

	s := NormalizeStructure(raw, StructureDefaults{})

	if s.Chapters[0].ID != "chapter-1" || s.Chapters[1].ID != "chapter-2" {
		t.Errorf("chapter ids = %q, %q", s.Chapters[0].ID, s.Chapters[1].ID)
	}
	if got := s.Chapters[0].Lessons[1].ID; got != "lesson-1-2" {
		t.Errorf("lesson id = %q, want lesson-1-2", got)
	}
	if got := s.Chapters[1].Lessons[0].ID; got != "lesson-2-1" {
		t.Errorf("lesson id = %q, want lesson-2-1", got)
	}
}

func TestNormalizeKeepsSuppliedIDs(t *testing.T) {
	raw := parseRaw(t, `{
		"title": "Go Basics",
		"chapters": [{"id": "intro", "title": "Intro", "lessons": [{"id": "hello", "title": "Hello"}]}]
	}`)

	s := NormalizeStructure(raw, StructureDefaults{})
	if s.Chapters[0].ID != "intro" {
		t.Errorf("AI-supplied chapter id was rewritten: %q", s.Chapters[0].ID)
	}
	if s.Chapters[0].Lessons[0].ID != "hello" {
		t.Errorf("AI-supplied lesson id was rewritten: %q", s.Chapters[0].Lessons[0].ID)
	}
}

func TestNormalizeDoesNotDecollideDuplicateIDs(t *testing.T) {
	raw := parseRaw(t, `{
		"title": "Go Basics",
		"chapters": [
			{"id": "dup", "title": "A"},
			{"id": "dup", "title": "B"}
		]
	}`)

	s := NormalizeStructure(raw, StructureDefaults{})
	if s.Chapters[0].ID != "dup" || s.Chapters[1].ID != "dup" {
		t.Error("normalization must leave duplicate AI ids for validation to catch")
	}
	if err := ValidateStructure(s); err == nil {
		t.Error("validation should reject duplicate chapter ids")
	}
}

func TestNormalizeCoercesLessonTypes(t *testing.T) {
	raw := parseRaw(t, `{
		"title": "T",
		"chapters": [{"title": "C", "lessons": [
			{"title": "a", "type": "video"},
			{"title": "b", "type": "interactive"},
			{"title": "c", "type": "VIDEO"},
			{"title": "d", "type": "quiz"},
			{"title": "e"}
		]}]
	}`)

	s := NormalizeStructure(raw, StructureDefaults{})
	lessons := s.Chapters[0].Lessons

	want := []string{
		models.LessonTypeVideo,
		models.LessonTypeInteractive,
		models.LessonTypeText, // only exact matches survive
		models.LessonTypeText,
		models.LessonTypeText,
	}
	for i, w := range want {
		if lessons[i].Type != w {
			t.Errorf("lesson %d type = %q, want %q", i, lessons[i].Type, w)
		}
	}
}

func TestNormalizeDurationDefault(t *testing.T) {
	raw := parseRaw(t, `{"title": "T", "chapters": [{"title": "C", "lessons": [{"title": "a"}]}]}`)

	s := NormalizeStructure(raw, StructureDefaults{})
	if got := s.Chapters[0].Lessons[0].Duration; got != "15-30 minutes" {
		t.Errorf("duration = %q, want the 15-30 minutes default", got)
	}
}

func TestNormalizeWrongShapedFields(t *testing.T) {
	raw := parseRaw(t, `{
		"title": 42,
		"prerequisites": "none",
		"chapters": [{"title": "C", "topics": [1, "real-topic", null]}]
	}`)

	s := NormalizeStructure(raw, StructureDefaults{Title: "Fallback Title"})
	if s.Title != "Fallback Title" {
		t.Errorf("title = %q, want default", s.Title)
	}
	if s.Prerequisites != nil {
		t.Errorf("prerequisites = %v, want nil for a non-array", s.Prerequisites)
	}
	if len(s.Chapters[0].Topics) != 1 || s.Chapters[0].Topics[0] != "real-topic" {
		t.Errorf("topics = %v, want just the string entries", s.Chapters[0].Topics)
	}
}

func TestNormalizePreservesCounts(t *testing.T) {
	raw := parseRaw(t, `{"title": "T", "chapters": [
		{"title": "A", "lessons": [{"title": "1"}, {"title": "2"}]},
		{"title": "B", "lessons": []},
		{"title": "C"}
	]}`)

	s := NormalizeStructure(raw, StructureDefaults{})
	if len(s.Chapters) != 3 {
		t.Fatalf("chapters = %d, want 3", len(s.Chapters))
	}
	if len(s.Chapters[0].Lessons) != 2 || len(s.Chapters[1].Lessons) != 0 {
		t.Error("lesson counts changed during normalization")
	}
}

func TestValidateStructure(t *testing.T) {
	valid := &models.CourseStructure{
		Title: "T",
		Chapters: []models.Chapter{{
			ID: "chapter-1",
			Lessons: []models.Lesson{
				{ID: "lesson-1-1", Type: models.LessonTypeText},
				{ID: "lesson-1-2", Type: models.LessonTypeVideo},
			},
		}},
	}
	if err := ValidateStructure(valid); err != nil {
		t.Errorf("valid structure rejected: %v", err)
	}

	noTitle := &models.CourseStructure{}
	if err := ValidateStructure(noTitle); err == nil {
		t.Error("empty title accepted")
	}

	dupLessons := &models.CourseStructure{
		Title: "T",
		Chapters: []models.Chapter{{
			ID: "chapter-1",
			Lessons: []models.Lesson{
				{ID: "dup", Type: models.LessonTypeText},
				{ID: "dup", Type: models.LessonTypeText},
			},
		}},
	}
	if err := ValidateStructure(dupLessons); err == nil {
		t.Error("duplicate lesson ids accepted")
	}

	badType := &models.CourseStructure{
		Title: "T",
		Chapters: []models.Chapter{{
			ID:      "chapter-1",
			Lessons: []models.Lesson{{ID: "l1", Type: "quiz"}},
		}},
	}
	if err := ValidateStructure(badType); err == nil {
		t.Error("unknown lesson type accepted")
	}
}
