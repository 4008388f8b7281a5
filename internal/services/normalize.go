package services

import (
	"fmt"

	"github.com/skillforge/skillforge-backend/internal/models"
)

// DefaultLessonDuration is used when the AI leaves a duration out
const DefaultLessonDuration = "15-30 minutes"

// StructureDefaults are the values substituted for fields the AI response
// is missing or has the wrong shape for
type StructureDefaults struct {
	Title           string
	Description     string
	ChapterDuration string
}

// NormalizeStructure shapes a loosely-parsed AI response into a
// CourseStructure. It only fills gaps - it never fails and never rewrites
// ids the AI did supply, so duplicate AI ids survive to validation.
func NormalizeStructure(raw map[string]interface{}, defaults StructureDefaults) *models.CourseStructure {
	s := &models.CourseStructure{
		Title:              stringOr(raw["title"], defaults.Title),
		Description:        stringOr(raw["description"], defaults.Description),
		EstimatedDuration:  stringOr(raw["estimatedDuration"], ""),
		Prerequisites:      stringSlice(raw["prerequisites"]),
		LearningObjectives: stringSlice(raw["learningObjectives"]),
	}

	rawChapters, _ := raw["chapters"].([]interface{})
	for i, rc := range rawChapters {
		cm, ok := rc.(map[string]interface{})
		if !ok {
			continue
		}

		chapter := models.Chapter{
			ID:          stringOr(cm["id"], fmt.Sprintf("chapter-%d", i+1)),
			Title:       stringOr(cm["title"], fmt.Sprintf("Chapter %d", i+1)),
			Description: stringOr(cm["description"], ""),
			Duration:    stringOr(cm["duration"], defaults.ChapterDuration),
			Topics:      stringSlice(cm["topics"]),
		}

		rawLessons, _ := cm["lessons"].([]interface{})
		for j, rl := range rawLessons {
			lm, ok := rl.(map[string]interface{})
			if !ok {
				continue
			}

			chapter.Lessons = append(chapter.Lessons, models.Lesson{
				ID:       stringOr(lm["id"], fmt.Sprintf("lesson-%d-%d", i+1, j+1)),
				Title:    stringOr(lm["title"], fmt.Sprintf("Lesson %d", j+1)),
				Content:  stringOr(lm["content"], ""),
				Type:     normalizeLessonType(lm["type"]),
				Duration: stringOr(lm["duration"], DefaultLessonDuration),
				VideoURL: stringOr(lm["videoUrl"], ""),
			})
		}

		s.Chapters = append(s.Chapters, chapter)
	}

	return s
}

// normalizeLessonType coerces anything that isn't exactly video or
// interactive to text
func normalizeLessonType(v interface{}) string {
	switch v {
	case models.LessonTypeVideo:
		return models.LessonTypeVideo
	case models.LessonTypeInteractive:
		return models.LessonTypeInteractive
	default:
		return models.LessonTypeText
	}
}

// ValidateStructure checks the invariants normalization doesn't enforce:
// a title, unique non-empty chapter ids, unique lesson ids per chapter and
// known lesson types. Kept separate from filling so both are testable on
// their own.
func ValidateStructure(s *models.CourseStructure) error {
	if s == nil {
		return fmt.Errorf("structure is nil")
	}
	if s.Title == "" {
		return fmt.Errorf("course title is empty")
	}

	chapterIDs := make(map[string]bool)
	for _, chapter := range s.Chapters {
		if chapter.ID == "" {
			return fmt.Errorf("chapter %q has an empty id", chapter.Title)
		}
		if chapterIDs[chapter.ID] {
			return fmt.Errorf("duplicate chapter id %q", chapter.ID)
		}
		chapterIDs[chapter.ID] = true

		lessonIDs := make(map[string]bool)
		for _, lesson := range chapter.Lessons {
			if lesson.ID == "" {
				return fmt.Errorf("lesson %q in chapter %q has an empty id", lesson.Title, chapter.ID)
			}
			if lessonIDs[lesson.ID] {
				return fmt.Errorf("duplicate lesson id %q in chapter %q", lesson.ID, chapter.ID)
			}
			lessonIDs[lesson.ID] = true

			switch lesson.Type {
			case models.LessonTypeText, models.LessonTypeVideo, models.LessonTypeInteractive:
			default:
				return fmt.Errorf("lesson %q has unknown type %q", lesson.ID, lesson.Type)
			}
		}
	}

	return nil
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func stringSlice(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
