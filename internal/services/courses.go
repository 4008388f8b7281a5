package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/skillforge/skillforge-backend/internal/database"
	"github.com/skillforge/skillforge-backend/internal/models"
	"github.com/skillforge/skillforge-backend/pkg/markdown"
)

// CourseService handles all course business logic: running the
// generation pipeline, adapting results for the UI and persistence
type CourseService struct {
	DB        *sql.DB           // for transactions
	Queries   *database.Queries // database access
	Generator *Generator        // AI generation
	Videos    *VideoFinder      // YouTube enrichment
}

// NewCourseService creates service with dependencies
func NewCourseService(db *sql.DB, queries *database.Queries, generator *Generator, videos *VideoFinder) *CourseService {
	return &CourseService{
		DB:        db,
		Queries:   queries,
		Generator: generator,
		Videos:    videos,
	}
}

// GenerateCourse runs the full pipeline: structure, then optional video
// enrichment, then per-chapter quizzes. A failed enrichment or quiz is
// logged and skipped - one bad chapter never sinks the course. The
// progress callback may be nil.
func (s *CourseService) GenerateCourse(ctx context.Context, in models.GenerateCourseInput, progress func(pct float32, msg string)) (*models.CourseStructure, error) {
	report := func(pct float32, msg string) {
		if progress != nil {
			progress(pct, msg)
		}
	}

	log.Printf("[GenerateCourse] Starting course generation for: %s", in.Name)
	report(10, "Generating course structure")

	structure, err := s.Generator.GenerateStructure(ctx, in)
	if err != nil {
		return nil, err
	}
	log.Printf("[GenerateCourse] Generated course structure with %d chapters", len(structure.Chapters))

	if in.IncludeVideos {
		report(40, "Finding YouTube videos for chapters")
		for ci := range structure.Chapters {
			chapter := &structure.Chapters[ci]
			videos := s.Videos.FindVideosForChapter(ctx, chapter.Title, chapter.Topics, in.Category)

			// attach matches to lessons by index
			for idx, video := range videos {
				if idx >= len(chapter.Lessons) {
					break
				}
				chapter.Lessons[idx].Type = models.LessonTypeVideo
				chapter.Lessons[idx].VideoURL = video.URL
			}
			log.Printf("[GenerateCourse] Found %d videos for chapter: %s", len(videos), chapter.Title)
		}
	}

	report(70, "Generating quizzes for chapters")
	for ci := range structure.Chapters {
		chapter := &structure.Chapters[ci]
		quiz, err := s.Generator.GenerateQuiz(ctx, chapter.Title, chapter.Topics, in.Difficulty)
		if err != nil {
			log.Printf("[GenerateCourse] Error generating quiz for chapter %s: %v", chapter.Title, err)
			continue // chapter just ships without a quiz
		}
		chapter.Quiz = quiz
		log.Printf("[GenerateCourse] Generated quiz for chapter: %s", chapter.Title)
	}

	report(100, "Course generation completed")
	log.Printf("[GenerateCourse] Course generation completed successfully")
	return structure, nil
}

// BuildUIChapters generates a structure and adapts it to the shape the
// frontend consumes (integer minutes, lesson/video types, video ids)
func (s *CourseService) BuildUIChapters(ctx context.Context, in models.GenerateCourseInput) ([]models.UIChapter, error) {
	structure, err := s.Generator.GenerateStructure(ctx, in)
	if err != nil {
		return nil, err
	}

	chapters := make([]models.UIChapter, 0, len(structure.Chapters))
	for i, chapter := range structure.Chapters {
		lessons := make([]models.UILesson, 0, len(chapter.Lessons))
		for _, lesson := range chapter.Lessons {
			lessons = append(lessons, models.UILesson{
				ID:       lesson.ID,
				Title:    lesson.Title,
				Type:     uiLessonType(lesson.Type),
				Duration: parseDurationMinutes(lesson.Duration),
				// content intentionally not pre-filled, generated on demand
			})
		}

		if in.IncludeVideos {
			videos := s.Videos.FindVideosForChapter(ctx, chapter.Title, chapter.Topics, in.Category)
			for idx := range lessons {
				if lessons[idx].Type == models.UITypeVideo && idx < len(videos) {
					lessons[idx].VideoID = videoIDFromURL(videos[idx].URL, videos[idx].ID)
				}
			}
		}

		chapters = append(chapters, models.UIChapter{
			ID:      chapter.ID,
			Title:   chapter.Title,
			Order:   i + 1,
			Topics:  chapter.Topics,
			Lessons: lessons,
		})
	}

	return chapters, nil
}

// GenerateContentInput is what we expect when generating lesson HTML on
// demand. Absent fields get original-route defaults.
type GenerateContentInput struct {
	Lesson struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Duration int    `json:"duration"`
	} `json:"lesson"`
	ChapterTitle string `json:"chapterTitle"`
	CourseTitle  string `json:"courseTitle"`
	Difficulty   string `json:"difficulty"`
}

// GenerateLessonHTML generates markdown for one lesson and converts it
// to HTML. If the lesson is persisted, the HTML is stored as its content.
func (s *CourseService) GenerateLessonHTML(ctx context.Context, courseID string, in GenerateContentInput) (models.UILesson, error) {
	if in.Lesson.ID == "" {
		in.Lesson.ID = fmt.Sprintf("gen-%d", time.Now().UnixMilli())
	}
	if in.Lesson.Title == "" {
		in.Lesson.Title = "Untitled"
	}
	if in.Lesson.Duration == 0 {
		in.Lesson.Duration = 15
	}
	if in.ChapterTitle == "" {
		in.ChapterTitle = "Chapter"
	}
	if in.CourseTitle == "" {
		in.CourseTitle = "Course " + courseID
	}
	if in.Difficulty == "" {
		in.Difficulty = "Beginner"
	}

	md, err := s.Generator.GenerateLessonBody(ctx, models.Lesson{
		ID:       in.Lesson.ID,
		Title:    in.Lesson.Title,
		Type:     models.LessonTypeText,
		Duration: strconv.Itoa(in.Lesson.Duration) + " minutes",
	}, in.ChapterTitle, in.CourseTitle, in.Difficulty)
	if err != nil {
		return models.UILesson{}, err
	}

	html := markdown.ToHTML(md)

	// store it when the lesson actually exists in this course
	if id, err := uuid.Parse(courseID); err == nil {
		_, err := s.Queries.UpdateLessonContent(ctx, database.UpdateLessonContentParams{
			CourseID: id,
			ID:       in.Lesson.ID,
			Content:  sql.NullString{String: html, Valid: true},
		})
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[GenerateContent] Could not store lesson content: %v", err)
		}
	}

	return models.UILesson{
		ID:       in.Lesson.ID,
		Title:    in.Lesson.Title,
		Type:     models.UITypeLesson,
		Duration: in.Lesson.Duration,
		Content:  html,
	}, nil
}

// SaveCourseInput is the metadata attached when persisting a generated
// structure
type SaveCourseInput struct {
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	CreatorID  uuid.UUID `json:"creator_id,omitempty"`
}

// SaveGeneratedCourse persists a structure with all its chapters,
// lessons and quizzes in one transaction
func (s *CourseService) SaveGeneratedCourse(ctx context.Context, structure *models.CourseStructure, in SaveCourseInput) (models.CourseMeta, error) {
	if err := ValidateStructure(structure); err != nil {
		return models.CourseMeta{}, fmt.Errorf("refusing to save invalid structure: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.CourseMeta{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := s.Queries.WithTx(tx)

	courseID := uuid.New()
	dbCourse, err := qtx.CreateCourse(ctx, database.CreateCourseParams{
		ID:                courseID,
		Name:              structure.Title,
		Description:       nullString(structure.Description),
		Category:          defaultString(in.Category, "General"),
		Difficulty:        defaultString(in.Difficulty, "Beginner"),
		Status:            "draft",
		EstimatedDuration: nullString(structure.EstimatedDuration),
		CreatorID:         uuid.NullUUID{UUID: in.CreatorID, Valid: in.CreatorID != uuid.Nil},
	})
	if err != nil {
		return models.CourseMeta{}, fmt.Errorf("failed to create course: %w", err)
	}

	for ci, chapter := range structure.Chapters {
		err := qtx.CreateChapter(ctx, database.CreateChapterParams{
			CourseID:    courseID,
			ID:          chapter.ID,
			Position:    int32(ci + 1),
			Title:       chapter.Title,
			Description: nullString(chapter.Description),
			Duration:    nullString(chapter.Duration),
			Topics:      chapter.Topics,
		})
		if err != nil {
			return models.CourseMeta{}, fmt.Errorf("failed to create chapter %s: %w", chapter.ID, err)
		}

		for li, lesson := range chapter.Lessons {
			err := qtx.CreateLesson(ctx, database.CreateLessonParams{
				CourseID:        courseID,
				ChapterID:       chapter.ID,
				ID:              lesson.ID,
				Position:        int32(li + 1),
				Title:           lesson.Title,
				Content:         nullString(lesson.Content),
				Type:            lesson.Type,
				DurationMinutes: int32(parseDurationMinutes(lesson.Duration)),
				VideoID:         nullString(videoIDFromURL(lesson.VideoURL, lesson.VideoID)),
			})
			if err != nil {
				return models.CourseMeta{}, fmt.Errorf("failed to create lesson %s: %w", lesson.ID, err)
			}
		}

		if chapter.Quiz != nil {
			questions, err := json.Marshal(chapter.Quiz.Questions)
			if err != nil {
				return models.CourseMeta{}, fmt.Errorf("failed to encode quiz questions: %w", err)
			}
			err = qtx.CreateQuiz(ctx, database.CreateQuizParams{
				CourseID:  courseID,
				ChapterID: chapter.ID,
				ID:        defaultString(chapter.Quiz.ID, "quiz-"+chapter.ID),
				Title:     chapter.Quiz.Title,
				Questions: questions,
			})
			if err != nil {
				return models.CourseMeta{}, fmt.Errorf("failed to create quiz for chapter %s: %w", chapter.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.CourseMeta{}, fmt.Errorf("failed to commit course: %w", err)
	}

	log.Printf("[SaveCourse] Persisted course %s (%d chapters)", structure.Title, len(structure.Chapters))
	return courseMetaFromRow(dbCourse), nil
}

// ListCourses retrieves all persisted courses, newest first
func (s *CourseService) ListCourses(ctx context.Context) ([]models.CourseMeta, error) {
	dbCourses, err := s.Queries.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	courses := make([]models.CourseMeta, len(dbCourses))
	for i, c := range dbCourses {
		courses[i] = courseMetaFromRow(c)
	}
	return courses, nil
}

// GetCourse retrieves a course by its ID
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (models.CourseMeta, error) {
	dbCourse, err := s.Queries.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CourseMeta{}, fmt.Errorf("course not found: %w", err)
		}
		return models.CourseMeta{}, fmt.Errorf("error retrieving course: %w", err)
	}
	return courseMetaFromRow(dbCourse), nil
}

// DeleteCourse removes a course and everything under it
func (s *CourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if err := s.Queries.DeleteCourse(ctx, id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// UpdateCourseMetadata applies an edit. Fields the caller leaves out
// are reset to their defaults rather than merged - that is what the
// editing UI expects.
func (s *CourseService) UpdateCourseMetadata(ctx context.Context, id uuid.UUID, in models.UpdateCourseInput) (models.CourseMeta, error) {
	dbCourse, err := s.Queries.UpdateCourse(ctx, database.UpdateCourseParams{
		ID:          id,
		Name:        defaultString(in.Name, "Untitled Course"),
		Description: nullString(in.Description),
		Category:    defaultString(in.Category, "General"),
		Difficulty:  defaultString(in.Difficulty, "Beginner"),
		Status:      defaultString(in.Status, "draft"),
	})
	if err != nil {
		return models.CourseMeta{}, fmt.Errorf("failed to update course: %w", err)
	}

	meta := courseMetaFromRow(dbCourse)
	meta.Thumbnail = defaultString(in.Thumbnail, "/placeholder.svg")
	return meta, nil
}

// PublishCourse flips a course to published
func (s *CourseService) PublishCourse(ctx context.Context, id uuid.UUID) (models.CourseMeta, error) {
	dbCourse, err := s.Queries.UpdateCourseStatus(ctx, database.UpdateCourseStatusParams{
		ID:     id,
		Status: "published",
	})
	if err != nil {
		return models.CourseMeta{}, fmt.Errorf("failed to publish course: %w", err)
	}
	return courseMetaFromRow(dbCourse), nil
}

// GetChapters returns the persisted chapter list for a course, in the
// UI shape
func (s *CourseService) GetChapters(ctx context.Context, courseID uuid.UUID) ([]models.UIChapter, error) {
	dbChapters, err := s.Queries.ListChaptersByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving chapters: %w", err)
	}

	chapters := make([]models.UIChapter, 0, len(dbChapters))
	for _, ch := range dbChapters {
		dbLessons, err := s.Queries.ListLessonsByChapter(ctx, database.ListLessonsByChapterParams{
			CourseID:  courseID,
			ChapterID: ch.ID,
		})
		if err != nil {
			log.Printf("Warning: Could not load lessons for chapter %s: %v", ch.ID, err)
		}

		lessons := make([]models.UILesson, 0, len(dbLessons))
		for _, l := range dbLessons {
			lessons = append(lessons, models.UILesson{
				ID:       l.ID,
				Title:    l.Title,
				Type:     uiLessonType(l.Type),
				Duration: int(l.DurationMinutes),
				VideoID:  l.VideoID.String,
			})
		}

		chapters = append(chapters, models.UIChapter{
			ID:      ch.ID,
			Title:   ch.Title,
			Order:   int(ch.Position),
			Topics:  ch.Topics,
			Lessons: lessons,
		})
	}

	return chapters, nil
}

// GetLessonContent fetches one lesson for display. Unknown lessons and
// lessons without stored content get placeholder HTML, never an error -
// the UI opens items before their content exists.
func (s *CourseService) GetLessonContent(ctx context.Context, courseID string, contentID string) models.UILesson {
	const placeholder = "<h2>Auto-generated Content</h2><p>This content has not been generated yet. Open the lesson to generate it on demand.</p>"

	id, parseErr := uuid.Parse(courseID)
	if parseErr != nil {
		return models.UILesson{
			ID:       contentID,
			Title:    "Lesson " + contentID,
			Type:     models.UITypeLesson,
			Duration: 12,
			Content:  placeholder,
		}
	}

	dbLesson, err := s.Queries.GetLesson(ctx, database.GetLessonParams{
		CourseID: id,
		ID:       contentID,
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[GetLessonContent] Error retrieving lesson %s: %v", contentID, err)
		}
		return models.UILesson{
			ID:       contentID,
			Title:    "Lesson " + contentID,
			Type:     models.UITypeLesson,
			Duration: 12,
			Content:  placeholder,
		}
	}

	content := dbLesson.Content.String
	if content == "" {
		content = placeholder
	}

	return models.UILesson{
		ID:       dbLesson.ID,
		Title:    dbLesson.Title,
		Type:     uiLessonType(dbLesson.Type),
		Duration: int(dbLesson.DurationMinutes),
		VideoID:  dbLesson.VideoID.String,
		Content:  content,
	}
}

// ValidateLearningPath checks that a persisted course's chapters form a
// contiguous sequence and each has at least one lesson. Courses that
// were never persisted have nothing to violate and pass.
func (s *CourseService) ValidateLearningPath(ctx context.Context, courseID string) models.PathCheck {
	check := models.PathCheck{
		CourseID:      courseID,
		ValidSequence: true,
		Issues:        []string{},
		Summary:       "Learning path validated successfully. No blocking issues found.",
	}

	id, err := uuid.Parse(courseID)
	if err != nil {
		return check
	}

	chapters, err := s.Queries.ListChaptersByCourse(ctx, id)
	if err != nil || len(chapters) == 0 {
		return check
	}

	for i, ch := range chapters {
		if int(ch.Position) != i+1 {
			check.Issues = append(check.Issues,
				fmt.Sprintf("chapter %s is at position %d, expected %d", ch.ID, ch.Position, i+1))
		}

		lessons, err := s.Queries.ListLessonsByChapter(ctx, database.ListLessonsByChapterParams{
			CourseID:  id,
			ChapterID: ch.ID,
		})
		if err == nil && len(lessons) == 0 {
			check.Issues = append(check.Issues,
				fmt.Sprintf("chapter %s has no lessons", ch.ID))
		}
	}

	if len(check.Issues) > 0 {
		check.ValidSequence = false
		check.Summary = fmt.Sprintf("Learning path has %d issue(s).", len(check.Issues))
	}
	return check
}

// uiLessonType maps the generation enum to what the frontend renders
func uiLessonType(t string) string {
	if t == models.LessonTypeVideo {
		return models.UITypeVideo
	}
	return models.UITypeLesson
}

var firstNumberRe = regexp.MustCompile(`\d+`)

// parseDurationMinutes pulls the leading number out of a duration string
// like "15-30 minutes", defaulting to 15
func parseDurationMinutes(duration string) int {
	m := firstNumberRe.FindString(duration)
	if m == "" {
		return 15
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		return 15
	}
	return n
}

var watchURLRe = regexp.MustCompile(`[?&]v=([^&]+)`)

// videoIDFromURL extracts the id from a watch URL, falling back to the
// given id
func videoIDFromURL(url, fallback string) string {
	if m := watchURLRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return fallback
}

func courseMetaFromRow(c database.Course) models.CourseMeta {
	return models.CourseMeta{
		ID:                c.ID,
		Name:              c.Name,
		Description:       c.Description.String,
		Category:          c.Category,
		Difficulty:        c.Difficulty,
		Status:            c.Status,
		EstimatedDuration: c.EstimatedDuration.String,
		CreatorID:         c.CreatorID.UUID,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
