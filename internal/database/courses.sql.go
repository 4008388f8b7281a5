package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const courseColumns = `id, name, description, category, difficulty, status, estimated_duration, creator_id, created_at, updated_at`

func scanCourse(row interface{ Scan(...interface{}) error }) (Course, error) {
	var c Course
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Category,
		&c.Difficulty,
		&c.Status,
		&c.EstimatedDuration,
		&c.CreatorID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

const createCourse = `
INSERT INTO courses (id, name, description, category, difficulty, status, estimated_duration, creator_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + courseColumns

type CreateCourseParams struct {
	ID                uuid.UUID
	Name              string
	Description       sql.NullString
	Category          string
	Difficulty        string
	Status            string
	EstimatedDuration sql.NullString
	CreatorID         uuid.NullUUID
}

func (q *Queries) CreateCourse(ctx context.Context, arg CreateCourseParams) (Course, error) {
	return scanCourse(q.db.QueryRowContext(ctx, createCourse,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Category,
		arg.Difficulty,
		arg.Status,
		arg.EstimatedDuration,
		arg.CreatorID,
	))
}

const getCourse = `
SELECT ` + courseColumns + `
FROM courses
WHERE id = $1`

func (q *Queries) GetCourse(ctx context.Context, id uuid.UUID) (Course, error) {
	return scanCourse(q.db.QueryRowContext(ctx, getCourse, id))
}

const listCourses = `
SELECT ` + courseColumns + `
FROM courses
ORDER BY created_at DESC`

func (q *Queries) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := q.db.QueryContext(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const updateCourse = `
UPDATE courses
SET name = $2, description = $3, category = $4, difficulty = $5, status = $6, updated_at = now()
WHERE id = $1
RETURNING ` + courseColumns

type UpdateCourseParams struct {
	ID          uuid.UUID
	Name        string
	Description sql.NullString
	Category    string
	Difficulty  string
	Status      string
}

func (q *Queries) UpdateCourse(ctx context.Context, arg UpdateCourseParams) (Course, error) {
	return scanCourse(q.db.QueryRowContext(ctx, updateCourse,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Category,
		arg.Difficulty,
		arg.Status,
	))
}

const updateCourseStatus = `
UPDATE courses
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + courseColumns

type UpdateCourseStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateCourseStatus(ctx context.Context, arg UpdateCourseStatusParams) (Course, error) {
	return scanCourse(q.db.QueryRowContext(ctx, updateCourseStatus, arg.ID, arg.Status))
}

const deleteCourse = `
DELETE FROM courses
WHERE id = $1`

func (q *Queries) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteCourse, id)
	return err
}

const createChapter = `
INSERT INTO chapters (course_id, id, position, title, description, duration, topics)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type CreateChapterParams struct {
	CourseID    uuid.UUID
	ID          string
	Position    int32
	Title       string
	Description sql.NullString
	Duration    sql.NullString
	Topics      []string
}

func (q *Queries) CreateChapter(ctx context.Context, arg CreateChapterParams) error {
	_, err := q.db.ExecContext(ctx, createChapter,
		arg.CourseID,
		arg.ID,
		arg.Position,
		arg.Title,
		arg.Description,
		arg.Duration,
		pq.Array(arg.Topics),
	)
	return err
}

const listChaptersByCourse = `
SELECT course_id, id, position, title, description, duration, topics
FROM chapters
WHERE course_id = $1
ORDER BY position`

func (q *Queries) ListChaptersByCourse(ctx context.Context, courseID uuid.UUID) ([]Chapter, error) {
	rows, err := q.db.QueryContext(ctx, listChaptersByCourse, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Chapter
	for rows.Next() {
		var c Chapter
		if err := rows.Scan(
			&c.CourseID,
			&c.ID,
			&c.Position,
			&c.Title,
			&c.Description,
			&c.Duration,
			pq.Array(&c.Topics),
		); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const lessonColumns = `course_id, chapter_id, id, position, title, content, type, duration_minutes, video_id`

func scanLesson(row interface{ Scan(...interface{}) error }) (Lesson, error) {
	var l Lesson
	err := row.Scan(
		&l.CourseID,
		&l.ChapterID,
		&l.ID,
		&l.Position,
		&l.Title,
		&l.Content,
		&l.Type,
		&l.DurationMinutes,
		&l.VideoID,
	)
	return l, err
}

const createLesson = `
INSERT INTO lessons (course_id, chapter_id, id, position, title, content, type, duration_minutes, video_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type CreateLessonParams struct {
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

func (q *Queries) CreateLesson(ctx context.Context, arg CreateLessonParams) error {
	_, err := q.db.ExecContext(ctx, createLesson,
		arg.CourseID,
		arg.ChapterID,
		arg.ID,
		arg.Position,
		arg.Title,
		arg.Content,
		arg.Type,
		arg.DurationMinutes,
		arg.VideoID,
	)
	return err
}

const listLessonsByChapter = `
SELECT ` + lessonColumns + `
FROM lessons
WHERE course_id = $1 AND chapter_id = $2
ORDER BY position`

type ListLessonsByChapterParams struct {
	CourseID  uuid.UUID
	ChapterID string
}

func (q *Queries) ListLessonsByChapter(ctx context.Context, arg ListLessonsByChapterParams) ([]Lesson, error) {
	rows, err := q.db.QueryContext(ctx, listLessonsByChapter, arg.CourseID, arg.ChapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

const getLesson = `
SELECT ` + lessonColumns + `
FROM lessons
WHERE course_id = $1 AND id = $2`

type GetLessonParams struct {
	CourseID uuid.UUID
	ID       string
}

func (q *Queries) GetLesson(ctx context.Context, arg GetLessonParams) (Lesson, error) {
	return scanLesson(q.db.QueryRowContext(ctx, getLesson, arg.CourseID, arg.ID))
}

const updateLessonContent = `
UPDATE lessons
SET content = $3
WHERE course_id = $1 AND id = $2
RETURNING ` + lessonColumns

type UpdateLessonContentParams struct {
	CourseID uuid.UUID
	ID       string
	Content  sql.NullString
}

func (q *Queries) UpdateLessonContent(ctx context.Context, arg UpdateLessonContentParams) (Lesson, error) {
	return scanLesson(q.db.QueryRowContext(ctx, updateLessonContent, arg.CourseID, arg.ID, arg.Content))
}

const createQuiz = `
INSERT INTO quizzes (course_id, chapter_id, id, title, questions)
VALUES ($1, $2, $3, $4, $5)`

type CreateQuizParams struct {
	CourseID  uuid.UUID
	ChapterID string
	ID        string
	Title     string
	Questions json.RawMessage
}

func (q *Queries) CreateQuiz(ctx context.Context, arg CreateQuizParams) error {
	_, err := q.db.ExecContext(ctx, createQuiz,
		arg.CourseID,
		arg.ChapterID,
		arg.ID,
		arg.Title,
		arg.Questions,
	)
	return err
}

const getQuizByChapter = `
SELECT course_id, chapter_id, id, title, questions
FROM quizzes
WHERE course_id = $1 AND chapter_id = $2`

type GetQuizByChapterParams struct {
	CourseID  uuid.UUID
	ChapterID string
}

func (q *Queries) GetQuizByChapter(ctx context.Context, arg GetQuizByChapterParams) (Quiz, error) {
	var qz Quiz
	err := q.db.QueryRowContext(ctx, getQuizByChapter, arg.CourseID, arg.ChapterID).
		Scan(&qz.CourseID, &qz.ChapterID, &qz.ID, &qz.Title, &qz.Questions)
	return qz, err
}
