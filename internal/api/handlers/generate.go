package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/skillforge/skillforge-backend/internal/models"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/pkg/jobs"
)

// GenerateHandler processes AI generation requests
type GenerateHandler struct {
	Service *services.CourseService // generation pipeline lives here
	Jobs    *jobs.Manager           // tracks async generation runs
}

// NewGenerateHandler creates handler with injected dependencies
func NewGenerateHandler(service *services.CourseService, jobManager *jobs.Manager) *GenerateHandler {
	return &GenerateHandler{Service: service, Jobs: jobManager}
}

// generateCourseRequest is the POST /api/generate-course body
type generateCourseRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Chapters      int    `json:"chapters"`
	IncludeVideos bool   `json:"includeVideos,omitempty"`
	Async         bool   `json:"async,omitempty"`
}

func (r *generateCourseRequest) toInput() models.GenerateCourseInput {
	return models.GenerateCourseInput{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		Difficulty:    r.Difficulty,
		Chapters:      r.Chapters,
		IncludeVideos: r.IncludeVideos,
	}
}

// GenerateCourse handles POST /api/generate-course - runs the full
// pipeline, either inline or as a tracked background job
func (h *GenerateHandler) GenerateCourse(w http.ResponseWriter, r *http.Request) {
	var req generateCourseRequest
	if err := ValidateJSONBody(r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid generate-course request", err)
		return
	}
	defer r.Body.Close()

	if req.Name == "" || req.Category == "" || req.Difficulty == "" || req.Chapters == 0 {
		SendErrorResponse(w, "Missing required fields", http.StatusBadRequest,
			"generate-course request missing required fields", nil)
		return
	}

	if req.Async {
		jobID := h.Jobs.Create("course_generation")

		// detached from the request - the client polls the job instead
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()

			h.Jobs.SetStatus(jobID, jobs.StatusProcessing)
			course, err := h.Service.GenerateCourse(ctx, req.toInput(), func(pct float32, msg string) {
				h.Jobs.SetProgress(jobID, pct, msg)
			})
			if err != nil {
				h.Jobs.Fail(jobID, err.Error())
				return
			}
			h.Jobs.Complete(jobID, map[string]interface{}{"course": course})
		}()

		SendAcceptedResponse(w, map[string]string{"job_id": jobID})
		return
	}

	course, err := h.Service.GenerateCourse(r.Context(), req.toInput(), nil)
	if err != nil {
		SendErrorResponse(w, "Failed to generate course", http.StatusInternalServerError,
			"Course generation error", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"course": course})
}

// generateLessonContentRequest is the POST /api/generate-lesson-content body
type generateLessonContentRequest struct {
	Lesson         *models.Lesson `json:"lesson"`
	ChapterContext string         `json:"chapterContext"`
	CourseContext  string         `json:"courseContext"`
	Difficulty     string         `json:"difficulty"`
}

// GenerateLessonContent handles POST /api/generate-lesson-content -
// returns raw markdown for one lesson
func (h *GenerateHandler) GenerateLessonContent(w http.ResponseWriter, r *http.Request) {
	var req generateLessonContentRequest
	if err := ValidateJSONBody(r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid generate-lesson-content request", err)
		return
	}
	defer r.Body.Close()

	if req.Lesson == nil || req.ChapterContext == "" || req.CourseContext == "" || req.Difficulty == "" {
		SendErrorResponse(w, "Missing required fields", http.StatusBadRequest,
			"generate-lesson-content request missing required fields", nil)
		return
	}

	content, err := h.Service.Generator.GenerateLessonBody(r.Context(),
		*req.Lesson, req.ChapterContext, req.CourseContext, req.Difficulty)
	if err != nil {
		SendErrorResponse(w, "Failed to generate lesson content", http.StatusInternalServerError,
			"Lesson content generation error", err)
		return
	}

	SendSuccessResponse(w, map[string]string{"content": content})
}

// generateChapterDocumentRequest is the POST /api/generate-chapter-document body
type generateChapterDocumentRequest struct {
	Chapter     *models.Chapter `json:"chapter"`
	CourseTitle string          `json:"courseTitle"`
	Difficulty  string          `json:"difficulty"`
}

// GenerateChapterDocument handles POST /api/generate-chapter-document -
// one long markdown document for a whole chapter
func (h *GenerateHandler) GenerateChapterDocument(w http.ResponseWriter, r *http.Request) {
	var req generateChapterDocumentRequest
	if err := ValidateJSONBody(r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid generate-chapter-document request", err)
		return
	}
	defer r.Body.Close()

	if req.Chapter == nil || req.Chapter.Title == "" {
		SendErrorResponse(w, "Chapter is required", http.StatusBadRequest,
			"generate-chapter-document request missing chapter", nil)
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "Beginner"
	}

	document, err := h.Service.Generator.GenerateChapterDocument(r.Context(),
		*req.Chapter, req.CourseTitle, req.Difficulty)
	if err != nil {
		SendErrorResponse(w, "Failed to generate chapter document", http.StatusInternalServerError,
			"Chapter document generation error", err)
		return
	}

	SendSuccessResponse(w, map[string]string{"document": document})
}

// generateQuizRequest is the POST /api/generate-quiz body
type generateQuizRequest struct {
	ChapterTitle string   `json:"chapterTitle"`
	Topics       []string `json:"topics,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
}

// GenerateQuiz handles POST /api/generate-quiz
func (h *GenerateHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if err := ValidateJSONBody(r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid generate-quiz request", err)
		return
	}
	defer r.Body.Close()

	if req.ChapterTitle == "" {
		SendErrorResponse(w, "Chapter title is required", http.StatusBadRequest,
			"generate-quiz request missing chapter title", nil)
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "Beginner"
	}

	quiz, err := h.Service.Generator.GenerateQuiz(r.Context(), req.ChapterTitle, req.Topics, req.Difficulty)
	if err != nil {
		SendErrorResponse(w, "Failed to generate quiz", http.StatusInternalServerError,
			"Quiz generation error", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"quiz": quiz})
}
