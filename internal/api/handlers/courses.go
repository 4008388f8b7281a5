package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/skillforge/skillforge-backend/internal/models"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/pkg/session"
)

// CourseHandler processes course-related HTTP requests
type CourseHandler struct {
	Service *services.CourseService // business logic goes through here
}

// NewCourseHandler creates handler with injected service
func NewCourseHandler(service *services.CourseService) *CourseHandler {
	return &CourseHandler{Service: service}
}

// List handles GET /api/courses - returns all persisted courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Service.ListCourses(r.Context())
	if err != nil {
		SendErrorResponse(w, "Failed to retrieve courses", http.StatusInternalServerError,
			"Error retrieving courses", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"courses": courses})
}

// createCourseRequest is the POST /api/courses body - a generated
// structure plus the metadata to file it under
type createCourseRequest struct {
	Course     *models.CourseStructure `json:"course"`
	Category   string                  `json:"category,omitempty"`
	Difficulty string                  `json:"difficulty,omitempty"`
}

// Create handles POST /api/courses - persists a generated structure
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if err := ValidateJSONBody(r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid create-course request", err)
		return
	}
	defer r.Body.Close()

	if req.Course == nil {
		SendErrorResponse(w, "Course structure is required", http.StatusBadRequest,
			"create-course request missing course", nil)
		return
	}

	meta, err := h.Service.SaveGeneratedCourse(r.Context(), req.Course, services.SaveCourseInput{
		Category:   req.Category,
		Difficulty: req.Difficulty,
		CreatorID:  session.GetCurrentProfile(),
	})
	if err != nil {
		SendErrorResponse(w, "Failed to save course", http.StatusInternalServerError,
			"Error saving course", err)
		return
	}

	SendCreatedResponse(w, map[string]interface{}{"course": meta})
}

// Get handles GET /api/courses/{courseID}
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("courseID"))
	if err != nil {
		SendErrorResponse(w, "Invalid course ID format", http.StatusBadRequest,
			"Invalid course ID", err)
		return
	}

	course, err := h.Service.GetCourse(r.Context(), id)
	if err != nil {
		SendErrorResponse(w, "Course not found", http.StatusNotFound,
			"Error retrieving course", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"course": course})
}

// Delete handles DELETE /api/courses/{courseID}
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("courseID"))
	if err != nil {
		SendErrorResponse(w, "Invalid course ID format", http.StatusBadRequest,
			"Invalid course ID", err)
		return
	}

	if err := h.Service.DeleteCourse(r.Context(), id); err != nil {
		SendErrorResponse(w, "Failed to delete course", http.StatusInternalServerError,
			"Error deleting course", err)
		return
	}

	SendSuccessResponse(w, map[string]string{"deleted": id.String()})
}

// Chapters handles GET /api/courses/{courseID}/chapters. With a "name"
// query parameter it generates fresh chapters for the described course;
// without one it returns what is persisted.
func (h *CourseHandler) Chapters(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseID")
	params := r.URL.Query()

	if params.Get("name") == "" {
		id, err := uuid.Parse(courseID)
		if err != nil {
			SendErrorResponse(w, "Invalid course ID format", http.StatusBadRequest,
				"Invalid course ID", err)
			return
		}

		chapters, err := h.Service.GetChapters(r.Context(), id)
		if err != nil {
			SendErrorResponse(w, "Failed to retrieve chapters", http.StatusInternalServerError,
				"Error retrieving chapters", err)
			return
		}
		SendSuccessResponse(w, map[string]interface{}{"chapters": chapters})
		return
	}

	chaptersCount, err := strconv.Atoi(params.Get("chapters"))
	if err != nil || chaptersCount <= 0 {
		chaptersCount = 3
	}
	includeVideos := params.Get("includeVideos") != "false"

	in := models.GenerateCourseInput{
		Name:          params.Get("name"),
		Description:   params.Get("description"),
		Category:      orDefault(params.Get("category"), "General"),
		Difficulty:    orDefault(params.Get("difficulty"), "Beginner"),
		Chapters:      chaptersCount,
		IncludeVideos: includeVideos,
	}

	chapters, err := h.Service.BuildUIChapters(r.Context(), in)
	if err != nil {
		SendErrorResponse(w, "Failed to generate chapters", http.StatusInternalServerError,
			"Chapters generation error", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"chapters": chapters})
}

// GenerateContent handles POST /api/courses/{courseID}/generate-content -
// generates lesson content on demand and returns it as HTML
func (h *CourseHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseID")

	var req services.GenerateContentInput
	if err := ValidateJSONBody(r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid generate-content request", err)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.GenerateLessonHTML(r.Context(), courseID, req)
	if err != nil {
		SendErrorResponse(w, "Failed to generate content", http.StatusInternalServerError,
			"generate-content error", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"created": created})
}

// GetContent handles GET /api/courses/{courseID}/content/{contentID}
func (h *CourseHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	lesson := h.Service.GetLessonContent(r.Context(), r.PathValue("courseID"), r.PathValue("contentID"))
	SendSuccessResponse(w, lesson)
}

// Edit handles PUT /api/courses/{courseID}/edit - updates metadata,
// filling absent fields with defaults
func (h *CourseHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("courseID"))
	if err != nil {
		SendErrorResponse(w, "Invalid course ID format", http.StatusBadRequest,
			"Invalid course ID", err)
		return
	}

	var req models.UpdateCourseInput
	if err := ValidateJSONBody(r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid edit request", err)
		return
	}
	defer r.Body.Close()

	meta, err := h.Service.UpdateCourseMetadata(r.Context(), id, req)
	if err != nil {
		SendErrorResponse(w, "Failed to update course", http.StatusInternalServerError,
			"Error updating course", err)
		return
	}

	SendSuccessResponse(w, meta)
}

// Publish handles POST /api/courses/{courseID}/publish
func (h *CourseHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("courseID"))
	if err != nil {
		SendErrorResponse(w, "Invalid course ID format", http.StatusBadRequest,
			"Invalid course ID", err)
		return
	}

	meta, err := h.Service.PublishCourse(r.Context(), id)
	if err != nil {
		SendErrorResponse(w, "Failed to publish course", http.StatusInternalServerError,
			"Error publishing course", err)
		return
	}

	SendSuccessResponse(w, meta)
}

// TestPath handles GET /api/courses/{courseID}/test-path - validates the
// learning path of a persisted course
func (h *CourseHandler) TestPath(w http.ResponseWriter, r *http.Request) {
	checks := h.Service.ValidateLearningPath(r.Context(), r.PathValue("courseID"))
	SendSuccessResponse(w, checks)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
