package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/pkg/jobs"
)

// newTestHandler builds a handler around an unconfigured generation stack.
// Requests that reach the AI layer fail with a 500, validation failures
// never get that far.
func newTestHandler(t *testing.T) *GenerateHandler {
	t.Helper()

	generator, err := services.NewGenerator(context.Background(), services.GeneratorConfig{})
	if err != nil {
		t.Fatalf("building generator: %v", err)
	}
	videos, err := services.NewVideoFinder(context.Background(), services.VideoFinderConfig{})
	if err != nil {
		t.Fatalf("building video finder: %v", err)
	}

	service := services.NewCourseService(nil, nil, generator, videos)
	return NewGenerateHandler(service, jobs.NewManager())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not the standard envelope: %v", err)
	}
	return resp
}

func TestGenerateCourseRejectsMissingFields(t *testing.T) {
	h := newTestHandler(t)

	body := `{"name": "Go Course", "category": "Programming"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-course", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.GenerateCourse(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Success {
		t.Error("error response claims success")
	}
	if resp.Error == "" {
		t.Error("error response has no error message")
	}
}

func TestGenerateCourseRejectsBadJSON(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-course", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.GenerateCourse(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateCourseRejectsUnknownFields(t *testing.T) {
	h := newTestHandler(t)

	body := `{"name": "X", "category": "Y", "difficulty": "Beginner", "chapters": 3, "bogus": true}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-course", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.GenerateCourse(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown fields", rec.Code)
	}
}

func TestGenerateCourseUnconfiguredIs500(t *testing.T) {
	h := newTestHandler(t)

	body := `{"name": "Go Course", "category": "Programming", "difficulty": "Beginner", "chapters": 3}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-course", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.GenerateCourse(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 without an API key", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Success {
		t.Error("failed generation claims success")
	}
}

func TestGenerateCourseAsyncReturnsJob(t *testing.T) {
	h := newTestHandler(t)

	body := `{"name": "Go Course", "category": "Programming", "difficulty": "Beginner", "chapters": 3, "async": true}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-course", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.GenerateCourse(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T, want an object", resp.Data)
	}
	jobID, _ := data["job_id"].(string)
	if jobID == "" {
		t.Fatal("no job_id in async response")
	}

	// the background run fails fast without a configured generator
	deadline := time.Now().Add(2 * time.Second)
	for {
		job, exists := h.Jobs.Get(jobID)
		if !exists {
			t.Fatal("job vanished")
		}
		if job.Status == jobs.StatusFailed {
			if job.ErrorMessage == "" {
				t.Error("failed job has no error message")
			}
			break
		}
		if job.Status == jobs.StatusCompleted {
			t.Fatal("job completed without any AI backend")
		}
		if time.Now().After(deadline) {
			t.Fatalf("job stuck in status %s", job.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestGenerateQuizRequiresChapterTitle(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(`{"topics": ["a"]}`))
	rec := httptest.NewRecorder()

	h.GenerateQuiz(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateLessonContentRequiresAllFields(t *testing.T) {
	h := newTestHandler(t)

	body := `{"lesson": {"id": "l1", "title": "Hello"}, "chapterContext": "Basics"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-lesson-content", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.GenerateLessonContent(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestJobStatusLookup(t *testing.T) {
	manager := jobs.NewManager()
	h := NewJobHandler(manager)

	// unknown job
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/nope", nil)
	req.SetPathValue("jobID", "nope")
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown job status = %d, want 404", rec.Code)
	}

	// known job
	jobID := manager.Create("course_generation")
	req = httptest.NewRequest(http.MethodGet, "/api/jobs/"+jobID, nil)
	req.SetPathValue("jobID", jobID)
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("known job status = %d, want 200", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if !resp.Success {
		t.Error("job lookup envelope not successful")
	}
}

func TestTutorRequiresMessage(t *testing.T) {
	generator, _ := services.NewGenerator(context.Background(), services.GeneratorConfig{})
	h := NewTutorHandler(generator, &services.ProfileService{})

	req := httptest.NewRequest(http.MethodPost, "/api/tutor", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Chat(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
