package handlers

import (
	"net/http"

	"github.com/skillforge/skillforge-backend/pkg/jobs"
)

// JobHandler reports background job status
type JobHandler struct {
	Jobs *jobs.Manager
}

// NewJobHandler creates new job handler
func NewJobHandler(jobManager *jobs.Manager) *JobHandler {
	return &JobHandler{Jobs: jobManager}
}

// Get handles GET /api/jobs/{jobID} - checks job status
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobID")
	if jobID == "" {
		SendErrorResponse(w, "Job ID is required", http.StatusBadRequest,
			"job status request missing id", nil)
		return
	}

	job, exists := h.Jobs.Get(jobID)
	if !exists {
		SendErrorResponse(w, "Job not found", http.StatusNotFound,
			"Unknown job: "+jobID, nil)
		return
	}

	SendSuccessResponse(w, job)
}
