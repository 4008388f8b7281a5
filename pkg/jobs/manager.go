package jobs

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status shows what state a job is in
type Status string

const (
	StatusPending    Status = "pending"    // waiting to start
	StatusProcessing Status = "processing" // currently running
	StatusCompleted  Status = "completed"  // finished successfully
	StatusFailed     Status = "failed"     // something went wrong
)

// Job represents a background generation run that might take a while
type Job struct {
	ID           string      `json:"id"`
	Type         string      `json:"type"`                    // what kind of job
	Status       Status      `json:"status"`                  // current state
	Progress     float32     `json:"progress"`                // 0-100 percent done
	CreatedAt    time.Time   `json:"created_at"`              // when it was requested
	StartedAt    time.Time   `json:"started_at,omitempty"`    // when processing began
	CompletedAt  time.Time   `json:"completed_at,omitempty"`  // when it finished
	Message      string      `json:"message,omitempty"`       // status updates
	ErrorMessage string      `json:"error_message,omitempty"` // what went wrong
	Result       interface{} `json:"result,omitempty"`        // final results
}

// Manager keeps track of all running jobs. The server owns one instance,
// there is no package-level state.
type Manager struct {
	jobs map[string]*Job
	mu   sync.RWMutex // for thread safety
}

// NewManager sets up an empty job manager
func NewManager() *Manager {
	return &Manager{
		jobs: make(map[string]*Job),
	}
}

// Create makes a new job and returns its ID
func (m *Manager) Create(jobType string) string {
	jobID := uuid.New().String()
	job := &Job{
		ID:        jobID,
		Type:      jobType,
		Status:    StatusPending,
		Progress:  0,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	m.jobs[jobID] = job
	m.mu.Unlock()

	return jobID
}

// Get retrieves job info by ID. The returned copy is safe to hand out
// while the job keeps mutating.
func (m *Manager) Get(jobID string) (Job, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return Job{}, false
	}
	return *job, true
}

// SetStatus changes the job status
func (m *Manager) SetStatus(jobID string, status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}

	job.Status = status
	if status == StatusProcessing && job.StartedAt.IsZero() {
		job.StartedAt = time.Now()
	}
	if status == StatusCompleted || status == StatusFailed {
		job.CompletedAt = time.Now()
	}
}

// SetProgress updates how much of the job is done
func (m *Manager) SetProgress(jobID string, progress float32, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}

	job.Progress = progress
	job.Message = message
}

// Fail marks a job as failed with an error message
func (m *Manager) Fail(jobID string, errorMessage string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}

	job.Status = StatusFailed
	job.ErrorMessage = errorMessage
	job.CompletedAt = time.Now()
}

// Complete marks a job as done with optional result data
func (m *Manager) Complete(jobID string, result interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}

	job.Status = StatusCompleted
	job.Progress = 100
	job.Result = result
	job.CompletedAt = time.Now()
}

// Cleanup removes finished jobs older than the specified age
func (m *Manager) Cleanup(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	cleaned := 0

	for jobID, job := range m.jobs {
		// only clean up completed or failed jobs
		if (job.Status == StatusCompleted || job.Status == StatusFailed) &&
			!job.CompletedAt.IsZero() && job.CompletedAt.Before(cutoff) {
			delete(m.jobs, jobID)
			cleaned++
		}
	}

	return cleaned
}

// CleanupRoutine runs cleanup automatically on a schedule
func (m *Manager) CleanupRoutine(interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		m.Cleanup(maxAge)
	}
}
