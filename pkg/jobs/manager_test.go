package jobs

import (
	"testing"
	"time"
)

func TestJobLifecycle(t *testing.T) {
	m := NewManager()

	id := m.Create("course_generation")
	job, ok := m.Get(id)
	if !ok {
		t.Fatal("job not found after Create")
	}
	if job.Status != StatusPending {
		t.Errorf("new job status = %s, want %s", job.Status, StatusPending)
	}

	m.SetStatus(id, StatusProcessing)
	m.SetProgress(id, 40, "generating structure")

	job, _ = m.Get(id)
	if job.Status != StatusProcessing {
		t.Errorf("status = %s, want %s", job.Status, StatusProcessing)
	}
	if job.Progress != 40 || job.Message != "generating structure" {
		t.Errorf("progress = %v / %q", job.Progress, job.Message)
	}
	if job.StartedAt.IsZero() {
		t.Error("StartedAt not set on processing")
	}

	m.Complete(id, map[string]string{"title": "Go Basics"})
	job, _ = m.Get(id)
	if job.Status != StatusCompleted || job.Progress != 100 {
		t.Errorf("completed job: status=%s progress=%v", job.Status, job.Progress)
	}
	if job.CompletedAt.IsZero() {
		t.Error("CompletedAt not set on completion")
	}
}

func TestJobFail(t *testing.T) {
	m := NewManager()
	id := m.Create("course_generation")

	m.Fail(id, "upstream error")

	job, _ := m.Get(id)
	if job.Status != StatusFailed {
		t.Errorf("status = %s, want %s", job.Status, StatusFailed)
	}
	if job.ErrorMessage != "upstream error" {
		t.Errorf("error message = %q", job.ErrorMessage)
	}
}

func TestCleanupOnlyRemovesFinishedJobs(t *testing.T) {
	m := NewManager()

	done := m.Create("course_generation")
	m.Complete(done, nil)
	running := m.Create("course_generation")
	m.SetStatus(running, StatusProcessing)

	// age 0 means everything finished is eligible
	time.Sleep(time.Millisecond)
	cleaned := m.Cleanup(0)
	if cleaned != 1 {
		t.Fatalf("cleaned = %d, want 1", cleaned)
	}
	if _, ok := m.Get(done); ok {
		t.Error("finished job survived cleanup")
	}
	if _, ok := m.Get(running); !ok {
		t.Error("running job was cleaned up")
	}
}

func TestGetUnknownJob(t *testing.T) {
	m := NewManager()
	if _, ok := m.Get("nope"); ok {
		t.Error("expected missing job")
	}
}
