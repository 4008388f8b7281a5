package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/skillforge/skillforge-backend/internal/models"
)

// fakeText returns a canned response and records the prompt it got
type fakeText struct {
	response string
	err      error
	prompt   string
}

func (f *fakeText) generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGenerateStructureFromFencedResponse(t *testing.T) {
	fake := &fakeText{response: "Sure! Here is your course:\n```json\n" + `{
		"title": "Intro to Go",
		"description": "A short course",
		"chapters": [
			{"title": "Basics", "lessons": [{"title": "Hello", "type": "video"}]}
		]
	}` + "\n```\nLet me know if you need changes."}
	g := &Generator{primary: fake}

	structure, err := g.GenerateStructure(context.Background(), models.GenerateCourseInput{
		Name:       "Intro to Go",
		Category:   "Programming",
		Difficulty: "Beginner",
		Chapters:   1,
	})
	if err != nil {
		t.Fatalf("GenerateStructure failed: %v", err)
	}

	if structure.Title != "Intro to Go" {
		t.Errorf("title = %q", structure.Title)
	}
	if len(structure.Chapters) != 1 {
		t.Fatalf("chapters = %d, want 1", len(structure.Chapters))
	}
	if structure.Chapters[0].ID != "chapter-1" {
		t.Errorf("chapter id = %q, normalization should have filled it", structure.Chapters[0].ID)
	}
	if got := structure.Chapters[0].Lessons[0].Type; got != models.LessonTypeVideo {
		t.Errorf("lesson type = %q, want video", got)
	}
}

func TestGenerateStructureNoJSON(t *testing.T) {
	fake := &fakeText{response: "I cannot produce a course outline right now."}
	g := &Generator{primary: fake}

	_, err := g.GenerateStructure(context.Background(), models.GenerateCourseInput{Name: "X"})
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("err = %v, want ErrNoJSON", err)
	}
}

func TestGenerateStructureModelError(t *testing.T) {
	fake := &fakeText{err: errors.New("rate limited")}
	g := &Generator{primary: fake}

	_, err := g.GenerateStructure(context.Background(), models.GenerateCourseInput{Name: "X"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrNoJSON) || errors.Is(err, ErrNotConfigured) {
		t.Errorf("model failure mapped to the wrong sentinel: %v", err)
	}
}

func TestUnconfiguredGeneratorFailsFast(t *testing.T) {
	g := &Generator{}

	if g.IsConfigured() {
		t.Error("empty generator reports configured")
	}
	if _, err := g.GenerateStructure(context.Background(), models.GenerateCourseInput{Name: "X"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("GenerateStructure err = %v, want ErrNotConfigured", err)
	}
	if _, err := g.GenerateLessonBody(context.Background(), models.Lesson{Title: "L"}, "C", "Course", "Beginner"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("GenerateLessonBody err = %v, want ErrNotConfigured", err)
	}
	if _, err := g.TutorReply(context.Background(), "hi", nil, nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("TutorReply err = %v, want ErrNotConfigured", err)
	}
}

func TestFallbackServesMarkdownOnly(t *testing.T) {
	fake := &fakeText{response: "# Lesson\n\nSome content."}
	g := &Generator{fallback: fake}

	// markdown generation may run on the fallback credential
	body, err := g.GenerateLessonBody(context.Background(), models.Lesson{Title: "Hello"}, "Basics", "Intro to Go", "Beginner")
	if err != nil {
		t.Fatalf("fallback should serve lesson content: %v", err)
	}
	if body == "" {
		t.Error("empty lesson body")
	}

	// structured output still requires the primary
	if _, err := g.GenerateStructure(context.Background(), models.GenerateCourseInput{Name: "X"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("GenerateStructure on fallback-only err = %v, want ErrNotConfigured", err)
	}
	if _, err := g.GenerateQuiz(context.Background(), "Basics", nil, "Beginner"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("GenerateQuiz on fallback-only err = %v, want ErrNotConfigured", err)
	}
}

func TestGenerateLessonBodyStripsFence(t *testing.T) {
	fake := &fakeText{response: "```markdown\n# Variables\n\nGo has variables.\n```"}
	g := &Generator{primary: fake}

	body, err := g.GenerateLessonBody(context.Background(), models.Lesson{Title: "Variables"}, "Basics", "Intro to Go", "Beginner")
	if err != nil {
		t.Fatal(err)
	}
	if body != "# Variables\n\nGo has variables." {
		t.Errorf("body = %q, fence should be stripped", body)
	}
}

func TestGenerateQuiz(t *testing.T) {
	fake := &fakeText{response: `{
		"title": "Basics Quiz",
		"questions": [
			{"id": "q1", "question": "What keyword declares a variable?", "type": "multiple-choice", "options": ["var", "let", "def", "dim"], "correctAnswer": "var", "explanation": "var declares a variable"}
		]
	}`}
	g := &Generator{primary: fake}

	quiz, err := g.GenerateQuiz(context.Background(), "Basics", []string{"variables"}, "Beginner")
	if err != nil {
		t.Fatalf("GenerateQuiz failed: %v", err)
	}
	if quiz.Title != "Basics Quiz" {
		t.Errorf("title = %q", quiz.Title)
	}
	if len(quiz.Questions) != 1 || quiz.Questions[0].CorrectAnswer != "var" {
		t.Errorf("questions parsed wrong: %+v", quiz.Questions)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare", `{"a": 1}`, `{"a": 1}`, true},
		{"prose around", `Here you go: {"a": 1} hope that helps`, `{"a": 1}`, true},
		{"nested", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`, true},
		{"brace in string", `{"a": "}"}`, `{"a": "}"}`, true},
		{"escaped quote", `{"a": "\"}"}`, `{"a": "\"}"}`, true},
		{"no object", "nothing here", "", false},
		{"unbalanced", `{"a": 1`, "", false},
	}
	for _, tc := range tests {
		got, ok := extractJSONObject(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s: extractJSONObject(%q) = %q, %v; want %q, %v", tc.name, tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```markdown\n# Title\n```", "# Title"},
		{"```\ncontent\n```", "content"},
		{"no fence at all", "no fence at all"},
		{"  \n```\nspaced\n```\n  ", "spaced"},
		{"```\nno closing fence", "no closing fence"},
	}
	for _, tc := range tests {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTutorPromptCarriesContext(t *testing.T) {
	fake := &fakeText{response: "A goroutine is a lightweight thread."}
	g := &Generator{primary: fake}

	reply, err := g.TutorReply(context.Background(), "What is a goroutine?", &models.TutorContext{
		CourseName:     "Intro to Go",
		CurrentChapter: "Concurrency",
	}, []models.TutorMessage{{Role: "user", Content: "earlier question"}})
	if err != nil {
		t.Fatal(err)
	}
	if reply == "" {
		t.Error("empty reply")
	}
	for _, want := range []string{"Intro to Go", "Concurrency", "What is a goroutine?", "earlier question"} {
		if !strings.Contains(fake.prompt, want) {
			t.Errorf("prompt is missing %q", want)
		}
	}
}
