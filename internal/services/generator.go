package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/skillforge/skillforge-backend/internal/models"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-1.5-flash"

var (
	// ErrNotConfigured means no usable API credential was provided.
	// Checked before any network call is made.
	ErrNotConfigured = errors.New("gemini is not configured, set GEMINI_API_KEY")

	// ErrNoJSON means the model responded but no parseable JSON object
	// could be found in the text
	ErrNoJSON = errors.New("no valid JSON found in AI response")
)

// textGenerator is the single seam between the generation pipeline and
// the model API. Tests inject fakes here.
type textGenerator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

// geminiText calls one configured Gemini model
type geminiText struct {
	model *genai.GenerativeModel
}

func (g *geminiText) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}

	if b.Len() == 0 {
		return "", errors.New("empty response from model")
	}
	return b.String(), nil
}

// GeneratorConfig carries the Gemini credentials. Either key may be
// empty - the resulting Generator is then partially or fully
// unconfigured and fails fast with ErrNotConfigured.
type GeneratorConfig struct {
	APIKey         string
	FallbackAPIKey string
	Model          string
}

// Generator runs all AI generation operations. JSON-bearing operations
// (structure, quiz) and the tutor require the primary credential; the
// markdown-bearing ones fall back to the secondary when the primary is
// absent.
type Generator struct {
	primary  textGenerator
	fallback textGenerator
	clients  []*genai.Client
}

// NewGenerator builds clients for whichever credentials are present.
// Missing credentials are not an error here - operations report
// ErrNotConfigured when actually used.
func NewGenerator(ctx context.Context, cfg GeneratorConfig) (*Generator, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}

	g := &Generator{}

	if cfg.APIKey != "" {
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		g.clients = append(g.clients, client)
		g.primary = &geminiText{model: client.GenerativeModel(cfg.Model)}
	}

	if cfg.FallbackAPIKey != "" {
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.FallbackAPIKey))
		if err != nil {
			g.Close()
			return nil, fmt.Errorf("failed to create fallback gemini client: %w", err)
		}
		g.clients = append(g.clients, client)
		g.fallback = &geminiText{model: client.GenerativeModel(cfg.Model)}
	}

	return g, nil
}

// Close releases the underlying API clients
func (g *Generator) Close() {
	for _, client := range g.clients {
		client.Close()
	}
}

// IsConfigured reports whether any generation at all can run
func (g *Generator) IsConfigured() bool {
	return g.primary != nil || g.fallback != nil
}

// jsonSource is the generator for structure/quiz/tutor calls - these need
// the primary credential, the fallback is not accepted for them
func (g *Generator) jsonSource() (textGenerator, error) {
	if g.primary == nil {
		return nil, ErrNotConfigured
	}
	return g.primary, nil
}

// markdownSource is the generator for prose generation - bulk markdown
// may run on the fallback credential
func (g *Generator) markdownSource() (textGenerator, error) {
	if g.primary != nil {
		return g.primary, nil
	}
	if g.fallback != nil {
		return g.fallback, nil
	}
	return nil, ErrNotConfigured
}

// GenerateStructure produces a normalized course outline
func (g *Generator) GenerateStructure(ctx context.Context, in models.GenerateCourseInput) (*models.CourseStructure, error) {
	gen, err := g.jsonSource()
	if err != nil {
		return nil, err
	}

	text, err := gen.generate(ctx, BuildStructurePrompt(in))
	if err != nil {
		return nil, fmt.Errorf("failed to generate course structure: %w", err)
	}

	span, ok := extractJSONObject(text)
	if !ok {
		return nil, ErrNoJSON
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}

	structure := NormalizeStructure(raw, StructureDefaults{
		Title:       in.Name,
		Description: in.Description,
	})
	if err := ValidateStructure(structure); err != nil {
		return nil, fmt.Errorf("generated structure is invalid: %w", err)
	}

	return structure, nil
}

// GenerateLessonBody produces markdown content for a single lesson
func (g *Generator) GenerateLessonBody(ctx context.Context, lesson models.Lesson, chapterContext, courseContext, difficulty string) (string, error) {
	gen, err := g.markdownSource()
	if err != nil {
		return "", err
	}

	text, err := gen.generate(ctx, BuildLessonPrompt(lesson, chapterContext, courseContext, difficulty))
	if err != nil {
		return "", fmt.Errorf("failed to generate lesson content: %w", err)
	}

	return stripCodeFence(text), nil
}

// GenerateChapterDocument produces one long markdown document for a
// whole chapter
func (g *Generator) GenerateChapterDocument(ctx context.Context, chapter models.Chapter, courseTitle, difficulty string) (string, error) {
	gen, err := g.markdownSource()
	if err != nil {
		return "", err
	}

	text, err := gen.generate(ctx, BuildChapterDocumentPrompt(chapter, courseTitle, difficulty))
	if err != nil {
		return "", fmt.Errorf("failed to generate chapter document: %w", err)
	}

	return stripCodeFence(text), nil
}

// GenerateQuiz produces a quiz for a chapter
func (g *Generator) GenerateQuiz(ctx context.Context, chapterTitle string, topics []string, difficulty string) (*models.Quiz, error) {
	gen, err := g.jsonSource()
	if err != nil {
		return nil, err
	}

	text, err := gen.generate(ctx, BuildQuizPrompt(chapterTitle, topics, difficulty))
	if err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}

	span, ok := extractJSONObject(text)
	if !ok {
		return nil, ErrNoJSON
	}

	var quiz models.Quiz
	if err := json.Unmarshal([]byte(span), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}

	return &quiz, nil
}

// TutorReply answers a student question with course context
func (g *Generator) TutorReply(ctx context.Context, message string, courseCtx *models.TutorContext, history []models.TutorMessage) (string, error) {
	gen, err := g.jsonSource()
	if err != nil {
		return "", err
	}

	text, err := gen.generate(ctx, BuildTutorPrompt(message, courseCtx, history))
	if err != nil {
		return "", fmt.Errorf("failed to get tutor response: %w", err)
	}

	return text, nil
}

// extractJSONObject finds the first balanced-brace JSON object in model
// output. Models love wrapping JSON in prose and code fences, so a plain
// Unmarshal of the whole text rarely works.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	log.Printf("[Generator] Unbalanced JSON in model response (%d chars)", len(text))
	return "", false
}

// stripCodeFence removes one wrapping ``` fence (with optional language
// tag) from markdown responses
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}

	// drop the opening fence line and a matching closing fence
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
