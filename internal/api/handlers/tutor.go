package handlers

import (
	"net/http"

	"github.com/skillforge/skillforge-backend/internal/models"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/pkg/session"
)

// TutorHandler answers student questions through the AI tutor
type TutorHandler struct {
	Generator *services.Generator
	Profiles  *services.ProfileService // for the interaction counter
}

// NewTutorHandler creates handler with injected dependencies
func NewTutorHandler(generator *services.Generator, profiles *services.ProfileService) *TutorHandler {
	return &TutorHandler{Generator: generator, Profiles: profiles}
}

// tutorRequest is the POST /api/tutor body
type tutorRequest struct {
	Message             string                `json:"message"`
	CourseContext       *models.TutorContext  `json:"courseContext,omitempty"`
	ConversationHistory []models.TutorMessage `json:"conversationHistory,omitempty"`
}

// Chat handles POST /api/tutor
func (h *TutorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req tutorRequest
	if err := ValidateJSONBody(r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid tutor request", err)
		return
	}
	defer r.Body.Close()

	if req.Message == "" {
		SendErrorResponse(w, "Message is required", http.StatusBadRequest,
			"tutor request missing message", nil)
		return
	}

	reply, err := h.Generator.TutorReply(r.Context(), req.Message, req.CourseContext, req.ConversationHistory)
	if err != nil {
		SendErrorResponse(w, "Failed to get AI response", http.StatusInternalServerError,
			"Tutor error", err)
		return
	}

	// counts toward the ai_enthusiast achievement
	h.Profiles.RecordAIInteraction(r.Context(), session.GetCurrentProfile())

	SendSuccessResponse(w, map[string]string{"response": reply})
}
