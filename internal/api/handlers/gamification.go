package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/pkg/session"
)

// GamificationHandler serves XP, level and achievement endpoints for the
// currently selected profile
type GamificationHandler struct {
	Service *services.ProfileService
}

// NewGamificationHandler creates handler with injected service
func NewGamificationHandler(service *services.ProfileService) *GamificationHandler {
	return &GamificationHandler{Service: service}
}

// currentProfile resolves the active profile or writes the error response
func currentProfile(w http.ResponseWriter) (uuid.UUID, bool) {
	profileID := session.GetCurrentProfile()
	if profileID == uuid.Nil {
		SendErrorResponse(w, "No profile selected", http.StatusBadRequest,
			"Gamification request without an active profile", nil)
		return uuid.Nil, false
	}
	return profileID, true
}

// GetLevel handles GET /api/gamification/level
func (h *GamificationHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	profileID, ok := currentProfile(w)
	if !ok {
		return
	}

	level, err := h.Service.GetLevel(r.Context(), profileID)
	if err != nil {
		SendErrorResponse(w, "Failed to calculate level", http.StatusInternalServerError,
			"Error calculating level", err)
		return
	}

	SendSuccessResponse(w, level)
}

// awardXPRequest is the POST /api/gamification/xp body
type awardXPRequest struct {
	Action string `json:"action"`
}

// AwardXP handles POST /api/gamification/xp - grants the reward for an
// action and reports any level-up
func (h *GamificationHandler) AwardXP(w http.ResponseWriter, r *http.Request) {
	profileID, ok := currentProfile(w)
	if !ok {
		return
	}

	var req awardXPRequest
	if err := ValidateJSONBody(r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid award-xp request", err)
		return
	}
	defer r.Body.Close()

	if req.Action == "" {
		SendErrorResponse(w, "Action is required", http.StatusBadRequest,
			"award-xp request missing action", nil)
		return
	}

	result, err := h.Service.AwardAction(r.Context(), profileID, req.Action)
	if err != nil {
		SendErrorResponse(w, "Failed to award XP", http.StatusInternalServerError,
			"Error awarding XP", err)
		return
	}

	SendSuccessResponse(w, result)
}

// GetAchievements handles GET /api/gamification/achievements - evaluates
// the catalog, persisting any newly earned unlocks
func (h *GamificationHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	profileID, ok := currentProfile(w)
	if !ok {
		return
	}

	achievements, err := h.Service.GetAchievements(r.Context(), profileID)
	if err != nil {
		SendErrorResponse(w, "Failed to evaluate achievements", http.StatusInternalServerError,
			"Error evaluating achievements", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"achievements": achievements})
}

// Leaderboard handles GET /api/gamification/leaderboard?limit=n
func (h *GamificationHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	profiles, err := h.Service.Leaderboard(r.Context(), limit)
	if err != nil {
		SendErrorResponse(w, "Failed to load leaderboard", http.StatusInternalServerError,
			"Error loading leaderboard", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"leaderboard": profiles})
}
