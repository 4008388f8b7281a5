package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/skillforge/skillforge-backend/internal/models"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/pkg/session"
)

// ProfileHandler processes profile-related HTTP requests
type ProfileHandler struct {
	Service *services.ProfileService // business logic goes through here
}

// NewProfileHandler creates handler with injected service
func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: service}
}

// List handles GET /api/profiles - returns all user profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Service.GetAllProfiles(r.Context())
	if err != nil {
		SendErrorResponse(w, "Failed to retrieve profiles", http.StatusInternalServerError,
			"Error retrieving profiles", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"profiles": profiles})
}

// Create handles POST /api/profiles - makes new profile
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateProfileInput
	if err := ValidateJSONBody(r, &in); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid create-profile request", err)
		return
	}
	defer r.Body.Close()

	createdProfile, err := h.Service.CreateProfile(r.Context(), in)
	if err != nil {
		SendErrorResponse(w, "Failed to create profile", http.StatusInternalServerError,
			"Error creating profile", err)
		return
	}

	SendCreatedResponse(w, map[string]interface{}{"profile": createdProfile})
}

// Update handles PUT /api/profiles/{profileID} - renames a profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("profileID"))
	if err != nil {
		SendErrorResponse(w, "Invalid profile ID format", http.StatusBadRequest,
			"Invalid profile ID", err)
		return
	}

	var in models.UpdateProfileInput
	if err := ValidateJSONBody(r, &in); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, "Invalid update-profile request", err)
		return
	}
	defer r.Body.Close()

	updatedProfile, err := h.Service.UpdateProfileName(r.Context(), profileID, in.Name)
	if err != nil {
		SendErrorResponse(w, "Failed to update profile", http.StatusInternalServerError,
			"Error updating profile", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"profile": updatedProfile})
}

// Delete handles DELETE /api/profiles/{profileID} - removes a profile
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("profileID"))
	if err != nil {
		SendErrorResponse(w, "Invalid profile ID format", http.StatusBadRequest,
			"Invalid profile ID", err)
		return
	}

	if err := h.Service.DeleteProfileByID(r.Context(), profileID); err != nil {
		SendErrorResponse(w, "Failed to delete profile", http.StatusInternalServerError,
			"Error deleting profile", err)
		return
	}

	// deleting the active profile logs it out
	if session.GetCurrentProfile() == profileID {
		session.ClearCurrentProfile()
	}

	SendSuccessResponse(w, map[string]string{"deleted": profileID.String()})
}

// SelectProfile handles POST /api/profiles/{profileID}/select - sets
// the active profile
func (h *ProfileHandler) SelectProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("profileID"))
	if err != nil {
		SendErrorResponse(w, "Invalid profile ID format", http.StatusBadRequest,
			"Invalid profile ID", err)
		return
	}

	// make sure profile actually exists
	profile, err := h.Service.GetProfileByID(r.Context(), profileID)
	if err != nil {
		SendErrorResponse(w, "Profile not found", http.StatusNotFound,
			"Error retrieving profile", err)
		return
	}

	// set as current profile in session
	session.SetCurrentProfile(profileID)

	SendSuccessResponse(w, map[string]interface{}{"profile": profile})
}
