package handlers

import (
	"log"
	"net/http"

	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/pkg/jobs"
)

// AdminHandler handles administrative operations
type AdminHandler struct {
	Service *services.AdminService // admin operations go through here
	Jobs    *jobs.Manager          // cleared alongside the database
}

// NewAdminHandler creates handler with injected admin service
func NewAdminHandler(service *services.AdminService, jobManager *jobs.Manager) *AdminHandler {
	return &AdminHandler{Service: service, Jobs: jobManager}
}

// FactoryReset handles POST /api/admin/factory-reset - clears all database data
func (h *AdminHandler) FactoryReset(w http.ResponseWriter, r *http.Request) {
	log.Println("Factory reset requested by user")

	err := h.Service.FactoryResetDatabase(r.Context())
	if err != nil {
		SendErrorResponse(w, "Factory reset failed: "+err.Error(), http.StatusInternalServerError,
			"Error during factory reset", err)
		return
	}

	// drop tracked jobs too, their results reference deleted data
	h.Jobs.Cleanup(0)

	SendSuccessResponse(w, map[string]string{
		"message": "Database factory reset completed successfully - all data cleared",
	})
}

// GetStats handles GET /api/admin/stats - shows basic database statistics
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetDatabaseStats(r.Context())
	if err != nil {
		SendErrorResponse(w, "Failed to get database stats", http.StatusInternalServerError,
			"Error getting database stats", err)
		return
	}

	SendSuccessResponse(w, map[string]interface{}{"stats": stats})
}
