package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/skillforge/skillforge-backend/internal/api/handlers"
	"github.com/skillforge/skillforge-backend/internal/database"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/pkg/jobs"
)

// Server holds all the app components together
type Server struct {
	DB *database.Queries // direct db access - probably should refactor this later

	Router *http.ServeMux // handles routing requests

	Jobs *jobs.Manager // background generation jobs

	// handlers for different parts of the API
	GenerateHandler     *handlers.GenerateHandler
	CourseHandler       *handlers.CourseHandler
	ProfileHandler      *handlers.ProfileHandler
	GamificationHandler *handlers.GamificationHandler
	TutorHandler        *handlers.TutorHandler
	JobHandler          *handlers.JobHandler
	AdminHandler        *handlers.AdminHandler // for admin operations
}

// NewServer wires up all the dependencies and returns a ready-to-use server
func NewServer(db *sql.DB, generator *services.Generator, videos *services.VideoFinder) *Server {
	dbQueries := database.New(db)

	jobManager := jobs.NewManager()
	// start cleanup routine in background - cleans old jobs every hour
	go jobManager.CleanupRoutine(1*time.Hour, 24*time.Hour)

	// create service layer instances
	profileSvc := services.NewProfileService(dbQueries)
	courseSvc := services.NewCourseService(db, dbQueries, generator, videos)
	adminSvc := services.NewAdminService(dbQueries)

	// wire everything together
	server := &Server{
		DB:                  dbQueries,
		Router:              http.NewServeMux(),
		Jobs:                jobManager,
		GenerateHandler:     handlers.NewGenerateHandler(courseSvc, jobManager),
		CourseHandler:       handlers.NewCourseHandler(courseSvc),
		ProfileHandler:      handlers.NewProfileHandler(profileSvc),
		GamificationHandler: handlers.NewGamificationHandler(profileSvc),
		TutorHandler:        handlers.NewTutorHandler(generator, profileSvc),
		JobHandler:          handlers.NewJobHandler(jobManager),
		AdminHandler:        handlers.NewAdminHandler(adminSvc, jobManager),
	}

	server.setupRoutes()
	return server
}

// setupRoutes maps all the endpoints to handler functions
func (s *Server) setupRoutes() {
	s.Router.HandleFunc("/api", s.HelloHandler)

	// AI generation
	s.Router.HandleFunc("POST /api/generate-course", s.GenerateHandler.GenerateCourse)
	s.Router.HandleFunc("POST /api/generate-lesson-content", s.GenerateHandler.GenerateLessonContent)
	s.Router.HandleFunc("POST /api/generate-chapter-document", s.GenerateHandler.GenerateChapterDocument)
	s.Router.HandleFunc("POST /api/generate-quiz", s.GenerateHandler.GenerateQuiz)
	s.Router.HandleFunc("POST /api/tutor", s.TutorHandler.Chat)

	// background jobs
	s.Router.HandleFunc("GET /api/jobs/{jobID}", s.JobHandler.Get)

	// course stuff
	s.Router.HandleFunc("GET /api/courses", s.CourseHandler.List)
	s.Router.HandleFunc("POST /api/courses", s.CourseHandler.Create)
	s.Router.HandleFunc("GET /api/courses/{courseID}", s.CourseHandler.Get)
	s.Router.HandleFunc("DELETE /api/courses/{courseID}", s.CourseHandler.Delete)
	s.Router.HandleFunc("GET /api/courses/{courseID}/chapters", s.CourseHandler.Chapters)
	s.Router.HandleFunc("POST /api/courses/{courseID}/generate-content", s.CourseHandler.GenerateContent)
	s.Router.HandleFunc("GET /api/courses/{courseID}/content/{contentID}", s.CourseHandler.GetContent)
	s.Router.HandleFunc("PUT /api/courses/{courseID}/edit", s.CourseHandler.Edit)
	s.Router.HandleFunc("POST /api/courses/{courseID}/publish", s.CourseHandler.Publish)
	s.Router.HandleFunc("GET /api/courses/{courseID}/test-path", s.CourseHandler.TestPath)

	// profile management
	s.Router.HandleFunc("GET /api/profiles", s.ProfileHandler.List)
	s.Router.HandleFunc("POST /api/profiles", s.ProfileHandler.Create)
	s.Router.HandleFunc("PUT /api/profiles/{profileID}", s.ProfileHandler.Update)
	s.Router.HandleFunc("DELETE /api/profiles/{profileID}", s.ProfileHandler.Delete)
	s.Router.HandleFunc("POST /api/profiles/{profileID}/select", s.ProfileHandler.SelectProfile)

	// gamification
	s.Router.HandleFunc("GET /api/gamification/level", s.GamificationHandler.GetLevel)
	s.Router.HandleFunc("POST /api/gamification/xp", s.GamificationHandler.AwardXP)
	s.Router.HandleFunc("GET /api/gamification/achievements", s.GamificationHandler.GetAchievements)
	s.Router.HandleFunc("GET /api/gamification/leaderboard", s.GamificationHandler.Leaderboard)

	// admin endpoints
	s.Router.HandleFunc("POST /api/admin/factory-reset", s.AdminHandler.FactoryReset)
	s.Router.HandleFunc("GET /api/admin/stats", s.AdminHandler.GetStats)
}

// ServeHTTP implements the http.Handler interface
// This allows the server to be used directly with http.ListenAndServe
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Delegate to the router
	s.Router.ServeHTTP(w, r)
}

// HelloHandler is a simple handler for the base API endpoint
// This is kept at the server level as it doesn't require business logic
func (s *Server) HelloHandler(w http.ResponseWriter, r *http.Request) {
	type responseData struct {
		Message string `json:"message"`
	}

	response := responseData{Message: "SkillForge API is up"}
	jsonResponse, _ := json.Marshal(response)
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonResponse)
}
