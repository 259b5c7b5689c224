package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/studygrid/studygrid-lms/internal/activity"
	api "github.com/studygrid/studygrid-lms/internal/api/http"
	"github.com/studygrid/studygrid-lms/internal/assignment"
	"github.com/studygrid/studygrid-lms/internal/catalog"
	"github.com/studygrid/studygrid-lms/internal/config"
	"github.com/studygrid/studygrid-lms/internal/db"
	"github.com/studygrid/studygrid-lms/internal/grades"
	"github.com/studygrid/studygrid-lms/internal/logging"
	"github.com/studygrid/studygrid-lms/internal/profile"
	"github.com/studygrid/studygrid-lms/internal/quiz"
	"github.com/studygrid/studygrid-lms/internal/schedule"
	"github.com/studygrid/studygrid-lms/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New(os.Stdout, cfg.LogLevel)

	// --- DB (catalog in db mode, activity log always) ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	var provider catalog.Provider
	switch cfg.CatalogSource {
	case config.SourceMemory:
		provider = catalog.NewSeededProvider()
	default:
		sp := catalog.NewSQLProvider(dbh)
		if err := sp.Seed(ctx); err != nil {
			log.Fatalf("catalog seed failed: %v", err)
		}
		provider = sp
	}

	var blobs storage.BlobStore
	if cfg.BlobDriver == "memory" {
		blobs = storage.NewMemStore()
	} else {
		fs, err := storage.NewFSStore(cfg.BlobBasePath)
		if err != nil {
			log.Fatalf("blob store: %v", err)
		}
		blobs = fs
	}

	// --- Session state ---
	engine := quiz.NewEngine()
	ws, err := assignment.NewWorkspace(provider, blobs)
	if err != nil {
		log.Fatalf("workspace: %v", err)
	}
	prof, err := profile.NewService(provider)
	if err != nil {
		log.Fatalf("profile: %v", err)
	}
	gradeSvc := grades.NewService(provider)
	calSvc := schedule.NewService(provider)
	actLog := activity.NewLog(dbh)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Catalog
	r.Get("/courses", api.ListCoursesHandler(provider))
	r.Get("/courses/{courseID}", api.GetCourseHandler(provider))

	// Quiz attempts
	r.Post("/quizzes/{quizID}/attempts", api.StartAttemptHandler(provider, engine, logger))
	r.Post("/attempts/{attemptID}/answer", api.AnswerHandler(engine))
	r.Post("/attempts/{attemptID}/advance", api.AdvanceHandler(engine, actLog, logger))
	r.Get("/attempts/{attemptID}", api.GetAttemptHandler(engine))
	r.Delete("/attempts/{attemptID}", api.AbandonAttemptHandler(engine))

	// Assignments and the active workspace
	r.Get("/assignments", api.ListAssignmentsHandler(ws))
	r.Get("/assignments/stats", api.AssignmentStatsHandler(ws))
	r.Post("/assignments/{assignmentID}/open", api.OpenAssignmentHandler(ws))
	r.Post("/assignments/{assignmentID}/toggle", api.ToggleAssignmentHandler(ws, actLog, logger))
	r.Route("/workspace", func(wr chi.Router) {
		wr.Get("/", api.GetWorkspaceHandler(ws))
		wr.Delete("/", api.CloseWorkspaceHandler(ws))
		wr.Post("/files", api.AttachFilesHandler(ws))
		wr.Delete("/files/{fileID}", api.RemoveFileHandler(ws))
		wr.Post("/symbols", api.AppendSymbolHandler(ws))
		wr.Post("/calculate", api.CalculateHandler(ws))
		wr.Post("/submit", api.SubmitHandler(ws, actLog, logger))
		wr.Post("/hold", api.HoldHandler(ws))
	})
	r.Route("/previews", func(pr chi.Router) {
		api.MountPreviews(pr, blobs)
	})

	// Grades, calendar, profile, activity
	r.Get("/grades", api.GradesHandler(gradeSvc))
	r.Get("/calendar", api.CalendarHandler(calSvc))
	r.Get("/profile", api.GetProfileHandler(prof))
	r.Put("/profile", api.UpdateProfileHandler(prof))
	r.Put("/profile/notifications", api.NotificationsHandler(prof))
	r.Post("/profile/password", api.ChangePasswordHandler(prof))
	r.Get("/activity", api.RecentActivityHandler(actLog))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	logger.Info("listening", "addr", cfg.HTTPAddr, "catalog", string(cfg.CatalogSource), "db", cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
