package handler

import (
	"github.com/gofiber/fiber/v2"

	"tutorapi/internal/http/middleware"
	"tutorapi/internal/service"
)

// Version is reported by GET /.
const Version = "2.0.0"

// Deps are the services behind the HTTP routes.
type Deps struct {
	DB         Pinger
	Documents  service.DocumentService
	Processing service.ProcessingService
	Reviews    service.ReviewService
	Study      service.StudyService
	Folders    service.FolderService
	Auth       service.AuthService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Folders, exports and /users/me require a bearer token.
func RegisterRoutes(app *fiber.App, d Deps) {
	requireAuth := middleware.RequireAuth(d.Auth)

	app.Get("/", Root(Version))
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Post("/token", Login(d.Auth))
	app.Get("/users/me", requireAuth, CurrentUser())
	app.Get("/users/me/progress", requireAuth, Progress(d.Study))

	app.Post("/test-ai", ProbeAI(d.Study))

	docs := app.Group("/documents")
	docs.Get("/", ListDocuments(d.Documents))
	docs.Post("/", UploadDocument(d.Documents))
	docs.Get("/:id", GetDocument(d.Documents))
	docs.Delete("/:id", DeleteDocument(d.Documents))
	docs.Get("/:id/content", DocumentContent(d.Documents))
	docs.Post("/:id/process", ProcessDocument(d.Processing))
	docs.Get("/:id/concepts", DocumentConcepts(d.Study))
	docs.Get("/:id/flashcards", DocumentFlashcards(d.Reviews))
	docs.Get("/:id/study-plan", StudyPlan(d.Study))
	docs.Get("/:id/quiz", Quiz(d.Study))
	docs.Get("/:id/export/flashcards", requireAuth, ExportFlashcards(d.Study))
	docs.Get("/:id/export/summary", requireAuth, ExportSummary(d.Study))
	docs.Post("/:id/folders/:folder_id", requireAuth, AddDocumentToFolder(d.Folders))

	cards := app.Group("/flashcards")
	cards.Get("/for-review", FlashcardsForReview(d.Reviews))
	cards.Get("/:id", GetFlashcard(d.Reviews))
	cards.Post("/:id/review", ReviewFlashcard(d.Reviews))

	folders := app.Group("/folders", requireAuth)
	folders.Post("/", CreateFolder(d.Folders))
	folders.Get("/", ListFolders(d.Folders))
	folders.Delete("/:id", DeleteFolder(d.Folders))
	folders.Get("/:id/documents", FolderDocuments(d.Folders))
}
