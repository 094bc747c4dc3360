package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adarshm/jobportal/api/http/handlers"
)

// Handlers bundles everything Register needs to wire the route tree.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Profile     *handlers.ProfileHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Admin       *handlers.AdminHandler
	Health      *handlers.HealthHandler
}

// Register wires all HTTP routes onto given Fiber app. authGuard is applied
// to every route that requires a valid token.
func Register(app *fiber.App, h Handlers, authGuard fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	// Job board is public for browsing; everything else needs a token.
	jobs := v1.Group("/jobs")
	jobs.Get("/", h.Job.List)
	jobs.Post("/", authGuard, h.Job.Create)
	jobs.Get("/recommended", authGuard, h.Job.Recommended)

	profile := v1.Group("/profile", authGuard)
	profile.Get("/me", h.Profile.Me)
	profile.Put("/", h.Profile.UpdateProfile)
	profile.Post("/resume", h.Profile.UploadResume)
	profile.Put("/resume-skills", h.Profile.UpdateResumeSkills)

	apps := v1.Group("/applications", authGuard)
	apps.Post("/apply/:jobId", h.Application.Apply)
	apps.Get("/recruiter", h.Application.ListForRecruiter)
	apps.Put("/status/:id", h.Application.SetStatus)
	apps.Get("/my", h.Application.ListForCandidate)

	adm := v1.Group("/admin", authGuard)
	adm.Get("/users", h.Admin.ListUsers)
	adm.Get("/users/:id", h.Admin.GetUser)
	adm.Delete("/users/:id", h.Admin.DeleteUser)
	adm.Put("/users/:id/block", h.Admin.ToggleBlock)
	adm.Put("/users/:id/promote", h.Admin.Promote)
	adm.Delete("/self", h.Admin.SelfDelete)
	adm.Get("/jobs", h.Job.AdminList)
	adm.Get("/jobs/recruiter/:id", h.Job.AdminListByRecruiter)
	adm.Delete("/jobs/:id", h.Job.AdminDelete)
}
