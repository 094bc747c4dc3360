package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/adarshm/jobportal/api/http/presenter"
	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/application"
	"github.com/adarshm/jobportal/pkg/job"
	"github.com/adarshm/jobportal/pkg/user"
)

type ApplicationHandler struct {
	uc    application.UseCase
	users user.Repository
}

func NewApplicationHandler(uc application.UseCase, users user.Repository) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, users: users}
}

// Apply creates an application for a job.
// @Summary Apply for a job
// @Tags    applications
// @Produce json
// @Param   jobId path string true "job id (UUID)"
// @Security BearerAuth
// @Success 201 {object} application.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /applications/apply/{jobId} [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	a, err := h.uc.Apply(c.Context(), actor, jobID)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrRoleNotPermitted):
			return presenter.Error(c, http.StatusForbidden, "only jobseekers can apply")
		case errors.Is(err, application.ErrDuplicateApplication):
			return presenter.Error(c, http.StatusConflict, "you already applied for this job")
		case errors.Is(err, job.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "job not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to apply")
		}
	}
	return presenter.JSON(c, http.StatusCreated, a)
}

// ListForRecruiter returns applications to the recruiter's own jobs.
// @Summary Recruiter inbox
// @Tags    applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} application.RecruiterItem
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /applications/recruiter [get]
func (h *ApplicationHandler) ListForRecruiter(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	items, err := h.uc.ListForRecruiter(c.Context(), actor)
	if err != nil {
		if errors.Is(err, access.ErrRoleNotPermitted) {
			return presenter.Error(c, http.StatusForbidden, "only recruiters can view applications")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
	}
	if items == nil {
		items = []application.RecruiterItem{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus moves an application to a terminal status.
// @Summary Update application status
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   id path string true "application id (UUID)"
// @Param   input body setStatusRequest true "new status (shortlisted or rejected)"
// @Security BearerAuth
// @Success 200 {object} application.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/status/{id} [put]
func (h *ApplicationHandler) SetStatus(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req setStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	a, err := h.uc.SetStatus(c.Context(), actor, id, application.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			return presenter.Error(c, http.StatusBadRequest, "status must be shortlisted or rejected")
		case errors.Is(err, application.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "application not found")
		case errors.Is(err, access.ErrRoleNotPermitted), errors.Is(err, access.ErrOwnershipMismatch):
			return presenter.Error(c, http.StatusForbidden, "only the job's recruiter can update status")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update status")
		}
	}
	return presenter.JSON(c, http.StatusOK, a)
}

// ListForCandidate returns the jobseeker's own applications.
// @Summary My applications
// @Tags    applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} application.CandidateItem
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /applications/my [get]
func (h *ApplicationHandler) ListForCandidate(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	items, err := h.uc.ListForCandidate(c.Context(), actor)
	if err != nil {
		if errors.Is(err, access.ErrRoleNotPermitted) {
			return presenter.Error(c, http.StatusForbidden, "only jobseekers can view this")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
	}
	if items == nil {
		items = []application.CandidateItem{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}
