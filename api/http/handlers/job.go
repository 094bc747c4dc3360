package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/adarshm/jobportal/api/http/presenter"
	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/job"
	"github.com/adarshm/jobportal/pkg/user"
)

type JobHandler struct {
	uc    job.UseCase
	users user.Repository
}

func NewJobHandler(uc job.UseCase, users user.Repository) *JobHandler {
	return &JobHandler{uc: uc, users: users}
}

type createJobRequest struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
}

// Create posts a new job.
// @Summary Post a job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body createJobRequest true "job payload"
// @Security BearerAuth
// @Success 201 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	created, err := h.uc.Create(c.Context(), actor, job.Job{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Skills:      req.Skills,
		Location:    req.Location,
		Salary:      req.Salary,
	})
	if err != nil {
		switch {
		case errors.Is(err, access.ErrRoleNotPermitted):
			return presenter.Error(c, http.StatusForbidden, "only recruiters can post jobs")
		case errors.Is(err, job.ErrTitleRequired):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to create job")
		}
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// List returns all jobs (public).
// @Summary List jobs
// @Tags    jobs
// @Produce json
// @Success 200 {array} job.Job
// @Router  /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	jobs, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list jobs")
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// Recommended returns jobs overlapping the jobseeker's resume skills.
// @Summary Recommended jobs
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} job.Job
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /jobs/recommended [get]
func (h *JobHandler) Recommended(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	jobs, err := h.uc.Recommended(c.Context(), actor)
	if err != nil {
		if errors.Is(err, access.ErrRoleNotPermitted) {
			return presenter.Error(c, http.StatusForbidden, "only jobseekers can get recommendations")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to build recommendations")
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// AdminList returns all jobs for administrators.
// @Summary List all jobs (admin)
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} job.Job
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/jobs [get]
func (h *JobHandler) AdminList(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	if err := access.CanAdminister(actor); err != nil {
		return presenter.Error(c, http.StatusForbidden, "access denied")
	}
	limit, offset := parseLimitOffset(c, 50)
	jobs, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list jobs")
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// AdminListByRecruiter returns one recruiter's jobs for administrators.
// @Summary List a recruiter's jobs (admin)
// @Tags    jobs
// @Produce json
// @Param   id path string true "recruiter id (UUID)"
// @Security BearerAuth
// @Success 200 {array} job.Job
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/jobs/recruiter/{id} [get]
func (h *JobHandler) AdminListByRecruiter(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	recruiterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	jobs, err := h.uc.ListByRecruiter(c.Context(), actor, recruiterID)
	if err != nil {
		if errors.Is(err, access.ErrRoleNotPermitted) {
			return presenter.Error(c, http.StatusForbidden, "access denied")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list jobs")
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// AdminDelete removes a job.
// @Summary Delete job (admin)
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Security BearerAuth
// @Success 204 "deleted"
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/jobs/{id} [delete]
func (h *JobHandler) AdminDelete(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.Delete(c.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, access.ErrRoleNotPermitted):
			return presenter.Error(c, http.StatusForbidden, "access denied")
		case errors.Is(err, job.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "job not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to delete job")
		}
	}
	return c.SendStatus(http.StatusNoContent)
}
