package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/adarshm/jobportal/api/http/presenter"
	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/resume"
	"github.com/adarshm/jobportal/pkg/user"
)

// ProfileHandler serves account self-service: current user, profile update
// and resume upload.
type ProfileHandler struct {
	users     user.Repository
	profile   user.UseCase
	resumes   resume.UseCase
	uploadDir string
}

func NewProfileHandler(users user.Repository, profile user.UseCase, resumes resume.UseCase, uploadDir string) *ProfileHandler {
	return &ProfileHandler{users: users, profile: profile, resumes: resumes, uploadDir: uploadDir}
}

// Me returns the authenticated account.
// @Summary Current user
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /profile/me [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	u, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, u)
}

type updateProfileRequest struct {
	Phone      string   `json:"phone"`
	Location   string   `json:"location"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
}

// UpdateProfile updates the self-service profile fields.
// @Summary Update profile
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body updateProfileRequest true "profile fields"
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	u, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	updated, err := h.profile.UpdateProfile(c.Context(), u.ID, user.ProfileUpdate{
		Phone:      req.Phone,
		Location:   req.Location,
		Experience: req.Experience,
		Skills:     req.Skills,
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
	}
	return presenter.JSON(c, http.StatusOK, updated)
}

// UploadResume accepts a resume file, extracts skills and stores them on the
// profile.
// @Summary Upload resume
// @Tags    profile
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "resume file (pdf, docx or txt)"
// @Security BearerAuth
// @Success 200 {object} resume.UploadResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /profile/resume [post]
func (h *ProfileHandler) UploadResume(c *fiber.Ctx) error {
	u, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	fh, err := c.FormFile("resume")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "resume file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "could not read resume file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "could not read resume file")
	}

	result, err := h.resumes.Upload(c.Context(), u, fh.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrRoleNotPermitted):
			return presenter.Error(c, http.StatusForbidden, "only jobseekers can upload a resume")
		case errors.Is(err, resume.ErrUnsupportedFormat):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to process resume")
		}
	}

	// Keeping the original file is best effort; the extracted skills are the
	// part that matters.
	if h.uploadDir != "" {
		if mkErr := os.MkdirAll(h.uploadDir, 0o755); mkErr == nil {
			_ = c.SaveFile(fh, filepath.Join(h.uploadDir, storedResumeName(fh.Filename)))
		}
	}

	return presenter.JSON(c, http.StatusOK, result)
}

type updateResumeSkillsRequest struct {
	ResumeSkills []string `json:"resumeSkills"`
}

// UpdateResumeSkills replaces the stored resume skills with a manually
// entered list.
// @Summary Update resume skills
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body updateResumeSkillsRequest true "resume skills"
// @Security BearerAuth
// @Success 200 {object} map[string][]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /profile/resume-skills [put]
func (h *ProfileHandler) UpdateResumeSkills(c *fiber.Ctx) error {
	u, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	var req updateResumeSkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	updated, err := h.resumes.UpdateSkills(c.Context(), u, req.ResumeSkills)
	if err != nil {
		if errors.Is(err, access.ErrRoleNotPermitted) {
			return presenter.Error(c, http.StatusForbidden, "only jobseekers have resume skills")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update resume skills")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"resumeSkills": updated})
}

// storedResumeName builds the on-disk name for an uploaded resume: a fresh
// UUID plus the extension of the client-supplied name. The client name
// itself never reaches the filesystem, so it cannot point outside the
// upload directory.
func storedResumeName(clientName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(clientName)))
	return uuid.New().String() + ext
}
