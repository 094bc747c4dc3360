package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/adarshm/jobportal/api/http/presenter"
	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/admin"
	"github.com/adarshm/jobportal/pkg/user"
)

type AdminHandler struct {
	uc    admin.UseCase
	users user.Repository
}

func NewAdminHandler(uc admin.UseCase, users user.Repository) *AdminHandler {
	return &AdminHandler{uc: uc, users: users}
}

// ListUsers returns all accounts.
// @Summary List users
// @Tags    admin
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} user.User
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	limit, offset := parseLimitOffset(c, 50)
	users, err := h.uc.ListUsers(c.Context(), actor, limit, offset)
	if err != nil {
		if errors.Is(err, access.ErrRoleNotPermitted) {
			return presenter.Error(c, http.StatusForbidden, "admin access required")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list users")
	}
	if users == nil {
		users = []user.User{}
	}
	return presenter.JSON(c, http.StatusOK, users)
}

// GetUser returns a single account.
// @Summary Get user
// @Tags    admin
// @Produce json
// @Param   id path string true "user id (UUID)"
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	u, err := h.uc.GetUser(c.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrRoleNotPermitted):
			return presenter.Error(c, http.StatusForbidden, "admin access required")
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to get user")
		}
	}
	return presenter.JSON(c, http.StatusOK, u)
}

// DeleteUser removes an account.
// @Summary Delete user
// @Tags    admin
// @Produce json
// @Param   id path string true "user id (UUID)"
// @Security BearerAuth
// @Success 204 "deleted"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.DeleteUser(c.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, access.ErrRoleNotPermitted):
			return presenter.Error(c, http.StatusForbidden, "admin access required")
		case errors.Is(err, access.ErrLastAdminProtected):
			return presenter.Error(c, http.StatusBadRequest, "cannot delete the last admin")
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to delete user")
		}
	}
	return c.SendStatus(http.StatusNoContent)
}

// SelfDelete removes the calling admin's own account.
// @Summary Delete own admin account
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Success 204 "deleted"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/self [delete]
func (h *AdminHandler) SelfDelete(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	if err := h.uc.SelfDelete(c.Context(), actor); err != nil {
		switch {
		case errors.Is(err, access.ErrRoleNotPermitted):
			return presenter.Error(c, http.StatusForbidden, "admin access required")
		case errors.Is(err, access.ErrLastAdminProtected):
			return presenter.Error(c, http.StatusBadRequest, "cannot delete the last admin")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to delete account")
		}
	}
	return c.SendStatus(http.StatusNoContent)
}

type blockResponse struct {
	ID      uuid.UUID `json:"id"`
	Blocked bool      `json:"blocked"`
}

// ToggleBlock flips the target's blocked flag.
// @Summary Toggle user block
// @Tags    admin
// @Produce json
// @Param   id path string true "user id (UUID)"
// @Security BearerAuth
// @Success 200 {object} blockResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/users/{id}/block [put]
func (h *AdminHandler) ToggleBlock(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	blocked, err := h.uc.ToggleBlock(c.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrRoleNotPermitted):
			return presenter.Error(c, http.StatusForbidden, "admin access required")
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to toggle block")
		}
	}
	return presenter.JSON(c, http.StatusOK, blockResponse{ID: id, Blocked: blocked})
}

// Promote raises a recruiter to admin.
// @Summary Promote recruiter to admin
// @Tags    admin
// @Produce json
// @Param   id path string true "user id (UUID)"
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/users/{id}/promote [put]
func (h *AdminHandler) Promote(c *fiber.Ctx) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	promoted, err := h.uc.Promote(c.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrRoleNotPermitted):
			return presenter.Error(c, http.StatusForbidden, "admin access required")
		case errors.Is(err, access.ErrInvalidPromotionTarget):
			return presenter.Error(c, http.StatusBadRequest, "only recruiters can be promoted")
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to promote user")
		}
	}
	return presenter.JSON(c, http.StatusOK, promoted)
}
