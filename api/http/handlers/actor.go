package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/adarshm/jobportal/pkg/user"
)

var errUnidentifiedActor = errors.New("could not identify user")

// currentUser resolves the authenticated actor from the JWT middleware
// locals and loads the fresh account record. Loading (rather than trusting
// the token's role claim) means blocks, promotions and resume updates take
// effect on the next request, not at token expiry.
func currentUser(c *fiber.Ctx, users user.Repository) (user.User, error) {
	idStr, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return user.User{}, errUnidentifiedActor
	}
	u, err := users.GetByID(c.Context(), id)
	if err != nil {
		return user.User{}, errUnidentifiedActor
	}
	return u, nil
}
