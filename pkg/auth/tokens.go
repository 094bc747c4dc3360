package auth

import (
	"context"

	"github.com/adarshm/jobportal/pkg/user"
)

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, u user.User) (string, error)
}
