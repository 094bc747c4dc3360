// Package health composes dependency checks behind a single readiness probe.
package health

import (
	"context"
	"errors"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready runs every checker and reports all failures, not just the first,
// so a probe response names each unhealthy dependency.
func (s *service) Ready(ctx context.Context) error {
	var errs []error
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
