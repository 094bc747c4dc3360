// Package matching computes deterministic candidate/job skill overlap.
package matching

import (
	"math"

	"github.com/adarshm/jobportal/pkg/skills"
)

// Score returns the percentage (0..100) of required skills present in held,
// compared case-insensitively, rounded half-up. An empty required set scores
// 0 by definition.
func Score(required, held []string) int {
	req := skills.NewSet(required)
	if len(req) == 0 {
		return 0
	}
	matched := req.IntersectionCount(skills.NewSet(held))
	return int(math.Round(float64(matched) / float64(len(req)) * 100))
}
