package matching

import (
	"iter"

	"github.com/adarshm/jobportal/pkg/skills"
)

// Recommend lazily filters jobs down to those sharing at least one skill
// with the candidate (case-insensitive). Relative order is preserved and the
// returned sequence can be iterated any number of times; filtering is
// recomputed from the inputs on each pass.
func Recommend[T any](candidateSkills []string, jobs iter.Seq[T], requiredSkills func(T) []string) iter.Seq[T] {
	held := skills.NewSet(candidateSkills)
	return func(yield func(T) bool) {
		if len(held) == 0 {
			return
		}
		for j := range jobs {
			if !held.Intersects(requiredSkills(j)) {
				continue
			}
			if !yield(j) {
				return
			}
		}
	}
}
