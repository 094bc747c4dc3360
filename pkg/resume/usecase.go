package resume

import (
	"context"

	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/skills"
	"github.com/adarshm/jobportal/pkg/user"
)

// UploadResult reports what was stored for the candidate.
type UploadResult struct {
	Filename string   `json:"filename"`
	Skills   []string `json:"skills"`
}

// UseCase handles resume uploads: extract text, match it against the
// vocabulary and persist the resulting skill set on the candidate profile.
type UseCase interface {
	Upload(ctx context.Context, actor user.User, filename string, data []byte) (UploadResult, error)
	// UpdateSkills replaces the stored resume skills with a manually
	// entered list, canonicalized.
	UpdateSkills(ctx context.Context, actor user.User, list []string) ([]string, error)
}

type service struct {
	users user.Repository
	vocab skills.Vocabulary
}

// NewService returns the default UseCase implementation. vocab is read-only
// and shared; it must not be mutated after construction.
func NewService(users user.Repository, vocab skills.Vocabulary) UseCase {
	return &service{users: users, vocab: vocab}
}

func (s *service) Upload(ctx context.Context, actor user.User, filename string, data []byte) (UploadResult, error) {
	if err := access.CanApply(actor); err != nil {
		return UploadResult{}, err
	}
	text, err := ParseText(filename, data)
	if err != nil {
		return UploadResult{}, err
	}
	extracted := skills.Extract(text, s.vocab)
	if err := s.users.UpdateResume(ctx, actor.ID, filename, extracted); err != nil {
		return UploadResult{}, err
	}
	return UploadResult{Filename: filename, Skills: extracted}, nil
}

// UpdateSkills lets a jobseeker edit the resume skill list directly, without
// re-uploading a document. Entries are canonicalized and deduplicated; the
// stored resume filename is left untouched.
func (s *service) UpdateSkills(ctx context.Context, actor user.User, list []string) ([]string, error) {
	if err := access.CanApply(actor); err != nil {
		return nil, err
	}
	canonical := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, sk := range list {
		n := skills.Normalize(sk)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		canonical = append(canonical, n)
	}
	if err := s.users.UpdateResume(ctx, actor.ID, actor.ResumeFile, canonical); err != nil {
		return nil, err
	}
	return canonical, nil
}
