package skills

import (
	"bufio"
	"os"
)

// Vocabulary is the ordered controlled list of canonical skills. It is
// loaded once at process start and shared read-only; extraction results are
// always a subset of it.
type Vocabulary []string

// defaultVocabulary mirrors the skill list the portal matches resumes
// against. Entries are already canonical (lower-case, trimmed).
var defaultVocabulary = Vocabulary{
	"java",
	"javascript",
	"typescript",
	"python",
	"go",
	"c++",
	"c#",
	"php",
	"ruby",
	"kotlin",
	"swift",
	"html",
	"css",
	"react",
	"angular",
	"vue",
	"next.js",
	"node.js",
	"express",
	"django",
	"flask",
	"spring",
	"sql",
	"mysql",
	"postgresql",
	"mongodb",
	"redis",
	"docker",
	"kubernetes",
	"aws",
	"azure",
	"gcp",
	"git",
	"linux",
	"rest api",
	"graphql",
	"machine learning",
	"deep learning",
	"data analysis",
	"pandas",
	"numpy",
	"tensorflow",
	"excel",
	"figma",
	"photoshop",
	"agile",
	"scrum",
	"communication",
	"leadership",
}

// Default returns the built-in vocabulary.
func Default() Vocabulary {
	return defaultVocabulary
}

// LoadVocabulary reads a vocabulary file (one skill per line), normalizing
// and deduplicating entries while preserving file order. Blank lines are
// skipped.
func LoadVocabulary(path string) (Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vocab Vocabulary
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		skill := Normalize(sc.Text())
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		vocab = append(vocab, skill)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return vocab, nil
}
