package skills

import "strings"

// Extract returns the subset of vocab present in documentText, in vocabulary
// order. The whole text is lower-cased once and each entry is matched by
// plain substring containment.
//
// Known precision limitation: there is no word-boundary check, so an entry
// that happens to be a substring of an unrelated word still matches
// ("java" matches inside "javascript"). Kept as-is: tokenized matching
// would change match scores for existing data.
func Extract(documentText string, vocab Vocabulary) []string {
	text := strings.ToLower(documentText)
	found := make([]string, 0)
	for _, skill := range vocab {
		if skill == "" {
			continue
		}
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}
