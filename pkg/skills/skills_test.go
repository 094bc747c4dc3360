package skills

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Go", "go"},
		{"  Python  ", "python"},
		{"REST API", "rest api"},
		{"", ""},
		{"   ", ""},
		{"node.js", "node.js"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"Go", "  REST API ", "c++", "ПаЙтОн", ""} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, twice, once)
		}
	}
}

func TestNewSet(t *testing.T) {
	s := NewSet([]string{"Go", "go", "  SQL ", ""})
	if len(s) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(s))
	}
	if !s.Contains("GO") || !s.Contains("sql") {
		t.Error("expected case-insensitive membership for go and sql")
	}
	if s.Contains("python") {
		t.Error("unexpected member python")
	}
}

func TestSetIntersects(t *testing.T) {
	s := NewSet([]string{"python", "sql"})
	if !s.Intersects([]string{"Java", "SQL"}) {
		t.Error("expected intersection on sql")
	}
	if s.Intersects([]string{"java", "react"}) {
		t.Error("unexpected intersection")
	}
	if s.Intersects(nil) {
		t.Error("empty slice must not intersect")
	}
}

func TestSetIntersectionCount(t *testing.T) {
	s := NewSet([]string{"python", "sql", "docker"})
	if got := s.IntersectionCount(NewSet([]string{"SQL", "Python", "java"})); got != 2 {
		t.Errorf("IntersectionCount = %d, want 2", got)
	}
	if got := s.IntersectionCount(NewSet(nil)); got != 0 {
		t.Errorf("IntersectionCount vs empty = %d, want 0", got)
	}
	// symmetric regardless of which set is larger
	big := NewSet([]string{"a", "b", "c", "d", "python"})
	if got := s.IntersectionCount(big); got != big.IntersectionCount(s) {
		t.Error("IntersectionCount is not symmetric")
	}
}

func TestExtract(t *testing.T) {
	vocab := Vocabulary{"java", "javascript", "python", "sql", "rest api"}
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic containment",
			text: "Senior Python developer, strong SQL.",
			want: []string{"python", "sql"},
		},
		{
			name: "substring matches both java and javascript",
			text: "5 years of JavaScript",
			want: []string{"java", "javascript"},
		},
		{
			name: "multi-word entry",
			text: "designed a REST API for billing",
			want: []string{"rest api"},
		},
		{
			name: "no matches",
			text: "professional chef",
			want: []string{},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, vocab)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Extract() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestExtractSubsetOfVocabulary(t *testing.T) {
	vocab := Default()
	text := "java python go docker kubernetes blockchain quantum"
	inVocab := NewSet(vocab)
	for _, skill := range Extract(text, vocab) {
		if !inVocab.Contains(skill) {
			t.Errorf("extracted skill %q not in vocabulary", skill)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	vocab := Default()
	text := "go, python, sql, react and docker on aws"
	first := Extract(text, vocab)
	for i := 0; i < 5; i++ {
		again := Extract(text, vocab)
		if len(again) != len(first) {
			t.Fatal("non-deterministic extraction")
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatal("non-deterministic extraction order")
			}
		}
	}
}

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	content := "Go\n\n  SQL  \ngo\nReact\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	vocab, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary: %v", err)
	}
	want := []string{"go", "sql", "react"}
	if len(vocab) != len(want) {
		t.Fatalf("got %v, want %v", vocab, want)
	}
	for i := range want {
		if vocab[i] != want[i] {
			t.Fatalf("got %v, want %v", vocab, want)
		}
	}
}
