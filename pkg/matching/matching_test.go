package matching

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		held     []string
		want     int
	}{
		{"full match", []string{"go", "sql"}, []string{"go", "sql"}, 100},
		{"half match", []string{"go", "sql"}, []string{"go"}, 50},
		{"no match", []string{"go", "sql"}, []string{"java"}, 0},
		{"empty required", []string{}, []string{"go"}, 0},
		{"nil required", nil, []string{"go"}, 0},
		{"empty held", []string{"go"}, nil, 0},
		{"case insensitive", []string{"Go", "SQL"}, []string{"gO", "sql"}, 100},
		{"superset held", []string{"go"}, []string{"go", "sql", "react"}, 100},
		{"one of three", []string{"go", "sql", "react"}, []string{"react"}, 33},
		{"two of three rounds up", []string{"go", "sql", "react"}, []string{"go", "sql"}, 67},
		{"duplicates collapse", []string{"go", "GO", " go "}, []string{"go"}, 100},
		{"half up at even split", []string{"a", "b", "c", "d", "e", "f", "g", "h"}, []string{"a", "b", "c"}, 38},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.required, tt.held))
		})
	}
}

func TestScoreBounds(t *testing.T) {
	sets := [][]string{nil, {}, {"go"}, {"go", "sql"}, {"go", "sql", "react", "docker"}}
	for _, required := range sets {
		for _, held := range sets {
			got := Score(required, held)
			if got < 0 || got > 100 {
				t.Fatalf("Score(%v, %v) = %d out of [0,100]", required, held, got)
			}
		}
	}
}

type fakeJob struct {
	title  string
	skills []string
}

func TestRecommend(t *testing.T) {
	jobs := []fakeJob{
		{"backend", []string{"python"}},
		{"jvm", []string{"java"}},
		{"data", []string{"sql", "pandas"}},
	}
	got := slices.Collect(Recommend(
		[]string{"python", "sql"},
		slices.Values(jobs),
		func(j fakeJob) []string { return j.skills },
	))

	assert.Len(t, got, 2)
	assert.Equal(t, "backend", got[0].title)
	assert.Equal(t, "data", got[1].title)
}

func TestRecommendEmptyCandidate(t *testing.T) {
	jobs := []fakeJob{{"any", []string{"go"}}}
	got := slices.Collect(Recommend(nil, slices.Values(jobs), func(j fakeJob) []string { return j.skills }))
	assert.Empty(t, got)
}

func TestRecommendRestartable(t *testing.T) {
	jobs := []fakeJob{
		{"a", []string{"go"}},
		{"b", []string{"rust"}},
		{"c", []string{"go", "sql"}},
	}
	seq := Recommend([]string{"go"}, slices.Values(jobs), func(j fakeJob) []string { return j.skills })

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestRecommendEarlyStop(t *testing.T) {
	jobs := []fakeJob{
		{"a", []string{"go"}},
		{"b", []string{"go"}},
		{"c", []string{"go"}},
	}
	seq := Recommend([]string{"go"}, slices.Values(jobs), func(j fakeJob) []string { return j.skills })

	var seen []string
	for j := range seq {
		seen = append(seen, j.title)
		if len(seen) == 1 {
			break
		}
	}
	assert.Equal(t, []string{"a"}, seen)
}
