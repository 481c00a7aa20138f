package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMostUsedLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		repos     []Repository
		want      string
		wantFound bool
	}{
		{
			name:      "nil list",
			repos:     nil,
			wantFound: false,
		},
		{
			name: "no languages",
			repos: []Repository{
				{Name: "a"},
				{Name: "b", Stars: 4},
			},
			wantFound: false,
		},
		{
			name: "single language",
			repos: []Repository{
				{Name: "a", Language: "Rust"},
			},
			want:      "Rust",
			wantFound: true,
		},
		{
			name: "clear winner",
			repos: []Repository{
				{Name: "a", Language: "Python"},
				{Name: "b", Language: "Go"},
				{Name: "c", Language: "Go"},
				{Name: "d"},
			},
			want:      "Go",
			wantFound: true,
		},
		{
			name: "tie keeps first encountered",
			repos: []Repository{
				{Name: "a", Language: "Python"},
				{Name: "b", Language: "Go"},
				{Name: "c", Language: "Go"},
				{Name: "d", Language: "Python"},
			},
			want:      "Python",
			wantFound: true,
		},
		{
			name: "later language overtakes",
			repos: []Repository{
				{Name: "a", Language: "C"},
				{Name: "b", Language: "Zig"},
				{Name: "c", Language: "Zig"},
			},
			want:      "Zig",
			wantFound: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, found := MostUsedLanguage(tt.repos)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalStars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TotalStars(nil))
	assert.Equal(t, 0, TotalStars([]Repository{{Name: "a"}, {Name: "b"}}))
	assert.Equal(t, 112, TotalStars([]Repository{{Stars: 100}, {Stars: 0}, {Stars: 12}}))
}

func TestAggregateAlice(t *testing.T) {
	repos := []Repository{
		{Name: "one", Language: "Go", Stars: 3},
		{Name: "two", Language: "Go", Stars: 1},
		{Name: "three", Stars: 5},
	}

	lang, ok := MostUsedLanguage(repos)
	assert.True(t, ok)
	assert.Equal(t, "Go", lang)
	assert.Equal(t, 9, TotalStars(repos))
}
