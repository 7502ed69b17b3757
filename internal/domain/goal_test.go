package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalWordCount(t *testing.T) {
	tests := map[string]struct {
		goalText string
		want     int
	}{
		"empty":                {goalText: "", want: 0},
		"whitespace-only":      {goalText: "  \t \n ", want: 0},
		"single-word":          {goalText: "save", want: 1},
		"simple-goal":          {goalText: "save more money", want: 3},
		"extra-whitespace":     {goalText: "  save   more \t money  ", want: 3},
		"punctuation-attaches": {goalText: "save $5,000 by December!", want: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, GoalWordCount(tt.goalText))
		})
	}
}

func TestEmbeddingVectorIsZero(t *testing.T) {
	assert.True(t, EmbeddingVector{}.IsZero())
	assert.True(t, EmbeddingVector{Vector: []float64{0, 0, 0}}.IsZero())
	assert.False(t, EmbeddingVector{Vector: []float64{0, 0.1, 0}}.IsZero())
	assert.False(t, EmbeddingVector{Vector: []float64{-0.3}}.IsZero())
}
