package service

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/ndthang/interntrack/config"
	"github.com/ndthang/interntrack/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorerMidpointByLength(t *testing.T) {
	scorer := NewScorerWithSource(nil)

	cases := []struct {
		name   string
		length int
		want   int
	}{
		{"very short", 20, 50},
		{"just under first bound", 49, 50},
		{"at first bound", 50, 67},
		{"medium", 100, 67},
		{"at second bound", 150, 82},
		{"long", 200, 82},
		{"at third bound", 300, 90},
		{"very long", 400, 90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := scorer.Score(catalog.TypeSystemDesign, strings.Repeat("a", tc.length))
			assert.Equal(t, tc.want, result.Score)
		})
	}
}

func TestScorerKeywordBonus(t *testing.T) {
	scorer := NewScorerWithSource(nil)

	technical := scorer.Score(catalog.TypeTechnical, strings.Repeat("a", 396)+"code")
	assert.Equal(t, 95, technical.Score)

	behavioral := scorer.Score(catalog.TypeBehavioral, strings.Repeat("a", 393)+"example")
	assert.Equal(t, 95, behavioral.Score)

	// Keywords only count for the matching question type.
	crossed := scorer.Score(catalog.TypeSystemDesign, strings.Repeat("a", 396)+"code")
	assert.Equal(t, 90, crossed.Score)

	mismatched := scorer.Score(catalog.TypeTechnical, strings.Repeat("a", 393)+"example")
	assert.Equal(t, 90, mismatched.Score)
}

func TestScorerSeededStaysInBracket(t *testing.T) {
	scorer := NewScorerWithSource(rand.New(rand.NewSource(42)))
	answer := strings.Repeat("a", 396) + "code"

	// Longest bracket plus the keyword bonus: always within [90, 100].
	for i := 0; i < 100; i++ {
		result := scorer.Score(catalog.TypeTechnical, answer)
		assert.GreaterOrEqual(t, result.Score, 90)
		assert.LessOrEqual(t, result.Score, 100)
	}
}

func TestScorerScoreWithinBounds(t *testing.T) {
	scorer := NewScorerWithSource(rand.New(rand.NewSource(7)))

	for _, q := range catalog.Questions() {
		for _, length := range []int{1, 49, 50, 149, 150, 299, 300, 1000} {
			result := scorer.Score(q.Type, strings.Repeat("x", length))
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
		}
	}
}

func TestScorerZeroSeedIsDeterministic(t *testing.T) {
	scorer := NewScorerService(&config.Config{})
	answer := strings.Repeat("a", 120)

	first := scorer.Score(catalog.TypeBehavioral, answer)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Score, scorer.Score(catalog.TypeBehavioral, answer).Score)
	}
}

func TestScorerFeedbackPopulated(t *testing.T) {
	scorer := NewScorerWithSource(nil)

	result := scorer.Score(catalog.TypeBehavioral, "short")
	require.NotEmpty(t, result.Overall)
	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Improvements)
}

func TestFeedbackTierSelection(t *testing.T) {
	cases := []struct {
		score   int
		wantMin int
	}{
		{100, 90},
		{90, 90},
		{89, 80},
		{80, 80},
		{79, 70},
		{70, 70},
		{69, 60},
		{60, 60},
		{59, 0},
		{0, 0},
	}
	for _, tc := range cases {
		tier := feedbackTierFor(tc.score)
		assert.Equal(t, tc.wantMin, tier.min, "score %d", tc.score)
	}
}
