package service

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/ndthang/interntrack/config"
	"github.com/ndthang/interntrack/internal/catalog"
)

// ScoreResult is a scored evaluation for a single answer, before ids and
// timestamps are attached by the caller.
type ScoreResult struct {
	Overall      string
	Strengths    []string
	Improvements []string
	Score        int
}

// ScorerService evaluates an answer heuristically. It is pure: persistence is
// the caller's responsibility.
type ScorerService interface {
	Score(questionType, answerText string) ScoreResult
}

type scorerService struct {
	mu  sync.Mutex
	rng *rand.Rand // nil selects the deterministic bracket midpoint
}

// NewScorerService builds the scorer from config. A non-zero SCORER_SEED
// draws a uniform offset within each length bracket; seed 0 keeps scoring
// fully reproducible by using the bracket midpoint.
func NewScorerService(cfg *config.Config) ScorerService {
	if cfg.Scorer.Seed != 0 {
		return &scorerService{rng: rand.New(rand.NewSource(cfg.Scorer.Seed))}
	}
	return &scorerService{}
}

// NewScorerWithSource builds a scorer around an explicit random source.
// Pass nil for deterministic midpoint scoring.
func NewScorerWithSource(rng *rand.Rand) ScorerService {
	return &scorerService{rng: rng}
}

// Length brackets for the base score: [base, base+span).
var brackets = []struct {
	maxLen int // exclusive upper bound on answer length
	base   int
	span   int
}{
	{50, 40, 20},
	{150, 60, 15},
	{300, 75, 15},
	{0, 85, 10}, // maxLen 0 = no upper bound
}

func (s *scorerService) Score(questionType, answerText string) ScoreResult {
	length := len(answerText)

	var base, span int
	for _, b := range brackets {
		base, span = b.base, b.span
		if b.maxLen == 0 || length < b.maxLen {
			break
		}
	}

	score := base + s.offset(span)

	// Keyword bonus per question type.
	switch questionType {
	case catalog.TypeTechnical:
		if strings.Contains(answerText, "code") {
			score += 5
		}
	case catalog.TypeBehavioral:
		if strings.Contains(answerText, "example") {
			score += 5
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	tier := feedbackTierFor(score)
	return ScoreResult{
		Overall:      tier.overall,
		Strengths:    append([]string(nil), tier.strengths...),
		Improvements: append([]string(nil), tier.improvements...),
		Score:        score,
	}
}

func (s *scorerService) offset(span int) int {
	if s.rng == nil {
		return span / 2
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(span)
}

type feedbackTier struct {
	min          int
	overall      string
	strengths    []string
	improvements []string
}

var feedbackTiers = []feedbackTier{
	{
		min:     90,
		overall: "Excellent answer. You covered the question thoroughly and backed your points with concrete detail. This response would impress most interviewers.",
		strengths: []string{
			"Thorough, well-structured response",
			"Strong use of concrete detail",
			"Confident and clear communication",
		},
		improvements: []string{
			"Keep practicing to maintain this level",
			"Trim any remaining filler phrases",
		},
	},
	{
		min:     80,
		overall: "Very good answer with solid structure and relevant detail. A little more specificity would make it stand out.",
		strengths: []string{
			"Good problem-solving approach",
			"Clear communication of technical concepts",
			"Demonstrated teamwork skills",
		},
		improvements: []string{
			"Include specific metrics or outcomes",
			"Tighten the conclusion of your answer",
		},
	},
	{
		min:     70,
		overall: "Your answer demonstrates good problem-solving skills, but could be more concise. Try to structure your response with a clear situation, task, action, and result (STAR method).",
		strengths: []string{
			"Relevant points that address the question",
			"Reasonable overall structure",
		},
		improvements: []string{
			"Be more concise in your explanation",
			"Use the STAR method to structure your response",
			"Include specific metrics or outcomes",
		},
	},
	{
		min:     60,
		overall: "A satisfactory answer, but it stays at a high level. Interviewers will want more depth and specifics.",
		strengths: []string{
			"Addresses the core of the question",
		},
		improvements: []string{
			"Expand your answer with a concrete example",
			"Explain the reasoning behind your decisions",
			"Practice giving complete, structured responses",
		},
	},
	{
		min:     0,
		overall: "This answer needs significant work. It is too brief to show an interviewer how you think.",
		strengths: []string{
			"You attempted the question",
		},
		improvements: []string{
			"Give a much fuller answer with background, actions, and results",
			"Use the STAR method to structure your response",
			"Rehearse common questions out loud before your next session",
		},
	},
}

func feedbackTierFor(score int) feedbackTier {
	for _, t := range feedbackTiers {
		if score >= t.min {
			return t
		}
	}
	return feedbackTiers[len(feedbackTiers)-1]
}
