package service

import (
	"context"

	"github.com/ndthang/interntrack/internal/model"
)

// AtsAnalyzer scores a resume against ATS criteria. The production
// implementation would download and parse the file; the shipped
// implementation returns a canned report, standing in for the real service
// behind the same interface.
type AtsAnalyzer interface {
	Analyze(ctx context.Context, downloadURL string) (*model.AtsAnalysis, error)
}

type mockAtsAnalyzer struct{}

func NewMockAtsAnalyzer() AtsAnalyzer {
	return &mockAtsAnalyzer{}
}

func (a *mockAtsAnalyzer) Analyze(_ context.Context, _ string) (*model.AtsAnalysis, error) {
	return &model.AtsAnalysis{
		OverallScore: 72,
		Categories: map[string]int{
			"keywords":    68,
			"formatting":  75,
			"content":     80,
			"relevance":   65,
			"readability": 72,
		},
		Strengths: []string{
			"Good use of action verbs in experience descriptions",
			"Clear education section with relevant details",
			"Appropriate length (1-2 pages)",
			"Consistent formatting of dates and headings",
		},
		Improvements: []model.AtsImprovement{
			{
				Issue:      "Insufficient industry-specific keywords",
				Suggestion: "Add more technical skills and industry terminology relevant to your target roles. Research job descriptions to identify common keywords.",
				Severity:   "high",
			},
			{
				Issue:      "Weak quantifiable achievements",
				Suggestion: "Include more metrics and specific results in your experience bullets (e.g., 'Increased efficiency by 25%' instead of 'Improved efficiency').",
				Severity:   "high",
			},
			{
				Issue:      "Generic summary/objective statement",
				Suggestion: "Customize your summary to highlight specific skills and experiences relevant to each position you apply for.",
				Severity:   "medium",
			},
			{
				Issue:      "Inconsistent bullet point structure",
				Suggestion: "Use the same grammatical structure for all bullet points (e.g., start all with action verbs in the same tense).",
				Severity:   "medium",
			},
			{
				Issue:      "Missing LinkedIn profile and GitHub links",
				Suggestion: "Include links to your professional profiles to provide additional context to recruiters.",
				Severity:   "low",
			},
		},
		KeywordAnalysis: model.AtsKeywordSummary{
			Missing:     []string{"cloud computing", "agile methodology", "cross-functional", "data analysis", "project management"},
			Present:     []string{"JavaScript", "React", "teamwork", "communication", "problem-solving"},
			Recommended: []string{"API integration", "CI/CD", "unit testing", "database management", "UX/UI design"},
		},
		AtsCompatibility: model.AtsCompatibility{
			Score: 70,
			Issues: []string{
				"Complex formatting may not parse correctly in some ATS systems",
				"Tables or columns could cause information loss",
				"Custom fonts might not render properly",
			},
		},
	}, nil
}
