package dto

import "time"

// SessionStartDTO is the request body for starting a practice session.
// Company is optional and defaults to "General".
type SessionStartDTO struct {
	Company string `json:"company"`
}

// SessionDTO describes a practice session.
type SessionDTO struct {
	ID            string     `json:"id"`
	Company       string     `json:"company"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	Status        string     `json:"status"`
	QuestionCount int        `json:"question_count"`
}

// QuestionDTO is one catalog question shown to the user.
type QuestionDTO struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

// AnswerSubmitDTO is the request body for answering one question.
type AnswerSubmitDTO struct {
	QuestionID string `json:"question_id" binding:"required"`
	AnswerText string `json:"answer_text" binding:"required"`
}

// AnswerDTO describes one persisted answer.
type AnswerDTO struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	QuestionID   string    `json:"question_id"`
	QuestionText string    `json:"question_text"`
	AnswerText   string    `json:"answer_text"`
	Type         string    `json:"type"`
	Difficulty   string    `json:"difficulty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// FeedbackDTO is the scored evaluation for one answer.
type FeedbackDTO struct {
	ID           string    `json:"id"`
	AnswerID     string    `json:"answer_id"`
	Overall      string    `json:"overall"`
	Strengths    []string  `json:"strengths"`
	Improvements []string  `json:"improvements"`
	Score        int       `json:"score"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// AnswerWithFeedbackDTO pairs an answer with its feedback; returned on
// submission and as the report's per-question breakdown entries.
type AnswerWithFeedbackDTO struct {
	Answer   AnswerDTO   `json:"answer"`
	Feedback FeedbackDTO `json:"feedback"`
}

// InterviewReportDTO is the aggregated session report. It is recomputed on
// every request and never persisted.
type InterviewReportDTO struct {
	SessionID        string                  `json:"session_id"`
	Company          string                  `json:"company"`
	AverageScore     int                     `json:"average_score"`
	LetterGrade      string                  `json:"letter_grade"`
	ScoresByType     map[string]int          `json:"scores_by_type"`
	OverallNarrative string                  `json:"overall_narrative"`
	Breakdown        []AnswerWithFeedbackDTO `json:"breakdown"`
}
