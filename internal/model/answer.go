package model

import (
	"time"

	"gorm.io/gorm"
)

// InterviewAnswer records one submitted response. Question text, type and
// difficulty are denormalized from the catalog at submission time so reports
// never depend on the catalog contents changing later.
// At most one answer exists per (session, question) pair.
type InterviewAnswer struct {
	ID           string         `gorm:"primarykey;size:36" json:"id"`
	SessionID    string         `gorm:"not null;size:36;uniqueIndex:idx_session_question" json:"session_id"`
	QuestionID   string         `gorm:"not null;uniqueIndex:idx_session_question" json:"question_id"`
	QuestionText string         `gorm:"type:text;not null" json:"question_text"`
	AnswerText   string         `gorm:"type:text;not null" json:"answer_text"`
	Type         string         `gorm:"not null" json:"type"` // "behavioral", "technical", "system-design"
	Difficulty   string         `gorm:"not null" json:"difficulty"`
	SubmittedAt  time.Time      `gorm:"not null" json:"submitted_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
