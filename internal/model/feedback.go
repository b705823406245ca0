package model

import (
	"time"

	"gorm.io/gorm"
)

// InterviewFeedback is the scored evaluation attached to exactly one answer.
// Score is always within [0,100].
type InterviewFeedback struct {
	ID           string         `gorm:"primarykey;size:36" json:"id"`
	AnswerID     string         `gorm:"not null;size:36;uniqueIndex" json:"answer_id"`
	SessionID    string         `gorm:"not null;size:36;index" json:"session_id"`
	Overall      string         `gorm:"type:text;not null" json:"overall"`
	Strengths    StringList     `gorm:"type:text" json:"strengths"`
	Improvements StringList     `gorm:"type:text" json:"improvements"`
	Score        int            `gorm:"not null" json:"score"`
	GeneratedAt  time.Time      `gorm:"not null" json:"generated_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
