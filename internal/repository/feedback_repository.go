package repository

import (
	"context"

	"github.com/ndthang/interntrack/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	FindAllBySession(ctx context.Context, sessionID string) ([]model.InterviewFeedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) FindAllBySession(ctx context.Context, sessionID string) ([]model.InterviewFeedback, error) {
	var feedbacks []model.InterviewFeedback
	err := withRetry("feedback.list", func() error {
		return r.db.WithContext(ctx).
			Where("session_id = ?", sessionID).
			Find(&feedbacks).Error
	})
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}
