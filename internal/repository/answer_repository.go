package repository

import (
	"context"
	"errors"

	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/ndthang/interntrack/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	// CreateWithFeedback persists an answer and its feedback as one unit, so
	// a failed submission can be retried without leaving an unscored answer
	// behind. A concurrent duplicate trips the unique (session, question)
	// index and is reported as apperr.ErrDuplicateAnswer.
	CreateWithFeedback(ctx context.Context, answer *model.InterviewAnswer, feedback *model.InterviewFeedback) error
	ExistsBySessionAndQuestion(ctx context.Context, sessionID, questionID string) (bool, error)
	FindAllBySession(ctx context.Context, sessionID string) ([]model.InterviewAnswer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) CreateWithFeedback(ctx context.Context, answer *model.InterviewAnswer, feedback *model.InterviewFeedback) error {
	err := withRetry("answer.create", func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(answer).Error; err != nil {
				return err
			}
			return tx.Create(feedback).Error
		})
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.ErrDuplicateAnswer
	}
	return err
}

func (r *answerRepository) ExistsBySessionAndQuestion(ctx context.Context, sessionID, questionID string) (bool, error) {
	var count int64
	err := withRetry("answer.exists", func() error {
		return r.db.WithContext(ctx).
			Model(&model.InterviewAnswer{}).
			Where("session_id = ? AND question_id = ?", sessionID, questionID).
			Count(&count).Error
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *answerRepository) FindAllBySession(ctx context.Context, sessionID string) ([]model.InterviewAnswer, error) {
	var answers []model.InterviewAnswer
	err := withRetry("answer.list", func() error {
		return r.db.WithContext(ctx).
			Where("session_id = ?", sessionID).
			Order("submitted_at ASC").
			Find(&answers).Error
	})
	if err != nil {
		return nil, err
	}
	return answers, nil
}
