package repository

import (
	"context"
	"errors"

	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/ndthang/interntrack/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *model.InterviewSession) error
	// FindByIDAndUser scopes every lookup by owner: a session belonging to a
	// different user is indistinguishable from a missing one.
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.InterviewSession, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.InterviewSession, error)
	Update(ctx context.Context, session *model.InterviewSession) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.InterviewSession) error {
	return withRetry("session.create", func() error {
		return r.db.WithContext(ctx).Create(session).Error
	})
}

func (r *sessionRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*model.InterviewSession, error) {
	var session model.InterviewSession
	err := withRetry("session.find", func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			First(&session).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindAllByUser(ctx context.Context, userID string) ([]model.InterviewSession, error) {
	var sessions []model.InterviewSession
	err := withRetry("session.list", func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("started_at DESC").
			Find(&sessions).Error
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *model.InterviewSession) error {
	return withRetry("session.update", func() error {
		return r.db.WithContext(ctx).Save(session).Error
	})
}
