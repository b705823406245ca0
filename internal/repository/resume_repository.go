package repository

import (
	"context"
	"errors"

	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/ndthang/interntrack/internal/model"
	"gorm.io/gorm"
)

type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.Resume, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.Resume, error)
	Update(ctx context.Context, resume *model.Resume) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	return withRetry("resume.create", func() error {
		return r.db.WithContext(ctx).Create(resume).Error
	})
}

func (r *resumeRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*model.Resume, error) {
	var resume model.Resume
	err := withRetry("resume.find", func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			First(&resume).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) FindAllByUser(ctx context.Context, userID string) ([]model.Resume, error) {
	var resumes []model.Resume
	err := withRetry("resume.list", func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("uploaded_at DESC").
			Find(&resumes).Error
	})
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepository) Update(ctx context.Context, resume *model.Resume) error {
	return withRetry("resume.update", func() error {
		return r.db.WithContext(ctx).Save(resume).Error
	})
}
