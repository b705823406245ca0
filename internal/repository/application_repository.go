package repository

import (
	"context"
	"errors"

	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/ndthang/interntrack/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.Application, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.Application, error)
	Update(ctx context.Context, app *model.Application) error
	Delete(ctx context.Context, id, userID string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *model.Application) error {
	return withRetry("application.create", func() error {
		return r.db.WithContext(ctx).Create(app).Error
	})
}

func (r *applicationRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*model.Application, error) {
	var app model.Application
	err := withRetry("application.find", func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			First(&app).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindAllByUser(ctx context.Context, userID string) ([]model.Application, error) {
	var apps []model.Application
	err := withRetry("application.list", func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("applied_at DESC").
			Find(&apps).Error
	})
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) Update(ctx context.Context, app *model.Application) error {
	return withRetry("application.update", func() error {
		return r.db.WithContext(ctx).Save(app).Error
	})
}

func (r *applicationRepository) Delete(ctx context.Context, id, userID string) error {
	var deleted int64
	err := withRetry("application.delete", func() error {
		res := r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.Application{})
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
