package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/ndthang/interntrack/internal/dto"
	"github.com/ndthang/interntrack/internal/model"
	"github.com/ndthang/interntrack/internal/repository"
	"github.com/rs/zerolog/log"
)

type ApplicationService interface {
	CreateApplication(ctx context.Context, userID string, req dto.ApplicationCreateDTO) (*dto.ApplicationDTO, error)
	ListApplications(ctx context.Context, userID string) ([]dto.ApplicationDTO, error)
	UpdateApplication(ctx context.Context, userID, id string, req dto.ApplicationUpdateDTO) (*dto.ApplicationDTO, error)
	DeleteApplication(ctx context.Context, userID, id string) error
}

type applicationService struct {
	repo repository.ApplicationRepository
}

func NewApplicationService(repo repository.ApplicationRepository) ApplicationService {
	return &applicationService{repo: repo}
}

func (s *applicationService) CreateApplication(ctx context.Context, userID string, req dto.ApplicationCreateDTO) (*dto.ApplicationDTO, error) {
	status := req.Status
	if status == "" {
		status = model.ApplicationApplied
	}
	appliedAt := time.Now()
	if req.AppliedAt != nil {
		appliedAt = *req.AppliedAt
	}

	app := model.Application{
		ID:        uuid.NewString(),
		UserID:    userID,
		Company:   req.Company,
		Position:  req.Position,
		Status:    status,
		AppliedAt: appliedAt,
		URL:       req.URL,
		Notes:     req.Notes,
	}
	if err := s.repo.Create(ctx, &app); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("CreateApplication: failed to create application")
		return nil, err
	}
	return applicationToDTO(&app), nil
}

func (s *applicationService) ListApplications(ctx context.Context, userID string) ([]dto.ApplicationDTO, error) {
	apps, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListApplications: failed to list applications")
		return nil, err
	}

	dtos := make([]dto.ApplicationDTO, 0, len(apps))
	for i := range apps {
		dtos = append(dtos, *applicationToDTO(&apps[i]))
	}
	return dtos, nil
}

func (s *applicationService) UpdateApplication(ctx context.Context, userID, id string, req dto.ApplicationUpdateDTO) (*dto.ApplicationDTO, error) {
	app, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Company != nil {
		app.Company = *req.Company
	}
	if req.Position != nil {
		app.Position = *req.Position
	}
	if req.Status != nil {
		app.Status = *req.Status
	}
	if req.AppliedAt != nil {
		app.AppliedAt = *req.AppliedAt
	}
	if req.URL != nil {
		app.URL = *req.URL
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, app); err != nil {
		log.Error().Err(err).Str("applicationID", id).Msg("UpdateApplication: failed to update application")
		return nil, err
	}
	return applicationToDTO(app), nil
}

func (s *applicationService) DeleteApplication(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		log.Error().Err(err).Str("applicationID", id).Msg("DeleteApplication: failed to delete application")
		return err
	}
	return nil
}

func applicationToDTO(app *model.Application) *dto.ApplicationDTO {
	var out dto.ApplicationDTO
	copier.Copy(&out, app)
	return &out
}
