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

type ResumeService interface {
	RegisterResume(ctx context.Context, userID string, req dto.ResumeCreateDTO) (*dto.ResumeDTO, error)
	ListResumes(ctx context.Context, userID string) ([]dto.ResumeDTO, error)
	GetResume(ctx context.Context, userID, id string) (*dto.ResumeDTO, error)
	// AnalyzeResume runs the ATS analyzer and stores the result on the record.
	// Re-analyzing an analyzed resume overwrites the previous report.
	AnalyzeResume(ctx context.Context, userID, id string) (*dto.ResumeDTO, error)
}

type resumeService struct {
	repo     repository.ResumeRepository
	analyzer AtsAnalyzer
}

func NewResumeService(repo repository.ResumeRepository, analyzer AtsAnalyzer) ResumeService {
	return &resumeService{repo: repo, analyzer: analyzer}
}

func (s *resumeService) RegisterResume(ctx context.Context, userID string, req dto.ResumeCreateDTO) (*dto.ResumeDTO, error) {
	resume := model.Resume{
		ID:          uuid.NewString(),
		UserID:      userID,
		FileName:    req.FileName,
		DownloadURL: req.DownloadURL,
		Status:      model.ResumeUploaded,
		UploadedAt:  time.Now(),
	}
	if err := s.repo.Create(ctx, &resume); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("RegisterResume: failed to create resume record")
		return nil, err
	}
	return resumeToDTO(&resume), nil
}

func (s *resumeService) ListResumes(ctx context.Context, userID string) ([]dto.ResumeDTO, error) {
	resumes, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListResumes: failed to list resumes")
		return nil, err
	}

	dtos := make([]dto.ResumeDTO, 0, len(resumes))
	for i := range resumes {
		dtos = append(dtos, *resumeToDTO(&resumes[i]))
	}
	return dtos, nil
}

func (s *resumeService) GetResume(ctx context.Context, userID, id string) (*dto.ResumeDTO, error) {
	resume, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return resumeToDTO(resume), nil
}

func (s *resumeService) AnalyzeResume(ctx context.Context, userID, id string) (*dto.ResumeDTO, error) {
	resume, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analyzer.Analyze(ctx, resume.DownloadURL)
	if err != nil {
		log.Error().Err(err).Str("resumeID", id).Msg("AnalyzeResume: analyzer failed")
		return nil, err
	}

	now := time.Now()
	resume.Analysis = analysis
	resume.Status = model.ResumeAnalyzed
	resume.AnalyzedAt = &now
	if err := s.repo.Update(ctx, resume); err != nil {
		log.Error().Err(err).Str("resumeID", id).Msg("AnalyzeResume: failed to store analysis")
		return nil, err
	}

	log.Info().Str("resumeID", id).Int("overallScore", analysis.OverallScore).Msg("Resume analyzed")
	return resumeToDTO(resume), nil
}

func resumeToDTO(resume *model.Resume) *dto.ResumeDTO {
	var out dto.ResumeDTO
	copier.Copy(&out, resume)
	return &out
}
