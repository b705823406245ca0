package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/ndthang/interntrack/internal/catalog"
	"github.com/ndthang/interntrack/internal/dto"
	"github.com/ndthang/interntrack/internal/model"
	"github.com/ndthang/interntrack/internal/repository"
	"github.com/rs/zerolog/log"
)

const defaultCompany = "General"

type SessionService interface {
	StartSession(ctx context.Context, userID, company string) (*dto.SessionDTO, error)
	// CompleteSession is idempotent: completing a completed session is a no-op.
	CompleteSession(ctx context.Context, userID, sessionID string) (*dto.SessionDTO, error)
	ListSessions(ctx context.Context, userID string) ([]dto.SessionDTO, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
}

func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) StartSession(ctx context.Context, userID, company string) (*dto.SessionDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.ErrAuthRequired
	}
	company = strings.TrimSpace(company)
	if company == "" {
		company = defaultCompany
	}

	session := model.InterviewSession{
		ID:            uuid.NewString(),
		UserID:        userID,
		Company:       company,
		StartedAt:     time.Now(),
		Status:        model.SessionInProgress,
		QuestionCount: catalog.Size(),
	}
	if err := s.sessionRepo.Create(ctx, &session); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("StartSession: failed to create session")
		return nil, err
	}

	log.Info().Str("sessionID", session.ID).Str("company", company).Msg("Interview session started")
	return sessionToDTO(&session), nil
}

func (s *sessionService) CompleteSession(ctx context.Context, userID, sessionID string) (*dto.SessionDTO, error) {
	session, err := s.sessionRepo.FindByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	if session.Status == model.SessionCompleted {
		return sessionToDTO(session), nil
	}

	now := time.Now()
	session.Status = model.SessionCompleted
	session.EndedAt = &now
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("CompleteSession: failed to update session")
		return nil, err
	}

	log.Info().Str("sessionID", sessionID).Msg("Interview session completed")
	return sessionToDTO(session), nil
}

func (s *sessionService) ListSessions(ctx context.Context, userID string) ([]dto.SessionDTO, error) {
	sessions, err := s.sessionRepo.FindAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListSessions: failed to list sessions")
		return nil, err
	}

	dtos := make([]dto.SessionDTO, 0, len(sessions))
	for i := range sessions {
		dtos = append(dtos, *sessionToDTO(&sessions[i]))
	}
	return dtos, nil
}

func sessionToDTO(session *model.InterviewSession) *dto.SessionDTO {
	var out dto.SessionDTO
	copier.Copy(&out, session)
	return &out
}
