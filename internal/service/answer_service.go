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

type AnswerService interface {
	// RecordAnswer persists one answer with its synchronously generated
	// feedback. The two records are written as a unit, so a retried
	// submission after a failure cannot leave an unscored answer behind.
	RecordAnswer(ctx context.Context, userID, sessionID, questionID, answerText string) (*dto.AnswerWithFeedbackDTO, error)
}

type answerService struct {
	sessionRepo repository.SessionRepository
	answerRepo  repository.AnswerRepository
	scorer      ScorerService
}

func NewAnswerService(
	sessionRepo repository.SessionRepository,
	answerRepo repository.AnswerRepository,
	scorer ScorerService,
) AnswerService {
	return &answerService{
		sessionRepo: sessionRepo,
		answerRepo:  answerRepo,
		scorer:      scorer,
	}
}

func (s *answerService) RecordAnswer(ctx context.Context, userID, sessionID, questionID, answerText string) (*dto.AnswerWithFeedbackDTO, error) {
	if strings.TrimSpace(answerText) == "" {
		return nil, apperr.ErrInvalidAnswer
	}

	if _, err := s.sessionRepo.FindByIDAndUser(ctx, sessionID, userID); err != nil {
		return nil, err
	}

	question, ok := catalog.Find(questionID)
	if !ok {
		log.Warn().Str("questionID", questionID).Str("sessionID", sessionID).Msg("RecordAnswer: unknown question id")
		return nil, apperr.ErrNotFound
	}

	exists, err := s.answerRepo.ExistsBySessionAndQuestion(ctx, sessionID, questionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrDuplicateAnswer
	}

	now := time.Now()
	answer := model.InterviewAnswer{
		ID:           uuid.NewString(),
		SessionID:    sessionID,
		QuestionID:   question.ID,
		QuestionText: question.Text,
		AnswerText:   answerText,
		Type:         question.Type,
		Difficulty:   question.Difficulty,
		SubmittedAt:  now,
	}

	result := s.scorer.Score(question.Type, answerText)
	feedback := model.InterviewFeedback{
		ID:           uuid.NewString(),
		AnswerID:     answer.ID,
		SessionID:    sessionID,
		Overall:      result.Overall,
		Strengths:    result.Strengths,
		Improvements: result.Improvements,
		Score:        result.Score,
		GeneratedAt:  now,
	}

	if err := s.answerRepo.CreateWithFeedback(ctx, &answer, &feedback); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Str("questionID", questionID).Msg("RecordAnswer: failed to persist answer and feedback")
		return nil, err
	}

	log.Info().
		Str("sessionID", sessionID).
		Str("questionID", questionID).
		Int("score", feedback.Score).
		Msg("Answer recorded and scored")

	var out dto.AnswerWithFeedbackDTO
	copier.Copy(&out.Answer, &answer)
	copier.Copy(&out.Feedback, &feedback)
	return &out, nil
}
