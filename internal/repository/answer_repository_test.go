package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/ndthang/interntrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAnswerPair(sessionID, questionID string, submittedAt time.Time) (*model.InterviewAnswer, *model.InterviewFeedback) {
	answer := &model.InterviewAnswer{
		ID:           uuid.NewString(),
		SessionID:    sessionID,
		QuestionID:   questionID,
		QuestionText: "question text",
		AnswerText:   "answer text",
		Type:         "behavioral",
		Difficulty:   "medium",
		SubmittedAt:  submittedAt,
	}
	feedback := &model.InterviewFeedback{
		ID:           uuid.NewString(),
		AnswerID:     answer.ID,
		SessionID:    sessionID,
		Overall:      "ok",
		Strengths:    model.StringList{"clear"},
		Improvements: model.StringList{"expand"},
		Score:        75,
		GeneratedAt:  submittedAt,
	}
	return answer, feedback
}

func TestCreateWithFeedbackWritesBoth(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnswerRepository(db)

	answer, feedback := seedAnswerPair("session-1", "1", time.Now())
	require.NoError(t, repo.CreateWithFeedback(context.Background(), answer, feedback))

	var storedFeedback model.InterviewFeedback
	require.NoError(t, db.Where("answer_id = ?", answer.ID).First(&storedFeedback).Error)
	assert.Equal(t, 75, storedFeedback.Score)
	assert.Equal(t, model.StringList{"clear"}, storedFeedback.Strengths)

	exists, err := repo.ExistsBySessionAndQuestion(context.Background(), "session-1", "1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateWithFeedbackDuplicateQuestion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnswerRepository(db)

	first, firstFeedback := seedAnswerPair("session-1", "1", time.Now())
	require.NoError(t, repo.CreateWithFeedback(context.Background(), first, firstFeedback))

	// Same (session, question) pair trips the unique index even though the
	// row ids differ; the transaction rolls both inserts back.
	second, secondFeedback := seedAnswerPair("session-1", "1", time.Now())
	err := repo.CreateWithFeedback(context.Background(), second, secondFeedback)
	assert.ErrorIs(t, err, apperr.ErrDuplicateAnswer)

	answers, err := repo.FindAllBySession(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, first.ID, answers[0].ID)

	var feedbackCount int64
	require.NoError(t, db.Model(&model.InterviewFeedback{}).Where("session_id = ?", "session-1").Count(&feedbackCount).Error)
	assert.EqualValues(t, 1, feedbackCount)
}

func TestFindAllBySessionOrdersBySubmission(t *testing.T) {
	repo := NewAnswerRepository(setupTestDB(t))

	base := time.Now().Add(-time.Minute)
	late, lateFeedback := seedAnswerPair("session-1", "2", base.Add(30*time.Second))
	early, earlyFeedback := seedAnswerPair("session-1", "1", base)
	require.NoError(t, repo.CreateWithFeedback(context.Background(), late, lateFeedback))
	require.NoError(t, repo.CreateWithFeedback(context.Background(), early, earlyFeedback))

	answers, err := repo.FindAllBySession(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, early.ID, answers[0].ID)
	assert.Equal(t, late.ID, answers[1].ID)
}

func TestSessionRepositoryScopesByUser(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	session := &model.InterviewSession{
		ID:            uuid.NewString(),
		UserID:        "user-1",
		Company:       "General",
		StartedAt:     time.Now(),
		Status:        model.SessionInProgress,
		QuestionCount: 5,
	}
	require.NoError(t, repo.Create(context.Background(), session))

	found, err := repo.FindByIDAndUser(context.Background(), session.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)

	_, err = repo.FindByIDAndUser(context.Background(), session.ID, "someone-else")
	assert.ErrorIs(t, err, apperr.ErrSessionNotFound)

	_, err = repo.FindByIDAndUser(context.Background(), uuid.NewString(), "user-1")
	assert.ErrorIs(t, err, apperr.ErrSessionNotFound)
}
