package service

import (
	"context"
	"strings"
	"testing"

	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/ndthang/interntrack/internal/catalog"
	"github.com/ndthang/interntrack/internal/model"
	"github.com/ndthang/interntrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnswerService(t *testing.T) (AnswerService, *gorm.DB, repository.AnswerRepository) {
	t.Helper()
	db := setupTestDB(t)
	sessionRepo := repository.NewSessionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	svc := NewAnswerService(sessionRepo, answerRepo, NewScorerWithSource(nil))
	return svc, db, answerRepo
}

func TestRecordAnswerRejectsBlankText(t *testing.T) {
	svc, db, _ := newAnswerService(t)
	session := seedSession(t, db, "user-1")

	for _, text := range []string{"", "   ", " \n\t "} {
		_, err := svc.RecordAnswer(context.Background(), "user-1", session.ID, "1", text)
		assert.ErrorIs(t, err, apperr.ErrInvalidAnswer)
	}
}

func TestRecordAnswerUnknownSession(t *testing.T) {
	svc, _, _ := newAnswerService(t)

	_, err := svc.RecordAnswer(context.Background(), "user-1", "missing", "1", "a real answer")
	assert.ErrorIs(t, err, apperr.ErrSessionNotFound)
}

func TestRecordAnswerForeignSession(t *testing.T) {
	svc, db, _ := newAnswerService(t)
	session := seedSession(t, db, "user-1")

	_, err := svc.RecordAnswer(context.Background(), "someone-else", session.ID, "1", "a real answer")
	assert.ErrorIs(t, err, apperr.ErrSessionNotFound)
}

func TestRecordAnswerUnknownQuestion(t *testing.T) {
	svc, db, _ := newAnswerService(t)
	session := seedSession(t, db, "user-1")

	_, err := svc.RecordAnswer(context.Background(), "user-1", session.ID, "99", "a real answer")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRecordAnswerScoresAndPersists(t *testing.T) {
	svc, db, _ := newAnswerService(t)
	session := seedSession(t, db, "user-1")

	answerText := strings.Repeat("a", 396) + "code"
	out, err := svc.RecordAnswer(context.Background(), "user-1", session.ID, "2", answerText)
	require.NoError(t, err)

	question, ok := catalog.Find("2")
	require.True(t, ok)

	assert.NotEmpty(t, out.Answer.ID)
	assert.Equal(t, session.ID, out.Answer.SessionID)
	assert.Equal(t, question.ID, out.Answer.QuestionID)
	assert.Equal(t, question.Text, out.Answer.QuestionText)
	assert.Equal(t, question.Type, out.Answer.Type)
	assert.Equal(t, question.Difficulty, out.Answer.Difficulty)
	assert.Equal(t, answerText, out.Answer.AnswerText)

	// Long technical answer mentioning code: bracket midpoint plus bonus.
	assert.Equal(t, 95, out.Feedback.Score)
	assert.Equal(t, out.Answer.ID, out.Feedback.AnswerID)
	assert.NotEmpty(t, out.Feedback.Overall)
	assert.NotEmpty(t, out.Feedback.Strengths)
	assert.NotEmpty(t, out.Feedback.Improvements)

	var stored model.InterviewFeedback
	require.NoError(t, db.Where("answer_id = ?", out.Answer.ID).First(&stored).Error)
	assert.Equal(t, 95, stored.Score)
}

func TestRecordAnswerDuplicateKeepsOriginal(t *testing.T) {
	svc, db, answerRepo := newAnswerService(t)
	session := seedSession(t, db, "user-1")

	first, err := svc.RecordAnswer(context.Background(), "user-1", session.ID, "1", "my first example answer")
	require.NoError(t, err)

	_, err = svc.RecordAnswer(context.Background(), "user-1", session.ID, "1", "a different answer")
	assert.ErrorIs(t, err, apperr.ErrDuplicateAnswer)

	answers, err := answerRepo.FindAllBySession(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, first.Answer.ID, answers[0].ID)
	assert.Equal(t, "my first example answer", answers[0].AnswerText)
}

func TestRecordAnswerSameQuestionAcrossSessions(t *testing.T) {
	svc, db, _ := newAnswerService(t)
	first := seedSession(t, db, "user-1")
	second := seedSession(t, db, "user-1")

	_, err := svc.RecordAnswer(context.Background(), "user-1", first.ID, "1", "answer in session one")
	require.NoError(t, err)

	// The uniqueness constraint is per session, not per user.
	_, err = svc.RecordAnswer(context.Background(), "user-1", second.ID, "1", "answer in session two")
	require.NoError(t, err)
}
