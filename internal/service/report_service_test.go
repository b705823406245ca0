package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/ndthang/interntrack/internal/catalog"
	"github.com/ndthang/interntrack/internal/model"
	"github.com/ndthang/interntrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportService(t *testing.T) (ReportService, *gorm.DB, repository.AnswerRepository) {
	t.Helper()
	db := setupTestDB(t)
	answerRepo := repository.NewAnswerRepository(db)
	svc := NewReportService(
		repository.NewSessionRepository(db),
		answerRepo,
		repository.NewFeedbackRepository(db),
	)
	return svc, db, answerRepo
}

func seedScoredAnswer(t *testing.T, answerRepo repository.AnswerRepository, sessionID, questionID string, score int, submittedAt time.Time) *model.InterviewAnswer {
	t.Helper()

	question, ok := catalog.Find(questionID)
	require.True(t, ok)

	answer := &model.InterviewAnswer{
		ID:           uuid.NewString(),
		SessionID:    sessionID,
		QuestionID:   question.ID,
		QuestionText: question.Text,
		AnswerText:   "answer for question " + question.ID,
		Type:         question.Type,
		Difficulty:   question.Difficulty,
		SubmittedAt:  submittedAt,
	}
	feedback := &model.InterviewFeedback{
		ID:           uuid.NewString(),
		AnswerID:     answer.ID,
		SessionID:    sessionID,
		Overall:      "solid answer",
		Strengths:    model.StringList{"clear structure"},
		Improvements: model.StringList{"add detail"},
		Score:        score,
		GeneratedAt:  submittedAt,
	}
	require.NoError(t, answerRepo.CreateWithFeedback(context.Background(), answer, feedback))
	return answer
}

func TestBuildReportAggregates(t *testing.T) {
	svc, db, answerRepo := newReportService(t)
	session := seedSession(t, db, "user-1")

	base := time.Now().Add(-time.Minute)
	seedScoredAnswer(t, answerRepo, session.ID, "1", 90, base)                  // behavioral
	seedScoredAnswer(t, answerRepo, session.ID, "2", 70, base.Add(time.Second)) // technical
	seedScoredAnswer(t, answerRepo, session.ID, "3", 50, base.Add(2*time.Second))

	report, err := svc.BuildReport(context.Background(), "user-1", session.ID)
	require.NoError(t, err)

	assert.Equal(t, session.ID, report.SessionID)
	assert.Equal(t, "General", report.Company)
	assert.Equal(t, 70, report.AverageScore)
	assert.Equal(t, "C", report.LetterGrade)
	assert.Equal(t, map[string]int{
		catalog.TypeBehavioral:   90,
		catalog.TypeTechnical:    70,
		catalog.TypeSystemDesign: 50,
	}, report.ScoresByType)
	assert.Contains(t, report.OverallNarrative, "Good performance")

	require.Len(t, report.Breakdown, 3)
	assert.Equal(t, "1", report.Breakdown[0].Answer.QuestionID)
	assert.Equal(t, "2", report.Breakdown[1].Answer.QuestionID)
	assert.Equal(t, "3", report.Breakdown[2].Answer.QuestionID)
	assert.Equal(t, 90, report.Breakdown[0].Feedback.Score)
}

func TestBuildReportRoundsMean(t *testing.T) {
	svc, db, answerRepo := newReportService(t)
	session := seedSession(t, db, "user-1")

	base := time.Now().Add(-time.Minute)
	seedScoredAnswer(t, answerRepo, session.ID, "1", 81, base)
	seedScoredAnswer(t, answerRepo, session.ID, "4", 82, base.Add(time.Second))

	report, err := svc.BuildReport(context.Background(), "user-1", session.ID)
	require.NoError(t, err)

	// 81.5 rounds up.
	assert.Equal(t, 82, report.AverageScore)
	assert.Equal(t, "B", report.LetterGrade)
	assert.Equal(t, 82, report.ScoresByType[catalog.TypeBehavioral])
}

func TestBuildReportEmptySession(t *testing.T) {
	svc, db, _ := newReportService(t)
	session := seedSession(t, db, "user-1")

	report, err := svc.BuildReport(context.Background(), "user-1", session.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, report.AverageScore)
	assert.Equal(t, "F", report.LetterGrade)
	assert.Empty(t, report.ScoresByType)
	assert.Empty(t, report.Breakdown)
	assert.Contains(t, report.OverallNarrative, "substantial improvement")
}

func TestBuildReportSkipsUnscoredAnswers(t *testing.T) {
	svc, db, answerRepo := newReportService(t)
	session := seedSession(t, db, "user-1")

	base := time.Now().Add(-time.Minute)
	seedScoredAnswer(t, answerRepo, session.ID, "1", 90, base)
	seedScoredAnswer(t, answerRepo, session.ID, "2", 70, base.Add(time.Second))

	// An answer written without feedback, as an interrupted submission would
	// leave behind before the transactional write existed.
	orphan := &model.InterviewAnswer{
		ID:           uuid.NewString(),
		SessionID:    session.ID,
		QuestionID:   "5",
		QuestionText: "orphan",
		AnswerText:   "never scored",
		Type:         catalog.TypeBehavioral,
		Difficulty:   catalog.DifficultyEasy,
		SubmittedAt:  base.Add(2 * time.Second),
	}
	require.NoError(t, db.Create(orphan).Error)

	report, err := svc.BuildReport(context.Background(), "user-1", session.ID)
	require.NoError(t, err)

	assert.Equal(t, 80, report.AverageScore)
	assert.Equal(t, "B", report.LetterGrade)
	require.Len(t, report.Breakdown, 2)
}

func TestBuildReportScopedToOwner(t *testing.T) {
	svc, db, _ := newReportService(t)
	session := seedSession(t, db, "user-1")

	_, err := svc.BuildReport(context.Background(), "someone-else", session.ID)
	assert.ErrorIs(t, err, apperr.ErrSessionNotFound)

	_, err = svc.BuildReport(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, apperr.ErrSessionNotFound)
}

func TestLetterGrade(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{79, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LetterGrade(tc.score), "score %d", tc.score)
	}
}
