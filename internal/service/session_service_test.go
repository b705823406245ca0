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
)

func newSessionService(t *testing.T) (SessionService, repository.SessionRepository) {
	t.Helper()
	repo := repository.NewSessionRepository(setupTestDB(t))
	return NewSessionService(repo), repo
}

func TestStartSessionRequiresUser(t *testing.T) {
	svc, _ := newSessionService(t)

	_, err := svc.StartSession(context.Background(), "", "Google")
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)

	_, err = svc.StartSession(context.Background(), "   ", "Google")
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)
}

func TestStartSessionDefaults(t *testing.T) {
	svc, _ := newSessionService(t)

	session, err := svc.StartSession(context.Background(), "user-1", "")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "General", session.Company)
	assert.Equal(t, model.SessionInProgress, session.Status)
	assert.Equal(t, catalog.Size(), session.QuestionCount)
	assert.Nil(t, session.EndedAt)
	assert.WithinDuration(t, time.Now(), session.StartedAt, time.Minute)
}

func TestStartSessionTrimsCompany(t *testing.T) {
	svc, _ := newSessionService(t)

	session, err := svc.StartSession(context.Background(), "user-1", "  Google  ")
	require.NoError(t, err)
	assert.Equal(t, "Google", session.Company)
}

func TestCompleteSessionIsIdempotent(t *testing.T) {
	svc, _ := newSessionService(t)

	started, err := svc.StartSession(context.Background(), "user-1", "")
	require.NoError(t, err)

	first, err := svc.CompleteSession(context.Background(), "user-1", started.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionCompleted, first.Status)
	require.NotNil(t, first.EndedAt)

	second, err := svc.CompleteSession(context.Background(), "user-1", started.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionCompleted, second.Status)
	require.NotNil(t, second.EndedAt)
	assert.WithinDuration(t, *first.EndedAt, *second.EndedAt, time.Second)
}

func TestCompleteSessionScopedToOwner(t *testing.T) {
	svc, _ := newSessionService(t)

	started, err := svc.StartSession(context.Background(), "user-1", "")
	require.NoError(t, err)

	_, err = svc.CompleteSession(context.Background(), "someone-else", started.ID)
	assert.ErrorIs(t, err, apperr.ErrSessionNotFound)

	_, err = svc.CompleteSession(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, apperr.ErrSessionNotFound)
}

func TestListSessionsNewestFirst(t *testing.T) {
	svc, repo := newSessionService(t)

	older := &model.InterviewSession{
		ID:            uuid.NewString(),
		UserID:        "user-1",
		Company:       "Amazon",
		StartedAt:     time.Now().Add(-time.Hour),
		Status:        model.SessionCompleted,
		QuestionCount: catalog.Size(),
	}
	newer := &model.InterviewSession{
		ID:            uuid.NewString(),
		UserID:        "user-1",
		Company:       "Google",
		StartedAt:     time.Now(),
		Status:        model.SessionInProgress,
		QuestionCount: catalog.Size(),
	}
	require.NoError(t, repo.Create(context.Background(), older))
	require.NoError(t, repo.Create(context.Background(), newer))

	// Another user's session must not leak into the listing.
	_, err := svc.StartSession(context.Background(), "user-2", "")
	require.NoError(t, err)

	sessions, err := svc.ListSessions(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, newer.ID, sessions[0].ID)
	assert.Equal(t, older.ID, sessions[1].ID)
}
