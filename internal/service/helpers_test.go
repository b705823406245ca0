package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndthang/interntrack/internal/catalog"
	"github.com/ndthang/interntrack/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a per-test in-memory database with the full schema.
// TranslateError is on so unique violations surface as gorm.ErrDuplicatedKey,
// matching the production postgres configuration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.InterviewSession{},
		&model.InterviewAnswer{},
		&model.InterviewFeedback{},
		&model.Application{},
		&model.Resume{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})
	return db
}

func seedSession(t *testing.T, db *gorm.DB, userID string) *model.InterviewSession {
	t.Helper()

	session := &model.InterviewSession{
		ID:            uuid.NewString(),
		UserID:        userID,
		Company:       "General",
		StartedAt:     time.Now(),
		Status:        model.SessionInProgress,
		QuestionCount: catalog.Size(),
	}
	require.NoError(t, db.Create(session).Error)
	return session
}
