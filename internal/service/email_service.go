package service

import (
	"context"
	"time"

	"github.com/ndthang/interntrack/internal/dto"
)

// InboxProvider surfaces interview-related messages from a connected email
// account. A real provider would search the user's mailbox through an OAuth
// client; the shipped implementation returns a canned inbox behind the same
// interface.
type InboxProvider interface {
	FetchInterviewEmails(ctx context.Context, userID string) ([]dto.EmailDTO, error)
}

type mockInboxProvider struct{}

func NewMockInboxProvider() InboxProvider {
	return &mockInboxProvider{}
}

func (p *mockInboxProvider) FetchInterviewEmails(_ context.Context, _ string) ([]dto.EmailDTO, error) {
	return []dto.EmailDTO{
		{
			ID:      "1",
			From:    "recruiting@google.com",
			Subject: "Interview Invitation: Software Engineering Intern",
			Preview: "We would like to invite you to interview for the Software Engineering Intern position...",
			Date:    time.Date(2025, time.February, 28, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:      "2",
			From:    "hr@amazon.com",
			Subject: "Amazon Interview Schedule Confirmation",
			Preview: "Your interview for the Backend Developer Intern position has been scheduled...",
			Date:    time.Date(2025, time.February, 25, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:      "3",
			From:    "talent@microsoft.com",
			Subject: "Microsoft Interview Preparation Resources",
			Preview: "To help you prepare for your upcoming interview, we've compiled some resources...",
			Date:    time.Date(2025, time.February, 20, 11, 45, 0, 0, time.UTC),
		},
	}, nil
}
