package service

import (
	"context"
	"math"

	"github.com/jinzhu/copier"
	"github.com/ndthang/interntrack/internal/dto"
	"github.com/ndthang/interntrack/internal/model"
	"github.com/ndthang/interntrack/internal/repository"
	"github.com/rs/zerolog/log"
)

type ReportService interface {
	// BuildReport recomputes the session report from the stored answers and
	// feedback on every call; reports are never persisted.
	BuildReport(ctx context.Context, userID, sessionID string) (*dto.InterviewReportDTO, error)
}

type reportService struct {
	sessionRepo  repository.SessionRepository
	answerRepo   repository.AnswerRepository
	feedbackRepo repository.FeedbackRepository
}

func NewReportService(
	sessionRepo repository.SessionRepository,
	answerRepo repository.AnswerRepository,
	feedbackRepo repository.FeedbackRepository,
) ReportService {
	return &reportService{
		sessionRepo:  sessionRepo,
		answerRepo:   answerRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *reportService) BuildReport(ctx context.Context, userID, sessionID string) (*dto.InterviewReportDTO, error) {
	session, err := s.sessionRepo.FindByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.FindAllBySession(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("BuildReport: failed to load answers")
		return nil, err
	}
	feedbacks, err := s.feedbackRepo.FindAllBySession(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("BuildReport: failed to load feedback")
		return nil, err
	}

	feedbackByAnswer := make(map[string]model.InterviewFeedback, len(feedbacks))
	for _, f := range feedbacks {
		feedbackByAnswer[f.AnswerID] = f
	}

	totalScore := 0
	scored := 0
	typeTotals := make(map[string]int)
	typeCounts := make(map[string]int)
	breakdown := make([]dto.AnswerWithFeedbackDTO, 0, len(answers))

	for i := range answers {
		answer := answers[i]
		feedback, ok := feedbackByAnswer[answer.ID]
		if !ok {
			// An answer without feedback means a submission was interrupted
			// mid-write; it contributes nothing to the aggregates.
			log.Warn().Str("answerID", answer.ID).Msg("BuildReport: answer has no feedback")
			continue
		}

		totalScore += feedback.Score
		scored++
		typeTotals[answer.Type] += feedback.Score
		typeCounts[answer.Type]++

		var entry dto.AnswerWithFeedbackDTO
		copier.Copy(&entry.Answer, &answer)
		copier.Copy(&entry.Feedback, &feedback)
		breakdown = append(breakdown, entry)
	}

	averageScore := 0
	if scored > 0 {
		averageScore = roundMean(totalScore, scored)
	}

	scoresByType := make(map[string]int, len(typeTotals))
	for qType, total := range typeTotals {
		scoresByType[qType] = roundMean(total, typeCounts[qType])
	}

	return &dto.InterviewReportDTO{
		SessionID:        session.ID,
		Company:          session.Company,
		AverageScore:     averageScore,
		LetterGrade:      LetterGrade(averageScore),
		ScoresByType:     scoresByType,
		OverallNarrative: overallNarrative(averageScore),
		Breakdown:        breakdown,
	}, nil
}

func roundMean(total, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}

// LetterGrade maps an average score to its report grade.
func LetterGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func overallNarrative(score int) string {
	switch {
	case score >= 90:
		return "Excellent performance! You demonstrated strong interview skills across all question types. You're well-prepared for real interviews."
	case score >= 80:
		return "Very good performance. You showed solid interview skills with only minor areas for improvement. Continue practicing to refine your responses."
	case score >= 70:
		return "Good performance with room for improvement. Focus on the specific feedback for each question to strengthen your weaker areas."
	case score >= 60:
		return "Satisfactory performance. You have a foundation to build upon, but need significant practice in several areas. Review the detailed feedback carefully."
	default:
		return "Your performance needs substantial improvement. Focus on the fundamentals of interview responses and practice regularly with the feedback provided."
	}
}
