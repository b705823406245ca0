package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/interntrack/internal/catalog"
	"github.com/ndthang/interntrack/internal/dto"
	"github.com/ndthang/interntrack/internal/middleware"
	"github.com/ndthang/interntrack/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	sessionService service.SessionService
	answerService  service.AnswerService
	reportService  service.ReportService
}

func NewInterviewController(
	sessionService service.SessionService,
	answerService service.AnswerService,
	reportService service.ReportService,
) *InterviewController {
	return &InterviewController{
		sessionService: sessionService,
		answerService:  answerService,
		reportService:  reportService,
	}
}

// ListQuestions godoc
// @Summary List the mock-interview question catalog
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionDTO
// @Router /interview/questions [get]
func (c *InterviewController) ListQuestions(ctx *gin.Context) {
	questions := catalog.Questions()
	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, dto.QuestionDTO{
			ID:         q.ID,
			Text:       q.Text,
			Type:       q.Type,
			Difficulty: q.Difficulty,
		})
	}
	ctx.JSON(http.StatusOK, dtos)
}

// StartSession godoc
// @Summary Start a mock-interview practice session
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SessionStartDTO false "Optional target company"
// @Success 201 {object} dto.SessionDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /interview/sessions [post]
func (c *InterviewController) StartSession(ctx *gin.Context) {
	var req dto.SessionStartDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	session, err := c.sessionService.StartSession(ctx.Request.Context(), middleware.UserID(ctx), req.Company)
	if err != nil {
		log.Error().Err(err).Msg("StartSession handler failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// ListSessions godoc
// @Summary List the current user's practice sessions
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SessionDTO
// @Failure 503 {object} dto.ErrorResponse
// @Router /interview/sessions [get]
func (c *InterviewController) ListSessions(ctx *gin.Context) {
	sessions, err := c.sessionService.ListSessions(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sessions)
}

// SubmitAnswer godoc
// @Summary Submit an answer for one question and receive scored feedback
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param body body dto.AnswerSubmitDTO true "Answer payload"
// @Success 201 {object} dto.AnswerWithFeedbackDTO
// @Failure 404 {object} dto.ErrorResponse "Session or question not found"
// @Failure 409 {object} dto.ErrorResponse "Question already answered"
// @Failure 422 {object} dto.ErrorResponse "Empty answer text"
// @Router /interview/sessions/{session_id}/answers [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.answerService.RecordAnswer(
		ctx.Request.Context(),
		middleware.UserID(ctx),
		ctx.Param("session_id"),
		req.QuestionID,
		req.AnswerText,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// CompleteSession godoc
// @Summary Mark a practice session completed (idempotent)
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /interview/sessions/{session_id}/complete [post]
func (c *InterviewController) CompleteSession(ctx *gin.Context) {
	session, err := c.sessionService.CompleteSession(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// GetReport godoc
// @Summary Build the aggregated report for a session
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.InterviewReportDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /interview/sessions/{session_id}/report [get]
func (c *InterviewController) GetReport(ctx *gin.Context) {
	report, err := c.reportService.BuildReport(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
