package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/interntrack/internal/dto"
	"github.com/ndthang/interntrack/internal/middleware"
	"github.com/ndthang/interntrack/internal/service"
)

type ResumeController struct {
	resumeService service.ResumeService
}

func NewResumeController(resumeService service.ResumeService) *ResumeController {
	return &ResumeController{resumeService: resumeService}
}

// ListResumes godoc
// @Summary List the current user's resume records
// @Tags Resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResumeDTO
// @Router /resumes [get]
func (c *ResumeController) ListResumes(ctx *gin.Context) {
	resumes, err := c.resumeService.ListResumes(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resumes)
}

// RegisterResume godoc
// @Summary Register an uploaded resume file
// @Tags Resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ResumeCreateDTO true "Uploaded file metadata"
// @Success 201 {object} dto.ResumeDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /resumes [post]
func (c *ResumeController) RegisterResume(ctx *gin.Context) {
	var req dto.ResumeCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resume, err := c.resumeService.RegisterResume(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resume)
}

// GetResume godoc
// @Summary Fetch one resume record with its analysis
// @Tags Resumes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resume ID"
// @Success 200 {object} dto.ResumeDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /resumes/{id} [get]
func (c *ResumeController) GetResume(ctx *gin.Context) {
	resume, err := c.resumeService.GetResume(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resume)
}

// AnalyzeResume godoc
// @Summary Run ATS analysis on a resume
// @Tags Resumes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resume ID"
// @Success 200 {object} dto.ResumeDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /resumes/{id}/analyze [post]
func (c *ResumeController) AnalyzeResume(ctx *gin.Context) {
	resume, err := c.resumeService.AnalyzeResume(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resume)
}
