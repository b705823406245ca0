package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/interntrack/internal/dto"
	"github.com/ndthang/interntrack/internal/middleware"
	"github.com/ndthang/interntrack/internal/service"
)

type ApplicationController struct {
	applicationService service.ApplicationService
}

func NewApplicationController(applicationService service.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// ListApplications godoc
// @Summary List the current user's job applications
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ApplicationDTO
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	apps, err := c.applicationService.ListApplications(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, apps)
}

// CreateApplication godoc
// @Summary Track a new job application
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ApplicationCreateDTO true "Application payload"
// @Success 201 {object} dto.ApplicationDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req dto.ApplicationCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := c.applicationService.CreateApplication(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, app)
}

// UpdateApplication godoc
// @Summary Update a tracked application
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param body body dto.ApplicationUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ApplicationDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id} [put]
func (c *ApplicationController) UpdateApplication(ctx *gin.Context) {
	var req dto.ApplicationUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := c.applicationService.UpdateApplication(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, app)
}

// DeleteApplication godoc
// @Summary Delete a tracked application
// @Tags Applications
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id} [delete]
func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	if err := c.applicationService.DeleteApplication(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
