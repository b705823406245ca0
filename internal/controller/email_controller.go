package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/interntrack/internal/middleware"
	"github.com/ndthang/interntrack/internal/service"
)

type EmailController struct {
	inbox service.InboxProvider
}

func NewEmailController(inbox service.InboxProvider) *EmailController {
	return &EmailController{inbox: inbox}
}

// ListInterviewEmails godoc
// @Summary List interview-related emails from the connected inbox
// @Tags Emails
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.EmailDTO
// @Router /emails [get]
func (c *EmailController) ListInterviewEmails(ctx *gin.Context) {
	emails, err := c.inbox.FetchInterviewEmails(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emails)
}
