package dto

import (
	"time"

	"github.com/ndthang/interntrack/internal/model"
)

// ResumeCreateDTO registers an already-uploaded file; the upload itself goes
// straight to blob storage from the client.
type ResumeCreateDTO struct {
	FileName    string `json:"file_name" binding:"required"`
	DownloadURL string `json:"download_url" binding:"required,url"`
}

type ResumeDTO struct {
	ID          string             `json:"id"`
	FileName    string             `json:"file_name"`
	DownloadURL string             `json:"download_url"`
	Status      string             `json:"status"`
	Analysis    *model.AtsAnalysis `json:"analysis,omitempty"`
	UploadedAt  time.Time          `json:"uploaded_at"`
	AnalyzedAt  *time.Time         `json:"analyzed_at,omitempty"`
}
