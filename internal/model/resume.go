package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Resume status values.
const (
	ResumeUploaded = "uploaded"
	ResumeAnalyzed = "analyzed"
)

// Resume is an uploaded resume record. The file itself lives in external blob
// storage; only the download URL and the analysis result are kept here.
type Resume struct {
	ID          string         `gorm:"primarykey;size:36" json:"id"`
	UserID      string         `gorm:"not null;index" json:"user_id"`
	FileName    string         `gorm:"not null" json:"file_name"`
	DownloadURL string         `gorm:"not null" json:"download_url"`
	Status      string         `gorm:"not null;default:uploaded" json:"status"` // "uploaded", "analyzed"
	Analysis    *AtsAnalysis   `gorm:"type:text" json:"analysis,omitempty"`
	UploadedAt  time.Time      `gorm:"not null" json:"uploaded_at"`
	AnalyzedAt  *time.Time     `json:"analyzed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// AtsAnalysis is the ATS-compatibility report produced by the analyzer service.
type AtsAnalysis struct {
	OverallScore     int               `json:"overall_score"`
	Categories       map[string]int    `json:"categories"`
	Strengths        []string          `json:"strengths"`
	Improvements     []AtsImprovement  `json:"improvements"`
	KeywordAnalysis  AtsKeywordSummary `json:"keyword_analysis"`
	AtsCompatibility AtsCompatibility  `json:"ats_compatibility"`
}

type AtsImprovement struct {
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Severity   string `json:"severity"` // "high", "medium", "low"
}

type AtsKeywordSummary struct {
	Missing     []string `json:"missing"`
	Present     []string `json:"present"`
	Recommended []string `json:"recommended"`
}

type AtsCompatibility struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

func (a AtsAnalysis) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *AtsAnalysis) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported type %T for AtsAnalysis", value)
	}
}
