package domain

import (
	"strings"
	"time"
)

type JobStatus string

const (
	StatusSaved     JobStatus = "saved"
	StatusApplied   JobStatus = "applied"
	StatusInterview JobStatus = "interview"
	StatusOffer     JobStatus = "offer"
	StatusRejected  JobStatus = "rejected"
)

func (s JobStatus) Valid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Job is a tracked application. Description is plain text; HTML is
// converted before it reaches the store.
type Job struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Company      string    `json:"company"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Industry     string    `json:"industry"`
	Location     string    `json:"location"`
	WorkLocation string    `json:"workLocation"` // Remote/Hybrid/Onsite/Unknown
	Status       JobStatus `json:"status"`
	PostURL      string    `json:"postUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NormalizeWorkLocation(mode string) string {
	m := strings.ToLower(strings.TrimSpace(mode))
	switch {
	case strings.Contains(m, "remote"):
		return "Remote"
	case strings.Contains(m, "hybrid"):
		return "Hybrid"
	case strings.Contains(m, "on-site") || strings.Contains(m, "onsite") || strings.Contains(m, "on site"):
		return "Onsite"
	case m == "":
		return "Unknown"
	default:
		return strings.TrimSpace(mode)
	}
}
