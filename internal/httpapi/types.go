package httpapi

import (
	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/skills"
)

type extractReq struct {
	Text string `json:"text" validate:"max=200000"`
}

type extractResp struct {
	Skills  []string `json:"skills"`
	Display []string `json:"display"`
}

type vocabularyResp struct {
	Terms      []string               `json:"terms"`
	Exclusions []skills.ExclusionRule `json:"exclusions"`
}

type frequencyResp struct {
	Entries           []skills.FrequencyEntry `json:"entries"`
	SortedSkills      []string                `json:"sortedSkills"`
	SortedFrequencies []int                   `json:"sortedFrequencies"`
}

type jobSkillsResp struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Skills  []string `json:"skills"`
}

type suggestedResp struct {
	Skills []string `json:"skills"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
}

type createUserReq struct {
	Name   string           `json:"name" validate:"required,max=200"`
	Email  string           `json:"email" validate:"required,email"`
	Skills skills.SkillList `json:"skills"`
}

type putSkillsReq struct {
	Skills skills.SkillList `json:"skills"`
}

type createJobReq struct {
	Company      string           `json:"company" validate:"required,max=300"`
	Title        string           `json:"title" validate:"required,max=300"`
	Description  string           `json:"description"`
	Industry     string           `json:"industry" validate:"max=200"`
	Location     string           `json:"location" validate:"max=300"`
	WorkLocation string           `json:"workLocation" validate:"max=100"`
	Status       domain.JobStatus `json:"status" validate:"omitempty,oneof=saved applied interview offer rejected"`
	PostURL      string           `json:"postUrl" validate:"omitempty,url"`
}

type patchJobReq struct {
	Status       *domain.JobStatus `json:"status" validate:"omitempty,oneof=saved applied interview offer rejected"`
	Description  *string           `json:"description"`
	Location     *string           `json:"location" validate:"omitempty,max=300"`
	WorkLocation *string           `json:"workLocation" validate:"omitempty,max=100"`
	PostURL      *string           `json:"postUrl" validate:"omitempty,url"`
}

type createRejectionReq struct {
	JobID int64  `json:"jobId" validate:"required,gt=0"`
	Notes string `json:"notes" validate:"max=5000"`
}
