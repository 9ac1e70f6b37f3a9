package models

import (
	"cessao-fidc/internal/dashboard"
	"cessao-fidc/internal/model"
)

// NotificationResponse wraps the toast an action produced.
type NotificationResponse struct {
	Notification model.Notification `json:"notification"`
}

// StatisticsResponse is the statistics panel payload.
type StatisticsResponse struct {
	Simulation model.SimulationID `json:"simulation"`
	Statistics *model.Statistics  `json:"statistics"`
	Charts     map[string]string  `json:"charts"`
}

// ResultsResponse is the results panel payload.
type ResultsResponse struct {
	Simulation      model.SimulationID     `json:"simulation"`
	Results         *model.CriteriaResults `json:"results"`
	TotalRejections int                    `json:"total_rejections"`
}

// DownloadsResponse is the downloads panel payload.
type DownloadsResponse struct {
	Simulation model.SimulationID        `json:"simulation"`
	Options    []DownloadOptionInfo      `json:"options"`
	Summary    dashboard.DownloadSummary `json:"summary"`
	History    []model.DownloadRecord    `json:"history"`
	Pending    int                       `json:"pending"`
}

// DownloadOptionInfo is one report checkbox.
type DownloadOptionInfo struct {
	ID          model.DownloadOptionID `json:"id"`
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
	Checked     bool                   `json:"checked"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewError builds the error envelope.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
