package dto

import "time"

type LogSearchRequest struct {
	Source    string
	Query     string
	StartTime time.Time
	EndTime   time.Time
}

type LogExportRequest struct {
	Source string `json:"source" binding:"required"`
	Query  string `json:"query"`
	Path   string `json:"path"`
}
