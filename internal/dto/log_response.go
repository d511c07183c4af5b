package dto

import (
	"log-analyzer/internal/model"
)

type LogSearchResponse struct {
	Records    model.LogTable `json:"records"`
	TotalCount int            `json:"totalCount"`
}

type LogCountResponse struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type LogExportResponse struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}
