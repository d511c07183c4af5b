package main

import "log-analyzer/internal/cli"

// @title           Log Analyzer API
// @version         1.0
// @description     Search, count and export timestamped log files configured in LOG_SOURCES.

// @host      localhost:8080
// @BasePath  /
// @schemes   http

// @tag.name         logs
// @tag.description  Search, count and export log records
func main() {
	cli.Execute()
}
