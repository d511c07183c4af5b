package controller

import (
	"errors"
	"net/http"

	"log-analyzer/internal/dto"
	"log-analyzer/internal/model"
	"log-analyzer/internal/parser"
	"log-analyzer/internal/service"
	"log-analyzer/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LogController struct {
	logQueryService service.LogQueryService
}

func NewLogController(logQueryService service.LogQueryService) *LogController {
	return &LogController{
		logQueryService: logQueryService,
	}
}

func RegisterLogRoutes(router *gin.Engine, controller *LogController) {
	v1 := router.Group("/api/v1/logs")
	{
		v1.GET("", controller.GetLogs)
		v1.GET("/count", controller.CountLogs)
		v1.POST("/export", controller.ExportLogs)
	}
}

// GetLogs godoc
// @Summary      Search log records
// @Description  Returns the records of a configured source whose message contains the query, optionally limited to [startTime, endTime].
// @Tags         logs
// @Produce      json
// @Param        source     query     string  true   "Path of a configured log source"
// @Param        query      query     string  false  "Case-sensitive substring of the message"
// @Param        startTime  query     string  false  "Start time in ISO 8601 format (e.g., 2023-04-29T09:00:00Z) or epoch milliseconds"
// @Param        endTime    query     string  false  "End time in ISO 8601 format (e.g., 2023-04-29T10:00:00Z) or epoch milliseconds"
// @Success      200        {object}  dto.LogSearchResponse "Matching records"
// @Failure      400        {object}  model.Response "Invalid query parameters"
// @Failure      404        {object}  model.Response "Unknown or missing source"
// @Failure      422        {object}  model.Response "Unparseable timestamp in source"
// @Failure      500        {object}  model.Response "Internal server error"
// @Router       /api/v1/logs [get]
func (c *LogController) GetLogs(ctx *gin.Context) {
	req, ok := bindSearchRequest(ctx)
	if !ok {
		return
	}

	result, err := c.logQueryService.SearchLogs(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to search logs")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CountLogs godoc
// @Summary      Count log records
// @Description  Counts the records of a configured source whose message contains the query.
// @Tags         logs
// @Produce      json
// @Param        source     query     string  true   "Path of a configured log source"
// @Param        query      query     string  false  "Case-sensitive substring of the message"
// @Param        startTime  query     string  false  "Start time in ISO 8601 format or epoch milliseconds"
// @Param        endTime    query     string  false  "End time in ISO 8601 format or epoch milliseconds"
// @Success      200        {object}  dto.LogCountResponse "Number of matching records"
// @Failure      400        {object}  model.Response "Invalid query parameters"
// @Failure      404        {object}  model.Response "Unknown or missing source"
// @Failure      422        {object}  model.Response "Unparseable timestamp in source"
// @Failure      500        {object}  model.Response "Internal server error"
// @Router       /api/v1/logs/count [get]
func (c *LogController) CountLogs(ctx *gin.Context) {
	req, ok := bindSearchRequest(ctx)
	if !ok {
		return
	}

	result, err := c.logQueryService.CountLogs(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to count logs")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ExportLogs godoc
// @Summary      Export log records
// @Description  Writes every record (empty query) or the matching records to CSV, or XLSX when path ends in .xlsx. The file is kept in the export directory or beside the source.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LogExportRequest  true  "Export request"
// @Success      200      {object}  dto.LogExportResponse "Destination and number of exported records"
// @Failure      400      {object}  model.Response "Invalid export request"
// @Failure      404      {object}  model.Response "Unknown or missing source"
// @Failure      422      {object}  model.Response "Unparseable timestamp in source"
// @Failure      500      {object}  model.Response "Internal server error"
// @Router       /api/v1/logs/export [post]
func (c *LogController) ExportLogs(ctx *gin.Context) {
	var req dto.LogExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid export request: "+err.Error(), nil))
		return
	}

	result, err := c.logQueryService.ExportLogs(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to export logs")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func bindSearchRequest(ctx *gin.Context) (dto.LogSearchRequest, bool) {
	req := dto.LogSearchRequest{
		Source: ctx.Query("source"),
		Query:  ctx.Query("query"),
	}
	if req.Source == "" {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("source is required", nil))
		return req, false
	}

	var err error
	if s := ctx.Query("startTime"); s != "" {
		if req.StartTime, err = util.ParseTimeFlexible(s); err != nil {
			ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid startTime format.", nil))
			return req, false
		}
	}
	if s := ctx.Query("endTime"); s != "" {
		if req.EndTime, err = util.ParseTimeFlexible(s); err != nil {
			ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid endTime format.", nil))
			return req, false
		}
	}
	return req, true
}

func respondError(ctx *gin.Context, err error, msg string) {
	var (
		nfErr    *parser.NotFoundError
		parseErr *parser.ParseError
	)
	switch {
	case errors.Is(err, service.ErrInvalidTimeRange):
		ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
	case errors.Is(err, service.ErrUnknownSource), errors.As(err, &nfErr):
		ctx.JSON(http.StatusNotFound, model.NewResponse(err.Error(), nil))
	case errors.As(err, &parseErr):
		ctx.JSON(http.StatusUnprocessableEntity, model.NewResponse(err.Error(), nil))
	default:
		log.Error().Err(err).Msg(msg)
		ctx.JSON(http.StatusInternalServerError, model.NewResponse(msg, nil))
	}
}
