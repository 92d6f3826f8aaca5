// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fireplan/backend/internal/application/usecase/insight"
	domainerror "github.com/fireplan/backend/internal/domain/error"
	"github.com/fireplan/backend/internal/domain/valueobject"
	"github.com/fireplan/backend/internal/integration/entrypoint/dto"
	"github.com/fireplan/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles AI insight endpoints.
type InsightController struct {
	generateUseCase *insight.GenerateInsightsUseCase
	getUseCase      *insight.GetInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	generateUseCase *insight.GenerateInsightsUseCase,
	getUseCase *insight.GetInsightUseCase,
) *InsightController {
	return &InsightController{
		generateUseCase: generateUseCase,
		getUseCase:      getUseCase,
	}
}

// Generate handles POST /insights requests.
func (c *InsightController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.GenerateInsightsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	month, err := valueobject.ParseMonth(req.Month)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format. Use YYYY-MM or \"all\"",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightsInput{
		UserID:  userID,
		Month:   month,
		Refresh: req.Refresh,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightResponse(output.Insight, output.Cached))
}

// Get handles GET /insights requests. The month query parameter selects the
// month; it defaults to "all".
func (c *InsightController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	month := valueobject.AllMonths()
	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := valueobject.ParseMonth(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format. Use YYYY-MM or \"all\"",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		month = parsed
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), insight.GetInsightInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightResponse(output.Insight, true))
}

// handleInsightError maps insight errors to HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		ctx.JSON(c.getStatusCodeForInsightError(insightErr.Code), dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInsightError maps insight error codes to HTTP status codes.
func (c *InsightController) getStatusCodeForInsightError(code domainerror.InsightErrorCode) int {
	switch code {
	case domainerror.ErrCodeInsightNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNoEntriesForMonth:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeAIUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeAIGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
