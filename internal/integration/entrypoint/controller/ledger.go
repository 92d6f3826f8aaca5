// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/usecase/ledger"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
	"github.com/fireplan/backend/internal/domain/valueobject"
	"github.com/fireplan/backend/internal/integration/entrypoint/dto"
	"github.com/fireplan/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles ledger entry endpoints.
type LedgerController struct {
	monthlyViewUseCase *ledger.GetMonthlyViewUseCase
	createUseCase      *ledger.CreateEntryUseCase
	updateUseCase      *ledger.UpdateEntryUseCase
	deleteUseCase      *ledger.DeleteEntryUseCase
	changeRateUseCase  *ledger.ChangeRateUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	monthlyViewUseCase *ledger.GetMonthlyViewUseCase,
	createUseCase *ledger.CreateEntryUseCase,
	updateUseCase *ledger.UpdateEntryUseCase,
	deleteUseCase *ledger.DeleteEntryUseCase,
	changeRateUseCase *ledger.ChangeRateUseCase,
) *LedgerController {
	return &LedgerController{
		monthlyViewUseCase: monthlyViewUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		changeRateUseCase:  changeRateUseCase,
	}
}

// List handles GET /ledger/entries requests. The month query parameter
// selects the view: "YYYY-MM" for a specific month, "all" (the default)
// for the whole ledger.
func (c *LedgerController) List(ctx *gin.Context) {
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

	output, err := c.monthlyViewUseCase.Execute(ctx.Request.Context(), ledger.GetMonthlyViewInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve ledger entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyViewResponse(output))
}

// Create handles POST /ledger/entries requests.
func (c *LedgerController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidEntryDate),
		})
		return
	}

	input := ledger.CreateEntryInput{
		UserID:      userID,
		Kind:        entity.EntryKind(req.Kind),
		Category:    entity.EntryCategory(req.Category),
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
		IsRecurring: req.IsRecurring,
	}

	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// Update handles PATCH /ledger/entries/:id requests.
func (c *LedgerController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := ledger.UpdateEntryInput{
		EntryID:      entryID,
		UserID:       userID,
		ClearEndDate: req.ClearEndDate,
	}

	if req.Kind != nil {
		kind := entity.EntryKind(*req.Kind)
		input.Kind = &kind
	}
	if req.Category != nil {
		category := entity.EntryCategory(*req.Category)
		input.Category = &category
	}
	if req.Description != nil {
		input.Description = req.Description
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.Date = &date
	}
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.EndDate = &endDate
	}
	if req.IsRecurring != nil {
		input.IsRecurring = req.IsRecurring
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /ledger/entries/:id requests.
func (c *LedgerController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ChangeRate handles POST /ledger/entries/:id/change-rate requests.
func (c *LedgerController) ChangeRate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	userEmail, _ := middleware.GetUserEmailFromContext(ctx)

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.ChangeRateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid effective date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidEntryDate),
		})
		return
	}

	output, err := c.changeRateUseCase.Execute(ctx.Request.Context(), ledger.ChangeRateInput{
		EntryID:       entryID,
		UserID:        userID,
		UserEmail:     userEmail,
		NewAmount:     decimal.NewFromFloat(req.NewAmount),
		EffectiveDate: effectiveDate,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChangeRateResponse{
		ClosedEntry: dto.ToEntryResponse(output.ClosedEntry),
		NewEntry:    dto.ToEntryResponse(output.NewEntry),
	})
}

// handleLedgerError maps ledger errors to HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(c.getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func (c *LedgerController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedEntry:
		return http.StatusForbidden
	case domainerror.ErrCodeEntryNotOpenRecurring,
		domainerror.ErrCodeRateChangeTooEarly:
		return http.StatusConflict
	case domainerror.ErrCodeRateChangeCloseFailed,
		domainerror.ErrCodeRateChangePartialFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
