package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/middleware"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/response"
	"github.com/Gitau-joseph/projectz/internal/usecases"
	"github.com/Gitau-joseph/projectz/pkg/logger"
	"go.uber.org/zap"
)

// AdminHandler handles the review and ledger-adjustment endpoints
type AdminHandler struct {
	authUsecase    *usecases.AuthUsecase
	kycUsecase     *usecases.KYCUsecase
	depositUsecase *usecases.DepositUsecase
	ledgerUsecase  *usecases.LedgerUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	authUsecase *usecases.AuthUsecase,
	kycUsecase *usecases.KYCUsecase,
	depositUsecase *usecases.DepositUsecase,
	ledgerUsecase *usecases.LedgerUsecase,
) *AdminHandler {
	return &AdminHandler{
		authUsecase:    authUsecase,
		kycUsecase:     kycUsecase,
		depositUsecase: depositUsecase,
		ledgerUsecase:  ledgerUsecase,
	}
}

// ListUsers returns all users, optionally filtered by a username or
// email substring.
// GET /api/v1/admin/users?search=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.ledgerUsecase.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ListKYC returns every KYC submission for review.
// GET /api/v1/admin/kyc
func (h *AdminHandler) ListKYC(c *gin.Context) {
	submissions, err := h.kycUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submissions": submissions})
}

// ReviewKYC approves or rejects a submission and mirrors the outcome
// onto the user record.
// POST /api/v1/admin/kyc/:id/review
func (h *AdminHandler) ReviewKYC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid submission ID"))
		return
	}

	var input struct {
		Status entities.KYCStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	submission, err := h.kycUsecase.Review(c.Request.Context(), id, input.Status)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidReviewStatus) {
			response.Error(c, domainerrors.BadRequest("status must be approved or rejected"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    "Submission reviewed",
		"submission": submission,
	})
}

// ListDeposits returns every deposit claim for review.
// GET /api/v1/admin/deposits
func (h *AdminHandler) ListDeposits(c *gin.Context) {
	deposits, err := h.depositUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deposits": deposits})
}

// ApproveDeposit marks a deposit approved and credits the depositor.
// Repeating the call is harmless; the balance is credited exactly once.
// POST /api/v1/admin/deposits/:id/approve
func (h *AdminHandler) ApproveDeposit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid deposit ID"))
		return
	}

	deposit, alreadyApplied, err := h.depositUsecase.Approve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if alreadyApplied {
		response.Success(c, http.StatusOK, gin.H{
			"message": "Deposit was already approved",
			"deposit": deposit,
		})
		return
	}

	middleware.DepositsApprovedTotal.Inc()
	logger.Info(c.Request.Context(), "deposit approved",
		zap.String("deposit_id", id.String()),
		zap.String("user_id", deposit.UserID.String()),
		zap.Float64("amount", deposit.Amount))

	response.Success(c, http.StatusOK, gin.H{
		"message": "Deposit approved and credited",
		"deposit": deposit,
	})
}

// RejectDeposit marks a deposit rejected without touching balances. An
// approved deposit stays approved; its credit is already on the books.
// POST /api/v1/admin/deposits/:id/reject
func (h *AdminHandler) RejectDeposit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid deposit ID"))
		return
	}

	deposit, err := h.depositUsecase.Reject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrAlreadyApplied) {
			response.Error(c, domainerrors.Conflict("Deposit is already approved and cannot be rejected"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Deposit rejected",
		"deposit": deposit,
	})
}

// CreditUser increases a user's balance by a manual adjustment. Lifetime
// deposit totals are left untouched.
// POST /api/v1/admin/users/:id/credit
func (h *AdminHandler) CreditUser(c *gin.Context) {
	h.adjust(c, h.ledgerUsecase.Credit, "Balance credited")
}

// DebitUser decreases a user's balance and records the amount as withdrawn.
// POST /api/v1/admin/users/:id/debit
func (h *AdminHandler) DebitUser(c *gin.Context) {
	h.adjust(c, h.ledgerUsecase.Debit, "Balance debited")
}

func (h *AdminHandler) adjust(c *gin.Context, op func(ctx context.Context, userID uuid.UUID, amount float64) error, message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	var input entities.AdjustmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := op(c.Request.Context(), id, input.Amount); err != nil {
		response.Error(c, err)
		return
	}

	adminID, _ := middleware.GetUserID(c)
	logger.Info(c.Request.Context(), "manual balance adjustment",
		zap.String("admin_id", adminID.String()),
		zap.String("user_id", id.String()),
		zap.Float64("amount", input.Amount))

	response.Success(c, http.StatusOK, gin.H{"message": message})
}

// Stats returns platform-wide aggregates.
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.ledgerUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
