package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/middleware"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/response"
	"github.com/Gitau-joseph/projectz/internal/usecases"
)

// WithdrawalHandler handles withdrawal endpoints
type WithdrawalHandler struct {
	withdrawalUsecase *usecases.WithdrawalUsecase
}

// NewWithdrawalHandler creates a new withdrawal handler
func NewWithdrawalHandler(withdrawalUsecase *usecases.WithdrawalUsecase) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalUsecase: withdrawalUsecase}
}

// Eligibility reports whether the caller can withdraw yet, with a
// user-facing reason when not.
// GET /api/v1/withdrawals/eligibility
func (h *WithdrawalHandler) Eligibility(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	eligibility, err := h.withdrawalUsecase.Eligibility(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, eligibility)
}

// Withdraw debits the caller's balance and submits the payout.
// POST /api/v1/withdrawals
func (h *WithdrawalHandler) Withdraw(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.WithdrawInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	receipt, err := h.withdrawalUsecase.Withdraw(c.Request.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrHoldingPeriod),
			errors.Is(err, domainerrors.ErrNoApprovedDeposits):
			middleware.WithdrawalsTotal.WithLabelValues("ineligible").Inc()
		case errors.Is(err, domainerrors.ErrInsufficientFunds):
			middleware.WithdrawalsTotal.WithLabelValues("insufficient_funds").Inc()
		default:
			middleware.WithdrawalsTotal.WithLabelValues("error").Inc()
		}
		response.Error(c, err)
		return
	}

	middleware.WithdrawalsTotal.WithLabelValues("ok").Inc()
	response.Success(c, http.StatusOK, gin.H{
		"message": "Withdrawal submitted",
		"receipt": receipt,
	})
}
