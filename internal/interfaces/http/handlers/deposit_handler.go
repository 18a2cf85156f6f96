package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/middleware"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/response"
	"github.com/Gitau-joseph/projectz/internal/usecases"
	"github.com/Gitau-joseph/projectz/pkg/qr"
)

// DepositHandler handles deposit endpoints
type DepositHandler struct {
	depositUsecase *usecases.DepositUsecase
}

// NewDepositHandler creates a new deposit handler
func NewDepositHandler(depositUsecase *usecases.DepositUsecase) *DepositHandler {
	return &DepositHandler{depositUsecase: depositUsecase}
}

// Submit records a pending deposit claim for admin review.
// POST /api/v1/deposits
func (h *DepositHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateDepositInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	deposit, err := h.depositUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Deposit submitted and pending confirmation",
		"deposit": deposit,
	})
}

// Address returns the custody address the caller should deposit to.
// GET /api/v1/deposits/address
func (h *DepositHandler) Address(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	view, err := h.depositUsecase.DepositAddress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// AddressQR renders the custody address as a PNG QR code.
// GET /api/v1/deposits/address/qr?size=256
func (h *DepositHandler) AddressQR(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	view, err := h.depositUsecase.DepositAddress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	size := qr.DefaultSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 64 || parsed > 1024 {
			response.Error(c, domainerrors.BadRequest("size must be between 64 and 1024"))
			return
		}
		size = parsed
	}

	png, err := qr.EncodePNG(view.Address, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// List returns the caller's deposits, newest first.
// GET /api/v1/deposits
func (h *DepositHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	deposits, err := h.depositUsecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deposits": deposits})
}
