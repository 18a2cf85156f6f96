package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/middleware"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/response"
	"github.com/Gitau-joseph/projectz/internal/usecases"
)

// DashboardHandler serves the account overview
type DashboardHandler struct {
	ledgerUsecase *usecases.LedgerUsecase
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(ledgerUsecase *usecases.LedgerUsecase) *DashboardHandler {
	return &DashboardHandler{ledgerUsecase: ledgerUsecase}
}

// Get returns balances, lifetime totals and the deposit list with
// accrued interest computed as of the request.
// GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	view, err := h.ledgerUsecase.Dashboard(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}
