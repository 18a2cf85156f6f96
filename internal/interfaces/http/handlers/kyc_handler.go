package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/middleware"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/response"
	"github.com/Gitau-joseph/projectz/internal/usecases"
)

// maxKYCDocumentSize caps the uploaded identity document at 8 MiB.
const maxKYCDocumentSize = 8 << 20

// KYCHandler handles identity verification endpoints
type KYCHandler struct {
	kycUsecase *usecases.KYCUsecase
}

// NewKYCHandler creates a new KYC handler
func NewKYCHandler(kycUsecase *usecases.KYCUsecase) *KYCHandler {
	return &KYCHandler{kycUsecase: kycUsecase}
}

// Submit accepts a multipart form with full_name, id_number and a
// document file, stores the document and queues the submission for review.
// POST /api/v1/kyc
func (h *KYCHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	fullName := c.PostForm("full_name")
	idNumber := c.PostForm("id_number")
	if fullName == "" || idNumber == "" {
		response.Error(c, domainerrors.BadRequest("full_name and id_number are required"))
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("document file is required"))
		return
	}
	if fileHeader.Size > maxKYCDocumentSize {
		response.Error(c, domainerrors.BadRequest("document exceeds the 8MB size limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	submission, err := h.kycUsecase.Submit(c.Request.Context(), userID, fullName, idNumber, fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    "KYC submitted and pending review",
		"submission": submission,
	})
}

// Latest returns the caller's most recent submission, if any.
// GET /api/v1/kyc
func (h *KYCHandler) Latest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	submission, err := h.kycUsecase.Latest(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Success(c, http.StatusOK, gin.H{"submission": nil})
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}
