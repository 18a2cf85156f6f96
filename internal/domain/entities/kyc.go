package entities

import (
	"time"

	"github.com/google/uuid"
)

// KYCSubmission represents one identity-verification attempt. A user may
// submit several over time; only the latest one drives the user's displayed
// kyc_status, which is written redundantly onto User at review time.
type KYCSubmission struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	FullName     string    `json:"fullName"`
	IDNumber     string    `json:"idNumber"`
	DocumentPath string    `json:"documentPath"`
	Status       KYCStatus `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Review transitions a pending submission to the given terminal status and
// reports the kyc_status that must be mirrored onto the owning user.
func (s *KYCSubmission) Review(status KYCStatus) (KYCStatus, error) {
	if status != KYCApproved && status != KYCRejected {
		return "", ErrInvalidReviewStatus
	}
	s.Status = status
	return status, nil
}
