package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
)

// KYCRepository defines KYC submission data operations
type KYCRepository interface {
	Create(ctx context.Context, submission *entities.KYCSubmission) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.KYCSubmission, error)
	// LatestByUser returns the most recent submission for a user, or
	// ErrNotFound when the user never submitted.
	LatestByUser(ctx context.Context, userID uuid.UUID) (*entities.KYCSubmission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error
	List(ctx context.Context) ([]*entities.KYCSubmission, error)
	CountByStatus(ctx context.Context, status entities.KYCStatus) (int64, error)
}
