package usecases

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	"github.com/Gitau-joseph/projectz/internal/domain/repositories"
	"github.com/Gitau-joseph/projectz/internal/domain/services"
)

// KYCUsecase handles identity-verification submissions and their review
type KYCUsecase struct {
	kycRepo  repositories.KYCRepository
	userRepo repositories.UserRepository
	docs     services.DocumentStore
	uow      repositories.UnitOfWork
}

// NewKYCUsecase creates a new KYC usecase
func NewKYCUsecase(
	kycRepo repositories.KYCRepository,
	userRepo repositories.UserRepository,
	docs services.DocumentStore,
	uow repositories.UnitOfWork,
) *KYCUsecase {
	return &KYCUsecase{
		kycRepo:  kycRepo,
		userRepo: userRepo,
		docs:     docs,
		uow:      uow,
	}
}

// Submit stores the uploaded document, records a pending submission and
// resets the user's displayed kyc_status to pending. A new submission
// always supersedes earlier ones for display.
func (u *KYCUsecase) Submit(ctx context.Context, userID uuid.UUID, fullName, idNumber, filename string, document io.Reader) (*entities.KYCSubmission, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	path, err := u.docs.Save(ctx, userID.String(), filename, document)
	if err != nil {
		return nil, err
	}

	submission := &entities.KYCSubmission{
		ID:           uuid.New(),
		UserID:       userID,
		FullName:     fullName,
		IDNumber:     idNumber,
		DocumentPath: path,
		Status:       entities.KYCPending,
		CreatedAt:    time.Now(),
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.kycRepo.Create(ctx, submission); err != nil {
			return err
		}
		return u.userRepo.UpdateKYCStatus(ctx, userID, entities.KYCPending)
	})
	if err != nil {
		return nil, err
	}
	return submission, nil
}

// Latest returns a user's most recent submission
func (u *KYCUsecase) Latest(ctx context.Context, userID uuid.UUID) (*entities.KYCSubmission, error) {
	return u.kycRepo.LatestByUser(ctx, userID)
}

// Review sets a submission's status and mirrors it onto the owning user's
// kyc_status, atomically. status must be approved or rejected.
func (u *KYCUsecase) Review(ctx context.Context, id uuid.UUID, status entities.KYCStatus) (*entities.KYCSubmission, error) {
	submission, err := u.kycRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mirrored, err := submission.Review(status)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.kycRepo.UpdateStatus(ctx, id, submission.Status); err != nil {
			return err
		}
		return u.userRepo.UpdateKYCStatus(ctx, submission.UserID, mirrored)
	})
	if err != nil {
		return nil, err
	}
	return submission, nil
}

// List returns all submissions, newest first (admin review queue)
func (u *KYCUsecase) List(ctx context.Context) ([]*entities.KYCSubmission, error) {
	return u.kycRepo.List(ctx)
}
