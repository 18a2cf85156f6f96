package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/infrastructure/models"
)

// KYCRepository implements KYC submission data operations
type KYCRepository struct {
	db *gorm.DB
}

// NewKYCRepository creates a new KYC repository
func NewKYCRepository(db *gorm.DB) *KYCRepository {
	return &KYCRepository{db: db}
}

// Create creates a new KYC submission
func (r *KYCRepository) Create(ctx context.Context, submission *entities.KYCSubmission) error {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	m := &models.KYCSubmission{
		ID:           submission.ID,
		UserID:       submission.UserID,
		FullName:     submission.FullName,
		IDNumber:     submission.IDNumber,
		DocumentPath: submission.DocumentPath,
		Status:       string(submission.Status),
		CreatedAt:    submission.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a submission by ID
func (r *KYCRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.KYCSubmission, error) {
	var m models.KYCSubmission
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toKYCEntity(&m), nil
}

// LatestByUser returns the most recent submission for a user
func (r *KYCRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (*entities.KYCSubmission, error) {
	var m models.KYCSubmission
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toKYCEntity(&m), nil
}

// UpdateStatus sets a submission's review status
func (r *KYCRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.KYCSubmission{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all submissions, newest first
func (r *KYCRepository) List(ctx context.Context) ([]*entities.KYCSubmission, error) {
	var rows []models.KYCSubmission
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.KYCSubmission, 0, len(rows))
	for i := range rows {
		out = append(out, toKYCEntity(&rows[i]))
	}
	return out, nil
}

// CountByStatus counts submissions in a given status
func (r *KYCRepository) CountByStatus(ctx context.Context, status entities.KYCStatus) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.KYCSubmission{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

func toKYCEntity(m *models.KYCSubmission) *entities.KYCSubmission {
	return &entities.KYCSubmission{
		ID:           m.ID,
		UserID:       m.UserID,
		FullName:     m.FullName,
		IDNumber:     m.IDNumber,
		DocumentPath: m.DocumentPath,
		Status:       entities.KYCStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}
