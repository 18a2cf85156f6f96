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

// DepositRepository implements deposit data operations
type DepositRepository struct {
	db *gorm.DB
}

// NewDepositRepository creates a new deposit repository
func NewDepositRepository(db *gorm.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

// Create creates a new deposit
func (r *DepositRepository) Create(ctx context.Context, deposit *entities.Deposit) error {
	if deposit.ID == uuid.Nil {
		deposit.ID = uuid.New()
	}
	m := &models.Deposit{
		ID:        deposit.ID,
		UserID:    deposit.UserID,
		Amount:    deposit.Amount,
		Network:   deposit.Network,
		TxHash:    deposit.TxHash,
		Status:    string(deposit.Status),
		CreatedAt: deposit.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a deposit by ID
func (r *DepositRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Deposit, error) {
	var m models.Deposit
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toDepositEntity(&m), nil
}

// ListByUser returns a user's deposits, newest first
func (r *DepositRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error) {
	var rows []models.Deposit
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDepositEntities(rows), nil
}

// EarliestApproved returns the oldest approved deposit for a user
func (r *DepositRepository) EarliestApproved(ctx context.Context, userID uuid.UUID) (*entities.Deposit, error) {
	var m models.Deposit
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entities.DepositStatusApproved)).
		Order("created_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toDepositEntity(&m), nil
}

// UpdateStatus sets a deposit's status. It never transitions a deposit
// out of approved; attempting to returns entities.ErrAlreadyApplied.
func (r *DepositRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.DepositStatus) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	// approved is terminal, so the UPDATE refuses to touch approved rows.
	// Two concurrent approvals both reading pending then race this guard;
	// the loser matches zero rows and its transaction rolls back without
	// crediting.
	result := db.Model(&models.Deposit{}).
		Where("id = ? AND status <> ?", id, string(entities.DepositStatusApproved)).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing deposit from an already-approved one.
		var count int64
		if err := db.Model(&models.Deposit{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return entities.ErrAlreadyApplied
	}
	return nil
}

// List lists all deposits, newest first
func (r *DepositRepository) List(ctx context.Context) ([]*entities.Deposit, error) {
	var rows []models.Deposit
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDepositEntities(rows), nil
}

// CountByStatus counts deposits in a given status
func (r *DepositRepository) CountByStatus(ctx context.Context, status entities.DepositStatus) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Deposit{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

// UserIDsWithApproved returns the distinct owners of approved deposits
func (r *DepositRepository) UserIDsWithApproved(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Deposit{}).
		Where("status = ?", string(entities.DepositStatusApproved)).
		Distinct("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func toDepositEntity(m *models.Deposit) *entities.Deposit {
	return &entities.Deposit{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Network:   m.Network,
		TxHash:    m.TxHash,
		Status:    entities.DepositStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func toDepositEntities(rows []models.Deposit) []*entities.Deposit {
	out := make([]*entities.Deposit, 0, len(rows))
	for i := range rows {
		out = append(out, toDepositEntity(&rows[i]))
	}
	return out
}
