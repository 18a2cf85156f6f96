package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
)

func TestKYCRepository_CreateGetLatest(t *testing.T) {
	db := newTestDB(t)
	createKYCTable(t, db)
	repo := NewKYCRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := repo.LatestByUser(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	first := &entities.KYCSubmission{
		ID:           uuid.New(),
		UserID:       userID,
		FullName:     "Alice Example",
		IDNumber:     "ID-001",
		DocumentPath: "uploads/doc1.png",
		Status:       entities.KYCPending,
		CreatedAt:    time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &entities.KYCSubmission{
		ID:        uuid.New(),
		UserID:    userID,
		FullName:  "Alice Example",
		IDNumber:  "ID-001",
		Status:    entities.KYCPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice Example", got.FullName)

	latest, err := repo.LatestByUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID, "newest submission wins")
}

func TestKYCRepository_UpdateStatusListCount(t *testing.T) {
	db := newTestDB(t)
	createKYCTable(t, db)
	repo := NewKYCRepository(db)
	ctx := context.Background()

	sub := &entities.KYCSubmission{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		FullName:  "Bob",
		IDNumber:  "ID-002",
		Status:    entities.KYCPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, sub))

	require.NoError(t, repo.UpdateStatus(ctx, sub.ID, entities.KYCApproved))

	got, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, entities.KYCApproved, got.Status)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	pending, err := repo.CountByStatus(ctx, entities.KYCPending)
	require.NoError(t, err)
	require.EqualValues(t, 0, pending)

	approved, err := repo.CountByStatus(ctx, entities.KYCApproved)
	require.NoError(t, err)
	require.EqualValues(t, 1, approved)

	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.KYCApproved), domainerrors.ErrNotFound)
}
