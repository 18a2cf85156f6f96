package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDeposit_ApproveProducesCreditOnce(t *testing.T) {
	d := &Deposit{ID: uuid.New(), UserID: uuid.New(), Amount: 250, Status: DepositStatusPending}

	credit, err := d.Approve()
	require.NoError(t, err)
	require.Equal(t, DepositStatusApproved, d.Status)
	require.Equal(t, d.UserID, credit.UserID)
	require.InDelta(t, 250, credit.Amount, 1e-9)

	// Second approval is a no-op: no new credit instruction.
	credit, err = d.Approve()
	require.ErrorIs(t, err, ErrAlreadyApplied)
	require.Nil(t, credit)
	require.Equal(t, DepositStatusApproved, d.Status)
}

func TestDeposit_ApproveAfterReject(t *testing.T) {
	d := &Deposit{ID: uuid.New(), UserID: uuid.New(), Amount: 100, Status: DepositStatusPending}

	require.NoError(t, d.Reject())
	require.Equal(t, DepositStatusRejected, d.Status)

	// A rejected deposit can still be approved on re-review and credits
	// normally.
	credit, err := d.Approve()
	require.NoError(t, err)
	require.NotNil(t, credit)
	require.Equal(t, DepositStatusApproved, d.Status)
}

func TestDeposit_RejectIsIdempotent(t *testing.T) {
	d := &Deposit{ID: uuid.New(), UserID: uuid.New(), Amount: 100, Status: DepositStatusPending}

	require.NoError(t, d.Reject())
	require.NoError(t, d.Reject())
	require.Equal(t, DepositStatusRejected, d.Status)
}

func TestDeposit_RejectAfterApprove(t *testing.T) {
	d := &Deposit{ID: uuid.New(), UserID: uuid.New(), Amount: 50, Status: DepositStatusPending}

	credit, err := d.Approve()
	require.NoError(t, err)
	require.NotNil(t, credit)

	// approved is terminal. If rejecting were allowed here, a later
	// re-approval would hand out a second credit for the same deposit.
	require.ErrorIs(t, d.Reject(), ErrAlreadyApplied)
	require.Equal(t, DepositStatusApproved, d.Status)

	credit, err = d.Approve()
	require.ErrorIs(t, err, ErrAlreadyApplied)
	require.Nil(t, credit)
}
