package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT,
		email TEXT,
		password_hash TEXT,
		balance REAL NOT NULL DEFAULT 0,
		total_deposits REAL NOT NULL DEFAULT 0,
		total_withdrawals REAL NOT NULL DEFAULT 0,
		total_earnings REAL NOT NULL DEFAULT 0,
		kyc_status TEXT NOT NULL DEFAULT 'pending',
		is_admin BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createKYCTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_submissions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		full_name TEXT NOT NULL,
		id_number TEXT NOT NULL,
		document_path TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME
	);`)
}

func createDepositTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE deposits (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		amount REAL NOT NULL,
		network TEXT NOT NULL DEFAULT 'TRC20',
		tx_hash TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME
	);`)
}
