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

func createCatalogTables(t *testing.T, db *gorm.DB) {
	for _, table := range []string{"account_types", "card_schemes", "sim_schemes"} {
		mustExec(t, db, `CREATE TABLE `+table+` (
			id TEXT PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			created_at DATETIME
		);`)
	}
}

func createUserAccessTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE user_access (
		id TEXT PRIMARY KEY,
		email_or_phone TEXT UNIQUE NOT NULL,
		secret TEXT NOT NULL,
		account_type_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		user_access_id TEXT NOT NULL,
		legal_name TEXT UNIQUE NOT NULL,
		national_id TEXT UNIQUE NOT NULL,
		date_of_birth DATETIME,
		address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWalletAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallet_accounts (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		account_type_id TEXT NOT NULL,
		account_number TEXT UNIQUE NOT NULL,
		card_scheme_id TEXT,
		sim_scheme_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		CHECK ((card_scheme_id IS NULL) <> (sim_scheme_id IS NULL))
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	createCatalogTables(t, db)
	createUserAccessTable(t, db)
	createProfileTable(t, db)
	createWalletAccountTable(t, db)
}
