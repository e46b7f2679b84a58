package migration

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func columnNames(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT name FROM pragma_table_info('users') ORDER BY cid`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestUp_AppliesOnlyPendingVersions(t *testing.T) {
	db := openTestDB(t)

	n, err := Up(db)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"id", "username", "password", "vehicle_number", "vehicle_model", "air_fuel_ratio"}, columnNames(t, db))

	n, err = Up(db)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUp_KeepsExistingRows(t *testing.T) {
	db := openTestDB(t)

	// bring the schema to the first version only, as an older deployment would have it
	_, err := Up(db)
	require.NoError(t, err)
	_, err = Down(db, 1)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (username, password) VALUES ('alice', 'secret')`)
	require.NoError(t, err)

	n, err := Up(db)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var vehicleNumber sql.NullString
	require.NoError(t, db.QueryRow(`SELECT vehicle_number FROM users WHERE username = 'alice'`).Scan(&vehicleNumber))
	assert.False(t, vehicleNumber.Valid)
}

func TestList(t *testing.T) {
	db := openTestDB(t)

	_, err := Up(db)
	require.NoError(t, err)
	_, err = Down(db, 1)
	require.NoError(t, err)

	statuses, err := List(db)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "0001_create_users.sql", statuses[0].ID)
	assert.True(t, statuses[0].Applied)
	assert.Equal(t, "0002_add_vehicle_columns.sql", statuses[1].ID)
	assert.False(t, statuses[1].Applied)
}
