// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests obtain a migrated connection with GetTestDB, which skips the test when
// DATABASE_URL is not set, and isolate their writes with WithTx:
//
//	db := testdb.GetTestDB(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		users := postgres.NewUserStore(tx, nil)
//		...
//	})
//
// Every transaction is rolled back when the callback returns, so tests may run
// in parallel against the same database.
package testdb
