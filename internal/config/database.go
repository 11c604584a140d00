package config

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // pure Go SQLite driver (no CGO)
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SeedExpenseTypes is the default category set inserted exactly once at
// first bootstrap. Deleting one of these later never brings it back.
var SeedExpenseTypes = []string{"Food", "Transport", "Bills", "Leisure", "Other"}

// SetupDatabase initializes the database connection and bootstraps the schema
func SetupDatabase(cfg *Config) (*sqlx.DB, error) {
	driver := cfg.Database.Driver
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// modernc registers itself as "sqlite", which sqlx does not know about.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)

	db, err := sqlx.Connect(driver, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// A single connection keeps writes serialized and makes :memory:
		// databases usable in tests.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}

	if err := Bootstrap(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return db, nil
}

// Bootstrap creates the tables if they don't exist and applies one-time
// seeds. It is idempotent and safe to run on every startup.
func Bootstrap(db *sqlx.DB) error {
	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := seedExpenseTypes(db); err != nil {
		return fmt.Errorf("failed to seed expense types: %w", err)
	}
	return nil
}

// idColumn returns the autoincrement primary key clause for the driver.
func idColumn(driverName string) string {
	if driverName == DriverPostgres {
		return "BIGSERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// createTables creates the necessary tables in the database
func createTables(db *sqlx.DB) error {
	id := idColumn(db.DriverName())

	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS users (
				id %s,
				username TEXT UNIQUE NOT NULL,
				password_hash TEXT NOT NULL,
				first_name TEXT NOT NULL DEFAULT '',
				last_name TEXT NOT NULL DEFAULT ''
			)
		`, id),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS shopping_items (
				id %s,
				user_id BIGINT,
				item TEXT UNIQUE NOT NULL,
				quantity INTEGER NOT NULL DEFAULT 1,
				notes TEXT NOT NULL DEFAULT ''
			)
		`, id),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS expenses (
				id %s,
				user_id BIGINT,
				expense_date TEXT NOT NULL,
				description TEXT NOT NULL,
				amount_cents BIGINT NOT NULL,
				spender TEXT NOT NULL
			)
		`, id),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS activities (
				id %s,
				user_id BIGINT,
				activity_date TEXT NOT NULL,
				activity_time TEXT NOT NULL DEFAULT '00:00',
				description TEXT NOT NULL,
				location TEXT NOT NULL,
				activity_type TEXT NOT NULL
			)
		`, id),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS activity_types (
				id %s,
				description TEXT UNIQUE NOT NULL,
				color TEXT NOT NULL DEFAULT '#000000'
			)
		`, id),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS maintenance_types (
				id %s,
				description TEXT UNIQUE NOT NULL
			)
		`, id),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS expense_types (
				id %s,
				description TEXT UNIQUE NOT NULL
			)
		`, id),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS bike_maintenance (
				id %s,
				user_id BIGINT,
				maintenance_date TEXT NOT NULL,
				description TEXT NOT NULL
			)
		`, id),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS useful_numbers (
				id %s,
				user_id BIGINT,
				description TEXT NOT NULL,
				phone_number TEXT NOT NULL,
				notes TEXT NOT NULL DEFAULT ''
			)
		`, id),
		`
			CREATE TABLE IF NOT EXISTS schema_seeds (
				name TEXT PRIMARY KEY
			)
		`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// seedExpenseTypes inserts the default expense categories on first bootstrap
// only. The marker row in schema_seeds guarantees that a default category
// deleted by a user is never resurrected on restart.
func seedExpenseTypes(db *sqlx.DB) error {
	res, err := db.Exec(
		db.Rebind("INSERT INTO schema_seeds (name) VALUES (?) ON CONFLICT (name) DO NOTHING"),
		"default_expense_types",
	)
	if err != nil {
		return err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if inserted == 0 {
		return nil // already seeded
	}

	stmt := db.Rebind("INSERT INTO expense_types (description) VALUES (?) ON CONFLICT (description) DO NOTHING")
	for _, description := range SeedExpenseTypes {
		if _, err := db.Exec(stmt, description); err != nil {
			return err
		}
	}

	return nil
}
