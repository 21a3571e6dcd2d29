package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createMoviesTable,
		createStudiosTable,
		createStudioSeatsTable,
		createMembershipsTable,
		createSchedulesTable,
		createCartsTable,
		createOrdersTable,
		createOrderSeatsTable,
		createScheduleDateIndex,
		createOrdersTransactionDateIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
    id SERIAL PRIMARY KEY,
    code VARCHAR(20) UNIQUE NOT NULL,
    title VARCHAR(200) NOT NULL,
    genre VARCHAR(100) NOT NULL,
    duration_min INTEGER NOT NULL,
    director VARCHAR(200) NOT NULL,
    rating VARCHAR(10) NOT NULL,
    price INTEGER NOT NULL
);`

const createStudiosTable = `
CREATE TABLE IF NOT EXISTS studios (
    id SERIAL PRIMARY KEY,
    code VARCHAR(20) UNIQUE NOT NULL,
    name VARCHAR(100) NOT NULL,
    row_count INTEGER NOT NULL,
    col_count INTEGER NOT NULL
);`

const createStudioSeatsTable = `
CREATE TABLE IF NOT EXISTS studio_seats (
    id SERIAL PRIMARY KEY,
    studio_id INTEGER NOT NULL REFERENCES studios(id) ON DELETE CASCADE,
    row_letter VARCHAR(3) NOT NULL,
    col_number INTEGER NOT NULL,

    UNIQUE (studio_id, row_letter, col_number)
);`

const createMembershipsTable = `
CREATE TABLE IF NOT EXISTS memberships (
    id SERIAL PRIMARY KEY,
    code VARCHAR(20) UNIQUE NOT NULL,
    name VARCHAR(255) NOT NULL
);`

const createSchedulesTable = `
CREATE TABLE IF NOT EXISTS schedules (
    id SERIAL PRIMARY KEY,
    code VARCHAR(20) UNIQUE NOT NULL,
    movie_id INTEGER NOT NULL REFERENCES movies(id),
    movie_code VARCHAR(20) NOT NULL,
    studio_id INTEGER NOT NULL REFERENCES studios(id),
    studio_code VARCHAR(20) NOT NULL,
    show_date DATE NOT NULL,
    show_time TIME NOT NULL
);`

const createCartsTable = `
CREATE TABLE IF NOT EXISTS carts (
    id SERIAL PRIMARY KEY,
    membership_id INTEGER NOT NULL REFERENCES memberships(id),
    membership_code VARCHAR(20) NOT NULL,
    schedule_id INTEGER NOT NULL REFERENCES schedules(id),
    studio_id INTEGER NOT NULL,
    row_letter VARCHAR(3) NOT NULL,
    col_number INTEGER NOT NULL,
    price INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    UNIQUE (membership_id, schedule_id, row_letter, col_number)
);`

const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
    id SERIAL PRIMARY KEY,
    code VARCHAR(20) UNIQUE NOT NULL,
    membership_id INTEGER NOT NULL,
    membership_code VARCHAR(20) NOT NULL,
    schedule_id INTEGER NOT NULL,
    payment_method VARCHAR(50) NOT NULL,
    seat_count INTEGER NOT NULL,
    promo_name VARCHAR(100) NOT NULL,
    discount INTEGER NOT NULL,
    total_price INTEGER NOT NULL,
    final_price INTEGER NOT NULL,
    cash INTEGER,
    change INTEGER,
    transaction_date TIMESTAMP NOT NULL,
    day_name VARCHAR(10) NOT NULL
);`

// The unique constraint on (schedule_id, row_letter, col_number) is the
// authoritative seat ledger: any second sale of the same seat for the same
// screening fails this constraint regardless of what earlier checks saw.
const createOrderSeatsTable = `
CREATE TABLE IF NOT EXISTS order_seats (
    id SERIAL PRIMARY KEY,
    order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
    schedule_id INTEGER NOT NULL,
    studio_id INTEGER NOT NULL,
    row_letter VARCHAR(3) NOT NULL,
    col_number INTEGER NOT NULL,

    UNIQUE (schedule_id, row_letter, col_number)
);`

const createScheduleDateIndex = `
CREATE INDEX IF NOT EXISTS schedules_show_date_idx
ON schedules (show_date);`

const createOrdersTransactionDateIndex = `
CREATE INDEX IF NOT EXISTS orders_transaction_date_idx
ON orders (transaction_date);`
