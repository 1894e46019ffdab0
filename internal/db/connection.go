package db

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// NewDB initializes a new database connection using sqlx.
func NewDB(dsn string) *sqlx.DB {
	database, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Successfully connected to formation_db")
	return database
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    online BOOLEAN NOT NULL DEFAULT FALSE,
    location TEXT NOT NULL DEFAULT '',
    meet_link TEXT NOT NULL DEFAULT '',
    trainer_id INTEGER NOT NULL DEFAULT 0,
    start_time TIMESTAMPTZ,
    end_time TIMESTAMPTZ,
    published_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS reservations (
    id SERIAL PRIMARY KEY,
    participant_id INTEGER NOT NULL,
    session_id INTEGER NOT NULL REFERENCES sessions (id),
    status TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reservations_participant ON reservations (participant_id);
CREATE INDEX IF NOT EXISTS idx_reservations_session ON reservations (session_id);
`

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(database *sqlx.DB) error {
	_, err := database.Exec(schema)
	return err
}
