// Package postgres implements the pipeline's MetadataStore collaborator
// against a Postgres database as a single Store type, with one file of
// methods per entity: nurse_profiles (whose array columns also hold skills
// and hospitals), nurse_experience, nurse_education, nurse_certifications,
// and resumes.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a write violates a uniqueness constraint —
// Postgres error code 23505, per the pipeline's error taxonomy.
var ErrConflict = errors.New("conflict")

// Store is the Postgres-backed MetadataStore implementation.
type Store struct {
	db *sql.DB
}

// New wraps an already-opened *sql.DB.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// wrapWriteErr maps a uniqueness-conflict error to ErrConflict, per the
// spec's code 23505 -> Conflict mapping; anything else is wrapped plainly.
func wrapWriteErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// parseUUID parses a subject/profile id that arrives as a string, wrapping
// the parse error with the offending value. No method of Store calls it.
func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}
