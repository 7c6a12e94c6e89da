package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// GetProfileIDBySubject resolves the nurse profile row id for an external
// subject (auth) id. Returns ErrNotFound when no profile exists yet.
func (s *Store) GetProfileIDBySubject(ctx context.Context, subjectID string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM nurse_profiles WHERE subject_id = $1`, subjectID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return uuid.UUID{}, ErrNotFound
	}
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("get profile by subject: %w", err)
	}
	return id, nil
}

// FillEmptyProfileFields populates bio, address, graduation_year, and
// years_of_experience only where the existing column is currently empty —
// an upload never overwrites a value the nurse already entered by hand.
func (s *Store) FillEmptyProfileFields(ctx context.Context, profileID uuid.UUID, bio, address string, graduationYear *int, yearsOfExperience int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE nurse_profiles SET
			bio = CASE WHEN bio IS NULL OR bio = '' THEN NULLIF($2, '') ELSE bio END,
			address = CASE WHEN address IS NULL OR address = '' THEN NULLIF($3, '') ELSE address END,
			graduation_year = CASE WHEN graduation_year IS NULL THEN $4 ELSE graduation_year END,
			years_of_experience = CASE WHEN years_of_experience IS NULL OR years_of_experience = 0 THEN $5 ELSE years_of_experience END
		WHERE id = $1`,
		profileID, bio, address, graduationYear, yearsOfExperience,
	)
	return wrapWriteErr("fill empty profile fields", err)
}
