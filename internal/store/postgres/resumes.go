package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// PriorResumeBlobPaths returns the blob storage paths of every resume row
// currently on file for a profile, so the pipeline can remove them from
// blob storage before the metadata rows themselves are cleared.
func (s *Store) PriorResumeBlobPaths(ctx context.Context, profileID uuid.UUID) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT file_path FROM resumes WHERE profile_id = $1`, profileID)
	if err != nil {
		return nil, fmt.Errorf("list prior resume blob paths: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan resume blob path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// ClearResumes deletes every resume metadata row for a profile. A résumé
// upload replaces the profile's single current résumé outright.
func (s *Store) ClearResumes(ctx context.Context, profileID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM resumes WHERE profile_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("clear resumes: %w", err)
	}
	return nil
}

// InsertResume records the newly uploaded résumé's metadata and returns its
// generated id.
func (s *Store) InsertResume(ctx context.Context, profileID uuid.UUID, filePath, originalFilename, fileType, extractedText string, parsedData []byte) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO resumes (profile_id, file_path, original_filename, file_type, extracted_text, parsed_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		profileID, filePath, originalFilename, fileType, nullableString(extractedText), nullableJSON(parsedData),
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, wrapWriteErr("insert resume", err)
	}
	return id, nil
}

func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
