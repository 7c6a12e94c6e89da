package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ReplaceSkillsAndHospitals overwrites the skills and hospitals arrays on
// the profile row. Unlike experience/education/certifications these carry
// no per-entry metadata, so a plain array column beats a child table.
func (s *Store) ReplaceSkillsAndHospitals(ctx context.Context, profileID uuid.UUID, skills, hospitals []string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE nurse_profiles SET skills = $2, hospitals = $3 WHERE id = $1`,
		profileID, pq.Array(skills), pq.Array(hospitals),
	)
	return wrapWriteErr("replace skills and hospitals", err)
}
