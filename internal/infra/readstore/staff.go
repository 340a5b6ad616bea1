package readstore

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/shared"
)

type StaffReadStore struct {
	db db.DBTX
}

func NewStaffReadStore(dbtx db.DBTX) *StaffReadStore {
	return &StaffReadStore{db: dbtx}
}

const selectStaffByEmailSQL = `
SELECT id, email, name, role, password_hash, is_active
FROM staff
WHERE email = $1
`

func (s *StaffReadStore) FindByEmail(ctx context.Context, email string) (*shared.StaffSnapshot, error) {
	var snap shared.StaffSnapshot
	err := s.db.QueryRow(ctx, selectStaffByEmailSQL, email).Scan(
		&snap.ID, &snap.Email, &snap.Name, &snap.Role, &snap.PasswordHash, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by email", err)
	}
	return &snap, nil
}
