//go:build e2e

package dbtest

import (
	"context"
	"time"

	"hotel-frontdesk/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixed credentials for the seeded staff accounts. E2E suites log in with
// these through the real /api/auth/login endpoint.
const (
	ReceptionistEmail    = "recepcion@hotel.test"
	ReceptionistPassword = "recepcion-123"
	ManagerEmail         = "gerencia@hotel.test"
	ManagerPassword      = "gerencia-1234"
)

var seededTables = []string{
	"notification_jobs",
	"vouchers",
	"extra_charges",
	"payments",
	"bookings",
	"staff",
}

// SeedReferenceData inserts the staff accounts every e2e suite depends on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	accounts := []struct {
		email    string
		name     string
		role     string
		password string
	}{
		{ReceptionistEmail, "Recepcion Turno A", "receptionist", ReceptionistPassword},
		{ManagerEmail, "Gerencia", "manager", ManagerPassword},
	}

	for _, a := range accounts {
		hash, err := password.HashPassword(a.password)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO staff (id, email, name, role, password_hash, is_active)
			VALUES ($1, $2, $3, $4, $5, true)
			ON CONFLICT (email) DO NOTHING`,
			uuid.New(), a.email, a.name, a.role, hash,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// ResetDB truncates all tables and reseeds the reference data, giving each
// subtest a clean slate.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, table := range seededTables {
		if _, err := pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return err
		}
	}
	return SeedReferenceData(pool)
}
