package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedClient creates a client with a unique name and returns it.
func SeedClient(t *testing.T, pool *pgxpool.Pool) domain.Client {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	c := domain.Client{
		Name:             "Client " + suffix,
		Machine:          "Laptop " + suffix,
		RegistrationDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Email:            "client-" + suffix + "@example.com",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO clients (name, machine, registration_date, email)
		 VALUES ($1, $2, $3, $4) RETURNING created_at`,
		c.Name, c.Machine, c.RegistrationDate, c.Email,
	).Scan(&c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedClient insert: %v", err)
	}

	return c
}

// SeedHistoryEntry appends an in-progress entry to the given client's history.
func SeedHistoryEntry(t *testing.T, pool *pgxpool.Pool, clientName string) domain.HistoryEntry {
	t.Helper()
	ctx := context.Background()

	e := domain.HistoryEntry{
		ClientName:  clientName,
		Machine:     "Desktop",
		WorkDate:    time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		Description: "seeded entry " + uniqueSuffix(),
		Phone:       "0600000000",
		Technician:  "Tech",
		Email:       "seed@example.com",
		Status:      domain.StatusInProgress,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO history_entries (client_name, machine, work_date, description, phone, technician, email, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`,
		e.ClientName, e.Machine, e.WorkDate, e.Description, e.Phone, e.Technician, e.Email, string(e.Status),
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedHistoryEntry insert: %v", err)
	}

	return e
}
