package gadget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for gadget persistence operations.
// This abstraction allows for different implementations (SQLite, mock, etc.)
// and enables unit testing without database dependencies.
type Repository interface {
	// GetByID retrieves a gadget by its unique identifier.
	// Returns ErrNotFound if the gadget does not exist.
	GetByID(ctx context.Context, id string) (*Gadget, error)

	// GetByName retrieves a gadget by its codename.
	// Returns ErrNotFound if no gadget carries the name.
	GetByName(ctx context.Context, name string) (*Gadget, error)

	// List retrieves all gadgets ordered by creation date.
	List(ctx context.Context) ([]Gadget, error)

	// ListByStatus retrieves all gadgets with an exact status match.
	ListByStatus(ctx context.Context, status Status) ([]Gadget, error)

	// Create inserts a new gadget. The ID is generated if empty.
	// Returns ErrNameExists if the codename is already taken.
	Create(ctx context.Context, g *Gadget) error

	// Update modifies an existing gadget.
	// Returns ErrNotFound if the gadget does not exist and ErrNameExists
	// if the new codename collides with another gadget.
	Update(ctx context.Context, g *Gadget) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed gadget repository.
// The db parameter should be an open SQLite connection with the gadgets
// table migrated.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const gadgetColumns = "id, name, status, decommissioned_at, created_at, updated_at"

// GetByID retrieves a gadget by its unique identifier.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Gadget, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+gadgetColumns+" FROM gadgets WHERE id = ?", id)
	return scanGadgetRow(row)
}

// GetByName retrieves a gadget by its codename.
func (r *SQLiteRepository) GetByName(ctx context.Context, name string) (*Gadget, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+gadgetColumns+" FROM gadgets WHERE name = ?", name)
	return scanGadgetRow(row)
}

// List retrieves all gadgets ordered by creation date.
func (r *SQLiteRepository) List(ctx context.Context) ([]Gadget, error) {
	return r.queryGadgets(ctx,
		"SELECT "+gadgetColumns+" FROM gadgets ORDER BY created_at ASC")
}

// ListByStatus retrieves all gadgets with an exact status match.
func (r *SQLiteRepository) ListByStatus(ctx context.Context, status Status) ([]Gadget, error) {
	return r.queryGadgets(ctx,
		"SELECT "+gadgetColumns+" FROM gadgets WHERE status = ? ORDER BY created_at ASC",
		string(status))
}

// Create inserts a new gadget.
func (r *SQLiteRepository) Create(ctx context.Context, g *Gadget) error {
	if g.ID == "" {
		g.ID = "gdt-" + uuid.NewString()[:8]
	}
	if g.Status == "" {
		g.Status = StatusAvailable
	}

	now := time.Now().UTC().Truncate(time.Second)
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gadgets (id, name, status, decommissioned_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, string(g.Status), nullTime(g.DecommissionedAt),
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrNameExists
		}
		return fmt.Errorf("creating gadget: %w", err)
	}

	return nil
}

// Update modifies an existing gadget's name, status, and decommission timestamp.
func (r *SQLiteRepository) Update(ctx context.Context, g *Gadget) error {
	g.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	res, err := r.db.ExecContext(ctx,
		`UPDATE gadgets
		 SET name = ?, status = ?, decommissioned_at = ?, updated_at = ?
		 WHERE id = ?`,
		g.Name, string(g.Status), nullTime(g.DecommissionedAt),
		g.UpdatedAt.Format(time.RFC3339), g.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrNameExists
		}
		return fmt.Errorf("updating gadget: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// queryGadgets runs a multi-row query and scans the results.
func (r *SQLiteRepository) queryGadgets(ctx context.Context, query string, args ...any) ([]Gadget, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing gadgets: %w", err)
	}
	defer rows.Close()

	var gadgets []Gadget
	for rows.Next() {
		g, err := scanGadgetFrom(rows)
		if err != nil {
			return nil, err
		}
		gadgets = append(gadgets, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gadgets: %w", err)
	}

	if gadgets == nil {
		gadgets = []Gadget{}
	}
	return gadgets, nil
}

// scanner abstracts over sql.Row and sql.Rows for scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

// scanGadgetRow scans a gadget from a single-row query.
func scanGadgetRow(row *sql.Row) (*Gadget, error) {
	return scanGadgetFrom(row)
}

// scanGadgetFrom scans a gadget from any scanner (Row or Rows).
func scanGadgetFrom(s scanner) (*Gadget, error) {
	var g Gadget
	var status string
	var decommissionedAt sql.NullString
	var createdAt, updatedAt string

	err := s.Scan(&g.ID, &g.Name, &status, &decommissionedAt, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning gadget: %w", err)
	}

	g.Status = Status(status)
	if decommissionedAt.Valid {
		t, err := time.Parse(time.RFC3339, decommissionedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing decommissioned_at: %w", err)
		}
		g.DecommissionedAt = &t
	}

	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	g.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // format is controlled

	return &g, nil
}

// nullTime converts an optional timestamp to its nullable column form.
func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
