package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"carmatch/internal/vehicle"
)

// Store persists catalog records in SQLite. The store is the refresh side of
// the pipeline: imports replace its contents wholesale, and each refresh
// cycle loads everything back out to build a fresh Index.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore initializes or connects to the catalog database.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply catalog schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// ReplaceAll swaps the stored catalog for the given records in one
// transaction, so a half-finished import never becomes visible.
func (s *Store) ReplaceAll(ctx context.Context, records []vehicle.Spec) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM catalog_records"); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO catalog_records (
        natcode, name, make, model, oem_code, price, hp, kw, cc,
        fuel, body, gear_type, traction, doors, seats, gears, mass,
        sellable_begin, sellable_end
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare catalog insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if rec.Natcode == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx,
			rec.Natcode, rec.Name, rec.Make, rec.Model, rec.OEMCode,
			rec.Price, rec.HP, rec.KW, rec.CC,
			rec.Fuel, rec.Body, rec.GearType, rec.Traction,
			rec.Doors, rec.Seats, rec.Gears, rec.Mass,
			rec.SellableBegin, rec.SellableEnd,
		); err != nil {
			return fmt.Errorf("insert catalog record %s: %w", rec.Natcode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog replace: %w", err)
	}
	return nil
}

// LoadAll reads every stored record, in insertion (rowid) order.
func (s *Store) LoadAll(ctx context.Context) ([]vehicle.Spec, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
        natcode, name, make, model, oem_code, price, hp, kw, cc,
        fuel, body, gear_type, traction, doors, seats, gears, mass,
        sellable_begin, sellable_end
    FROM catalog_records ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var records []vehicle.Spec
	for rows.Next() {
		var rec vehicle.Spec
		if err := rows.Scan(
			&rec.Natcode, &rec.Name, &rec.Make, &rec.Model, &rec.OEMCode,
			&rec.Price, &rec.HP, &rec.KW, &rec.CC,
			&rec.Fuel, &rec.Body, &rec.GearType, &rec.Traction,
			&rec.Doors, &rec.Seats, &rec.Gears, &rec.Mass,
			&rec.SellableBegin, &rec.SellableEnd,
		); err != nil {
			return nil, fmt.Errorf("scan catalog record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM catalog_records").Scan(&count); err != nil {
		return 0, fmt.Errorf("count catalog records: %w", err)
	}
	return count, nil
}
