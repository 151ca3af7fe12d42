package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"machinedex/internal/config"
	"machinedex/internal/types"
)

// Brand is one row of the brands table.
type Brand struct {
	Name    string `json:"name"`
	NameKor string `json:"name_kor,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

// MachineRow is one row of the machines table.
type MachineRow struct {
	Brand     string   `json:"brand"`
	Name      string   `json:"name"`
	NameKor   string   `json:"name_kor,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
	Type      string   `json:"type,omitempty"`
	BodyParts []string `json:"body_parts,omitempty"`
}

// MachineRef identifies a stored machine row for in-place updates.
type MachineRef struct {
	ID    string
	Name  string
	Brand string
}

// Tables writes brand and machine rows to Postgres. All writes are
// upserts keyed on the natural identifiers, so repeating an upload is
// safe.
type Tables struct {
	pool   *pgxpool.Pool
	schema string
	logger *slog.Logger
}

func NewTables(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Tables, error) {
	if cfg.Backend.DatabaseURL == "" {
		return nil, fmt.Errorf("tables: %w", types.ErrMissingCreds)
	}
	pool, err := pgxpool.New(ctx, cfg.Backend.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return &Tables{
		pool:   pool,
		schema: cfg.Backend.Schema,
		logger: logger.With("component", "tables"),
	}, nil
}

func (t *Tables) Close() { t.pool.Close() }

// UpsertBrands writes brand rows, updating existing brands by name.
func (t *Tables) UpsertBrands(ctx context.Context, brands []Brand) error {
	if len(brands) == 0 {
		t.logger.Info("no brands to upsert")
		return nil
	}

	sql := fmt.Sprintf(`
		INSERT INTO %s.brands (name, name_kor, logo_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET name_kor = EXCLUDED.name_kor,
		    logo_url = EXCLUDED.logo_url`, pgx.Identifier{t.schema}.Sanitize())

	b := &pgx.Batch{}
	for _, brand := range brands {
		b.Queue(sql, brand.Name, nullable(brand.NameKor), nullable(brand.LogoURL))
	}
	if err := t.pool.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("upserting brands: %w", err)
	}
	t.logger.Info("brands upserted", "count", len(brands))
	return nil
}

// UpsertMachines writes machine rows, updating existing machines by
// brand and name.
func (t *Tables) UpsertMachines(ctx context.Context, rows []MachineRow) error {
	if len(rows) == 0 {
		t.logger.Info("no machines to upsert")
		return nil
	}

	sql := fmt.Sprintf(`
		INSERT INTO %s.machines (brand_name, name, name_kor, image_url, type, body_parts)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (brand_name, name) DO UPDATE
		SET name_kor   = EXCLUDED.name_kor,
		    image_url  = EXCLUDED.image_url,
		    type       = EXCLUDED.type,
		    body_parts = COALESCE(EXCLUDED.body_parts, %s.machines.body_parts)`,
		pgx.Identifier{t.schema}.Sanitize(), pgx.Identifier{t.schema}.Sanitize())

	b := &pgx.Batch{}
	for _, row := range rows {
		var parts any
		if len(row.BodyParts) > 0 {
			parts = row.BodyParts
		}
		b.Queue(sql, row.Brand, row.Name, nullable(row.NameKor), nullable(row.ImageURL), nullable(row.Type), parts)
	}
	if err := t.pool.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("upserting machines: %w", err)
	}
	t.logger.Info("machines upserted", "count", len(rows))
	return nil
}

// MachinesMissingBodyParts returns machines with no body part labels
// yet, the classifier's work queue.
func (t *Tables) MachinesMissingBodyParts(ctx context.Context) ([]MachineRef, error) {
	sql := fmt.Sprintf(`
		SELECT id, name, COALESCE(brand_name, '')
		FROM %s.machines
		WHERE body_parts IS NULL OR array_length(body_parts, 1) IS NULL`,
		pgx.Identifier{t.schema}.Sanitize())

	rows, err := t.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("querying machines: %w", err)
	}
	defer rows.Close()

	var refs []MachineRef
	for rows.Next() {
		var ref MachineRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Brand); err != nil {
			return nil, fmt.Errorf("scanning machine row: %w", err)
		}
		if ref.Name == "" {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// UpdateBodyParts stores classification results for one machine.
func (t *Tables) UpdateBodyParts(ctx context.Context, id string, parts []string) error {
	sql := fmt.Sprintf(`UPDATE %s.machines SET body_parts = $1 WHERE id = $2`,
		pgx.Identifier{t.schema}.Sanitize())
	if _, err := t.pool.Exec(ctx, sql, parts, id); err != nil {
		return fmt.Errorf("updating body parts for %s: %w", id, err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
