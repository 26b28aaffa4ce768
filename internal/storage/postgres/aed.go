package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aedmap/internal/domain"
	"aedmap/internal/ingest"
	"aedmap/pkg/e"
)

type AedRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAedRepository(pool *pgxpool.Pool, logger *slog.Logger) *AedRepository {
	return &AedRepository{pool: pool, logger: logger}
}

const aedColumns = `id, name, address, location_detail, latitude, longitude,
	public_use, allowed_operators, access_persons, category,
	service_hours, brand, model, remark, is_flagged, flag_reason, flagged_at`

func scanAed(row pgx.Row) (*domain.Aed, error) {
	var a domain.Aed
	err := row.Scan(
		&a.ID, &a.Name, &a.Address, &a.LocationDetail, &a.Latitude, &a.Longitude,
		&a.PublicUse, &a.AllowedOperators, &a.AccessPersons, &a.Category,
		&a.ServiceHours, &a.Brand, &a.Model, &a.Remark, &a.IsFlagged, &a.FlagReason, &a.FlaggedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (p *AedRepository) Count(ctx context.Context) (int64, error) {
	const op = "postgres.Aed.Count"

	var count int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM aeds`).Scan(&count); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return count, nil
}

// txBatchWriter flushes draft batches into the open replace transaction.
type txBatchWriter struct {
	tx pgx.Tx
}

func (w *txBatchWriter) Insert(ctx context.Context, drafts []domain.AedDraft) error {
	const query = `
		INSERT INTO aeds (
			name, address, location_detail, latitude, longitude, public_use,
			allowed_operators, access_persons, category, service_hours,
			brand, model, remark, geo_point
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			ST_SetSRID(ST_MakePoint($5, $4), 4326)
		)
	`

	batch := &pgx.Batch{}
	for _, d := range drafts {
		batch.Queue(query,
			d.Name, d.Address, d.LocationDetail, d.Latitude, d.Longitude, d.PublicUse,
			d.AllowedOperators, d.AccessPersons, d.Category, d.ServiceHours,
			d.Brand, d.Model, d.Remark,
		)
	}

	br := w.tx.SendBatch(ctx, batch)
	defer br.Close()
	for range drafts {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return br.Close()
}

// ReplaceAll substitutes the whole dataset inside one transaction: delete
// everything, then let load flush batches, then commit. Postgres MVCC keeps
// the pre-refresh snapshot visible to concurrent readers until the commit,
// so the table is never observably empty. Any error from load rolls the
// whole replacement back.
func (p *AedRepository) ReplaceAll(ctx context.Context, load func(ctx context.Context, w ingest.BatchWriter) error) error {
	const op = "postgres.Aed.ReplaceAll"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM aeds`); err != nil {
		p.logger.Error("delete failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := load(ctx, &txBatchWriter{tx: tx}); err != nil {
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *AedRepository) List(ctx context.Context, req domain.ListAedsRequest) ([]*domain.Aed, int64, error) {
	const op = "postgres.Aed.List"

	total, err := p.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	// sort column is whitelisted, never interpolated from raw input
	sortBy := req.SortBy
	switch sortBy {
	case "id", "name", "address", "category":
	default:
		sortBy = "id"
	}
	order := "ASC"
	if req.Order == "desc" {
		order = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM aeds ORDER BY %s %s LIMIT $1 OFFSET $2`, aedColumns, sortBy, order)

	rows, err := p.pool.Query(ctx, query, req.Limit, req.Offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var aeds []*domain.Aed
	for rows.Next() {
		a, err := scanAed(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		aeds = append(aeds, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return aeds, total, nil
}

func (p *AedRepository) Get(ctx context.Context, id int64) (*domain.Aed, error) {
	const op = "postgres.Aed.Get"

	query := fmt.Sprintf(`SELECT %s FROM aeds WHERE id = $1`, aedColumns)

	a, err := scanAed(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return a, nil
}

// FindNearby returns records within radiusKm of the query point, ordered by
// ascending ground distance. Distance comes from the geography cast so it is
// meters over the WGS84 spheroid, converted to kilometers here.
func (p *AedRepository) FindNearby(ctx context.Context, lat, lng, radiusKm float64, limit int, publicOnly bool) ([]*domain.AedWithDistance, error) {
	const op = "postgres.Aed.FindNearby"

	query := fmt.Sprintf(`
		SELECT %s,
			ST_Distance(
				geo_point,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
			)/1000 AS distance_km
		FROM aeds
		WHERE ST_DWithin(
			geo_point,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3 * 1000
		)`, aedColumns)
	if publicOnly {
		query += ` AND public_use = TRUE`
	}
	query += ` ORDER BY distance_km LIMIT $4`

	rows, err := p.pool.Query(ctx, query, lng, lat, radiusKm, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	results := make([]*domain.AedWithDistance, 0, 8)
	for rows.Next() {
		var a domain.AedWithDistance
		err := rows.Scan(
			&a.ID, &a.Name, &a.Address, &a.LocationDetail, &a.Latitude, &a.Longitude,
			&a.PublicUse, &a.AllowedOperators, &a.AccessPersons, &a.Category,
			&a.ServiceHours, &a.Brand, &a.Model, &a.Remark, &a.IsFlagged, &a.FlagReason, &a.FlaggedAt,
			&a.DistanceKm,
		)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		results = append(results, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return results, nil
}

// Coverage aggregates match count, public split and distance statistics for
// the circle around the query point.
func (p *AedRepository) Coverage(ctx context.Context, lat, lng, radiusKm float64) (*domain.CoverageReport, error) {
	const op = "postgres.Aed.Coverage"

	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE public_use),
			MIN(ST_Distance(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)/1000),
			MAX(ST_Distance(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)/1000),
			AVG(ST_Distance(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)/1000)
		FROM aeds
		WHERE ST_DWithin(
			geo_point,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3 * 1000
		)
	`

	report := &domain.CoverageReport{Lat: lat, Lng: lng, RadiusKm: radiusKm}
	err := p.pool.QueryRow(ctx, query, lng, lat, radiusKm).Scan(
		&report.AedCount,
		&report.PublicAeds,
		&report.Distance.MinKm,
		&report.Distance.MaxKm,
		&report.Distance.AvgKm,
	)
	if err != nil {
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	report.PrivateAeds = report.AedCount - report.PublicAeds

	return report, nil
}
