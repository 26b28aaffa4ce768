package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aedmap/internal/domain"
	"aedmap/pkg/e"
)

type ReportRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepository(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepository {
	return &ReportRepository{pool: pool, logger: logger}
}

const reportColumns = `id, aed_id, report_type, description,
	reporter_name, reporter_email, reporter_phone, created_at, status`

func scanReport(row pgx.Row) (*domain.Report, error) {
	var r domain.Report
	err := row.Scan(
		&r.ID, &r.AedID, &r.ReportType, &r.Description,
		&r.ReporterName, &r.ReporterEmail, &r.ReporterPhone, &r.CreatedAt, &r.Status,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateForAed inserts the report and flags the referenced record in one
// transaction. The aed_id reference is validated here rather than by a
// foreign key, because refreshes rewrite the aeds table wholesale.
func (p *ReportRepository) CreateForAed(ctx context.Context, aedID int64, req domain.CreateReportRequest, createdAt string) (*domain.Report, error) {
	const op = "postgres.Report.CreateForAed"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var exists int64
	if err := tx.QueryRow(ctx, `SELECT id FROM aeds WHERE id = $1`, aedID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("aed lookup failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	report := &domain.Report{
		AedID:         aedID,
		ReportType:    req.ReportType,
		Description:   req.Description,
		ReporterName:  req.ReporterName,
		ReporterEmail: req.ReporterEmail,
		ReporterPhone: req.ReporterPhone,
		CreatedAt:     createdAt,
		Status:        domain.ReportPending,
	}

	const insertQuery = `
		INSERT INTO aed_reports (aed_id, report_type, description,
			reporter_name, reporter_email, reporter_phone, created_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err = tx.QueryRow(ctx, insertQuery,
		report.AedID, report.ReportType, report.Description,
		report.ReporterName, report.ReporterEmail, report.ReporterPhone,
		report.CreatedAt, report.Status,
	).Scan(&report.ID)
	if err != nil {
		p.logger.Error("report insert failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const flagQuery = `
		UPDATE aeds
		SET is_flagged = TRUE, flag_reason = $2, flagged_at = $3
		WHERE id = $1
	`
	if _, err := tx.Exec(ctx, flagQuery, aedID, string(report.ReportType), report.CreatedAt); err != nil {
		p.logger.Error("aed flag update failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return report, nil
}

func (p *ReportRepository) ListByAed(ctx context.Context, aedID int64, offset, limit int) ([]*domain.Report, int64, error) {
	const op = "postgres.Report.ListByAed"

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM aed_reports WHERE aed_id = $1`, aedID).Scan(&total); err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM aed_reports
		WHERE aed_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, reportColumns)

	rows, err := p.pool.Query(ctx, query, aedID, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports, err := collectReports(rows)
	if err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}
	return reports, total, nil
}

func (p *ReportRepository) List(ctx context.Context, req domain.ListReportsRequest) ([]*domain.Report, int64, error) {
	const op = "postgres.Report.List"

	where := ""
	args := []any{}
	if req.Type != "" {
		args = append(args, string(req.Type))
		where += fmt.Sprintf(" AND report_type = $%d", len(args))
	}
	if req.Status != "" {
		args = append(args, string(req.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	countQuery := `SELECT COUNT(*) FROM aed_reports WHERE TRUE` + where
	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}

	args = append(args, req.Limit, req.Offset)
	listQuery := fmt.Sprintf(`
		SELECT %s FROM aed_reports
		WHERE TRUE%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, reportColumns, where, len(args)-1, len(args))

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports, err := collectReports(rows)
	if err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}
	return reports, total, nil
}

func (p *ReportRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	const op = "postgres.Report.UpdateStatus"

	cmd, err := p.pool.Exec(ctx, `UPDATE aed_reports SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *ReportRepository) Delete(ctx context.Context, id int64) error {
	const op = "postgres.Report.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM aed_reports WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func collectReports(rows pgx.Rows) ([]*domain.Report, error) {
	var reports []*domain.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
