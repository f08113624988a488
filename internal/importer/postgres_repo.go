package importer

import (
	"context"
	"errors"
	"fmt"

	"marcingest/internal/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const jobColumns = `id, library_id, name, file_key, status, duplicate_barcode_behavior, no_barcode_behavior, created_at, updated_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.LibraryID, &j.Name, &j.FileKey, &j.Status,
		&j.Policy.DuplicateBarcode, &j.Policy.NoBarcode, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// CreateJob inserts a PENDING job.
func (r *PostgresRepo) CreateJob(ctx context.Context, job *Job) error {
	const sql = `
		INSERT INTO marc_file_import (id, library_id, name, file_key, status, duplicate_barcode_behavior, no_barcode_behavior)
		VALUES ($1, $2, $3, $4, 'PENDING', $5, $6)
		RETURNING ` + jobColumns

	created, err := scanJob(r.db.QueryRow(ctx, sql, job.ID, job.LibraryID, job.Name, job.FileKey,
		job.Policy.DuplicateBarcode, job.Policy.NoBarcode))
	if err != nil {
		return fmt.Errorf("create import job: %w", err)
	}
	*job = *created
	return nil
}

func (r *PostgresRepo) ClaimJob(ctx context.Context, importID, libraryID string) (*Job, error) {
	const sql = `
		UPDATE marc_file_import
		SET status = 'PARSING', updated_at = now()
		WHERE id = $1 AND library_id = $2 AND status = 'PENDING'
		RETURNING ` + jobColumns

	job, err := scanJob(r.db.QueryRow(ctx, sql, importID, libraryID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrJobAlreadyClaimed
	}
	if err != nil {
		return nil, fmt.Errorf("claim import job: %w", err)
	}
	return job, nil
}

func (r *PostgresRepo) UpdateStatus(ctx context.Context, importID, libraryID string, status Status) error {
	const sql = `
		UPDATE marc_file_import
		SET status = $3, updated_at = now()
		WHERE id = $1 AND library_id = $2`

	tag, err := r.db.Exec(ctx, sql, importID, libraryID, status)
	if err != nil {
		return fmt.Errorf("update import status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresRepo) GetJob(ctx context.Context, importID string) (*Job, error) {
	const sql = `SELECT ` + jobColumns + ` FROM marc_file_import WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, sql, importID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get import job: %w", err)
	}
	return job, nil
}

// CommitBatch writes the audit rows and then the catalog rows of a batch in a
// single transaction.
func (r *PostgresRepo) CommitBatch(ctx context.Context, ins *BatchInserts) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if err := insertAuditRows(ctx, tx, ins); err != nil {
		return err
	}
	if err := catalog.InsertBatch(ctx, tx, &ins.Catalog); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

func insertAuditRows(ctx context.Context, db catalog.DBTX, ins *BatchInserts) error {
	if len(ins.FailedRecords) > 0 {
		rows := make([][]any, len(ins.FailedRecords))
		for i, f := range ins.FailedRecords {
			rows[i] = []any{f.ID, f.ImportID, f.Raw}
		}
		if _, err := db.CopyFrom(ctx, pgx.Identifier{"marc_file_import_failed_record"},
			[]string{"id", "import_id", "raw"}, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("copy failed records: %w", err)
		}
	}

	if len(ins.ParsedRecords) > 0 {
		rows := make([][]any, len(ins.ParsedRecords))
		for i, p := range ins.ParsedRecords {
			rows[i] = []any{p.ID, p.ImportID, p.Parsed, p.Raw}
		}
		if _, err := db.CopyFrom(ctx, pgx.Identifier{"marc_file_import_parsed_record"},
			[]string{"id", "import_id", "parsed", "raw"}, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("copy parsed records: %w", err)
		}
	}
	return nil
}
