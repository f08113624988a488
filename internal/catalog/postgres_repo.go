package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks marcingest/internal/catalog Repository

type Repository interface {
	ListBarcodes(ctx context.Context, libraryID string) ([]string, error)
	ListEditionISBNs(ctx context.Context, libraryID string) ([]EditionISBN, error)
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListBarcodes(ctx context.Context, libraryID string) ([]string, error) {
	const sql = `SELECT barcode FROM catalog_item_copy WHERE library_id = $1`

	rows, err := r.db.Query(ctx, sql, libraryID)
	if err != nil {
		return nil, fmt.Errorf("list barcodes: %w", err)
	}
	barcodes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list barcodes: %w", err)
	}
	return barcodes, nil
}

func (r *PostgresRepo) ListEditionISBNs(ctx context.Context, libraryID string) ([]EditionISBN, error) {
	const sql = `
		SELECT book_id, id, isbn_10, isbn_13
		FROM book_edition
		WHERE library_id = $1 AND (isbn_10 IS NOT NULL OR isbn_13 IS NOT NULL)`

	rows, err := r.db.Query(ctx, sql, libraryID)
	if err != nil {
		return nil, fmt.Errorf("list edition isbns: %w", err)
	}
	defer rows.Close()

	var editions []EditionISBN
	for rows.Next() {
		var e EditionISBN
		if err := rows.Scan(&e.BookID, &e.EditionID, &e.ISBN10, &e.ISBN13); err != nil {
			return nil, fmt.Errorf("scan edition isbn: %w", err)
		}
		editions = append(editions, e)
	}
	return editions, rows.Err()
}

type copyStep struct {
	table   string
	columns []string
	rows    [][]any
}

// InsertBatch writes a batch with COPY, parents before children. It does not
// open a transaction; pass a pgx.Tx to make the batch atomic.
func InsertBatch(ctx context.Context, db DBTX, b *Batch) error {
	for _, step := range batchSteps(b) {
		if len(step.rows) == 0 {
			continue
		}
		if _, err := db.CopyFrom(ctx, pgx.Identifier{step.table}, step.columns, pgx.CopyFromRows(step.rows)); err != nil {
			return fmt.Errorf("copy %s: %w", step.table, err)
		}
	}
	return nil
}

func batchSteps(b *Batch) []copyStep {
	items := make([][]any, len(b.Items))
	for i, it := range b.Items {
		items[i] = []any{it.ID, it.LibraryID}
	}

	copies := make([][]any, len(b.Copies))
	for i, c := range b.Copies {
		copies[i] = []any{c.ID, c.Barcode, c.ItemID, c.LibraryID, c.Location}
	}

	books := make([][]any, len(b.Books))
	for i, bk := range b.Books {
		books[i] = []any{bk.ItemID, bk.LibraryID, bk.Title, bk.ReadingGrade, bk.SeriesEntry, bk.SeriesName,
			bk.Summary, bk.TargetAgeMax, bk.TargetAgeMin}
	}

	editions := make([][]any, len(b.Editions))
	for i, e := range b.Editions {
		editions[i] = []any{e.ID, e.BookID, e.LibraryID, e.ISBN10, e.ISBN13, e.PageCount, e.PublishedYear, e.PublisherName}
	}

	authors := make([][]any, len(b.Authors))
	for i, a := range b.Authors {
		authors[i] = []any{a.ID, a.BookID, a.Index, a.LibraryID, a.Name, a.Relation}
	}

	programs := make([][]any, len(b.ReadingPrograms))
	for i, p := range b.ReadingPrograms {
		programs[i] = []any{p.ID, p.BookID, p.LibraryID, p.Name, p.Note, p.PointValue, p.ReadingLevel}
	}

	topics := make([][]any, len(b.Topics))
	for i, t := range b.Topics {
		topics[i] = []any{t.ID, t.BookID, t.LibraryID, t.Name}
	}

	editionCopies := make([][]any, len(b.EditionCopies))
	for i, ec := range b.EditionCopies {
		editionCopies[i] = []any{ec.ID, ec.BookID, ec.CallNumber, ec.EditionID, ec.ImportRecordID, ec.LibraryID}
	}

	return []copyStep{
		{"catalog_item", []string{"id", "library_id"}, items},
		{"catalog_item_copy", []string{"id", "barcode", "item_id", "library_id", "location"}, copies},
		{"book", []string{"item_id", "library_id", "title", "reading_grade", "series_entry", "series_name",
			"summary", "target_age_max", "target_age_min"}, books},
		{"book_edition", []string{"id", "book_id", "library_id", "isbn_10", "isbn_13", "page_count",
			"published_year", "publisher_name"}, editions},
		{"book_author", []string{"id", "book_id", "index", "library_id", "name", "relation"}, authors},
		{"book_reading_program", []string{"id", "book_id", "library_id", "name", "note", "point_value",
			"reading_level"}, programs},
		{"book_topic", []string{"id", "book_id", "library_id", "name"}, topics},
		{"book_edition_copy", []string{"id", "book_id", "call_number", "edition_id", "import_record_id",
			"library_id"}, editionCopies},
	}
}
