package catalog

import (
	"context"
	"testing"

	"marcingest/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleBatch(libraryID string) *Batch {
	bookID := uuid.NewString()
	editionID := uuid.NewString()
	copyID := uuid.NewString()

	return &Batch{
		Items: []Item{{ID: bookID, LibraryID: libraryID}},
		Books: []Book{{ItemID: bookID, LibraryID: libraryID, Title: "Sir Ladybug and the Queen Bee"}},
		Editions: []Edition{{
			ID: editionID, BookID: bookID, LibraryID: libraryID, ISBN13: strPtr("9780063069091"),
		}},
		Authors:         []Author{{ID: uuid.NewString(), BookID: bookID, LibraryID: libraryID, Name: "Tabor, Corey R."}},
		ReadingPrograms: []ReadingProgram{{ID: uuid.NewString(), BookID: bookID, LibraryID: libraryID, Name: "Accelerated Reader"}},
		Topics:          []Topic{{ID: uuid.NewString(), BookID: bookID, LibraryID: libraryID, Name: "Bees"}},
		Copies:          []Copy{{ID: copyID, ItemID: bookID, LibraryID: libraryID, Barcode: "000000"}},
		EditionCopies: []EditionCopy{{
			ID: copyID, BookID: bookID, EditionID: editionID, LibraryID: libraryID, CallNumber: strPtr("E TAB"),
		}},
	}
}

func TestBatchSteps_ParentsFirst(t *testing.T) {
	b := sampleBatch("lib-1")
	steps := batchSteps(b)

	var tables []string
	for _, s := range steps {
		tables = append(tables, s.table)
		for _, row := range s.rows {
			assert.Len(t, row, len(s.columns), s.table)
		}
	}

	assert.Equal(t, []string{
		"catalog_item", "catalog_item_copy", "book", "book_edition",
		"book_author", "book_reading_program", "book_topic", "book_edition_copy",
	}, tables)
	assert.Equal(t, 8, b.Len())
}

func TestPostgresRepo_InsertBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	libraryID := "test-library-" + uuid.NewString()

	tx, err := db.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	b := sampleBatch(libraryID)
	require.NoError(t, InsertBatch(ctx, tx, b))
	require.NoError(t, tx.Commit(ctx))

	repo := NewPostgresRepo(db)

	barcodes, err := repo.ListBarcodes(ctx, libraryID)
	require.NoError(t, err)
	assert.Equal(t, []string{"000000"}, barcodes)

	editions, err := repo.ListEditionISBNs(ctx, libraryID)
	require.NoError(t, err)
	require.Len(t, editions, 1)
	assert.Equal(t, b.Editions[0].ID, editions[0].EditionID)
	assert.Equal(t, b.Books[0].ItemID, editions[0].BookID)
	assert.Equal(t, strPtr("9780063069091"), editions[0].ISBN13)
	assert.Nil(t, editions[0].ISBN10)
}

func TestPostgresRepo_InsertBatchDuplicateBarcode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	libraryID := "test-library-" + uuid.NewString()

	first := sampleBatch(libraryID)
	tx, err := db.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, InsertBatch(ctx, tx, first))
	require.NoError(t, tx.Commit(ctx))

	second := sampleBatch(libraryID)
	second.Editions[0].ISBN13 = nil
	tx, err = db.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	err = InsertBatch(ctx, tx, second)
	assert.Error(t, err)
}
