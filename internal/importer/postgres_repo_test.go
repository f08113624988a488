package importer

import (
	"context"
	"testing"

	"marcingest/internal/extract"
	"marcingest/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepo_JobLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewPostgresRepo(db)

	job := &Job{
		ID:        uuid.NewString(),
		LibraryID: "test-library-" + uuid.NewString(),
		Name:      "spring.mrc",
		FileKey:   "marc/spring.mrc",
		Policy:    Policy{DuplicateBarcode: BehaviorCreateNew, NoBarcode: BehaviorSkip},
	}
	require.NoError(t, repo.CreateJob(ctx, job))
	assert.Equal(t, StatusPending, job.Status)
	assert.False(t, job.CreatedAt.IsZero())

	t.Run("wrong library cannot claim", func(t *testing.T) {
		_, err := repo.ClaimJob(ctx, job.ID, "other-library")
		assert.ErrorIs(t, err, ErrJobAlreadyClaimed)
	})

	claimed, err := repo.ClaimJob(ctx, job.ID, job.LibraryID)
	require.NoError(t, err)
	assert.Equal(t, StatusParsing, claimed.Status)
	assert.Equal(t, BehaviorSkip, claimed.Policy.NoBarcode)

	_, err = repo.ClaimJob(ctx, job.ID, job.LibraryID)
	assert.ErrorIs(t, err, ErrJobAlreadyClaimed)

	require.NoError(t, repo.UpdateStatus(ctx, job.ID, job.LibraryID, StatusComplete))
	got, err := repo.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, got.Status)

	_, err = repo.GetJob(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrJobNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.NewString(), job.LibraryID, StatusFailed), ErrJobNotFound)
}

func TestPostgresRepo_CommitBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := NewPostgresRepo(db)

	job := &Job{
		ID:        uuid.NewString(),
		LibraryID: "test-library-" + uuid.NewString(),
		Name:      "fixtures.mrc",
		FileKey:   "marc/fixtures.mrc",
		Policy:    createNew,
	}
	require.NoError(t, repo.CreateJob(ctx, job))

	m := &Materializer{
		ImportID:  job.ID,
		LibraryID: job.LibraryID,
		Policy:    job.Policy,
		Barcodes:  NewBarcodeAllocator(nil),
		Editions:  NewEditionResolver(nil),
	}
	ins, err := m.Materialize([]extract.ProcessedData{
		processed(t, testutil.EidAlAdhaRecord),
		processed(t, testutil.SirLadybugRecord),
		{Raw: "garbage"},
	})
	require.NoError(t, err)
	require.NoError(t, repo.CommitBatch(ctx, ins))

	var parsed, failed, copies int
	require.NoError(t, db.QueryRow(ctx, `SELECT count(*) FROM marc_file_import_parsed_record WHERE import_id = $1`, job.ID).Scan(&parsed))
	require.NoError(t, db.QueryRow(ctx, `SELECT count(*) FROM marc_file_import_failed_record WHERE import_id = $1`, job.ID).Scan(&failed))
	require.NoError(t, db.QueryRow(ctx, `SELECT count(*) FROM book_edition_copy WHERE library_id = $1`, job.LibraryID).Scan(&copies))
	assert.Equal(t, 2, parsed)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, copies)

	t.Run("failed batch writes nothing", func(t *testing.T) {
		again := &Materializer{
			ImportID:  job.ID,
			LibraryID: job.LibraryID,
			Policy:    job.Policy,
			// an empty allocator hands out barcodes that are already stored
			Barcodes: NewBarcodeAllocator(nil),
			Editions: NewEditionResolver(nil),
		}
		ins, err := again.Materialize([]extract.ProcessedData{processed(t, testutil.SirLadybugRecord)})
		require.NoError(t, err)

		assert.Error(t, repo.CommitBatch(ctx, ins))

		var after int
		require.NoError(t, db.QueryRow(ctx, `SELECT count(*) FROM marc_file_import_parsed_record WHERE import_id = $1`, job.ID).Scan(&after))
		assert.Equal(t, 2, after)
	})
}
