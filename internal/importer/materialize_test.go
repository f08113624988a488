package importer

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"marcingest/internal/catalog"
	"marcingest/internal/extract"
	"marcingest/internal/marc"
	"marcingest/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestMaterializer(policy Policy, barcodes []string, editions []catalog.EditionISBN) *Materializer {
	return &Materializer{
		ImportID:  testutil.TestImportID,
		LibraryID: testutil.TestLibraryID,
		Policy:    policy,
		Barcodes:  NewBarcodeAllocator(barcodes),
		Editions:  NewEditionResolver(editions),
		NewID:     sequentialIDs(),
	}
}

var createNew = Policy{DuplicateBarcode: BehaviorCreateNew, NoBarcode: BehaviorCreateNew}

func processed(t *testing.T, raw string) extract.ProcessedData {
	t.Helper()
	rec, err := marc.Decode(raw)
	require.NoError(t, err)
	return extract.Process(marc.Result{Raw: raw, Record: rec})
}

func parsedOnly(p *extract.ProcessedRecord) extract.ProcessedData {
	if p.Record == nil {
		p.Record = &marc.Record{Leader: "00000nam a2200000   4500"}
	}
	return extract.ProcessedData{Parsed: p, Raw: "raw"}
}

func TestMaterialize_NewBook(t *testing.T) {
	m := newTestMaterializer(createNew, nil, nil)

	ins, err := m.Materialize([]extract.ProcessedData{processed(t, testutil.EidAlAdhaRecord)})
	require.NoError(t, err)

	require.Len(t, ins.ParsedRecords, 1)
	parsed := ins.ParsedRecords[0]
	assert.Equal(t, testutil.TestImportID, parsed.ImportID)
	assert.Equal(t, testutil.EidAlAdhaRecord, parsed.Raw)

	var rec marc.Record
	require.NoError(t, json.Unmarshal(parsed.Parsed, &rec))
	id, ok := rec.Control("001")
	assert.True(t, ok)
	assert.Equal(t, "58694", id)

	c := ins.Catalog
	require.Len(t, c.Items, 1)
	require.Len(t, c.Books, 1)
	require.Len(t, c.Editions, 1)
	bookID := c.Items[0].ID
	assert.Equal(t, []string{bookID}, ins.AddedBookIDs)
	assert.Equal(t, bookID, c.Books[0].ItemID)
	assert.Equal(t, "Eid Al-Adha", c.Books[0].Title)
	assert.Equal(t, bookID, c.Editions[0].BookID)
	assert.Equal(t, "9781663908353", *c.Editions[0].ISBN13)

	assert.Len(t, c.Authors, 1)
	assert.Len(t, c.ReadingPrograms, 2)
	assert.Len(t, c.Topics, 3)
	for _, topic := range c.Topics {
		assert.Equal(t, bookID, topic.BookID)
		assert.Equal(t, testutil.TestLibraryID, topic.LibraryID)
	}

	require.Len(t, c.Copies, 1)
	require.Len(t, c.EditionCopies, 1)
	assert.Equal(t, "T 32889", c.Copies[0].Barcode)
	assert.Equal(t, bookID, c.Copies[0].ItemID)

	ec := c.EditionCopies[0]
	assert.Equal(t, c.Copies[0].ID, ec.ID)
	assert.Equal(t, c.Editions[0].ID, ec.EditionID)
	assert.Equal(t, "297 MOH", *ec.CallNumber)
	assert.Equal(t, parsed.ID, *ec.ImportRecordID)

	assert.True(t, m.Barcodes.Taken("T 32889"))
	_, ok = m.Editions.Resolve(nil, strPtr("9781663908353"))
	assert.True(t, ok)
}

func TestMaterialize_InvalidUTF8(t *testing.T) {
	eid := strings.Replace(testutil.EidAlAdhaRecord, "T 32889", "T 3288\xe9", 1)
	stream := testutil.Stream(eid, "garb\xe9age\x00")

	var data []extract.ProcessedData
	for res, err := range marc.Records(strings.NewReader(stream), 0) {
		require.NoError(t, err)
		data = append(data, extract.Process(res))
	}

	m := newTestMaterializer(createNew, nil, nil)
	ins, err := m.Materialize(data)
	require.NoError(t, err)

	require.Len(t, ins.FailedRecords, 1)
	assert.Equal(t, "garb\uFFFDage", ins.FailedRecords[0].Raw)

	require.Len(t, ins.ParsedRecords, 1)
	assert.True(t, utf8.ValidString(ins.ParsedRecords[0].Raw))

	require.Len(t, ins.Catalog.Copies, 1)
	assert.Equal(t, "T 3288\uFFFD", ins.Catalog.Copies[0].Barcode)
	assert.Equal(t, "297 MOH", *ins.Catalog.EditionCopies[0].CallNumber)
}

func TestMaterialize_FailedRecord(t *testing.T) {
	m := newTestMaterializer(createNew, nil, nil)

	ins, err := m.Materialize([]extract.ProcessedData{
		{Raw: "garbage", Err: &marc.MalformedLeaderError{Leader: "garbage", Reason: "too short"}},
	})
	require.NoError(t, err)

	require.Len(t, ins.FailedRecords, 1)
	assert.Equal(t, "garbage", ins.FailedRecords[0].Raw)
	assert.Equal(t, testutil.TestImportID, ins.FailedRecords[0].ImportID)
	assert.Empty(t, ins.ParsedRecords)
	assert.Zero(t, ins.Catalog.Len())
	assert.Empty(t, ins.AddedBookIDs)
}

func TestMaterialize_ResolvedEdition(t *testing.T) {
	existing := []catalog.EditionISBN{{BookID: "book-1", EditionID: "ed-1", ISBN13: strPtr("9781663908353")}}
	m := newTestMaterializer(createNew, nil, existing)

	ins, err := m.Materialize([]extract.ProcessedData{processed(t, testutil.EidAlAdhaRecord)})
	require.NoError(t, err)

	c := ins.Catalog
	assert.Empty(t, c.Items)
	assert.Empty(t, c.Books)
	assert.Empty(t, c.Editions)
	assert.Empty(t, c.Authors)
	assert.Empty(t, c.Topics)
	assert.Empty(t, c.ReadingPrograms)
	assert.Empty(t, ins.AddedBookIDs)

	require.Len(t, c.Copies, 1)
	assert.Equal(t, "book-1", c.Copies[0].ItemID)
	assert.Equal(t, "ed-1", c.EditionCopies[0].EditionID)
	assert.Equal(t, "book-1", c.EditionCopies[0].BookID)
}

func TestMaterialize_SameEditionTwiceInBatch(t *testing.T) {
	m := newTestMaterializer(createNew, nil, nil)

	ins, err := m.Materialize([]extract.ProcessedData{
		processed(t, testutil.EidAlAdhaRecord),
		processed(t, testutil.EidAlAdhaRecord),
	})
	require.NoError(t, err)

	c := ins.Catalog
	assert.Len(t, c.Books, 1)
	require.Len(t, c.Copies, 2)
	assert.Equal(t, "T 32889", c.Copies[0].Barcode)
	assert.Equal(t, "000000", c.Copies[1].Barcode)
	assert.Equal(t, c.EditionCopies[0].EditionID, c.EditionCopies[1].EditionID)
	assert.NotEqual(t, *c.EditionCopies[0].ImportRecordID, *c.EditionCopies[1].ImportRecordID)
}

func TestMaterialize_CopyPolicy(t *testing.T) {
	isbn := strPtr("9780063069091")

	t.Run("missing barcode allocated", func(t *testing.T) {
		m := newTestMaterializer(createNew, []string{"000000", "000001"}, nil)
		ins, err := m.Materialize([]extract.ProcessedData{processed(t, testutil.SirLadybugRecord)})
		require.NoError(t, err)

		require.Len(t, ins.Catalog.Copies, 1)
		assert.Equal(t, "000002", ins.Catalog.Copies[0].Barcode)
		assert.Equal(t, "E TAB", *ins.Catalog.EditionCopies[0].CallNumber)
		assert.Len(t, ins.AddedBookIDs, 1)
	})

	t.Run("missing barcode skipped", func(t *testing.T) {
		m := newTestMaterializer(Policy{DuplicateBarcode: BehaviorCreateNew, NoBarcode: BehaviorSkip}, nil, nil)
		ins, err := m.Materialize([]extract.ProcessedData{processed(t, testutil.SirLadybugRecord)})
		require.NoError(t, err)

		assert.Len(t, ins.ParsedRecords, 1)
		assert.Zero(t, ins.Catalog.Len())
		assert.Empty(t, ins.AddedBookIDs)
	})

	t.Run("no copies becomes one copy", func(t *testing.T) {
		m := newTestMaterializer(createNew, nil, nil)
		ins, err := m.Materialize([]extract.ProcessedData{parsedOnly(&extract.ProcessedRecord{Title: "T", ISBN13: isbn})})
		require.NoError(t, err)

		require.Len(t, ins.Catalog.Copies, 1)
		assert.Equal(t, "000000", ins.Catalog.Copies[0].Barcode)
		assert.Nil(t, ins.Catalog.EditionCopies[0].CallNumber)
	})

	t.Run("no copies skipped", func(t *testing.T) {
		m := newTestMaterializer(Policy{DuplicateBarcode: BehaviorCreateNew, NoBarcode: BehaviorSkip}, nil, nil)
		ins, err := m.Materialize([]extract.ProcessedData{parsedOnly(&extract.ProcessedRecord{Title: "T", ISBN13: isbn})})
		require.NoError(t, err)

		assert.Zero(t, ins.Catalog.Len())
		_, ok := m.Editions.Resolve(nil, isbn)
		assert.False(t, ok)
	})

	t.Run("duplicate barcode reallocated even when skipping", func(t *testing.T) {
		m := newTestMaterializer(Policy{DuplicateBarcode: BehaviorSkip, NoBarcode: BehaviorSkip}, []string{"T 32889"}, nil)
		ins, err := m.Materialize([]extract.ProcessedData{processed(t, testutil.EidAlAdhaRecord)})
		require.NoError(t, err)

		require.Len(t, ins.Catalog.Copies, 1)
		assert.Equal(t, "000000", ins.Catalog.Copies[0].Barcode)
	})

	t.Run("mixed copies keep order", func(t *testing.T) {
		m := newTestMaterializer(Policy{DuplicateBarcode: BehaviorCreateNew, NoBarcode: BehaviorSkip}, []string{"000005"}, nil)
		ins, err := m.Materialize([]extract.ProcessedData{parsedOnly(&extract.ProcessedRecord{
			Title: "T",
			Copies: []extract.Copy{
				{Barcode: strPtr("000005"), CallNumber: "A"},
				{CallNumber: "B"},
				{Barcode: strPtr("000009"), CallNumber: "C", Location: strPtr("Main")},
			},
		})})
		require.NoError(t, err)

		c := ins.Catalog
		require.Len(t, c.Copies, 2)
		assert.Equal(t, "000000", c.Copies[0].Barcode)
		assert.Equal(t, "000009", c.Copies[1].Barcode)
		assert.Equal(t, "Main", *c.Copies[1].Location)
		assert.Equal(t, "C", *c.EditionCopies[1].CallNumber)
	})
}

func TestMaterialize_RowsShareLibrary(t *testing.T) {
	m := newTestMaterializer(createNew, nil, nil)
	ins, err := m.Materialize([]extract.ProcessedData{
		processed(t, testutil.EidAlAdhaRecord),
		processed(t, testutil.SirLadybugRecord),
	})
	require.NoError(t, err)

	c := ins.Catalog
	assert.Len(t, ins.AddedBookIDs, 2)
	for _, b := range c.Books {
		assert.Equal(t, testutil.TestLibraryID, b.LibraryID)
	}
	for _, cp := range c.Copies {
		assert.Equal(t, testutil.TestLibraryID, cp.LibraryID)
	}
	assert.Len(t, c.Topics, 3+11)
}
