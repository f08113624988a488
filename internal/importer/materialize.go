package importer

import (
	"encoding/json"
	"fmt"

	"marcingest/internal/catalog"
	"marcingest/internal/extract"

	"github.com/google/uuid"
)

// FailedRecord keeps the raw bytes of a unit that could not be decoded.
type FailedRecord struct {
	ID       string
	ImportID string
	Raw      string
}

// ParsedRecord keeps a decoded record and its raw bytes. Copies created from
// the record point back at it.
type ParsedRecord struct {
	ID       string
	ImportID string
	Parsed   []byte
	Raw      string
}

// BatchInserts is everything one batch writes, committed in a single
// transaction.
type BatchInserts struct {
	FailedRecords []FailedRecord
	ParsedRecords []ParsedRecord
	Catalog       catalog.Batch
	// AddedBookIDs lists the books created by this batch, in record order.
	AddedBookIDs []string
}

// Materializer turns processed records into rows. Barcodes and Editions are
// shared across the batches of a job so later batches see earlier ones.
type Materializer struct {
	ImportID  string
	LibraryID string
	Policy    Policy
	Barcodes  *BarcodeAllocator
	Editions  *EditionResolver
	NewID     func() string
}

func (m *Materializer) newID() string {
	if m.NewID != nil {
		return m.NewID()
	}
	return uuid.NewString()
}

// Materialize builds the inserts for one batch, reserving barcodes and
// registering new editions as it goes.
func (m *Materializer) Materialize(batch []extract.ProcessedData) (*BatchInserts, error) {
	ins := &BatchInserts{}
	for _, data := range batch {
		if data.Parsed == nil {
			ins.FailedRecords = append(ins.FailedRecords, FailedRecord{
				ID:       m.newID(),
				ImportID: m.ImportID,
				Raw:      data.Raw,
			})
			continue
		}
		if err := m.addRecord(ins, data); err != nil {
			return nil, err
		}
	}
	return ins, nil
}

func (m *Materializer) addRecord(ins *BatchInserts, data extract.ProcessedData) error {
	p := data.Parsed

	parsed, err := json.Marshal(p.Record)
	if err != nil {
		return fmt.Errorf("marshal parsed record: %w", err)
	}
	recordID := m.newID()
	ins.ParsedRecords = append(ins.ParsedRecords, ParsedRecord{
		ID:       recordID,
		ImportID: m.ImportID,
		Parsed:   parsed,
		Raw:      data.Raw,
	})

	copies := m.acceptCopies(p.Copies)
	if len(copies) == 0 {
		return nil
	}

	ref, ok := m.Editions.Resolve(p.ISBN10, p.ISBN13)
	if !ok {
		ref = m.addBook(ins, p)
	}

	for _, c := range copies {
		id := m.newID()
		ins.Catalog.Copies = append(ins.Catalog.Copies, catalog.Copy{
			ID:        id,
			ItemID:    ref.BookID,
			LibraryID: m.LibraryID,
			Barcode:   *c.Barcode,
			Location:  c.Location,
		})

		ec := catalog.EditionCopy{
			ID:             id,
			BookID:         ref.BookID,
			EditionID:      ref.EditionID,
			LibraryID:      m.LibraryID,
			ImportRecordID: &recordID,
		}
		if c.CallNumber != "" {
			callNumber := c.CallNumber
			ec.CallNumber = &callNumber
		}
		ins.Catalog.EditionCopies = append(ins.Catalog.EditionCopies, ec)
	}
	return nil
}

// acceptCopies applies the job's barcode policy. A record without copies is
// treated as a single copy without a barcode. Every returned copy has a
// reserved barcode.
func (m *Materializer) acceptCopies(copies []extract.Copy) []extract.Copy {
	if len(copies) == 0 {
		copies = []extract.Copy{{}}
	}

	accepted := make([]extract.Copy, 0, len(copies))
	for _, c := range copies {
		switch {
		case c.Barcode == nil:
			if m.Policy.NoBarcode == BehaviorSkip {
				continue
			}
			barcode := m.Barcodes.Next()
			c.Barcode = &barcode
		case m.Barcodes.Taken(*c.Barcode):
			// Taken barcodes are always reissued; Policy.DuplicateBarcode is
			// not consulted.
			barcode := m.Barcodes.Next()
			c.Barcode = &barcode
		default:
			m.Barcodes.Reserve(*c.Barcode)
		}
		accepted = append(accepted, c)
	}
	return accepted
}

func (m *Materializer) addBook(ins *BatchInserts, p *extract.ProcessedRecord) EditionRef {
	ref := EditionRef{BookID: m.newID(), EditionID: m.newID()}
	bookID, lib := ref.BookID, m.LibraryID

	ins.AddedBookIDs = append(ins.AddedBookIDs, bookID)
	ins.Catalog.Items = append(ins.Catalog.Items, catalog.Item{ID: bookID, LibraryID: lib})
	ins.Catalog.Books = append(ins.Catalog.Books, catalog.Book{
		ItemID:       bookID,
		LibraryID:    lib,
		Title:        p.Title,
		ReadingGrade: p.ReadingGrade,
		SeriesEntry:  p.SeriesEntry,
		SeriesName:   p.SeriesName,
		Summary:      p.Summary,
		TargetAgeMax: p.TargetAgeMax,
		TargetAgeMin: p.TargetAgeMin,
	})
	ins.Catalog.Editions = append(ins.Catalog.Editions, catalog.Edition{
		ID:            ref.EditionID,
		BookID:        bookID,
		LibraryID:     lib,
		ISBN10:        p.ISBN10,
		ISBN13:        p.ISBN13,
		PageCount:     p.PageCount,
		PublishedYear: p.PublishedYear,
		PublisherName: p.PublisherName,
	})

	for _, a := range p.Authors {
		ins.Catalog.Authors = append(ins.Catalog.Authors, catalog.Author{
			ID: m.newID(), BookID: bookID, LibraryID: lib, Index: a.Index, Name: a.Name, Relation: a.Relation,
		})
	}
	for _, rp := range p.ReadingPrograms {
		ins.Catalog.ReadingPrograms = append(ins.Catalog.ReadingPrograms, catalog.ReadingProgram{
			ID: m.newID(), BookID: bookID, LibraryID: lib, Name: rp.Name, Note: rp.Note,
			PointValue: rp.PointValue, ReadingLevel: rp.ReadingLevel,
		})
	}
	for _, topic := range p.Topics {
		ins.Catalog.Topics = append(ins.Catalog.Topics, catalog.Topic{
			ID: m.newID(), BookID: bookID, LibraryID: lib, Name: topic,
		})
	}

	m.Editions.Register(ref, p.ISBN10, p.ISBN13)
	return ref
}
