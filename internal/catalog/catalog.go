// Package catalog holds the library catalog rows written by imports.
package catalog

// Item is the catalog entry a book hangs off.
type Item struct {
	ID        string
	LibraryID string
}

type Book struct {
	ItemID       string
	LibraryID    string
	Title        string
	ReadingGrade *float64
	SeriesEntry  *string
	SeriesName   *string
	Summary      *string
	TargetAgeMax *int
	TargetAgeMin *int
}

type Edition struct {
	ID            string
	BookID        string
	LibraryID     string
	ISBN10        *string
	ISBN13        *string
	PageCount     *int
	PublishedYear *int
	PublisherName *string
}

type Author struct {
	ID        string
	BookID    string
	LibraryID string
	Index     int
	Name      string
	Relation  *string
}

type ReadingProgram struct {
	ID           string
	BookID       string
	LibraryID    string
	Name         string
	Note         *string
	PointValue   *float64
	ReadingLevel *float64
}

type Topic struct {
	ID        string
	BookID    string
	LibraryID string
	Name      string
}

// Copy is a physical, barcoded copy of a catalog item. Barcodes are unique
// per library.
type Copy struct {
	ID        string
	ItemID    string
	LibraryID string
	Barcode   string
	Location  *string
}

// EditionCopy ties a copy to the edition it is a copy of and to the import
// record it came from. It shares its ID with the Copy.
type EditionCopy struct {
	ID             string
	BookID         string
	EditionID      string
	LibraryID      string
	CallNumber     *string
	ImportRecordID *string
}

// EditionISBN identifies an existing edition by its ISBNs.
type EditionISBN struct {
	BookID    string
	EditionID string
	ISBN10    *string
	ISBN13    *string
}

// Batch is every catalog row produced for one import batch.
type Batch struct {
	Items           []Item
	Books           []Book
	Editions        []Edition
	Authors         []Author
	ReadingPrograms []ReadingProgram
	Topics          []Topic
	Copies          []Copy
	EditionCopies   []EditionCopy
}

// Len is the number of rows in the batch.
func (b *Batch) Len() int {
	return len(b.Items) + len(b.Books) + len(b.Editions) + len(b.Authors) +
		len(b.ReadingPrograms) + len(b.Topics) + len(b.Copies) + len(b.EditionCopies)
}
