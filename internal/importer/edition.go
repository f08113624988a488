package importer

import (
	"strings"

	"marcingest/internal/catalog"
)

// EditionRef points at an existing book and edition.
type EditionRef struct {
	BookID    string
	EditionID string
}

// EditionResolver finds the edition a record belongs to by ISBN. Keys are
// case-insensitive so ISBN-10 check digits match either way.
type EditionResolver struct {
	byISBN map[string]EditionRef
}

func NewEditionResolver(existing []catalog.EditionISBN) *EditionResolver {
	r := &EditionResolver{byISBN: make(map[string]EditionRef, len(existing)*2)}
	for _, e := range existing {
		r.Register(EditionRef{BookID: e.BookID, EditionID: e.EditionID}, e.ISBN10, e.ISBN13)
	}
	return r
}

// Resolve looks up the ISBN-10 first and falls back to the ISBN-13.
func (r *EditionResolver) Resolve(isbn10, isbn13 *string) (EditionRef, bool) {
	for _, isbn := range []*string{isbn10, isbn13} {
		if isbn == nil || *isbn == "" {
			continue
		}
		if ref, ok := r.byISBN[strings.ToUpper(*isbn)]; ok {
			return ref, true
		}
	}
	return EditionRef{}, false
}

// Register maps each non-empty ISBN to ref.
func (r *EditionResolver) Register(ref EditionRef, isbns ...*string) {
	for _, isbn := range isbns {
		if isbn == nil || *isbn == "" {
			continue
		}
		r.byISBN[strings.ToUpper(*isbn)] = ref
	}
}

func (r *EditionResolver) Len() int {
	return len(r.byISBN)
}
