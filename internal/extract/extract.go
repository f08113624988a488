// Package extract derives catalog attributes from decoded MARC records.
package extract

import (
	"strconv"
	"strings"

	"marcingest/internal/marc"
)

// UnknownTitle is used when a record has neither a title nor a subtitle.
const UnknownTitle = "[Unknown]"

type Author struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Relation *string `json:"relation,omitempty"`
}

type ReadingProgram struct {
	Name         string   `json:"name"`
	Note         *string  `json:"note,omitempty"`
	PointValue   *float64 `json:"pointValue,omitempty"`
	ReadingLevel *float64 `json:"readingLevel,omitempty"`
}

// Copy describes one physical holding found in an 852 field.
type Copy struct {
	Barcode    *string `json:"barcode,omitempty"`
	CallNumber string  `json:"callNumber"`
	Location   *string `json:"location,omitempty"`
}

// ProcessedRecord is the normalized view of a record. Every attribute except
// the title is optional.
type ProcessedRecord struct {
	Title           string           `json:"title"`
	Authors         []Author         `json:"authors"`
	ISBN10          *string          `json:"isbn10,omitempty"`
	ISBN13          *string          `json:"isbn13,omitempty"`
	PageCount       *int             `json:"pageCount,omitempty"`
	PublishedYear   *int             `json:"publishedYear,omitempty"`
	PublisherName   *string          `json:"publisherName,omitempty"`
	SeriesName      *string          `json:"seriesName,omitempty"`
	SeriesEntry     *string          `json:"seriesEntry,omitempty"`
	Summary         *string          `json:"summary,omitempty"`
	Topics          []string         `json:"topics"`
	ReadingPrograms []ReadingProgram `json:"readingPrograms"`
	TargetAgeMin    *int             `json:"targetAgeMin,omitempty"`
	TargetAgeMax    *int             `json:"targetAgeMax,omitempty"`
	ReadingGrade    *float64         `json:"readingGrade,omitempty"`
	Copies          []Copy           `json:"copies"`

	Record *marc.Record `json:"-"`
}

// ProcessedData pairs a raw unit with its extraction. Parsed is nil when the
// unit could not be decoded; Err then holds the decode error.
type ProcessedData struct {
	Parsed *ProcessedRecord
	Raw    string
	Err    error
}

// Process turns a decode result into ProcessedData.
func Process(res marc.Result) ProcessedData {
	if res.Err != nil || res.Record == nil {
		return ProcessedData{Raw: res.Raw, Err: res.Err}
	}
	return ProcessedData{Parsed: Extract(res.Record), Raw: res.Raw}
}

// Extract derives a ProcessedRecord from a decoded record. It never fails;
// attributes that cannot be found are left unset.
func Extract(rec *marc.Record) *ProcessedRecord {
	p := &ProcessedRecord{
		Title:           title(rec),
		Authors:         authors(rec),
		ISBN10:          isbn(rec, 10),
		ISBN13:          isbn(rec, 13),
		PageCount:       pageCount(rec),
		PublishedYear:   publishedYear(rec),
		PublisherName:   formatted(rec, "260", "b"),
		SeriesName:      formatted(rec, "490", "a"),
		SeriesEntry:     firstValue(rec, "490", "v"),
		Summary:         summary(rec),
		Topics:          topics(rec),
		ReadingPrograms: readingPrograms(rec),
		ReadingGrade:    readingGrade(rec),
		Copies:          copies(rec),
		Record:          rec,
	}
	p.TargetAgeMin, p.TargetAgeMax = targetAges(rec)
	return p
}

func firstValue(rec *marc.Record, tag, code string) *string {
	f, ok := rec.Field(tag)
	if !ok {
		return nil
	}
	v, ok := f.First(code)
	if !ok {
		return nil
	}
	return &v
}

func formatted(rec *marc.Record, tag, code string) *string {
	v := firstValue(rec, tag, code)
	if v == nil {
		return nil
	}
	s := FormatTitle(*v)
	return &s
}

// title joins 245 $a and $b. An element that formats to nothing counts as
// missing.
func title(rec *marc.Record) string {
	main := titleElement(rec, "a")
	sub := titleElement(rec, "b")
	switch {
	case main != nil && sub != nil:
		return *main + ": " + *sub
	case main != nil:
		return *main
	case sub != nil:
		return *sub
	default:
		return UnknownTitle
	}
}

func titleElement(rec *marc.Record, code string) *string {
	s := formatted(rec, "245", code)
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// authors reads the main entry (first 100) followed by every added entry
// (700). Authors without a usable name are skipped and do not take an index.
func authors(rec *marc.Record) []Author {
	var fields []marc.DataField
	if main, ok := rec.Field("100"); ok {
		fields = append(fields, main)
	}
	fields = append(fields, rec.Fields("700")...)

	out := make([]Author, 0, len(fields))
	for _, f := range fields {
		a, ok := author(f, len(out))
		if !ok {
			continue
		}
		out = append(out, a)
	}
	return out
}

func author(f marc.DataField, index int) (Author, bool) {
	var parts []string
	for _, code := range []string{"c", "a", "b"} {
		if v, ok := f.First(code); ok && v != "" {
			parts = append(parts, v)
		}
	}
	name := CleanProperName(strings.Join(parts, " "))
	if name == "" {
		return Author{}, false
	}

	a := Author{Index: index, Name: name}
	if roles := f.All("e"); len(roles) > 0 {
		cleaned := make([]string, len(roles))
		for i, r := range roles {
			cleaned[i] = CleanRelation(r)
		}
		relation := strings.Join(cleaned, ", ")
		a.Relation = &relation
	}
	return a, true
}

func isbn(rec *marc.Record, length int) *string {
	for _, f := range rec.Fields("020") {
		for _, v := range f.All("a") {
			cleaned := strings.Map(func(r rune) rune {
				if (r >= '0' && r <= '9') || (length == 10 && r == 'X') {
					return r
				}
				return -1
			}, v)
			if len(cleaned) == length {
				return &cleaned
			}
		}
	}
	return nil
}

func pageCount(rec *marc.Record) *int {
	v := firstValue(rec, "300", "a")
	if v == nil {
		return nil
	}
	n, ok := ParsePageCount(*v)
	if !ok {
		return nil
	}
	return &n
}

func publishedYear(rec *marc.Record) *int {
	v := firstValue(rec, "260", "c")
	if v == nil {
		return nil
	}
	m := fourDigits.FindString(*v)
	if m == "" {
		return nil
	}
	year, _ := strconv.Atoi(m)
	return &year
}

func summary(rec *marc.Record) *string {
	v := firstValue(rec, "520", "a")
	if v == nil {
		return nil
	}
	s := CleanSummary(*v)
	return &s
}

func topics(rec *marc.Record) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, f := range rec.Fields("650") {
		for _, v := range f.All("a") {
			name := CleanProperName(v)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func readingPrograms(rec *marc.Record) []ReadingProgram {
	out := make([]ReadingProgram, 0)
	for _, f := range rec.Fields("526") {
		name, ok := f.First("a")
		if !ok || name == "" {
			continue
		}
		p := ReadingProgram{Name: name}
		if note, ok := f.First("z"); ok {
			p.Note = &note
		}
		p.PointValue = floatValue(f, "d")
		p.ReadingLevel = floatValue(f, "c")
		out = append(out, p)
	}
	return out
}

func floatValue(f marc.DataField, code string) *float64 {
	v, ok := f.First(code)
	if !ok {
		return nil
	}
	n, ok := ParseFloat(v)
	if !ok {
		return nil
	}
	return &n
}

// audienceNote returns subfield a of the first 521 with the given first
// indicator.
func audienceNote(rec *marc.Record, ind1 string) (string, bool) {
	for _, f := range rec.Fields("521") {
		if f.Ind1 != ind1 {
			continue
		}
		return f.First("a")
	}
	return "", false
}

func readingGrade(rec *marc.Record) *float64 {
	v, ok := audienceNote(rec, "0")
	if !ok {
		return nil
	}
	n, ok := ParseFloat(v)
	if !ok {
		return nil
	}
	return &n
}

// targetAges reads "Ages 6-8." style notes. A single number is a minimum.
func targetAges(rec *marc.Record) (*int, *int) {
	v, ok := audienceNote(rec, "1")
	if !ok {
		return nil, nil
	}
	m := ageRange.FindStringSubmatch(v)
	if m == nil {
		return nil, nil
	}
	lo, _ := strconv.Atoi(m[1])
	if m[2] == "" {
		return &lo, nil
	}
	hi, _ := strconv.Atoi(m[2])
	return &lo, &hi
}

func copies(rec *marc.Record) []Copy {
	out := make([]Copy, 0)
	for _, f := range rec.Fields("852") {
		var c Copy
		if barcode, ok := f.First("p"); ok && barcode != "" {
			c.Barcode = &barcode
		}

		var parts []string
		for _, code := range []string{"k", "h", "i"} {
			if v, ok := f.First(code); ok && v != "" {
				parts = append(parts, v)
			}
		}
		c.CallNumber = strings.Join(parts, " ")

		if location, ok := f.First("c"); ok {
			c.Location = &location
		}
		out = append(out, c)
	}
	return out
}
