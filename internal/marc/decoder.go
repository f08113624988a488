package marc

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"sort"
	"strings"
)

// DefaultChunkSize is the read size used by Records when none is given.
const DefaultChunkSize = 64 * 1024

// Result is the outcome of decoding one terminator-delimited unit. Exactly
// one of Record and Err is set.
type Result struct {
	Raw    string
	Offset int64
	Record *Record
	Err    error
}

// Decoder splits a byte stream into record units. Chunks are appended with
// Write and complete units are pulled with Next; bytes after the last
// terminator stay buffered until more input arrives.
type Decoder struct {
	buf      []byte
	off      int
	consumed int64
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Write appends a chunk of input. It never fails.
func (d *Decoder) Write(p []byte) (int, error) {
	if d.off > 0 {
		n := copy(d.buf, d.buf[d.off:])
		d.buf = d.buf[:n]
		d.off = 0
	}
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Next decodes the next complete unit. It returns false when no record
// terminator is buffered.
func (d *Decoder) Next() (Result, bool) {
	i := bytes.IndexByte(d.buf[d.off:], RecordTerminator)
	if i < 0 {
		return Result{}, false
	}

	raw := cleanUnit(d.buf[d.off : d.off+i])
	res := Result{Raw: raw, Offset: d.consumed}
	d.off += i + 1
	d.consumed += int64(i + 1)

	res.Record, res.Err = Decode(raw)
	return res, true
}

// cleanUnit replaces invalid UTF-8 with U+FFFD and drops NUL bytes. Record
// structure is ASCII, so delimiters survive unchanged.
func cleanUnit(p []byte) string {
	s := strings.ToValidUTF8(string(p), "\uFFFD")
	return strings.ReplaceAll(s, "\x00", "")
}

// Buffered reports the size of the incomplete trailing unit.
func (d *Decoder) Buffered() int {
	return len(d.buf) - d.off
}

// Records returns a lazy sequence of decode results read from r. Input is
// only read when the consumer asks for a unit that is not yet buffered. A
// malformed unit is yielded as a Result with Err set and decoding carries on;
// the error value of the sequence is reserved for failures of r itself.
// Trailing bytes without a record terminator are discarded.
func Records(r io.Reader, chunkSize int) iter.Seq2[Result, error] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return func(yield func(Result, error) bool) {
		dec := NewDecoder()
		chunk := make([]byte, chunkSize)

		var readErr error
		done := false
		for {
			for res, ok := dec.Next(); ok; res, ok = dec.Next() {
				if !yield(res, nil) {
					return
				}
			}

			if done {
				if readErr != nil {
					yield(Result{}, readErr)
				}
				return
			}

			n, err := r.Read(chunk)
			if n > 0 {
				_, _ = dec.Write(chunk[:n])
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr = err
				}
				done = true
			}
		}
	}
}

type directoryEntry struct {
	tag   string
	start int
}

// Decode parses a single record unit, without its record terminator.
func Decode(raw string) (*Record, error) {
	if len(raw) < LeaderLength {
		return nil, &MalformedLeaderError{Leader: raw, Reason: "shorter than 24 characters"}
	}

	leader := raw[:LeaderLength]
	lenOfFieldLength, ok1 := digitValue(leader[20])
	lenOfStartingPos, ok2 := digitValue(leader[21])
	if !ok1 || !ok2 {
		return nil, &MalformedLeaderError{Leader: leader, Reason: "entry map widths are not numeric"}
	}
	width := 3 + lenOfFieldLength + lenOfStartingPos

	body := raw[LeaderLength:]
	var directory string
	var payloads []string
	if end := strings.IndexByte(body, FieldTerminator); end >= 0 {
		directory = body[:end]
		payloads = strings.Split(body[end+1:], string(rune(FieldTerminator)))
		// the field terminator closing the last field leaves an empty tail
		payloads = payloads[:len(payloads)-1]
	} else {
		directory = body
	}

	entries := make([]directoryEntry, 0, len(directory)/width)
	for i := 0; i+width <= len(directory); i += width {
		chunk := directory[i : i+width]
		start, ok := parseDigits(chunk[3+lenOfFieldLength:])
		if !ok {
			return nil, &MalformedDirectoryError{Entry: chunk}
		}
		entries = append(entries, directoryEntry{tag: chunk[:3], start: start})
	}

	if len(entries) != len(payloads) {
		return nil, &FieldCountMismatchError{DirectoryEntries: len(entries), Fields: len(payloads)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].start < entries[j].start
	})

	rec := newRecord(leader)
	for i, e := range entries {
		if isControlTag(e.tag) {
			rec.ControlFields[e.tag] = payloads[i]
			continue
		}
		rec.DataFields[e.tag] = append(rec.DataFields[e.tag], decodeDataField(payloads[i]))
	}

	if err := Validate(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeDataField(payload string) DataField {
	parts := strings.Split(payload, string(rune(SubfieldDelimiter)))

	f := DataField{Subfields: make(map[string][]string)}
	if indicators := parts[0]; len(indicators) > 0 {
		f.Ind1 = indicators[:1]
		if len(indicators) > 1 {
			f.Ind2 = indicators[1:2]
		}
	}

	for _, sub := range parts[1:] {
		var code, value string
		if sub != "" {
			code, value = sub[:1], sub[1:]
		}
		f.Subfields[code] = append(f.Subfields[code], value)
	}
	return f
}

func digitValue(c byte) (int, bool) {
	if !isDigit(c) {
		return 0, false
	}
	return int(c - '0'), true
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		v, ok := digitValue(s[i])
		if !ok {
			return 0, false
		}
		n = n*10 + v
	}
	return n, true
}
