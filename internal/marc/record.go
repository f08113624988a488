// Package marc decodes ISO2709 bibliographic records into a tag-keyed model.
//
// A record is a 24 byte leader, a directory of fixed-width entries and the
// field payloads, terminated by a group separator. Control fields (001-009)
// are kept verbatim; every other field is split into indicators and
// subfields.
package marc

const (
	RecordTerminator  = 0x1D
	FieldTerminator   = 0x1E
	SubfieldDelimiter = 0x1F

	LeaderLength = 24
)

// Record is a decoded ISO2709 record.
type Record struct {
	Leader        string                 `json:"leader" validate:"len=24"`
	ControlFields map[string]string      `json:"controlFields" validate:"dive,keys,marc_control_tag,endkeys"`
	DataFields    map[string][]DataField `json:"dataFields" validate:"dive,keys,marc_data_tag,endkeys,dive"`
}

// DataField is one occurrence of a variable data field. Repeated subfield
// codes keep their encounter order.
type DataField struct {
	Ind1      string              `json:"ind1" validate:"marc_indicator"`
	Ind2      string              `json:"ind2" validate:"marc_indicator"`
	Subfields map[string][]string `json:"subfields" validate:"dive,keys,marc_subfield_code,endkeys"`
}

func newRecord(leader string) *Record {
	return &Record{
		Leader:        leader,
		ControlFields: make(map[string]string),
		DataFields:    make(map[string][]DataField),
	}
}

// Control returns the value of a control field.
func (r *Record) Control(tag string) (string, bool) {
	v, ok := r.ControlFields[tag]
	return v, ok
}

// Fields returns every occurrence of a data field in directory order.
func (r *Record) Fields(tag string) []DataField {
	return r.DataFields[tag]
}

// Field returns the first occurrence of a data field.
func (r *Record) Field(tag string) (DataField, bool) {
	fields := r.DataFields[tag]
	if len(fields) == 0 {
		return DataField{}, false
	}
	return fields[0], true
}

// First returns the first value of a subfield.
func (f DataField) First(code string) (string, bool) {
	values := f.Subfields[code]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// All returns every value of a subfield.
func (f DataField) All(code string) []string {
	return f.Subfields[code]
}
