package marc

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func schema() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("marc_control_tag", func(fl validator.FieldLevel) bool {
			return isControlTag(fl.Field().String())
		})
		_ = validate.RegisterValidation("marc_data_tag", func(fl validator.FieldLevel) bool {
			return isDataTag(fl.Field().String())
		})
		_ = validate.RegisterValidation("marc_indicator", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return len(s) == 1 && (s[0] == ' ' || isDigit(s[0]) || isLower(s[0]))
		})
		_ = validate.RegisterValidation("marc_subfield_code", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return len(s) == 1 && (isDigit(s[0]) || isLower(s[0]))
		})
	})
	return validate
}

// Validate checks the structural shape of a record: a 24 character leader,
// control tags 001-009, data tags 010-999, indicators and subfield codes
// drawn from digits and lower case letters.
func Validate(r *Record) error {
	if err := schema().Struct(r); err != nil {
		return &SchemaValidationError{Err: err}
	}
	return nil
}

// isControlTag matches 001 through 009.
func isControlTag(tag string) bool {
	return len(tag) == 3 && tag[0] == '0' && tag[1] == '0' && tag[2] >= '1' && tag[2] <= '9'
}

// isDataTag matches three digit tags outside 000-009.
func isDataTag(tag string) bool {
	if len(tag) != 3 || !isDigit(tag[0]) || !isDigit(tag[1]) || !isDigit(tag[2]) {
		return false
	}
	return tag[0] != '0' || tag[1] != '0'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
