// Package queue carries import job requests in and embedding jobs out.
package queue

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobMessage asks for an uploaded MARC file to be imported.
type JobMessage struct {
	BucketName string `json:"bucketName" validate:"required"`
	FileKey    string `json:"fileKey" validate:"required"`
	ImportID   string `json:"importId" validate:"required"`
	LibraryID  string `json:"libraryId" validate:"required"`
}

// EmbeddingMessage asks for embeddings to be generated for newly added books.
type EmbeddingMessage struct {
	BookIDs []string `json:"bookIds" validate:"required,min=1,dive,required"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InvalidJobMessageError reports a message that is not valid JSON or is
// missing required fields. Such messages are dropped.
type InvalidJobMessageError struct {
	Fields []FieldError
	Err    error
}

func (e *InvalidJobMessageError) Error() string {
	if e.Err != nil {
		return "invalid job message: " + e.Err.Error()
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "invalid job message: " + strings.Join(msgs, "; ")
}

func (e *InvalidJobMessageError) Unwrap() error {
	return e.Err
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// DecodeJobMessage parses and validates a job message body.
func DecodeJobMessage(body []byte) (JobMessage, error) {
	var msg JobMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return JobMessage{}, &InvalidJobMessageError{Err: err}
	}
	if err := Validate(msg); err != nil {
		return JobMessage{}, err
	}
	return msg, nil
}

// Validate checks a message against its validate tags.
func Validate(msg any) error {
	err := validate.Struct(msg)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &InvalidJobMessageError{Err: err}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fe.Field())
		case "min":
			message = fmt.Sprintf("%s must have at least %s entries", fe.Field(), fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", fe.Field())
		}
		fields = append(fields, FieldError{Field: fe.Field(), Message: message})
	}
	return &InvalidJobMessageError{Fields: fields}
}
