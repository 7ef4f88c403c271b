package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// api errors
	ErrInvalidParams   = errors.New("invalid request parameters")
	ErrNonLiteralClass = errors.New("only static class strings can be expanded")
	ErrExpandFailed    = errors.New("class expansion failed")
)

// ErrorField points at a single offending request field.
type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

// getBindingErrorMessage maps a validator tag to a user-facing message.
func getBindingErrorMessage(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "min":
		return "Not enough items"
	case "max":
		return "Too many items or value is too long"
	default:
		return fmt.Sprintf("Failed validation: %s", tag)
	}
}

// ExtractErrorFields converts a gin binding error into per-field details.
// Field names come from json tags, see the validator setup in main.
func ExtractErrorFields(err error) []ErrorField {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(validationErrs))

	for _, fe := range validationErrs {
		fields = append(fields, ErrorField{
			FieldName:    fe.Field(),
			ErrorMessage: getBindingErrorMessage(fe.Tag()),
		})
	}

	return fields
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
