package schema

import (
	"fmt"

	"github.com/aretw0/tendril/pkg/term"
)

// Schema is a map of field names to their expected types.
// Example: {"title": String(), "width": Int(), "layers": Slice(Any())}
type Schema map[string]Type

// Validate checks a resolved mapping against the schema.
// Returns an error with all validation failures found.
//
// A field whose value is still a symbolic reference fails validation with
// a dedicated reason: resolution is deliberately lenient about unbound
// references, so this is where typos surface for callers that want them
// caught.
func Validate(schema Schema, m *term.Map) error {
	if len(schema) == 0 {
		// No schema = no validation
		return nil
	}

	var errs []error

	for fieldName, fieldType := range schema {
		value, exists := m.Get(fieldName)
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "required",
				Value:  nil,
			})
			continue
		}

		if err := validateTerm(fieldType, value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}

// ValidateFields validates only specific fields of the mapping against the
// schema. Missing fields are treated as an error.
func ValidateFields(schema Schema, m *term.Map, fields ...string) error {
	if len(fields) == 0 {
		// No fields to validate
		return nil
	}

	var errs []error

	for _, fieldName := range fields {
		fieldType, exists := schema[fieldName]
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "not defined in schema",
				Value:  nil,
			})
			continue
		}

		value, fieldExists := m.Get(fieldName)
		if !fieldExists {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "required",
				Value:  nil,
			})
			continue
		}

		if err := validateTerm(fieldType, value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}

func validateTerm(fieldType Type, value term.Term) error {
	if ref, isRef := value.(term.Ref); isRef {
		return fmt.Errorf("unresolved reference %s", ref.String())
	}
	plain, err := term.ToGo(value)
	if err != nil {
		return err
	}
	return fieldType.Validate(plain)
}

// validateGo checks a plain nested mapping against a schema; used by
// ObjectType once the tree has been converted to Go values.
func validateGo(schema Schema, data map[string]any) error {
	var errs []error

	for fieldName, fieldType := range schema {
		value, exists := data[fieldName]
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "required",
				Value:  nil,
			})
			continue
		}

		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}
