/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"fmt"
	"strings"
)

type LoadErrorReason string

const (
	LoadErrorNotFound LoadErrorReason = "NotFound"
	LoadErrorRead     LoadErrorReason = "Read"
	LoadErrorEmpty    LoadErrorReason = "Empty"
	LoadErrorSyntax   LoadErrorReason = "Syntax"
)

// LoadError is reported if a file cannot be read, or its content is not a single YAML document.
type LoadError struct {
	Reason LoadErrorReason
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	switch e.Reason {
	case LoadErrorNotFound:
		return fmt.Sprintf("File not found: %s", e.Path)
	case LoadErrorRead:
		return fmt.Sprintf("Failed to read file: %s", e.Err)
	case LoadErrorEmpty:
		return "Empty YAML file"
	case LoadErrorSyntax:
		return fmt.Sprintf("Invalid YAML syntax: %s", e.Err)
	default:
		return fmt.Sprintf("Failed to load file %s: %s", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Cause() error {
	return e.Err
}

type FieldErrorType string

const (
	// A required field is missing; if more than one field is listed, at least one of them is required.
	FieldErrorMissing FieldErrorType = "Missing"
	// A field has an unexpected value (e.g. apiVersion or kind).
	FieldErrorInvalidValue FieldErrorType = "InvalidValue"
	// A field has a value of the wrong type.
	FieldErrorInvalidType FieldErrorType = "InvalidType"
	// A required string field is empty.
	FieldErrorEmpty FieldErrorType = "Empty"
)

// FieldError is reported if a manifest does not have the shape of an Argo CD Application.
// Fields are denoted by their dotted path, such as spec.source.repoURL.
type FieldError struct {
	Type FieldErrorType
	// Dotted paths of the affected fields; contains more than one entry only for alternatives.
	Fields []string
	// Offending value (for FieldErrorInvalidValue).
	Value any
	// Expected value or type (for FieldErrorInvalidValue and FieldErrorInvalidType).
	Expected string
}

func (e *FieldError) Error() string {
	field := strings.Join(e.Fields, " or ")
	switch e.Type {
	case FieldErrorMissing:
		if len(e.Fields) > 1 {
			return fmt.Sprintf("Missing required field: %s (at least one required)", field)
		}
		return fmt.Sprintf("Missing required field: %s", field)
	case FieldErrorInvalidValue:
		return fmt.Sprintf("Invalid %s: %v (expected %s)", field, e.Value, e.Expected)
	case FieldErrorInvalidType:
		return fmt.Sprintf("Invalid field type: %s (expected %s)", field, e.Expected)
	case FieldErrorEmpty:
		return fmt.Sprintf("Invalid field value: %s (must not be empty)", field)
	default:
		return fmt.Sprintf("Invalid field: %s", field)
	}
}

// Field returns the dotted path of the (first) affected field.
func (e *FieldError) Field() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0]
}

func missingField(fields ...string) *FieldError {
	return &FieldError{Type: FieldErrorMissing, Fields: fields}
}

func invalidValue(field string, value any, expected string) *FieldError {
	return &FieldError{Type: FieldErrorInvalidValue, Fields: []string{field}, Value: value, Expected: expected}
}

func invalidType(field string, expected string) *FieldError {
	return &FieldError{Type: FieldErrorInvalidType, Fields: []string{field}, Expected: expected}
}

func emptyField(field string) *FieldError {
	return &FieldError{Type: FieldErrorEmpty, Fields: []string{field}}
}
