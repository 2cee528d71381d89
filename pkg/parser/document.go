/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// document is a decoded YAML document, i.e. a tree of maps, slices and scalars
// (string, bool, json.Number) as produced by sigs.k8s.io/yaml with number preservation.
type document map[string]any

func (d document) lookup(fields ...string) (any, bool) {
	value, found, err := unstructured.NestedFieldNoCopy(d, fields...)
	if err != nil {
		// some intermediate field is not a mapping
		return nil, false
	}
	return value, found
}

func (d document) has(fields ...string) bool {
	_, found := d.lookup(fields...)
	return found
}

// Return the given scalar field rendered as string; the empty string is returned if the field is missing or not a scalar.
func (d document) scalar(fields ...string) string {
	value, _ := d.lookup(fields...)
	s, _ := scalarString(value)
	return s
}

// Return the given scalar field rendered as string; nil is returned if the field is missing, null or not a scalar.
func (d document) optionalScalar(fields ...string) *string {
	value, _ := d.lookup(fields...)
	if s, ok := scalarString(value); ok {
		return &s
	}
	return nil
}

// Return the given mapping with values rendered as strings; the result is never nil.
func (d document) stringMap(fields ...string) map[string]string {
	result := make(map[string]string)
	value, _ := d.lookup(fields...)
	if m, ok := value.(map[string]any); ok {
		for k, v := range m {
			result[k] = cast.ToString(v)
		}
	}
	return result
}

func dottedPath(fields ...string) string {
	return strings.Join(fields, ".")
}

func scalarString(value any) (string, bool) {
	switch value.(type) {
	case string, bool, json.Number, float64, float32, int, int32, int64, uint, uint32, uint64:
		s, err := cast.ToStringE(value)
		return s, err == nil
	default:
		return "", false
	}
}

func isScalarOrNull(value any) bool {
	if value == nil {
		return true
	}
	_, ok := scalarString(value)
	return ok
}

// Whether value is null or an empty scalar, mapping or list.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
