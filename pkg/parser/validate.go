/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"github.com/spf13/cast"
)

// Check that the given document has the shape of an Argo CD Application.
// Fields are checked in document order (apiVersion, kind, metadata, spec.project, spec.source, spec.destination),
// and the first violation is returned as *FieldError. If validate returns nil, extract cannot fail.
func validate(d document) error {
	if err := requireLiteral(d, ApplicationAPIVersion, "apiVersion"); err != nil {
		return err
	}
	if err := requireLiteral(d, ApplicationKind, "kind"); err != nil {
		return err
	}

	if err := requireMapping(d, "metadata"); err != nil {
		return err
	}
	if err := requireScalar(d, "metadata", "name"); err != nil {
		return err
	}
	if d.scalar("metadata", "name") == "" {
		return emptyField("metadata.name")
	}
	if err := optionalScalarMap(d, "metadata", "annotations"); err != nil {
		return err
	}
	if err := optionalScalarMap(d, "metadata", "labels"); err != nil {
		return err
	}

	if err := requireMapping(d, "spec"); err != nil {
		return err
	}
	if err := requireScalar(d, "spec", "project"); err != nil {
		return err
	}

	if err := requireMapping(d, "spec", "source"); err != nil {
		return err
	}
	for _, field := range []string{"repoURL", "targetRevision", "path"} {
		if err := requireScalar(d, "spec", "source", field); err != nil {
			return err
		}
	}
	if directory, ok := d.lookup("spec", "source", "directory"); ok {
		if directory, ok := directory.(map[string]any); ok {
			if recurse := directory["recurse"]; recurse != nil {
				if _, err := cast.ToBoolE(recurse); err != nil {
					return invalidType("spec.source.directory.recurse", "bool")
				}
			}
		}
	}

	if err := requireMapping(d, "spec", "destination"); err != nil {
		return err
	}
	if !d.has("spec", "destination", "server") && !d.has("spec", "destination", "name") {
		return missingField("spec.destination.server", "spec.destination.name")
	}
	if err := requireScalar(d, "spec", "destination", "namespace"); err != nil {
		return err
	}
	for _, field := range []string{"server", "name"} {
		if value, _ := d.lookup("spec", "destination", field); !isScalarOrNull(value) {
			return invalidType(dottedPath("spec", "destination", field), "string")
		}
	}

	return nil
}

func requireLiteral(d document, literal string, fields ...string) error {
	value, ok := d.lookup(fields...)
	if !ok {
		return missingField(dottedPath(fields...))
	}
	if s, ok := value.(string); !ok || s != literal {
		return invalidValue(dottedPath(fields...), value, literal)
	}
	return nil
}

func requireMapping(d document, fields ...string) error {
	value, ok := d.lookup(fields...)
	if !ok {
		return missingField(dottedPath(fields...))
	}
	if _, ok := value.(map[string]any); !ok {
		return invalidType(dottedPath(fields...), "mapping")
	}
	return nil
}

func requireScalar(d document, fields ...string) error {
	value, ok := d.lookup(fields...)
	if !ok {
		return missingField(dottedPath(fields...))
	}
	if _, ok := scalarString(value); !ok {
		return invalidType(dottedPath(fields...), "string")
	}
	return nil
}

// An optional mapping of strings; if present, it may be empty (in any form, e.g. null, or an empty list),
// or a mapping with scalar (or null) values.
func optionalScalarMap(d document, fields ...string) error {
	value, ok := d.lookup(fields...)
	if !ok || isEmpty(value) {
		return nil
	}
	m, ok := value.(map[string]any)
	if !ok {
		return invalidType(dottedPath(fields...), "mapping of strings")
	}
	for _, v := range m {
		if !isScalarOrNull(v) {
			return invalidType(dottedPath(fields...), "mapping of strings")
		}
	}
	return nil
}
