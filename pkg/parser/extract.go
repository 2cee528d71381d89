/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"github.com/spf13/cast"
)

// Extract the normalized application from a document which passed validate().
func extract(d document) *Application {
	return &Application{
		Metadata: Metadata{
			Name:        d.scalar("metadata", "name"),
			Annotations: d.stringMap("metadata", "annotations"),
			Labels:      d.stringMap("metadata", "labels"),
		},
		Project: d.scalar("spec", "project"),
		Source: Source{
			RepoURL:      d.scalar("spec", "source", "repoURL"),
			Revision:     d.scalar("spec", "source", "targetRevision"),
			ManifestPath: d.scalar("spec", "source", "path"),
			Directory:    extractDirectory(d),
		},
		Destination: Destination{
			Server:    d.optionalScalar("spec", "destination", "server"),
			Name:      d.optionalScalar("spec", "destination", "name"),
			Namespace: d.scalar("spec", "destination", "namespace"),
		},
		EnableSyncPolicy: extractSyncPolicy(d),
	}
}

// A present directory key always yields a directory, even if its value is null, empty, or not a mapping.
func extractDirectory(d document) *SourceDirectory {
	value, ok := d.lookup("spec", "source", "directory")
	if !ok {
		return nil
	}
	directory := &SourceDirectory{}
	if m, ok := value.(map[string]any); ok {
		directory.Recurse = cast.ToBool(m["recurse"])
	}
	return directory
}

// Only presence matters; any non-null value (including an empty mapping or string) counts as present.
func extractSyncPolicy(d document) bool {
	value, ok := d.lookup("spec", "syncPolicy")
	return ok && value != nil
}
