/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package parser

const (
	ApplicationAPIVersion = "argoproj.io/v1alpha1"
	ApplicationKind       = "Application"
)

// Application is the normalized representation of an Argo CD Application manifest.
type Application struct {
	Metadata    Metadata    `json:"metadata"`
	Project     string      `json:"project"`
	Source      Source      `json:"source"`
	Destination Destination `json:"destination"`
	// True if the manifest defines a non-null spec.syncPolicy; the policy itself is not retained.
	EnableSyncPolicy bool `json:"enable_sync_policy"`
}

type Metadata struct {
	Name string `json:"name"`
	// Never nil.
	Annotations map[string]string `json:"annotations"`
	// Never nil.
	Labels map[string]string `json:"labels"`
}

type Source struct {
	RepoURL string `json:"repo_url"`
	// Taken from spec.source.targetRevision.
	Revision string `json:"revision"`
	// Taken from spec.source.path.
	ManifestPath string `json:"manifest_path"`
	// Nil if spec.source.directory is not present in the manifest.
	Directory *SourceDirectory `json:"directory,omitempty"`
}

type SourceDirectory struct {
	Recurse bool `json:"recurse"`
}

type Destination struct {
	Server    *string `json:"server,omitempty"`
	Name      *string `json:"name,omitempty"`
	Namespace string  `json:"namespace"`
}

// Result is the outcome of parsing a single file. Exactly one of Application and Err is set.
type Result struct {
	Path        string
	Application *Application
	Err         error
}

func (r *Result) Succeeded() bool {
	return r.Err == nil
}

// Message returns the human readable reason for a failed parse, or the empty string.
func (r *Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

func newSuccess(path string, application *Application) *Result {
	return &Result{Path: path, Application: application}
}

func newFailure(path string, err error) *Result {
	return &Result{Path: path, Err: err}
}
