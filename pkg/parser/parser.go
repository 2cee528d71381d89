/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Parse loads, validates and extracts the Argo CD Application manifest at path.
// Parse never panics on bad input, and never returns an error; failures are reported through the Err field of the result.
// The outcome depends on the file content only, so parsing the same file twice yields equal results.
func Parse(path string) *Result {
	content, err := load(path)
	if err != nil {
		return newFailure(path, err)
	}
	d := document(content)
	if err := validate(d); err != nil {
		return newFailure(path, err)
	}
	return newSuccess(path, extract(d))
}

// ParseBatch parses the given files sequentially. The result has the same length and order as paths.
func ParseBatch(paths []string) []*Result {
	results := make([]*Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, Parse(path))
	}
	return results
}

// ParseBatchConcurrently parses the given files with up to workers files being processed in parallel.
// The result has the same length and order as paths. Files not started when ctx is done are reported as failed.
func ParseBatchConcurrently(ctx context.Context, paths []string, workers int) []*Result {
	if workers <= 1 {
		return ParseBatch(paths)
	}

	log := log.FromContext(ctx)
	results := make([]*Result, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			results[i] = newFailure(path, errors.Wrap(err, "parsing cancelled"))
			continue
		}
		g.Go(func() error {
			result := Parse(path)
			if result.Succeeded() {
				log.V(1).Info("parsed application", "path", path, "name", result.Application.Metadata.Name)
			} else {
				log.V(1).Info("rejected file", "path", path, "reason", result.Message())
			}
			results[i] = result
			return nil
		})
	}
	// goroutines never return errors
	_ = g.Wait()

	return results
}
