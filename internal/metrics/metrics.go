/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/sap/argocd-app-migrator/pkg/parser"
)

const (
	prefix = "argocd_app_migrator"
)

const (
	ResultSucceeded = "succeeded"
	ResultFailed    = "failed"
)

var (
	Scans = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_scans_total",
			Help: "Total number of directory scans",
		},
	)
	FilesDiscovered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_files_discovered_total",
			Help: "Total number of YAML files found by directory scans",
		},
	)
	Results = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_parse_results_total",
			Help: "Parsed files per result (succeeded, failed)",
		},
		[]string{"result"},
	)
	LoadErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_load_errors_total",
			Help: "Files which could not be loaded, per reason",
		},
		[]string{"reason"},
	)
	FieldErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_field_errors_total",
			Help: "Files rejected by validation, per field and error type",
		},
		[]string{"field", "type"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		Scans,
		FilesDiscovered,
		Results,
		LoadErrors,
		FieldErrors,
	)
}

// Record a completed directory scan which found the given number of files.
func ObserveScan(numFiles int) {
	Scans.Inc()
	FilesDiscovered.Add(float64(numFiles))
}

// Record the given parse results.
func ObserveResults(results []*parser.Result) {
	for _, result := range results {
		if result.Succeeded() {
			Results.WithLabelValues(ResultSucceeded).Inc()
			continue
		}
		Results.WithLabelValues(ResultFailed).Inc()
		var loadErr *parser.LoadError
		var fieldErr *parser.FieldError
		switch {
		case errors.As(result.Err, &loadErr):
			LoadErrors.WithLabelValues(string(loadErr.Reason)).Inc()
		case errors.As(result.Err, &fieldErr):
			FieldErrors.WithLabelValues(fieldErr.Field(), string(fieldErr.Type)).Inc()
		}
	}
}

// Write all registered metrics to path, in the text exposition format.
func WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, metrics.Registry); err != nil {
		return errors.Wrapf(err, "error writing metrics to %s", path)
	}
	return nil
}
