/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package metrics_test

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sap/argocd-app-migrator/internal/metrics"
	"github.com/sap/argocd-app-migrator/pkg/parser"
)

var _ = Describe("testing: metrics.go", func() {
	// counters are global, so all assertions are made on deltas
	It("should count scans and discovered files", func() {
		scans := testutil.ToFloat64(metrics.Scans)
		files := testutil.ToFloat64(metrics.FilesDiscovered)
		metrics.ObserveScan(3)
		metrics.ObserveScan(0)
		Expect(testutil.ToFloat64(metrics.Scans)).To(Equal(scans + 2))
		Expect(testutil.ToFloat64(metrics.FilesDiscovered)).To(Equal(files + 3))
	})

	It("should count results by outcome and failure cause", func() {
		succeeded := testutil.ToFloat64(metrics.Results.WithLabelValues(metrics.ResultSucceeded))
		failed := testutil.ToFloat64(metrics.Results.WithLabelValues(metrics.ResultFailed))
		notFound := testutil.ToFloat64(metrics.LoadErrors.WithLabelValues(string(parser.LoadErrorNotFound)))
		missingProject := testutil.ToFloat64(metrics.FieldErrors.WithLabelValues("spec.project", string(parser.FieldErrorMissing)))

		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "app.yaml")
		Expect(os.WriteFile(path, []byte("apiVersion: argoproj.io/v1alpha1\nkind: Application\nmetadata:\n  name: a\nspec: {}\n"), 0o644)).To(Succeed())

		metrics.ObserveResults([]*parser.Result{
			{Path: "a.yaml", Application: &parser.Application{}},
			{Path: "b.yaml", Application: &parser.Application{}},
			parser.Parse(filepath.Join(dir, "missing.yaml")),
			parser.Parse(path),
			{Path: "c.yaml", Err: errors.New("something else")},
		})

		Expect(testutil.ToFloat64(metrics.Results.WithLabelValues(metrics.ResultSucceeded))).To(Equal(succeeded + 2))
		Expect(testutil.ToFloat64(metrics.Results.WithLabelValues(metrics.ResultFailed))).To(Equal(failed + 3))
		Expect(testutil.ToFloat64(metrics.LoadErrors.WithLabelValues(string(parser.LoadErrorNotFound)))).To(Equal(notFound + 1))
		Expect(testutil.ToFloat64(metrics.FieldErrors.WithLabelValues("spec.project", string(parser.FieldErrorMissing)))).To(Equal(missingProject + 1))
	})

	It("should write the metrics to a text file", func() {
		metrics.ObserveScan(1)
		path := filepath.Join(GinkgoT().TempDir(), "metrics.prom")
		Expect(metrics.WriteToTextfile(path)).To(Succeed())
		raw, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(ContainSubstring("# TYPE argocd_app_migrator_scans_total counter"))
		Expect(string(raw)).To(ContainSubstring("argocd_app_migrator_files_discovered_total"))
	})

	It("should fail writing to a non-existing directory", func() {
		path := filepath.Join(GinkgoT().TempDir(), "missing", "metrics.prom")
		Expect(metrics.WriteToTextfile(path)).To(MatchError(ContainSubstring("error writing metrics to")))
	})
})
