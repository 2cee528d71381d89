/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package templatex_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sap/argocd-app-migrator/internal/templatex"
)

var _ = Describe("testing: template.go", func() {
	render := func(text string, data any) (string, error) {
		t, err := templatex.Parse("test", text)
		if err != nil {
			return "", err
		}
		output, err := templatex.Execute(t, data)
		return string(output), err
	}

	DescribeTable("rendering templates",
		func(text string, data any, expected string) {
			output, err := render(text, data)
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(Equal(expected))
		},
		Entry("sprig functions", `{{ .name | upper }}/{{ "a/b.yaml" | base }}`, map[string]any{"name": "guestbook"}, "GUESTBOOK/b.yaml"),
		Entry("toYaml", `{{ toYaml . }}`, map[string]any{"b": 1, "a": "x"}, "a: x\nb: 1"),
		Entry("toJson", `{{ toJson . }}`, []string{"a", "b"}, `["a","b"]`),
		Entry("include", `{{ define "item" }}[{{ . }}]{{ end }}{{ range . }}{{ include "item" . | trim }}{{ end }}`, []string{"a", "b"}, "[a][b]"),
		Entry("missing key", `x{{ .missing }}y`, map[string]any{}, "xy"),
	)

	It("should fail on missing required values", func() {
		_, err := render(`{{ required "name is required" .name }}`, map[string]any{"name": ""})
		Expect(err).To(MatchError(ContainSubstring("name is required")))
	})

	It("should fail on invalid templates", func() {
		_, err := render(`{{ .name `, nil)
		Expect(err).To(MatchError(ContainSubstring("error parsing template test")))
	})

	It("should fail on endless recursion", func() {
		_, err := render(`{{ define "loop" }}{{ include "loop" . }}{{ end }}{{ include "loop" . }}`, nil)
		Expect(err).To(MatchError(ContainSubstring("maximum include depth exceeded")))
	})
})
