/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package templatex

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

// Parse text as go template; besides the sprig library, the functions of FuncMap() and FuncMapForTemplate() are available.
func Parse(name string, text string) (*template.Template, error) {
	t := template.New(name).Option("missingkey=zero")
	t.Funcs(sprig.TxtFuncMap()).Funcs(FuncMap()).Funcs(FuncMapForTemplate(t))
	if _, err := t.Parse(text); err != nil {
		return nil, errors.Wrapf(err, "error parsing template %s", name)
	}
	return t, nil
}

// Execute t over data. Occurrences of '<no value>' (rendered for missing map keys) are removed from the output.
func Execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "error rendering template %s", t.Name())
	}
	return AdjustTemplateOutput(buf.Bytes()), nil
}

// Mimics Helm, which removes '<no value>' from all template output; templates are rendered with missingkey=zero,
// but missing keys in map[string]any values still render as '<no value>'.
func AdjustTemplateOutput(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("<no value>"), []byte(""))
}
