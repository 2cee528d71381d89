/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package templatex

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	kyaml "sigs.k8s.io/yaml"
)

// template FuncMap generator
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"toYaml":   toYaml,
		"toJson":   toJson,
		"required": required,
	}
}

// template FuncMap generator for functions called in a template context
func FuncMapForTemplate(t *template.Template) template.FuncMap {
	return template.FuncMap{
		"include": makeFuncInclude(t),
	}
}

func toYaml(data any) (string, error) {
	raw, err := kyaml.Marshal(data)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(raw), "\n"), nil
}

func toJson(data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func required(warn string, data any) (any, error) {
	if data == nil {
		return data, errors.New(warn)
	} else if s, ok := data.(string); ok && s == "" {
		return data, errors.New(warn)
	}
	return data, nil
}

func makeFuncInclude(t *template.Template) func(string, any) (string, error) {
	includedNames := make(map[string]int)
	maxDepth := 100

	return func(name string, data any) (string, error) {
		if includedNames[name] >= maxDepth {
			return "", fmt.Errorf("maximum include depth exceeded for template %s", name)
		}
		includedNames[name]++
		defer func() { includedNames[name]-- }()
		var buf strings.Builder
		err := t.ExecuteTemplate(&buf, name, data)
		return buf.String(), err
	}
}
