/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	kyaml "sigs.k8s.io/yaml"
)

// Read and decode the given file. The file is closed before this function returns.
// A top-level value which is not a mapping is returned as an empty document, so that validation reports
// the first missing field.
func load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Reason: LoadErrorNotFound, Path: path, Err: err}
		}
		return nil, &LoadError{Reason: LoadErrorRead, Path: path, Err: err}
	}
	return decode(path, raw)
}

func decode(path string, raw []byte) (map[string]any, error) {
	numDocuments, err := countDocuments(raw)
	if err != nil {
		return nil, &LoadError{Reason: LoadErrorSyntax, Path: path, Err: err}
	}
	if numDocuments > 1 {
		return nil, &LoadError{Reason: LoadErrorSyntax, Path: path, Err: errors.Errorf("expected a single document in the stream, found %d", numDocuments)}
	}

	// numbers are kept as json.Number, so that large integers do not lose precision
	var content any
	if err := kyaml.Unmarshal(raw, &content, useNumber); err != nil {
		return nil, &LoadError{Reason: LoadErrorSyntax, Path: path, Err: err}
	}
	if content == nil {
		return nil, &LoadError{Reason: LoadErrorEmpty, Path: path}
	}
	if object, ok := content.(map[string]any); ok {
		return object, nil
	}
	return map[string]any{}, nil
}

// Count the documents in a YAML stream. Directives and comments do not form documents on their own,
// but an explicit document start marker does, even if the document is empty.
func countDocuments(raw []byte) (int, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	count := 0
	for {
		var node yaml.Node
		if err := decoder.Decode(&node); err != nil {
			if err == io.EOF {
				return count, nil
			}
			return 0, err
		}
		count++
	}
}

func useNumber(decoder *json.Decoder) *json.Decoder {
	decoder.UseNumber()
	return decoder
}
