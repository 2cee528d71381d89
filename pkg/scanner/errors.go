/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package scanner

import "fmt"

// ScanError is returned if the directory tree cannot be traversed completely.
// Partial results are never returned along with it.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("failed to scan directory '%s': %s", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Cause() error {
	return e.Err
}
