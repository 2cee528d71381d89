/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package scanner discovers candidate Argo CD Application manifests (files ending with .yaml or .yml) below a root directory.
The result of a scan is deterministic: canonical absolute paths, free of duplicates, sorted lexicographically.
*/
package scanner
