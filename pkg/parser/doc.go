/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package parser validates Argo CD Application manifests and extracts the normalized representation needed to generate
ApplicationSet configs. Parsing never fails as a whole; each file yields a Result which either holds the extracted
Application, or the error describing why the file was rejected.
*/
package parser
