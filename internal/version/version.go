/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"runtime"
	"runtime/debug"
)

// Set through -ldflags at build time; if unset, the values are taken from the module build information.
var (
	version      = ""
	metadata     = ""
	gitCommit    = ""
	gitTreeState = ""
)

type BuildInfo struct {
	Version      string `json:"version,omitempty"`
	GitCommit    string `json:"gitCommit,omitempty"`
	GitTreeState string `json:"gitTreeState,omitempty"`
	GoVersion    string `json:"goVersion,omitempty"`
}

func GetVersion() string {
	v := version
	if v == "" {
		v = "latest"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	if metadata == "" {
		return v
	}
	return v + "+" + metadata
}

func GetBuildInfo() BuildInfo {
	buildInfo := BuildInfo{
		Version:      GetVersion(),
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		GoVersion:    runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if buildInfo.GitCommit == "" {
					buildInfo.GitCommit = setting.Value
				}
			case "vcs.modified":
				if buildInfo.GitTreeState == "" {
					if setting.Value == "true" {
						buildInfo.GitTreeState = "dirty"
					} else {
						buildInfo.GitTreeState = "clean"
					}
				}
			}
		}
	}
	return buildInfo
}
