/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package scanner

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/plumbing/format/gitignore"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/sap/go-generics/slices"

	"github.com/sap/argocd-app-migrator/internal/fileutils"
)

// Recognized manifest file extensions (case-sensitive).
var Extensions = []string{".yaml", ".yml"}

type Options struct {
	// If true, the whole tree below the root directory is scanned; otherwise only its direct children.
	Recursive bool
	// Glob patterns (with '/' as separator, and '**' matching across directories), evaluated against
	// the slash-separated path relative to the root directory; matching files are skipped.
	Exclude []string
	// Path of a file containing gitignore-style patterns, evaluated relative to the root directory;
	// relative paths are interpreted relative to the root directory. Matching files are skipped.
	IgnoreFile string
}

// Scan returns the canonical absolute paths of all regular files below root whose name ends with one of the
// recognized extensions. Symlinks are followed (but symlinked directories are not descended into), directories with a
// matching name are skipped, and hidden files are treated like any other file. The result is free of duplicates and sorted.
// A missing root directory, or one without matches, yields an empty result. Traversal problems are reported as *ScanError.
func Scan(root string, options Options) ([]string, error) {
	excludes, err := compileExcludes(options.Exclude)
	if err != nil {
		return nil, err
	}

	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}

	var ignore gitignore.Matcher
	if options.IgnoreFile != "" {
		ignore, err = readIgnore(absoluteRoot, options.IgnoreFile)
		if err != nil {
			return nil, &ScanError{Root: root, Err: err}
		}
	}

	maxDepth := uint(1)
	if options.Recursive {
		maxDepth = 0
	}
	files, err := fileutils.Find(os.DirFS(absoluteRoot), ".", fileutils.FindOptions{
		NamePatterns:   slices.Collect(Extensions, func(extension string) string { return "*" + extension }),
		FileType:       fileutils.FileTypeRegular,
		MaxDepth:       maxDepth,
		FollowSymlinks: true,
	})
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}

	var result []string
	for _, file := range files {
		if slices.Any(excludes, func(g glob.Glob) bool { return g.Match(file) }) {
			continue
		}
		if ignore != nil && ignore.Match(strings.Split(file, "/"), false) {
			continue
		}
		resolvedPath, err := filepath.EvalSymlinks(filepath.Join(absoluteRoot, filepath.FromSlash(file)))
		if err != nil {
			return nil, &ScanError{Root: root, Err: errors.Wrapf(err, "error resolving %s", file)}
		}
		result = append(result, resolvedPath)
	}
	if len(result) == 0 {
		return nil, nil
	}

	return slices.Sort(slices.Uniq(result)), nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	var excludes []glob.Glob
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "invalid exclude pattern %q", pattern)
		}
		excludes = append(excludes, g)
	}
	return excludes, nil
}

func readIgnore(root string, path string) (gitignore.Matcher, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	ignoreFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Errorf("ignore file %s does not exist", path)
		}
		return nil, err
	}
	defer ignoreFile.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(ignoreFile)
	for scanner.Scan() {
		s := scanner.Text()
		if !strings.HasPrefix(s, "#") && len(strings.TrimSpace(s)) > 0 {
			patterns = append(patterns, gitignore.ParsePattern(s, nil))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "error reading ignore file %s", path)
	}

	return gitignore.NewMatcher(patterns), nil
}
