/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package fileutils

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"syscall"
)

const (
	FileTypeRegular uint = 1 << iota
	FileTypeDir
	FileTypeSymlink
	FileTypeNamedPipe
	FileTypeSocket
	FileTypeDevice
	FileTypeCharDevice
	FileTypeIrregular
	FileTypeAny = FileTypeRegular | FileTypeDir | FileTypeSymlink | FileTypeNamedPipe | FileTypeSocket | FileTypeDevice | FileTypeCharDevice | FileTypeIrregular
)

const maxSupportedDepth = 10000

func fileTypeFromMode(mode fs.FileMode) uint {
	fileType := uint(0)
	if mode&fs.ModeType == 0 {
		fileType |= FileTypeRegular
	}
	if mode&fs.ModeDir != 0 {
		fileType |= FileTypeDir
	}
	if mode&fs.ModeSymlink != 0 {
		fileType |= FileTypeSymlink
	}
	if mode&fs.ModeNamedPipe != 0 {
		fileType |= FileTypeNamedPipe
	}
	if mode&fs.ModeSocket != 0 {
		fileType |= FileTypeSocket
	}
	if mode&fs.ModeDevice != 0 {
		fileType |= FileTypeDevice
	}
	if mode&fs.ModeCharDevice != 0 {
		fileType |= FileTypeCharDevice
	}
	if mode&fs.ModeIrregular != 0 {
		fileType |= FileTypeIrregular
	}
	return fileType
}

type FindOptions struct {
	// Name patterns (as understood by path.Match()); an entry is matched if it matches at least one of them.
	// Patterns must not contain slashes. If empty, any name is matched.
	NamePatterns []string
	// Logically or'ed combination of the FileType constants; zero means FileTypeAny.
	FileType uint
	// Maximum depth to descend; 1 means direct children of dir only, 0 is interpreted as 10000.
	MaxDepth uint
	// If true, the type of a symbolic link is taken from its (final) target; dangling and cyclic links are skipped.
	// Symlinked directories are never descended into.
	FollowSymlinks bool
}

// Search fsys for all entries under dir matching the given options.
// Resulting paths will be always relative to fsys (cleaned, with no leading dot), in the order of traversal.
// The parameter dir must not contain any dot or double dot, unless it equals '.' in which case the whole fsys will be searched.
// As an alternative, dir can be empty (which is equivalent to dir == '.').
// A non-existing dir is not an error, the result is empty in that case; any other error encountered while
// reading directories (or while following symlinks) aborts the search.
func Find(fsys fs.FS, dir string, options FindOptions) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	namePatterns := options.NamePatterns
	if len(namePatterns) == 0 {
		namePatterns = []string{"*"}
	}
	for _, namePattern := range namePatterns {
		if strings.Contains(namePattern, "/") {
			return nil, fmt.Errorf("invalid name pattern %q; must not contain slashes", namePattern)
		}
		if _, err := path.Match(namePattern, ""); err != nil {
			return nil, fmt.Errorf("invalid name pattern %q: %w", namePattern, err)
		}
	}
	fileType := options.FileType
	if fileType == 0 {
		fileType = FileTypeAny
	} else if fileType&FileTypeAny != fileType {
		return nil, fmt.Errorf("invalid file type: %d", fileType)
	}
	maxDepth := options.MaxDepth
	if maxDepth == 0 {
		maxDepth = maxSupportedDepth
	} else if maxDepth > maxSupportedDepth {
		// for security; never descend infinitely
		return nil, fmt.Errorf("invalid maximum depth; must not exceed %d", maxSupportedDepth)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return find(fsys, dir, entries, namePatterns, fileType, maxDepth, options.FollowSymlinks)
}

func find(fsys fs.FS, dir string, entries []fs.DirEntry, namePatterns []string, fileType uint, maxDepth uint, followSymlinks bool) ([]string, error) {
	var result []string

	for _, entry := range entries {
		entryName := entry.Name()
		entryPath := path.Clean(dir + "/" + entryName)
		if matchAny(namePatterns, entryName) {
			entryType, err := resolveType(fsys, entryPath, entry, followSymlinks)
			if err != nil {
				return nil, err
			}
			if entryType&fileType != 0 {
				result = append(result, entryPath)
			}
		}
		if entry.IsDir() && maxDepth > 1 {
			subEntries, err := fs.ReadDir(fsys, entryPath)
			if err != nil {
				return nil, err
			}
			entryResult, err := find(fsys, entryPath, subEntries, namePatterns, fileType, maxDepth-1, followSymlinks)
			if err != nil {
				return nil, err
			}
			result = append(result, entryResult...)
		}
	}

	return result, nil
}

func matchAny(namePatterns []string, name string) bool {
	for _, namePattern := range namePatterns {
		// patterns were validated upfront, so errors cannot occur here
		if match, _ := path.Match(namePattern, name); match {
			return true
		}
	}
	return false
}

func resolveType(fsys fs.FS, entryPath string, entry fs.DirEntry, followSymlinks bool) (uint, error) {
	if !followSymlinks || entry.Type()&fs.ModeSymlink == 0 {
		return fileTypeFromMode(entry.Type()), nil
	}
	info, err := fs.Stat(fsys, entryPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ELOOP) {
			// dangling link, or link cycle
			return 0, nil
		}
		return 0, err
	}
	return fileTypeFromMode(info.Mode()), nil
}
