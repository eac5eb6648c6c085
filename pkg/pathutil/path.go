// Package pathutil provides path resolution and display helpers for hashcalc.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
)

// MaxDisplayName is the number of trailing characters kept by DisplayName.
const MaxDisplayName = 20

// Ellipsis prefixes a truncated display name.
const Ellipsis = "..."

// Resolve returns the absolute path with symlinks evaluated. A path that does
// not exist yet is resolved through its closest existing ancestor so the
// caller can still report it; opening it is left to the engine.
func Resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errclass.ErrUsage.WithMessage("no file selected")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errclass.ErrUsage.WithMessagef("cannot resolve path %q: %v", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return resolveClosestAncestor(abs), nil
		}
		return abs, nil
	}
	return resolved, nil
}

// resolveClosestAncestor walks up from path to find the closest existing
// ancestor, resolves it, then appends the remaining components.
func resolveClosestAncestor(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if dir == path {
		return filepath.Clean(path)
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		if os.IsNotExist(err) {
			resolved = resolveClosestAncestor(dir)
		} else {
			return filepath.Clean(path)
		}
	}
	return filepath.Join(resolved, base)
}

// ValidateFile checks that path names an existing regular file.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errclass.ErrUsage.WithMessagef("please select a file path: %v", err)
	}
	if !info.Mode().IsRegular() {
		return errclass.ErrUsage.WithMessagef("please select a file path: %s is not a regular file", path)
	}
	return nil
}

// DriveLetter returns the upper-case drive letter of a Windows-style path
// ("c:\data" -> "C"), or "" when path has none. It does not depend on the
// host OS so tables produced on Windows can be checked anywhere.
func DriveLetter(path string) string {
	if len(path) < 2 || path[1] != ':' {
		return ""
	}
	c := path[0]
	switch {
	case c >= 'a' && c <= 'z':
		return string(c - 'a' + 'A')
	case c >= 'A' && c <= 'Z':
		return string(c)
	}
	return ""
}

// HasMountPrefix reports whether path lies on the filesystem mounted at mount.
func HasMountPrefix(path, mount string) bool {
	if mount == "" || !strings.HasPrefix(mount, "/") {
		return false
	}
	if mount == "/" {
		return strings.HasPrefix(path, "/")
	}
	mount = strings.TrimSuffix(mount, "/")
	return path == mount || strings.HasPrefix(path, mount+"/")
}

// DisplayName returns the base name of path for progress and log text.
// Names longer than MaxDisplayName characters keep their last
// MaxDisplayName characters behind an Ellipsis.
func DisplayName(path string) string {
	if path == "" {
		return ""
	}
	name := norm.NFC.String(baseName(path))
	if utf8.RuneCountInString(name) <= MaxDisplayName {
		return name
	}
	runes := []rune(name)
	return Ellipsis + string(runes[len(runes)-MaxDisplayName:])
}

// baseName splits on both separators so Windows paths display the same on
// every host.
func baseName(path string) string {
	trimmed := strings.TrimRight(path, `/\`)
	if trimmed == "" {
		return path
	}
	if i := strings.LastIndexAny(trimmed, `/\`); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
