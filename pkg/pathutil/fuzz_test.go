package pathutil_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hashcalc-project/hashcalc/pkg/pathutil"
)

// FuzzDisplayName checks the truncation bound for arbitrary paths.
func FuzzDisplayName(f *testing.F) {
	f.Add("")
	f.Add("/tmp/file.iso")
	f.Add(`C:\Users\me\Downloads\some-very-long-installer-name.exe`)
	f.Add("////")
	f.Add("na\u0308me-with-combining-marks-that-is-long.txt")
	f.Add("\xff\xfe/\x00")

	f.Fuzz(func(t *testing.T, path string) {
		name := pathutil.DisplayName(path)
		if path == "" && name != "" {
			t.Errorf("DisplayName(\"\") = %q", name)
		}
		if n := utf8.RuneCountInString(name); n > pathutil.MaxDisplayName+len(pathutil.Ellipsis) {
			t.Errorf("DisplayName(%q) = %q has %d runes", path, name, n)
		}
		if utf8.RuneCountInString(name) > pathutil.MaxDisplayName && !strings.HasPrefix(name, pathutil.Ellipsis) {
			t.Errorf("DisplayName(%q) = %q truncated without ellipsis", path, name)
		}
	})
}

// FuzzDriveLetter checks that a detected drive letter is a single upper-case ASCII letter.
func FuzzDriveLetter(f *testing.F) {
	f.Add(`c:\data`)
	f.Add("D:")
	f.Add("/mnt/d")
	f.Add("1:")

	f.Fuzz(func(t *testing.T, path string) {
		d := pathutil.DriveLetter(path)
		if d == "" {
			return
		}
		if len(d) != 1 || d[0] < 'A' || d[0] > 'Z' {
			t.Errorf("DriveLetter(%q) = %q", path, d)
		}
	})
}
