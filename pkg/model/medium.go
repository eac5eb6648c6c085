package model

import (
	"strings"

	"github.com/hashcalc-project/hashcalc/pkg/pathutil"
)

// MediumClass is the coarse storage technology behind a volume.
type MediumClass string

const (
	SolidState MediumClass = "SSD"
	Rotational MediumClass = "HDD"
	Unknown    MediumClass = "Unknown"
)

// ParseMediumClass maps a raw platform media-type string to a class.
// Anything other than SSD or HDD is Unknown.
func ParseMediumClass(raw string) MediumClass {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SSD":
		return SolidState
	case "HDD":
		return Rotational
	}
	return Unknown
}

// MediumTable maps a volume identifier to the raw media type reported by the
// platform. Keys are upper-case drive letters on Windows and mount points
// elsewhere. An empty table means no information is available.
type MediumTable map[string]string

// Lookup finds the volume holding path. A drive-letter path resolves to its
// letter; any other path resolves to the longest mount point containing it.
func (t MediumTable) Lookup(path string) (volume, raw string, ok bool) {
	if len(t) == 0 {
		return "", "", false
	}
	if letter := pathutil.DriveLetter(path); letter != "" {
		raw, ok = t[letter]
		return letter, raw, ok
	}
	for key, value := range t {
		if !pathutil.HasMountPrefix(path, key) {
			continue
		}
		if len(key) > len(volume) {
			volume, raw, ok = key, value, true
		}
	}
	return volume, raw, ok
}
