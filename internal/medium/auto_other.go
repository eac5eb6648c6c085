//go:build !windows && !linux

package medium

// platformDefault has no disk introspection outside Windows and Linux.
func platformDefault() Strategy {
	return Empty{}
}
