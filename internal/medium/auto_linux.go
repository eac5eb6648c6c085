//go:build linux

package medium

func platformDefault() Strategy {
	return NewSysfs()
}
