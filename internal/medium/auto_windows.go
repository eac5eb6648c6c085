//go:build windows

package medium

func platformDefault() Strategy {
	return NewPowerShell()
}
