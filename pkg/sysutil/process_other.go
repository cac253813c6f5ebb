//go:build !linux

package sysutil

func findByName(string) ([]int, error) {
	return nil, ErrNotSupported
}
