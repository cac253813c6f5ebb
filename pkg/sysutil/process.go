package sysutil

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

// KillProcess kills the process with the given id.
func KillProcess(pid int) error {
	if pid <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}
	p, err := os.FindProcess(pid)
	if err != nil {
		return fault.Wrapf(fault.ErrOS, errors.Join(ErrKillFailed, err), "pid %d", pid)
	}
	if err := p.Kill(); err != nil {
		return fault.Wrapf(fault.ErrOS, errors.Join(ErrKillFailed, err), "pid %d", pid)
	}
	return nil
}

// KillByName kills every process whose executable name equals name, except
// the calling process, and returns how many were killed. Processes that
// exit or refuse the signal are skipped; the first such error is returned
// together with the count.
func KillByName(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}
	pids, err := findByName(name)
	if err != nil {
		return 0, err
	}

	self := os.Getpid()
	killed := 0
	var firstErr error
	for _, pid := range pids {
		if pid == self {
			continue
		}
		if err := KillProcess(pid); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		killed++
	}
	return killed, firstErr
}

// Terminate kills the calling process. It returns only on failure.
func Terminate() error {
	return KillProcess(os.Getpid())
}
