//go:build linux

package sysutil

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const procRoot = "/proc"

// findByName scans /proc/<pid>/comm. The kernel truncates comm to 15 bytes,
// so longer names are compared on that prefix.
func findByName(name string) ([]int, error) {
	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return nil, errors.Join(ErrNotSupported, err)
	}

	want := name
	if len(want) > 15 {
		want = want[:15]
	}

	var pids []int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		comm, err := os.ReadFile(filepath.Join(procRoot, e.Name(), "comm"))
		if err != nil {
			// process exited between ReadDir and ReadFile
			continue
		}
		if strings.TrimSpace(string(comm)) == want {
			pids = append(pids, pid)
		}
	}
	return pids, nil
}
