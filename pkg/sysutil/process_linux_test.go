//go:build linux

package sysutil_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ophite/pkg/sysutil"
)

func TestKillByName(t *testing.T) {
	t.Parallel()

	self, err := os.Executable()
	require.NoError(t, err)

	// a distinct executable name so nothing else on the host matches
	link := filepath.Join(t.TempDir(), "ophite-victim")
	require.NoError(t, os.Symlink(self, link))

	first := helperCommand(t, link)
	second := helperCommand(t, link)

	require.Eventually(t, func() bool {
		return commOf(first.Process.Pid) == "ophite-victim" && commOf(second.Process.Pid) == "ophite-victim"
	}, 5*time.Second, 10*time.Millisecond)

	n, err := sysutil.KillByName("ophite-victim")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Error(t, first.Wait())
	assert.Error(t, second.Wait())

	n, err = sysutil.KillByName("ophite-victim")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func commOf(pid int) string {
	b, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "comm"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
