// Package sysutil holds small process, clock and type helpers.
//
// Process lookup by name reads /proc and is available on Linux only; on
// other platforms KillByName returns ErrNotSupported. KillProcess works
// wherever os.Process.Kill does.
package sysutil
