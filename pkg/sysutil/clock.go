package sysutil

import "time"

// secondsToUnixEpoch is the number of seconds from 0001-01-01 to 1970-01-01.
const secondsToUnixEpoch = 62135596800

// UnixTime returns the current Unix time in seconds.
func UnixTime() int64 {
	return time.Now().Unix()
}

// UptimeSeconds returns the local wall clock as whole seconds elapsed since
// 0001-01-01 00:00:00.
func UptimeSeconds() int64 {
	return SecondsSinceYearOne(time.Now())
}

// SecondsSinceYearOne converts t, read in its own location, to seconds
// since 0001-01-01 00:00:00.
func SecondsSinceYearOne(t time.Time) int64 {
	_, offset := t.Zone()
	return t.Unix() + int64(offset) + secondsToUnixEpoch
}
