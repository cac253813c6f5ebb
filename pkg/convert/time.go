package convert

import "time"

// UnixTime returns t as seconds since the Unix epoch.
func UnixTime(t time.Time) int64 {
	return t.Unix()
}

// FromUnixTime converts seconds since the Unix epoch to a UTC time.
func FromUnixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
