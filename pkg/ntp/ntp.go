// Package ntp contains functions to encode and decode timestamps to/from NTP format.
package ntp

import (
	"time"
)

// offset between the NTP epoch (1900) and the Unix epoch (1970), in seconds.
const epochOffset = 2208988800

// Encode encodes a timestamp in NTP format.
// Specification: RFC 3550, section 4
func Encode(t time.Time) uint64 {
	secs := uint64(t.Unix()) + epochOffset
	frac := (uint64(t.Nanosecond()) << 32) / 1000000000
	return secs<<32 | frac
}

// Decode decodes a timestamp from NTP format.
// Specification: RFC 3550, section 4
func Decode(v uint64) time.Time {
	secs := int64(v>>32) - epochOffset
	nanos := ((v & 0xFFFFFFFF) * 1000000000) >> 32
	return time.Unix(secs, int64(nanos))
}
