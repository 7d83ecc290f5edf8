// Package bookingid generates short reference identifiers for tour bookings.
//
// The format is "SP" + epoch milliseconds + 4 random uppercase base-36
// characters. Nothing is persisted, so uniqueness is probabilistic only:
// two bookings in the same millisecond collide with chance 1/36^4.
package bookingid

import (
	"crypto/rand"
	"strconv"
	"time"
)

const (
	prefix    = "SP"
	randomLen = 4
	base36Set = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// New returns a fresh booking identifier for the current time.
func New() string {
	return At(time.Now())
}

// At returns a booking identifier anchored at the given time.
func At(t time.Time) string {
	buf := make([]byte, randomLen)
	// rand.Read never fails on supported platforms; on the unthinkable failure
	// the zeroed buffer still yields a valid (all-"0") suffix
	_, _ = rand.Read(buf)

	id := make([]byte, 0, len(prefix)+13+randomLen)
	id = append(id, prefix...)
	id = strconv.AppendInt(id, t.UnixMilli(), 10)
	for _, b := range buf {
		id = append(id, base36Set[int(b)%len(base36Set)])
	}
	return string(id)
}
