package model

import (
	"time"
)

// CommitTime is the instant a commit was recorded plus the UTC offset of the machine that recorded it.
type CommitTime struct {
	Seconds       int64
	OffsetMinutes int
}

func NewCommitTime(t time.Time) CommitTime {
	_, offset := t.Zone()

	return CommitTime{
		Seconds:       t.Unix(),
		OffsetMinutes: offset / 60,
	}
}

// Local returns the wall clock time in the commit's own offset, independent of time.Local.
func (c CommitTime) Local() time.Time {
	return time.Unix(c.Seconds, 0).In(time.FixedZone("", c.OffsetMinutes*60))
}

func (c CommitTime) Hour() int {
	return c.Local().Hour()
}
