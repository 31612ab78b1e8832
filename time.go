package sigv4

import "time"

// Time provides the timestamp formats used during signing.
type Time struct {
	time.Time
}

// NewTime returns t as a signing timestamp in UTC.
func NewTime(t time.Time) Time {
	return Time{t.UTC()}
}

// TimeFormat returns the timestamp in YYYYMMDDTHHMMSSZ format. This is the
// format of the X-Amz-Date header.
func (t Time) TimeFormat() string {
	return t.Format(timeFormat)
}

// ShortTimeFormat returns the date portion of the timestamp in YYYYMMDD
// format. This is the format used in the credential scope.
func (t Time) ShortTimeFormat() string {
	return t.Format(shortTimeFormat)
}
