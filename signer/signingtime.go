package signer

import "time"

// SigningTime wraps time.Time with cached long/short date formats.
// Reference: teacher's time.go, unchanged — formatting is already
// algorithm- and vendor-agnostic.
type SigningTime struct {
	time.Time
	longDate  string
	shortDate string
}

// NewSigningTime creates a SigningTime from t, converted to UTC.
func NewSigningTime(t time.Time) SigningTime {
	return SigningTime{Time: t.UTC()}
}

// LongDate returns YYYYMMDD'T'HHMMSS'Z'.
func (st *SigningTime) LongDate() string {
	if st.longDate == "" {
		st.longDate = st.Time.Format(LongDateFormat)
	}
	return st.longDate
}

// ShortDate returns YYYYMMDD.
func (st *SigningTime) ShortDate() string {
	if st.shortDate == "" {
		st.shortDate = st.Time.Format(ShortDateFormat)
	}
	return st.shortDate
}

// ParseLongDate parses a YYYYMMDD'T'HHMMSS'Z' string as UTC.
func ParseLongDate(s string) (time.Time, error) {
	return time.Parse(LongDateFormat, s)
}
