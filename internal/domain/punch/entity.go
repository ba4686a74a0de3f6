package punch

import "time"

// RawTimeLayout is the textual timestamp form produced by older feeds that
// export punches as strings instead of native timestamps.
const RawTimeLayout = "2006-01-02 15:04:05"

// Punch is a single clock-in/clock-out event as fetched from the attendance
// store. Records are immutable once fetched; the engine never writes them
// back.
//
// PunchedAt is the native timestamp. When the upstream row carried only a
// textual timestamp, PunchedAt is the zero value and RawTime holds the
// original string for the normalizer to coerce.
type Punch struct {
	EmployeeID int64
	PunchedAt  time.Time
	RawTime    string
	Priority   *int16
	Ignored    bool
}

// DailyAnomaly is one day whose punch count is not exactly two, as reported
// by the store-side aggregate query. It feeds the data-quality report.
type DailyAnomaly struct {
	EmployeeID   int64
	Day          time.Time
	TotalRecords int
	FirstRecord  *time.Time
	LastRecord   *time.Time
}
