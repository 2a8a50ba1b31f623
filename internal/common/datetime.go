package common

import "time"

// DateLayout
const (
	DateFormatYYYYMMDD         = "2006-01-02"
	DateFormatYYYYMM           = "2006-01"
	DateFormatYYYYMMDDWithTime = "2006-01-02 15:04:05"
)

func Now() time.Time {
	return time.Now().UTC()
}
