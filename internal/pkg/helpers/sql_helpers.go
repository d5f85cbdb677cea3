package helpers

import (
	"database/sql"
	"fmt"
	"time"
)

// Layouts used when a driver hands back a time.Time for DATE/TIME columns
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// textScanner renders DATE and TIME columns as text whatever the driver returns
type textScanner struct {
	dst    *string
	layout string
}

// Scan implements sql.Scanner
func (s textScanner) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s.dst = ""
	case string:
		*s.dst = v
	case []byte:
		*s.dst = string(v)
	case time.Time:
		*s.dst = v.Format(s.layout)
	default:
		*s.dst = fmt.Sprint(v)
	}
	return nil
}

// DateText scans a DATE column into dst as YYYY-MM-DD
func DateText(dst *string) sql.Scanner {
	return textScanner{dst: dst, layout: DateLayout}
}

// TimeText scans a TIME column into dst as HH:MM:SS
func TimeText(dst *string) sql.Scanner {
	return textScanner{dst: dst, layout: TimeLayout}
}

// StringPtr converts a sql.NullString from an outer join into a pointer.
// Invalid values become nil so they serialize as JSON null.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
