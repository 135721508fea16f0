package sqlh

import (
	"database/sql/driver"
	"time"

	"github.com/pkg/errors"
)

// Layouts sqlite uses when a timestamp comes back as text instead of a time.Time. The first is what go-sqlite3
// writes for bound time.Time values.
var sqliteTimestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

// NullTime is a nullable timestamp that also accepts the textual form sqlite returns for expressions whose
// declared type has been lost, such as columns projected out of a subquery.
type NullTime struct {
	Time  time.Time
	Valid bool
}

func (nt *NullTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		nt.Time, nt.Valid = time.Time{}, false
		return nil
	case time.Time:
		nt.Time, nt.Valid = v.UTC(), true
		return nil
	case string:
		return nt.parse(v)
	case []byte:
		return nt.parse(string(v))
	default:
		return errors.Errorf("cannot scan %T into NullTime", value)
	}
}

func (nt *NullTime) parse(s string) error {
	for _, layout := range sqliteTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			nt.Time, nt.Valid = t.UTC(), true
			return nil
		}
	}

	return errors.Errorf("cannot parse timestamp '%s'", s)
}

func (nt NullTime) Value() (driver.Value, error) {
	if !nt.Valid {
		return nil, nil
	}
	return nt.Time, nil
}

// Ptr returns nil for a null value and a pointer to the time otherwise.
func (nt NullTime) Ptr() *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
