package sqlh

import (
	"database/sql"

	"github.com/pkg/errors"
)

// RowScanner is the interface that wraps the Scan method.
//
// Scan behaves like database/sql.Row.Scan.
type RowScanner interface {
	Scan(...interface{}) error
}

// ScanWithDefault scans a single value from a row. If there is no row, the default value is returned and the
// boolean result is true. Any other error is returned as-is.
func ScanWithDefault[T any](row RowScanner, defaultValue T) (T, bool, error) {
	var result T
	err := row.Scan(&result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultValue, true, nil
		}
		return result, false, err
	}
	return result, false, nil
}
