// Package test_utils provides helpers for asserting on database state in tests.
package test_utils

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

// SQLQuerier is the subset of *sql.DB / *sql.Tx that AssertSql needs.
type SQLQuerier interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// RowsIterator is the subset of *sql.Rows that FetchAllRows needs.
type RowsIterator interface {
	Columns() ([]string, error)
	Scan(dest ...interface{}) error
	Next() bool
	Err() error
	Close() error
}

// TestingT is the subset of testing.T used by the assertions here.
type TestingT interface {
	Helper()
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

var utcTimes = cmp.Transformer("UTC", func(t time.Time) time.Time {
	return t.UTC()
})

// AssertSql runs the query and checks that it returns exactly the expected rows in order. Columns are matched
// to struct fields by `db` tag, or by name ignoring case and underscores. Times are compared in UTC.
//
//	type connectionRow struct {
//	    Name   string `db:"name"`
//	    Status string `db:"status"`
//	}
//
//	AssertSql(t, rawDb, "SELECT name, status FROM connections ORDER BY name", []connectionRow{
//	    {Name: "a", Status: "active"},
//	})
func AssertSql[T any](t TestingT, db SQLQuerier, query string, expected []T, args ...interface{}) {
	t.Helper()

	rows, err := db.Query(query, args...)
	if err != nil {
		t.Fatalf("failed to execute query: %v\nquery: %s", err, query)
		return
	}

	actual, err := FetchAllRows[T](rows)
	if err != nil {
		t.Fatalf("failed to fetch rows: %v", err)
		return
	}

	if actual == nil {
		actual = []T{}
	}
	if expected == nil {
		expected = []T{}
	}

	if diff := cmp.Diff(expected, actual, utcTimes); diff != "" {
		t.Errorf("query returned unexpected rows (-want +got):\n%s\nquery: %s", diff, query)
	}
}

// FetchAllRows scans every row into a T and closes the rows.
func FetchAllRows[T any](rows RowsIterator) ([]T, error) {
	defer rows.Close()

	var result []T
	for rows.Next() {
		var item T
		if err := scanStruct(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return result, nil
}

func scanStruct(rows RowsIterator, dest interface{}) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("destination must be a pointer to a struct")
	}
	v = v.Elem()

	scanDest := make([]interface{}, len(columns))
	for i, colName := range columns {
		fieldIndex := fieldIndexForColumn(v.Type(), colName)
		if fieldIndex < 0 {
			return fmt.Errorf("no field found matching column %s", colName)
		}

		scanDest[i] = v.Field(fieldIndex).Addr().Interface()
	}

	return rows.Scan(scanDest...)
}

func fieldIndexForColumn(typ reflect.Type, column string) int {
	for j := 0; j < typ.NumField(); j++ {
		field := typ.Field(j)
		if tag := field.Tag.Get("db"); tag != "" && strings.EqualFold(tag, column) {
			return j
		}

		if normalizeName(field.Name) == normalizeName(column) {
			return j
		}
	}

	return -1
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
