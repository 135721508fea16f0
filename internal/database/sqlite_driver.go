package database

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/rmorlok/syncstore/internal/config"
)

func init() {
	sql.Register(config.SqliteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// The builtin lower() only folds ASCII; names and search terms must fold like Postgres.
			return conn.RegisterFunc("lower", unicodeLower, true)
		},
	})
}

func unicodeLower(v any) any {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		if s == nil {
			return nil
		}
		return strings.ToLower(string(s))
	default:
		return v
	}
}
